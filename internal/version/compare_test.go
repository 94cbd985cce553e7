package version

import (
	"testing"

	"github.com/rxtech-lab/argo-commission/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConfigCompatibility(t *testing.T) {
	tests := []struct {
		name           string
		libraryVersion string
		configVersion  string
		expectedCode   errors.ErrorCode
		errorContains  string
	}{
		{name: "exact match", libraryVersion: "1.2.0", configVersion: "1.2.0"},
		{name: "library patch higher", libraryVersion: "1.2.3", configVersion: "1.2.0"},
		{name: "config patch higher", libraryVersion: "1.2.0", configVersion: "1.2.7"},
		{name: "library minor higher", libraryVersion: "1.4.0", configVersion: "1.2.0"},
		{name: "v prefix on both", libraryVersion: "v1.0.0", configVersion: "v1.0.0"},
		{name: "empty config version", libraryVersion: "1.0.0", configVersion: ""},
		{name: "library is main", libraryVersion: "main", configVersion: "9.9.9"},
		{name: "config is main", libraryVersion: "1.0.0", configVersion: "main"},
		{name: "prerelease config", libraryVersion: "1.2.0", configVersion: "1.2.0-beta.1"},
		{
			name:           "config minor newer",
			libraryVersion: "1.2.0",
			configVersion:  "1.3.0",
			expectedCode:   errors.ErrCodeVersionMismatch,
			errorContains:  "config requires 1.3.x",
		},
		{
			name:           "major differs",
			libraryVersion: "2.0.0",
			configVersion:  "1.2.0",
			expectedCode:   errors.ErrCodeVersionMismatch,
			errorContains:  "major version mismatch",
		},
		{
			name:           "invalid config version",
			libraryVersion: "1.0.0",
			configVersion:  "one",
			expectedCode:   errors.ErrCodeInvalidVersion,
			errorContains:  "invalid config version",
		},
		{
			name:           "invalid library version",
			libraryVersion: "latest",
			configVersion:  "1.0.0",
			expectedCode:   errors.ErrCodeInvalidVersion,
			errorContains:  "invalid library version",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckConfigCompatibility(tc.libraryVersion, tc.configVersion)
			if tc.expectedCode == 0 {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tc.expectedCode))
			assert.Contains(t, err.Error(), tc.errorContains)
		})
	}
}

func TestGetVersion(t *testing.T) {
	original := Version
	defer func() { Version = original }()

	Version = "v1.4.2"
	assert.Equal(t, "v1.4.2", GetVersion())
}

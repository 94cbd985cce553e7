package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-commission/pkg/errors"
)

// CheckConfigCompatibility checks whether a commission config written for
// configVersion can be loaded by a library at libraryVersion.
//
// Rules:
//   - An empty config version, or "main" on either side, skips the check
//   - Major versions must match
//   - The config's minor version must not be newer than the library's, since
//     it may use model names or fields this build does not know
//   - Patch versions can differ
//
// Examples:
//   - Library 1.2.0, Config 1.2.0 -> OK
//   - Library 1.3.0, Config 1.2.4 -> OK
//   - Library 1.2.0, Config 1.3.0 -> ERROR (config minor newer)
//   - Library 2.0.0, Config 1.2.0 -> ERROR (major differs)
func CheckConfigCompatibility(libraryVersion, configVersion string) error {
	libraryVersion = strings.TrimPrefix(libraryVersion, "v")
	configVersion = strings.TrimPrefix(configVersion, "v")

	if configVersion == "" || libraryVersion == "main" || configVersion == "main" {
		return nil
	}

	librarySemver, err := semver.NewVersion(libraryVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid library version '%s'", libraryVersion)
	}

	configSemver, err := semver.NewVersion(configVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid config version '%s'", configVersion)
	}

	if librarySemver.Major() != configSemver.Major() {
		return errors.Newf(errors.ErrCodeVersionMismatch,
			"major version mismatch: library is %d.x.x but config requires %d.x.x",
			librarySemver.Major(), configSemver.Major())
	}

	if configSemver.Minor() > librarySemver.Minor() {
		return errors.Newf(errors.ErrCodeVersionMismatch,
			"config requires %d.%d.x but library is %d.%d.x",
			configSemver.Major(), configSemver.Minor(),
			librarySemver.Major(), librarySemver.Minor())
	}

	return nil
}

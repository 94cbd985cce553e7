package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNewError() {
	err := New(ErrCodeInvalidCommissionCost, "negative cost")
	suite.Equal(ErrCodeInvalidCommissionCost, err.Code)
	suite.Equal("negative cost", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestNewfError() {
	err := Newf(ErrCodeUnsupportedModel, "unknown commission model %q", "per_banana")
	suite.Equal(ErrCodeUnsupportedModel, err.Code)
	suite.Equal(`unknown commission model "per_banana"`, err.Message)
}

func (suite *ErrorTestSuite) TestWrapError() {
	cause := errors.New("io failure")
	err := Wrap(ErrCodeFillQueryFailed, "failed to read fills", cause)
	suite.Equal(ErrCodeFillQueryFailed, err.Code)
	suite.Equal(cause, err.Cause)
	suite.Equal(cause, err.Unwrap())
}

func (suite *ErrorTestSuite) TestWrapfError() {
	cause := errors.New("io failure")
	err := Wrapf(ErrCodeFillSourceUnavailable, cause, "cannot open %s", "fills.csv")
	suite.Equal("cannot open fills.csv", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestErrorString() {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without cause",
			err:      New(ErrCodeInvalidParameter, "invalid parameter"),
			expected: "[100] invalid parameter",
		},
		{
			name:     "with cause",
			err:      Wrap(ErrCodeInvalidMinimumCost, "bad minimum", errors.New("NaN")),
			expected: "[301] bad minimum: NaN",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.Equal(tc.expected, tc.err.Error())
		})
	}
}

func (suite *ErrorTestSuite) TestGetCode() {
	suite.Equal(ErrCodeInvalidParameter, GetCode(New(ErrCodeInvalidParameter, "x")))
	suite.Equal(ErrCodeUnknown, GetCode(errors.New("standard error")))
	suite.Equal(ErrCodeUnknown, GetCode(nil))

	// The outermost coded error wins.
	inner := New(ErrCodeInvalidCommissionCost, "negative cost")
	outer := Wrap(ErrCodeInvalidConfiguration, "invalid equity model", inner)
	suite.Equal(ErrCodeInvalidConfiguration, GetCode(outer))

	// Coded errors wrapped by fmt are still found.
	suite.Equal(ErrCodeInvalidCommissionCost, GetCode(fmt.Errorf("setup: %w", inner)))
}

func (suite *ErrorTestSuite) TestHasCode() {
	err := New(ErrCodeCommissionModelConflict, "conflict")
	suite.True(HasCode(err, ErrCodeCommissionModelConflict))
	suite.False(HasCode(err, ErrCodeInvalidOrder))
}

func (suite *ErrorTestSuite) TestIsAndAs() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeFillParseFailed, "parse failed", cause)
	suite.True(Is(err, cause))

	var coded *Error
	suite.True(As(err, &coded))
	suite.Equal(ErrCodeFillParseFailed, coded.Code)
}

func (suite *ErrorTestSuite) TestIsConfigurationError() {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"invalid cost", New(ErrCodeInvalidCommissionCost, "x"), true},
		{"invalid minimum", New(ErrCodeInvalidMinimumCost, "x"), true},
		{"unsupported model", New(ErrCodeUnsupportedModel, "x"), true},
		{"unknown broker", New(ErrCodeUnknownBroker, "x"), true},
		{"version mismatch", New(ErrCodeVersionMismatch, "x"), true},
		{"fill query", New(ErrCodeFillQueryFailed, "x"), false},
		{"replay conflict", New(ErrCodeCommissionModelConflict, "x"), false},
		{"plain error", errors.New("x"), false},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.Equal(tc.expected, IsConfigurationError(tc.err))
		})
	}
}

func (suite *ErrorTestSuite) TestErrorCodeRanges() {
	suite.Equal(ErrorCode(1), ErrCodeUnknown)
	suite.Equal(ErrorCode(100), ErrCodeInvalidParameter)
	suite.Equal(ErrorCode(200), ErrCodeFillSourceUnavailable)
	suite.Equal(ErrorCode(300), ErrCodeInvalidCommissionCost)
	suite.Equal(ErrorCode(400), ErrCodeCommissionModelConflict)
}

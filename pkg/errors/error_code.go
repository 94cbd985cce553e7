package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidOrder         ErrorCode = 102
	ErrCodeInvalidTransaction   ErrorCode = 103
	ErrCodeInvalidAsset         ErrorCode = 104
	ErrCodeMissingParameter     ErrorCode = 105
	ErrCodeInvalidVersion       ErrorCode = 106
	ErrCodeVersionMismatch      ErrorCode = 107

	// Fill data errors (200-299)
	ErrCodeFillSourceUnavailable ErrorCode = 200
	ErrCodeFillQueryFailed       ErrorCode = 201
	ErrCodeFillParseFailed       ErrorCode = 202
	ErrCodeUnsupportedFillFormat ErrorCode = 203

	// Commission errors (300-399)
	ErrCodeInvalidCommissionCost ErrorCode = 300
	ErrCodeInvalidMinimumCost    ErrorCode = 301
	ErrCodeUnsupportedModel      ErrorCode = 302
	ErrCodeUnsupportedAssetClass ErrorCode = 303
	ErrCodeUnknownBroker         ErrorCode = 304

	// Replay errors (400-499)
	ErrCodeCommissionModelConflict ErrorCode = 400
	ErrCodeOrderAssetMismatch      ErrorCode = 401
	ErrCodeReplayAborted           ErrorCode = 402
)

package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Authorization errors
	ErrMsgUnauthorized = "authorization rejected"

	// Input errors
	ErrMsgInvalidInput     = "invalid input"
	ErrMsgInvalidTimeframe = "invalid timeframe"
	ErrMsgInvalidTrigger   = "invalid trigger type"

	// Run errors
	ErrMsgRunInProgress   = "distribution already in progress"
	ErrMsgPoolTransfer    = "pool transfer failed"
	ErrMsgNothingToPay    = "no eligible recipients"
	ErrMsgRecordingFailed = "failed to record distribution"

	// Store errors
	ErrMsgSettingNotFound = "setting not found"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrUnauthorized - bad credential or missing auth configuration; terminal, no funds move
	ErrUnauthorized = errors.New(ErrMsgUnauthorized)

	// ErrInvalidInput - bad timeframe, trigger type, or non-positive pool; terminal, no funds move
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrRunInProgress - another run holds the per-timeframe lock
	ErrRunInProgress = errors.New(ErrMsgRunInProgress)

	// ErrPoolTransfer - the authorizer to operator funding step failed; aborts before any payout
	ErrPoolTransfer = errors.New(ErrMsgPoolTransfer)

	// ErrSettingNotFound - requested settings row does not exist
	ErrSettingNotFound = errors.New(ErrMsgSettingNotFound)
)

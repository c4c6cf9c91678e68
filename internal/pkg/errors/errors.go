package errors

import "errors"

// Generic sentinels.
var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Authorization failures. The caller holds a valid token but lacks the role
// required by the operation.
var (
	ErrNotAdmin       = errors.New("caller is not an admin")
	ErrNotTierUpdater = errors.New("caller is not a tier updater")
)

// Invariant guards. Checked before any mutation; a failed guard leaves all
// state untouched.
var (
	ErrCannotRemoveLastAdmin     = errors.New("cannot remove the last admin")
	ErrTierUpdaterMustBeContract = errors.New("tier updater must be a service account")
	ErrFeeTooHigh                = errors.New("fee rate exceeds 1000")
	ErrInvalidAddress            = errors.New("invalid address")
	ErrFactoryNotRegistered      = errors.New("venue factory is not registered")
	ErrExemptAddressCapReached   = errors.New("fee exemption capacity reached")
	ErrTierDowngradeNotAllowed   = errors.New("tier downgrade not allowed for this reason code")
)

// Ledger failures.
var (
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
)

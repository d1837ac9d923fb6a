package leave

import "errors"

// Leave domain errors
var (
	ErrApplicationNotFound         = errors.New("leave application not found")
	ErrApplicationAlreadyProcessed = errors.New("leave application is already approved or rejected")
	ErrInvalidApplicationID        = errors.New("invalid application ID")
	ErrUnauthorized                = errors.New("unauthorized to access this leave application")
)

package core

import "fmt"

// NotFoundError reports a requirement absent from its claimed location.
// It signals a caller bookkeeping bug and is never silently ignored.
type NotFoundError struct {
	RequirementID string
	Location      string
}

func (e *NotFoundError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("requirement %s not found in %s", e.RequirementID, e.Location)
	}
	return fmt.Sprintf("requirement %s not found", e.RequirementID)
}

// NotReadyError reports a scheduling guard failure: the requirement has
// not completed technical evaluation, so it cannot enter a sprint pool.
// Expected and recoverable; the caller decides user messaging.
type NotReadyError struct {
	RequirementID string
	Stage         string
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("requirement %s is not ready to schedule (stage %q)", e.RequirementID, e.Stage)
}

// ValidationError represents a validation failure.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LockError represents a file locking error.
type LockError struct {
	Operation string
	Message   string
	Err       error
}

func (e *LockError) Error() string {
	return fmt.Sprintf("lock %s: %s", e.Operation, e.Message)
}

func (e *LockError) Unwrap() error {
	return e.Err
}

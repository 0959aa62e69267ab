package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Message(t *testing.T) {
	withLocation := &NotFoundError{RequirementID: "REQ-abc", Location: "POOL-1"}
	assert.Equal(t, "requirement REQ-abc not found in POOL-1", withLocation.Error())

	bare := &NotFoundError{RequirementID: "REQ-abc"}
	assert.Equal(t, "requirement REQ-abc not found", bare.Error())
}

func TestNotReadyError_Message(t *testing.T) {
	err := &NotReadyError{RequirementID: "REQ-abc", Stage: "pending"}
	assert.Contains(t, err.Error(), "REQ-abc")
	assert.Contains(t, err.Error(), "not ready to schedule")
	assert.Contains(t, err.Error(), "pending")
}

func TestErrorsAs(t *testing.T) {
	var err error = &NotReadyError{RequirementID: "REQ-abc", Stage: "pending"}

	var notReady *NotReadyError
	assert.True(t, errors.As(err, &notReady))
	assert.Equal(t, "REQ-abc", notReady.RequirementID)

	var notFound *NotFoundError
	assert.False(t, errors.As(err, &notFound))
}

func TestValidationError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := &ValidationError{Field: "name", Message: "too long", Err: cause}

	assert.Equal(t, "name: too long", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestLockError_Message(t *testing.T) {
	cause := errors.New("flock failed")
	err := &LockError{Operation: "acquire", Message: "already held", Err: cause}

	assert.Equal(t, "lock acquire: already held", err.Error())
	assert.True(t, errors.Is(err, cause))
}

package schema

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewRequirementID generates a new requirement ID in format REQ-{nanoid(10)}.
func NewRequirementID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("REQ-%s", id), nil
}

// NewPoolID generates a new sprint pool ID in format POOL-{nanoid(10)}.
func NewPoolID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("POOL-%s", id), nil
}

// NewEventID generates a new event ID in format EVT-{nanoid(10)}.
func NewEventID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("EVT-%s", id), nil
}

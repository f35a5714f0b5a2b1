package services

import "errors"

var (
	// ErrValidation marks input that violates a constraint before it reaches the store.
	ErrValidation = errors.New("validation failed")
	// ErrProjectCycle is returned when the parent chain of a project loops or is
	// deeper than the configured limit.
	ErrProjectCycle = errors.New("project hierarchy is cyclic or too deep")
)

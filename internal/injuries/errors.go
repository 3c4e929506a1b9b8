package injuries

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInjuryNotFound is returned when the injury does not exist or does
	// not belong to the requesting user (both cases look identical to the
	// caller on purpose).
	ErrInjuryNotFound = errors.New("injury not found")

	// ErrConcurrencyConflict is returned when a concurrent mutation of the
	// same injury won the race. The losing call fails instead of merging.
	ErrConcurrencyConflict = errors.New("injury was modified concurrently")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

type OutOfOrderError struct {
	Latest time.Time
	Got    time.Time
}

func (e *OutOfOrderError) Error() string {
	return fmt.Sprintf(
		"out of order update: timestamp %s precedes latest update %s",
		e.Got.Format(time.RFC3339), e.Latest.Format(time.RFC3339),
	)
}

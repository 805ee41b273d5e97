// Package domain holds the error taxonomy shared by the initializer and its adapters.
package domain

import "errors"

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrMissingDependency = errors.New("missing dependency")
)

// Outcome labels an initialization run for logs, spans and metrics.
type Outcome string

const (
	OutcomeSuccess           Outcome = "success"
	OutcomeMissingDependency Outcome = "missing_dependency"
	OutcomeError             Outcome = "error"
)

// OutcomeOf classifies the error returned by an initialization run.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrMissingDependency):
		return OutcomeMissingDependency
	default:
		return OutcomeError
	}
}

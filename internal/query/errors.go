package query

import "errors"

// ErrEmptyQuery is returned when assembly finds zero groups with terms.
// Fatal in combined mode; collected per label in grouped mode.
var ErrEmptyQuery = errors.New("no groups with terms to assemble")

// ValidationError reports a structurally invalid term or group. The table
// reader filters empty cells, so hitting one of these means the caller
// constructed a Group by hand and got it wrong.
type ValidationError struct {
	Group  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Group == "" {
		return e.Reason
	}
	return "group " + e.Group + ": " + e.Reason
}

// PlanError reports a plan that cannot be executed: a column without
// settings, or a main column that is not in the plan. Always fatal before
// any assembly begins.
type PlanError struct {
	Reason string
}

func (e *PlanError) Error() string {
	return "invalid plan: " + e.Reason
}

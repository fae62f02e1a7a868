package model

import (
	"fmt"

	"github.com/combopt/stsbench/pkg/schedule"
)

// Outcome is the paradigm-neutral result of realizing a model with one
// solver backend, before it is normalized into the canonical result record.
type Outcome struct {
	// Sol is the decoded schedule, or nil when no feasible assignment was
	// found within the limit (or the instance is unsatisfiable).
	Sol schedule.Schedule
	// Optimal reports proof of optimality, or proof of satisfiability /
	// unsatisfiability for decision variants, reached before the limit.
	Optimal bool
	// Obj is the fairness objective value; nil for decision variants.
	Obj *int
	// TimedOut is set when the time limit cut the run short. Sol may still
	// carry a best-effort incumbent from an optimization run.
	TimedOut bool
}

// InconsistencyError reports that a decoder could not map solver output back
// to a known (match, period) slot: an encoder/decoder mismatch bug. It is
// always fatal since it would corrupt the canonical schedule.
type InconsistencyError struct {
	Approach string
	Detail   string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("%v decoding inconsistency: %v", e.Approach, e.Detail)
}

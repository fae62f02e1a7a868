package schedule

import "fmt"

// InvalidInstanceError is returned when an instance size cannot be scheduled:
// n odd or non-positive. It is raised before any encoding takes place.
type InvalidInstanceError struct {
	N int
}

func (e *InvalidInstanceError) Error() string {
	return fmt.Sprintf("invalid instance: n must be a positive even integer, got %v", e.N)
}

// Violation describes a decoded schedule breaking one of the tournament
// invariants. It always indicates an encoder/decoder bug rather than a solver
// failure, so callers must surface it instead of masking it as a timeout or
// an optimal result.
type Violation struct {
	Rule   string
	Detail string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("schedule violation [%v]: %v", v.Rule, v.Detail)
}

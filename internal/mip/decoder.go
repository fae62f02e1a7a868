package mip

import (
	"fmt"
	"math"

	"github.com/combopt/stsbench/pkg/model"
	"github.com/combopt/stsbench/pkg/schedule"
)

// Decode rebuilds the canonical schedule from the solver's variable
// activities, looked up by the names the encoder emitted. An empty activity
// map means no solution; a partially covered matrix is an inconsistency.
func Decode(a *Artifact, values map[string]float64) (schedule.Schedule, *int, error) {
	if len(values) == 0 {
		return nil, nil, nil
	}

	m := a.Model
	sol := make(schedule.Schedule, m.Periods)
	filled := make([][]bool, m.Periods)
	for p := range sol {
		sol[p] = make([]schedule.Pair, m.Weeks)
		filled[p] = make([]bool, m.Weeks)
	}

	for idx, match := range m.Matches {
		w := match.Week - 1
		for p := 0; p < m.Periods; p++ {
			if values[x(idx, p)] < 0.5 {
				continue
			}
			if filled[p][w] {
				return nil, nil, &model.InconsistencyError{
					Approach: "MIP",
					Detail:   fmt.Sprintf("period %v week %v assigned twice", p+1, match.Week),
				}
			}
			home, away := match.Home, match.Away
			if a.Fairness && values[y(idx, p)] < 0.5 {
				home, away = away, home
			}
			sol[p][w] = schedule.Pair{home, away}
			filled[p][w] = true
		}
	}

	for p := range filled {
		for w := range filled[p] {
			if !filled[p][w] {
				return nil, nil, &model.InconsistencyError{
					Approach: "MIP",
					Detail:   fmt.Sprintf("period %v week %v left unassigned", p+1, w+1),
				}
			}
		}
	}

	var obj *int
	if a.Fairness {
		value := int(math.Round(values["F"]))
		obj = &value
	}
	return sol, obj, nil
}

package satenc

import (
	"fmt"

	"github.com/combopt/stsbench/internal/sat"
	"github.com/combopt/stsbench/pkg/model"
	"github.com/combopt/stsbench/pkg/schedule"
)

// Decode maps a satisfying assignment back to the canonical schedule matrix
// through the encoding's reverse index. Any literal that cannot be mapped,
// or any slot left empty or filled twice, is an *model.InconsistencyError:
// it means the encoder and decoder disagree.
func Decode(enc *Encoding, solution sat.Solution) (schedule.Schedule, error) {
	m := enc.Model

	orientation := make([]bool, len(m.Matches))
	for i := range orientation {
		orientation[i] = true
	}
	if len(enc.orientVars) > 0 {
		assigned := make(map[int]bool, len(solution))
		for _, literal := range solution {
			if literal > 0 {
				assigned[literal] = true
			}
		}
		for idx, v := range enc.orientVars {
			orientation[idx] = assigned[v]
		}
	}

	sol := make(schedule.Schedule, m.Periods)
	for p := range sol {
		sol[p] = make([]schedule.Pair, m.Weeks)
	}
	filled := make([][]bool, m.Periods)
	for p := range filled {
		filled[p] = make([]bool, m.Weeks)
	}

	for _, literal := range solution {
		if literal <= 0 || literal > enc.slotVars {
			continue
		}
		idx, p := enc.Indexer.Attributes(literal)
		if idx >= len(m.Matches) {
			return nil, &model.InconsistencyError{
				Approach: "SAT",
				Detail:   fmt.Sprintf("variable %v maps to unknown match %v", literal, idx),
			}
		}
		match := m.Matches[idx]
		w := match.Week - 1
		if filled[p][w] {
			return nil, &model.InconsistencyError{
				Approach: "SAT",
				Detail:   fmt.Sprintf("period %v week %v assigned twice", p+1, match.Week),
			}
		}
		home, away := match.Home, match.Away
		if !orientation[idx] {
			home, away = away, home
		}
		sol[p][w] = schedule.Pair{home, away}
		filled[p][w] = true
	}

	for p := range filled {
		for w := range filled[p] {
			if !filled[p][w] {
				return nil, &model.InconsistencyError{
					Approach: "SAT",
					Detail:   fmt.Sprintf("period %v week %v left unassigned", p+1, w+1),
				}
			}
		}
	}

	return sol, nil
}

package cp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/combopt/stsbench/pkg/model"
	"github.com/combopt/stsbench/pkg/schedule"
)

const (
	solutionSeparator = "----------"
	completeMarker    = "=========="
	unsatMarker       = "=====UNSATISFIABLE====="
)

// Decode parses MiniZinc output: it takes the last printed solution (the
// incumbent, under minimization) and rebuilds the canonical schedule from
// the "slot w g p keep" lines. Returns a nil schedule when the output holds
// no solution at all.
func Decode(a *Artifact, output string) (schedule.Schedule, *int, error) {
	blocks := strings.Split(output, solutionSeparator)
	if len(blocks) < 2 {
		// No separator means no solution was printed.
		return nil, nil, nil
	}
	last := blocks[len(blocks)-2]

	m := a.Model
	sol := make(schedule.Schedule, m.Periods)
	filled := make([][]bool, m.Periods)
	for p := range sol {
		sol[p] = make([]schedule.Pair, m.Weeks)
		filled[p] = make([]bool, m.Weeks)
	}

	var obj *int
	for _, line := range strings.Split(last, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "obj":
			if len(fields) != 2 {
				return nil, nil, &model.InconsistencyError{Approach: "CP", Detail: fmt.Sprintf("malformed objective line %q", line)}
			}
			value, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, nil, &model.InconsistencyError{Approach: "CP", Detail: fmt.Sprintf("malformed objective line %q", line)}
			}
			obj = &value
		case "slot":
			if len(fields) != 5 {
				return nil, nil, &model.InconsistencyError{Approach: "CP", Detail: fmt.Sprintf("malformed slot line %q", line)}
			}
			w, errW := strconv.Atoi(fields[1])
			g, errG := strconv.Atoi(fields[2])
			p, errP := strconv.Atoi(fields[3])
			keep, errK := strconv.Atoi(fields[4])
			if errW != nil || errG != nil || errP != nil || errK != nil ||
				w < 1 || w > m.Weeks || g < 1 || g > m.Periods || p < 1 || p > m.Periods {
				return nil, nil, &model.InconsistencyError{Approach: "CP", Detail: fmt.Sprintf("slot line %q maps to no (match, period)", line)}
			}
			if filled[p-1][w-1] {
				return nil, nil, &model.InconsistencyError{Approach: "CP", Detail: fmt.Sprintf("period %v week %v assigned twice", p, w)}
			}
			match := m.Matches[m.MatchesOfWeek(w)[g-1]]
			home, away := match.Home, match.Away
			if keep == 0 {
				home, away = away, home
			}
			sol[p-1][w-1] = schedule.Pair{home, away}
			filled[p-1][w-1] = true
		}
	}

	for p := range filled {
		for w := range filled[p] {
			if !filled[p][w] {
				return nil, nil, &model.InconsistencyError{Approach: "CP", Detail: fmt.Sprintf("period %v week %v left unassigned", p+1, w+1)}
			}
		}
	}

	if !m.Options().Fairness {
		obj = nil
	}
	return sol, obj, nil
}

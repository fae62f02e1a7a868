package smt

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/combopt/stsbench/pkg/model"
	"github.com/combopt/stsbench/pkg/schedule"
)

// z3 prints model values as `(define-fun x_3_1 () Bool true)`, possibly with
// the value on its own indented line.
var (
	slotTruePattern = regexp.MustCompile(`\(define-fun\s+x_(\d+)_(\d+)\s+\(\)\s+Bool\s+true\)`)
	orientPattern   = regexp.MustCompile(`\(define-fun\s+o_(\d+)\s+\(\)\s+Bool\s+(true|false)\)`)
	maxDiffPattern  = regexp.MustCompile(`\(define-fun\s+maxdiff\s+\(\)\s+Int\s+(\d+)\)`)
)

// Decode reconstructs the canonical schedule from a solver model dump.
// Returns the schedule and, for fairness artifacts, the reported objective.
func Decode(a *Artifact, output string) (schedule.Schedule, *int, error) {
	m := a.Model

	orientation := make([]bool, len(m.Matches))
	for i := range orientation {
		orientation[i] = true
	}
	if a.Fairness {
		for _, groups := range orientPattern.FindAllStringSubmatch(output, -1) {
			idx, err := strconv.Atoi(groups[1])
			if err != nil || idx >= len(m.Matches) {
				return nil, nil, &model.InconsistencyError{
					Approach: "SMT",
					Detail:   fmt.Sprintf("orientation term %v maps to no match", groups[0]),
				}
			}
			orientation[idx] = groups[2] == "true"
		}
	}

	sol := make(schedule.Schedule, m.Periods)
	filled := make([][]bool, m.Periods)
	for p := range sol {
		sol[p] = make([]schedule.Pair, m.Weeks)
		filled[p] = make([]bool, m.Weeks)
	}

	for _, groups := range slotTruePattern.FindAllStringSubmatch(output, -1) {
		idx, _ := strconv.Atoi(groups[1])
		p, _ := strconv.Atoi(groups[2])
		if idx >= len(m.Matches) || p >= m.Periods {
			return nil, nil, &model.InconsistencyError{
				Approach: "SMT",
				Detail:   fmt.Sprintf("slot term %v maps to no (match, period)", groups[0]),
			}
		}
		match := m.Matches[idx]
		w := match.Week - 1
		if filled[p][w] {
			return nil, nil, &model.InconsistencyError{
				Approach: "SMT",
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
				return nil, nil, &model.InconsistencyError{
					Approach: "SMT",
					Detail:   fmt.Sprintf("period %v week %v left unassigned", p+1, w+1),
				}
			}
		}
	}

	var obj *int
	if a.Fairness {
		groups := maxDiffPattern.FindStringSubmatch(output)
		if groups == nil {
			// Objective term missing from the model dump: recompute.
			value := schedule.Imbalance(m.N, sol)
			obj = &value
		} else {
			value, _ := strconv.Atoi(groups[1])
			obj = &value
		}
	}

	return sol, obj, nil
}

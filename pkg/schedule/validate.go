package schedule

import "fmt"

// Validate checks a decoded schedule against the tournament invariants:
//
//  1. shape: n/2 period rows of n-1 week columns, team ids in [1, n]
//  2. round-robin completeness: every unordered pair meets exactly once
//  3. every team plays exactly once per week
//  4. period limit: every team appears at most twice per period
//
// The first broken invariant is reported as a *Violation.
func Validate(n int, s Schedule) error {
	if n < 2 || n%2 != 0 {
		return &InvalidInstanceError{N: n}
	}

	periods, weeks := n/2, n-1
	if len(s) != periods {
		return &Violation{Rule: "shape", Detail: fmt.Sprintf("expected %v period rows, got %v", periods, len(s))}
	}
	for p, row := range s {
		if len(row) != weeks {
			return &Violation{Rule: "shape", Detail: fmt.Sprintf("period %v: expected %v week columns, got %v", p+1, weeks, len(row))}
		}
	}

	pairSeen := make(map[[2]int]bool)
	weekCount := make([][]int, weeks) // weekCount[w][t-1]
	periodCount := make([][]int, periods)
	for w := range weekCount {
		weekCount[w] = make([]int, n)
	}
	for p := range periodCount {
		periodCount[p] = make([]int, n)
	}

	for p := 0; p < periods; p++ {
		for w := 0; w < weeks; w++ {
			home, away := s[p][w][0], s[p][w][1]
			if home < 1 || home > n || away < 1 || away > n || home == away {
				return &Violation{Rule: "teams", Detail: fmt.Sprintf("period %v week %v: invalid pair [%v, %v]", p+1, w+1, home, away)}
			}

			key := [2]int{min(home, away), max(home, away)}
			if pairSeen[key] {
				return &Violation{Rule: "round-robin", Detail: fmt.Sprintf("pair {%v, %v} meets more than once", key[0], key[1])}
			}
			pairSeen[key] = true

			weekCount[w][home-1]++
			weekCount[w][away-1]++
			periodCount[p][home-1]++
			periodCount[p][away-1]++
		}
	}

	for w := 0; w < weeks; w++ {
		for t := 0; t < n; t++ {
			if weekCount[w][t] != 1 {
				return &Violation{Rule: "one-match-per-week", Detail: fmt.Sprintf("team %v plays %v times in week %v", t+1, weekCount[w][t], w+1)}
			}
		}
	}

	for p := 0; p < periods; p++ {
		for t := 0; t < n; t++ {
			if periodCount[p][t] > 2 {
				return &Violation{Rule: "period-limit", Detail: fmt.Sprintf("team %v appears %v times in period %v", t+1, periodCount[p][t], p+1)}
			}
		}
	}

	return nil
}

// Imbalance recomputes the fairness objective from a realized schedule: the
// maximum over teams of |home appearances - away appearances|.
func Imbalance(n int, s Schedule) int {
	homes := make([]int, n)
	aways := make([]int, n)
	for _, row := range s {
		for _, pair := range row {
			homes[pair[0]-1]++
			aways[pair[1]-1]++
		}
	}

	worst := 0
	for t := 0; t < n; t++ {
		diff := homes[t] - aways[t]
		if diff < 0 {
			diff = -diff
		}
		if diff > worst {
			worst = diff
		}
	}
	return worst
}

// Package schedule holds the paradigm-agnostic core of the sports tournament
// scheduling pipeline: the circle-method round-robin generator, the canonical
// schedule representation and the invariant checker used to validate decoded
// solver output.
package schedule

// A Match is an ordered pairing of two distinct teams bound to a fixed week.
// Teams and weeks are 1-based.
type Match struct {
	Home int
	Away int
	Week int
}

// A Pair is a realized [home, away] cell of the canonical schedule matrix.
type Pair [2]int

// A Schedule is the canonical (n/2)x(n-1) matrix of [home, away] pairs,
// indexed [period][week] (both 0-based). It marshals directly into the
// nested-array "sol" field of the result record.
type Schedule [][]Pair

// Teams returns the two teams of the match in home, away order.
func (m Match) Teams() (int, int) {
	return m.Home, m.Away
}

// Involves reports whether team t plays in the match.
func (m Match) Involves(t int) bool {
	return m.Home == t || m.Away == t
}

// RoundRobin generates a single round-robin pairing structure for n teams
// using the circle method: team 1 is fixed, the remaining n-1 teams sit on a
// circle that rotates by one position each week, and matches are formed by
// folding the circle around the fixed team.
//
// The result is n-1 weeks of n/2 matches each, satisfying round-robin
// completeness (every unordered pair meets exactly once) and
// one-match-per-team-per-week. Output is deterministic: two calls with the
// same n yield identical pairing sets. Home/away orientation alternates so
// that decision variants start from a roughly balanced assignment; fairness
// encoders may flip it later.
//
// Returns *InvalidInstanceError when n is odd or smaller than 2.
func RoundRobin(n int) ([][]Match, error) {
	if n < 2 || n%2 != 0 {
		return nil, &InvalidInstanceError{N: n}
	}

	// Teams 2..n on the circle; team 1 is the fixed anchor.
	circle := make([]int, n-1)
	for i := range circle {
		circle[i] = i + 2
	}

	weeks := make([][]Match, n-1)
	for w := 0; w < n-1; w++ {
		matches := make([]Match, 0, n/2)

		// Anchor match: team 1 against the team currently opposite.
		home, away := 1, circle[0]
		if w%2 == 1 {
			home, away = away, home
		}
		matches = append(matches, Match{Home: home, Away: away, Week: w + 1})

		// Fold the rest of the circle around the anchor.
		for k := 1; k <= n/2-1; k++ {
			a, b := circle[k], circle[n-1-k]
			if (w+k)%2 == 1 {
				a, b = b, a
			}
			matches = append(matches, Match{Home: a, Away: b, Week: w + 1})
		}

		// Rotate the circle by one position.
		last := circle[n-2]
		copy(circle[1:], circle[:n-2])
		circle[0] = last

		weeks[w] = matches
	}

	return weeks, nil
}

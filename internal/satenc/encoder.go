package satenc

import (
	"github.com/combopt/stsbench/internal/sat"
	"github.com/combopt/stsbench/pkg/model"
)

// Encoding couples the CNF artifact with the reverse index the decoder
// needs. slotVars is the id of the highest (match, period) variable; above
// it live orientation literals (fairness) and cardinality registers.
type Encoding struct {
	CNF      sat.CNF
	Indexer  Indexer
	Model    *model.Model
	slotVars int
	// orientVars[m] is the orientation literal of match m: true keeps the
	// generator's home/away, false flips it. Empty for decision variants.
	orientVars []int
}

// Encode builds the decision CNF: slot bijection, period limit and the
// optional symmetry-breaking anchor and implied constraints. The artifact is
// byte-identical across calls for the same (n, options).
func Encode(m *model.Model) *Encoding {
	enc := newEncoding(m)
	enc.base()
	return enc
}

// EncodeFairness builds the decision CNF plus orientation literals and the
// cardinality bounds forcing every team's home count into
// [(G-maxDiff)/2, (G+maxDiff)/2], G being the games per team. The fairness
// optimum is then found by binary search over maxDiff.
func EncodeFairness(m *model.Model, maxDiff int) *Encoding {
	enc := newEncoding(m)
	enc.base()

	enc.orientVars = make([]int, len(m.Matches))
	for i := range m.Matches {
		enc.orientVars[i] = enc.CNF.NewVar()
	}

	games := m.Games()
	minHome := (games - maxDiff) / 2
	maxHome := (games + maxDiff) / 2
	for t := 1; t <= m.N; t++ {
		homeLits := make([]int, 0, games)
		for _, idx := range m.MatchesOfTeam(t) {
			if m.Matches[idx].Home == t {
				homeLits = append(homeLits, enc.orientVars[idx])
			} else {
				homeLits = append(homeLits, -enc.orientVars[idx])
			}
		}
		enc.CNF.AtLeastK(homeLits, minHome)
		enc.CNF.AtMostK(homeLits, maxHome)
	}

	return enc
}

func newEncoding(m *model.Model) *Encoding {
	slots := len(m.Matches) * m.Periods
	return &Encoding{
		CNF:      sat.CNF{Variables: slots},
		Indexer:  NewIndexer(m.Periods),
		Model:    m,
		slotVars: slots,
	}
}

func (enc *Encoding) base() {
	m := enc.Model

	// Each match takes exactly one period.
	for idx := range m.Matches {
		vars := make([]int, m.Periods)
		for p := 0; p < m.Periods; p++ {
			vars[p] = enc.Indexer.Index(idx, p)
		}
		enc.CNF.ExactlyOne(vars)
	}

	// Each (week, period) slot hosts exactly one match.
	for w := 1; w <= m.Weeks; w++ {
		for p := 0; p < m.Periods; p++ {
			vars := make([]int, 0, m.Periods)
			for _, idx := range m.MatchesOfWeek(w) {
				vars = append(vars, enc.Indexer.Index(idx, p))
			}
			enc.CNF.ExactlyOne(vars)
		}
	}

	// Period limit: a team visits each period at most twice over the weeks.
	for t := 1; t <= m.N; t++ {
		for p := 0; p < m.Periods; p++ {
			vars := make([]int, 0, m.Weeks)
			for _, idx := range m.MatchesOfTeam(t) {
				vars = append(vars, enc.Indexer.Index(idx, p))
			}
			enc.CNF.AtMostTwo(vars)
		}
	}

	// Redundant strengthening: no three consecutive weeks in one period.
	// MatchesOfTeam is week-ordered, one match per week.
	if m.Options().ImpliedConstraints {
		for t := 1; t <= m.N; t++ {
			team := m.MatchesOfTeam(t)
			for w := 0; w+2 < len(team); w++ {
				for p := 0; p < m.Periods; p++ {
					enc.CNF.AddClause(
						-enc.Indexer.Index(team[w], p),
						-enc.Indexer.Index(team[w+1], p),
						-enc.Indexer.Index(team[w+2], p),
					)
				}
			}
		}
	}

	// Anchor: pin team 1's week-1 match to period 1.
	if m.Options().SymmetryBreaking {
		enc.CNF.AddClause(enc.Indexer.Index(m.Anchor(), 0))
	}
}

// Package mip realizes the constraint model as a CPLEX-LP file for an
// external ILP solver. Binary x[m,p] variables assign matches to periods;
// the fairness variant adds the reference minimax block: y[m,p] links
// orientation to assignment (y <= x), h/a/d count and bound per-team
// imbalance, and a scalar F dominates every d[t] under minimization.
package mip

import (
	"fmt"
	"strings"

	"github.com/combopt/stsbench/pkg/model"
)

// Artifact is the immutable LP text plus the model it encodes.
type Artifact struct {
	LP       string
	Model    *model.Model
	Fairness bool
}

func x(match, period int) string {
	return fmt.Sprintf("x_%d_%d", match, period)
}

func y(match, period int) string {
	return fmt.Sprintf("y_%d_%d", match, period)
}

// Encode renders the LP file. Identical (n, options) inputs produce
// byte-identical artifacts.
func Encode(m *model.Model) *Artifact {
	var b strings.Builder
	opts := m.Options()

	fmt.Fprintf(&b, "\\ STS period assignment, n=%d\n", m.N)
	b.WriteString("Minimize\n")
	if opts.Fairness {
		b.WriteString(" obj: F\n")
	} else {
		// Decision variant: constant objective, any feasible point wins.
		fmt.Fprintf(&b, " obj: 0 %s\n", x(0, 0))
	}
	b.WriteString("Subject To\n")

	// Each match takes exactly one period.
	for idx := range m.Matches {
		terms := make([]string, m.Periods)
		for p := 0; p < m.Periods; p++ {
			terms[p] = x(idx, p)
		}
		fmt.Fprintf(&b, " match_%d: %s = 1\n", idx, strings.Join(terms, " + "))
	}

	// Each (week, period) slot hosts exactly one match.
	for w := 1; w <= m.Weeks; w++ {
		for p := 0; p < m.Periods; p++ {
			terms := make([]string, 0, m.Periods)
			for _, idx := range m.MatchesOfWeek(w) {
				terms = append(terms, x(idx, p))
			}
			fmt.Fprintf(&b, " slot_%d_%d: %s = 1\n", w, p+1, strings.Join(terms, " + "))
		}
	}

	// Period limit.
	for t := 1; t <= m.N; t++ {
		for p := 0; p < m.Periods; p++ {
			terms := make([]string, 0, m.Weeks)
			for _, idx := range m.MatchesOfTeam(t) {
				terms = append(terms, x(idx, p))
			}
			fmt.Fprintf(&b, " cap_%d_%d: %s <= 2\n", t, p+1, strings.Join(terms, " + "))
		}
	}

	if opts.ImpliedConstraints {
		for t := 1; t <= m.N; t++ {
			team := m.MatchesOfTeam(t)
			for w := 0; w+2 < len(team); w++ {
				for p := 0; p < m.Periods; p++ {
					fmt.Fprintf(&b, " imp_%d_%d_%d: %s + %s + %s <= 2\n",
						t, w+1, p+1, x(team[w], p), x(team[w+1], p), x(team[w+2], p))
				}
			}
		}
	}

	if opts.SymmetryBreaking {
		fmt.Fprintf(&b, " anchor: %s = 1\n", x(m.Anchor(), 0))
	}

	if opts.Fairness {
		games := m.Games()

		// y[m,p] can only be active where the match is actually assigned.
		for idx := range m.Matches {
			for p := 0; p < m.Periods; p++ {
				fmt.Fprintf(&b, " link_%d_%d: %s - %s <= 0\n", idx, p+1, y(idx, p), x(idx, p))
			}
		}

		// h[t] = home appearances under the chosen orientation:
		// y where the generator made t home, x - y where it made t away.
		for t := 1; t <= m.N; t++ {
			var terms []string
			for _, idx := range m.MatchesOfTeam(t) {
				for p := 0; p < m.Periods; p++ {
					if m.Matches[idx].Home == t {
						terms = append(terms, fmt.Sprintf("- %s", y(idx, p)))
					} else {
						terms = append(terms, fmt.Sprintf("- %s + %s", x(idx, p), y(idx, p)))
					}
				}
			}
			fmt.Fprintf(&b, " home_%d: h_%d %s = 0\n", t, t, strings.Join(terms, " "))
			fmt.Fprintf(&b, " games_%d: h_%d + a_%d = %d\n", t, t, t, games)
			fmt.Fprintf(&b, " dpos_%d: d_%d - h_%d + a_%d >= 0\n", t, t, t, t)
			fmt.Fprintf(&b, " dneg_%d: d_%d + h_%d - a_%d >= 0\n", t, t, t, t)
			fmt.Fprintf(&b, " fmax_%d: F - d_%d >= 0\n", t, t)
		}
	}

	b.WriteString("Binary\n")
	for idx := range m.Matches {
		for p := 0; p < m.Periods; p++ {
			fmt.Fprintf(&b, " %s\n", x(idx, p))
		}
	}
	if opts.Fairness {
		for idx := range m.Matches {
			for p := 0; p < m.Periods; p++ {
				fmt.Fprintf(&b, " %s\n", y(idx, p))
			}
		}
		b.WriteString("General\n")
		for t := 1; t <= m.N; t++ {
			fmt.Fprintf(&b, " h_%d\n a_%d\n d_%d\n", t, t, t)
		}
		b.WriteString(" F\n")
	}
	b.WriteString("End\n")

	return &Artifact{LP: b.String(), Model: m, Fairness: opts.Fairness}
}

package cp

import (
	"fmt"
	"strings"

	"github.com/combopt/stsbench/pkg/model"
)

// Artifact couples the model text with its generated data instance.
type Artifact struct {
	ModelText string
	Data      string
	Model     *model.Model
}

// Encode renders the .dzn data instance: n, option flags, the anchor game
// and the week-major pairing tables. Output is byte-identical for identical
// (n, options) inputs.
func Encode(m *model.Model) *Artifact {
	var b strings.Builder
	opts := m.Options()

	fmt.Fprintf(&b, "n = %d;\n", m.N)
	fmt.Fprintf(&b, "use_sb = %d;\n", boolFlag(opts.SymmetryBreaking))
	fmt.Fprintf(&b, "use_ic = %d;\n", boolFlag(opts.ImpliedConstraints))
	fmt.Fprintf(&b, "use_opt = %d;\n", boolFlag(opts.Fairness))

	anchorGame := 1
	for g, idx := range m.MatchesOfWeek(1) {
		if idx == m.Anchor() {
			anchorGame = g + 1
		}
	}
	fmt.Fprintf(&b, "anchor_game = %d;\n", anchorGame)

	writeTable(&b, "home", m, func(match int) int { return m.Matches[match].Home })
	writeTable(&b, "away", m, func(match int) int { return m.Matches[match].Away })

	return &Artifact{ModelText: periodModel, Data: b.String(), Model: m}
}

func writeTable(b *strings.Builder, name string, m *model.Model, team func(match int) int) {
	fmt.Fprintf(b, "%s = [|", name)
	for w := 1; w <= m.Weeks; w++ {
		if w > 1 {
			b.WriteString("         |")
		}
		for g, idx := range m.MatchesOfWeek(w) {
			if g > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(b, " %d", team(idx))
		}
		b.WriteString("\n")
	}
	b.WriteString("|];\n")
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}

package sat

import (
	"log"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ParseSolution extracts the literal assignment from the "v" value lines of
// a DIMACS-conforming solver's output. The trailing 0 terminator is dropped.
func ParseSolution(solverOutput string) Solution {
	values := lo.FilterMap(
		lo.Reduce(
			lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
				return len(line) > 0 && line[0] == 'v'
			}),
			func(fields []string, line string, _ int) []string {
				return append(fields, strings.Fields(line[1:])...)
			},
			[]string{},
		),
		func(field string, _ int) (int, bool) {
			value, err := strconv.Atoi(field)
			if err != nil {
				log.Panicf("invalid literal in solver output: %v", err)
			}
			return value, value != 0
		},
	)
	return values
}

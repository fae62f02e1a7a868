package mip

import (
	"regexp"
	"strconv"
	"strings"
)

// solverStatus normalizes the verdicts of the supported ILP backends.
type solverStatus int

const (
	statusUnknown solverStatus = iota
	statusOptimal
	statusInfeasible
	statusStopped   // incumbent exists, optimality unproven
	statusUndefined // limit expired before any integer feasible solution
)

// parseCbcSolution reads a CBC solution file: a status header followed by
// "<index> <name> <value> <reduced cost>" rows.
func parseCbcSolution(text string) (solverStatus, map[string]float64) {
	status := statusUnknown
	values := make(map[string]float64)

	for i, line := range strings.Split(text, "\n") {
		if i == 0 {
			switch {
			case strings.HasPrefix(line, "Optimal"):
				status = statusOptimal
			case strings.HasPrefix(line, "Infeasible"):
				status = statusInfeasible
			case strings.HasPrefix(line, "Stopped"):
				status = statusStopped
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			continue
		}
		value, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			continue
		}
		values[fields[1]] = value
	}

	return status, values
}

// glpkColumn matches one row of the glpsol column activity table, with the
// optional basis-status marker between name and activity.
var glpkColumn = regexp.MustCompile(`^\s*\d+\s+(\S+)\s+(?:\*\s+)?(-?[0-9][0-9.eE+-]*)`)

// parseGlpkSolution reads a glpsol -o report: a "Status:" line plus the
// column activity table.
func parseGlpkSolution(text string) (solverStatus, map[string]float64) {
	status := statusUnknown
	values := make(map[string]float64)
	inColumns := false

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "Status:") {
			switch {
			case strings.Contains(line, "INTEGER OPTIMAL"):
				status = statusOptimal
			case strings.Contains(line, "INTEGER EMPTY"):
				status = statusInfeasible
			case strings.Contains(line, "INTEGER NON-OPTIMAL"):
				status = statusStopped
			case strings.Contains(line, "UNDEFINED"):
				// glpsol reports INTEGER UNDEFINED when --tmlim expires
				// before any incumbent; the column activities are garbage.
				status = statusUndefined
			}
			continue
		}
		if strings.Contains(line, "Column name") {
			inColumns = true
			continue
		}
		if inColumns {
			if strings.HasPrefix(line, "Karush-Kuhn-Tucker") || strings.HasPrefix(line, "Integer feasibility") {
				inColumns = false
				continue
			}
			groups := glpkColumn.FindStringSubmatch(line)
			if groups == nil {
				continue
			}
			value, err := strconv.ParseFloat(groups[2], 64)
			if err != nil {
				continue
			}
			values[groups[1]] = value
		}
	}

	return status, values
}

package sat

import "math/rand"

// GenerateCNFInstance builds a random CNF instance for backend smoke tests.
func GenerateCNFInstance(variables, clauses int) CNF {
	instance := CNF{
		Variables: variables,
		Clauses:   make([][]int, clauses),
	}

	for i := 0; i < clauses; i++ {
		instance.Clauses[i] = make([]int, 0, variables)
		for v := 0; v < variables; v++ {
			if rand.Float32() < 0.5 {
				sign := 1
				if rand.Float32() < 0.5 {
					sign = -1
				}
				instance.Clauses[i] = append(instance.Clauses[i], sign*(v+1))
			}
		}

		// Never emit an empty clause.
		if len(instance.Clauses[i]) == 0 {
			sign := 1
			if rand.Float32() < 0.5 {
				sign = -1
			}
			instance.Clauses[i] = append(instance.Clauses[i], sign*(rand.Intn(variables)+1))
		}
	}

	return instance
}

// AssertSolution checks that a solution is consistent and satisfies every
// clause of the instance.
func AssertSolution(instance CNF, solution Solution) bool {
	// No duplicates nor contradictions.
	literals := make(map[int]bool)
	for _, literal := range solution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	for _, clause := range instance.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}

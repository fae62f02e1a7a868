package sat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDIMACS(t *testing.T) {
	cnf := CNF{Variables: 3}
	cnf.AddClause(1, -2)
	cnf.AddClause(2, 3)
	cnf.AddClause(-3)

	expected := "p cnf 3 3\n1 -2 0\n2 3 0\n-3 0\n"
	assert.Equal(t, expected, cnf.ToDIMACS())
	assert.Equal(t, expected, cnf.ToDIMACS())
}

func TestNewVar(t *testing.T) {
	cnf := CNF{Variables: 5}
	assert.Equal(t, 6, cnf.NewVar())
	assert.Equal(t, 7, cnf.NewVar())
	assert.Equal(t, 7, cnf.Variables)
}

// solve runs the in-process gophersat backend; nil means unsatisfiable.
func solve(t *testing.T, cnf CNF) Solution {
	t.Helper()
	solution, err := NewGophersatSolver().Solve(cnf, 10*time.Second)
	require.NoError(t, err)
	if solution != nil {
		require.True(t, AssertSolution(cnf, solution))
	}
	return solution
}

func TestExactlyOne(t *testing.T) {
	base := func() (CNF, []int) {
		cnf := CNF{}
		vars := []int{cnf.NewVar(), cnf.NewVar(), cnf.NewVar(), cnf.NewVar()}
		cnf.ExactlyOne(vars)
		return cnf, vars
	}

	// Satisfiable on its own.
	cnf, _ := base()
	require.NotNil(t, solve(t, cnf))

	// Unsatisfiable when two of the literals are forced.
	cnf, vars := base()
	cnf.AddClause(vars[0])
	cnf.AddClause(vars[2])
	assert.Nil(t, solve(t, cnf))

	// Unsatisfiable when all literals are forced off.
	cnf, vars = base()
	for _, v := range vars {
		cnf.AddClause(-v)
	}
	assert.Nil(t, solve(t, cnf))
}

func TestAtMostTwo(t *testing.T) {
	base := func() (CNF, []int) {
		cnf := CNF{}
		vars := make([]int, 5)
		for i := range vars {
			vars[i] = cnf.NewVar()
		}
		cnf.AtMostTwo(vars)
		return cnf, vars
	}

	// Two forced literals stay satisfiable.
	cnf, vars := base()
	cnf.AddClause(vars[1])
	cnf.AddClause(vars[4])
	require.NotNil(t, solve(t, cnf))

	// A third one breaks it.
	cnf.AddClause(vars[2])
	assert.Nil(t, solve(t, cnf))
}

func TestAtMostK(t *testing.T) {
	base := func(k int) (CNF, []int) {
		cnf := CNF{}
		vars := make([]int, 6)
		for i := range vars {
			vars[i] = cnf.NewVar()
		}
		cnf.AtMostK(vars, k)
		return cnf, vars
	}

	// k forced literals are fine, k+1 are not.
	for _, k := range []int{1, 2, 3} {
		cnf, vars := base(k)
		for i := 0; i < k; i++ {
			cnf.AddClause(vars[i])
		}
		require.NotNil(t, solve(t, cnf), "k=%v", k)

		cnf.AddClause(vars[k])
		assert.Nil(t, solve(t, cnf), "k=%v", k)
	}

	// k = 0 forces every literal off.
	cnf, vars := base(0)
	solution := solve(t, cnf)
	require.NotNil(t, solution)
	cnf.AddClause(vars[3])
	assert.Nil(t, solve(t, cnf))

	// k >= n adds nothing.
	cnf, _ = base(6)
	assert.Empty(t, cnf.Clauses)
}

func TestAtLeastK(t *testing.T) {
	base := func(k int) (CNF, []int) {
		cnf := CNF{}
		vars := make([]int, 6)
		for i := range vars {
			vars[i] = cnf.NewVar()
		}
		cnf.AtLeastK(vars, k)
		return cnf, vars
	}

	// Leaving n-k literals free is fine; forcing n-k+1 off is not.
	for _, k := range []int{1, 3, 6} {
		cnf, vars := base(k)
		for i := 0; i < len(vars)-k; i++ {
			cnf.AddClause(-vars[i])
		}
		require.NotNil(t, solve(t, cnf), "k=%v", k)

		cnf.AddClause(-vars[len(vars)-k])
		assert.Nil(t, solve(t, cnf), "k=%v", k)
	}

	// k = 0 adds nothing.
	cnf, _ := base(0)
	assert.Empty(t, cnf.Clauses)
}

func TestBoundsCompose(t *testing.T) {
	// Between 2 and 4 of 6 literals; force the count to each value in turn.
	for forced := 0; forced <= 6; forced++ {
		cnf := CNF{}
		vars := make([]int, 6)
		for i := range vars {
			vars[i] = cnf.NewVar()
		}
		cnf.AtLeastK(vars, 2)
		cnf.AtMostK(vars, 4)
		for i, v := range vars {
			if i < forced {
				cnf.AddClause(v)
			} else {
				cnf.AddClause(-v)
			}
		}

		if forced >= 2 && forced <= 4 {
			assert.NotNil(t, solve(t, cnf), "forced=%v", forced)
		} else {
			assert.Nil(t, solve(t, cnf), "forced=%v", forced)
		}
	}
}

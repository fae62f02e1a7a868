// Package sat provides the CNF instance value type, its DIMACS export and
// the solver backends (external subprocess solvers plus two in-process Go
// solvers) used by the SAT paradigm encoder.
package sat

import (
	"fmt"
	"strings"
)

// Solution is a complete literal assignment: one signed literal per variable.
type Solution []int

// CNF is a propositional formula in conjunctive normal form. Variables are
// 1-based DIMACS ids; clauses hold signed literals.
type CNF struct {
	Variables int
	Clauses   [][]int
}

// NewVar allocates a fresh auxiliary variable.
func (c *CNF) NewVar() int {
	c.Variables++
	return c.Variables
}

func (c *CNF) AddClause(literals ...int) {
	c.Clauses = append(c.Clauses, literals)
}

// ExactlyOne encodes that exactly one of the literals holds, via one
// at-least-one clause plus pairwise at-most-one.
func (c *CNF) ExactlyOne(literals []int) {
	c.AddClause(append([]int(nil), literals...)...)
	for i := 0; i < len(literals)-1; i++ {
		for j := i + 1; j < len(literals); j++ {
			c.AddClause(-literals[i], -literals[j])
		}
	}
}

// AtMostTwo forbids any three of the literals holding together.
func (c *CNF) AtMostTwo(literals []int) {
	for i := 0; i < len(literals)-2; i++ {
		for j := i + 1; j < len(literals)-1; j++ {
			for k := j + 1; k < len(literals); k++ {
				c.AddClause(-literals[i], -literals[j], -literals[k])
			}
		}
	}
}

// AtMostK bounds the number of true literals by k with the sequential
// counter encoding, introducing k auxiliary registers per literal.
func (c *CNF) AtMostK(literals []int, k int) {
	n := len(literals)
	if k >= n {
		return
	}
	if k <= 0 {
		for _, lit := range literals {
			c.AddClause(-lit)
		}
		return
	}

	// s[i][j] <=> at least j+1 of the first i+1 literals are true
	s := make([][]int, n)
	for i := range s {
		s[i] = make([]int, k)
		for j := range s[i] {
			s[i][j] = c.NewVar()
		}
	}

	c.AddClause(-literals[0], s[0][0])
	for j := 1; j < k; j++ {
		c.AddClause(-s[0][j])
	}
	for i := 1; i < n; i++ {
		c.AddClause(-literals[i], s[i][0])
		c.AddClause(-s[i-1][0], s[i][0])
		for j := 1; j < k; j++ {
			c.AddClause(-literals[i], -s[i-1][j-1], s[i][j])
			c.AddClause(-s[i-1][j], s[i][j])
		}
		c.AddClause(-literals[i], -s[i-1][k-1])
	}
}

// AtLeastK demands at least k true literals, by bounding the negations.
func (c *CNF) AtLeastK(literals []int, k int) {
	if k <= 0 {
		return
	}
	if k == len(literals) {
		for _, lit := range literals {
			c.AddClause(lit)
		}
		return
	}
	negated := make([]int, len(literals))
	for i, lit := range literals {
		negated[i] = -lit
	}
	c.AtMostK(negated, len(literals)-k)
}

// ToDIMACS renders the instance in DIMACS-CNF format: header
// "p cnf <vars> <clauses>", one zero-terminated clause per line. Output is
// byte-identical across calls for the same instance.
func (c CNF) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", c.Variables, len(c.Clauses))
	for _, clause := range c.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

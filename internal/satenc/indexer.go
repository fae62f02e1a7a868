// Package satenc realizes the constraint model as a CNF instance: one
// propositional variable per (match, period) slot, with a reverse index that
// maps solver literals back to slots, plus orientation literals and a binary
// search on the imbalance bound for the fairness variant.
package satenc

// Indexer gives a unique DIMACS variable id to each (match, period)
// combination and recovers the combination from an id.
type Indexer interface {
	Index(match, period int) int
	Attributes(variable int) (match, period int)
}

func NewIndexer(periods int) Indexer {
	return &slotIndexer{periods: periods}
}

type slotIndexer struct {
	periods int
}

func (i *slotIndexer) Index(match, period int) int {
	return match*i.periods + period + 1
}

func (i *slotIndexer) Attributes(variable int) (int, int) {
	variable--
	return variable / i.periods, variable % i.periods
}

package sfa

import (
	"svpa/internal/budget"
	"svpa/internal/move"
)

// Complement returns an SFA accepting S* minus L(a) (spec.md §4.6): a is
// determinized and totalized, then final and non-final states are swapped.
func (a *SFA[P, F, S]) Complement(bgt *budget.Budget) (*SFA[P, F, S], error) {
	total, err := a.mkTotalDeterministic(bgt)
	if err != nil {
		return nil, err
	}
	var finals []int
	for _, s := range total.GetStates() {
		if !total.IsFinal(s) {
			finals = append(finals, s)
		}
	}
	var inputMoves []move.InputMove[P, move.None]
	for _, s := range total.GetStates() {
		inputMoves = append(inputMoves, total.inputMoves[s]...)
	}
	return MkSFA[P, F, S](inputMoves, nil, total.initial, finals, total.alg, false, false)
}

func (a *SFA[P, F, S]) mkTotalDeterministic(bgt *budget.Budget) (*SFA[P, F, S], error) {
	if a.isTotal {
		return a.Clone(), nil
	}
	return a.MkTotal(bgt)
}

// productPair identifies a pair of source-automaton states as one state of
// a product construction.
type productPair struct{ left, right int }

// Intersect returns an SFA accepting L(a) ∩ L(b) via the symbolic product
// construction (spec.md §4.6): both operands are determinized and
// totalized first, then the product state (p,q) transitions to (p',q')
// on the conjunction of a p->p' guard and a q->q' guard, for every pair
// of guards whose conjunction is satisfiable; a product state is final
// iff both components are.
func (a *SFA[P, F, S]) Intersect(b *SFA[P, F, S], bgt *budget.Budget) (*SFA[P, F, S], error) {
	return a.product(b, bgt, func(aFinal, bFinal bool) bool { return aFinal && bFinal })
}

// Union returns an SFA accepting L(a) ∪ L(b): a fresh initial state with
// epsilon moves to a's and b's original initials, after disjointly
// renumbering b's states past a's (spec.md §4.6). Unlike Intersect and
// Difference, this needs neither operand determinized nor totalized.
func (a *SFA[P, F, S]) Union(b *SFA[P, F, S], bgt *budget.Budget) (*SFA[P, F, S], error) {
	offsetB := a.maxStateID + 1
	newInit := b.maxStateID + 1 + offsetB

	var inputMoves []move.InputMove[P, move.None]
	var finals []int
	for _, s := range a.GetStates() {
		inputMoves = append(inputMoves, a.inputMoves[s]...)
		if a.IsFinal(s) {
			finals = append(finals, s)
		}
	}
	var epsilonMoves []move.EpsilonMove[move.None]
	for _, s := range a.GetStates() {
		epsilonMoves = append(epsilonMoves, a.epsilonMoves[s]...)
	}
	for _, s := range b.GetStates() {
		for _, m := range b.inputMoves[s] {
			inputMoves = append(inputMoves, move.InputMove[P, move.None]{
				From: m.From + offsetB, To: m.To + offsetB, Guard: m.Guard,
			})
		}
		for _, m := range b.epsilonMoves[s] {
			epsilonMoves = append(epsilonMoves, move.EpsilonMove[move.None]{
				From: m.From + offsetB, To: m.To + offsetB,
			})
		}
		if b.IsFinal(s) {
			finals = append(finals, s+offsetB)
		}
	}
	epsilonMoves = append(epsilonMoves,
		move.EpsilonMove[move.None]{From: newInit, To: a.initial},
		move.EpsilonMove[move.None]{From: newInit, To: b.initial + offsetB},
	)

	return MkSFA[P, F, S](inputMoves, epsilonMoves, newInit, finals, a.alg, false, true)
}

// Difference returns an SFA accepting L(a) \ L(b), computed as
// A ∩ complement(B) (spec.md §4.6).
func (a *SFA[P, F, S]) Difference(b *SFA[P, F, S], bgt *budget.Budget) (*SFA[P, F, S], error) {
	notB, err := b.Complement(bgt)
	if err != nil {
		return nil, err
	}
	return a.Intersect(notB, bgt)
}

func (a *SFA[P, F, S]) product(b *SFA[P, F, S], bgt *budget.Budget, finalOf func(aFinal, bFinal bool) bool) (*SFA[P, F, S], error) {
	ta, err := a.mkTotalDeterministic(bgt)
	if err != nil {
		return nil, err
	}
	tb, err := b.mkTotalDeterministic(bgt)
	if err != nil {
		return nil, err
	}
	if bgt == nil {
		bgt = budget.Unbounded()
	}

	ids := make(map[productPair]int)
	var order []productPair
	getID := func(p productPair) (int, bool) {
		if id, ok := ids[p]; ok {
			return id, false
		}
		id := len(order)
		ids[p] = id
		order = append(order, p)
		return id, true
	}
	initID, _ := getID(productPair{ta.initial, tb.initial})
	_ = initID

	var inputMoves []move.InputMove[P, move.None]
	var finals []int
	processed := 0
	for processed < len(order) {
		pair := order[processed]
		id := processed
		processed++
		if err := bgt.CheckState(); err != nil {
			return nil, err
		}
		if finalOf(ta.IsFinal(pair.left), tb.IsFinal(pair.right)) {
			finals = append(finals, id)
		}
		for _, ma := range ta.inputMoves[pair.left] {
			for _, mb := range tb.inputMoves[pair.right] {
				g := ta.alg.MkAnd(ma.Guard, mb.Guard)
				if err := bgt.CheckSat(); err != nil {
					return nil, err
				}
				if !ta.alg.IsSatisfiable(g) {
					continue
				}
				toID, _ := getID(productPair{ma.To, mb.To})
				inputMoves = append(inputMoves, move.InputMove[P, move.None]{From: id, To: toID, Guard: g})
			}
		}
	}

	return MkSFA[P, F, S](inputMoves, nil, 0, finals, ta.alg, true, false)
}

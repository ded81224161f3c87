package sfa

import (
	"svpa/internal/budget"
	"svpa/internal/util"
)

// AmbiguityResult is the outcome of AmbiguousInput: if Ambiguous is true,
// Witness holds a word accepted along two distinct runs of the source
// (non-necessarily-deterministic) SFA.
type AmbiguityResult[S any] struct {
	Ambiguous bool
	Witness   []S
}

// pairState is one state of the "pair automaton" used to detect
// ambiguity: two states of the source SFA reached by the same input
// prefix along two runs, and whether those runs have already passed
// through different states at some step.
type pairState struct {
	first, second int
	diverged      bool
}

// AmbiguousInput decides whether a accepts some word along two distinct
// accepting runs (spec.md §4.10). Epsilon moves are eliminated first, so
// the self-product below only ever needs to consult a.inputMoves. It
// explores the product of a with itself from the diagonal pair
// (initial, initial), marking a pair as diverged once the two runs have
// been in different states at some step; a diverged pair whose
// components are both final is an ambiguity witness, reconstructed via
// the discovery tree.
func (a *SFA[P, F, S]) AmbiguousInput(bgt *budget.Budget) (AmbiguityResult[S], error) {
	if bgt == nil {
		bgt = budget.Unbounded()
	}
	if !a.isEpsilonFree {
		var err error
		a, err = a.RemoveEpsilonMoves(bgt)
		if err != nil {
			return AmbiguityResult[S]{}, err
		}
	}
	tree := util.NewWitnessTree[P]()
	ids := make(map[pairState]int)
	getID := func(p pairState, parent int, via P, hasVia bool) (int, bool) {
		if id, ok := ids[p]; ok {
			return id, false
		}
		var id int
		if hasVia {
			id = tree.NewChild(parent, via)
		} else {
			id = tree.NewRoot()
		}
		ids[p] = id
		return id, true
	}

	root := pairState{a.initial, a.initial, false}
	rootID, _ := getID(root, -1, a.alg.False(), false)

	queue := []pairState{root}
	queueID := []int{rootID}
	for len(queue) > 0 {
		if err := bgt.CheckState(); err != nil {
			return AmbiguityResult[S]{}, err
		}
		cur := queue[0]
		curID := queueID[0]
		queue = queue[1:]
		queueID = queueID[1:]

		if cur.diverged && a.IsFinal(cur.first) && a.IsFinal(cur.second) {
			return AmbiguityResult[S]{Ambiguous: true, Witness: reconstructWitness(a, tree, curID)}, nil
		}

		for _, m1 := range a.inputMoves[cur.first] {
			for _, m2 := range a.inputMoves[cur.second] {
				g := a.alg.MkAnd(m1.Guard, m2.Guard)
				if err := bgt.CheckSat(); err != nil {
					return AmbiguityResult[S]{}, err
				}
				if !a.alg.IsSatisfiable(g) {
					continue
				}
				n := pairState{m1.To, m2.To, cur.diverged || m1.To != m2.To}
				id, fresh := getID(n, curID, g, true)
				if fresh {
					queue = append(queue, n)
					queueID = append(queueID, id)
				}
			}
		}
	}

	return AmbiguityResult[S]{Ambiguous: false}, nil
}

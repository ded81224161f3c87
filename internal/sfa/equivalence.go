package sfa

import (
	"svpa/internal/budget"
	"svpa/internal/util"
)

// EquivalenceResult is the outcome of a HopcroftKarpEquivalent check: if
// Equivalent is false, Witness holds a word accepted by exactly one of
// the two automata.
type EquivalenceResult[S any] struct {
	Equivalent bool
	Witness    []S
}

// HopcroftKarpEquivalent decides whether a and b accept the same
// language (spec.md §4.8) via symbolic Hopcroft-Karp exploration of the
// product of a's and b's determinized totalizations: reachable pairs of
// states are discovered breadth-first and deduplicated by identity; a
// discovered pair where exactly one component is final is a witness of
// inequivalence, reconstructed by walking the discovery tree back to the
// root.
func HopcroftKarpEquivalent[P, F, S any](a, b *SFA[P, F, S], bgt *budget.Budget) (EquivalenceResult[S], error) {
	ta, err := a.mkTotalDeterministic(bgt)
	if err != nil {
		return EquivalenceResult[S]{}, err
	}
	tb, err := b.mkTotalDeterministic(bgt)
	if err != nil {
		return EquivalenceResult[S]{}, err
	}
	if bgt == nil {
		bgt = budget.Unbounded()
	}

	tree := util.NewWitnessTree[P]()
	type node struct{ left, right int }
	ids := make(map[node]int)
	getID := func(n node, parent int, via P, hasVia bool) (int, bool) {
		if id, ok := ids[n]; ok {
			return id, false
		}
		var id int
		if hasVia {
			id = tree.NewChild(parent, via)
		} else {
			id = tree.NewRoot()
		}
		ids[n] = id
		return id, true
	}

	rootPair := node{ta.initial, tb.initial}
	rootID, _ := getID(rootPair, -1, ta.alg.False(), false)

	queue := []node{rootPair}
	queueID := []int{rootID}
	for len(queue) > 0 {
		if err := bgt.CheckState(); err != nil {
			return EquivalenceResult[S]{}, err
		}
		cur := queue[0]
		curID := queueID[0]
		queue = queue[1:]
		queueID = queueID[1:]

		if ta.IsFinal(cur.left) != tb.IsFinal(cur.right) {
			return EquivalenceResult[S]{Equivalent: false, Witness: reconstructWitness(ta, tree, curID)}, nil
		}

		for _, ma := range ta.inputMoves[cur.left] {
			for _, mb := range tb.inputMoves[cur.right] {
				g := ta.alg.MkAnd(ma.Guard, mb.Guard)
				if err := bgt.CheckSat(); err != nil {
					return EquivalenceResult[S]{}, err
				}
				if !ta.alg.IsSatisfiable(g) {
					continue
				}
				n := node{ma.To, mb.To}
				id, fresh := getID(n, curID, g, true)
				if fresh {
					queue = append(queue, n)
					queueID = append(queueID, id)
				}
			}
		}
	}

	return EquivalenceResult[S]{Equivalent: true}, nil
}

// IsEquivalentTo is shorthand for HopcroftKarpEquivalent(a, b, bgt).Equivalent.
func (a *SFA[P, F, S]) IsEquivalentTo(b *SFA[P, F, S], bgt *budget.Budget) (bool, error) {
	res, err := HopcroftKarpEquivalent(a, b, bgt)
	if err != nil {
		return false, err
	}
	return res.Equivalent, nil
}

func reconstructWitness[P, F, S any](a *SFA[P, F, S], tree *util.WitnessTree[P], id int) []S {
	preds := tree.Witness(id)
	out := make([]S, 0, len(preds))
	for _, p := range preds {
		w, ok := a.alg.GenerateWitness(p)
		if !ok {
			continue
		}
		out = append(out, w)
	}
	return out
}

package sfa

import (
	"sort"

	"svpa/internal/budget"
	"svpa/internal/move"
	"svpa/internal/util"
)

type outgoing[P any] struct {
	guard P
	to    int
}

// Determinize converts a to an equivalent deterministic SFA via symbolic
// subset construction over minterms (spec.md §4.4): at each subset state,
// the outgoing predicates of every member are gathered and partitioned
// into minterms by the algebra; each minterm's successor subset is the
// union of the targets of the moves it entails. Non-epsilon-free inputs
// are epsilon-eliminated first.
func (a *SFA[P, F, S]) Determinize(bgt *budget.Budget) (*SFA[P, F, S], error) {
	if a.isDeterministic {
		return a.Clone(), nil
	}
	epsFree := a
	if !a.isEpsilonFree {
		var err error
		epsFree, err = a.RemoveEpsilonMoves(bgt)
		if err != nil {
			return nil, err
		}
	}
	if bgt == nil {
		bgt = budget.Unbounded()
	}

	reached := util.NewReachedSet[string, []int]()
	reached.GetOrAdd(setKey([]int{epsFree.initial}), []int{epsFree.initial})

	var inputMoves []move.InputMove[P, move.None]
	var finals []int
	processed := 0
	for processed < reached.Len() {
		id := processed
		processed++
		if err := bgt.CheckState(); err != nil {
			return nil, err
		}
		set := reached.Payload(id)

		for _, q := range set {
			if epsFree.IsFinal(q) {
				finals = append(finals, id)
				break
			}
		}

		var out []outgoing[P]
		for _, q := range set {
			for _, m := range epsFree.inputMoves[q] {
				out = append(out, outgoing[P]{guard: m.Guard, to: m.To})
			}
		}
		if len(out) == 0 {
			continue
		}

		preds := make([]P, len(out))
		for i, o := range out {
			preds[i] = o.guard
		}
		minterms, err := epsFree.alg.GetMinterms(bgt, preds)
		if err != nil {
			return nil, err
		}

		for _, mt := range minterms {
			if err := bgt.CheckMinterm(); err != nil {
				return nil, err
			}
			union := make(map[int]struct{})
			for i, o := range out {
				if mt.Entails(uint(i)) {
					union[o.to] = struct{}{}
				}
			}
			if len(union) == 0 {
				continue
			}
			succ := sortedInts(union)
			succID, _ := reached.GetOrAdd(setKey(succ), succ)
			inputMoves = append(inputMoves, move.InputMove[P, move.None]{From: id, To: succID, Guard: mt.Pred})
		}
	}

	return MkSFA[P, F, S](inputMoves, nil, 0, finals, epsFree.alg, false, false)
}

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

package sfa

import (
	"sort"
	"strconv"
	"strings"

	"svpa/internal/budget"
	"svpa/internal/move"
	"svpa/internal/util"
)

// epsilonClosure returns the set of states reachable from s via epsilon
// moves only, s included.
func (a *SFA[P, F, S]) epsilonClosure(s int) []int {
	seen := map[int]struct{}{s: {}}
	queue := []int{s}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, m := range a.epsilonMoves[cur] {
			if _, ok := seen[m.To]; !ok {
				seen[m.To] = struct{}{}
				queue = append(queue, m.To)
			}
		}
	}
	out := make([]int, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// setKey builds a canonical string key for a sorted set of state ids, the
// same "comma-joined sorted names" idea other_examples/ha1tch-fsm-toolkit's
// stateSetName uses for its NFA→DFA subset construction.
func setKey(states []int) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

// RemoveEpsilonMoves eliminates epsilon moves via subset construction over
// epsilon-closures (spec.md §4.3): the frontier is a reached-map from set
// of states to a fresh id; for each frontier set, for each non-epsilon
// move out of any state in the set, the move's target's epsilon-closure
// is added to the frontier (allocating a fresh id if new) and a move is
// added at the new id. A frontier set is final iff any of its members is
// final.
func (a *SFA[P, F, S]) RemoveEpsilonMoves(bgt *budget.Budget) (*SFA[P, F, S], error) {
	if a.isEpsilonFree {
		return a.Clone(), nil
	}
	if bgt == nil {
		bgt = budget.Unbounded()
	}

	reached := util.NewReachedSet[string, []int]()
	initClosure := a.epsilonClosure(a.initial)
	reached.GetOrAdd(setKey(initClosure), initClosure)

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

		isFinal := false
		for _, q := range set {
			if a.IsFinal(q) {
				isFinal = true
				break
			}
		}
		if isFinal {
			finals = append(finals, id)
		}

		for _, q := range set {
			for _, m := range a.inputMoves[q] {
				closure := a.epsilonClosure(m.To)
				toID, _ := reached.GetOrAdd(setKey(closure), closure)
				inputMoves = append(inputMoves, move.InputMove[P, move.None]{From: id, To: toID, Guard: m.Guard})
			}
		}
	}

	return MkSFA[P, F, S](inputMoves, nil, 0, finals, a.alg, false, false)
}

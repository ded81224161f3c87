package sfa

import "svpa/internal/move"

// forwardReachable returns the states reachable from initial via any
// input or epsilon move.
func (a *SFA[P, F, S]) forwardReachable() map[int]struct{} {
	seen := map[int]struct{}{a.initial: {}}
	queue := []int{a.initial}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, m := range a.inputMoves[s] {
			if _, ok := seen[m.To]; !ok {
				seen[m.To] = struct{}{}
				queue = append(queue, m.To)
			}
		}
		for _, m := range a.epsilonMoves[s] {
			if _, ok := seen[m.To]; !ok {
				seen[m.To] = struct{}{}
				queue = append(queue, m.To)
			}
		}
	}
	return seen
}

// backwardReachable returns the states that can reach some final state.
func (a *SFA[P, F, S]) backwardReachable() map[int]struct{} {
	predsIn := make(map[int][]int)
	predsEps := make(map[int][]int)
	for from, ms := range a.inputMoves {
		for _, m := range ms {
			predsIn[m.To] = append(predsIn[m.To], from)
		}
	}
	for from, ms := range a.epsilonMoves {
		for _, m := range ms {
			predsEps[m.To] = append(predsEps[m.To], from)
		}
	}
	seen := make(map[int]struct{}, len(a.finals))
	var queue []int
	for f := range a.finals {
		if _, ok := seen[f]; !ok {
			seen[f] = struct{}{}
			queue = append(queue, f)
		}
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, p := range predsIn[s] {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				queue = append(queue, p)
			}
		}
		for _, p := range predsEps[s] {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				queue = append(queue, p)
			}
		}
	}
	return seen
}

// aliveStates returns states both forward-reachable from initial and
// backward-reachable to some final (spec.md §4.2, §9 "Alive state").
func (a *SFA[P, F, S]) aliveStates() map[int]struct{} {
	fwd := a.forwardReachable()
	bwd := a.backwardReachable()
	alive := make(map[int]struct{})
	for s := range fwd {
		if _, ok := bwd[s]; ok {
			alive[s] = struct{}{}
		}
	}
	return alive
}

// hasAliveFinal reports whether the initial state can reach a final
// state at all — the definition of a non-empty language.
func hasAliveFinal[P, F, S any](a *SFA[P, F, S]) bool {
	fwd := a.forwardReachable()
	for f := range a.finals {
		if _, ok := fwd[f]; ok {
			return true
		}
	}
	return false
}

// removeDeadStates drops every state that is not alive, keeping only the
// moves between surviving states, and recomputes maxStateID over the
// survivors.
func (a *SFA[P, F, S]) removeDeadStates() *SFA[P, F, S] {
	alive := a.aliveStates()

	newFinals := make(map[int]struct{})
	for f := range a.finals {
		if _, ok := alive[f]; ok {
			newFinals[f] = struct{}{}
		}
	}

	newInput := make(map[int][]move.InputMove[P, move.None])
	for from, ms := range a.inputMoves {
		if _, ok := alive[from]; !ok {
			continue
		}
		for _, m := range ms {
			if _, ok := alive[m.To]; ok {
				newInput[from] = append(newInput[from], m)
			}
		}
	}

	newEps := make(map[int][]move.EpsilonMove[move.None])
	for from, ms := range a.epsilonMoves {
		if _, ok := alive[from]; !ok {
			continue
		}
		for _, m := range ms {
			if _, ok := alive[m.To]; ok {
				newEps[from] = append(newEps[from], m)
			}
		}
	}

	maxID := a.initial
	for s := range alive {
		if s > maxID {
			maxID = s
		}
	}

	return &SFA[P, F, S]{
		alg:          a.alg,
		states:       alive,
		initial:      a.initial,
		finals:       newFinals,
		inputMoves:   newInput,
		epsilonMoves: newEps,
		maxStateID:   maxID,
	}
}

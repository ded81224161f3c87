package sfa

import (
	"svpa/internal/ba"
	"svpa/internal/move"
)

// MkSFA builds an SFA from a set of input moves, a set of epsilon moves,
// an initial state, a set of final states, and a Boolean algebra handle
// (spec.md §4.2). Unsatisfiable input guards are dropped; self-loop
// epsilon moves (from == to) are dropped. If normalize is set, parallel
// input moves between the same pair of states are collapsed into one
// move whose guard is their disjunction, and duplicate epsilon moves
// between the same pair are collapsed to one. If removeUnreachable is
// set, states not both forward-reachable from initial and
// backward-reachable to some final are dropped; if no final state
// survives that pass, MkSFA returns the canonical empty SFA.
func MkSFA[P, F, S any](
	inputMoves []move.InputMove[P, move.None],
	epsilonMoves []move.EpsilonMove[move.None],
	initial int,
	finals []int,
	alg ba.Algebra[P, F, S],
	removeUnreachable, normalize bool,
) (*SFA[P, F, S], error) {
	states := map[int]struct{}{initial: {}}
	finalSet := make(map[int]struct{}, len(finals))
	for _, f := range finals {
		finalSet[f] = struct{}{}
		states[f] = struct{}{}
	}

	var filteredInput []move.InputMove[P, move.None]
	for _, m := range inputMoves {
		if !alg.IsSatisfiable(m.Guard) {
			continue
		}
		filteredInput = append(filteredInput, m)
		states[m.From] = struct{}{}
		states[m.To] = struct{}{}
	}

	var filteredEps []move.EpsilonMove[move.None]
	for _, m := range epsilonMoves {
		if m.From == m.To {
			continue
		}
		filteredEps = append(filteredEps, m)
		states[m.From] = struct{}{}
		states[m.To] = struct{}{}
	}

	if normalize {
		filteredInput = normalizeInputMoves(filteredInput, alg)
		filteredEps = normalizeEpsilonMoves(filteredEps)
	}

	inputMap := groupInput(filteredInput)
	epsMap := groupEpsilon(filteredEps)

	maxID := initial
	for s := range states {
		if s > maxID {
			maxID = s
		}
	}

	a := &SFA[P, F, S]{
		alg:          alg,
		states:       states,
		initial:      initial,
		finals:       finalSet,
		inputMoves:   inputMap,
		epsilonMoves: epsMap,
		maxStateID:   maxID,
	}

	if removeUnreachable {
		a = a.removeDeadStates()
		if len(a.finals) == 0 {
			return Empty[P, F, S](alg), nil
		}
	}

	a.isEpsilonFree = len(a.epsilonMoves) == 0
	a.isDeterministic = a.isEpsilonFree && isGuardDisjointEverywhere(a, alg)
	a.isTotal = a.isDeterministic && isGuardTotalEverywhere(a, alg)
	a.isEmpty = !hasAliveFinal(a)
	return a, nil
}

func groupInput[P any](ms []move.InputMove[P, move.None]) map[int][]move.InputMove[P, move.None] {
	out := make(map[int][]move.InputMove[P, move.None])
	for _, m := range ms {
		out[m.From] = append(out[m.From], m)
	}
	return out
}

func groupEpsilon(ms []move.EpsilonMove[move.None]) map[int][]move.EpsilonMove[move.None] {
	out := make(map[int][]move.EpsilonMove[move.None])
	for _, m := range ms {
		out[m.From] = append(out[m.From], m)
	}
	return out
}

func normalizeInputMoves[P, F, S any](ms []move.InputMove[P, move.None], alg ba.Algebra[P, F, S]) []move.InputMove[P, move.None] {
	type key struct{ from, to int }
	order := make([]key, 0, len(ms))
	guards := make(map[key]P)
	for _, m := range ms {
		k := key{m.From, m.To}
		if g, ok := guards[k]; ok {
			guards[k] = alg.MkOr(g, m.Guard)
		} else {
			guards[k] = m.Guard
			order = append(order, k)
		}
	}
	out := make([]move.InputMove[P, move.None], 0, len(order))
	for _, k := range order {
		out = append(out, move.InputMove[P, move.None]{From: k.from, To: k.to, Guard: guards[k]})
	}
	return out
}

func normalizeEpsilonMoves(ms []move.EpsilonMove[move.None]) []move.EpsilonMove[move.None] {
	type key struct{ from, to int }
	seen := make(map[key]bool)
	var out []move.EpsilonMove[move.None]
	for _, m := range ms {
		k := key{m.From, m.To}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, m)
	}
	return out
}

// Empty returns the canonical empty SFA: a single non-final state with no
// moves.
func Empty[P, F, S any](alg ba.Algebra[P, F, S]) *SFA[P, F, S] {
	return &SFA[P, F, S]{
		alg:             alg,
		states:          map[int]struct{}{0: {}},
		initial:         0,
		finals:          map[int]struct{}{},
		inputMoves:      map[int][]move.InputMove[P, move.None]{},
		epsilonMoves:    map[int][]move.EpsilonMove[move.None]{},
		isDeterministic: true,
		isEpsilonFree:   true,
		isTotal:         false,
		isEmpty:         true,
		maxStateID:      0,
	}
}

// Full returns the canonical all-accepting SFA: a single final state with
// a True self-loop.
func Full[P, F, S any](alg ba.Algebra[P, F, S]) *SFA[P, F, S] {
	return &SFA[P, F, S]{
		alg:     alg,
		states:  map[int]struct{}{0: {}},
		initial: 0,
		finals:  map[int]struct{}{0: {}},
		inputMoves: map[int][]move.InputMove[P, move.None]{
			0: {{From: 0, To: 0, Guard: alg.True()}},
		},
		epsilonMoves:    map[int][]move.EpsilonMove[move.None]{},
		isDeterministic: true,
		isEpsilonFree:   true,
		isTotal:         true,
		isEmpty:         false,
		maxStateID:      0,
	}
}

// EpsilonOnly returns the SFA accepting exactly the empty word: a single
// state that is both initial and final, with no moves.
func EpsilonOnly[P, F, S any](alg ba.Algebra[P, F, S]) *SFA[P, F, S] {
	return &SFA[P, F, S]{
		alg:             alg,
		states:          map[int]struct{}{0: {}},
		initial:         0,
		finals:          map[int]struct{}{0: {}},
		inputMoves:      map[int][]move.InputMove[P, move.None]{},
		epsilonMoves:    map[int][]move.EpsilonMove[move.None]{},
		isDeterministic: true,
		isEpsilonFree:   true,
		isTotal:         false,
		isEmpty:         false,
		maxStateID:      0,
	}
}

// SinglePredicate returns the SFA accepting exactly the one-symbol words
// satisfying p: state 0 (initial) --p--> state 1 (final).
func SinglePredicate[P, F, S any](p P, alg ba.Algebra[P, F, S]) (*SFA[P, F, S], error) {
	if !alg.IsSatisfiable(p) {
		return Empty[P, F, S](alg), nil
	}
	return MkSFA[P, F, S](
		[]move.InputMove[P, move.None]{{From: 0, To: 1, Guard: p}},
		nil, 0, []int{1}, alg, false, false,
	)
}

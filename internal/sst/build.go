package sst

import (
	"fmt"

	"svpa/internal/ba"
	"svpa/internal/move"
	"svpa/internal/register"
)

// MkSST builds an SST from input moves (carrying functional register
// updates), epsilon moves (carrying simple register updates), an
// initial state, a register count, an output function, and a Boolean
// algebra handle (spec.md §3, §6). Every update is validated against
// numVars; a malformed update returns ErrMalformed (spec.md §7, kind 2).
// Unsatisfiable input guards are dropped; self-loop epsilon moves are
// dropped.
func MkSST[P, F, S any](
	inputMoves []move.InputMove[P, register.VariableUpdate[F, S]],
	epsilonMoves []move.EpsilonMove[register.SimpleVariableUpdate[S]],
	initial int,
	numVars int,
	output map[int]register.SimpleVariableUpdate[S],
	alg ba.Algebra[P, F, S],
	removeUnreachable bool,
) (*SST[P, F, S], error) {
	for _, u := range output {
		if err := register.Validate[register.NoFunc, S](u, numVars); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	}

	states := map[int]struct{}{initial: {}}
	var filteredInput []move.InputMove[P, register.VariableUpdate[F, S]]
	for _, m := range inputMoves {
		if !alg.IsSatisfiable(m.Guard) {
			continue
		}
		if err := register.Validate(m.Update, numVars); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		filteredInput = append(filteredInput, m)
		states[m.From] = struct{}{}
		states[m.To] = struct{}{}
	}

	var filteredEps []move.EpsilonMove[register.SimpleVariableUpdate[S]]
	for _, m := range epsilonMoves {
		if m.From == m.To {
			continue
		}
		if err := register.Validate[register.NoFunc, S](m.Update, numVars); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		filteredEps = append(filteredEps, m)
		states[m.From] = struct{}{}
		states[m.To] = struct{}{}
	}
	for s := range output {
		states[s] = struct{}{}
	}

	inputMap := make(map[int][]move.InputMove[P, register.VariableUpdate[F, S]])
	for _, m := range filteredInput {
		inputMap[m.From] = append(inputMap[m.From], m)
	}
	epsMap := make(map[int][]move.EpsilonMove[register.SimpleVariableUpdate[S]])
	for _, m := range filteredEps {
		epsMap[m.From] = append(epsMap[m.From], m)
	}

	outCopy := make(map[int]register.SimpleVariableUpdate[S], len(output))
	for s, u := range output {
		outCopy[s] = u
	}

	maxID := initial
	for s := range states {
		if s > maxID {
			maxID = s
		}
	}

	t := &SST[P, F, S]{
		alg:          alg,
		states:       states,
		initial:      initial,
		numVars:      numVars,
		output:       outCopy,
		inputMoves:   inputMap,
		epsilonMoves: epsMap,
		maxStateID:   maxID,
	}

	if removeUnreachable {
		t = t.RemoveUnreachableStates()
	}

	t.isEpsilonFree = len(t.epsilonMoves) == 0
	t.isDeterministic = t.isEpsilonFree && isGuardDisjointEverywhere(t)
	t.isTotal = t.isDeterministic && isGuardTotalEverywhere(t)
	return t, nil
}

func isGuardDisjointEverywhere[P, F, S any](t *SST[P, F, S]) bool {
	for _, ms := range t.inputMoves {
		for i := 0; i < len(ms); i++ {
			for j := i + 1; j < len(ms); j++ {
				if t.alg.IsSatisfiable(t.alg.MkAnd(ms[i].Guard, ms[j].Guard)) {
					return false
				}
			}
		}
	}
	return true
}

func isGuardTotalEverywhere[P, F, S any](t *SST[P, F, S]) bool {
	for s := range t.states {
		ms := t.inputMoves[s]
		if len(ms) == 0 {
			return false
		}
		disj := ms[0].Guard
		for _, m := range ms[1:] {
			disj = t.alg.MkOr(disj, m.Guard)
		}
		if t.alg.IsSatisfiable(t.alg.MkNot(disj)) {
			return false
		}
	}
	return true
}

// Empty returns the canonical empty SST: a single non-final state with
// one register and no moves.
func Empty[P, F, S any](alg ba.Algebra[P, F, S]) *SST[P, F, S] {
	return &SST[P, F, S]{
		alg:             alg,
		states:          map[int]struct{}{0: {}},
		initial:         0,
		numVars:         1,
		output:          map[int]register.SimpleVariableUpdate[S]{},
		inputMoves:      map[int][]move.InputMove[P, register.VariableUpdate[F, S]]{},
		epsilonMoves:    map[int][]move.EpsilonMove[register.SimpleVariableUpdate[S]]{},
		isDeterministic: true,
		isEpsilonFree:   true,
		isTotal:         false,
		maxStateID:      0,
	}
}

// EpsilonOnly returns the SST accepting exactly the empty word and
// outputting the empty string: a single state, both initial and final,
// with no moves and an output leaving register 0 as its (empty) initial
// value.
func EpsilonOnly[P, F, S any](alg ba.Algebra[P, F, S]) *SST[P, F, S] {
	return &SST[P, F, S]{
		alg:          alg,
		states:       map[int]struct{}{0: {}},
		initial:      0,
		numVars:      1,
		output:       map[int]register.SimpleVariableUpdate[S]{0: register.IdentityVarUp[register.NoFunc, S](1)},
		inputMoves:   map[int][]move.InputMove[P, register.VariableUpdate[F, S]]{},
		epsilonMoves: map[int][]move.EpsilonMove[register.SimpleVariableUpdate[S]]{},

		isDeterministic: true,
		isEpsilonFree:   true,
		isTotal:         false,
		maxStateID:      0,
	}
}

// SinglePredicate returns the SST that reads exactly one symbol
// satisfying p and updates its registers with the given functional
// update: state 0 (initial) --p, update--> state 1 (final, output x0).
func SinglePredicate[P, F, S any](p P, update register.VariableUpdate[F, S], alg ba.Algebra[P, F, S]) (*SST[P, F, S], error) {
	if !alg.IsSatisfiable(p) {
		return Empty[P, F, S](alg), nil
	}
	inputMoves := []move.InputMove[P, register.VariableUpdate[F, S]]{
		{From: 0, To: 1, Guard: p, Update: update},
	}
	output := map[int]register.SimpleVariableUpdate[S]{
		1: register.IdentityVarUp[register.NoFunc, S](len(update)),
	}
	return MkSST[P, F, S](inputMoves, nil, 0, len(update), output, alg, false)
}

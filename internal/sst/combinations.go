package sst

import (
	"svpa/internal/budget"
	"svpa/internal/move"
	"svpa/internal/register"
)

// renamingFor returns a map from 0..n-1 to offset..offset+n-1, the
// disjoint-register-space placement CombineUpdates/CombineOutputUpdates
// expect (spec.md §4.12).
func renamingFor(n, offset int) map[int]int {
	m := make(map[int]int, n)
	for i := 0; i < n; i++ {
		m[i] = i + offset
	}
	return m
}

type productPair struct{ left, right int }

// Combine returns the SST computing w -> outputOn(A,w)·outputOn(B,w)
// (spec.md §4.13, "combine"): a synchronized product over satisfiable
// guard conjunctions, with A's and B's registers coexisting under fresh
// names and the joint output the concatenation of the two renamed
// outputs. Both operands are assumed single-valued (spec.md §9's open
// question — callers must ensure functionality; Combine does not check
// it).
func Combine[P, F, S any](a, b *SST[P, F, S], bgt *budget.Budget) (*SST[P, F, S], error) {
	if bgt == nil {
		bgt = budget.Unbounded()
	}
	renameA := renamingFor(a.numVars, 0)
	renameB := renamingFor(b.numVars, a.numVars)
	totalRegs := a.numVars + b.numVars

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
	getID(productPair{a.initial, b.initial})

	var inputMoves []move.InputMove[P, register.VariableUpdate[F, S]]
	output := make(map[int]register.SimpleVariableUpdate[S])
	processed := 0
	for processed < len(order) {
		pair := order[processed]
		id := processed
		processed++
		if err := bgt.CheckState(); err != nil {
			return nil, err
		}
		if outA, ok := a.Output(pair.left); ok {
			if outB, ok2 := b.Output(pair.right); ok2 {
				output[id] = register.CombineOutputUpdates(renameA, renameB, outA, outB, totalRegs)
			}
		}
		for _, ma := range a.inputMoves[pair.left] {
			for _, mb := range b.inputMoves[pair.right] {
				g := a.alg.MkAnd(ma.Guard, mb.Guard)
				if err := bgt.CheckSat(); err != nil {
					return nil, err
				}
				if !a.alg.IsSatisfiable(g) {
					continue
				}
				n := productPair{ma.To, mb.To}
				toID, _ := getID(n)
				update := register.CombineUpdates(renameA, renameB, ma.Update, mb.Update, totalRegs)
				inputMoves = append(inputMoves, move.InputMove[P, register.VariableUpdate[F, S]]{
					From: id, To: toID, Guard: g, Update: update,
				})
			}
		}
	}

	return MkSST[P, F, S](inputMoves, nil, 0, totalRegs, output, a.alg, true)
}

// Union returns the SST accepting either A's or B's run: a fresh initial
// state with epsilon edges to A's and B's renumbered initials, both
// clearing the shared register set (spec.md §4.13, "union").
func Union[P, F, S any](a, b *SST[P, F, S]) (*SST[P, F, S], error) {
	totalRegs := a.numVars
	if b.numVars > totalRegs {
		totalRegs = b.numVars
	}
	offsetB := a.maxStateID + 1
	newInit := b.maxStateID + 1 + offsetB

	var inputMoves []move.InputMove[P, register.VariableUpdate[F, S]]
	output := make(map[int]register.SimpleVariableUpdate[S])
	for _, s := range a.GetStates() {
		for _, m := range a.inputMoves[s] {
			inputMoves = append(inputMoves, move.InputMove[P, register.VariableUpdate[F, S]]{
				From: m.From, To: m.To, Guard: m.Guard,
				Update: register.LiftToNVars(m.Update, totalRegs),
			})
		}
		if out, ok := a.Output(s); ok {
			output[s] = register.LiftToNVars(out, totalRegs)
		}
	}
	for _, s := range b.GetStates() {
		for _, m := range b.inputMoves[s] {
			inputMoves = append(inputMoves, move.InputMove[P, register.VariableUpdate[F, S]]{
				From: m.From + offsetB, To: m.To + offsetB, Guard: m.Guard,
				Update: register.LiftToNVars(m.Update, totalRegs),
			})
		}
		if out, ok := b.Output(s); ok {
			output[s+offsetB] = register.LiftToNVars(out, totalRegs)
		}
	}

	epsilonMoves := []move.EpsilonMove[register.SimpleVariableUpdate[S]]{
		{From: newInit, To: a.initial, Update: register.EmptyVarUp[register.NoFunc, S](totalRegs)},
		{From: newInit, To: b.initial + offsetB, Update: register.EmptyVarUp[register.NoFunc, S](totalRegs)},
	}

	return MkSST[P, F, S](inputMoves, epsilonMoves, newInit, totalRegs, output, a.alg, true)
}

// Concatenate returns the SST computing w -> outputOn(A,u)·outputOn(B,v)
// for w=u·v (spec.md §4.13, "concatenate"): both operands are renamed
// onto a shared register space with one extra accumulator register
// x_acc; B's moves additionally preserve x_acc; each final of A links
// via epsilon to B's initial, setting x_acc to A's output and clearing
// the rest; B's finals output x_acc·outB.
func Concatenate[P, F, S any](a, b *SST[P, F, S]) (*SST[P, F, S], error) {
	sharedRegs := a.numVars
	if b.numVars > sharedRegs {
		sharedRegs = b.numVars
	}
	accIdx := sharedRegs
	totalRegs := sharedRegs + 1

	offsetB := a.maxStateID + 1

	var inputMoves []move.InputMove[P, register.VariableUpdate[F, S]]
	for _, s := range a.GetStates() {
		for _, m := range a.inputMoves[s] {
			inputMoves = append(inputMoves, move.InputMove[P, register.VariableUpdate[F, S]]{
				From: m.From, To: m.To, Guard: m.Guard,
				Update: register.LiftToNVars(m.Update, totalRegs),
			})
		}
	}
	for _, s := range b.GetStates() {
		for _, m := range b.inputMoves[s] {
			lifted := register.LiftToNVars(m.Update, totalRegs)
			lifted[accIdx] = register.TokenSeq[F, S]{register.Var[F, S](accIdx)}
			inputMoves = append(inputMoves, move.InputMove[P, register.VariableUpdate[F, S]]{
				From: m.From + offsetB, To: m.To + offsetB, Guard: m.Guard, Update: lifted,
			})
		}
	}

	var epsilonMoves []move.EpsilonMove[register.SimpleVariableUpdate[S]]
	for _, f := range a.GetFinalStates() {
		outA, _ := a.Output(f)
		u := register.EmptyVarUp[register.NoFunc, S](totalRegs)
		u[accIdx] = append(register.TokenSeq[register.NoFunc, S]{}, register.LiftToNVars(outA, totalRegs)[0]...)
		epsilonMoves = append(epsilonMoves, move.EpsilonMove[register.SimpleVariableUpdate[S]]{
			From: f, To: b.initial + offsetB, Update: u,
		})
	}

	output := make(map[int]register.SimpleVariableUpdate[S])
	for _, f := range b.GetFinalStates() {
		outB, _ := b.Output(f)
		u := register.IdentityVarUp[register.NoFunc, S](totalRegs)
		var row register.TokenSeq[register.NoFunc, S]
		row = append(row, register.Var[register.NoFunc, S](accIdx))
		row = append(row, register.LiftToNVars(outB, totalRegs)[0]...)
		u[0] = row
		output[f+offsetB] = u
	}

	return MkSST[P, F, S](inputMoves, epsilonMoves, a.initial, totalRegs, output, a.alg, true)
}

// Star returns the SST computing w -> outputOn(A,u1)·outputOn(A,u2)·...
// for w = u1·u2·...·uk, each ui accepted by A (spec.md §4.13, "star"): a
// fresh initial/final state holds the accumulator; each old final links
// back to it via epsilon, appending its output to the accumulator in
// left-to-right order and clearing the rest.
func (a *SST[P, F, S]) Star() (*SST[P, F, S], error) {
	return starLike(a, false)
}

// LeftStar is Star with the accumulation order reversed: each iteration's
// output is prepended rather than appended (spec.md §4.13,
// "star / leftStar"; §8 scenario 4).
func (a *SST[P, F, S]) LeftStar() (*SST[P, F, S], error) {
	return starLike(a, true)
}

func starLike[P, F, S any](a *SST[P, F, S], left bool) (*SST[P, F, S], error) {
	totalRegs := a.numVars + 1
	accIdx := a.numVars
	newState := a.maxStateID + 1

	var inputMoves []move.InputMove[P, register.VariableUpdate[F, S]]
	for _, s := range a.GetStates() {
		for _, m := range a.inputMoves[s] {
			lifted := register.LiftToNVars(m.Update, totalRegs)
			lifted[accIdx] = register.TokenSeq[F, S]{register.Var[F, S](accIdx)}
			inputMoves = append(inputMoves, move.InputMove[P, register.VariableUpdate[F, S]]{
				From: m.From, To: m.To, Guard: m.Guard, Update: lifted,
			})
		}
	}

	var epsilonMoves []move.EpsilonMove[register.SimpleVariableUpdate[S]]
	initUpdate := register.EmptyVarUp[register.NoFunc, S](totalRegs)
	initUpdate[accIdx] = register.TokenSeq[register.NoFunc, S]{register.Var[register.NoFunc, S](accIdx)}
	epsilonMoves = append(epsilonMoves, move.EpsilonMove[register.SimpleVariableUpdate[S]]{
		From: newState, To: a.initial, Update: initUpdate,
	})
	for _, f := range a.GetFinalStates() {
		outF, _ := a.Output(f)
		outRow := register.LiftToNVars(outF, totalRegs)[0]
		u := register.EmptyVarUp[register.NoFunc, S](totalRegs)
		var row register.TokenSeq[register.NoFunc, S]
		if left {
			row = append(row, outRow...)
			row = append(row, register.Var[register.NoFunc, S](accIdx))
		} else {
			row = append(row, register.Var[register.NoFunc, S](accIdx))
			row = append(row, outRow...)
		}
		u[accIdx] = row
		epsilonMoves = append(epsilonMoves, move.EpsilonMove[register.SimpleVariableUpdate[S]]{
			From: f, To: newState, Update: u,
		})
	}

	output := map[int]register.SimpleVariableUpdate[S]{
		newState: func() register.SimpleVariableUpdate[S] {
			u := register.IdentityVarUp[register.NoFunc, S](totalRegs)
			u[0] = register.TokenSeq[register.NoFunc, S]{register.Var[register.NoFunc, S](accIdx)}
			return u
		}(),
	}

	return MkSST[P, F, S](inputMoves, epsilonMoves, newState, totalRegs, output, a.alg, true)
}

package sst

import (
	"strconv"
	"strings"

	"svpa/internal/budget"
	"svpa/internal/move"
	"svpa/internal/register"
	"svpa/internal/util"
)

// ShufflePair names one component of a Shuffle call (spec.md §4.13,
// "shuffle(pairs, isLeft)"). The buffer register its output occupies in
// the combined register space follows from its position in the slice
// passed to Shuffle.
type ShufflePair[P, F, S any] struct {
	SST *SST[P, F, S]
}

// jointMoves enumerates every combination of one outgoing move per
// component whose guards are jointly satisfiable, from the tuple of
// current per-component states.
func jointMoves[P, F, S any](components []*SST[P, F, S], tuple []int, alg interface {
	MkAnd(a, b P) P
	IsSatisfiable(p P) bool
}) []struct {
	guard P
	to    []int
	upds  []register.VariableUpdate[F, S]
} {
	var results []struct {
		guard P
		to    []int
		upds  []register.VariableUpdate[F, S]
	}
	var rec func(i int, guard P, hasGuard bool, to []int, upds []register.VariableUpdate[F, S])
	rec = func(i int, guard P, hasGuard bool, to []int, upds []register.VariableUpdate[F, S]) {
		if i == len(components) {
			results = append(results, struct {
				guard P
				to    []int
				upds  []register.VariableUpdate[F, S]
			}{guard, append([]int(nil), to...), append([]register.VariableUpdate[F, S](nil), upds...)})
			return
		}
		for _, m := range components[i].inputMoves[tuple[i]] {
			var g P
			if hasGuard {
				g = alg.MkAnd(guard, m.Guard)
			} else {
				g = m.Guard
			}
			if !alg.IsSatisfiable(g) {
				continue
			}
			rec(i+1, g, true, append(to, m.To), append(upds, m.Update))
		}
	}
	rec(0, *new(P), false, nil, nil)
	return results
}

func tupleKey(copyIdx int, tuple []int) string {
	parts := make([]string, len(tuple)+1)
	parts[0] = strconv.Itoa(copyIdx)
	for i, s := range tuple {
		parts[i+1] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

func allFinal[P, F, S any](components []*SST[P, F, S], tuple []int) bool {
	for i, c := range components {
		if !c.IsFinal(tuple[i]) {
			return false
		}
	}
	return true
}

// Shuffle builds the SST for the shuffle of components sharing the same
// input domain (spec.md §4.13, "shuffle"): three synchronized copies of
// their n-ary product. Copy 1 runs the product to a joint-final tuple,
// snapshotting each component's output into a buffer register; copies 2
// and 3 alternate running the product again, folding
// buf_i·out(q_i) for every component into a shared accumulator each
// time a joint-final tuple is reached, until the input is exhausted.
// isLeft places the freshly folded term on the left of the accumulator
// instead of the right.
func Shuffle[P, F, S any](components []ShufflePair[P, F, S], isLeft bool, bgt *budget.Budget) (*SST[P, F, S], error) {
	if len(components) == 0 {
		return nil, ErrMalformed
	}
	if bgt == nil {
		bgt = budget.Unbounded()
	}
	ssts := make([]*SST[P, F, S], len(components))
	renameOf := make([]map[int]int, len(components))
	offset := 0
	for i, c := range components {
		ssts[i] = c.SST
		renameOf[i] = renamingFor(c.SST.numVars, offset)
		offset += c.SST.numVars
	}
	compRegs := offset
	bufBase := compRegs
	accIdx := bufBase + len(components)
	totalRegs := accIdx + 1
	alg := ssts[0].alg

	reached1 := util.NewReachedSet[string, []int]()
	init1 := make([]int, len(ssts))
	for i, s := range ssts {
		init1[i] = s.initial
	}
	reached1.GetOrAdd(tupleKey(1, init1), init1)
	reached2 := util.NewReachedSet[string, []int]()
	reached3 := util.NewReachedSet[string, []int]()

	var inputMoves []move.InputMove[P, register.VariableUpdate[F, S]]
	var epsilonMoves []move.EpsilonMove[register.SimpleVariableUpdate[S]]
	output := make(map[int]register.SimpleVariableUpdate[S])

	const copy1Base, copy2Base, copy3Base = 0, 1_000_000, 2_000_000

	processed := 0
	for processed < reached1.Len() {
		id := processed
		processed++
		if err := bgt.CheckState(); err != nil {
			return nil, err
		}
		tuple := reached1.Payload(id)
		if allFinal(ssts, tuple) {
			bufUpdate := register.EmptyVarUp[register.NoFunc, S](totalRegs)
			for i, c := range ssts {
				out, _ := c.Output(tuple[i])
				renamed := register.RenameVars(out, renameOf[i])
				lifted := register.LiftToNVars(register.VariableUpdate[register.NoFunc, S](renamed), totalRegs)
				// RenameVars only rewrites variable references, never row
				// position, so the component's output row stays at 0.
				bufUpdate[bufBase+i] = lifted[0]
			}
			id2, _ := reached2.GetOrAdd(tupleKey(copy2Base, init1), init1)
			epsilonMoves = append(epsilonMoves, move.EpsilonMove[register.SimpleVariableUpdate[S]]{
				From: copy1Base + id, To: copy2Base + id2, Update: bufUpdate,
			})
		}
		choices := jointMoves(ssts, tuple, alg)
		for _, ch := range choices {
			if err := bgt.CheckSat(); err != nil {
				return nil, err
			}
			toID, _ := reached1.GetOrAdd(tupleKey(1, ch.to), ch.to)
			u := register.EmptyVarUp[F, S](totalRegs)
			for i := range ssts {
				rn := register.RenameVars(ch.upds[i], renameOf[i])
				lifted := register.LiftToNVars(rn, totalRegs)
				// lifted still holds component i's rows at their local
				// positions (LiftToNVars only pads past len(rn)); renameOf[i]
				// maps each local row to its global position.
				for oldIdx, newIdx := range renameOf[i] {
					u[newIdx] = lifted[oldIdx]
				}
			}
			inputMoves = append(inputMoves, move.InputMove[P, register.VariableUpdate[F, S]]{
				From: copy1Base + id, To: copy1Base + toID, Guard: ch.guard, Update: u,
			})
		}
	}

	runCycle := func(reachedFrom, reachedTo *util.ReachedSet[string, []int], fromBase, toBase int) error {
		processed := 0
		for processed < reachedFrom.Len() {
			id := processed
			processed++
			if err := bgt.CheckState(); err != nil {
				return err
			}
			tuple := reachedFrom.Payload(id)
			if allFinal(ssts, tuple) {
				accUpdate := register.EmptyVarUp[register.NoFunc, S](totalRegs)
				var fold register.TokenSeq[register.NoFunc, S]
				for i, c := range ssts {
					out, _ := c.Output(tuple[i])
					renamed := register.RenameVars(out, renameOf[i])
					lifted := register.LiftToNVars(register.VariableUpdate[register.NoFunc, S](renamed), totalRegs)
					// RenameVars only rewrites variable references, never
					// row position, so the component's output row stays
					// at 0, regardless of its global register offset.
					outI := lifted[0]
					fold = append(fold, register.Var[register.NoFunc, S](bufBase+i))
					fold = append(fold, outI...)
					// Resnapshot x_buf_i to this segment's output so the
					// next copy-2/copy-3 round folds buf_i·out_i against
					// the segment just completed, not a stale older one.
					accUpdate[bufBase+i] = append(register.TokenSeq[register.NoFunc, S]{}, outI...)
				}
				var row register.TokenSeq[register.NoFunc, S]
				if isLeft {
					row = append(row, fold...)
					row = append(row, register.Var[register.NoFunc, S](accIdx))
				} else {
					row = append(row, register.Var[register.NoFunc, S](accIdx))
					row = append(row, fold...)
				}
				accUpdate[accIdx] = row
				toID, _ := reachedTo.GetOrAdd(tupleKey(toBase, init1), init1)
				epsilonMoves = append(epsilonMoves, move.EpsilonMove[register.SimpleVariableUpdate[S]]{
					From: fromBase + id, To: toBase + toID, Update: accUpdate,
				})

				finalOut := register.IdentityVarUp[register.NoFunc, S](totalRegs)
				finalOut[0] = register.TokenSeq[register.NoFunc, S]{register.Var[register.NoFunc, S](accIdx)}
				output[fromBase+id] = finalOut
			}
			choices := jointMoves(ssts, tuple, alg)
			for _, ch := range choices {
				if err := bgt.CheckSat(); err != nil {
					return err
				}
				toID, _ := reachedFrom.GetOrAdd(tupleKey(fromBase, ch.to), ch.to)
				u := register.EmptyVarUp[F, S](totalRegs)
				for i := range ssts {
					rn := register.RenameVars(ch.upds[i], renameOf[i])
					lifted := register.LiftToNVars(rn, totalRegs)
					for oldIdx, newIdx := range renameOf[i] {
						u[newIdx] = lifted[oldIdx]
					}
				}
				u[accIdx] = register.TokenSeq[F, S]{register.Var[F, S](accIdx)}
				for i := range ssts {
					u[bufBase+i] = register.TokenSeq[F, S]{register.Var[F, S](bufBase + i)}
				}
				inputMoves = append(inputMoves, move.InputMove[P, register.VariableUpdate[F, S]]{
					From: fromBase + id, To: fromBase + toID, Guard: ch.guard, Update: u,
				})
			}
		}
		return nil
	}

	if err := runCycle(reached2, reached3, copy2Base, copy3Base); err != nil {
		return nil, err
	}
	if err := runCycle(reached3, reached2, copy3Base, copy2Base); err != nil {
		return nil, err
	}

	return MkSST[P, F, S](inputMoves, epsilonMoves, copy1Base+0, totalRegs, output, alg, true)
}

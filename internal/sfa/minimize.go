package sfa

import (
	"sort"

	"svpa/internal/budget"
	"svpa/internal/move"
	"svpa/internal/util"
)

// Minimize returns the minimal deterministic SFA equivalent to a
// (spec.md §4.9), via symbolic Hopcroft-style block refinement: a is
// determinized and totalized first; the partition starts as {finals,
// non-finals}; each splitter block popped from the worklist is used to
// compute pi(s), the guards on moves into the splitter, and the states
// entering it are grouped by minterm over those guards and split out of
// whatever block they currently sit in, exactly as util.Partition.Split
// implements the worklist rule.
func (a *SFA[P, F, S]) Minimize(bgt *budget.Budget) (*SFA[P, F, S], error) {
	det, err := a.mkTotalDeterministic(bgt)
	if err != nil {
		return nil, err
	}
	if bgt == nil {
		bgt = budget.Unbounded()
	}

	part := util.NewPartition(det.GetFinalStates(), nonFinalStates(det))

	for {
		if err := bgt.CheckState(); err != nil {
			return nil, err
		}
		_, members, ok := part.PopSplitter()
		if !ok {
			break
		}
		inSplitter := make(map[int]bool, len(members))
		for _, s := range members {
			inSplitter[s] = true
		}

		var guards []P
		var srcOf []int
		for _, s := range det.GetStates() {
			for _, m := range det.inputMoves[s] {
				if inSplitter[m.To] {
					guards = append(guards, m.Guard)
					srcOf = append(srcOf, s)
				}
			}
		}
		if len(guards) == 0 {
			continue
		}
		minterms, err := det.alg.GetMinterms(bgt, guards)
		if err != nil {
			return nil, err
		}
		for _, mt := range minterms {
			if err := bgt.CheckMinterm(); err != nil {
				return nil, err
			}
			xSet := make(map[int]bool)
			for i, s := range srcOf {
				if mt.Entails(uint(i)) {
					xSet[s] = true
				}
			}
			if len(xSet) == 0 {
				continue
			}
			blockIDs := make([]int, 0, len(part.Blocks()))
			for id := range part.Blocks() {
				blockIDs = append(blockIDs, id)
			}
			// Sorted so that which block absorbs the split (and thus
			// final state numbering, spec.md line 134) depends only on
			// input moves order and worklist order, not map iteration.
			sort.Ints(blockIDs)
			for _, blkID := range blockIDs {
				blkMembers := part.Members(blkID)
				var intersect []int
				for _, s := range blkMembers {
					if xSet[s] {
						intersect = append(intersect, s)
					}
				}
				if len(intersect) > 0 && len(intersect) < len(blkMembers) {
					part.Split(blkID, intersect)
				}
			}
		}
	}

	return buildFromPartition(det, part)
}

func nonFinalStates[P, F, S any](a *SFA[P, F, S]) []int {
	var out []int
	for _, s := range a.GetStates() {
		if !a.IsFinal(s) {
			out = append(out, s)
		}
	}
	return out
}

func buildFromPartition[P, F, S any](det *SFA[P, F, S], part *util.Partition) (*SFA[P, F, S], error) {
	blockOfState := make(map[int]int)
	blockIDs := make([]int, 0, len(part.Blocks()))
	for id := range part.Blocks() {
		blockIDs = append(blockIDs, id)
	}
	// Sorted for the same reason as the splitter loop above: final
	// state numbering must depend only on input moves order and
	// worklist order (spec.md line 134), not map iteration.
	sort.Ints(blockIDs)
	newID := make(map[int]int, len(blockIDs))
	for i, id := range blockIDs {
		newID[id] = i
		for _, s := range part.Members(id) {
			blockOfState[s] = i
		}
	}

	var inputMoves []move.InputMove[P, move.None]
	for _, s := range det.GetStates() {
		from := blockOfState[s]
		for _, m := range det.inputMoves[s] {
			inputMoves = append(inputMoves, move.InputMove[P, move.None]{
				From: from, To: blockOfState[m.To], Guard: m.Guard,
			})
		}
	}

	var finals []int
	seenFinal := make(map[int]bool)
	for _, f := range det.GetFinalStates() {
		b := blockOfState[f]
		if !seenFinal[b] {
			seenFinal[b] = true
			finals = append(finals, b)
		}
	}

	return MkSFA[P, F, S](inputMoves, nil, blockOfState[det.initial], finals, det.alg, true, true)
}

package register

// ComposeWith treats simple as a substitution from the pre-state
// registers to token sequences and applies it to every token sequence in
// next, expanding each TokenVariable occurrence into the corresponding
// sequence from simple (spec.md §4.12, "composeWith(simple, next)").
// Function tokens already present in next are preserved untouched — this
// is the one place a FunctionalVariableUpdate is legal on the right, used
// during SST epsilon-elimination to fold a simple epsilon update into a
// functional input-move update (spec.md §4.11).
//
// The result has the same number of registers as next; simple must have
// one row per register that next's TokenVariable tokens can reference.
func ComposeWith[F, S any](simple SimpleVariableUpdate[S], next VariableUpdate[F, S]) VariableUpdate[F, S] {
	out := make(VariableUpdate[F, S], len(next))
	for i, seq := range next {
		var expanded TokenSeq[F, S]
		for _, tok := range seq {
			switch tok.Kind {
			case TokenVariable:
				expanded = append(expanded, expandVariable[F, S](simple, tok.Variable)...)
			default:
				// TokenConstant and TokenFunction pass through unchanged.
				expanded = append(expanded, tok)
			}
		}
		out[i] = expanded
	}
	return out
}

// expandVariable converts one row of a SimpleVariableUpdate[S] into a
// TokenSeq[F, S], carrying constant and variable tokens across the F
// type parameter (a SimpleVariableUpdate never holds a TokenFunction, so
// this conversion is always legal).
func expandVariable[F, S any](simple SimpleVariableUpdate[S], idx int) TokenSeq[F, S] {
	if idx < 0 || idx >= len(simple) {
		return nil
	}
	row := simple[idx]
	out := make(TokenSeq[F, S], len(row))
	for i, tok := range row {
		switch tok.Kind {
		case TokenConstant:
			out[i] = Const[F, S](tok.Symbol)
		case TokenVariable:
			out[i] = Var[F, S](tok.Variable)
		default:
			// Unreachable for a well-formed SimpleVariableUpdate.
			out[i] = Token[F, S]{Kind: TokenConstant, Symbol: tok.Symbol}
		}
	}
	return out
}

// ComposeSimple composes two simple updates: simple ∘ simple = simple.
// Used when chaining epsilon-move updates along an epsilon-closure path
// (spec.md §4.11), where every edge update is simple.
func ComposeSimple[S any](a, b SimpleVariableUpdate[S]) SimpleVariableUpdate[S] {
	return ComposeWith[NoFunc, S](a, b)
}

// CombineUpdates builds the disjoint-union update on a register space
// that is the concatenation of renamed variables of A and B (spec.md
// §4.12, "combineUpdates(renameA, renameB, uA, uB)"): renameA/renameB map
// each side's original register indices into the combined space, tokens
// inside uA/uB are rewritten through the matching map, and the renamed
// rows are placed at their mapped positions in a totalRegs-register
// result. Positions with no contributor from either side keep the
// identity update (register i unchanged), which is always well-formed.
func CombineUpdates[F, S any](renameA, renameB map[int]int, uA, uB VariableUpdate[F, S], totalRegs int) VariableUpdate[F, S] {
	result := IdentityVarUp[F, S](totalRegs)
	placeRenamed(result, renameA, RenameVars(uA, renameA))
	placeRenamed(result, renameB, RenameVars(uB, renameB))
	return result
}

func placeRenamed[F, S any](result VariableUpdate[F, S], rename map[int]int, renamed VariableUpdate[F, S]) {
	for oldIdx, seq := range renamed {
		if newIdx, ok := rename[oldIdx]; ok {
			result[newIdx] = seq
		}
	}
}

// CombineOutputUpdates builds the single-vector output used at the joint
// final states of an SST Combine (spec.md §4.12,
// "combineOutputUpdates"): the combined output is out_A · out_B,
// renamed into the combined register space, placed in register 0; every
// other register keeps the identity update.
func CombineOutputUpdates[S any](renameA, renameB map[int]int, outA, outB SimpleVariableUpdate[S], totalRegs int) SimpleVariableUpdate[S] {
	result := IdentityVarUp[NoFunc, S](totalRegs)
	renamedA := RenameVars(outA, renameA)
	renamedB := RenameVars(outB, renameB)
	var out0 TokenSeq[NoFunc, S]
	if len(renamedA) > 0 {
		out0 = append(out0, renamedA[0]...)
	}
	if len(renamedB) > 0 {
		out0 = append(out0, renamedB[0]...)
	}
	result[0] = out0
	return result
}

package util

// WitnessTree is a discovery-tree union-find: every node is linked to the
// node that first discovered it, tagged with the input symbol that
// justified the link. Walking a node up to its root and reversing the
// collected symbols reconstructs the input word that reaches it from the
// root — the "witness" spec.md §4.8 and §4.10 need to turn a Boolean
// equivalence/ambiguity check into a concrete counterexample word.
//
// This plays the role spec.md calls "a union-find with accumulated
// witness words": nodes are merged into the tree exactly once (the first
// time they're discovered by the worklist), so Find is really just "has
// this node been discovered" and the payload of interest is the path to
// the root, not a union-by-rank forest of arbitrary merges.
type WitnessTree[S any] struct {
	parent []int
	via    []S
	hasVia []bool
}

// NewWitnessTree creates an empty tree.
func NewWitnessTree[S any]() *WitnessTree[S] {
	return &WitnessTree[S]{}
}

// NewRoot allocates a fresh root node (its own parent, no incoming
// symbol) and returns its id.
func (t *WitnessTree[S]) NewRoot() int {
	id := len(t.parent)
	t.parent = append(t.parent, id)
	var zero S
	t.via = append(t.via, zero)
	t.hasVia = append(t.hasVia, false)
	return id
}

// NewChild allocates a fresh node linked to parent via the given symbol.
func (t *WitnessTree[S]) NewChild(parent int, via S) int {
	id := len(t.parent)
	t.parent = append(t.parent, parent)
	t.via = append(t.via, via)
	t.hasVia = append(t.hasVia, true)
	return id
}

// Witness reconstructs the word read from id's root down to id.
func (t *WitnessTree[S]) Witness(id int) []S {
	var reversed []S
	for t.hasVia[id] {
		reversed = append(reversed, t.via[id])
		id = t.parent[id]
	}
	word := make([]S, len(reversed))
	for i, s := range reversed {
		word[len(reversed)-1-i] = s
	}
	return word
}

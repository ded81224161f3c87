package util

// Partition is the block-refinement structure behind Moore/Hopcroft-style
// minimization (spec.md §4.9): a partition of a finite set of ints
// (states) into named blocks, with a FIFO worklist of "splitter"
// candidates.
//
// The predicate reasoning that decides *how* to split a block (grouping
// states by the minterms of the guards entering the splitter) is
// domain-specific and lives in package sfa, which calls
// Split once it has computed the state subset to peel off. Partition only
// owns the bookkeeping: block ids, membership, and the worklist rule.
type Partition struct {
	blockOf map[int]int
	blocks  map[int][]int
	nextID  int
	queued  map[int]bool
	queue   []int
}

// NewPartition builds the initial two-block partition (finals vs
// non-finals) and enqueues the smaller of the two, per spec.md §4.9
// ("Initial partition: finals vs non-finals; the smaller block enters a
// worklist"). Either group may be empty.
func NewPartition(finals, nonFinals []int) *Partition {
	p := &Partition{
		blockOf: make(map[int]int),
		blocks:  make(map[int][]int),
		queued:  make(map[int]bool),
	}
	var finalID, nonFinalID = -1, -1
	if len(finals) > 0 {
		finalID = p.newBlock(finals)
	}
	if len(nonFinals) > 0 {
		nonFinalID = p.newBlock(nonFinals)
	}
	switch {
	case finalID >= 0 && nonFinalID >= 0:
		if len(finals) <= len(nonFinals) {
			p.enqueue(finalID)
		} else {
			p.enqueue(nonFinalID)
		}
	case finalID >= 0:
		p.enqueue(finalID)
	case nonFinalID >= 0:
		p.enqueue(nonFinalID)
	}
	return p
}

func (p *Partition) newBlock(members []int) int {
	id := p.nextID
	p.nextID++
	cp := append([]int(nil), members...)
	p.blocks[id] = cp
	for _, s := range cp {
		p.blockOf[s] = id
	}
	return id
}

func (p *Partition) enqueue(blockID int) {
	if p.queued[blockID] {
		return
	}
	p.queued[blockID] = true
	p.queue = append(p.queue, blockID)
}

// PopSplitter removes and returns the next splitter block from the
// worklist.
func (p *Partition) PopSplitter() (blockID int, members []int, ok bool) {
	if len(p.queue) == 0 {
		return 0, nil, false
	}
	blockID = p.queue[0]
	p.queue = p.queue[1:]
	p.queued[blockID] = false
	return blockID, p.blocks[blockID], true
}

// BlockOf returns the id of the block currently containing state.
func (p *Partition) BlockOf(state int) int { return p.blockOf[state] }

// Members returns the members of blockID.
func (p *Partition) Members(blockID int) []int { return p.blocks[blockID] }

// Blocks returns every current block, keyed by block id. The returned
// slices are owned by the partition and must not be mutated.
func (p *Partition) Blocks() map[int][]int { return p.blocks }

// Split peels subset out of blockID into a fresh block, applying the
// worklist rule from spec.md §4.9: if blockID is already queued, both the
// remainder and the new block are queued; otherwise only the smaller of
// the two is queued. Returns ok=false (no-op) if subset is empty or
// covers all of blockID.
func (p *Partition) Split(blockID int, subset []int) (newBlockID int, ok bool) {
	members := p.blocks[blockID]
	inSubset := make(map[int]bool, len(subset))
	for _, s := range subset {
		inSubset[s] = true
	}
	var rest, kept []int
	for _, s := range members {
		if inSubset[s] {
			kept = append(kept, s)
		} else {
			rest = append(rest, s)
		}
	}
	if len(kept) == 0 || len(rest) == 0 {
		return -1, false
	}

	newID := p.nextID
	p.nextID++
	p.blocks[blockID] = rest
	p.blocks[newID] = kept
	for _, s := range kept {
		p.blockOf[s] = newID
	}

	wasQueued := p.queued[blockID]
	if wasQueued {
		p.enqueue(newID)
	} else if len(rest) <= len(kept) {
		p.enqueue(blockID)
	} else {
		p.enqueue(newID)
	}
	return newID, true
}

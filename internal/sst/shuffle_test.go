package sst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svpa/internal/charba"
	"svpa/internal/register"
	"svpa/internal/sst"
)

// TestShuffle_ResnapshotsBufferAcrossSegments exercises the copy2/copy3
// cycle across three synchronization segments (spec.md §4.13). With a
// single component, register 0 is its own output register, register 1
// is its shuffle buffer, and register 2 is the accumulator.
//
// The first fold (copy2 -> copy3, folding segments 1 and 2) can't tell a
// correct buffer resnapshot apart from a stale one: the buffer has only
// ever been written once by then. The second fold (copy3 -> copy2,
// folding segments 2 and 3) is where a buffer that was never refreshed
// after the first fold would still hold segment 1's output instead of
// segment 2's, so that's the transition this test inspects directly.
func TestShuffle_ResnapshotsBufferAcrossSegments(t *testing.T) {
	comp := echoBangSST(t)
	shuffled, err := sst.Shuffle([]sst.ShufflePair[charba.Pred, charba.Func, byte]{{SST: comp}}, false, nil)
	require.NoError(t, err)

	const ownReg, bufReg = 0, 1
	const copy2Base, copy3Base = 1_000_000, 2_000_000

	// State copy3Base+1 is the joint-final tuple reached after running
	// the product through segments 1 and 2 (copy1, copy2) and then a
	// third time in copy3: this is exactly the second-fold checkpoint.
	eps := shuffled.GetEpsilonFrom(copy3Base + 1)
	require.Len(t, eps, 1)
	require.Equal(t, copy2Base+0, eps[0].To)

	// The buffer resnapshot must reference the component's own register
	// (segment 3's fresh output), not the buffer register itself (which
	// would leave segment 1's output in place forever).
	require.Equal(t,
		register.TokenSeq[register.NoFunc, byte]{register.Var[register.NoFunc, byte](ownReg)},
		eps[0].Update[bufReg],
	)
	require.NotEqual(t,
		register.TokenSeq[register.NoFunc, byte]{register.Var[register.NoFunc, byte](bufReg)},
		eps[0].Update[bufReg],
	)
}

// echoTwiceSST reads exactly one arbitrary byte and outputs it twice,
// used to tell its contribution apart from echoBangSST's in a
// multi-component Shuffle.
func echoTwiceSST(t *testing.T) *sst.SST[charba.Pred, charba.Func, byte] {
	t.Helper()
	alg := charba.New()
	update := register.VariableUpdate[charba.Func, byte]{
		register.TokenSeq[charba.Func, byte]{
			register.Fn[charba.Func, byte](charba.Func{Kind: charba.Identity}),
			register.Fn[charba.Func, byte](charba.Func{Kind: charba.Identity}),
		},
	}
	built, err := sst.SinglePredicate[charba.Pred, charba.Func, byte](alg.True(), update, alg)
	require.NoError(t, err)
	return built
}

// TestShuffle_TwoComponents checks that a non-first component's update
// lands in its own global register slot rather than being read back
// from the wrong row: RenameVars only rewrites variable *references*,
// it never moves a row to a new position, so reading a lifted update at
// the component's global offset (instead of its original, still-local
// row index) silently picks up an empty padding row for every
// component but the first.
func TestShuffle_TwoComponents(t *testing.T) {
	a := echoBangSST(t)
	b := echoTwiceSST(t)
	shuffled, err := sst.Shuffle([]sst.ShufflePair[charba.Pred, charba.Func, byte]{{SST: a}, {SST: b}}, false, nil)
	require.NoError(t, err)

	// Register 0 is a's own output register, register 1 is b's (offset
	// by a's single register), register 2-3 are the buffers, 4 is the
	// accumulator.
	const aReg, bReg = 0, 1

	moves := shuffled.GetInputMovesFrom(shuffled.GetInitialState())
	require.Len(t, moves, 1)
	update := moves[0].Update

	require.Equal(t,
		register.TokenSeq[charba.Func, byte]{
			register.Fn[charba.Func, byte](charba.Func{Kind: charba.Identity}),
			register.Const[charba.Func, byte]('!'),
		},
		update[aReg],
	)
	require.Equal(t,
		register.TokenSeq[charba.Func, byte]{
			register.Fn[charba.Func, byte](charba.Func{Kind: charba.Identity}),
			register.Fn[charba.Func, byte](charba.Func{Kind: charba.Identity}),
		},
		update[bReg],
	)
}

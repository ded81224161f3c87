package budget_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svpa/internal/budget"
)

func TestUnbounded_NeverFails(t *testing.T) {
	b := budget.Unbounded()
	for i := 0; i < 1000; i++ {
		require.NoError(t, b.CheckState())
	}
	require.Equal(t, 1000, b.StatesVisited)
}

func TestNilBudget_NeverFails(t *testing.T) {
	var b *budget.Budget
	require.NoError(t, b.CheckState())
}

func TestNonPositiveTimeout_IsUnbounded(t *testing.T) {
	b := budget.New(0)
	for i := 0; i < 1000; i++ {
		require.NoError(t, b.CheckState())
	}
}

func TestExceededDeadline_FailsFast(t *testing.T) {
	b := budget.New(time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	// The deadline check is amortized every 128 calls, so the first
	// 127 succeed regardless of the clock.
	var err error
	for i := 0; i < 128; i++ {
		err = b.CheckState()
	}
	require.ErrorIs(t, err, budget.ErrTimeout)
}

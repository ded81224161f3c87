package charba_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svpa/internal/charba"
)

func TestPredString(t *testing.T) {
	require.Equal(t, "[]", charba.New().False().String())
	require.Equal(t, "[a-z]", charba.Range('a', 'z').String())
	require.Equal(t, "[ace]", charba.Set('a', 'c', 'e').String())
}

package giveaway

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectWinners_Bounds(t *testing.T) {
	pool := participants("a", "b", "c")

	got, err := SelectWinners(pool, 0, CryptoIntn)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = SelectWinners(nil, 3, CryptoIntn)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = SelectWinners(pool, 10, CryptoIntn)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, got)
}

func TestSelectWinners_Distinct(t *testing.T) {
	pool := participants("a", "b", "c", "d", "e", "f", "g")

	for i := 0; i < 50; i++ {
		got, err := SelectWinners(pool, 4, CryptoIntn)
		require.NoError(t, err)
		require.Len(t, got, 4)

		seen := make(map[string]bool)
		for _, w := range got {
			assert.False(t, seen[w], "duplicate winner %s", w)
			seen[w] = true
		}
	}
}

func TestSelectWinners_DoesNotMutateInput(t *testing.T) {
	pool := participants("a", "b", "c", "d")

	_, err := SelectWinners(pool, 2, func(n int) (int, error) { return 0, nil })
	require.NoError(t, err)

	assert.Equal(t, "a", pool[0].UserID)
	assert.Equal(t, "d", pool[3].UserID)
}

func TestSelectWinners_EveryParticipantCanWin(t *testing.T) {
	pool := participants("a", "b", "c")
	counts := make(map[string]int)

	for i := 0; i < 300; i++ {
		got, err := SelectWinners(pool, 1, CryptoIntn)
		require.NoError(t, err)
		counts[got[0]]++
	}

	for _, id := range []string{"a", "b", "c"} {
		assert.Positive(t, counts[id], "participant %s never won", id)
	}
}

func TestSelectWinners_RandomSourceError(t *testing.T) {
	boom := errors.New("entropy exhausted")

	_, err := SelectWinners(participants("a", "b"), 1, func(int) (int, error) { return 0, boom })

	assert.ErrorIs(t, err, boom)
}

package nqueens_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/urbanplan/nqueens"
	"github.com/katalvlaran/urbanplan/planerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertValid checks one queen per row and no shared column or diagonal.
func assertValid(t *testing.T, res nqueens.PlacementResult) {
	t.Helper()
	require.True(t, res.Success)
	require.Len(t, res.Coordinates, res.N)
	for i, a := range res.Coordinates {
		assert.Equal(t, i, a.Row)
		for _, b := range res.Coordinates[i+1:] {
			assert.NotEqual(t, a.Col, b.Col, "shared column")
			assert.NotEqual(t, a.Row-a.Col, b.Row-b.Col, "shared diagonal")
			assert.NotEqual(t, a.Row+a.Col, b.Row+b.Col, "shared anti-diagonal")
		}
	}
}

func TestPlace_FourByFour(t *testing.T) {
	res, err := nqueens.Place(4)
	require.NoError(t, err)
	assertValid(t, res)
	assert.Equal(t, []int{1, 3, 0, 2}, res.Columns())
}

func TestPlace_FirstSolutionInSearchOrder(t *testing.T) {
	res, err := nqueens.Place(8)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 7, 5, 2, 6, 1, 3}, res.Columns())
}

func TestPlace_AllSizes(t *testing.T) {
	for n := nqueens.MinN; n <= nqueens.MaxN; n++ {
		res, err := nqueens.Place(n)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, n, res.N)
		if n == 2 || n == 3 {
			assert.False(t, res.Success, "n=%d", n)
			assert.Empty(t, res.Coordinates)
			assert.Nil(t, res.Board())
			continue
		}
		assertValid(t, res)
	}
}

func TestPlace_OutOfRange(t *testing.T) {
	for _, n := range []int{-1, 0, nqueens.MaxN + 1, 100} {
		_, err := nqueens.Place(n)
		assert.ErrorIs(t, err, nqueens.ErrOutOfRange, "n=%d", n)
		assert.True(t, planerr.Is(err, planerr.OutOfRange))
	}
}

func TestPlace_Board(t *testing.T) {
	res, err := nqueens.Place(4)
	require.NoError(t, err)
	assert.Equal(t, []string{
		". Q . .",
		". . . Q",
		"Q . . .",
		". . Q .",
	}, res.Board())
}

func TestPlace_ConcurrentCallsAreIndependent(t *testing.T) {
	var wg sync.WaitGroup
	for n := 4; n <= 12; n++ {
		for k := 0; k < 4; k++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				res, err := nqueens.Place(n)
				assert.NoError(t, err)
				assert.True(t, res.Success)
				assert.Len(t, res.Coordinates, n)
			}(n)
		}
	}
	wg.Wait()
}

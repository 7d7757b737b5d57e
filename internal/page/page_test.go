package page

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestOffset(t *testing.T) {
	items := sequence(120)

	p := Offset(items, 1, 50)
	require.Equal(t, items[:50], p.Items)
	require.Equal(t, 120, p.Total)
	require.Equal(t, 1, p.Page)
	require.Equal(t, 3, p.TotalPages)

	p = Offset(items, 3, 50)
	require.Equal(t, items[100:], p.Items)
	require.Len(t, p.Items, 20)
}

func TestOffsetNormalizesPage(t *testing.T) {
	items := sequence(10)
	for _, pageNum := range []int{0, -1} {
		p := Offset(items, pageNum, 5)
		require.Equal(t, 1, p.Page)
		require.Equal(t, items[:5], p.Items)
	}
}

func TestOffsetBeyondLastPage(t *testing.T) {
	p := Offset(sequence(40), 3, 50)
	require.Empty(t, p.Items)
	require.Equal(t, 40, p.Total)
	require.Equal(t, 3, p.Page)
	require.Equal(t, 1, p.TotalPages)
}

func TestOffsetEmptyInput(t *testing.T) {
	p := Offset([]int(nil), 1, 50)
	require.Empty(t, p.Items)
	require.Equal(t, 0, p.Total)
	require.Equal(t, 0, p.TotalPages)
}

func TestBatchRevealsIncrementally(t *testing.T) {
	b := NewBatch(RoundBatchSize, 120)
	require.Equal(t, 50, b.Visible())
	require.True(t, b.HasMore())

	require.Equal(t, 100, b.More())
	require.Equal(t, 120, b.More())
	require.False(t, b.HasMore())

	// Everything visible: further calls change nothing.
	require.Equal(t, 120, b.More())
	require.Equal(t, 120, b.More())
}

func TestBatchShorterThanOneBatch(t *testing.T) {
	b := NewBatch(DayBatchSize, 4)
	require.Equal(t, 4, b.Visible())
	require.False(t, b.HasMore())
	require.Equal(t, 4, b.More())
}

func TestBatchEmptyList(t *testing.T) {
	b := NewBatch(RoundBatchSize, 0)
	require.Equal(t, 0, b.Visible())
	require.False(t, b.HasMore())
}

func TestTake(t *testing.T) {
	items := sequence(20)
	b := NewBatch(9, 20)

	require.Equal(t, items[:9], Take(items, b))
	b.More()
	require.Equal(t, items[:18], Take(items, b))
	b.More()
	require.Equal(t, items, Take(items, b))
}

func TestTakeClampsToSliceLength(t *testing.T) {
	// Batch state built for a longer list than the one handed to Take.
	b := NewBatch(50, 100)
	require.Len(t, Take(sequence(30), b), 30)
}

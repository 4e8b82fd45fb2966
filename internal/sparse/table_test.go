package sparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableZeroDefault(t *testing.T) {
	tb := NewTable[int64]()
	require.Equal(t, int64(0), tb.Get(0, 0))
	require.Equal(t, int64(0), tb.Get(1000, 1<<40))
	// reads never grow the table
	require.Equal(t, int64(0), tb.NumRows())
	require.Equal(t, int64(0), tb.NumCols())
	require.Equal(t, 0, tb.Len())

	bools := NewTable[bool]()
	require.False(t, bools.Get(3, 7))
}

func TestTableExtents(t *testing.T) {
	tests := []struct {
		name       string
		writes     [][2]int64
		rows, cols int64
	}{
		{"origin", [][2]int64{{0, 0}}, 1, 1},
		{"single", [][2]int64{{2, 3}}, 3, 4},
		{"grows independently", [][2]int64{{5, 0}, {0, 9}}, 6, 10},
		{"never shrinks", [][2]int64{{4, 4}, {1, 1}}, 5, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tb := NewTable[int64]()
			for _, w := range tc.writes {
				tb.Set(w[0], w[1], 1)
			}
			require.Equal(t, tc.rows, tb.NumRows())
			require.Equal(t, tc.cols, tb.NumCols())
			require.Equal(t, len(tc.writes), tb.Len())
		})
	}
}

func TestTableOverwrite(t *testing.T) {
	tb := NewTable[bool]()
	tb.Set(1, 2, true)
	require.True(t, tb.Get(1, 2))
	require.False(t, tb.Get(2, 1))
	tb.Set(1, 2, false)
	require.False(t, tb.Get(1, 2))
	require.Equal(t, 1, tb.Len())
}

func TestArray(t *testing.T) {
	a := NewArray[int64]()
	require.Equal(t, int64(0), a.Len())
	require.Equal(t, "[]", a.String())
	require.Empty(t, a.Values())

	a.Set(0, 4)
	a.Set(3, 7)
	require.Equal(t, int64(4), a.Len())
	require.Equal(t, 2, a.Stored())
	require.Equal(t, int64(0), a.Get(1))
	require.Equal(t, []int64{4, 0, 0, 7}, a.Values())
	require.Equal(t, "[4, 0, 0, 7]", a.String())

	a.Get(100)
	require.Equal(t, int64(4), a.Len())
}

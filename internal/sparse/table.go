// Package sparse holds DP tables that only allocate the cells they are given.
//
// Unwritten cells read as the zero value of the element type, and the logical
// extent of a table is the bounding box of every index ever written.
// Indices must be non-negative.
package sparse

type cell struct{ row, col int64 }

// Table is a sparse matrix of T.
//
//	t := sparse.NewTable[int64]()
//	t.Set(2, 3, 47)
//	t.Get(2, 3)   // 47
//	t.Get(9, 9)   // 0
//	t.NumRows()   // 3
//	t.NumCols()   // 4
type Table[T any] struct {
	cells      map[cell]T
	rows, cols int64
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{cells: make(map[cell]T)}
}

// Get returns the value at (row, col) or the zero T. It never changes the extent.
func (t *Table[T]) Get(row, col int64) T {
	return t.cells[cell{row, col}]
}

// Set stores v at (row, col) and grows the extent to cover it.
func (t *Table[T]) Set(row, col int64, v T) {
	t.cells[cell{row, col}] = v
	if row+1 > t.rows {
		t.rows = row + 1
	}
	if col+1 > t.cols {
		t.cols = col + 1
	}
}

// NumRows is one past the highest row written.
func (t *Table[T]) NumRows() int64 { return t.rows }

// NumCols is one past the highest column written.
func (t *Table[T]) NumCols() int64 { return t.cols }

// Len reports how many cells are stored.
func (t *Table[T]) Len() int { return len(t.cells) }

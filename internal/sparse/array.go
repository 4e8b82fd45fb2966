package sparse

import (
	"fmt"
	"strings"
)

// Array is a one-dimensional view over row 0 of a Table.
type Array[T any] struct {
	backing *Table[T]
}

func NewArray[T any]() *Array[T] {
	return &Array[T]{backing: NewTable[T]()}
}

func (a *Array[T]) Get(i int64) T { return a.backing.Get(0, i) }
func (a *Array[T]) Set(i int64, v T) { a.backing.Set(0, i, v) }

// Len is one past the highest index written.
func (a *Array[T]) Len() int64 { return a.backing.NumCols() }

// Stored reports how many indices hold a value.
func (a *Array[T]) Stored() int { return a.backing.Len() }

// Values returns a dense copy of indices [0, Len()).
func (a *Array[T]) Values() []T {
	out := make([]T, a.Len())
	for i := range out {
		out[i] = a.Get(int64(i))
	}
	return out
}

func (a *Array[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := int64(0); i < a.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, a.Get(i))
	}
	b.WriteByte(']')
	return b.String()
}

package domain

import (
	"cmp"
	"encoding/binary"
	"reflect"
	"slices"

	"github.com/zeebo/xxh3"
)

// Item is anything with an integer weight and value.
type Item interface {
	Weight() int64
	Value() int64
}

// Piece is the plain Item used by callers that have no type of their own.
type Piece struct {
	Name string `json:"name,omitempty"`
	W    int64  `json:"weight"`
	V    int64  `json:"value"`
}

func (p Piece) Weight() int64 { return p.W }
func (p Piece) Value() int64  { return p.V }

// Uniform returns a piece whose weight and value are both n.
func Uniform(n int64) Piece { return Piece{W: n, V: n} }

// Uniforms maps Uniform over ns.
func Uniforms(ns ...int64) []Item {
	out := make([]Item, len(ns))
	for i, n := range ns {
		out[i] = Uniform(n)
	}
	return out
}

// Problem is one knapsack instance.
type Problem struct {
	Items    []Item
	Capacity int64
	Variant  Variant
}

// Selection is the multiset of items chosen by a solver. Order carries no meaning.
type Selection []Item

func (s Selection) Len() int { return len(s) }

func (s Selection) TotalWeight() int64 {
	var w int64
	for _, it := range s {
		w += it.Weight()
	}
	return w
}

func (s Selection) TotalValue() int64 {
	var v int64
	for _, it := range s {
		v += it.Value()
	}
	return v
}

// Counts tallies occurrences per item. It panics if an item's dynamic type is
// not comparable; use Key to tally arbitrary items.
func (s Selection) Counts() map[Item]int {
	out := make(map[Item]int, len(s))
	for _, it := range s {
		out[it]++
	}
	return out
}

type pairKey struct{ w, v int64 }

// Key returns a map key identifying it. Items of comparable dynamic type are
// their own key; anything else is identified by its (weight, value) pair.
func Key(it Item) any {
	if it == nil {
		return nil
	}
	if reflect.TypeOf(it).Comparable() {
		return it
	}
	return pairKey{it.Weight(), it.Value()}
}

// Digest fingerprints the multiset of (weight, value) pairs; it ignores order.
func (s Selection) Digest() uint64 {
	pairs := make([][2]int64, len(s))
	for i, it := range s {
		pairs[i] = [2]int64{it.Weight(), it.Value()}
	}
	slices.SortFunc(pairs, func(a, b [2]int64) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})
	buf := make([]byte, 0, 16*len(pairs))
	for _, p := range pairs {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(p[0]))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(p[1]))
	}
	return xxh3.Hash(buf)
}

// ViolationKind classifies a validation failure.
type ViolationKind int

const (
	OverCapacity ViolationKind = iota // total weight above capacity
	UnknownItem                       // item not among the problem's items
	Overused                          // 0/1 item used more often than supplied
)

// Violation describes one reason a selection is not acceptable.
type Violation struct {
	Kind    ViolationKind
	Item    Item
	Message string
}

package domain

import (
	"fmt"
	"strings"
)

// Variant selects which knapsack problem a solver handles.
type Variant int

const (
	ZeroOne   Variant = iota // each item at most once
	Unbounded                // each item any number of times
)

func (v Variant) String() string {
	switch v {
	case ZeroOne:
		return "0/1 Knapsack Problem"
	case Unbounded:
		return "Unbounded Knapsack Problem"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Label is the short form used in logs and metric labels.
func (v Variant) Label() string {
	switch v {
	case ZeroOne:
		return "zero_one"
	case Unbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// ParseVariant maps user-facing names onto a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "01", "0/1", "0-1", "zero-one", "zero_one", "zeroone", "bounded":
		return ZeroOne, nil
	case "unbounded":
		return Unbounded, nil
	}
	return 0, fmt.Errorf("unknown variant %q: %w", s, ErrInvalidArgument)
}

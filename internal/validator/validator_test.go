package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/knapsack/internal/domain"
)

func TestValidate(t *testing.T) {
	a := domain.Piece{Name: "a", W: 2, V: 3}
	b := domain.Piece{Name: "b", W: 3, V: 4}
	stranger := domain.Piece{Name: "c", W: 1, V: 1}

	tests := []struct {
		name    string
		variant domain.Variant
		sel     domain.Selection
		kinds   []domain.ViolationKind
	}{
		{"empty", domain.ZeroOne, nil, nil},
		{"fits", domain.ZeroOne, domain.Selection{a, b}, nil},
		{"over capacity", domain.ZeroOne, domain.Selection{a, b, a}, []domain.ViolationKind{domain.OverCapacity, domain.Overused}},
		{"repeat allowed", domain.Unbounded, domain.Selection{a, a}, nil},
		{"repeat forbidden", domain.ZeroOne, domain.Selection{a, a}, []domain.ViolationKind{domain.Overused}},
		{"unknown", domain.Unbounded, domain.Selection{stranger}, []domain.ViolationKind{domain.UnknownItem}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &domain.Problem{Items: []domain.Item{a, b}, Capacity: 5, Variant: tc.variant}
			ok, conf, err := New().Validate(context.Background(), p, tc.sel)
			require.NoError(t, err)
			require.Equal(t, len(tc.kinds) == 0, ok)
			var kinds []domain.ViolationKind
			for _, c := range conf {
				kinds = append(kinds, c.Kind)
			}
			require.ElementsMatch(t, tc.kinds, kinds)
		})
	}
}

func TestValidateDuplicateSupply(t *testing.T) {
	p := &domain.Problem{Items: domain.Uniforms(3, 3), Capacity: 6, Variant: domain.ZeroOne}
	ok, _, err := New().Validate(context.Background(), p, domain.Selection{domain.Uniform(3), domain.Uniform(3)})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestValidateNilProblem(t *testing.T) {
	_, _, err := New().Validate(context.Background(), nil, nil)
	require.Error(t, err)
}

// tagged is an Item whose dynamic type cannot be used as a map key.
type tagged struct {
	w, v int64
	tags []string
}

func (t tagged) Weight() int64 { return t.w }
func (t tagged) Value() int64  { return t.v }

func TestValidateNonComparable(t *testing.T) {
	a := tagged{w: 2, v: 3, tags: []string{"a"}}
	b := tagged{w: 3, v: 4, tags: []string{"b"}}

	tests := []struct {
		name    string
		variant domain.Variant
		sel     domain.Selection
		kinds   []domain.ViolationKind
	}{
		{"fits", domain.ZeroOne, domain.Selection{a, b}, nil},
		{"repeat forbidden", domain.ZeroOne, domain.Selection{a, a}, []domain.ViolationKind{domain.Overused}},
		{"repeat allowed", domain.Unbounded, domain.Selection{a, a}, nil},
		{"unknown", domain.ZeroOne, domain.Selection{tagged{w: 1, v: 1}}, []domain.ViolationKind{domain.UnknownItem}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &domain.Problem{Items: []domain.Item{a, b}, Capacity: 5, Variant: tc.variant}
			var (
				ok   bool
				conf []domain.Violation
				err  error
			)
			require.NotPanics(t, func() {
				ok, conf, err = New().Validate(context.Background(), p, tc.sel)
			})
			require.NoError(t, err)
			require.Equal(t, len(tc.kinds) == 0, ok)
			var kinds []domain.ViolationKind
			for _, c := range conf {
				kinds = append(kinds, c.Kind)
			}
			require.Equal(t, tc.kinds, kinds)
		})
	}
}

func TestValidateOrder(t *testing.T) {
	a := domain.Piece{Name: "a", W: 1, V: 1}
	x := domain.Piece{Name: "x", W: 1, V: 2}
	y := domain.Piece{Name: "y", W: 1, V: 3}
	z := domain.Piece{Name: "z", W: 1, V: 4}
	p := &domain.Problem{Items: []domain.Item{a}, Capacity: 10, Variant: domain.ZeroOne}

	for range 20 {
		_, conf, err := New().Validate(context.Background(), p, domain.Selection{z, a, x, a, y, z})
		require.NoError(t, err)
		var got []domain.Item
		for _, c := range conf {
			got = append(got, c.Item)
		}
		require.Equal(t, []domain.Item{z, a, x, y}, got)
	}
}

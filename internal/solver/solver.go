package solver

import (
	"fmt"
	"math"
	"slices"

	"svw.info/knapsack/internal/domain"
	"svw.info/knapsack/internal/ports"
)

// cancelEvery is how many inner DP steps may pass between context checks
// within one row; every row also checks on entry.
const cancelEvery = 1 << 10

// --- helpers shared by both solvers ---

func checkInputs(items []domain.Item, capacity int64) error {
	if capacity < 0 {
		return fmt.Errorf("capacity %d is negative: %w", capacity, domain.ErrInvalidArgument)
	}
	if capacity == math.MaxInt64 {
		return fmt.Errorf("capacity %d leaves no room for the table bound: %w", capacity, domain.ErrOverflow)
	}
	for i, it := range items {
		if it == nil {
			return fmt.Errorf("item %d is nil: %w", i, domain.ErrInvalidArgument)
		}
		if it.Weight() < 0 {
			return fmt.Errorf("item %d has negative weight %d: %w", i, it.Weight(), domain.ErrInvalidArgument)
		}
		if it.Value() < 0 {
			return fmt.Errorf("item %d has negative value %d: %w", i, it.Value(), domain.ErrInvalidArgument)
		}
	}
	return nil
}

// addValue returns a+b, or ErrOverflow when the sum leaves int64. Both are non-negative.
func addValue(a, b int64) (int64, error) {
	if a > math.MaxInt64-b {
		return 0, fmt.Errorf("value %d + %d: %w", a, b, domain.ErrOverflow)
	}
	return a + b, nil
}

// Registry maps each variant to the solver that handles it.
type Registry struct {
	solvers map[domain.Variant]ports.Solver
}

// NewRegistry indexes ss by their variant; a later solver replaces an earlier one.
func NewRegistry(ss ...ports.Solver) *Registry {
	r := &Registry{solvers: make(map[domain.Variant]ports.Solver, len(ss))}
	for _, s := range ss {
		r.solvers[s.Variant()] = s
	}
	return r
}

// Default holds the dynamic-programming solver for every variant.
func Default() *Registry {
	return NewRegistry(NewZeroOneSolver(), NewUnboundedSolver())
}

// Lookup finds the solver for v. A nil registry holds nothing.
func (r *Registry) Lookup(v domain.Variant) (ports.Solver, bool) {
	if r == nil {
		return nil, false
	}
	s, ok := r.solvers[v]
	return s, ok
}

// Solvers lists the registered solvers ordered by variant.
func (r *Registry) Solvers() []ports.Solver {
	out := make([]ports.Solver, 0, len(r.solvers))
	for _, s := range r.solvers {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b ports.Solver) int { return int(a.Variant()) - int(b.Variant()) })
	return out
}

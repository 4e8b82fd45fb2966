package generator

import (
	"svw.info/knapsack/internal/domain"
	"svw.info/knapsack/internal/ports"
)

// RandomGenerator creates seeded problems and can report their optimum through a Solver.
type RandomGenerator struct {
	Solver ports.Solver
}

// NewRandomGenerator wires a generator; s may be nil when optimum reporting is not needed.
func NewRandomGenerator(s ports.Solver) *RandomGenerator {
	return &RandomGenerator{Solver: s}
}

// Fixture returns the classic "weight equals value" items 1..n.
func Fixture(n int) []domain.Item {
	out := make([]domain.Item, n)
	for i := range out {
		out[i] = domain.Uniform(int64(i + 1))
	}
	return out
}

// Note: Generate and Optimum live in simple.go.

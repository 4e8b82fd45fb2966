package ports

import (
	"context"
	"time"

	"svw.info/knapsack/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Cells    int // table cells written
	Duration time.Duration
}

// Solver picks an optimal multiset of items for one problem variant.
type Solver interface {
	Solve(ctx context.Context, items []domain.Item, capacity int64) (domain.Selection, Stats, error)
	Variant() domain.Variant
}

// GenSpec bounds the shape of a generated problem.
type GenSpec struct {
	Items     int
	MaxWeight int64
	MaxValue  int64
	Capacity  int64
	Variant   domain.Variant
}

// Generator creates reproducible problem instances.
type Generator interface {
	Generate(ctx context.Context, seed int64, shape GenSpec) (*domain.Problem, Stats, error)
}

// Validator checks a selection against the problem it claims to solve.
type Validator interface {
	Validate(ctx context.Context, p *domain.Problem, s domain.Selection) (ok bool, violations []domain.Violation, err error)
}

// Recorder receives per-solve measurements.
type Recorder interface {
	ObserveSolve(v domain.Variant, st Stats, err error)
}

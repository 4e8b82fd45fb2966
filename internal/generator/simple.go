package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"svw.info/knapsack/internal/domain"
	"svw.info/knapsack/internal/ports"
)

// Generate builds a problem with shape.Items pieces, deterministic for a given seed.
// Weights fall in [1, MaxWeight] and values in [0, MaxValue]. A zero Capacity
// becomes half the total weight.
func (g *RandomGenerator) Generate(ctx context.Context, seed int64, shape ports.GenSpec) (*domain.Problem, ports.Stats, error) {
	start := time.Now()
	if shape.Items < 0 || shape.MaxWeight < 1 || shape.MaxValue < 0 || shape.Capacity < 0 {
		return nil, ports.Stats{}, fmt.Errorf("generate %+v: %w", shape, domain.ErrInvalidArgument)
	}
	rng := rand.New(rand.NewSource(seed))
	items := make([]domain.Item, 0, shape.Items)
	var total int64
	for i := 0; i < shape.Items; i++ {
		if ctx.Err() != nil {
			return nil, ports.Stats{}, ctx.Err()
		}
		p := domain.Piece{
			Name: fmt.Sprintf("p%d", i),
			W:    1 + rng.Int63n(shape.MaxWeight),
			V:    rng.Int63n(shape.MaxValue + 1),
		}
		total += p.W
		items = append(items, p)
	}
	capacity := shape.Capacity
	if capacity == 0 {
		capacity = total / 2
	}
	p := &domain.Problem{Items: items, Capacity: capacity, Variant: shape.Variant}
	return p, ports.Stats{Duration: time.Since(start)}, nil
}

// Optimum solves p with the wired solver and returns the best total value.
func (g *RandomGenerator) Optimum(ctx context.Context, p *domain.Problem) (int64, ports.Stats, error) {
	if g.Solver == nil {
		return 0, ports.Stats{}, errors.New("generator: no solver wired")
	}
	if g.Solver.Variant() != p.Variant {
		return 0, ports.Stats{}, fmt.Errorf("generator: solver handles %v, problem is %v: %w", g.Solver.Variant(), p.Variant, domain.ErrInvalidArgument)
	}
	sel, st, err := g.Solver.Solve(ctx, p.Items, p.Capacity)
	if err != nil {
		return 0, st, err
	}
	return sel.TotalValue(), st, nil
}

package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"svw.info/knapsack/internal/config"
	"svw.info/knapsack/internal/domain"
	"svw.info/knapsack/internal/ports"
	"svw.info/knapsack/internal/solver"
)

// Result is one solved problem.
type Result struct {
	Variant   domain.Variant
	Selection domain.Selection
	Stats     ports.Stats
	Digest    uint64
}

type Service struct {
	Config    config.Config
	Solvers   *solver.Registry
	Validator ports.Validator // used when Config.Verify is set
	Recorder  ports.Recorder  // optional
	Logger    *slog.Logger    // optional
}

func NewService(cfg config.Config, reg *solver.Registry, v ports.Validator, rec ports.Recorder, logger *slog.Logger) *Service {
	return &Service{
		Config:    cfg,
		Solvers:   reg,
		Validator: v,
		Recorder:  rec,
		Logger:    logger,
	}
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func (u *Service) log() *slog.Logger {
	if u.Logger == nil {
		return discard
	}
	return u.Logger
}

func (u *Service) observe(v domain.Variant, st ports.Stats, err error) {
	if u.Recorder != nil {
		u.Recorder.ObserveSolve(v, st, err)
	}
}

// Solve dispatches p to the solver for its variant.
// A zero Config.MaxCapacity disables the capacity limit.
func (u *Service) Solve(ctx context.Context, p *domain.Problem) (*Result, error) {
	if p == nil {
		return nil, fmt.Errorf("solve: nil problem: %w", domain.ErrInvalidArgument)
	}
	s, ok := u.Solvers.Lookup(p.Variant)
	if !ok {
		return nil, fmt.Errorf("solve %v: %w", p.Variant, domain.ErrNotConfigured)
	}
	if limit := u.Config.MaxCapacity; limit > 0 && p.Capacity > limit {
		err := fmt.Errorf("capacity %d above limit %d: %w", p.Capacity, limit, domain.ErrInvalidArgument)
		u.observe(p.Variant, ports.Stats{}, err)
		u.log().Warn("solve rejected", "variant", p.Variant.Label(), "capacity", p.Capacity, "err", err)
		return nil, err
	}

	sel, st, err := s.Solve(ctx, p.Items, p.Capacity)
	if err == nil && u.Config.Verify {
		err = u.verify(ctx, p, sel)
	}
	u.observe(p.Variant, st, err)
	if err != nil {
		u.log().Warn("solve failed",
			"variant", p.Variant.Label(),
			"items", len(p.Items),
			"capacity", p.Capacity,
			"err", err,
		)
		return nil, err
	}

	res := &Result{Variant: p.Variant, Selection: sel, Stats: st, Digest: sel.Digest()}
	u.log().Debug("solve",
		"variant", p.Variant.Label(),
		"items", len(p.Items),
		"capacity", p.Capacity,
		"picked", sel.Len(),
		"value", sel.TotalValue(),
		"weight", sel.TotalWeight(),
		"cells", st.Cells,
		"dur", st.Duration.Round(time.Microsecond),
	)
	return res, nil
}

func (u *Service) verify(ctx context.Context, p *domain.Problem, sel domain.Selection) error {
	if u.Validator == nil {
		return fmt.Errorf("verify: validator: %w", domain.ErrNotConfigured)
	}
	ok, violations, err := u.Validator.Validate(ctx, p, sel)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if !ok {
		return fmt.Errorf("verify: %d violation(s), first: %s", len(violations), violations[0].Message)
	}
	return nil
}

// SolveBatch solves independent problems concurrently, at most Config.Workers
// at a time. Results line up with ps; the first failure cancels the rest.
func (u *Service) SolveBatch(ctx context.Context, ps []*domain.Problem) ([]*Result, error) {
	out := make([]*Result, len(ps))
	g, gctx := errgroup.WithContext(ctx)
	if u.Config.Workers > 0 {
		g.SetLimit(u.Config.Workers)
	}
	for i, p := range ps {
		g.Go(func() error {
			r, err := u.Solve(gctx, p)
			if err != nil {
				return fmt.Errorf("problem %d: %w", i, err)
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

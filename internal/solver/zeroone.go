package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/knapsack/internal/domain"
	"svw.info/knapsack/internal/ports"
	"svw.info/knapsack/internal/sparse"
)

// ZeroOneSolver solves the 0/1 knapsack: each input item is used at most once.
// Row i of its tables covers the first i items; row 0 is all zero.
type ZeroOneSolver struct{}

func NewZeroOneSolver() *ZeroOneSolver { return &ZeroOneSolver{} }

func (s *ZeroOneSolver) Variant() domain.Variant { return domain.ZeroOne }

// Solve returns a maximum-value multiset of items with total weight <= capacity.
// Equal items supplied twice may both be returned.
func (s *ZeroOneSolver) Solve(ctx context.Context, items []domain.Item, capacity int64) (domain.Selection, ports.Stats, error) {
	start := time.Now()
	if err := checkInputs(items, capacity); err != nil {
		return nil, ports.Stats{}, err
	}
	if len(items) == 0 {
		return nil, ports.Stats{Duration: time.Since(start)}, nil
	}

	value := sparse.NewTable[int64]()
	keep := sparse.NewTable[bool]()
	err := fillZeroOne(ctx, items, capacity, value, keep)
	st := ports.Stats{Cells: value.Len() + keep.Len(), Duration: time.Since(start)}
	if err != nil {
		return nil, st, err
	}
	sel := packZeroOne(items, capacity, keep)
	st.Duration = time.Since(start)
	return sel, st, nil
}

func fillZeroOne(ctx context.Context, items []domain.Item, capacity int64, value *sparse.Table[int64], keep *sparse.Table[bool]) error {
	steps := 0
	for i := int64(1); i <= int64(len(items)); i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("zero-one solve stopped at item %d: %w", i-1, err)
		}
		w, v := items[i-1].Weight(), items[i-1].Value()
		for c := int64(0); c <= capacity; c++ {
			if steps++; steps%cancelEvery == 0 {
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("zero-one solve stopped at item %d: %w", i-1, err)
				}
			}
			baseline := value.Get(i-1, c)
			if w <= c {
				cand, err := addValue(value.Get(i-1, c-w), v)
				if err != nil {
					return err
				}
				if cand > baseline {
					value.Set(i, c, cand)
					keep.Set(i, c, true)
					continue
				}
			}
			// zero is what an unwritten cell reads as
			if baseline != 0 {
				value.Set(i, c, baseline)
			}
		}
	}
	return nil
}

// packZeroOne walks the keep table from the last item back to the first.
func packZeroOne(items []domain.Item, capacity int64, keep *sparse.Table[bool]) domain.Selection {
	var out domain.Selection
	remaining := capacity
	for i := int64(len(items)); i > 0; i-- {
		if keep.Get(i, remaining) {
			it := items[i-1]
			out = append(out, it)
			remaining -= it.Weight()
		}
	}
	return out
}

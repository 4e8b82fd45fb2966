package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/knapsack/internal/domain"
	"svw.info/knapsack/internal/ports"
	"svw.info/knapsack/internal/sparse"
)

// UnboundedSolver solves the unbounded knapsack: any item may repeat.
// Its tables are indexed by weight alone; the keep table's row is the item index.
type UnboundedSolver struct{}

func NewUnboundedSolver() *UnboundedSolver { return &UnboundedSolver{} }

func (s *UnboundedSolver) Variant() domain.Variant { return domain.Unbounded }

// Solve returns a maximum-value multiset with total weight <= capacity.
// The same item value is repeated in the result once per use.
func (s *UnboundedSolver) Solve(ctx context.Context, items []domain.Item, capacity int64) (domain.Selection, ports.Stats, error) {
	start := time.Now()
	if err := checkInputs(items, capacity); err != nil {
		return nil, ports.Stats{}, err
	}
	for i, it := range items {
		if it.Weight() == 0 && it.Value() > 0 {
			return nil, ports.Stats{}, fmt.Errorf("item %d weighs nothing but is worth %d, so no finite optimum exists: %w", i, it.Value(), domain.ErrInvalidArgument)
		}
	}
	if len(items) == 0 || capacity == 0 {
		return nil, ports.Stats{Duration: time.Since(start)}, nil
	}

	memo := sparse.NewArray[int64]()
	keep := sparse.NewTable[bool]()
	err := fillUnbounded(ctx, items, capacity, memo, keep)
	st := ports.Stats{Cells: memo.Stored() + keep.Len(), Duration: time.Since(start)}
	if err != nil {
		return nil, st, err
	}
	sel := packUnbounded(items, capacity, keep)
	st.Duration = time.Since(start)
	return sel, st, nil
}

func fillUnbounded(ctx context.Context, items []domain.Item, capacity int64, memo *sparse.Array[int64], keep *sparse.Table[bool]) error {
	smaller := sparse.NewArray[int64]()
	candidate := sparse.NewArray[int64]()
	for w := int64(1); w <= capacity; w++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("unbounded solve stopped at weight %d: %w", w, err)
		}
		for k, it := range items {
			kk := int64(k)
			if wk := it.Weight(); wk <= w {
				smaller.Set(kk, memo.Get(w-wk))
				cand, err := addValue(smaller.Get(kk), it.Value())
				if err != nil {
					return err
				}
				candidate.Set(kk, cand)
			} else {
				smaller.Set(kk, 0)
				candidate.Set(kk, 0)
			}
		}

		// lowest index wins ties; only a fitting item with positive value is recorded
		best, bestIdx := int64(0), int64(-1)
		for k := range items {
			if c := candidate.Get(int64(k)); c > best {
				best, bestIdx = c, int64(k)
			}
		}
		if bestIdx >= 0 {
			memo.Set(w, best)
			keep.Set(bestIdx, w, true)
		}
	}
	return nil
}

// packUnbounded repeatedly takes the item recorded for the remaining weight.
func packUnbounded(items []domain.Item, capacity int64, keep *sparse.Table[bool]) domain.Selection {
	var out domain.Selection
	remaining := capacity
	for remaining > 0 {
		k := keptAt(keep, len(items), remaining)
		if k < 0 {
			break
		}
		out = append(out, items[k])
		remaining -= items[k].Weight()
	}
	return out
}

func keptAt(keep *sparse.Table[bool], n int, w int64) int {
	for k := 0; k < n; k++ {
		if keep.Get(int64(k), w) {
			return k
		}
	}
	return -1
}

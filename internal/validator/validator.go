package validator

import (
	"context"
	"errors"
	"fmt"

	"svw.info/knapsack/internal/domain"
)

// FastValidator checks capacity and item usage in a single pass over the selection.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, p *domain.Problem, s domain.Selection) (bool, []domain.Violation, error) {
	if p == nil {
		return false, nil, errors.New("validate: nil problem")
	}
	conf := make([]domain.Violation, 0, 4)

	// capacity
	if w := s.TotalWeight(); w > p.Capacity {
		conf = append(conf, domain.Violation{
			Kind:    domain.OverCapacity,
			Message: fmt.Sprintf("total weight %d exceeds capacity %d", w, p.Capacity),
		})
	}

	// membership & usage, reported in selection order, once per distinct item
	supplied := make(map[any]int, len(p.Items))
	for _, it := range p.Items {
		supplied[domain.Key(it)]++
	}
	used := make(map[any]int, len(s))
	for _, it := range s {
		used[domain.Key(it)]++
	}
	seen := make(map[any]bool, len(used))
	for _, it := range s {
		k := domain.Key(it)
		if seen[k] {
			continue
		}
		seen[k] = true
		have, ok := supplied[k]
		switch {
		case !ok:
			conf = append(conf, domain.Violation{
				Kind:    domain.UnknownItem,
				Item:    it,
				Message: fmt.Sprintf("item %v is not part of the problem", it),
			})
		case p.Variant == domain.ZeroOne && used[k] > have:
			conf = append(conf, domain.Violation{
				Kind:    domain.Overused,
				Item:    it,
				Message: fmt.Sprintf("item %v used %d times, supplied %d", it, used[k], have),
			})
		}
	}
	return len(conf) == 0, conf, nil
}

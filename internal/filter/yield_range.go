package filter

import (
	"fmt"
	"strings"

	"tokenboard/core"

	"github.com/spf13/cast"
)

// YieldRange inclusive yield bounds, Max nil means unbounded
type YieldRange struct {
	Min float64
	Max *float64
}

// ParseYieldRange parse "5-10" or "20+"
func ParseYieldRange(s string) (YieldRange, error) {
	s = strings.TrimSpace(s)

	if lower := strings.TrimSuffix(s, "+"); lower != s {
		min, err := cast.ToFloat64E(strings.TrimSpace(lower))
		if err != nil || lower == "" || !core.IsFinite(min) {
			return YieldRange{}, fmt.Errorf("%w: yieldRange %q", core.ErrInvalidFilter, s)
		}

		return YieldRange{Min: min}, nil
	}

	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return YieldRange{}, fmt.Errorf("%w: yieldRange %q", core.ErrInvalidFilter, s)
	}

	min, err := cast.ToFloat64E(strings.TrimSpace(parts[0]))
	if err != nil || strings.TrimSpace(parts[0]) == "" || !core.IsFinite(min) {
		return YieldRange{}, fmt.Errorf("%w: yieldRange %q", core.ErrInvalidFilter, s)
	}

	max, err := cast.ToFloat64E(strings.TrimSpace(parts[1]))
	if err != nil || strings.TrimSpace(parts[1]) == "" || !core.IsFinite(max) {
		return YieldRange{}, fmt.Errorf("%w: yieldRange %q", core.ErrInvalidFilter, s)
	}

	if min > max {
		return YieldRange{}, fmt.Errorf("%w: yieldRange %q lower bound above upper bound", core.ErrInvalidFilter, s)
	}

	return YieldRange{Min: min, Max: &max}, nil
}

// Contains yield inside the range; a missing yield never is
func (r YieldRange) Contains(yield *float64) bool {
	if yield == nil || *yield < r.Min {
		return false
	}

	return r.Max == nil || *yield <= *r.Max
}

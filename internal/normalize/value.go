package normalize

import (
	"regexp"
	"strings"
	"time"

	"tokenboard/core"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

var (
	amountPattern  = regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d+)?)\s*(thousand|million|billion|trillion|k|m|bn|b|t)?\b`)
	percentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
)

var multipliers = map[string]decimal.Decimal{
	"k":        decimal.New(1, 3),
	"thousand": decimal.New(1, 3),
	"m":        decimal.New(1, 6),
	"million":  decimal.New(1, 6),
	"b":        decimal.New(1, 9),
	"bn":       decimal.New(1, 9),
	"billion":  decimal.New(1, 9),
	"t":        decimal.New(1, 12),
	"trillion": decimal.New(1, 12),
}

// Amount parse the first amount in a display string such as "$1.2M",
// "Min. investment $1,000" or "USD 250K"
func Amount(s string) (decimal.Decimal, bool) {
	m := amountPattern.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return decimal.Zero, false
	}

	if mul, ok := multipliers[strings.ToLower(m[2])]; ok {
		d = d.Mul(mul)
	}

	return d, true
}

// Percent parse "8.5%" or "APY 8.5 %". Without a percent sign the first
// plain number is taken.
func Percent(s string) (decimal.Decimal, bool) {
	if m := percentPattern.FindStringSubmatch(s); m != nil {
		d, err := decimal.NewFromString(m[1])
		return d, err == nil
	}

	m := amountPattern.FindStringSubmatch(s)
	if m == nil || m[2] != "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	return d, err == nil
}

// Float lenient number coercion: JSON numbers, numeric strings and display
// amounts. Anything else is 0.
func Float(v interface{}) float64 {
	f, ok := floatOf(v)
	if !ok {
		return 0
	}

	return f
}

// FloatPtr as Float but nil when the value is absent or not a number
func FloatPtr(v interface{}) *float64 {
	f, ok := floatOf(v)
	if !ok {
		return nil
	}

	return &f
}

func floatOf(v interface{}) (float64, bool) {
	if v == nil {
		return 0, false
	}

	if f, err := cast.ToFloat64E(v); err == nil {
		return f, core.IsFinite(f)
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return 0, false
	}

	d, ok := Amount(s)
	if !ok {
		return 0, false
	}

	f, _ := d.Float64()
	return f, core.IsFinite(f)
}

// String lenient string coercion, ids may arrive as numbers
func String(v interface{}) string {
	return strings.TrimSpace(cast.ToString(v))
}

// Bool lenient bool coercion, def when absent or unparseable
func Bool(v interface{}, def bool) bool {
	if v == nil {
		return def
	}

	b, err := cast.ToBoolE(v)
	if err != nil {
		return def
	}

	return b
}

// Timestamps created and updated stamps of a record. A missing side takes
// the other one, now stands in when both are missing.
func Timestamps(created, updated interface{}, now time.Time) (string, string) {
	c, u := Timestamp(created), Timestamp(updated)
	if c == "" {
		c = u
	}

	if c == "" {
		c = now.UTC().Truncate(time.Second).Format(time.RFC3339)
	}

	if u == "" {
		u = c
	}

	return c, u
}

// Timestamp re-format any date cast understands as RFC 3339 UTC, "" otherwise
func Timestamp(v interface{}) string {
	if v == nil {
		return ""
	}

	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return ""
	}

	t, err := cast.ToTimeE(v)
	if err != nil || t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}

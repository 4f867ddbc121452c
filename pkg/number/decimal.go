package number

import (
	"github.com/shopspring/decimal"
)

func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// Sum add up float values without accumulating binary rounding noise
func Sum(values ...float64) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v))
	}

	return sum
}

// Mean zero when values is empty
func Mean(values ...float64) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}

	return Sum(values...).Div(decimal.NewFromInt(int64(len(values))))
}

// Percentage part of total in percent, zero when total is zero
func Percentage(part, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total)))
}

// Float round d to places and convert
func Float(d decimal.Decimal, places int32) float64 {
	f, _ := d.Round(places).Float64()
	return f
}

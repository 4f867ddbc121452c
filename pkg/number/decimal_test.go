package number

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestSum(t *testing.T) {
	assert.Equal(t, "0.3", Sum(0.1, 0.2).String(), "should not drift")
	assert.Equal(t, "0", Sum().String())
}

func TestMean(t *testing.T) {
	data := map[string][]float64{
		"0":   nil,
		"8.5": {8.5},
		"10":  {5, 15},
		"6.5": {4, 6, 9.5},
	}

	for want, values := range data {
		t.Run(want, func(t *testing.T) {
			assert.Equal(t, want, Mean(values...).String())
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Float(Percentage(1, 0), 2))
	assert.Equal(t, 50.0, Float(Percentage(1, 2), 2))
	assert.Equal(t, 33.33, Float(Percentage(1, 3), 2))
	assert.Equal(t, 66.67, Float(Percentage(2, 3), 2))
	assert.Equal(t, 100.0, Float(Percentage(3, 3), 2))
}

func TestDecimal(t *testing.T) {
	assert.Equal(t, "1.5", Decimal("1.50").String())
	assert.Equal(t, "0", Decimal("abc").String())
}

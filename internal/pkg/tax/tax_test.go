package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortion_InclusiveFormula(t *testing.T) {
	// 51000 with 20% inclusive tax: 51000*20/120
	assert.InDelta(t, 8500.0, Portion(51000, 20), 0.0001)
}

func TestPortion_ZeroPercent(t *testing.T) {
	assert.Equal(t, 0.0, Portion(12345.67, 0))
	assert.Equal(t, 0.0, Portion(12345.67, -5))
}

func TestPortion_ZeroTotal(t *testing.T) {
	assert.Equal(t, 0.0, Portion(0, 20))
}

func TestPortion_ReconstructsTotal(t *testing.T) {
	totals := []float64{0, 1, 99.99, 51000, 1234567.89}
	percents := []float64{0, 5, 10, 12, 20}

	for _, total := range totals {
		for _, p := range percents {
			taxPart := Portion(total, p)
			net := total - taxPart
			assert.InDelta(t, total, net+taxPart, 0.000001)
			assert.LessOrEqual(t, taxPart, total)
		}
	}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFarePolicy_Quote(t *testing.T) {
	policy := DefaultFarePolicy()

	cost := policy.Quote(4500, 2)

	assert.Equal(t, CostBreakdown{BaseFare: 4500, Subtotal: 9000, Taxes: 1080, ConvenienceFee: 400}, cost)
	assert.Equal(t, int64(10480), cost.Total())
	assert.Equal(t, cost, policy.Quote(4500, 2))
}

func TestFarePolicy_Quote_SinglePassenger(t *testing.T) {
	cost := DefaultFarePolicy().Quote(4500, 1)

	assert.Equal(t, int64(540), cost.Taxes)
	assert.Equal(t, int64(5240), cost.Total())
}

func TestFarePolicy_Quote_TruncatesTaxes(t *testing.T) {
	// 12% of 4999 is 599.88
	cost := DefaultFarePolicy().Quote(4999, 1)

	assert.Equal(t, int64(599), cost.Taxes)
	assert.Equal(t, int64(4999+599+200), cost.Total())
}

func TestFarePolicy_Quote_CustomPolicy(t *testing.T) {
	policy := FarePolicy{TaxPercent: 5, ConvenienceFeePerPassenger: 0}

	cost := policy.Quote(1000, 3)

	assert.Equal(t, int64(3000), cost.Subtotal)
	assert.Equal(t, int64(150), cost.Taxes)
	assert.Equal(t, int64(0), cost.ConvenienceFee)
}

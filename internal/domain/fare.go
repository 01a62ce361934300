package domain

const (
	DefaultTaxPercent     = 12
	DefaultConvenienceFee = 200
)

// CostBreakdown is expressed in whole currency units.
type CostBreakdown struct {
	BaseFare       int64 `json:"base_fare"`
	Subtotal       int64 `json:"subtotal"`
	Taxes          int64 `json:"taxes"`
	ConvenienceFee int64 `json:"convenience_fee"`
}

// Total is subtotal plus taxes plus convenience fee, each counted once.
func (c CostBreakdown) Total() int64 {
	return c.Subtotal + c.Taxes + c.ConvenienceFee
}

type FarePolicy struct {
	TaxPercent                 int64
	ConvenienceFeePerPassenger int64
}

func DefaultFarePolicy() FarePolicy {
	return FarePolicy{
		TaxPercent:                 DefaultTaxPercent,
		ConvenienceFeePerPassenger: DefaultConvenienceFee,
	}
}

// Quote prices a booking. Only taxes are truncated; integer division keeps
// the result exact for any subtotal.
func (p FarePolicy) Quote(baseFare int64, passengers int) CostBreakdown {
	count := int64(passengers)
	subtotal := baseFare * count

	return CostBreakdown{
		BaseFare:       baseFare,
		Subtotal:       subtotal,
		Taxes:          subtotal * p.TaxPercent / 100,
		ConvenienceFee: p.ConvenienceFeePerPassenger * count,
	}
}

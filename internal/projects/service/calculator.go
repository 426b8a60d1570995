package service

import "ironmanage_backend/platform/apperr"

// LineQuote is the result of pricing one project line. Lengths are in
// millimeters and money in cents.
type LineQuote struct {
	BarsNeeded int
	CostCents  int64
	OffcutMm   int64
}

// ComputeLine prices a single material requirement. Bars are sold whole, so
// the bar count is always rounded up; the leftover length of the last bar is
// reported as the offcut. Pure function, no side effects.
func ComputeLine(requiredMm, barLengthMm, unitPriceCents int64) (LineQuote, error) {
	if requiredMm <= 0 {
		return LineQuote{}, apperr.Validation("linear meters must be positive")
	}
	if barLengthMm <= 0 {
		return LineQuote{}, apperr.Validation("bar length must be positive")
	}
	if unitPriceCents < 0 {
		return LineQuote{}, apperr.Validation("unit price must not be negative")
	}

	bars := (requiredMm + barLengthMm - 1) / barLengthMm
	return LineQuote{
		BarsNeeded: int(bars),
		CostCents:  bars * unitPriceCents,
		OffcutMm:   bars*barLengthMm - requiredMm,
	}, nil
}

package salesform

// Display labels for the three sales count fields.
const (
	LockLabel   = "Locks"
	StockLabel  = "Stocks"
	BarrelLabel = "Barrels"
)

// ValidateInputRanges checks the three sales counts against their inclusive
// bounds. Each check is independent; every violated bound produces one
// message, always in locks, stocks, barrels order. Counts are taken as
// float64 so an upstream parse failure can be passed through as NaN, which
// is always out of range. A nil result means all counts are valid.
func ValidateInputRanges(locks, stocks, barrels float64) []string {
	var errs []string
	if !LockBounds.Contains(locks) {
		errs = append(errs, rangeMessage(LockLabel, LockBounds))
	}
	if !StockBounds.Contains(stocks) {
		errs = append(errs, rangeMessage(StockLabel, StockBounds))
	}
	if !BarrelBounds.Contains(barrels) {
		errs = append(errs, rangeMessage(BarrelLabel, BarrelBounds))
	}
	return errs
}

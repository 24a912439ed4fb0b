package commission

// Unit prices and tier boundaries in cents. All money math stays in integer
// cents; dollars appear only at the API boundary.
const (
	lockPriceCents   = 45_00
	stockPriceCents  = 30_00
	barrelPriceCents = 25_00

	// Commission tiers: 10% of the first $1,000 of sales, 15% of the next
	// $800, 20% of everything above $1,800.
	tier1CapCents = 1_000_00
	tier2CapCents = 1_800_00

	tier1Rate = 10
	tier2Rate = 15
	tier3Rate = 20
)

// SalesCents returns the total sales amount for the given item counts.
func SalesCents(locks, stocks, barrels int) int64 {
	return int64(locks)*lockPriceCents +
		int64(stocks)*stockPriceCents +
		int64(barrels)*barrelPriceCents
}

// CommissionCents returns the commission owed on a sales amount.
// Unit prices are whole dollars, so every tier percentage divides the sales
// cents exactly.
func CommissionCents(salesCents int64) int64 {
	if salesCents <= 0 {
		return 0
	}

	var commission int64

	tier1 := min(salesCents, tier1CapCents)
	commission += tier1 * tier1Rate / 100

	if salesCents > tier1CapCents {
		tier2 := min(salesCents, tier2CapCents) - tier1CapCents
		commission += tier2 * tier2Rate / 100
	}

	if salesCents > tier2CapCents {
		commission += (salesCents - tier2CapCents) * tier3Rate / 100
	}

	return commission
}

// dollars converts cents to a float dollar amount for API responses.
func dollars(cents int64) float64 {
	return float64(cents) / 100
}

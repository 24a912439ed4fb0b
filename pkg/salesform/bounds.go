package salesform

import "math"

// Bounds describes the inclusive valid range for a numeric sales field.
type Bounds struct {
	Min int
	Max int
}

// Per-field ranges, declared once. Both the pure validation helpers and the
// rule constructors consult these values, so the client-facing checks and the
// endpoint contract cannot drift apart.
var (
	LockBounds   = Bounds{Min: 1, Max: 70}
	StockBounds  = Bounds{Min: 1, Max: 80}
	BarrelBounds = Bounds{Min: 1, Max: 90}
)

// Contains reports whether v lies within the bounds. Both endpoints are
// valid values. NaN is never in range.
func (b Bounds) Contains(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	return v >= float64(b.Min) && v <= float64(b.Max)
}

// ContainsInt reports whether n lies within the bounds.
func (b Bounds) ContainsInt(n int) bool {
	return n >= b.Min && n <= b.Max
}

package commission

import (
	"time"

	"github.com/google/uuid"
)

// CalculateRequest carries the raw form values. Counts stay as strings so
// validation can distinguish missing, non-integer, and out-of-range input.
type CalculateRequest struct {
	Name    string `json:"name" form:"name"`
	Locks   string `json:"locks" form:"locks"`
	Stocks  string `json:"stocks" form:"stocks"`
	Barrels string `json:"barrels" form:"barrels"`
}

// CalculateResult is the payload of a successful calculation.
type CalculateResult struct {
	Name       string  `json:"name"`
	Locks      int     `json:"locks"`
	Stocks     int     `json:"stocks"`
	Barrels    int     `json:"barrels"`
	Sales      float64 `json:"sales"`
	Commission float64 `json:"commission"`
}

// HistoryQuery bounds the history listing.
type HistoryQuery struct {
	Limit int `query:"limit"`
}

// HistoryEntry is one stored calculation in API form.
type HistoryEntry struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Locks      int       `json:"locks"`
	Stocks     int       `json:"stocks"`
	Barrels    int       `json:"barrels"`
	Sales      float64   `json:"sales"`
	Commission float64   `json:"commission"`
	CreatedAt  time.Time `json:"created_at"`
}

// SalesEntry is the storage representation of a calculation. Money is kept
// in cents.
type SalesEntry struct {
	ID              uuid.UUID
	Name            string
	Locks           int
	Stocks          int
	Barrels         int
	SalesCents      int64
	CommissionCents int64
	CreatedAt       time.Time
}

func (e SalesEntry) toHistoryEntry() HistoryEntry {
	return HistoryEntry{
		ID:         e.ID,
		Name:       e.Name,
		Locks:      e.Locks,
		Stocks:     e.Stocks,
		Barrels:    e.Barrels,
		Sales:      dollars(e.SalesCents),
		Commission: dollars(e.CommissionCents),
		CreatedAt:  e.CreatedAt,
	}
}

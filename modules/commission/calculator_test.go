package commission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/salesdesk/modules/commission"
)

func TestSalesCents(t *testing.T) {
	t.Run("prices each item kind", func(t *testing.T) {
		assert.Equal(t, int64(45_00), commission.SalesCents(1, 0, 0))
		assert.Equal(t, int64(30_00), commission.SalesCents(0, 1, 0))
		assert.Equal(t, int64(25_00), commission.SalesCents(0, 0, 1))
	})

	t.Run("sums mixed orders", func(t *testing.T) {
		// 10*45 + 20*30 + 30*25 = 1800 dollars
		assert.Equal(t, int64(1_800_00), commission.SalesCents(10, 20, 30))
	})

	t.Run("handles maximum counts", func(t *testing.T) {
		// 70*45 + 80*30 + 90*25 = 7800 dollars
		assert.Equal(t, int64(7_800_00), commission.SalesCents(70, 80, 90))
	})
}

func TestCommissionCents(t *testing.T) {
	t.Run("returns zero for zero sales", func(t *testing.T) {
		assert.Zero(t, commission.CommissionCents(0))
	})

	t.Run("applies 10 percent below the first tier cap", func(t *testing.T) {
		assert.Equal(t, int64(10_00), commission.CommissionCents(100_00))
		assert.Equal(t, int64(100_00), commission.CommissionCents(1_000_00))
	})

	t.Run("applies 15 percent in the second tier", func(t *testing.T) {
		// $1,500: 10% of 1000 + 15% of 500 = 100 + 75
		assert.Equal(t, int64(175_00), commission.CommissionCents(1_500_00))
		// $1,800: 100 + 15% of 800 = 220
		assert.Equal(t, int64(220_00), commission.CommissionCents(1_800_00))
	})

	t.Run("applies 20 percent above the second tier cap", func(t *testing.T) {
		// $2,000: 100 + 120 + 20% of 200 = 260
		assert.Equal(t, int64(260_00), commission.CommissionCents(2_000_00))
		// Maximum order $7,800: 100 + 120 + 20% of 6000 = 1420
		assert.Equal(t, int64(1_420_00), commission.CommissionCents(7_800_00))
	})

	t.Run("minimum order earns the base rate", func(t *testing.T) {
		// 1 lock + 1 stock + 1 barrel = $100, commission $10
		sales := commission.SalesCents(1, 1, 1)
		assert.Equal(t, int64(10_00), commission.CommissionCents(sales))
	})
}

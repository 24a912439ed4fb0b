package commission_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/salesdesk/modules/commission"
	"github.com/dmitrymomot/salesdesk/pkg/i18n"
	"github.com/dmitrymomot/salesdesk/pkg/validator"
)

type fakeStorage struct {
	entries []commission.SalesEntry
	saveErr error
	listErr error
}

func (f *fakeStorage) SaveEntry(_ context.Context, entry commission.SalesEntry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeStorage) ListEntries(_ context.Context, limit int) ([]commission.SalesEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	return f.entries[:limit], nil
}

func validRequest() commission.CalculateRequest {
	return commission.CalculateRequest{
		Name:    "Ken",
		Locks:   "10",
		Stocks:  "20",
		Barrels: "30",
	}
}

func TestServiceCalculate(t *testing.T) {
	ctx := context.Background()

	t.Run("computes sales and commission", func(t *testing.T) {
		svc := commission.NewService()

		result, err := svc.Calculate(ctx, validRequest())
		require.NoError(t, err)

		assert.Equal(t, "Ken", result.Name)
		assert.Equal(t, 10, result.Locks)
		assert.Equal(t, 20, result.Stocks)
		assert.Equal(t, 30, result.Barrels)
		assert.InDelta(t, 1800.0, result.Sales, 0.001)
		assert.InDelta(t, 220.0, result.Commission, 0.001)
	})

	t.Run("accepts thai names", func(t *testing.T) {
		req := validRequest()
		req.Name = "Ken เคน"

		svc := commission.NewService()
		result, err := svc.Calculate(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Ken เคน", result.Name)
	})

	t.Run("collects one message per invalid field in order", func(t *testing.T) {
		svc := commission.NewService()

		_, err := svc.Calculate(ctx, commission.CalculateRequest{
			Name:    "",
			Locks:   "0",
			Stocks:  "abc",
			Barrels: "",
		})
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 4)
		assert.Equal(t, []string{
			"Please enter a name",
			"Locks must be between 1 and 70",
			"Stocks must be a whole number",
			"Please enter Barrels",
		}, verrs.Messages())
	})

	t.Run("rejects boundary violations", func(t *testing.T) {
		svc := commission.NewService()

		req := validRequest()
		req.Locks = "71"
		_, err := svc.Calculate(ctx, req)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "Locks must be between 1 and 70", verrs[0].Message)
	})

	t.Run("accepts boundary values", func(t *testing.T) {
		svc := commission.NewService()

		req := commission.CalculateRequest{Name: "Ken", Locks: "70", Stocks: "80", Barrels: "90"}
		result, err := svc.Calculate(ctx, req)
		require.NoError(t, err)
		assert.InDelta(t, 7800.0, result.Sales, 0.001)
		assert.InDelta(t, 1420.0, result.Commission, 0.001)
	})

	t.Run("localizes messages for thai locale", func(t *testing.T) {
		translator, err := commission.NewTranslator(ctx)
		require.NoError(t, err)

		svc := commission.NewService(commission.WithTranslator(translator))

		req := validRequest()
		req.Name = ""
		thaiCtx := i18n.SetLocale(ctx, "th")

		_, err = svc.Calculate(thaiCtx, req)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "กรุณากรอกชื่อ", verrs[0].Message)
	})

	t.Run("thai messages use thai field labels", func(t *testing.T) {
		translator, err := commission.NewTranslator(ctx)
		require.NoError(t, err)

		svc := commission.NewService(commission.WithTranslator(translator))
		thaiCtx := i18n.SetLocale(ctx, "th")

		req := validRequest()
		req.Locks = "0"
		req.Stocks = ""
		_, err = svc.Calculate(thaiCtx, req)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "กุญแจ ต้องอยู่ระหว่าง 1 ถึง 70", verrs[0].Message)
		assert.Equal(t, "กรุณากรอกพานท้าย", verrs[1].Message)
	})

	t.Run("keeps english messages for default locale", func(t *testing.T) {
		translator, err := commission.NewTranslator(ctx)
		require.NoError(t, err)

		svc := commission.NewService(commission.WithTranslator(translator))

		req := validRequest()
		req.Name = ""
		_, err = svc.Calculate(ctx, req)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "Please enter a name", verrs[0].Message)
	})

	t.Run("stores entries for valid calculations", func(t *testing.T) {
		storage := &fakeStorage{}
		svc := commission.NewService(commission.WithStorage(storage))

		_, err := svc.Calculate(ctx, validRequest())
		require.NoError(t, err)

		require.Len(t, storage.entries, 1)
		entry := storage.entries[0]
		assert.Equal(t, "Ken", entry.Name)
		assert.Equal(t, int64(1_800_00), entry.SalesCents)
		assert.Equal(t, int64(220_00), entry.CommissionCents)
		assert.NotZero(t, entry.ID)
	})

	t.Run("does not store invalid submissions", func(t *testing.T) {
		storage := &fakeStorage{}
		svc := commission.NewService(commission.WithStorage(storage))

		req := validRequest()
		req.Locks = "999"
		_, err := svc.Calculate(ctx, req)
		require.Error(t, err)
		assert.Empty(t, storage.entries)
	})

	t.Run("survives storage failures", func(t *testing.T) {
		storage := &fakeStorage{saveErr: errors.New("db down")}
		svc := commission.NewService(commission.WithStorage(storage))

		result, err := svc.Calculate(ctx, validRequest())
		require.NoError(t, err)
		assert.InDelta(t, 220.0, result.Commission, 0.001)
	})
}

func TestServiceHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("returns empty history without storage", func(t *testing.T) {
		svc := commission.NewService()

		history, err := svc.History(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("converts entries to dollar amounts", func(t *testing.T) {
		storage := &fakeStorage{}
		svc := commission.NewService(commission.WithStorage(storage))

		_, err := svc.Calculate(ctx, validRequest())
		require.NoError(t, err)

		history, err := svc.History(ctx, 10)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.InDelta(t, 1800.0, history[0].Sales, 0.001)
		assert.InDelta(t, 220.0, history[0].Commission, 0.001)
	})

	t.Run("propagates listing failures", func(t *testing.T) {
		storage := &fakeStorage{listErr: errors.New("db down")}
		svc := commission.NewService(commission.WithStorage(storage))

		_, err := svc.History(ctx, 10)
		assert.Error(t, err)
	})
}

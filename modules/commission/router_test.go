package commission_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/salesdesk/modules/commission"
	"github.com/dmitrymomot/salesdesk/pkg/i18n"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func newTestRouter(t *testing.T, opts ...commission.ServiceOption) http.Handler {
	t.Helper()

	translator, err := commission.NewTranslator(context.Background())
	require.NoError(t, err)

	opts = append([]commission.ServiceOption{commission.WithTranslator(translator)}, opts...)
	return commission.Router(commission.RouterConfig{
		Service: commission.NewService(opts...),
		LangExtractor: i18n.DefaultLangExtractor(
			i18n.WithSupportedLanguages(commission.SupportedLanguages...),
		),
	})
}

func postCalculate(t *testing.T, router http.Handler, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouterCalculate(t *testing.T) {
	t.Run("returns the calculation in a success envelope", func(t *testing.T) {
		router := newTestRouter(t)

		rec := postCalculate(t, router, `{"name":"Ken","locks":"10","stocks":"20","barrels":"30"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

		var resp envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Empty(t, resp.Errors)

		var result commission.CalculateResult
		require.NoError(t, json.Unmarshal(resp.Data, &result))
		assert.Equal(t, "Ken", result.Name)
		assert.InDelta(t, 1800.0, result.Sales, 0.001)
		assert.InDelta(t, 220.0, result.Commission, 0.001)
	})

	t.Run("returns 422 with ordered messages for invalid input", func(t *testing.T) {
		router := newTestRouter(t)

		rec := postCalculate(t, router, `{"name":"","locks":"0","stocks":"abc","barrels":""}`, nil)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, []string{
			"Please enter a name",
			"Locks must be between 1 and 70",
			"Stocks must be a whole number",
			"Please enter Barrels",
		}, resp.Errors)
	})

	t.Run("localizes errors from the accept language header", func(t *testing.T) {
		router := newTestRouter(t)

		header := http.Header{}
		header.Set("Accept-Language", "th-TH,th;q=0.9")
		rec := postCalculate(t, router, `{"name":"","locks":"10","stocks":"20","barrels":"30"}`, header)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "กรุณากรอกชื่อ", resp.Errors[0])
	})

	t.Run("lang query parameter overrides the header", func(t *testing.T) {
		router := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/calculate?lang=th", strings.NewReader(`{"name":"","locks":"10","stocks":"20","barrels":"30"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept-Language", "en")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "กรุณากรอกชื่อ", resp.Errors[0])
	})

	t.Run("returns 400 for malformed json", func(t *testing.T) {
		router := newTestRouter(t)

		rec := postCalculate(t, router, `{"name":`, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Errors)
	})

	t.Run("returns 400 for unknown fields", func(t *testing.T) {
		router := newTestRouter(t)

		rec := postCalculate(t, router, `{"name":"Ken","locks":"10","stocks":"20","barrels":"30","extra":true}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouterHistory(t *testing.T) {
	t.Run("lists stored calculations", func(t *testing.T) {
		storage := &fakeStorage{}
		router := newTestRouter(t, commission.WithStorage(storage))

		rec := postCalculate(t, router, `{"name":"Ken","locks":"1","stocks":"1","barrels":"1"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		req := httptest.NewRequest(http.MethodGet, "/history?limit=5", nil)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		var history []commission.HistoryEntry
		require.NoError(t, json.Unmarshal(resp.Data, &history))
		require.Len(t, history, 1)
		assert.Equal(t, "Ken", history[0].Name)
		assert.InDelta(t, 100.0, history[0].Sales, 0.001)
		assert.InDelta(t, 10.0, history[0].Commission, 0.001)
	})

	t.Run("answers empty history without storage", func(t *testing.T) {
		router := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/history", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.JSONEq(t, `[]`, string(resp.Data))
	})
}

package commission

import (
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/salesdesk/pkg/binder"
	"github.com/dmitrymomot/salesdesk/pkg/handler"
	"github.com/dmitrymomot/salesdesk/pkg/i18n"
	"github.com/dmitrymomot/salesdesk/pkg/ratelimit"
)

// RouterConfig wires the commission endpoints. Service is required; Limiter
// and LangExtractor are optional.
type RouterConfig struct {
	Service       *Service
	Limiter       ratelimit.Limiter
	LangExtractor i18n.LangExtractor
}

// Router builds the commission API routes, intended to be mounted at
// /api/commission.
func Router(cfg RouterConfig) chi.Router {
	if cfg.Service == nil {
		panic("commission.Router: Service is required")
	}

	r := chi.NewRouter()
	r.Use(i18n.Middleware(cfg.LangExtractor))
	if cfg.Limiter != nil {
		r.Use(ratelimit.Middleware(cfg.Limiter, ratelimit.KeyByIP()))
	}

	r.Post("/calculate", handler.Wrap(calculateHandler(cfg.Service),
		handler.WithBinder[handler.Context, CalculateRequest](binder.BindJSON()),
	))
	r.Get("/history", handler.Wrap(historyHandler(cfg.Service),
		handler.WithBinder[handler.Context, HistoryQuery](binder.BindQuery()),
	))

	return r
}

func calculateHandler(svc *Service) handler.HandlerFunc[handler.Context, CalculateRequest] {
	return func(ctx handler.Context, req CalculateRequest) handler.Response {
		result, err := svc.Calculate(ctx, req)
		if err != nil {
			return handler.JSONError(err)
		}
		return handler.JSON(result)
	}
}

func historyHandler(svc *Service) handler.HandlerFunc[handler.Context, HistoryQuery] {
	return func(ctx handler.Context, req HistoryQuery) handler.Response {
		history, err := svc.History(ctx, req.Limit)
		if err != nil {
			return handler.JSONError(err)
		}
		return handler.JSON(history)
	}
}

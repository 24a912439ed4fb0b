package commission

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/salesdesk/pkg/i18n"
	"github.com/dmitrymomot/salesdesk/pkg/logger"
	"github.com/dmitrymomot/salesdesk/pkg/salesform"
	"github.com/dmitrymomot/salesdesk/pkg/validator"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// Storage persists calculation results.
type Storage interface {
	SaveEntry(ctx context.Context, entry SalesEntry) error
	ListEntries(ctx context.Context, limit int) ([]SalesEntry, error)
}

// Service validates sales input, computes commission, and records history.
type Service struct {
	storage    Storage
	translator *i18n.Translator
	log        *slog.Logger
	policy     salesform.NamePolicy
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithStorage enables history persistence. Without it calculations are not
// recorded.
func WithStorage(storage Storage) ServiceOption {
	return func(s *Service) {
		s.storage = storage
	}
}

// WithTranslator enables localized validation messages.
func WithTranslator(translator *i18n.Translator) ServiceOption {
	return func(s *Service) {
		s.translator = translator
	}
}

// WithServiceLogger sets the service logger.
func WithServiceLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithNamePolicy overrides the default Latin-or-Thai name policy.
func WithNamePolicy(policy salesform.NamePolicy) ServiceOption {
	return func(s *Service) {
		s.policy = policy
	}
}

// NewService creates a commission service.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		policy: salesform.DefaultNamePolicy,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Calculate validates the request and computes sales and commission.
// Validation failures return localized validator.ValidationErrors with one
// message per field, ordered name, locks, stocks, barrels. Storage failures
// are logged but do not fail the calculation.
func (s *Service) Calculate(ctx context.Context, req CalculateRequest) (CalculateResult, error) {
	rules := salesform.NameRules("name", req.Name, s.policy)
	rules = append(rules, salesform.CountRules("locks", salesform.LockLabel, req.Locks, salesform.LockBounds)...)
	rules = append(rules, salesform.CountRules("stocks", salesform.StockLabel, req.Stocks, salesform.StockBounds)...)
	rules = append(rules, salesform.CountRules("barrels", salesform.BarrelLabel, req.Barrels, salesform.BarrelBounds)...)

	if err := validator.Apply(rules...); err != nil {
		return CalculateResult{}, s.localize(ctx, err)
	}

	// Validation guarantees clean integer literals.
	locks, _ := strconv.Atoi(strings.TrimSpace(req.Locks))
	stocks, _ := strconv.Atoi(strings.TrimSpace(req.Stocks))
	barrels, _ := strconv.Atoi(strings.TrimSpace(req.Barrels))

	salesCents := SalesCents(locks, stocks, barrels)
	commissionCents := CommissionCents(salesCents)

	result := CalculateResult{
		Name:       strings.TrimSpace(req.Name),
		Locks:      locks,
		Stocks:     stocks,
		Barrels:    barrels,
		Sales:      dollars(salesCents),
		Commission: dollars(commissionCents),
	}

	if s.storage != nil {
		entry := SalesEntry{
			ID:              uuid.New(),
			Name:            result.Name,
			Locks:           locks,
			Stocks:          stocks,
			Barrels:         barrels,
			SalesCents:      salesCents,
			CommissionCents: commissionCents,
			CreatedAt:       time.Now().UTC(),
		}
		if err := s.storage.SaveEntry(ctx, entry); err != nil {
			s.log.ErrorContext(ctx, "failed to store sales entry",
				logger.Component("commission"),
				logger.EntryID(entry.ID),
				logger.Error(err),
			)
		}
	}

	return result, nil
}

// History returns the most recent calculations, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if s.storage == nil {
		return []HistoryEntry{}, nil
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	entries, err := s.storage.ListEntries(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("commission: list history: %w", err)
	}

	history := make([]HistoryEntry, len(entries))
	for i, entry := range entries {
		history[i] = entry.toHistoryEntry()
	}
	return history, nil
}

// localize replaces validation messages with catalog translations for the
// request locale. The default language keeps the messages the rules carry.
func (s *Service) localize(ctx context.Context, err error) error {
	if s.translator == nil {
		return err
	}

	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return err
	}

	locale := i18n.GetLocale(ctx)
	if locale == s.translator.DefaultLang() {
		return err
	}

	localized := make(validator.ValidationErrors, len(verrs))
	for i, ve := range verrs {
		localized[i] = ve
		if ve.TranslationKey == "" || !s.translator.HasTranslation(locale, ve.TranslationKey) {
			continue
		}

		args := make([]string, 0, len(ve.TranslationValues)*2)
		for k, v := range ve.TranslationValues {
			args = append(args, k, s.localizeParam(locale, ve.Field, k, v))
		}
		localized[i].Message = s.translator.T(locale, ve.TranslationKey, args...)
	}
	return localized
}

// localizeParam resolves one template parameter. Field labels get their
// per-locale translation from the catalog so interpolated messages never mix
// scripts; other parameters pass through as-is.
func (s *Service) localizeParam(locale, field, key string, value any) string {
	if key == "field" {
		labelKey := "salesform.labels." + field
		if s.translator.HasTranslation(locale, labelKey) {
			return s.translator.T(locale, labelKey)
		}
	}
	return fmt.Sprint(value)
}

package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultLanguage is used when no language can be detected.
const DefaultLanguage = "en"

// Translator resolves translation keys against catalogs loaded from an
// adapter. Safe for concurrent use.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
	mu            sync.RWMutex
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when the requested one is not
// available.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether missing translations resolve to the key
// itself. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger provides a logger for the translator. A discard logger is used
// by default.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging enables warnings for unresolved keys.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.logMissing = log
	}
}

// NewTranslator creates a Translator with catalogs loaded from the adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, fmt.Errorf("i18n: adapter is nil")
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, catalog := range translations {
		if lang == "" {
			return nil, fmt.Errorf("i18n: empty language code in catalog")
		}
		if catalog == nil {
			return nil, fmt.Errorf("i18n: nil catalog for language %q", lang)
		}
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

// SupportedLanguages returns the sorted language codes with loaded catalogs.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// DefaultLang returns the configured default language.
func (t *Translator) DefaultLang() string {
	return t.defaultLang
}

// HasTranslation reports whether a translation exists for the language and
// dot-separated key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	catalog, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(catalog, key)
	return ok
}

// T translates a dot-separated key for the given language. Substitution
// parameters are passed as key-value pairs and replace %{name} placeholders:
//
//	translator.T("en", "salesform.range", "label", "Locks", "min", "1", "max", "70")
//
// Unknown languages fall back to the default language's catalog; unresolved
// keys fall back to the key itself unless WithFallbackToKey(false) was set.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	catalog, ok := t.translations[lang]
	if !ok {
		catalog, ok = t.translations[t.defaultLang]
	}
	if !ok {
		return t.miss(lang, key, args)
	}

	val, ok := lookup(catalog, key)
	if !ok {
		return t.miss(lang, key, args)
	}

	s, ok := val.(string)
	if !ok {
		return t.miss(lang, key, args)
	}
	return substitute(s, args)
}

func (t *Translator) miss(lang, key string, args []string) string {
	if t.logMissing {
		t.logger.Warn("translation not found", "lang", lang, "key", key)
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// lookup traverses a nested catalog using dot-separated keys, so
// "salesform.name_required" resolves catalog["salesform"]["name_required"].
func lookup(catalog map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := catalog

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}

	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders with values from the key-value
// argument pairs. Odd trailing arguments and unknown placeholders are left
// untouched.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}

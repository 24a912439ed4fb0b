package i18n

import (
	"net/http"
	"strings"
)

// LangExtractor extracts a language code from an HTTP request.
type LangExtractor func(r *http.Request) string

// ExtractorConfig controls where DefaultLangExtractor looks for the language.
type ExtractorConfig struct {
	queryParam string
	cookieName string
	supported  []string
}

// ExtractorOption configures DefaultLangExtractor.
type ExtractorOption func(*ExtractorConfig)

// WithQueryParamName overrides the default "lang" query parameter.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.queryParam = name
		}
	}
}

// WithCookieName overrides the default "lang" cookie.
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.cookieName = name
		}
	}
}

// WithSupportedLanguages restricts extraction to the given codes. Values from
// the request that are not in the list are ignored.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		c.supported = make([]string, 0, len(langs))
		for _, lang := range langs {
			if lang != "" {
				c.supported = append(c.supported, strings.ToLower(lang))
			}
		}
	}
}

// DefaultLangExtractor checks the query parameter, then the cookie, then the
// Accept-Language header. Explicit choices win over browser preferences.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{
		queryParam: "lang",
		cookieName: "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request) string {
		if lang := cfg.validate(r.URL.Query().Get(cfg.queryParam)); lang != "" {
			return lang
		}
		if cookie, err := r.Cookie(cfg.cookieName); err == nil {
			if lang := cfg.validate(cookie.Value); lang != "" {
				return lang
			}
		}
		if header := r.Header.Get("Accept-Language"); header != "" && len(cfg.supported) > 0 {
			if lang := MatchAcceptLanguage(header, cfg.supported, ""); lang != "" {
				return lang
			}
		}
		return ""
	}
}

func (c *ExtractorConfig) validate(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return ""
	}
	if len(c.supported) == 0 {
		return lang
	}
	for _, s := range c.supported {
		if s == lang {
			return lang
		}
	}
	return ""
}

package commission

import (
	"context"
	"embed"

	"github.com/dmitrymomot/salesdesk/pkg/i18n"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// SupportedLanguages lists the locales with embedded catalogs.
var SupportedLanguages = []string{"en", "th"}

// NewTranslator loads the module's embedded translation catalogs.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	adapter := i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), localesFS, "locales")
	return i18n.NewTranslator(ctx, adapter, opts...)
}

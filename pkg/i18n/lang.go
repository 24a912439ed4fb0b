package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Oversized Accept-Language headers are truncated before parsing so a hostile
// client cannot force large allocations.
const maxAcceptLanguageLength = 4096

// MatchAcceptLanguage negotiates the best supported language for an
// Accept-Language header using x/text's matcher, which handles quality
// values and regional fallbacks (th-TH matches th). Returns defaultLang when
// nothing matches.
func MatchAcceptLanguage(header string, supported []string, defaultLang string) string {
	if header == "" || len(supported) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, lang := range supported {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	preferred, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(preferred) == 0 {
		return defaultLang
	}

	_, index, confidence := language.NewMatcher(tags).Match(preferred...)
	if confidence == language.No {
		return defaultLang
	}

	return strings.ToLower(supported[index])
}

// Package i18n provides translation catalogs with language negotiation for
// HTTP services.
//
// Catalogs are YAML files whose top-level keys are language codes, loaded
// either from an in-memory map (MapAdapter, handy in tests) or from files
// embedded in the binary (EmbeddedFsAdapter):
//
//	en:
//	  salesform:
//	    name_required: "Please enter a name"
//	    range: "%{label} must be between %{min} and %{max}"
//	th:
//	  salesform:
//	    name_required: "กรุณากรอกชื่อ"
//
// Translation keys are dot-separated paths; parameters replace %{name}
// placeholders:
//
//	msg := translator.T("en", "salesform.range",
//	    "label", "Locks", "min", "1", "max", "70")
//
// Language detection runs as middleware: the query parameter and cookie take
// priority, then the Accept-Language header is negotiated against supported
// languages with golang.org/x/text. The chosen locale travels through the
// request context (SetLocale/GetLocale).
package i18n

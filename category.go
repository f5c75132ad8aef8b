package camdict

import "regexp"

// Category identifies which kind of page a lookup resolved to.
type Category string

// Page categories.
const (
	CategoryEntry      Category = "entry"
	CategorySuggestion Category = "suggestion"
)

// Category tokens as they appear in the resolved URL.
const (
	// EntryToken is the URL-encoded form of 詞典 ("dictionary").
	EntryToken      = "%E8%A9%9E%E5%85%B8"
	SpellcheckToken = "spellcheck"
)

// Locale is the fixed path prefix every resolved URL carries.
const Locale = "zht"

var categoryPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://[^/?#]+/` + Locale + `/([^/?#]*)/`)

// Classify inspects the URL a lookup resolved to after redirects and reports
// the category of the page. The token is compared in its encoded form.
func Classify(resolvedURL string) (Category, error) {
	m := categoryPattern.FindStringSubmatch(resolvedURL)
	if m == nil {
		return "", Errorf(EMALFORMEDURL, "no /%s/ category segment in %q", Locale, resolvedURL)
	}

	switch token := m[1]; token {
	case EntryToken:
		return CategoryEntry, nil
	case SpellcheckToken:
		return CategorySuggestion, nil
	default:
		return "", &CategoryError{Token: token}
	}
}

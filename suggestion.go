package camdict

// SuggestionPage is the structured content of a spelling-suggestion page.
type SuggestionPage struct {
	Title           string           `json:"title"`
	Description     []string         `json:"description"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Recommendation is a suggested spelling for the queried word.
// Link is only set when the lookup itself failed.
type Recommendation struct {
	Word string  `json:"word"`
	Link *string `json:"link,omitempty"`
}

// SuggestionParser extracts "did you mean" suggestions from a spellcheck page.
type SuggestionParser interface {
	// ParseSuggestion walks the page and returns its suggestions.
	// success reports whether the HTTP response that produced the page was
	// successful; links are only extracted when it was not.
	ParseSuggestion(html string, success bool) (*SuggestionPage, error)
}

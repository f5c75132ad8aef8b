package mock

import "github.com/is3ka1/camdict"

var (
	_ camdict.EntryParser      = (*EntryParser)(nil)
	_ camdict.SuggestionParser = (*SuggestionParser)(nil)
)

// EntryParser is a mock implementation of camdict.EntryParser.
type EntryParser struct {
	ParseEntryFn func(html string) (*camdict.EntryPage, error)
}

func (p *EntryParser) ParseEntry(html string) (*camdict.EntryPage, error) {
	return p.ParseEntryFn(html)
}

// SuggestionParser is a mock implementation of camdict.SuggestionParser.
type SuggestionParser struct {
	ParseSuggestionFn func(html string, success bool) (*camdict.SuggestionPage, error)
}

func (p *SuggestionParser) ParseSuggestion(html string, success bool) (*camdict.SuggestionPage, error) {
	return p.ParseSuggestionFn(html, success)
}

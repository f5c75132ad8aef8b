package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/is3ka1/camdict"
)

var _ camdict.SuggestionParser = (*SuggestionParser)(nil)

// SuggestionParser extracts "did you mean" suggestions from Cambridge
// spellcheck pages.
type SuggestionParser struct{}

// NewSuggestionParser creates a new SuggestionParser.
func NewSuggestionParser() *SuggestionParser {
	return &SuggestionParser{}
}

// ParseSuggestion parses HTML and returns the page heading, its description
// paragraphs and the recommended words. Links are only read when success is
// false, that is when the lookup itself failed.
func (p *SuggestionParser) ParseSuggestion(html string, success bool) (*camdict.SuggestionPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, camdict.Errorf(camdict.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &camdict.SuggestionPage{
		Description:     []string{},
		Recommendations: []camdict.Recommendation{},
	}

	content := doc.FindMatcher(suggestionContainer).First()
	if content.Length() == 0 {
		return page, nil
	}

	page.Title = concatText(content.FindMatcher(suggestionHeading).First().Nodes)

	content.FindMatcher(suggestionParagraph).Each(func(_ int, s *goquery.Selection) {
		page.Description = append(page.Description, concatText(s.Nodes))
	})

	content.FindMatcher(suggestionItem).Each(func(_ int, s *goquery.Selection) {
		rec := camdict.Recommendation{
			Word: concatText(s.FindMatcher(suggestionLabel).Nodes),
		}
		if !success {
			if href, ok := s.FindMatcher(anchor).First().Attr("href"); ok {
				rec.Link = &href
			}
		}
		page.Recommendations = append(page.Recommendations, rec)
	})

	return page, nil
}

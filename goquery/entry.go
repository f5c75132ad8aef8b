package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/is3ka1/camdict"
)

var _ camdict.EntryParser = (*EntryParser)(nil)

// EntryParser extracts entries from Cambridge dictionary entry pages.
// It holds no state and is safe for concurrent use.
type EntryParser struct{}

// NewEntryParser creates a new EntryParser.
func NewEntryParser() *EntryParser {
	return &EntryParser{}
}

// ParseEntry parses HTML and returns every top-level entry in document order,
// followed by the page's "browse similar words" list.
func (p *EntryParser) ParseEntry(html string) (*camdict.EntryPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, camdict.Errorf(camdict.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &camdict.EntryPage{
		Entries: []camdict.Entry{},
		Browse:  []camdict.BrowseItem{},
	}

	// Nested entry bodies belong to the entry that contains them.
	doc.FindMatcher(entryBody).
		FilterFunction(func(_ int, s *goquery.Selection) bool {
			return s.ParentsMatcher(entryBody).Length() == 0
		}).
		Each(func(_ int, s *goquery.Selection) {
			page.Entries = append(page.Entries, parseEntry(s))
		})

	doc.FindMatcher(browseItem).Each(func(_ int, s *goquery.Selection) {
		page.Browse = append(page.Browse, camdict.BrowseItem{Text: concatText(s.Nodes)})
	})

	return page, nil
}

func parseEntry(s *goquery.Selection) camdict.Entry {
	entry := camdict.Entry{
		Title:           concatText(s.FindMatcher(entryTitle).Nodes),
		PartOfSpeech:    firstText(s.FindMatcher(partOfSpeech).Nodes),
		UKPronunciation: concatText(s.FindMatcher(ukPronunciation).Nodes),
		USPronunciation: concatText(s.FindMatcher(usPronunciation).Nodes),
		Senses:          []camdict.Sense{},
	}

	s.FindMatcher(sense).Each(func(_ int, sel *goquery.Selection) {
		entry.Senses = append(entry.Senses, parseSense(sel))
	})

	if g := s.FindMatcher(idiomGroup).First(); g.Length() > 0 {
		title, items := parseGroup(g)
		entry.Idiom = &camdict.IdiomGroup{Title: title, Items: items}
	}
	if g := s.FindMatcher(phrasalVerbGroup).First(); g.Length() > 0 {
		title, items := parseGroup(g)
		entry.PhrasalVerb = &camdict.PhrasalVerbGroup{Title: title, Items: items}
	}

	return entry
}

func parseSense(s *goquery.Selection) camdict.Sense {
	sense := camdict.Sense{
		GuideWord:        joinText(s.FindMatcher(guideWord).Nodes, " "),
		DefinitionBlocks: []camdict.DefinitionBlock{},
		PhraseBlocks:     []camdict.PhraseBlock{},
		MoreExamples:     []string{},
	}
	if h := s.FindMatcher(senseHeader).Nodes; len(h) > 0 {
		sense.Header = leadingText(h[0], senseHeaderParts)
	}

	s.FindMatcher(senseBody).ChildrenMatcher(defBlock).Each(func(_ int, sel *goquery.Selection) {
		sense.DefinitionBlocks = append(sense.DefinitionBlocks, parseDefinitionBlock(sel))
	})

	s.FindMatcher(phraseBlock).Each(func(_ int, sel *goquery.Selection) {
		pb := camdict.PhraseBlock{
			Title:            concatText(sel.FindMatcher(phraseTitle).Nodes),
			DefinitionBlocks: []camdict.DefinitionBlock{},
		}
		sel.FindMatcher(defBlock).Each(func(_ int, b *goquery.Selection) {
			pb.DefinitionBlocks = append(pb.DefinitionBlocks, parseDefinitionBlock(b))
		})
		sense.PhraseBlocks = append(sense.PhraseBlocks, pb)
	})

	s.FindMatcher(moreExamples).Each(func(_ int, sel *goquery.Selection) {
		sense.MoreExamples = append(sense.MoreExamples, concatText(sel.Nodes))
	})

	return sense
}

// parseDefinitionBlock is shared by blocks directly under a sense and blocks
// nested in a phrase block.
func parseDefinitionBlock(s *goquery.Selection) camdict.DefinitionBlock {
	block := camdict.DefinitionBlock{
		Grammar:     concatText(definitionGrammar(s).Nodes),
		Definition:  concatText(s.FindMatcher(definition).Nodes),
		Translation: firstText(s.FindMatcher(defTranslation).Nodes),
		Examples:    []camdict.Example{},
	}

	s.FindMatcher(example).Each(func(_ int, sel *goquery.Selection) {
		block.Examples = append(block.Examples, camdict.Example{
			Text:        concatText(sel.FindMatcher(exampleText).Nodes),
			Translation: firstText(sel.FindMatcher(translation).Nodes),
		})
	})

	return block
}

// definitionGrammar skips grammar labels that belong to examples.
func definitionGrammar(s *goquery.Selection) *goquery.Selection {
	return s.FindMatcher(grammar).FilterFunction(func(_ int, g *goquery.Selection) bool {
		return g.ParentsUntilSelection(s).FilterMatcher(example).Length() == 0
	})
}

func parseGroup(s *goquery.Selection) (*string, []string) {
	items := []string{}
	s.FindMatcher(groupItem).Each(func(_ int, sel *goquery.Selection) {
		items = append(items, concatText(sel.Nodes))
	})
	return firstText(s.FindMatcher(groupTitle).Nodes), items
}

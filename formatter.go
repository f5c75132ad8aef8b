package camdict

import "strings"

// BrowseHeader introduces the list of similar words on an entry page.
const BrowseHeader = "瀏覽相似字詞:"

const indent = "  "

// FormatResult flattens a lookup result into human-readable lines.
// Field text is whitespace-normalized; empty fields produce no line.
func FormatResult(r *QueryResult) []string {
	if r == nil {
		return nil
	}
	switch {
	case r.Entry != nil:
		return formatEntryPage(r.Entry)
	case r.Suggestion != nil:
		return formatSuggestionPage(r.Suggestion)
	}
	return nil
}

func formatEntryPage(p *EntryPage) []string {
	var lines []string
	for _, e := range p.Entries {
		lines = append(lines, formatEntry(e)...)
	}

	for i, item := range p.Browse {
		if i == 0 {
			lines = append(lines, BrowseHeader)
		}
		lines = appendLine(lines, 1, item.Text)
	}
	return lines
}

func formatEntry(e Entry) []string {
	title := clean(e.Title)
	if e.PartOfSpeech != nil {
		if pos := clean(*e.PartOfSpeech); pos != "" {
			title = join(title, "("+pos+")")
		}
	}

	var lines []string
	lines = appendLine(lines, 0, title)
	lines = appendPrefixed(lines, 0, "uk-pron: ", e.UKPronunciation)
	lines = appendPrefixed(lines, 0, "us-pron: ", e.USPronunciation)

	for _, s := range e.Senses {
		lines = appendLine(lines, 1, join(clean(s.Header), clean(s.GuideWord)))
		for _, b := range s.DefinitionBlocks {
			lines = appendDefinitionBlock(lines, 1, b)
		}
		for _, pb := range s.PhraseBlocks {
			lines = appendLine(lines, 1, pb.Title)
			for _, b := range pb.DefinitionBlocks {
				lines = appendDefinitionBlock(lines, 2, b)
			}
		}
		if len(s.MoreExamples) > 0 {
			lines = append(lines, indent+"more examples:")
			for _, ex := range s.MoreExamples {
				lines = appendLine(lines, 2, ex)
			}
		}
	}

	if e.Idiom != nil {
		lines = appendGroup(lines, e.Idiom.Title, e.Idiom.Items)
	}
	if e.PhrasalVerb != nil {
		lines = appendGroup(lines, e.PhrasalVerb.Title, e.PhrasalVerb.Items)
	}
	return lines
}

func appendDefinitionBlock(lines []string, depth int, b DefinitionBlock) []string {
	lines = appendPrefixed(lines, depth, "definition: ", join(clean(b.Grammar), clean(b.Definition)))
	if b.Translation != nil {
		lines = appendLine(lines, depth+1, *b.Translation)
	}
	for _, ex := range b.Examples {
		lines = appendLine(lines, depth+1, ex.Text)
		if ex.Translation != nil {
			lines = appendLine(lines, depth+2, *ex.Translation)
		}
	}
	return lines
}

func appendGroup(lines []string, title *string, items []string) []string {
	if title != nil {
		lines = appendLine(lines, 1, *title)
	}
	for _, item := range items {
		lines = appendLine(lines, 2, item)
	}
	return lines
}

func formatSuggestionPage(p *SuggestionPage) []string {
	var lines []string
	lines = appendLine(lines, 0, p.Title)
	for _, d := range p.Description {
		lines = appendLine(lines, 0, d)
	}
	for _, r := range p.Recommendations {
		lines = appendLine(lines, 1, r.Word)
		if r.Link != nil {
			if link := clean(*r.Link); link != "" {
				lines = appendLine(lines, 2, "("+link+")")
			}
		}
	}
	return lines
}

// appendLine appends text at the given depth, skipping blank text.
func appendLine(lines []string, depth int, text string) []string {
	text = clean(text)
	if text == "" {
		return lines
	}
	return append(lines, strings.Repeat(indent, depth)+text)
}

func appendPrefixed(lines []string, depth int, prefix, text string) []string {
	text = clean(text)
	if text == "" {
		return lines
	}
	return appendLine(lines, depth, prefix+text)
}

// clean collapses runs of whitespace and trims the ends.
func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// join joins the non-empty parts with a single space.
func join(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

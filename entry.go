package camdict

// EntryPage is the structured content of a dictionary entry page.
type EntryPage struct {
	Entries []Entry      `json:"entries"`
	Browse  []BrowseItem `json:"browse"`
}

// Entry is one part-of-speech block for the queried word.
type Entry struct {
	Title           string            `json:"title"`
	PartOfSpeech    *string           `json:"partOfSpeech,omitempty"`
	UKPronunciation string            `json:"ukPronunciation"`
	USPronunciation string            `json:"usPronunciation"`
	Senses          []Sense           `json:"senses"`
	Idiom           *IdiomGroup       `json:"idiom,omitempty"`
	PhrasalVerb     *PhrasalVerbGroup `json:"phrasalVerb,omitempty"`
}

// Sense is one distinct meaning within an entry.
type Sense struct {
	Header           string            `json:"header"`
	GuideWord        string            `json:"guideWord"`
	DefinitionBlocks []DefinitionBlock `json:"definitionBlocks"`
	PhraseBlocks     []PhraseBlock     `json:"phraseBlocks"`
	MoreExamples     []string          `json:"moreExamples"`
}

// DefinitionBlock is one gloss within a sense or a phrase block.
type DefinitionBlock struct {
	Grammar     string    `json:"grammar"`
	Definition  string    `json:"definition"`
	Translation *string   `json:"translation,omitempty"`
	Examples    []Example `json:"examples"`
}

// Example is a usage example, optionally translated.
type Example struct {
	Text        string  `json:"text"`
	Translation *string `json:"translation,omitempty"`
}

// PhraseBlock is a fixed multi-word phrase nested under a sense.
type PhraseBlock struct {
	Title            string            `json:"title"`
	DefinitionBlocks []DefinitionBlock `json:"definitionBlocks"`
}

// IdiomGroup lists the idioms attached to an entry.
type IdiomGroup struct {
	Title *string  `json:"title,omitempty"`
	Items []string `json:"items"`
}

// PhrasalVerbGroup lists the phrasal verbs attached to an entry.
type PhrasalVerbGroup struct {
	Title *string  `json:"title,omitempty"`
	Items []string `json:"items"`
}

// BrowseItem is a neighboring word shown alongside the entry.
type BrowseItem struct {
	Text string `json:"text"`
}

// EntryParser extracts entries from the HTML of a dictionary entry page.
type EntryParser interface {
	// ParseEntry walks the page and returns every entry found.
	// Missing markup degrades to empty fields and is never an error.
	ParseEntry(html string) (*EntryPage, error)
}

package goquery

import "github.com/andybalholm/cascadia"

// Entry page markup.
var (
	entryBody       = cascadia.MustCompile(".entry-body__el")
	entryTitle      = cascadia.MustCompile(".di-title")
	partOfSpeech    = cascadia.MustCompile(".posgram .pos")
	ukPronunciation = cascadia.MustCompile(".uk.dpron-i .pron")
	usPronunciation = cascadia.MustCompile(".us.dpron-i .pron")

	sense        = cascadia.MustCompile(".dsense")
	senseHeader  = cascadia.MustCompile(".dsense_h")
	guideWord    = cascadia.MustCompile(".dsense_gw")
	senseBody    = cascadia.MustCompile(".sense-body")
	phraseBlock  = cascadia.MustCompile(".phrase-block")
	phraseTitle  = cascadia.MustCompile(".phrase-title")
	moreExamples = cascadia.MustCompile(".daccord li")

	defBlock       = cascadia.MustCompile(".def-block")
	grammar        = cascadia.MustCompile(".gram")
	definition     = cascadia.MustCompile(".def")
	defTranslation = cascadia.MustCompile(".def-body > .trans")
	example        = cascadia.MustCompile(".examp")
	exampleText    = cascadia.MustCompile(".eg")
	translation    = cascadia.MustCompile(".trans")

	idiomGroup       = cascadia.MustCompile(`[class*="idiom"]`)
	phrasalVerbGroup = cascadia.MustCompile(`[class*="phrasal_verb"]`)
	groupTitle       = cascadia.MustCompile(".xref-title")
	groupItem        = cascadia.MustCompile(".item")

	browseItem = cascadia.MustCompile(".dbrowse li")
)

// Spellcheck page markup.
var (
	suggestionContainer = cascadia.MustCompile("#page-content .hfl-s")
	suggestionHeading   = cascadia.MustCompile("h1")
	suggestionParagraph = cascadia.MustCompile("p")
	suggestionItem      = cascadia.MustCompile("ul li")
	suggestionLabel     = cascadia.MustCompile(".base")
	anchor              = cascadia.MustCompile("a")
)

// senseHeaderParts is how many leading children of a sense header make up
// its text.
const senseHeaderParts = 2

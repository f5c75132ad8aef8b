package camdict_test

import (
	"testing"

	"github.com/is3ka1/camdict"
	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestFormatResult(t *testing.T) {
	t.Parallel()

	t.Run("formats entry page", func(t *testing.T) {
		t.Parallel()

		result := &camdict.QueryResult{
			Category: camdict.CategoryEntry,
			Entry: &camdict.EntryPage{
				Entries: []camdict.Entry{{
					Title:           "run",
					PartOfSpeech:    ptr("verb"),
					UKPronunciation: "rʌn",
					USPronunciation: " rʌn\n",
					Senses: []camdict.Sense{{
						Header:    "run verb",
						GuideWord: "(GO QUICKLY)",
						DefinitionBlocks: []camdict.DefinitionBlock{{
							Grammar:     "[ I ]",
							Definition:  "to go faster than walk",
							Translation: ptr("跑"),
							Examples: []camdict.Example{
								{Text: "I run every day.", Translation: ptr("我每天跑步。")},
								{Text: "Run!"},
							},
						}},
						PhraseBlocks: []camdict.PhraseBlock{{
							Title: "run for it",
							DefinitionBlocks: []camdict.DefinitionBlock{{
								Definition: "to escape",
							}},
						}},
						MoreExamples: []string{"She ran off."},
					}},
					Idiom: &camdict.IdiomGroup{
						Title: ptr("Idioms"),
						Items: []string{"run wild"},
					},
					PhrasalVerb: &camdict.PhrasalVerbGroup{
						Items: []string{"run into"},
					},
				}},
				Browse: []camdict.BrowseItem{{Text: "rumpus"}, {Text: "run-down"}},
			},
		}

		lines := camdict.FormatResult(result)

		assert.Equal(t, []string{
			"run (verb)",
			"uk-pron: rʌn",
			"us-pron: rʌn",
			"  run verb (GO QUICKLY)",
			"  definition: [ I ] to go faster than walk",
			"    跑",
			"    I run every day.",
			"      我每天跑步。",
			"    Run!",
			"  run for it",
			"    definition: to escape",
			"  more examples:",
			"    She ran off.",
			"  Idioms",
			"    run wild",
			"    run into",
			"瀏覽相似字詞:",
			"  rumpus",
			"  run-down",
		}, lines)
	})

	t.Run("skips empty pronunciations and browse header", func(t *testing.T) {
		t.Parallel()

		result := &camdict.QueryResult{
			Category: camdict.CategoryEntry,
			Entry: &camdict.EntryPage{
				Entries: []camdict.Entry{{Title: "de facto"}},
			},
		}

		lines := camdict.FormatResult(result)

		assert.Equal(t, []string{"de facto"}, lines)
	})

	t.Run("formats suggestion page", func(t *testing.T) {
		t.Parallel()

		result := &camdict.QueryResult{
			Category: camdict.CategorySuggestion,
			Suggestion: &camdict.SuggestionPage{
				Title:       "Did you mean?",
				Description: []string{"We have no entry for runn."},
				Recommendations: []camdict.Recommendation{
					{Word: "run", Link: ptr("/zht/詞典/英語-漢語-繁體/run")},
					{Word: "rung"},
				},
			},
		}

		lines := camdict.FormatResult(result)

		assert.Equal(t, []string{
			"Did you mean?",
			"We have no entry for runn.",
			"  run",
			"    (/zht/詞典/英語-漢語-繁體/run)",
			"  rung",
		}, lines)
	})

	t.Run("returns nil for nil result", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, camdict.FormatResult(nil))
	})
}

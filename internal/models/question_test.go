package models

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestPublicViewVocabularyPairingNotRecoverable(t *testing.T) {
	key := map[string]string{
		"bow":       "front of the ship",
		"stern":     "back of the ship",
		"port":      "left side facing forward",
		"starboard": "right side facing forward",
	}
	q := &Question{
		ID:             13,
		Module:         ModuleVocabulary,
		Type:           QuestionVocabularyMatch,
		QuestionText:   "Match each nautical term with its meaning.",
		CorrectMatches: datatypes.NewJSONType(key),
		Points:         4,
	}

	view := q.PublicView()

	assert.ElementsMatch(t, []string{"bow", "port", "starboard", "stern"}, view.Terms)
	assert.Len(t, view.Definitions, len(key))
	assert.True(t, sort.StringsAreSorted(view.Terms))
	assert.True(t, sort.StringsAreSorted(view.Definitions))

	// With both slices sorted independently, lining them up index by index
	// must not reproduce the answer key.
	paired := 0
	for i, term := range view.Terms {
		if key[term] == view.Definitions[i] {
			paired++
		}
	}
	assert.NotEqual(t, len(key), paired)
}

func TestPublicViewStripsAnswerFields(t *testing.T) {
	answer := "Deck 12"
	q := &Question{
		ID:            3,
		Module:        ModuleListening,
		Type:          QuestionMultipleChoice,
		QuestionText:  "Where is the spa located?",
		Options:       datatypes.JSONSlice[string]{"Deck 10", "Deck 11", "Deck 12", "Deck 14"},
		CorrectAnswer: &answer,
		Points:        4,
	}

	view := q.PublicView()

	assert.Equal(t, q.ID, view.ID)
	assert.Equal(t, []string{"Deck 10", "Deck 11", "Deck 12", "Deck 14"}, view.Options)
	assert.Empty(t, view.Terms)
	assert.Empty(t, view.Definitions)
}

package questionbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
)

func TestBankLoads(t *testing.T) {
	bank := New()
	require.NoError(t, bank.Load())

	questions, err := bank.Questions()
	require.NoError(t, err)
	assert.Len(t, questions, models.QuestionCount)
}

func TestBankModuleTotals(t *testing.T) {
	bank := New()
	total := 0
	for _, module := range models.AllModules {
		questions, err := bank.ByModule(module)
		require.NoError(t, err)

		points := 0
		for _, q := range questions {
			points += q.Points
		}
		assert.Equal(t, models.ModuleMaxPoints[module], points, "module %s", module)
		total += points
	}
	assert.Equal(t, models.TotalMaxScore, total)
}

func TestBankSafetyQuestions(t *testing.T) {
	bank := New()
	questions, err := bank.Questions()
	require.NoError(t, err)

	var safetyIDs []uint
	for _, q := range questions {
		if q.IsSafetyRelated {
			safetyIDs = append(safetyIDs, q.ID)
		}
	}
	assert.Equal(t, []uint{4, 8, 16, 20}, safetyIDs)
}

func TestBankGet(t *testing.T) {
	bank := New()

	q, err := bank.Get(1)
	require.NoError(t, err)
	assert.Equal(t, models.ModuleListening, q.Module)

	_, err = bank.Get(99)
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestBankVocabularyPairs(t *testing.T) {
	bank := New()
	questions, err := bank.ByModule(models.ModuleVocabulary)
	require.NoError(t, err)
	require.Len(t, questions, 4)

	for _, q := range questions {
		assert.Len(t, q.Matches(), 4, "question %d", q.ID)
	}
}

func TestBankSpeakingQuestion(t *testing.T) {
	bank := New()
	q, err := bank.Get(21)
	require.NoError(t, err)

	assert.Equal(t, models.ModuleSpeaking, q.Module)
	assert.Equal(t, models.QuestionSpeaking, q.Type)
	assert.Equal(t, 20, q.Points)
	assert.NotEmpty(t, q.ExpectedKeywords)
	assert.Positive(t, q.MinDurationSeconds)
}

func TestValidateRejectsBrokenBanks(t *testing.T) {
	base := definitions()

	t.Run("wrong count", func(t *testing.T) {
		err := validate(base[:20])
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("duplicate id", func(t *testing.T) {
		broken := definitions()
		broken[1].ID = broken[0].ID
		var cfgErr *ConfigError
		require.ErrorAs(t, validate(broken), &cfgErr)
	})

	t.Run("answer key not in options", func(t *testing.T) {
		broken := definitions()
		bad := "not an option"
		broken[0].CorrectAnswer = &bad
		var cfgErr *ConfigError
		err := validate(broken)
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, broken[0].ID, cfgErr.QuestionID)
	})

	t.Run("module points drift", func(t *testing.T) {
		broken := definitions()
		broken[0].Points = 5
		var cfgErr *ConfigError
		require.ErrorAs(t, validate(broken), &cfgErr)
	})
}

// The bank and the scoring engine agree on answer keys: every multiple
// choice answer is one of its options, already covered by validate, and
// every question is scorable by a known strategy type.
func TestBankQuestionTypes(t *testing.T) {
	bank := New()
	questions, err := bank.Questions()
	require.NoError(t, err)

	known := map[models.QuestionType]bool{
		models.QuestionMultipleChoice:  true,
		models.QuestionFillBlank:       true,
		models.QuestionVocabularyMatch: true,
		models.QuestionSpeaking:        true,
	}
	for _, q := range questions {
		assert.True(t, known[q.Type], "question %d has unknown type %s", q.ID, q.Type)
	}
}

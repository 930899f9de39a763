package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
)

func strPtr(s string) *string { return &s }

func mcQuestion(points int, correct string) *models.Question {
	return &models.Question{
		ID:            1,
		Module:        models.ModuleListening,
		Type:          models.QuestionMultipleChoice,
		QuestionText:  "What time is the dinner reservation?",
		Options:       datatypes.JSONSlice[string]{"6 PM", "7 PM", "8 PM", "9 PM"},
		CorrectAnswer: strPtr(correct),
		Points:        points,
	}
}

func fillBlankQuestion(points int, correct string) *models.Question {
	return &models.Question{
		ID:            5,
		Module:        models.ModuleTimeNumbers,
		Type:          models.QuestionFillBlank,
		QuestionText:  "Write the time you hear.",
		CorrectAnswer: strPtr(correct),
		Points:        points,
	}
}

func vocabQuestion(points int, matches map[string]string) *models.Question {
	return &models.Question{
		ID:             13,
		Module:         models.ModuleVocabulary,
		Type:           models.QuestionVocabularyMatch,
		QuestionText:   "Match each term to its definition.",
		CorrectMatches: datatypes.NewJSONType(matches),
		Points:         points,
	}
}

func TestEngineScoreMultipleChoice(t *testing.T) {
	engine := NewEngine()
	q := mcQuestion(4, "7 PM")

	tests := []struct {
		name      string
		answer    string
		correct   bool
		points    int
		feedback  string
	}{
		{"exact match", "7 PM", true, 4, "Correct! Well done."},
		{"case insensitive", "7 pm", true, 4, "Correct! Well done."},
		{"surrounding whitespace", "  7 PM  ", true, 4, "Correct! Well done."},
		{"wrong option", "8 PM", false, 0, "Incorrect. The correct answer is: 7 PM"},
		{"empty answer", "", false, 0, "Incorrect. The correct answer is: 7 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Score(q, tt.answer)
			require.NoError(t, err)
			assert.Equal(t, tt.correct, result.IsCorrect)
			assert.Equal(t, tt.points, result.PointsEarned)
			assert.Equal(t, 4, result.PointsPossible)
			assert.Equal(t, tt.feedback, result.Feedback)
		})
	}
}

func TestEngineScoreFillBlank(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name    string
		key     string
		answer  string
		correct bool
	}{
		{"exact", "7:00", "7:00", true},
		{"canonical time equivalence", "7:00", "7", true},
		{"meridiem stripped", "7:00", "7:00 AM", true},
		{"leading zero stripped", "7:00", "07:00", true},
		{"plain number", "8", "8", true},
		{"digit fallback with separators", "9173", "9,173", true},
		{"wrong number", "9173", "9137", false},
		{"wrong time", "7:00", "7:30", false},
		{"empty answer", "7:00", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Score(fillBlankQuestion(4, tt.key), tt.answer)
			require.NoError(t, err)
			assert.Equal(t, tt.correct, result.IsCorrect, "key=%q answer=%q", tt.key, tt.answer)
			if tt.correct {
				assert.Equal(t, 4, result.PointsEarned)
			} else {
				assert.Equal(t, 0, result.PointsEarned)
			}
		})
	}
}

func TestEngineScoreVocabularyMatch(t *testing.T) {
	engine := NewEngine()
	q := vocabQuestion(4, map[string]string{
		"muster station": "emergency assembly point",
		"port":           "left side of the ship",
		"starboard":      "right side of the ship",
		"galley":         "ship kitchen",
	})

	tests := []struct {
		name    string
		answer  string
		correct bool
		points  int
	}{
		{
			"all four matched",
			`{"muster station":"emergency assembly point","port":"left side of the ship","starboard":"right side of the ship","galley":"ship kitchen"}`,
			true, 4,
		},
		{
			"three of four",
			`{"muster station":"emergency assembly point","port":"left side of the ship","starboard":"right side of the ship","galley":"ship engine room"}`,
			false, 3,
		},
		{
			"one of four",
			`{"galley":"ship kitchen"}`,
			false, 1,
		},
		{
			"case insensitive definitions",
			`{"muster station":"EMERGENCY ASSEMBLY POINT","port":"Left Side of the Ship","starboard":"right side of the ship","galley":"ship kitchen"}`,
			true, 4,
		},
		{"none matched", `{"port":"ship kitchen"}`, false, 0},
		{"malformed json scores zero", `port=left side`, false, 0},
		{"empty answer scores zero", ``, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Score(q, tt.answer)
			require.NoError(t, err)
			assert.Equal(t, tt.correct, result.IsCorrect)
			assert.Equal(t, tt.points, result.PointsEarned)
		})
	}
}

func TestEngineScoreVocabularyPartialCreditFeedback(t *testing.T) {
	engine := NewEngine()
	q := vocabQuestion(4, map[string]string{
		"bow":   "front of the ship",
		"stern": "back of the ship",
		"deck":  "floor of the ship",
		"cabin": "room on the ship",
	})

	result, err := engine.Score(q, `{"bow":"front of the ship","stern":"back of the ship"}`)
	require.NoError(t, err)
	assert.False(t, result.IsCorrect)
	assert.Equal(t, 2, result.PointsEarned)
	assert.Equal(t, "Partial credit! You earned 2/4 points.", result.Feedback)
}

func TestEngineScoreErrors(t *testing.T) {
	engine := NewEngine()

	t.Run("nil question", func(t *testing.T) {
		_, err := engine.Score(nil, "anything")
		assert.ErrorIs(t, err, ErrNilQuestion)
	})

	t.Run("unsupported type", func(t *testing.T) {
		q := mcQuestion(4, "7 PM")
		q.Type = "essay"
		_, err := engine.Score(q, "anything")
		assert.ErrorIs(t, err, ErrUnsupportedQuestionType)
	})

	t.Run("missing answer key scores zero", func(t *testing.T) {
		q := mcQuestion(4, "7 PM")
		q.CorrectAnswer = nil
		result, err := engine.Score(q, "7 PM")
		require.NoError(t, err)
		assert.False(t, result.IsCorrect)
		assert.Equal(t, 0, result.PointsEarned)
	})
}

func TestEngineScorePropagatesSafetyFlag(t *testing.T) {
	engine := NewEngine()
	q := mcQuestion(4, "Muster Station B")
	q.IsSafetyRelated = true

	result, err := engine.Score(q, "Muster Station B")
	require.NoError(t, err)
	assert.True(t, result.IsSafetyRelated)
	assert.Equal(t, q.ID, result.QuestionID)
	assert.Equal(t, q.Module, result.Module)
}

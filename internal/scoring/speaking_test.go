package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
)

func speakingQuestion() *models.Question {
	return &models.Question{
		ID:           21,
		Module:       models.ModuleSpeaking,
		Type:         models.QuestionSpeaking,
		QuestionText: "A guest says their cabin air conditioning is too cold. Respond to the guest.",
		ExpectedKeywords: datatypes.JSONSlice[string]{
			"apologize", "sorry", "send someone", "fix", "adjust", "maintenance", "comfortable",
		},
		MinDurationSeconds: 10,
		Points:             20,
	}
}

func TestParseRecording(t *testing.T) {
	tests := []struct {
		name       string
		answer     string
		transcript string
		ok         bool
	}{
		{"with transcript", "recorded_15s|I am so sorry about that", "I am so sorry about that", true},
		{"without transcript", "recorded_15s", "", true},
		{"no trailing s", "recorded_15|hello", "hello", true},
		{"surrounding whitespace", "  recorded_8s|hello  ", "hello", true},
		{"empty transcript after pipe", "recorded_8s|", "", true},
		{"not a recording", "I am so sorry", "", false},
		{"empty answer", "", "", false},
		{"missing duration", "recorded_s|hello", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transcript, ok := parseRecording(tt.answer)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.transcript, transcript)
		})
	}
}

func TestSpeakingScoreBuckets(t *testing.T) {
	engine := NewEngine()
	q := speakingQuestion()

	tests := []struct {
		name    string
		answer  string
		correct bool
		points  int
	}{
		{
			// 5 of 7 keywords, ratio 0.71
			"strong response passes",
			"recorded_25s|I apologize for the inconvenience, I am sorry. I will send someone to adjust the temperature so you are comfortable.",
			true, 20,
		},
		{
			// 3 of 7 keywords, ratio 0.43
			"good response gets 70 percent",
			"recorded_20s|Sorry about that, we will fix it and adjust the setting.",
			false, 14,
		},
		{
			// 2 of 7 keywords, ratio 0.29
			"fair response gets half",
			"recorded_18s|Sorry, I will call maintenance.",
			false, 10,
		},
		{
			// "send someone" counts with its words apart, plus maintenance
			"split phrase keyword still counts",
			"recorded_12s|Someone from maintenance will send word shortly.",
			false, 10,
		},
		{
			// 1 of 7 keywords, ratio 0.14
			"weak response gets 30 percent",
			"recorded_12s|Sorry about the problem.",
			false, 6,
		},
		{
			// 0 of 7 keywords
			"off topic response gets floor",
			"recorded_12s|The weather is nice today.",
			false, 4,
		},
		{
			"no transcript gets floor",
			"recorded_12s",
			false, 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Score(q, tt.answer)
			require.NoError(t, err)
			assert.Equal(t, tt.correct, result.IsCorrect)
			assert.Equal(t, tt.points, result.PointsEarned)
			assert.Equal(t, 20, result.PointsPossible)
		})
	}
}

func TestSpeakingScoreNonRecordingAnswer(t *testing.T) {
	engine := NewEngine()
	result, err := engine.Score(speakingQuestion(), "just typed text")
	require.NoError(t, err)
	assert.False(t, result.IsCorrect)
	assert.Equal(t, 0, result.PointsEarned)
	assert.Equal(t, "Incorrect. No response was recorded.", result.Feedback)
}

func TestKeywordMatched(t *testing.T) {
	tests := []struct {
		transcript string
		keyword    string
		want       bool
	}{
		{"i apologize for that", "apologize", true},
		{"i apologized immediately", "apologize", true},
		{"i am apologizing", "apologize", true},
		{"we will send someone right away", "send someone", true},
		{"someone from maintenance will send word", "send someone", true},
		{"we will send a technician", "send someone", false},
		{"we can fix it", "fix", true},
		{"a fixture on the wall", "fix", true},
		{"that must be uncomfortable", "comfortable", true},
		{"so sorry", "sorry", true},
		{"", "sorry", false},
		{"anything", "", false},
	}

	for _, tt := range tests {
		got := keywordMatched(tt.transcript, tt.keyword)
		if got != tt.want {
			t.Errorf("keywordMatched(%q, %q) = %v, want %v", tt.transcript, tt.keyword, got, tt.want)
		}
	}
}

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
)

// result builds a ScoreResult for aggregation tests without going through
// the engine.
func result(id uint, module models.ModuleType, earned, possible int, correct, safety bool) ScoreResult {
	return ScoreResult{
		QuestionID:      id,
		Module:          module,
		IsCorrect:       correct,
		PointsEarned:    earned,
		PointsPossible:  possible,
		IsSafetyRelated: safety,
	}
}

// fullAttempt builds the 21 results of a complete attempt. Each module
// contributes four 4-point questions except speaking, which is a single
// 20-point scenario. The last question of the first four modules is
// safety-related; perModuleCorrect counts only the non-safety questions
// (up to 3 for those modules, 4 for reading) and safetyCorrect says how
// many of the 4 safety questions were answered correctly, assigned in
// module order.
func fullAttempt(perModuleCorrect map[models.ModuleType]int, speakingPoints int, safetyCorrect int) []ScoreResult {
	var results []ScoreResult
	var id uint = 1
	safetySeen := 0
	for _, module := range []models.ModuleType{
		models.ModuleListening,
		models.ModuleTimeNumbers,
		models.ModuleGrammar,
		models.ModuleVocabulary,
		models.ModuleReading,
	} {
		correct := perModuleCorrect[module]
		for i := 0; i < 4; i++ {
			safety := i == 3 && safetySeen < 4
			var isCorrect bool
			if safety {
				safetySeen++
				isCorrect = safetyCorrect > 0
				safetyCorrect--
			} else {
				isCorrect = i < correct
			}
			earned := 0
			if isCorrect {
				earned = 4
			}
			results = append(results, result(id, module, earned, 4, isCorrect, safety))
			id++
		}
	}
	results = append(results, result(21, models.ModuleSpeaking, speakingPoints, 20, speakingPoints == 20, false))
	return results
}

// allCorrect answers every non-safety question correctly: 3 per module
// for the four modules carrying a safety question, 4 for reading.
func allCorrect() map[models.ModuleType]int {
	return map[models.ModuleType]int{
		models.ModuleListening:   3,
		models.ModuleTimeNumbers: 3,
		models.ModuleGrammar:     3,
		models.ModuleVocabulary:  3,
		models.ModuleReading:     4,
	}
}

func TestFinalizeAllCorrect(t *testing.T) {
	agg := NewAggregator(DefaultThresholds())
	out := agg.Finalize(fullAttempt(allCorrect(), 20, 4))

	assert.Equal(t, 100, out.TotalScore)
	assert.Equal(t, 100, out.MaxScore)
	assert.Equal(t, 4, out.SafetyQuestionsCorrect)
	assert.Equal(t, 4, out.SafetyQuestionsTotal)
	assert.InDelta(t, 1.0, out.SafetyPassRate, 1e-9)
	assert.True(t, out.PassTotal)
	assert.True(t, out.PassSafety)
	assert.True(t, out.PassSpeaking)
	assert.True(t, out.OverallPass)

	for _, m := range models.AllModules {
		assert.Equal(t, models.ModuleMaxPoints[m], out.ModuleScores[m], "module %s", m)
	}
}

func TestFinalizeTotalGate(t *testing.T) {
	agg := NewAggregator(DefaultThresholds())

	// 1 non-safety question correct per module plus all safety answers
	// and full speaking: 20 + 16 + 20 = 56, below 70.
	perModule := map[models.ModuleType]int{
		models.ModuleListening:   1,
		models.ModuleTimeNumbers: 1,
		models.ModuleGrammar:     1,
		models.ModuleVocabulary:  1,
		models.ModuleReading:     1,
	}
	out := agg.Finalize(fullAttempt(perModule, 20, 4))

	assert.Equal(t, 56, out.TotalScore)
	assert.False(t, out.PassTotal)
	assert.True(t, out.PassSafety)
	assert.True(t, out.PassSpeaking)
	assert.False(t, out.OverallPass, "total gate alone must fail the attempt")
}

func TestFinalizeSafetyGate(t *testing.T) {
	agg := NewAggregator(DefaultThresholds())

	// All answers correct except two safety questions: total stays high
	// but the safety rate drops to 0.5.
	out := agg.Finalize(fullAttempt(allCorrect(), 20, 2))

	assert.Equal(t, 92, out.TotalScore)
	assert.InDelta(t, 0.5, out.SafetyPassRate, 1e-9)
	assert.True(t, out.PassTotal)
	assert.False(t, out.PassSafety)
	assert.True(t, out.PassSpeaking)
	assert.False(t, out.OverallPass, "safety gate alone must fail the attempt")
}

func TestFinalizeSafetyBoundary(t *testing.T) {
	agg := NewAggregator(DefaultThresholds())

	// 3 of 4 safety correct is 0.75, strictly below the 0.8 threshold.
	out := agg.Finalize(fullAttempt(allCorrect(), 20, 3))
	assert.InDelta(t, 0.75, out.SafetyPassRate, 1e-9)
	assert.False(t, out.PassSafety)

	// 4 of 4 is 1.0, above threshold.
	out = agg.Finalize(fullAttempt(allCorrect(), 20, 4))
	assert.True(t, out.PassSafety)
}

func TestFinalizeSpeakingGate(t *testing.T) {
	agg := NewAggregator(DefaultThresholds())

	tests := []struct {
		name           string
		speakingPoints int
		passSpeaking   bool
	}{
		{"full speaking score", 20, true},
		{"exactly at minimum", 12, true},
		{"just below minimum", 11, false},
		{"floor score", 4, false},
		{"zero", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := agg.Finalize(fullAttempt(allCorrect(), tt.speakingPoints, 4))
			assert.Equal(t, tt.passSpeaking, out.PassSpeaking)
			assert.Equal(t, tt.passSpeaking, out.OverallPass)
			assert.Equal(t, tt.speakingPoints, out.ModuleScores[models.ModuleSpeaking])
		})
	}
}

func TestFinalizeTotalBoundary(t *testing.T) {
	agg := NewAggregator(DefaultThresholds())

	// 13 non-safety questions correct, all 4 safety correct, 14 speaking
	// points: 52 + 16 + 14 = 82.
	perModule := map[models.ModuleType]int{
		models.ModuleListening:   2,
		models.ModuleTimeNumbers: 2,
		models.ModuleGrammar:     2,
		models.ModuleVocabulary:  3,
		models.ModuleReading:     4,
	}
	out := agg.Finalize(fullAttempt(perModule, 14, 4))
	assert.Equal(t, 82, out.TotalScore)
	assert.True(t, out.PassTotal)

	// Exactly 70 passes: threshold is inclusive.
	agg70 := NewAggregator(Thresholds{TotalThreshold: 70, SafetyThreshold: 0.8, SpeakingMinPoints: 12})
	out = agg70.Finalize([]ScoreResult{result(1, models.ModuleListening, 70, 100, true, false)})
	assert.True(t, out.PassTotal)

	out = agg70.Finalize([]ScoreResult{result(1, models.ModuleListening, 69, 100, true, false)})
	assert.False(t, out.PassTotal)
}

func TestFinalizeEmptyResults(t *testing.T) {
	agg := NewAggregator(DefaultThresholds())
	out := agg.Finalize(nil)

	assert.Equal(t, 0, out.TotalScore)
	assert.Equal(t, 0, out.SafetyQuestionsTotal)
	assert.InDelta(t, 1.0, out.SafetyPassRate, 1e-9, "no safety questions passes the gate vacuously")
	assert.True(t, out.PassSafety)
	assert.False(t, out.PassTotal)
	assert.False(t, out.PassSpeaking)
	assert.False(t, out.OverallPass)

	for _, m := range models.AllModules {
		assert.Equal(t, 0, out.ModuleScores[m])
	}
}

func TestFinalizeCustomThresholds(t *testing.T) {
	agg := NewAggregator(Thresholds{TotalThreshold: 50, SafetyThreshold: 0.5, SpeakingMinPoints: 5})

	out := agg.Finalize(fullAttempt(map[models.ModuleType]int{
		models.ModuleListening:   2,
		models.ModuleTimeNumbers: 2,
		models.ModuleGrammar:     2,
		models.ModuleVocabulary:  2,
		models.ModuleReading:     2,
	}, 10, 2))

	assert.True(t, out.PassTotal)
	assert.True(t, out.PassSafety)
	assert.True(t, out.PassSpeaking)
	assert.True(t, out.OverallPass)
}

func TestFinalizeClampsModuleAndTotal(t *testing.T) {
	agg := NewAggregator(DefaultThresholds())

	// Ten 4-point listening results, as if the caller fed duplicates.
	var results []ScoreResult
	for i := uint(1); i <= 10; i++ {
		results = append(results, result(i, models.ModuleListening, 4, 4, true, false))
	}

	out := agg.Finalize(results)
	assert.Equal(t, models.ModuleMaxPoints[models.ModuleListening], out.ModuleScores[models.ModuleListening])
	assert.Equal(t, 16, out.TotalScore)

	// Every module overfilled: the total stays capped at 100.
	for _, m := range []models.ModuleType{
		models.ModuleTimeNumbers,
		models.ModuleGrammar,
		models.ModuleVocabulary,
		models.ModuleReading,
	} {
		for i := 0; i < 10; i++ {
			results = append(results, result(0, m, 4, 4, true, false))
		}
	}
	for i := 0; i < 3; i++ {
		results = append(results, result(21, models.ModuleSpeaking, 20, 20, true, false))
	}

	out = agg.Finalize(results)
	for _, m := range models.AllModules {
		assert.Equal(t, models.ModuleMaxPoints[m], out.ModuleScores[m], string(m))
	}
	assert.Equal(t, models.TotalMaxScore, out.TotalScore)
}

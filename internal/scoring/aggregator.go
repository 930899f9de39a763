package scoring

import (
	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
)

// Thresholds are the pass criteria applied when an attempt is finalized.
type Thresholds struct {
	// TotalThreshold is the minimum total score out of 100.
	TotalThreshold int
	// SafetyThreshold is the minimum fraction of safety-related questions
	// answered correctly.
	SafetyThreshold float64
	// SpeakingMinPoints is the minimum points earned on the speaking module.
	SpeakingMinPoints int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		TotalThreshold:    70,
		SafetyThreshold:   0.8,
		SpeakingMinPoints: 12,
	}
}

// AssessmentOutcome is the aggregate of all scored responses of one
// attempt, with the three pass gates evaluated.
type AssessmentOutcome struct {
	TotalScore   int                       `json:"total_score"`
	MaxScore     int                       `json:"max_score"`
	ModuleScores map[models.ModuleType]int `json:"module_scores"`

	SafetyQuestionsCorrect int     `json:"safety_questions_correct"`
	SafetyQuestionsTotal   int     `json:"safety_questions_total"`
	SafetyPassRate         float64 `json:"safety_pass_rate"`

	PassTotal    bool `json:"pass_total"`
	PassSafety   bool `json:"pass_safety"`
	PassSpeaking bool `json:"pass_speaking"`
	OverallPass  bool `json:"overall_pass"`
}

// Aggregator folds per-question results into a pass/fail outcome.
type Aggregator struct {
	thresholds Thresholds
}

func NewAggregator(t Thresholds) *Aggregator {
	return &Aggregator{thresholds: t}
}

func (a *Aggregator) Thresholds() Thresholds { return a.thresholds }

// Finalize computes the outcome for a complete set of scored responses.
// It is a pure fold over results: duplicates, completeness and ordering
// are the caller's responsibility. An attempt with no safety questions
// passes the safety gate vacuously.
func (a *Aggregator) Finalize(results []ScoreResult) AssessmentOutcome {
	out := AssessmentOutcome{
		MaxScore:     models.TotalMaxScore,
		ModuleScores: make(map[models.ModuleType]int, len(models.AllModules)),
	}
	for _, m := range models.AllModules {
		out.ModuleScores[m] = 0
	}

	for _, r := range results {
		out.ModuleScores[r.Module] += r.PointsEarned
		if r.IsSafetyRelated {
			out.SafetyQuestionsTotal++
			if r.IsCorrect {
				out.SafetyQuestionsCorrect++
			}
		}
	}

	// Module subtotals never exceed their budgets and the total never
	// exceeds 100, even for malformed result sets.
	for m, score := range out.ModuleScores {
		if max, ok := models.ModuleMaxPoints[m]; ok && score > max {
			out.ModuleScores[m] = max
		}
		out.TotalScore += out.ModuleScores[m]
	}
	if out.TotalScore > models.TotalMaxScore {
		out.TotalScore = models.TotalMaxScore
	}

	if out.SafetyQuestionsTotal > 0 {
		out.SafetyPassRate = float64(out.SafetyQuestionsCorrect) / float64(out.SafetyQuestionsTotal)
	} else {
		out.SafetyPassRate = 1.0
	}

	out.PassTotal = out.TotalScore >= a.thresholds.TotalThreshold
	out.PassSafety = out.SafetyPassRate >= a.thresholds.SafetyThreshold
	out.PassSpeaking = out.ModuleScores[models.ModuleSpeaking] >= a.thresholds.SpeakingMinPoints
	out.OverallPass = out.PassTotal && out.PassSafety && out.PassSpeaking

	return out
}

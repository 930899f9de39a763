package scoring

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
)

// ScoreResult is the outcome of scoring a single submitted answer. It is a
// plain data record with no side effects, suitable for direct JSON
// serialization in an HTTP response.
type ScoreResult struct {
	QuestionID      uint              `json:"question_id"`
	Module          models.ModuleType `json:"module"`
	IsCorrect       bool              `json:"is_correct"`
	PointsEarned    int               `json:"points_earned"`
	PointsPossible  int               `json:"points_possible"`
	Feedback        string            `json:"feedback"`
	IsSafetyRelated bool              `json:"is_safety_related"`
}

// strategy scores one answer against one question definition. correctValue
// is the human-readable answer key disclosed in "incorrect" feedback; an
// empty string suppresses the disclosure (speaking has no single correct
// string).
type strategy interface {
	score(q *models.Question, rawAnswer string) (correct bool, points int)
	correctValue(q *models.Question) string
}

// Engine dispatches an answer to the scoring strategy selected by the
// question's type. Engines are stateless and safe for concurrent use.
type Engine struct {
	strategies map[models.QuestionType]strategy
}

func NewEngine() *Engine {
	return &Engine{
		strategies: map[models.QuestionType]strategy{
			models.QuestionMultipleChoice:  multipleChoiceStrategy{},
			models.QuestionFillBlank:       fillBlankStrategy{},
			models.QuestionVocabularyMatch: vocabularyMatchStrategy{},
			models.QuestionSpeaking:        speakingStrategy{},
		},
	}
}

// Score evaluates rawAnswer against q. Malformed user input never produces
// an error; it degrades to a zero-point incorrect result with descriptive
// feedback. An error is returned only for broken question definitions,
// which indicate caller bugs rather than user mistakes.
func (e *Engine) Score(q *models.Question, rawAnswer string) (ScoreResult, error) {
	if q == nil {
		return ScoreResult{}, ErrNilQuestion
	}

	st, ok := e.strategies[q.Type]
	if !ok {
		return ScoreResult{}, fmt.Errorf("%w: %q", ErrUnsupportedQuestionType, q.Type)
	}

	correct, points := st.score(q, rawAnswer)
	if points < 0 {
		points = 0
	}
	if points > q.Points {
		points = q.Points
	}

	return ScoreResult{
		QuestionID:      q.ID,
		Module:          q.Module,
		IsCorrect:       correct,
		PointsEarned:    points,
		PointsPossible:  q.Points,
		Feedback:        feedbackFor(st, q, correct, points),
		IsSafetyRelated: q.IsSafetyRelated,
	}, nil
}

func feedbackFor(st strategy, q *models.Question, correct bool, points int) string {
	switch {
	case correct:
		return "Correct! Well done."
	case points > 0:
		return fmt.Sprintf("Partial credit! You earned %d/%d points.", points, q.Points)
	default:
		if value := st.correctValue(q); value != "" {
			return "Incorrect. The correct answer is: " + value
		}
		return "Incorrect. No response was recorded."
	}
}

// ===== MULTIPLE CHOICE =====

// multipleChoiceStrategy does exact matching of the selected option against
// the answer key, case- and whitespace-insensitive. No partial credit.
type multipleChoiceStrategy struct{}

func (multipleChoiceStrategy) score(q *models.Question, rawAnswer string) (bool, int) {
	if q.CorrectAnswer == nil {
		return false, 0
	}
	if foldAnswer(rawAnswer) == foldAnswer(*q.CorrectAnswer) {
		return true, q.Points
	}
	return false, 0
}

func (multipleChoiceStrategy) correctValue(q *models.Question) string {
	if q.CorrectAnswer == nil {
		return ""
	}
	return *q.CorrectAnswer
}

// ===== FILL IN BLANK (TIME & NUMBERS) =====

// fillBlankStrategy matches spoken-derived time/number answers in two
// stages: normalized comparison first ("07:00 AM" -> "7"), then a
// digit-only fallback that tolerates formatting noise while still rejecting
// wrong numbers. Binary scoring.
type fillBlankStrategy struct{}

func (fillBlankStrategy) score(q *models.Question, rawAnswer string) (bool, int) {
	if q.CorrectAnswer == nil {
		return false, 0
	}

	submitted := NormalizeTimeNumber(rawAnswer)
	expected := NormalizeTimeNumber(*q.CorrectAnswer)
	if submitted == expected {
		return true, q.Points
	}

	subDigits := digitsOnly(rawAnswer)
	expDigits := digitsOnly(*q.CorrectAnswer)
	if subDigits != "" && subDigits == expDigits {
		return true, q.Points
	}

	return false, 0
}

func (fillBlankStrategy) correctValue(q *models.Question) string {
	if q.CorrectAnswer == nil {
		return ""
	}
	return *q.CorrectAnswer
}

// ===== VOCABULARY MATCHING =====

// vocabularyMatchStrategy parses the submitted JSON term->definition object
// and awards floor(points * matched / total) partial credit. A parse
// failure is expected client noise, not a system error: it scores zero.
type vocabularyMatchStrategy struct{}

func (vocabularyMatchStrategy) score(q *models.Question, rawAnswer string) (bool, int) {
	key := q.Matches()
	if len(key) == 0 {
		return false, 0
	}

	var submitted map[string]string
	if err := json.Unmarshal([]byte(rawAnswer), &submitted); err != nil {
		return false, 0
	}

	matched := 0
	for term, definition := range key {
		if foldAnswer(submitted[term]) == foldAnswer(definition) {
			matched++
		}
	}

	points := q.Points * matched / len(key)
	return matched == len(key), points
}

func (vocabularyMatchStrategy) correctValue(q *models.Question) string {
	key := q.Matches()
	if len(key) == 0 {
		return ""
	}
	terms := make([]string, 0, len(key))
	for term := range key {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	pairs := make([]string, 0, len(terms))
	for _, term := range terms {
		pairs = append(pairs, term+" = "+key[term])
	}
	return strings.Join(pairs, ", ")
}

// foldAnswer trims and lower-cases for case/whitespace-insensitive
// comparison.
func foldAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

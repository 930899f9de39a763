package questionbank

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
)

// ErrUnknownQuestion is returned by Get for an id outside the bank.
var ErrUnknownQuestion = errors.New("unknown question id")

// ConfigError reports a structural defect in the question definitions.
// It surfaces at load time so a broken bank fails startup instead of
// silently mis-scoring attempts.
type ConfigError struct {
	QuestionID uint
	Reason     string
}

func (e *ConfigError) Error() string {
	if e.QuestionID != 0 {
		return fmt.Sprintf("question %d: %s", e.QuestionID, e.Reason)
	}
	return "question bank: " + e.Reason
}

// Bank is the in-memory catalog of assessment questions, keyed by id.
// Load validates the definitions once; all accessors share the result.
type Bank struct {
	once     sync.Once
	loadErr  error
	byID     map[uint]*models.Question
	ordered  []*models.Question
	byModule map[models.ModuleType][]*models.Question
}

func New() *Bank {
	return &Bank{}
}

// Load parses and validates the question definitions. It is idempotent
// and safe for concurrent use; subsequent calls return the first result.
func (b *Bank) Load() error {
	b.once.Do(func() {
		questions := definitions()
		if err := validate(questions); err != nil {
			b.loadErr = err
			return
		}
		b.byID = make(map[uint]*models.Question, len(questions))
		b.byModule = make(map[models.ModuleType][]*models.Question)
		b.ordered = make([]*models.Question, 0, len(questions))
		for i := range questions {
			q := &questions[i]
			b.byID[q.ID] = q
			b.byModule[q.Module] = append(b.byModule[q.Module], q)
			b.ordered = append(b.ordered, q)
		}
	})
	return b.loadErr
}

// Get returns the question with the given id.
func (b *Bank) Get(id uint) (*models.Question, error) {
	if err := b.Load(); err != nil {
		return nil, err
	}
	q, ok := b.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownQuestion, id)
	}
	return q, nil
}

// Questions returns all questions in id order.
func (b *Bank) Questions() ([]*models.Question, error) {
	if err := b.Load(); err != nil {
		return nil, err
	}
	return b.ordered, nil
}

// ByModule returns the questions of one module in id order.
func (b *Bank) ByModule(module models.ModuleType) ([]*models.Question, error) {
	if err := b.Load(); err != nil {
		return nil, err
	}
	return b.byModule[module], nil
}

func validate(questions []models.Question) error {
	if len(questions) != models.QuestionCount {
		return &ConfigError{Reason: fmt.Sprintf("expected %d questions, got %d", models.QuestionCount, len(questions))}
	}

	seen := make(map[uint]bool, len(questions))
	modulePoints := make(map[models.ModuleType]int)
	total := 0

	for i := range questions {
		q := &questions[i]
		if q.ID == 0 {
			return &ConfigError{Reason: fmt.Sprintf("question at index %d has no id", i)}
		}
		if seen[q.ID] {
			return &ConfigError{QuestionID: q.ID, Reason: "duplicate id"}
		}
		seen[q.ID] = true

		if q.Points <= 0 {
			return &ConfigError{QuestionID: q.ID, Reason: "points must be positive"}
		}
		if _, ok := models.ModuleMaxPoints[q.Module]; !ok {
			return &ConfigError{QuestionID: q.ID, Reason: fmt.Sprintf("unknown module %q", q.Module)}
		}
		if err := validateAnswerKey(q); err != nil {
			return err
		}

		modulePoints[q.Module] += q.Points
		total += q.Points
	}

	for id := uint(1); id <= models.QuestionCount; id++ {
		if !seen[id] {
			return &ConfigError{QuestionID: id, Reason: "missing from bank"}
		}
	}

	for module, want := range models.ModuleMaxPoints {
		if got := modulePoints[module]; got != want {
			return &ConfigError{Reason: fmt.Sprintf("module %s totals %d points, want %d", module, got, want)}
		}
	}
	if total != models.TotalMaxScore {
		return &ConfigError{Reason: fmt.Sprintf("bank totals %d points, want %d", total, models.TotalMaxScore)}
	}

	return nil
}

func validateAnswerKey(q *models.Question) error {
	switch q.Type {
	case models.QuestionMultipleChoice:
		if q.CorrectAnswer == nil || *q.CorrectAnswer == "" {
			return &ConfigError{QuestionID: q.ID, Reason: "multiple choice question has no answer key"}
		}
		if len(q.Options) < 2 {
			return &ConfigError{QuestionID: q.ID, Reason: "multiple choice question needs at least two options"}
		}
		found := false
		for _, opt := range q.Options {
			if opt == *q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return &ConfigError{QuestionID: q.ID, Reason: "answer key is not one of the options"}
		}
	case models.QuestionFillBlank:
		if q.CorrectAnswer == nil || *q.CorrectAnswer == "" {
			return &ConfigError{QuestionID: q.ID, Reason: "fill blank question has no answer key"}
		}
	case models.QuestionVocabularyMatch:
		if len(q.Matches()) != 4 {
			return &ConfigError{QuestionID: q.ID, Reason: "vocabulary question needs exactly four term pairs"}
		}
	case models.QuestionSpeaking:
		if len(q.ExpectedKeywords) == 0 {
			return &ConfigError{QuestionID: q.ID, Reason: "speaking question has no expected keywords"}
		}
	default:
		return &ConfigError{QuestionID: q.ID, Reason: fmt.Sprintf("unknown question type %q", q.Type)}
	}
	return nil
}

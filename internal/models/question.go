package models

import (
	"sort"

	"gorm.io/datatypes"
)

type ModuleType string

const (
	ModuleListening   ModuleType = "listening"
	ModuleTimeNumbers ModuleType = "time_numbers"
	ModuleGrammar     ModuleType = "grammar"
	ModuleVocabulary  ModuleType = "vocabulary"
	ModuleReading     ModuleType = "reading"
	ModuleSpeaking    ModuleType = "speaking"
)

// AllModules lists the six assessment modules in presentation order.
var AllModules = []ModuleType{
	ModuleListening,
	ModuleTimeNumbers,
	ModuleGrammar,
	ModuleVocabulary,
	ModuleReading,
	ModuleSpeaking,
}

// ModuleMaxPoints is the per-module point budget. The six budgets sum to
// TotalMaxScore; the aggregator clamps module subtotals against them.
var ModuleMaxPoints = map[ModuleType]int{
	ModuleListening:   16,
	ModuleTimeNumbers: 16,
	ModuleGrammar:     16,
	ModuleVocabulary:  16,
	ModuleReading:     16,
	ModuleSpeaking:    20,
}

const (
	TotalMaxScore = 100
	QuestionCount = 21
)

type QuestionType string

const (
	QuestionMultipleChoice  QuestionType = "multiple_choice"
	QuestionFillBlank       QuestionType = "fill_blank"
	QuestionVocabularyMatch QuestionType = "vocabulary_match"
	QuestionSpeaking        QuestionType = "speaking_response"
)

type DivisionType string

const (
	DivisionHotel  DivisionType = "hotel"
	DivisionMarine DivisionType = "marine"
	DivisionCasino DivisionType = "casino"
)

// Question is one immutable entry of the assessment question set. Exactly one
// of the type-specific field groups is populated (Options+CorrectAnswer,
// CorrectAnswer alone, CorrectMatches, or ExpectedKeywords) and determines
// the scoring strategy; the question bank loader enforces this at startup.
type Question struct {
	ID       uint         `json:"id" gorm:"primaryKey"`
	Module   ModuleType   `json:"module" gorm:"not null;index" validate:"required,module_type"`
	Type     QuestionType `json:"type" gorm:"not null" validate:"required,question_type"`
	Division DivisionType `json:"division" gorm:"not null;default:hotel" validate:"required,division_type"`

	QuestionText string  `json:"question_text" gorm:"type:text;not null" validate:"required"`
	AudioText    *string `json:"audio_text,omitempty" gorm:"type:text"`
	Passage      *string `json:"passage,omitempty" gorm:"type:text"`

	// Multiple choice / fill-in-blank
	Options       datatypes.JSONSlice[string] `json:"options,omitempty" gorm:"type:jsonb"`
	CorrectAnswer *string                     `json:"correct_answer,omitempty"`

	// Vocabulary matching (term -> definition, exactly 4 pairs)
	CorrectMatches datatypes.JSONType[map[string]string] `json:"correct_matches,omitempty" gorm:"type:jsonb"`

	// Speaking
	ExpectedKeywords   datatypes.JSONSlice[string] `json:"expected_keywords,omitempty" gorm:"type:jsonb"`
	MinDurationSeconds int                         `json:"min_duration_seconds,omitempty"`

	Points          int  `json:"points" gorm:"not null" validate:"required,min=1,max=100"`
	IsSafetyRelated bool `json:"is_safety_related" gorm:"default:false;index"`
}

func (Question) TableName() string {
	return "questions"
}

// Matches returns the vocabulary answer key, nil for other question types.
func (q *Question) Matches() map[string]string {
	return q.CorrectMatches.Data()
}

// PublicQuestion is a Question with the answer key fields stripped, safe to
// hand to a client taking the assessment.
type PublicQuestion struct {
	ID                 uint         `json:"id"`
	Module             ModuleType   `json:"module"`
	Type               QuestionType `json:"type"`
	QuestionText       string       `json:"question_text"`
	AudioText          *string      `json:"audio_text,omitempty"`
	Passage            *string      `json:"passage,omitempty"`
	Options            []string     `json:"options,omitempty"`
	Terms              []string     `json:"terms,omitempty"`
	Definitions        []string     `json:"definitions,omitempty"`
	MinDurationSeconds int          `json:"min_duration_seconds,omitempty"`
	Points             int          `json:"points"`
}

func (q *Question) PublicView() PublicQuestion {
	view := PublicQuestion{
		ID:                 q.ID,
		Module:             q.Module,
		Type:               q.Type,
		QuestionText:       q.QuestionText,
		AudioText:          q.AudioText,
		Passage:            q.Passage,
		Options:            q.Options,
		MinDurationSeconds: q.MinDurationSeconds,
		Points:             q.Points,
	}
	// Terms and definitions are sorted independently so their ordering
	// cannot reveal the pairing.
	for term, definition := range q.Matches() {
		view.Terms = append(view.Terms, term)
		view.Definitions = append(view.Definitions, definition)
	}
	sort.Strings(view.Terms)
	sort.Strings(view.Definitions)
	return view
}

package scoring

import "errors"

var (
	// ErrNilQuestion indicates a caller bug: the scorer was handed no
	// question definition to score against.
	ErrNilQuestion = errors.New("question is nil")

	// ErrUnsupportedQuestionType indicates a question whose type has no
	// registered strategy. The bank loader rejects such definitions, so
	// hitting this at runtime is a programmer error.
	ErrUnsupportedQuestionType = errors.New("unsupported question type")
)

package services

import (
	"errors"

	apperrors "github.com/Dino24-Max/English-Assessment-sub000/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrConflict         = errors.New("resource conflict")

	// Crew specific errors
	ErrCrewMemberNotFound = errors.New("crew member not found")
	ErrCrewEmailTaken     = errors.New("crew member email already registered")

	// Attempt specific errors
	ErrAttemptNotFound        = errors.New("attempt not found")
	ErrAttemptNotActive       = errors.New("attempt is not active")
	ErrAttemptAlreadyStarted  = errors.New("attempt already started")
	ErrAttemptAlreadyComplete = errors.New("attempt already completed")
	ErrAttemptExpired         = errors.New("attempt time has expired")
	ErrAttemptInProgress      = errors.New("crew member already has an active attempt")
	ErrAttemptIncomplete      = errors.New("attempt has unanswered questions")

	// Response specific errors
	ErrQuestionNotFound        = errors.New("question not found")
	ErrQuestionAlreadyAnswered = errors.New("question already answered in this attempt")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// ===== ERROR HELPERS =====

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCrewMemberNotFound) ||
		errors.Is(err, ErrAttemptNotFound) ||
		errors.Is(err, ErrQuestionNotFound)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrCrewEmailTaken) ||
		errors.Is(err, ErrAttemptAlreadyStarted) ||
		errors.Is(err, ErrAttemptAlreadyComplete) ||
		errors.Is(err, ErrAttemptInProgress) ||
		errors.Is(err, ErrQuestionAlreadyAnswered)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

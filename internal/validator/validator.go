package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
)

// Validator wraps struct tag validation with the custom tags used by the
// assessment models and request types.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new validator instance with all custom tags registered.
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)
	return &Validator{structValidator: structValidator}
}

// Validate validates struct tags on s.
func (v *Validator) Validate(s interface{}) error {
	return v.structValidator.Struct(s)
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("module_type", validateModuleType)
	validate.RegisterValidation("question_type", validateQuestionType)
	validate.RegisterValidation("division_type", validateDivisionType)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validation functions
func validateModuleType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, module := range models.AllModules {
		if string(module) == value {
			return true
		}
	}
	return false
}

func validateQuestionType(fl validator.FieldLevel) bool {
	validTypes := []models.QuestionType{
		models.QuestionMultipleChoice,
		models.QuestionFillBlank,
		models.QuestionVocabularyMatch,
		models.QuestionSpeaking,
	}

	value := fl.Field().String()
	for _, validType := range validTypes {
		if string(validType) == value {
			return true
		}
	}
	return false
}

func validateDivisionType(fl validator.FieldLevel) bool {
	validDivisions := []models.DivisionType{
		models.DivisionHotel,
		models.DivisionMarine,
		models.DivisionCasino,
	}

	value := fl.Field().String()
	for _, validDivision := range validDivisions {
		if string(validDivision) == value {
			return true
		}
	}
	return false
}

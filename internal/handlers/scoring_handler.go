package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/questionbank"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/scoring"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/utils"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/validator"
)

// ScoringHandler exposes stateless scoring against the question bank.
// Nothing is persisted; callers use it to preview how an answer scores.
type ScoringHandler struct {
	BaseHandler
	bank      *questionbank.Bank
	engine    *scoring.Engine
	validator *validator.Validator
}

// NewScoringHandler creates a new scoring handler
func NewScoringHandler(bank *questionbank.Bank, engine *scoring.Engine, v *validator.Validator, logger utils.Logger) *ScoringHandler {
	return &ScoringHandler{
		BaseHandler: NewBaseHandler(logger),
		bank:        bank,
		engine:      engine,
		validator:   v,
	}
}

// CalculateScoreRequest is the stateless scoring input.
type CalculateScoreRequest struct {
	QuestionID uint   `json:"question_id" validate:"required"`
	Answer     string `json:"answer"`
}

// CalculateScore handles POST /api/v1/scoring/calculate-score
// @Summary Score a single answer without persisting anything
func (h *ScoringHandler) CalculateScore(c *gin.Context) {
	var req CalculateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
		return
	}

	question, err := h.bank.Get(req.QuestionID)
	if err != nil {
		if errors.Is(err, questionbank.ErrUnknownQuestion) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Message: err.Error(),
			})
			return
		}
		h.handleServiceError(c, err)
		return
	}

	result, err := h.engine.Score(question, req.Answer)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Score calculated successfully",
		Data:    result,
	})
}

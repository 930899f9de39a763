package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/services"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/utils"
)

// AttemptHandler exposes the assessment attempt lifecycle over HTTP.
type AttemptHandler struct {
	BaseHandler
	attemptService services.AttemptService
}

// NewAttemptHandler creates a new attempt handler
func NewAttemptHandler(attemptService services.AttemptService, logger utils.Logger) *AttemptHandler {
	return &AttemptHandler{
		BaseHandler:    NewBaseHandler(logger),
		attemptService: attemptService,
	}
}

// CreateAttempt handles POST /api/v1/attempts
// @Summary Create a new assessment attempt for a crew member
func (h *AttemptHandler) CreateAttempt(c *gin.Context) {
	var req services.CreateAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Creating assessment attempt", "crew_member_id", req.CrewMemberID)

	attempt, err := h.attemptService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Attempt created successfully",
		Data:    attempt,
	})
}

// StartAttempt handles POST /api/v1/attempts/:session_id/start
// @Summary Start the assessment timer for an attempt
func (h *AttemptHandler) StartAttempt(c *gin.Context) {
	sessionID := c.Param("session_id")

	h.LogRequest(c, "Starting assessment attempt", "session_id", sessionID)

	attempt, err := h.attemptService.Start(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Attempt started successfully",
		Data:    attempt,
	})
}

// GetAttempt handles GET /api/v1/attempts/:session_id
// @Summary Get an attempt by session ID
func (h *AttemptHandler) GetAttempt(c *gin.Context) {
	sessionID := c.Param("session_id")

	attempt, err := h.attemptService.GetBySessionID(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Attempt retrieved successfully",
		Data:    attempt,
	})
}

// GetQuestions handles GET /api/v1/attempts/:session_id/questions
// @Summary Get the question set for an attempt without answer keys
func (h *AttemptHandler) GetQuestions(c *gin.Context) {
	sessionID := c.Param("session_id")

	questions, err := h.attemptService.GetQuestions(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Questions retrieved successfully",
		Data: gin.H{
			"questions": questions,
			"total":     len(questions),
		},
	})
}

// SubmitAnswer handles POST /api/v1/attempts/:session_id/answers
// @Summary Submit and score an answer for one question
func (h *AttemptHandler) SubmitAnswer(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req services.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Submitting answer",
		"session_id", sessionID,
		"question_id", req.QuestionID)

	result, err := h.attemptService.SubmitAnswer(c.Request.Context(), sessionID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Answer submitted successfully",
		Data:    result,
	})
}

// CompleteAttempt handles POST /api/v1/attempts/:session_id/complete
// @Summary Complete an attempt and compute its final outcome
func (h *AttemptHandler) CompleteAttempt(c *gin.Context) {
	sessionID := c.Param("session_id")

	h.LogRequest(c, "Completing assessment attempt", "session_id", sessionID)

	outcome, err := h.attemptService.Complete(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Attempt completed successfully",
		Data:    outcome,
	})
}

// GetResults handles GET /api/v1/attempts/:session_id/results
// @Summary Get an attempt with its per-question responses
func (h *AttemptHandler) GetResults(c *gin.Context) {
	sessionID := c.Param("session_id")

	attempt, err := h.attemptService.GetResults(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Results retrieved successfully",
		Data:    attempt,
	})
}

// ListCrewAttempts handles GET /api/v1/crew/:id/attempts
// @Summary List a crew member's attempt history
func (h *AttemptHandler) ListCrewAttempts(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		return
	}

	page := parseIntQuery(c, "page", 1)
	size := parseIntQuery(c, "size", 20)
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}

	attempts, total, err := h.attemptService.ListByCrewMember(c.Request.Context(), id, size, (page-1)*size)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Attempts retrieved successfully",
		Data: gin.H{
			"attempts": attempts,
			"total":    total,
			"page":     page,
			"size":     size,
		},
	})
}

// GetStats handles GET /api/v1/stats/attempts
// @Summary Get aggregate attempt statistics, optionally per division
func (h *AttemptHandler) GetStats(c *gin.Context) {
	var division *models.DivisionType
	if raw := c.Query("division"); raw != "" {
		d := models.DivisionType(raw)
		division = &d
	}

	stats, err := h.attemptService.GetStats(c.Request.Context(), division)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Statistics retrieved successfully",
		Data:    stats,
	})
}

// GetOutcome handles GET /api/v1/attempts/:session_id/outcome
// @Summary Get the aggregated outcome of a completed attempt
func (h *AttemptHandler) GetOutcome(c *gin.Context) {
	sessionID := c.Param("session_id")

	outcome, err := h.attemptService.GetOutcome(c.Request.Context(), sessionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Outcome retrieved successfully",
		Data:    outcome,
	})
}

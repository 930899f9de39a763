package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/questionbank"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/scoring"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/services"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/utils"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/validator"
)

// HandlerManager aggregates all HTTP handlers
type HandlerManager struct {
	Attempt *AttemptHandler
	Crew    *CrewHandler
	Scoring *ScoringHandler
	Export  *ExportHandler
}

// NewHandlerManager creates all handlers with their dependencies
func NewHandlerManager(
	attemptService services.AttemptService,
	crewService services.CrewService,
	exportService services.ExportService,
	bank *questionbank.Bank,
	engine *scoring.Engine,
	v *validator.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		Attempt: NewAttemptHandler(attemptService, logger),
		Crew:    NewCrewHandler(crewService, logger),
		Scoring: NewScoringHandler(bank, engine, v, logger),
		Export:  NewExportHandler(exportService, logger),
	}
}

// SetupRoutes configures all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "english-assessment",
		})
	})

	v1 := router.Group("/api/v1")
	{
		crew := v1.Group("/crew")
		{
			crew.POST("", hm.Crew.RegisterCrewMember)
			crew.GET("", hm.Crew.ListCrewMembers)
			crew.GET("/:id", hm.Crew.GetCrewMember)
			crew.GET("/:id/attempts", hm.Attempt.ListCrewAttempts)
		}

		attempts := v1.Group("/attempts")
		{
			attempts.POST("", hm.Attempt.CreateAttempt)
			attempts.GET("/:session_id", hm.Attempt.GetAttempt)
			attempts.POST("/:session_id/start", hm.Attempt.StartAttempt)
			attempts.GET("/:session_id/questions", hm.Attempt.GetQuestions)
			attempts.POST("/:session_id/answers", hm.Attempt.SubmitAnswer)
			attempts.POST("/:session_id/complete", hm.Attempt.CompleteAttempt)
			attempts.GET("/:session_id/outcome", hm.Attempt.GetOutcome)
			attempts.GET("/:session_id/results", hm.Attempt.GetResults)
		}

		v1.GET("/stats/attempts", hm.Attempt.GetStats)

		scoringGroup := v1.Group("/scoring")
		{
			scoringGroup.POST("/calculate-score", hm.Scoring.CalculateScore)
		}

		exports := v1.Group("/exports")
		{
			exports.GET("/results.xlsx", hm.Export.ExportResultsExcel)
			exports.GET("/results.csv", hm.Export.ExportResultsCSV)
		}
	}
}

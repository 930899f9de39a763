package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/repositories"
)

// ExportService produces downloadable reports of assessment results.
type ExportService interface {
	ExportResultsToExcel(ctx context.Context, filters repositories.AttemptFilters) ([]byte, error)
	ExportResultsToCSV(ctx context.Context, filters repositories.AttemptFilters) ([]byte, error)
}

type exportService struct {
	attempts repositories.AttemptRepository
	logger   *slog.Logger
}

func NewExportService(attempts repositories.AttemptRepository, logger *slog.Logger) ExportService {
	return &exportService{
		attempts: attempts,
		logger:   logger,
	}
}

var resultHeaders = []string{
	"Crew Member ID", "Crew Member Name", "Division", "Status",
	"Started At", "Completed At", "Total Score",
	"Listening", "Time & Numbers", "Grammar", "Vocabulary", "Reading", "Speaking",
	"Safety Correct", "Safety Total", "Result",
}

func (s *exportService) ExportResultsToExcel(ctx context.Context, filters repositories.AttemptFilters) ([]byte, error) {
	attempts, _, err := s.attempts.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get attempts: %w", err)
	}

	f := excelize.NewFile()
	sheetName := "Results"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range resultHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, attempt := range attempts {
		for colIndex, value := range attemptRow(attempt) {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Exported assessment results to Excel", "attempts", len(attempts))
	return buf.Bytes(), nil
}

func (s *exportService) ExportResultsToCSV(ctx context.Context, filters repositories.AttemptFilters) ([]byte, error) {
	attempts, _, err := s.attempts.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get attempts: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(resultHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, attempt := range attempts {
		record := make([]string, 0, len(resultHeaders))
		for _, value := range attemptRow(attempt) {
			record = append(record, fmt.Sprint(value))
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	s.logger.Info("Exported assessment results to CSV", "attempts", len(attempts))
	return buf.Bytes(), nil
}

func attemptRow(attempt *models.AssessmentAttempt) []interface{} {
	row := []interface{}{
		attempt.CrewMemberID,
		attempt.CrewMember.Name,
		string(attempt.Division),
		string(attempt.Status),
		formatTime(attempt.StartedAt),
		formatTime(attempt.CompletedAt),
		formatScore(attempt.TotalScore),
		formatScore(attempt.ListeningScore),
		formatScore(attempt.TimeNumbersScore),
		formatScore(attempt.GrammarScore),
		formatScore(attempt.VocabularyScore),
		formatScore(attempt.ReadingScore),
		formatScore(attempt.SpeakingScore),
		formatScore(attempt.SafetyQuestionsCorrect),
		formatScore(attempt.SafetyQuestionsTotal),
		formatResult(attempt),
	}
	return row
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatScore(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatResult(attempt *models.AssessmentAttempt) string {
	if attempt.Status != models.AttemptStatusCompleted || attempt.OverallPass == nil {
		return ""
	}
	if *attempt.OverallPass {
		return "Pass"
	}
	return "Fail"
}

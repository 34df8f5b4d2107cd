package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/learnmate/coordinator/internal/models"
)

// ExportService renders quiz sets as spreadsheets for instructors who
// review generated questions offline.
type ExportService struct {
	quiz *QuizService
}

func NewExportService(quiz *QuizService) *ExportService {
	return &ExportService{quiz: quiz}
}

// ExportQuizToExcel generates (or fetches the cached) quiz set for a
// lesson and writes it to an xlsx workbook.
func (s *ExportService) ExportQuizToExcel(ctx context.Context, lessonID string, config models.DifficultyConfig) ([]byte, error) {
	items, err := s.quiz.GetQuiz(ctx, lessonID, config)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "Quiz"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"ID", "Prompt", "Type", "Difficulty", "Options", "Answer", "Feedback",
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, item := range items {
		row := []string{
			item.ID,
			item.Prompt,
			string(item.Type),
			string(item.Difficulty),
			strings.Join(item.Options, " | "),
			item.Answer,
			item.Feedback,
		}
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buf.Bytes(), nil
}

package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnmate/coordinator/internal/models"
	"github.com/learnmate/coordinator/internal/services"
	"github.com/learnmate/coordinator/internal/utils"
	"github.com/learnmate/coordinator/internal/validator"
)

type QuizHandler struct {
	BaseHandler
	quizService    *services.QuizService
	gradingService *services.GradingService
	exportService  *services.ExportService
	validator      *validator.Validator
}

func NewQuizHandler(
	quizService *services.QuizService,
	gradingService *services.GradingService,
	exportService *services.ExportService,
	v *validator.Validator,
	logger utils.Logger,
) *QuizHandler {
	return &QuizHandler{
		BaseHandler:    NewBaseHandler(logger),
		quizService:    quizService,
		gradingService: gradingService,
		exportService:  exportService,
		validator:      v,
	}
}

func difficultyConfigFromQuery(c *gin.Context) models.DifficultyConfig {
	return models.DifficultyConfig{
		Easy:   parseTierCount(c.Query("easy")),
		Medium: parseTierCount(c.Query("medium")),
		Hard:   parseTierCount(c.Query("hard")),
	}
}

// GetQuiz returns the quiz set for a lesson. Per-difficulty counts come
// from the easy/medium/hard query parameters.
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	lessonID := ParseStringIDParam(c, "lessonId")
	if lessonID == "" {
		return
	}

	config := difficultyConfigFromQuery(c)

	items, err := h.quizService.GetQuiz(c.Request.Context(), lessonID, config)
	if err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to generate quiz questions", err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// ExportQuiz streams the quiz set for a lesson as an xlsx workbook.
func (h *QuizHandler) ExportQuiz(c *gin.Context) {
	lessonID := ParseStringIDParam(c, "lessonId")
	if lessonID == "" {
		return
	}

	config := difficultyConfigFromQuery(c)

	data, err := h.exportService.ExportQuizToExcel(c.Request.Context(), lessonID, config)
	if err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to export quiz", err)
		return
	}

	filename := fmt.Sprintf("quiz_%s.xlsx", lessonID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// GradeQuiz scores a submission against the lesson's answer key.
func (h *QuizHandler) GradeQuiz(c *gin.Context) {
	var submission models.QuizSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	if err := h.validator.Validate(&submission); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
		return
	}

	result, err := h.gradingService.Grade(c.Request.Context(), submission)
	if err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to grade submission", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

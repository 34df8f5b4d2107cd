package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnmate/coordinator/internal/clients/progress"
	"github.com/learnmate/coordinator/internal/events"
	"github.com/learnmate/coordinator/internal/repositories"
	"github.com/learnmate/coordinator/internal/services"
	"github.com/learnmate/coordinator/internal/utils"
)

type LessonHandler struct {
	BaseHandler
	lessons        repositories.LessonRepository
	sessionService *services.SessionService
	progress       progress.Recorder
	publisher      events.EventPublisher
}

func NewLessonHandler(
	lessons repositories.LessonRepository,
	sessionService *services.SessionService,
	progressRecorder progress.Recorder,
	publisher events.EventPublisher,
	logger utils.Logger,
) *LessonHandler {
	return &LessonHandler{
		BaseHandler:    NewBaseHandler(logger),
		lessons:        lessons,
		sessionService: sessionService,
		progress:       progressRecorder,
		publisher:      publisher,
	}
}

// GetLesson returns the static content for a lesson.
func (h *LessonHandler) GetLesson(c *gin.Context) {
	lessonID := ParseStringIDParam(c, "lessonId")
	if lessonID == "" {
		return
	}

	content, err := h.lessons.GetContent(c.Request.Context(), lessonID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Lesson not found"})
			return
		}
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to load lesson", err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// GetLessonPlan returns the plan for a lesson, falling back to the
// default plan for unknown lessons.
func (h *LessonHandler) GetLessonPlan(c *gin.Context) {
	lessonID := ParseStringIDParam(c, "lessonId")
	if lessonID == "" {
		return
	}

	plan, err := h.lessons.GetPlan(c.Request.Context(), lessonID)
	if err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to load lesson plan", err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

type CompleteLessonRequest struct {
	SessionID string `json:"sessionId"`
}

type CompleteLessonResponse struct {
	OK      bool        `json:"ok"`
	Session interface{} `json:"session,omitempty"`
}

// CompleteLesson records a lesson completion. Progress reporting is
// best effort; a session ID advances the session's active lesson and
// echoes the session back.
func (h *LessonHandler) CompleteLesson(c *gin.Context) {
	lessonID := ParseStringIDParam(c, "lessonId")
	if lessonID == "" {
		return
	}

	// A missing body means completion without a session.
	var req CompleteLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.progress.RecordLessonCompletion(c.Request.Context(), lessonID)
	h.publishCompleted(c, lessonID, req.SessionID)

	if req.SessionID != "" {
		h.sessionService.UpdateActiveLesson(req.SessionID, lessonID)
		session, err := h.sessionService.GetSession(req.SessionID)
		if err != nil {
			c.JSON(http.StatusOK, CompleteLessonResponse{OK: true})
			return
		}
		c.JSON(http.StatusOK, CompleteLessonResponse{OK: true, Session: session})
		return
	}

	c.JSON(http.StatusOK, CompleteLessonResponse{OK: true})
}

func (h *LessonHandler) publishCompleted(c *gin.Context, lessonID, sessionID string) {
	if h.publisher == nil {
		return
	}
	event := events.NewLessonCompletedEvent(lessonID, sessionID)
	if err := h.publisher.PublishLearningEvent(c.Request.Context(), event); err != nil {
		h.LogError(c, err, "Failed to publish lesson completed event", "lesson_id", lessonID)
	}
}

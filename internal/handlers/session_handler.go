package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnmate/coordinator/internal/services"
	"github.com/learnmate/coordinator/internal/utils"
)

const defaultSessionTopic = "Python Loop Fundamentals"

type SessionHandler struct {
	BaseHandler
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService, logger utils.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler:    NewBaseHandler(logger),
		sessionService: sessionService,
	}
}

type CreateSessionRequest struct {
	Topic string `json:"topic"`
}

// CreateSession starts a learner session. The topic defaults when the
// body omits it.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}
	if req.Topic == "" {
		req.Topic = defaultSessionTopic
	}

	session, err := h.sessionService.CreateSession(c.Request.Context(), req.Topic)
	if err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to create session", err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// GetSession returns an existing session.
func (h *SessionHandler) GetSession(c *gin.Context) {
	sessionID := ParseStringIDParam(c, "sessionId")
	if sessionID == "" {
		return
	}

	session, err := h.sessionService.GetSession(sessionID)
	if err != nil {
		if services.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Session not found"})
			return
		}
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to load session", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

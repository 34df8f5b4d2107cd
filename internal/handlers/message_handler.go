package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnmate/coordinator/internal/services"
	"github.com/learnmate/coordinator/internal/utils"
	"github.com/learnmate/coordinator/internal/validator"
)

type MessageHandler struct {
	BaseHandler
	coachService *services.CoachService
	validator    *validator.Validator
}

func NewMessageHandler(coachService *services.CoachService, v *validator.Validator, logger utils.Logger) *MessageHandler {
	return &MessageHandler{
		BaseHandler:  NewBaseHandler(logger),
		coachService: coachService,
		validator:    v,
	}
}

// MessageRequest is the inter-agent message envelope forwarded by the
// frontend.
type MessageRequest struct {
	SessionID string         `json:"sessionId" validate:"required"`
	TurnID    int            `json:"turnId"`
	From      string         `json:"from" validate:"required"`
	To        []string       `json:"to" validate:"required"`
	Type      string         `json:"type" validate:"required"`
	Payload   map[string]any `json:"payload" validate:"required"`
}

type MessageResponse struct {
	Agent    string `json:"agent"`
	Feedback string `json:"feedback"`
}

// PostMessage routes an agent message. Only code_feedback messages get
// a substantive response today.
func (h *MessageHandler) PostMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
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

	if req.Type == "code_feedback" {
		code := fmt.Sprintf("%v", req.Payload["code"])
		if req.Payload["code"] == nil {
			code = ""
		}
		c.JSON(http.StatusOK, MessageResponse{
			Agent:    "TeachingAgent",
			Feedback: h.coachService.CodeFeedback(code),
		})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Agent:    "Coordinator",
		Feedback: "Message routed, no action taken.",
	})
}

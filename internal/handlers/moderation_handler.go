package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnmate/coordinator/internal/events"
	"github.com/learnmate/coordinator/internal/models"
	"github.com/learnmate/coordinator/internal/repositories"
	"github.com/learnmate/coordinator/internal/utils"
	"github.com/learnmate/coordinator/internal/validator"
)

type ModerationHandler struct {
	BaseHandler
	moderation repositories.ModerationRepository
	publisher  events.EventPublisher
	validator  *validator.Validator
}

func NewModerationHandler(
	moderation repositories.ModerationRepository,
	publisher events.EventPublisher,
	v *validator.Validator,
	logger utils.Logger,
) *ModerationHandler {
	return &ModerationHandler{
		BaseHandler: NewBaseHandler(logger),
		moderation:  moderation,
		publisher:   publisher,
		validator:   v,
	}
}

// ListModeration returns the moderation queue.
func (h *ModerationHandler) ListModeration(c *gin.Context) {
	queue, err := h.moderation.List(c.Request.Context())
	if err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to load moderation queue", err)
		return
	}
	c.JSON(http.StatusOK, queue)
}

type UpdateModerationRequest struct {
	Status string `json:"status" validate:"required,moderation_status"`
}

// UpdateModeration transitions a queue item between open and resolved.
func (h *ModerationHandler) UpdateModeration(c *gin.Context) {
	itemID := ParseStringIDParam(c, "itemId")
	if itemID == "" {
		return
	}

	var req UpdateModerationRequest
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

	item, err := h.moderation.UpdateStatus(c.Request.Context(), itemID, models.ModerationStatus(req.Status))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Moderation item not found"})
			return
		}
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to update moderation item", err)
		return
	}

	h.publishUpdated(c, item)

	c.JSON(http.StatusOK, item)
}

func (h *ModerationHandler) publishUpdated(c *gin.Context, item *models.ModerationItem) {
	if h.publisher == nil {
		return
	}
	event := events.NewModerationUpdatedEvent(item.ID, string(item.Status))
	if err := h.publisher.PublishLearningEvent(c.Request.Context(), event); err != nil {
		h.LogError(c, err, "Failed to publish moderation updated event", "item_id", item.ID)
	}
}

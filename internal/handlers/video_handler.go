package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/learnmate/coordinator/internal/events"
	"github.com/learnmate/coordinator/internal/models"
	"github.com/learnmate/coordinator/internal/repositories"
	"github.com/learnmate/coordinator/internal/services"
	"github.com/learnmate/coordinator/internal/utils"
	"github.com/learnmate/coordinator/internal/validator"
)

// dataURLPattern matches base64 data URLs from in-browser recordings.
var dataURLPattern = regexp.MustCompile(`^data:[\w/+-]+;base64,(.+)$`)

type VideoHandler struct {
	BaseHandler
	videos     repositories.VideoRepository
	moderation repositories.ModerationRepository
	publisher  events.EventPublisher
	validator  *validator.Validator
	uploadsDir string
}

func NewVideoHandler(
	videos repositories.VideoRepository,
	moderation repositories.ModerationRepository,
	publisher events.EventPublisher,
	v *validator.Validator,
	uploadsDir string,
	logger utils.Logger,
) *VideoHandler {
	return &VideoHandler{
		BaseHandler: NewBaseHandler(logger),
		videos:      videos,
		moderation:  moderation,
		publisher:   publisher,
		validator:   v,
		uploadsDir:  uploadsDir,
	}
}

// ListVideos returns the peer video feed, newest first.
func (h *VideoHandler) ListVideos(c *gin.Context) {
	videos, err := h.videos.List(c.Request.Context())
	if err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to load videos", err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

type UploadVideoRequest struct {
	Title      string   `json:"title" validate:"required,min=3"`
	LessonID   string   `json:"lessonId" validate:"required"`
	Transcript string   `json:"transcript" validate:"required,min=3"`
	Tags       []string `json:"tags"`
	DataURL    string   `json:"dataUrl"`
}

// UploadVideo accepts a peer recording. The transcript is screened
// before publishing; flagged uploads enter the moderation queue with
// a pending status rather than being rejected.
func (h *VideoHandler) UploadVideo(c *gin.Context) {
	var req UploadVideoRequest
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

	id := uuid.NewString()

	videoPath := ""
	if req.DataURL != "" {
		path, err := h.saveRecording(id, req.DataURL)
		if err != nil {
			h.LogError(c, err, "Failed to persist recording", "video_id", id)
		} else {
			videoPath = path
		}
	}

	flagged := services.ContainsProfanity(req.Transcript)
	status := models.VideoPending
	if flagged {
		status = models.VideoFlagged
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	video := models.PeerVideo{
		ID:           id,
		Title:        req.Title,
		Author:       "You",
		AuthorAvatar: "https://api.dicebear.com/6.x/initials/svg?seed=YOU",
		Duration:     90,
		Tags:         tags,
		Transcript:   req.Transcript,
		Thumbnail:    "/assets/custom-upload.png",
		VideoURL:     videoPath,
		Likes:        0,
		Status:       status,
		LessonID:     req.LessonID,
		SubmittedAt:  time.Now(),
	}

	if err := h.videos.Prepend(c.Request.Context(), video); err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to store video", err)
		return
	}

	if flagged {
		item := models.ModerationItem{
			ID:          "mod-" + id,
			VideoID:     id,
			Reason:      "Profanity detected during automated screening.",
			Severity:    models.SeverityMedium,
			SubmittedAt: time.Now(),
			Status:      models.ModerationOpen,
		}
		if err := h.moderation.Prepend(c.Request.Context(), item); err != nil {
			h.LogError(c, err, "Failed to enqueue moderation item", "video_id", id)
		}
	}

	c.JSON(http.StatusCreated, video)
}

// LikeVideo increments the like counter for a video.
func (h *VideoHandler) LikeVideo(c *gin.Context) {
	videoID := ParseStringIDParam(c, "videoId")
	if videoID == "" {
		return
	}

	video, err := h.videos.AddLike(c.Request.Context(), videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Video not found"})
			return
		}
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to like video", err)
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *VideoHandler) saveRecording(id, dataURL string) (string, error) {
	matches := dataURLPattern.FindStringSubmatch(dataURL)
	if matches == nil {
		return "", errors.New("malformed data URL")
	}

	data, err := base64.StdEncoding.DecodeString(matches[1])
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(h.uploadsDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(h.uploadsDir, id+".webm")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

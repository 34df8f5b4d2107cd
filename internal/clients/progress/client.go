package progress

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/learnmate/coordinator/internal/utils"
)

const requestTimeout = 5 * time.Second

// Recorder notifies the downstream progress service of learner milestones.
type Recorder interface {
	RecordLessonCompletion(ctx context.Context, lessonID string)
}

// Client posts progress updates to the progress service. Failures are
// logged and swallowed; progress tracking must never block the learner.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     utils.Logger
}

func NewClient(baseURL string, logger utils.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

func (c *Client) RecordLessonCompletion(ctx context.Context, lessonID string) {
	payload, err := json.Marshal(map[string]string{"lessonId": lessonID})
	if err != nil {
		c.logger.LogError(err, "Progress payload marshal failed", "lesson_id", lessonID)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/update", bytes.NewReader(payload))
	if err != nil {
		c.logger.LogError(err, "Progress request build failed", "lesson_id", lessonID)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.LogError(err, "Progress service error", "lesson_id", lessonID)
		return
	}
	resp.Body.Close()

	if resp.StatusCode >= 400 {
		c.logger.Warn("Progress service rejected update",
			"lesson_id", lessonID,
			"status_code", resp.StatusCode)
	}
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnmate/coordinator/internal/cache"
	"github.com/learnmate/coordinator/internal/clients/knowledge"
	"github.com/learnmate/coordinator/internal/config"
	"github.com/learnmate/coordinator/internal/events"
	"github.com/learnmate/coordinator/internal/models"
	"github.com/learnmate/coordinator/internal/repositories"
	"github.com/learnmate/coordinator/internal/services"
	"github.com/learnmate/coordinator/internal/utils"
	"github.com/learnmate/coordinator/internal/validator"
)

type fakeFetcher struct {
	page *models.SourcePage
}

func (f *fakeFetcher) FetchSubjectData(ctx context.Context, subjectTitle string) (*models.SourcePage, error) {
	return f.page, nil
}

type stubDescriber struct{}

func (stubDescriber) Describe(ctx context.Context, subject string) (string, error) {
	return "", knowledge.ErrNoDescription
}

type noopRecorder struct{}

func (noopRecorder) RecordLessonCompletion(ctx context.Context, lessonID string) {}

func testSourcePage() *models.SourcePage {
	return &models.SourcePage{
		Title: "Python",
		Extract: "The Python interpreter executes the Bytecode instructions one after another during Runtime. " +
			"The Compiler first transforms readable Syntax into a lower level representation before anything runs. " +
			"Modern Hardware executes these instructions while the Scheduler keeps every running program responsive.",
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := utils.NewDevelopmentLogger()
	publisher := events.NewMockEventPublisher(utils.ToSlogLogger(logger))
	v := validator.New()

	catalogRepo := repositories.NewMemoryCatalogRepository()
	lessonRepo := repositories.NewStaticLessonRepository()
	videoRepo := repositories.NewMemoryVideoRepository()
	moderationRepo := repositories.NewMemoryModerationRepository()

	generator := services.NewQuizGeneratorWithSource(
		rand.New(rand.NewSource(1)),
		func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	)
	quizService := services.NewQuizService(
		catalogRepo, lessonRepo, &fakeFetcher{page: testSourcePage()},
		cache.NewMemoryStore(), publisher, generator, logger,
	)
	gradingService := services.NewGradingService(lessonRepo, logger)
	exportService := services.NewExportService(quizService)
	sessionService := services.NewSessionService(lessonRepo)
	coachService := services.NewCoachService()
	insightsService := services.NewInsightsService(catalogRepo, stubDescriber{}, logger)

	manager := NewHandlerManager(
		NewQuizHandler(quizService, gradingService, exportService, v, logger),
		NewCatalogHandler(catalogRepo, insightsService, logger),
		NewLessonHandler(lessonRepo, sessionService, noopRecorder{}, publisher, logger),
		NewSessionHandler(sessionService, logger),
		NewVideoHandler(videoRepo, moderationRepo, publisher, v, t.TempDir(), logger),
		NewModerationHandler(moderationRepo, publisher, v, logger),
		NewMessageHandler(coachService, v, logger),
	)

	cfg := &config.Config{
		Port:           "0",
		Environment:    "test",
		AllowedOrigins: []string{"*"},
	}
	return manager.SetupRouter(cfg, logger)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetQuiz_ClampsTierCounts(t *testing.T) {
	router := newTestRouter(t)

	// easy is clamped to 50, medium to 0, and an unparsable hard falls
	// back to the default of 10.
	w := doJSON(t, router, http.MethodGet, "/api/quiz/loop-fundamentals?easy=100&medium=-5&hard=abc", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.QuizItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 60)
}

func TestGetQuiz_UnknownLessonReturnsEmptySet(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/quiz/ghost-lesson", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGradeQuiz(t *testing.T) {
	router := newTestRouter(t)

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/quiz/grade", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing responses", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/quiz/grade", map[string]any{"lessonId": "loop-fundamentals"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("valid submission", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/quiz/grade", models.QuizSubmission{
			LessonID: "loop-fundamentals",
			Responses: []models.QuizResponse{
				{ItemID: "loop-q1", Answer: "0 1 2"},
			},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var result models.QuizResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, 33, result.Score)
		assert.Equal(t, 46, result.MasteryEstimate)
	})
}

func TestExportQuiz(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/quiz/loop-fundamentals/export?easy=1&medium=0&hard=0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}

func TestLessonRoutes(t *testing.T) {
	router := newTestRouter(t)

	t.Run("known lesson", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/lesson/loop-fundamentals", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var content models.LessonContent
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &content))
		assert.Equal(t, "Loop Foundations", content.Title)
	})

	t.Run("unknown lesson", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/lesson/ghost", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown plan falls back to default", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/lesson/ghost/plan", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var plan models.LessonPlan
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
		assert.Equal(t, "Python Loop Fundamentals", plan.Topic)
	})

	t.Run("complete with session", func(t *testing.T) {
		created := doJSON(t, router, http.MethodPost, "/api/session", map[string]string{"topic": "Loops"})
		require.Equal(t, http.StatusOK, created.Code)
		var session models.SessionSummary
		require.NoError(t, json.Unmarshal(created.Body.Bytes(), &session))

		w := doJSON(t, router, http.MethodPost, "/api/lesson/nested-loops/complete",
			map[string]string{"sessionId": session.SessionID})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			OK      bool                   `json:"ok"`
			Session *models.SessionSummary `json:"session"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.OK)
		require.NotNil(t, resp.Session)
		assert.Equal(t, "nested-loops", resp.Session.ActiveLessonID)
	})

	t.Run("complete without body", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/lesson/loop-patterns/complete", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCatalogRoutes(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.CatalogItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 3)

	single := doJSON(t, router, http.MethodGet, "/api/catalog/loop-fundamentals", nil)
	require.Equal(t, http.StatusOK, single.Code)

	missing := doJSON(t, router, http.MethodGet, "/api/catalog/ghost", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)

	missingInsights := doJSON(t, router, http.MethodGet, "/api/catalog/ghost/insights", nil)
	assert.Equal(t, http.StatusNotFound, missingInsights.Code)
}

func TestSessionRoutes(t *testing.T) {
	router := newTestRouter(t)

	created := doJSON(t, router, http.MethodPost, "/api/session", map[string]string{"topic": "Loops"})
	require.Equal(t, http.StatusOK, created.Code)
	var session models.SessionSummary
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &session))

	fetched := doJSON(t, router, http.MethodGet, "/api/session/"+session.SessionID, nil)
	require.Equal(t, http.StatusOK, fetched.Code)

	missing := doJSON(t, router, http.MethodGet, "/api/session/ghost", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestVideoRoutes(t *testing.T) {
	router := newTestRouter(t)

	t.Run("list seeded feed", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/videos", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var videos []models.PeerVideo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &videos))
		assert.Len(t, videos, 2)
	})

	t.Run("rejects short titles", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/videos", map[string]any{
			"title":      "ab",
			"lessonId":   "loop-fundamentals",
			"transcript": "a clean walkthrough",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("clean upload is pending", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/videos", map[string]any{
			"title":      "My loop walkthrough",
			"lessonId":   "loop-fundamentals",
			"transcript": "a clean walkthrough of loops",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var video models.PeerVideo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &video))
		assert.Equal(t, models.VideoPending, video.Status)
		assert.Zero(t, video.Likes)
	})

	t.Run("flagged upload joins the moderation queue", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/videos", map[string]any{
			"title":      "Questionable upload",
			"lessonId":   "loop-fundamentals",
			"transcript": "this one contains a badword sadly",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var video models.PeerVideo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &video))
		assert.Equal(t, models.VideoFlagged, video.Status)

		queue := doJSON(t, router, http.MethodGet, "/api/moderation", nil)
		require.Equal(t, http.StatusOK, queue.Code)

		var items []models.ModerationItem
		require.NoError(t, json.Unmarshal(queue.Body.Bytes(), &items))
		require.NotEmpty(t, items)
		assert.Equal(t, video.ID, items[0].VideoID)
		assert.Equal(t, models.ModerationOpen, items[0].Status)
	})

	t.Run("like increments", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/videos/video-001/like", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var video models.PeerVideo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &video))
		assert.Equal(t, 129, video.Likes)
	})

	t.Run("like unknown video", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/videos/ghost/like", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestModerationRoutes(t *testing.T) {
	router := newTestRouter(t)

	t.Run("resolve item", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/moderation/mod-001", map[string]string{"status": "resolved"})
		require.Equal(t, http.StatusOK, w.Code)

		var item models.ModerationItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
		assert.Equal(t, models.ModerationResolved, item.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/moderation/mod-001", map[string]string{"status": "banned"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown item", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/moderation/ghost", map[string]string{"status": "open"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMessageRoute(t *testing.T) {
	router := newTestRouter(t)

	t.Run("code feedback", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/message", map[string]any{
			"sessionId": "s-1",
			"turnId":    1,
			"from":      "learner",
			"to":        []string{"TeachingAgent"},
			"type":      "code_feedback",
			"payload":   map[string]any{"code": "print(1)"},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp MessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "TeachingAgent", resp.Agent)
		assert.Contains(t, resp.Feedback, "loop construct")
	})

	t.Run("other message types are routed", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/message", map[string]any{
			"sessionId": "s-1",
			"turnId":    2,
			"from":      "learner",
			"to":        []string{"Coordinator"},
			"type":      "ping",
			"payload":   map[string]any{},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp MessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Coordinator", resp.Agent)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/message", map[string]any{"type": "ping"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnmate/coordinator/internal/cache"
	"github.com/learnmate/coordinator/internal/events"
	"github.com/learnmate/coordinator/internal/models"
	"github.com/learnmate/coordinator/internal/repositories"
	"github.com/learnmate/coordinator/internal/utils"
)

type stubFetcher struct {
	calls  int
	titles []string
	page   *models.SourcePage
	err    error
}

func (f *stubFetcher) FetchSubjectData(ctx context.Context, subjectTitle string) (*models.SourcePage, error) {
	f.calls++
	f.titles = append(f.titles, subjectTitle)
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

type quizServiceFixture struct {
	service   *QuizService
	fetcher   *stubFetcher
	publisher *events.MockEventPublisher
}

func newQuizServiceFixture(fetcher *stubFetcher) *quizServiceFixture {
	logger := utils.NewDevelopmentLogger()
	publisher := events.NewMockEventPublisher(utils.ToSlogLogger(logger))
	generator := NewQuizGeneratorWithSource(
		rand.New(rand.NewSource(1)),
		func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	)

	service := NewQuizService(
		repositories.NewMemoryCatalogRepository(),
		repositories.NewStaticLessonRepository(),
		fetcher,
		cache.NewMemoryStore(),
		publisher,
		generator,
		logger,
	)
	return &quizServiceFixture{service: service, fetcher: fetcher, publisher: publisher}
}

func TestGetQuiz_GeneratesAndCaches(t *testing.T) {
	fetcher := &stubFetcher{page: richPage()}
	fx := newQuizServiceFixture(fetcher)
	ctx := context.Background()
	config := models.DifficultyConfig{Easy: 2, Medium: 2, Hard: 2}

	first, err := fx.service.GetQuiz(ctx, "loop-fundamentals", config)
	require.NoError(t, err)
	assert.Len(t, first, config.Total())

	// Catalog title resolves to a derived page title.
	require.Len(t, fetcher.titles, 1)
	assert.Equal(t, "Python_Loop_Fundamentals", fetcher.titles[0])

	// An identical request is served from the quiz cache.
	second, err := fx.service.GetQuiz(ctx, "loop-fundamentals", config)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, fetcher.calls)
}

func TestGetQuiz_SourcePageCachedAcrossConfigs(t *testing.T) {
	fetcher := &stubFetcher{page: richPage()}
	fx := newQuizServiceFixture(fetcher)
	ctx := context.Background()

	_, err := fx.service.GetQuiz(ctx, "loop-fundamentals", models.DifficultyConfig{Easy: 2})
	require.NoError(t, err)

	// A different mix misses the quiz cache but reuses the cached page.
	_, err = fx.service.GetQuiz(ctx, "loop-fundamentals", models.DifficultyConfig{Easy: 4})
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
}

func TestGetQuiz_UnknownLessonFallsBack(t *testing.T) {
	fetcher := &stubFetcher{page: richPage()}
	fx := newQuizServiceFixture(fetcher)

	items, err := fx.service.GetQuiz(context.Background(), "no-such-lesson", models.DifficultyConfig{Easy: 2})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
	assert.Zero(t, fetcher.calls)
}

func TestGetQuiz_FetchFailureServesStaticKey(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("upstream down")}
	fx := newQuizServiceFixture(fetcher)

	items, err := fx.service.GetQuiz(context.Background(), "loop-fundamentals", models.DifficultyConfig{Easy: 2})
	require.NoError(t, err)

	// The static answer key for the lesson backs the response.
	require.Len(t, items, 3)
	assert.Equal(t, "loop-q1", items[0].ID)
}

func TestGetQuiz_PublishesGeneratedEvent(t *testing.T) {
	fetcher := &stubFetcher{page: richPage()}
	fx := newQuizServiceFixture(fetcher)
	config := models.DifficultyConfig{Easy: 1, Medium: 1, Hard: 1}

	_, err := fx.service.GetQuiz(context.Background(), "loop-fundamentals", config)
	require.NoError(t, err)

	published := fx.publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventQuizGenerated, published[0].Type)
	assert.Equal(t, "loop-fundamentals", published[0].Payload["lesson_id"])
	assert.Equal(t, QuizCacheKey("loop-fundamentals", config), published[0].Payload["cache_key"])
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/learnmate/coordinator/internal/cache"
	"github.com/learnmate/coordinator/internal/clients/wikipedia"
	"github.com/learnmate/coordinator/internal/events"
	"github.com/learnmate/coordinator/internal/models"
	"github.com/learnmate/coordinator/internal/repositories"
	"github.com/learnmate/coordinator/internal/utils"
)

const (
	// Article content is stable; quiz sets are cheaper to regenerate.
	sourcePageTTL = 24 * time.Hour
	quizSetTTL    = 12 * time.Hour
)

// QuizService orchestrates the generation pipeline: cache lookups,
// catalog resolution, source fetch, synthesis, and the static fallback.
type QuizService struct {
	catalog   repositories.CatalogRepository
	lessons   repositories.LessonRepository
	fetcher   wikipedia.Fetcher
	cache     cache.Service
	publisher events.EventPublisher
	generator *QuizGenerator
	logger    utils.Logger
}

func NewQuizService(
	catalog repositories.CatalogRepository,
	lessons repositories.LessonRepository,
	fetcher wikipedia.Fetcher,
	cacheService cache.Service,
	publisher events.EventPublisher,
	generator *QuizGenerator,
	logger utils.Logger,
) *QuizService {
	return &QuizService{
		catalog:   catalog,
		lessons:   lessons,
		fetcher:   fetcher,
		cache:     cacheService,
		publisher: publisher,
		generator: generator,
		logger:    logger,
	}
}

// QuizCacheKey builds the cache key for a lesson and difficulty mix.
// Different mixes must never share a cached quiz set.
func QuizCacheKey(lessonID string, config models.DifficultyConfig) string {
	return fmt.Sprintf("%s_%d_%d_%d", lessonID, config.Easy, config.Medium, config.Hard)
}

func quizStoreKey(cacheKey string) string   { return "quiz:" + cacheKey }
func sourceStoreKey(lessonID string) string { return "source:" + lessonID }

// GetQuiz returns the quiz set for a lesson. Identical requests within
// the quiz TTL are served from cache. When the lesson has no catalog
// entry or source content cannot be fetched, the static answer key is
// returned instead; an empty slice means the lesson has neither.
func (s *QuizService) GetQuiz(ctx context.Context, lessonID string, config models.DifficultyConfig) ([]models.QuizItem, error) {
	cacheKey := QuizCacheKey(lessonID, config)

	var cached []models.QuizItem
	if err := s.cache.Get(ctx, quizStoreKey(cacheKey), &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.LogError(err, "Quiz cache read failed", "cache_key", cacheKey)
	}

	subject, err := s.catalog.GetByID(ctx, lessonID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			s.logger.LogError(err, "Catalog lookup failed", "lesson_id", lessonID)
		}
		return s.fallbackItems(ctx, lessonID)
	}

	page, err := s.sourcePage(ctx, lessonID, subject.Title)
	if err != nil {
		s.logger.LogError(err, "Failed to generate quiz from source content", "lesson_id", lessonID)
		return s.fallbackItems(ctx, lessonID)
	}

	questions := s.generator.Generate(page, config)

	if err := s.cache.Set(ctx, quizStoreKey(cacheKey), questions, quizSetTTL); err != nil {
		s.logger.LogError(err, "Quiz cache write failed", "cache_key", cacheKey)
	}

	s.publishGenerated(ctx, lessonID, len(questions), cacheKey)

	return questions, nil
}

// sourcePage returns cached article content for the lesson or fetches
// and caches it.
func (s *QuizService) sourcePage(ctx context.Context, lessonID, subjectTitle string) (*models.SourcePage, error) {
	var cached models.SourcePage
	if err := s.cache.Get(ctx, sourceStoreKey(lessonID), &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.LogError(err, "Source cache read failed", "lesson_id", lessonID)
	}

	pageTitle := wikipedia.SubjectPageTitle(subjectTitle)
	page, err := s.fetcher.FetchSubjectData(ctx, pageTitle)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, sourceStoreKey(lessonID), page, sourcePageTTL); err != nil {
		s.logger.LogError(err, "Source cache write failed", "lesson_id", lessonID)
	}
	return page, nil
}

// fallbackItems serves the static answer key when generation is not
// possible. Unknown lessons yield an empty set, not an error.
func (s *QuizService) fallbackItems(ctx context.Context, lessonID string) ([]models.QuizItem, error) {
	items, err := s.lessons.AnswerKey(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.QuizItem{}
	}
	return items, nil
}

func (s *QuizService) publishGenerated(ctx context.Context, lessonID string, itemCount int, cacheKey string) {
	if s.publisher == nil {
		return
	}
	event := events.NewQuizGeneratedEvent(lessonID, itemCount, cacheKey)
	if err := s.publisher.PublishLearningEvent(ctx, event); err != nil {
		s.logger.LogError(err, "Failed to publish quiz generated event", "lesson_id", lessonID)
	}
}

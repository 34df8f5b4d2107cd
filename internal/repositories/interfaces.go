package repositories

import (
	"context"
	"errors"

	"github.com/learnmate/coordinator/internal/models"
)

// ErrNotFound is returned by every repository when a lookup misses.
// Services translate it into their own sentinel errors.
var ErrNotFound = errors.New("repository: record not found")

// CatalogRepository serves course catalog entries. The default
// implementation is an in-memory seed; a Postgres implementation is used
// when DATABASE_URL is configured.
type CatalogRepository interface {
	List(ctx context.Context) ([]models.CatalogItem, error)
	GetByID(ctx context.Context, id string) (*models.CatalogItem, error)
}

// LessonRepository serves static lesson content, lesson plans and the
// per-lesson fallback answer keys used when quiz generation is unavailable.
type LessonRepository interface {
	GetContent(ctx context.Context, lessonID string) (*models.LessonContent, error)
	// GetPlan falls back to the default plan for unknown lessons.
	GetPlan(ctx context.Context, lessonID string) (models.LessonPlan, error)
	DefaultPlan(ctx context.Context) (models.LessonPlan, error)
	// AnswerKey returns the static quiz items for a lesson; empty when none.
	AnswerKey(ctx context.Context, lessonID string) ([]models.QuizItem, error)
}

// VideoRepository stores peer video metadata.
type VideoRepository interface {
	List(ctx context.Context) ([]models.PeerVideo, error)
	GetByID(ctx context.Context, id string) (*models.PeerVideo, error)
	// Prepend inserts a new video at the head of the feed.
	Prepend(ctx context.Context, video models.PeerVideo) error
	AddLike(ctx context.Context, id string) (*models.PeerVideo, error)
}

// ModerationRepository stores the moderation queue.
type ModerationRepository interface {
	List(ctx context.Context) ([]models.ModerationItem, error)
	Prepend(ctx context.Context, item models.ModerationItem) error
	UpdateStatus(ctx context.Context, id string, status models.ModerationStatus) (*models.ModerationItem, error)
}

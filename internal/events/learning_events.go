package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventQuizGenerated     EventType = "quiz.generated"
	EventLessonCompleted   EventType = "lesson.completed"
	EventModerationUpdated EventType = "moderation.updated"
)

const (
	eventSource  = "coordinator-service"
	eventVersion = "1.0"
)

// LearningEvent is the envelope published to the learning topic. Payload
// holds the event-specific fields.
type LearningEvent struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Source    string         `json:"source"`
	Version   string         `json:"version"`
	Timestamp time.Time      `json:"timestamp"`
	Payload   map[string]any `json:"payload"`
}

func newLearningEvent(eventType EventType, payload map[string]any) *LearningEvent {
	return &LearningEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Source:    eventSource,
		Version:   eventVersion,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// NewQuizGeneratedEvent records a successful quiz generation run.
func NewQuizGeneratedEvent(lessonID string, itemCount int, cacheKey string) *LearningEvent {
	return newLearningEvent(EventQuizGenerated, map[string]any{
		"lesson_id":  lessonID,
		"item_count": itemCount,
		"cache_key":  cacheKey,
	})
}

// NewLessonCompletedEvent records a learner finishing a lesson.
func NewLessonCompletedEvent(lessonID, sessionID string) *LearningEvent {
	return newLearningEvent(EventLessonCompleted, map[string]any{
		"lesson_id":  lessonID,
		"session_id": sessionID,
	})
}

// NewModerationUpdatedEvent records a moderation status change.
func NewModerationUpdatedEvent(itemID string, status string) *LearningEvent {
	return newLearningEvent(EventModerationUpdated, map[string]any{
		"item_id": itemID,
		"status":  status,
	})
}

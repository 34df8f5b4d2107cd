package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/learnmate/coordinator/internal/models"
	"github.com/learnmate/coordinator/internal/repositories"
)

// SessionService tracks learner sessions in memory. Sessions are
// ephemeral; restarting the service clears them.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]models.SessionSummary
	lessons  repositories.LessonRepository
}

func NewSessionService(lessons repositories.LessonRepository) *SessionService {
	return &SessionService{
		sessions: make(map[string]models.SessionSummary),
		lessons:  lessons,
	}
}

// CreateSession starts a session seeded with the default lesson plan.
// The caller's topic replaces the plan topic; the microlessons stay the
// plan's own.
func (s *SessionService) CreateSession(ctx context.Context, topic string) (*models.SessionSummary, error) {
	basePlan, err := s.lessons.DefaultPlan(ctx)
	if err != nil {
		return nil, err
	}

	activeLessonID := "loop-fundamentals"
	if len(basePlan.Microlessons) > 0 {
		activeLessonID = basePlan.Microlessons[0].ID
	}

	summary := models.SessionSummary{
		SessionID:      uuid.NewString(),
		ActiveLessonID: activeLessonID,
		LessonPlan: models.LessonPlan{
			Topic:        topic,
			Microlessons: basePlan.Microlessons,
		},
	}

	s.mu.Lock()
	s.sessions[summary.SessionID] = summary
	s.mu.Unlock()

	return &summary, nil
}

func (s *SessionService) GetSession(sessionID string) (*models.SessionSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	summary, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &summary, nil
}

// UpdateActiveLesson points an existing session at a new lesson.
// Unknown sessions are ignored, matching the forgiving completion flow.
func (s *SessionService) UpdateActiveLesson(sessionID, lessonID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	summary, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	summary.ActiveLessonID = lessonID
	s.sessions[sessionID] = summary
}

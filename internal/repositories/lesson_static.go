package repositories

import (
	"context"

	"github.com/learnmate/coordinator/internal/models"
)

const defaultPlanID = "loop-fundamentals"

type staticLessonRepository struct {
	plans      map[string]models.LessonPlan
	content    map[string]models.LessonContent
	answerKeys map[string][]models.QuizItem
}

// NewStaticLessonRepository serves the built-in lesson tables.
func NewStaticLessonRepository() LessonRepository {
	return &staticLessonRepository{
		plans:      seedLessonPlans(),
		content:    seedLessonContent(),
		answerKeys: seedAnswerKeys(),
	}
}

func (r *staticLessonRepository) GetContent(ctx context.Context, lessonID string) (*models.LessonContent, error) {
	content, ok := r.content[lessonID]
	if !ok {
		return nil, ErrNotFound
	}
	return &content, nil
}

func (r *staticLessonRepository) GetPlan(ctx context.Context, lessonID string) (models.LessonPlan, error) {
	if plan, ok := r.plans[lessonID]; ok {
		return plan, nil
	}
	return r.DefaultPlan(ctx)
}

func (r *staticLessonRepository) DefaultPlan(ctx context.Context) (models.LessonPlan, error) {
	if plan, ok := r.plans[defaultPlanID]; ok {
		return plan, nil
	}
	return models.LessonPlan{Topic: "Python Loop Fundamentals", Microlessons: []models.Microlesson{}}, nil
}

func (r *staticLessonRepository) AnswerKey(ctx context.Context, lessonID string) ([]models.QuizItem, error) {
	return r.answerKeys[lessonID], nil
}

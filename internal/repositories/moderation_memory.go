package repositories

import (
	"context"
	"sync"

	"github.com/learnmate/coordinator/internal/models"
)

type memoryModerationRepository struct {
	mu    sync.Mutex
	queue []models.ModerationItem
}

// NewMemoryModerationRepository serves the seeded moderation queue from memory.
func NewMemoryModerationRepository() ModerationRepository {
	return &memoryModerationRepository{queue: SeedModerationQueue()}
}

func (r *memoryModerationRepository) List(ctx context.Context) ([]models.ModerationItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	queue := make([]models.ModerationItem, len(r.queue))
	copy(queue, r.queue)
	return queue, nil
}

func (r *memoryModerationRepository) Prepend(ctx context.Context, item models.ModerationItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append([]models.ModerationItem{item}, r.queue...)
	return nil
}

func (r *memoryModerationRepository) UpdateStatus(ctx context.Context, id string, status models.ModerationStatus) (*models.ModerationItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.queue {
		if r.queue[i].ID == id {
			r.queue[i].Status = status
			item := r.queue[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

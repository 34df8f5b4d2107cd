package repositories

import (
	"context"
	"sync"

	"github.com/learnmate/coordinator/internal/models"
)

type memoryVideoRepository struct {
	mu     sync.Mutex
	videos []models.PeerVideo
}

// NewMemoryVideoRepository serves the seeded peer video feed from memory.
func NewMemoryVideoRepository() VideoRepository {
	return &memoryVideoRepository{videos: SeedVideos()}
}

func (r *memoryVideoRepository) List(ctx context.Context) ([]models.PeerVideo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	videos := make([]models.PeerVideo, len(r.videos))
	copy(videos, r.videos)
	return videos, nil
}

func (r *memoryVideoRepository) GetByID(ctx context.Context, id string) (*models.PeerVideo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.videos {
		if r.videos[i].ID == id {
			video := r.videos[i]
			return &video, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryVideoRepository) Prepend(ctx context.Context, video models.PeerVideo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.videos = append([]models.PeerVideo{video}, r.videos...)
	return nil
}

func (r *memoryVideoRepository) AddLike(ctx context.Context, id string) (*models.PeerVideo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.videos {
		if r.videos[i].ID == id {
			r.videos[i].Likes++
			video := r.videos[i]
			return &video, nil
		}
	}
	return nil, ErrNotFound
}

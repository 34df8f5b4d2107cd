package repositories

import (
	"context"

	"github.com/learnmate/coordinator/internal/models"
)

type memoryCatalogRepository struct {
	items []models.CatalogItem
}

// NewMemoryCatalogRepository serves the seeded catalog from memory.
func NewMemoryCatalogRepository() CatalogRepository {
	return &memoryCatalogRepository{items: SeedCatalog()}
}

func (r *memoryCatalogRepository) List(ctx context.Context) ([]models.CatalogItem, error) {
	items := make([]models.CatalogItem, len(r.items))
	copy(items, r.items)
	return items, nil
}

func (r *memoryCatalogRepository) GetByID(ctx context.Context, id string) (*models.CatalogItem, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

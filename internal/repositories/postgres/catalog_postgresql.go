package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/learnmate/coordinator/internal/models"
	"github.com/learnmate/coordinator/internal/repositories"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository migrates the catalog table and seeds it with the
// built-in courses when empty.
func NewCatalogRepository(db *gorm.DB) (repositories.CatalogRepository, error) {
	if err := db.AutoMigrate(&models.CatalogItem{}); err != nil {
		return nil, fmt.Errorf("failed to migrate catalog schema: %w", err)
	}

	var count int64
	if err := db.Model(&models.CatalogItem{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to inspect catalog table: %w", err)
	}
	if count == 0 {
		if err := db.Create(repositories.SeedCatalog()).Error; err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	return &catalogRepository{db: db}, nil
}

func (r *catalogRepository) List(ctx context.Context) ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	if err := r.db.WithContext(ctx).Order("title").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *catalogRepository) GetByID(ctx context.Context, id string) (*models.CatalogItem, error) {
	var item models.CatalogItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

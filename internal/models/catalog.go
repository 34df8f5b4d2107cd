package models

import (
	"time"

	"gorm.io/datatypes"
)

type CourseDifficulty string

const (
	CourseBeginner     CourseDifficulty = "beginner"
	CourseIntermediate CourseDifficulty = "intermediate"
	CourseAdvanced     CourseDifficulty = "advanced"
)

// CatalogItem is a course entry. The JSON shape matches the frontend
// contract; gorm tags apply only when the Postgres-backed repository is
// in use.
type CatalogItem struct {
	ID          string           `json:"id" gorm:"primaryKey;size:64"`
	Title       string           `json:"title" gorm:"not null;size:200"`
	Description string           `json:"description" gorm:"type:text"`
	Tags        datatypes.JSON   `json:"tags" gorm:"type:jsonb"`
	Difficulty  CourseDifficulty `json:"difficulty" gorm:"size:20"`
	Duration    int              `json:"duration"`
	CoverImage  string           `json:"coverImage" gorm:"size:255"`
	LastUpdated time.Time        `json:"lastUpdated"`
}

func (CatalogItem) TableName() string {
	return "catalog_items"
}

// CourseInsights is the enrichment payload for a catalog entry. The
// overview comes from an external knowledge lookup when available; the
// remaining fields are curated per-title tables with generic fallbacks.
type CourseInsights struct {
	Overview              string   `json:"overview"`
	Benefits              []string `json:"benefits"`
	Importance            string   `json:"importance"`
	RealWorldApplications []string `json:"realWorldApplications"`
	IndustryDemand        string   `json:"industryDemand"`
	LearningTips          []string `json:"learningTips"`
}

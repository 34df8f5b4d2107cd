package models

import "time"

type VideoStatus string

const (
	VideoPublished VideoStatus = "published"
	VideoPending   VideoStatus = "pending"
	VideoFlagged   VideoStatus = "flagged"
)

type PeerVideo struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Author       string      `json:"author"`
	AuthorAvatar string      `json:"authorAvatar"`
	Duration     int         `json:"duration"`
	Tags         []string    `json:"tags"`
	Transcript   string      `json:"transcript"`
	Thumbnail    string      `json:"thumbnail"`
	VideoURL     string      `json:"videoUrl"`
	Likes        int         `json:"likes"`
	Status       VideoStatus `json:"status"`
	LessonID     string      `json:"lessonId"`
	SubmittedAt  time.Time   `json:"submittedAt"`
	Topic        string      `json:"topic"`
	Subtopic     string      `json:"subtopic"`
}

type ModerationSeverity string

const (
	SeverityLow    ModerationSeverity = "low"
	SeverityMedium ModerationSeverity = "medium"
	SeverityHigh   ModerationSeverity = "high"
)

type ModerationStatus string

const (
	ModerationOpen     ModerationStatus = "open"
	ModerationResolved ModerationStatus = "resolved"
)

type ModerationItem struct {
	ID          string             `json:"id"`
	VideoID     string             `json:"videoId"`
	Reason      string             `json:"reason"`
	Severity    ModerationSeverity `json:"severity"`
	SubmittedAt time.Time          `json:"submittedAt"`
	Status      ModerationStatus   `json:"status"`
}

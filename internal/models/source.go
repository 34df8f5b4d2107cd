package models

// SourceSection is one cleaned article section.
type SourceSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SourcePage is the cleaned encyclopedia content a quiz is generated from.
// Immutable once fetched; owned by the page cache for its TTL window.
type SourcePage struct {
	Title    string          `json:"title"`
	Extract  string          `json:"extract"`
	Sections []SourceSection `json:"sections"`
}

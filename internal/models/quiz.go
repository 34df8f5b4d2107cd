package models

type QuestionType string

const (
	MultipleChoice QuestionType = "mcq"
	ShortAnswer    QuestionType = "short"
	Code           QuestionType = "code"
)

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// QuizItem is the wire format consumed by the frontend quiz player.
// For multiple-choice items Answer is always one of Options.
type QuizItem struct {
	ID         string          `json:"id"`
	Prompt     string          `json:"prompt"`
	Type       QuestionType    `json:"type"`
	Difficulty DifficultyLevel `json:"difficulty"`
	Options    []string        `json:"options,omitempty"`
	Answer     string          `json:"answer"`
	Feedback   string          `json:"feedback"`
}

// DifficultyConfig holds the requested item count per tier. Counts are
// clamped to [0,50] before use.
type DifficultyConfig struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// Total returns the number of items a successful generation must produce.
func (c DifficultyConfig) Total() int {
	return c.Easy + c.Medium + c.Hard
}

type QuizResponse struct {
	ItemID string `json:"itemId"`
	Answer string `json:"answer"`
}

type QuizSubmission struct {
	LessonID  string         `json:"lessonId" validate:"required"`
	Responses []QuizResponse `json:"responses" validate:"required,dive"`
}

type FeedbackStatus string

const (
	FeedbackCorrect   FeedbackStatus = "correct"
	FeedbackIncorrect FeedbackStatus = "incorrect"
)

type ItemFeedback struct {
	ItemID string         `json:"itemId"`
	Status FeedbackStatus `json:"status"`
	Detail string         `json:"detail"`
}

type QuizResult struct {
	Score           int            `json:"score"`
	MasteryEstimate int            `json:"masteryEstimate"`
	Feedback        []ItemFeedback `json:"feedback"`
}

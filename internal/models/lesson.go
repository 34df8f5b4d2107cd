package models

type Microlesson struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Objectives      []string `json:"objectives"`
	BloomLevel      string   `json:"bloomLevel"`
	TimeEstimate    int      `json:"timeEstimate"`
	Prerequisites   []string `json:"prerequisites"`
	RecommendedQuiz bool     `json:"recommendedQuiz"`
	Resources       []string `json:"resources"`
}

type LessonPlan struct {
	Topic        string        `json:"topic"`
	Microlessons []Microlesson `json:"microlessons"`
}

type LessonContent struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	CodeExample string   `json:"codeExample,omitempty"`
	FollowUps   []string `json:"followUps"`
	Hints       []string `json:"hints"`
}

type SessionSummary struct {
	SessionID      string     `json:"sessionId"`
	ActiveLessonID string     `json:"activeLessonId"`
	LessonPlan     LessonPlan `json:"lessonPlan"`
}

package services

import "strings"

// blockedTerms is the transcript screening list. Deliberately small;
// real moderation happens in the review queue.
var blockedTerms = []string{"badword", "curse", "nsfw"}

// ContainsProfanity reports whether text trips the automated screening
// list.
func ContainsProfanity(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range blockedTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// CoachService produces rule-based feedback on learner code drafts for
// the iteration lessons.
type CoachService struct{}

func NewCoachService() *CoachService {
	return &CoachService{}
}

// CodeFeedback inspects a code draft and returns a coaching hint.
func (s *CoachService) CodeFeedback(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "Paste your draft code to receive feedback."
	}
	if !strings.Contains(trimmed, "for") && !strings.Contains(trimmed, "while") {
		return "Try using a loop construct here. The lesson focuses on iteration primitives."
	}
	if strings.Contains(trimmed, "while True") {
		return "Consider adding a termination condition instead of using a bare while True."
	}
	if strings.Contains(trimmed, "range") && !strings.Contains(trimmed, "enumerate") {
		return "Great use of range. Remember enumerate gives you both index and value when you need them."
	}
	return "Looks solid. Run through the quiz to validate your understanding and consider annotating invariants."
}

package services

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/learnmate/coordinator/internal/models"
	"github.com/learnmate/coordinator/internal/repositories"
	"github.com/learnmate/coordinator/internal/utils"
)

// codeAnswerPrefixLength is how much of the expected code snippet must
// appear in a code response to count as correct.
const codeAnswerPrefixLength = 10

var answerWhitespacePattern = regexp.MustCompile(`\s+`)

// GradingService scores quiz submissions against a lesson's static
// answer key. The score denominator is the full key length, so skipped
// items count against the learner.
type GradingService struct {
	lessons repositories.LessonRepository
	logger  utils.Logger
}

func NewGradingService(lessons repositories.LessonRepository, logger utils.Logger) *GradingService {
	return &GradingService{lessons: lessons, logger: logger}
}

// Grade evaluates a submission. Responses for unknown item IDs are
// ignored, and each key item is graded at most once, so duplicated
// responses cannot push the score past 100. A lesson with no answer
// key grades to zero with empty feedback.
func (s *GradingService) Grade(ctx context.Context, submission models.QuizSubmission) (*models.QuizResult, error) {
	items, err := s.lessons.AnswerKey(ctx, submission.LessonID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.QuizItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	feedback := make([]models.ItemFeedback, 0, len(submission.Responses))
	graded := make(map[string]bool, len(items))
	correct := 0
	for _, response := range submission.Responses {
		item, ok := byID[response.ItemID]
		if !ok || graded[response.ItemID] {
			continue
		}
		graded[response.ItemID] = true
		status := models.FeedbackIncorrect
		if evaluateAnswer(item, response.Answer) {
			status = models.FeedbackCorrect
			correct++
		}
		feedback = append(feedback, models.ItemFeedback{
			ItemID: response.ItemID,
			Status: status,
			Detail: item.Feedback,
		})
	}

	score := 0
	if len(items) > 0 {
		score = int(math.Round(float64(correct) / float64(len(items)) * 100))
	}
	mastery := int(math.Min(100, math.Round(float64(score)*0.8+20)))

	return &models.QuizResult{
		Score:           score,
		MasteryEstimate: mastery,
		Feedback:        feedback,
	}, nil
}

// evaluateAnswer compares a response to the key. Code answers match on
// the first codeAnswerPrefixLength characters of the expected snippet,
// short answers on substring containment with collapsed whitespace, and
// everything else on exact equality. All comparisons are trimmed and
// case-insensitive.
func evaluateAnswer(item models.QuizItem, answer string) bool {
	expected := strings.ToLower(strings.TrimSpace(item.Answer))
	received := strings.ToLower(strings.TrimSpace(answer))

	switch item.Type {
	case models.Code:
		prefix := expected
		if len(prefix) > codeAnswerPrefixLength {
			prefix = prefix[:codeAnswerPrefixLength]
		}
		return strings.Contains(received, prefix)
	case models.ShortAnswer:
		return strings.Contains(received, answerWhitespacePattern.ReplaceAllString(expected, " "))
	default:
		return expected == received
	}
}

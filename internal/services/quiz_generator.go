package services

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/learnmate/coordinator/internal/models"
)

const (
	// maxKeyTerms caps how many extracted terms feed question synthesis.
	maxKeyTerms = 20

	// Sentences below these lengths carry too little signal to build a
	// question around.
	minTermSentenceLength = 20
	minMCQSentenceLength  = 30
	minMCQSentenceWords   = 10
	minShortSentenceLen   = 20

	minTermLength = 3
	maxTermLength = 49
)

var (
	sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)
	capitalizedPattern   = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
	parentheticalPattern = regexp.MustCompile(`\(([^)]+)\)`)
)

// genericDistractors pads multiple-choice options when the source text
// yields too few key terms.
var genericDistractors = []string{
	"Data Processing", "System Architecture", "Network Protocol", "Algorithm Design",
	"User Interface", "Database Query", "Security Layer", "Performance Optimization",
}

var easyMCQTemplates = []string{
	"What is the primary purpose of %s?",
	"Which of the following is %s?",
	"What does %s refer to in this field?",
	"What is %s used for?",
}

var mediumMCQTemplates = []string{
	"How does %s relate to %s?",
	"What is the relationship between %s and %s?",
	"Which of the following best describes the connection between %s and %s?",
}

var hardMCQTemplates = []string{
	"In what specific scenario would you apply %s?",
	"What are the key considerations when implementing %s?",
	"Which of the following is NOT a valid use case for %s?",
}

var easyShortTemplates = []string{
	"Define %s in one sentence.",
	"What is %s?",
	"Explain what %s means.",
}

var mediumShortTemplates = []string{
	"Explain how %s works in practice.",
	"What are the main components of %s?",
	"Describe the process of %s.",
}

var hardShortTemplates = []string{
	"Analyze the advantages and disadvantages of %s.",
	"What are the potential challenges in implementing %s?",
	"Compare %s with alternative approaches.",
}

// QuizGenerator synthesizes quiz items from cleaned article text using
// term-extraction heuristics and templated prompts. Safe for concurrent
// use; the random source is guarded by a mutex.
type QuizGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewQuizGenerator creates a generator with a time-based random seed.
func NewQuizGenerator() *QuizGenerator {
	return NewQuizGeneratorWithSource(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// NewQuizGeneratorWithSource injects the random source and clock, which
// makes generation deterministic in tests.
func NewQuizGeneratorWithSource(rng *rand.Rand, now func() time.Time) *QuizGenerator {
	return &QuizGenerator{rng: rng, now: now}
}

// ExtractKeyTerms pulls candidate terms from text: capitalized words and
// parenthetical phrases in sentences long enough to matter, deduplicated
// in first-seen order and capped at maxKeyTerms.
func (g *QuizGenerator) ExtractKeyTerms(text string) []string {
	var terms []string
	for _, sentence := range sentenceSplitPattern.Split(text, -1) {
		if len(strings.TrimSpace(sentence)) <= minTermSentenceLength {
			continue
		}
		terms = append(terms, capitalizedPattern.FindAllString(sentence, -1)...)
		for _, match := range parentheticalPattern.FindAllStringSubmatch(sentence, -1) {
			terms = append(terms, match[1])
		}
	}
	return dedupeTerms(terms)
}

func dedupeTerms(terms []string) []string {
	seen := make(map[string]bool)
	unique := make([]string, 0, len(terms))
	for _, term := range terms {
		if seen[term] {
			continue
		}
		seen[term] = true
		if len(term) < minTermLength || len(term) > maxTermLength {
			continue
		}
		unique = append(unique, term)
		if len(unique) == maxKeyTerms {
			break
		}
	}
	return unique
}

// Generate produces quiz items for a source page. Each difficulty tier
// alternates between multiple-choice and short-answer prompts; when the
// source text is too thin for some slots, a bounded backfill pass
// redistributes the shortfall across tiers using multiple-choice items.
// The result never exceeds the configured total and may fall short when
// the text cannot support it.
func (g *QuizGenerator) Generate(page *models.SourcePage, config models.DifficultyConfig) []models.QuizItem {
	g.mu.Lock()
	defer g.mu.Unlock()

	keyTerms := g.ExtractKeyTerms(page.Extract)
	for _, section := range page.Sections {
		keyTerms = append(keyTerms, g.ExtractKeyTerms(section.Content)...)
	}
	keyTerms = dedupeTermsUnbounded(keyTerms)

	target := config.Total()
	questions := make([]models.QuizItem, 0, target)

	tiers := []struct {
		difficulty models.DifficultyLevel
		count      int
	}{
		{models.DifficultyEasy, config.Easy},
		{models.DifficultyMedium, config.Medium},
		{models.DifficultyHard, config.Hard},
	}

	for _, tier := range tiers {
		for j := 0; j < tier.count; j++ {
			var question *models.QuizItem
			if j%2 == 0 {
				question = g.multipleChoice(page.Extract, tier.difficulty, keyTerms)
			} else {
				question = g.shortAnswer(page.Extract, tier.difficulty, keyTerms)
			}
			if question != nil {
				questions = append(questions, *question)
			}
		}
	}

	// Backfill missing slots proportionally, bounded so a barren source
	// page cannot spin forever.
	if target > 0 {
		maxAttempts := 3 * target
		for attempts := 0; len(questions) < target && attempts < maxAttempts; attempts++ {
			remaining := target - len(questions)
			easyNeeded := min(remaining, max(1, remaining*config.Easy/target))
			mediumNeeded := min(remaining-easyNeeded, max(1, remaining*config.Medium/target))
			hardNeeded := remaining - easyNeeded - mediumNeeded

			fills := []struct {
				difficulty models.DifficultyLevel
				count      int
			}{
				{models.DifficultyEasy, easyNeeded},
				{models.DifficultyMedium, mediumNeeded},
				{models.DifficultyHard, hardNeeded},
			}
			for _, fill := range fills {
				for i := 0; i < fill.count && len(questions) < target; i++ {
					if question := g.multipleChoice(page.Extract, fill.difficulty, keyTerms); question != nil {
						questions = append(questions, *question)
					}
				}
			}
		}
	}

	if len(questions) > target {
		questions = questions[:target]
	}
	return questions
}

// dedupeTermsUnbounded deduplicates without the per-text cap; the merged
// term pool across extract and sections may legitimately exceed it.
func dedupeTermsUnbounded(terms []string) []string {
	seen := make(map[string]bool)
	unique := make([]string, 0, len(terms))
	for _, term := range terms {
		if seen[term] {
			continue
		}
		seen[term] = true
		unique = append(unique, term)
	}
	return unique
}

func longSentences(text string, minLength int) []string {
	var sentences []string
	for _, sentence := range sentenceSplitPattern.Split(text, -1) {
		if len(strings.TrimSpace(sentence)) > minLength {
			sentences = append(sentences, sentence)
		}
	}
	return sentences
}

func (g *QuizGenerator) newItemID() string {
	return fmt.Sprintf("q_%d_%d", g.now().UnixMilli(), g.rng.Int63())
}

func (g *QuizGenerator) pick(options []string) string {
	return options[g.rng.Intn(len(options))]
}

func (g *QuizGenerator) multipleChoice(context string, difficulty models.DifficultyLevel, keyTerms []string) *models.QuizItem {
	sentences := longSentences(context, minMCQSentenceLength)
	if len(sentences) < 2 {
		return nil
	}

	baseSentence := sentences[g.rng.Intn(len(sentences))]
	if len(strings.Fields(baseSentence)) < minMCQSentenceWords {
		return nil
	}

	switch difficulty {
	case models.DifficultyEasy:
		term := "this concept"
		if len(keyTerms) > 0 {
			term = keyTerms[g.rng.Intn(len(keyTerms))]
		}
		prompt := fmt.Sprintf(g.pick(easyMCQTemplates), term)

		options := append([]string{term}, g.distractors(term, keyTerms)...)
		if len(options) > 4 {
			options = options[:4]
		}
		return &models.QuizItem{
			ID:         g.newItemID(),
			Prompt:     prompt,
			Type:       models.MultipleChoice,
			Difficulty: difficulty,
			Options:    g.shuffle(options),
			Answer:     term,
			Feedback:   fmt.Sprintf("Based on the context: %s...", truncate(baseSentence, 100)),
		}

	case models.DifficultyMedium:
		if len(keyTerms) < 2 {
			return nil
		}
		term1 := keyTerms[g.rng.Intn(len(keyTerms))]
		term2 := keyTerms[g.rng.Intn(len(keyTerms))]
		if term1 == term2 {
			return nil
		}
		prompt := fmt.Sprintf(g.pick(mediumMCQTemplates), term1, term2)

		options := []string{
			"They are independent concepts",
			"One is a type of the other",
			"They work together in the same process",
			"One replaces the other in modern usage",
		}
		return &models.QuizItem{
			ID:         g.newItemID(),
			Prompt:     prompt,
			Type:       models.MultipleChoice,
			Difficulty: difficulty,
			Options:    g.shuffle(options),
			Answer:     options[1],
			Feedback:   fmt.Sprintf("In technical contexts, %s and %s often have hierarchical or complementary relationships.", term1, term2),
		}

	case models.DifficultyHard:
		term := "this technology"
		if len(keyTerms) > 0 {
			term = keyTerms[g.rng.Intn(len(keyTerms))]
		}
		prompt := fmt.Sprintf(g.pick(hardMCQTemplates), term)

		options := []string{
			"Basic data storage",
			"Complex algorithm implementation",
			"Real-time processing requirements",
			"Simple user interface design",
		}
		return &models.QuizItem{
			ID:         g.newItemID(),
			Prompt:     prompt,
			Type:       models.MultipleChoice,
			Difficulty: difficulty,
			Options:    g.shuffle(options),
			Answer:     options[3],
			Feedback:   fmt.Sprintf("%s is typically used for complex technical implementations rather than simple UI design.", term),
		}
	}

	return nil
}

func (g *QuizGenerator) shortAnswer(context string, difficulty models.DifficultyLevel, keyTerms []string) *models.QuizItem {
	sentences := longSentences(context, minShortSentenceLen)
	if len(sentences) < 1 {
		return nil
	}

	switch difficulty {
	case models.DifficultyEasy:
		term := "this concept"
		if len(keyTerms) > 0 {
			term = keyTerms[g.rng.Intn(len(keyTerms))]
		}
		return &models.QuizItem{
			ID:         g.newItemID(),
			Prompt:     fmt.Sprintf(g.pick(easyShortTemplates), term),
			Type:       models.ShortAnswer,
			Difficulty: difficulty,
			Answer:     term,
			Feedback:   "A short definition based on the context provided.",
		}

	case models.DifficultyMedium:
		term := "this process"
		if len(keyTerms) > 0 {
			term = keyTerms[g.rng.Intn(len(keyTerms))]
		}
		return &models.QuizItem{
			ID:         g.newItemID(),
			Prompt:     fmt.Sprintf(g.pick(mediumShortTemplates), term),
			Type:       models.ShortAnswer,
			Difficulty: difficulty,
			Answer:     "implementation of " + term,
			Feedback:   fmt.Sprintf("This requires understanding the practical application and components of %s.", term),
		}

	case models.DifficultyHard:
		term := "this approach"
		if len(keyTerms) > 0 {
			term = keyTerms[g.rng.Intn(len(keyTerms))]
		}
		return &models.QuizItem{
			ID:         g.newItemID(),
			Prompt:     fmt.Sprintf(g.pick(hardShortTemplates), term),
			Type:       models.ShortAnswer,
			Difficulty: difficulty,
			Answer:     "analysis of " + term,
			Feedback:   fmt.Sprintf("This requires critical thinking about the trade-offs and implementation challenges of %s.", term),
		}
	}

	return nil
}

// distractors returns up to two other key terms plus two generic fillers,
// skipping anything equal to the correct answer.
func (g *QuizGenerator) distractors(correctAnswer string, keyTerms []string) []string {
	var wrong []string
	for _, term := range keyTerms {
		if term != correctAnswer {
			wrong = append(wrong, term)
		}
		if len(wrong) == 2 {
			break
		}
	}
	for _, term := range genericDistractors[:2] {
		if term != correctAnswer {
			wrong = append(wrong, term)
		}
	}
	if len(wrong) > 3 {
		wrong = wrong[:3]
	}
	return wrong
}

func (g *QuizGenerator) shuffle(options []string) []string {
	shuffled := make([]string, len(options))
	copy(shuffled, options)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// truncate keeps at most n runes so multi-byte text is never split
// mid-character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

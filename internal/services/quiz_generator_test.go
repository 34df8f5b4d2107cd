package services

import (
	"math/rand"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnmate/coordinator/internal/models"
)

// richPage has enough long sentences and key terms to satisfy every
// question template.
func richPage() *models.SourcePage {
	return &models.SourcePage{
		Title: "Python",
		Extract: "The Python interpreter executes the Bytecode instructions one after another during Runtime. " +
			"The Compiler first transforms readable Syntax into a lower level representation before anything runs. " +
			"Modern Hardware executes these instructions while the Scheduler keeps every running program responsive.",
		Sections: []models.SourceSection{
			{
				Title:   "History",
				Content: "The Language was designed by Guido and refined over many Decades of community work and careful review.",
			},
		},
	}
}

func testGenerator() *QuizGenerator {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return NewQuizGeneratorWithSource(rand.New(rand.NewSource(42)), func() time.Time { return fixed })
}

func TestExtractKeyTerms(t *testing.T) {
	g := testGenerator()

	t.Run("capitalized and parenthetical terms in order", func(t *testing.T) {
		text := "The Python language (interpreter) is widely used today. " +
			"Algorithms and Data drive Computing forward every single day."
		terms := g.ExtractKeyTerms(text)
		assert.Equal(t, []string{"The", "Python", "interpreter", "Algorithms", "Data", "Computing"}, terms)
	})

	t.Run("short sentences are skipped", func(t *testing.T) {
		terms := g.ExtractKeyTerms("Go wins. Ok.")
		assert.Empty(t, terms)
	})

	t.Run("term length bounds", func(t *testing.T) {
		text := "This sentence mentions something tiny (ab) and keeps going for a while."
		terms := g.ExtractKeyTerms(text)
		assert.NotContains(t, terms, "ab")
	})

	t.Run("capped at twenty terms", func(t *testing.T) {
		words := []string{
			"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel",
			"India", "Juliett", "Kilo", "Lima", "Mike", "November", "Oscar", "Papa",
			"Quebec", "Romeo", "Sierra", "Tango", "Uniform", "Victor", "Whiskey", "Xray", "Yankee",
		}
		terms := g.ExtractKeyTerms(strings.Join(words, " ") + ".")
		assert.Len(t, terms, 20)
	})
}

func TestGenerate_ExactTotal(t *testing.T) {
	g := testGenerator()
	config := models.DifficultyConfig{Easy: 2, Medium: 2, Hard: 2}

	questions := g.Generate(richPage(), config)
	require.Len(t, questions, config.Total())

	seen := make(map[string]bool)
	for _, q := range questions {
		assert.False(t, seen[q.ID], "item IDs must be unique")
		seen[q.ID] = true
		assert.NotEmpty(t, q.Prompt)
		assert.NotEmpty(t, q.Answer)
		if q.Type == models.MultipleChoice {
			assert.Contains(t, q.Options, q.Answer, "answer must be one of the options")
		} else {
			assert.Empty(t, q.Options)
		}
	}
}

func TestGenerate_ZeroConfig(t *testing.T) {
	g := testGenerator()
	questions := g.Generate(richPage(), models.DifficultyConfig{})
	assert.Empty(t, questions)
}

func TestGenerate_ThinSourceTerminates(t *testing.T) {
	g := testGenerator()
	page := &models.SourcePage{Title: "Stub", Extract: "Too short."}

	questions := g.Generate(page, models.DifficultyConfig{Easy: 5, Medium: 5, Hard: 5})
	assert.Empty(t, questions)
}

func TestGenerate_TierAnswerShapes(t *testing.T) {
	t.Run("medium items", func(t *testing.T) {
		g := testGenerator()
		questions := g.Generate(richPage(), models.DifficultyConfig{Medium: 4})
		require.NotEmpty(t, questions)
		mediumSeen := 0
		for _, q := range questions {
			// Backfill may top up other tiers when a medium template
			// comes up empty; only assert on the medium items.
			if q.Difficulty != models.DifficultyMedium {
				continue
			}
			mediumSeen++
			switch q.Type {
			case models.MultipleChoice:
				assert.Equal(t, "One is a type of the other", q.Answer)
			case models.ShortAnswer:
				assert.True(t, strings.HasPrefix(q.Answer, "implementation of "))
			}
		}
		assert.GreaterOrEqual(t, mediumSeen, 2)
	})

	t.Run("hard items", func(t *testing.T) {
		g := testGenerator()
		questions := g.Generate(richPage(), models.DifficultyConfig{Hard: 2})
		require.NotEmpty(t, questions)
		for _, q := range questions {
			assert.Equal(t, models.DifficultyHard, q.Difficulty)
			switch q.Type {
			case models.MultipleChoice:
				assert.Equal(t, "Simple user interface design", q.Answer)
			case models.ShortAnswer:
				assert.True(t, strings.HasPrefix(q.Answer, "analysis of "))
			}
		}
	})

	t.Run("easy mcq uses a key term with four options", func(t *testing.T) {
		g := testGenerator()
		questions := g.Generate(richPage(), models.DifficultyConfig{Easy: 1})
		require.Len(t, questions, 1)
		q := questions[0]
		assert.Equal(t, models.MultipleChoice, q.Type)
		assert.Len(t, q.Options, 4)
		assert.Contains(t, q.Options, q.Answer)
		assert.True(t, strings.HasPrefix(q.Feedback, "Based on the context:"))
	})
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return fixed }
	g1 := NewQuizGeneratorWithSource(rand.New(rand.NewSource(7)), clock)
	g2 := NewQuizGeneratorWithSource(rand.New(rand.NewSource(7)), clock)

	config := models.DifficultyConfig{Easy: 3, Medium: 3, Hard: 3}
	assert.Equal(t, g1.Generate(richPage(), config), g2.Generate(richPage(), config))
}

func TestTruncate(t *testing.T) {
	t.Run("short strings pass through", func(t *testing.T) {
		assert.Equal(t, "loops", truncate("loops", 100))
	})

	t.Run("cuts on rune boundaries", func(t *testing.T) {
		in := strings.Repeat("a", 99) + "über"
		out := truncate(in, 100)
		assert.Equal(t, strings.Repeat("a", 99)+"ü", out)
		assert.True(t, utf8.ValidString(out))
	})
}

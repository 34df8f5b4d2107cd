package repositories

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/learnmate/coordinator/internal/models"
)

func jsonTags(tags ...string) datatypes.JSON {
	data, _ := json.Marshal(tags)
	return datatypes.JSON(data)
}

// SeedCatalog returns the built-in course catalog.
func SeedCatalog() []models.CatalogItem {
	now := time.Now()
	return []models.CatalogItem{
		{
			ID:          "loop-fundamentals",
			Title:       "Python Loop Fundamentals",
			Description: "Master for, while, and nested loops with visual animations and code walkthroughs.",
			Tags:        jsonTags("python", "loops", "iteration"),
			Difficulty:  models.CourseBeginner,
			Duration:    25,
			CoverImage:  "/assets/loops.png",
			LastUpdated: now,
		},
		{
			ID:          "recursion-visual",
			Title:       "Visual Recursion Patterns",
			Description: "Understand recursion using call stack visualisations and base case spotting.",
			Tags:        jsonTags("python", "recursion", "algorithms"),
			Difficulty:  models.CourseIntermediate,
			Duration:    30,
			CoverImage:  "/assets/recursion.png",
			LastUpdated: now,
		},
		{
			ID:          "data-structures",
			Title:       "Interactive Data Structures",
			Description: "Explore arrays, stacks, and queues with code sandboxes and adaptive quizzes.",
			Tags:        jsonTags("data structures", "python", "visual"),
			Difficulty:  models.CourseIntermediate,
			Duration:    35,
			CoverImage:  "/assets/data-structures.png",
			LastUpdated: now,
		},
	}
}

// SeedVideos returns the built-in peer video feed.
func SeedVideos() []models.PeerVideo {
	now := time.Now()
	return []models.PeerVideo{
		{
			ID:           "video-001",
			Title:        "Understanding range()",
			Author:       "Mira Shen",
			AuthorAvatar: "https://api.dicebear.com/6.x/initials/svg?seed=MS",
			Duration:     92,
			Tags:         []string{"loops", "python"},
			Transcript:   "I walk through range and enumerate with quick visuals.",
			Thumbnail:    "/assets/video-range.png",
			Likes:        128,
			Status:       models.VideoPublished,
			LessonID:     "loop-fundamentals",
			SubmittedAt:  now,
		},
		{
			ID:           "video-002",
			Title:        "Base cases in recursion",
			Author:       "Kai Patel",
			AuthorAvatar: "https://api.dicebear.com/6.x/initials/svg?seed=KP",
			Duration:     104,
			Tags:         []string{"recursion", "visual"},
			Transcript:   "Visually map the recursion tree and pinpoint the base case.",
			Thumbnail:    "/assets/video-recursion.png",
			Likes:        86,
			Status:       models.VideoPublished,
			LessonID:     "recursion-visual",
			SubmittedAt:  now,
		},
	}
}

// SeedModerationQueue returns the built-in moderation queue.
func SeedModerationQueue() []models.ModerationItem {
	return []models.ModerationItem{
		{
			ID:          "mod-001",
			VideoID:     "video-002",
			Reason:      "Automated flag: potential sensitive language in transcript segment 2.",
			Severity:    models.SeverityLow,
			SubmittedAt: time.Now(),
			Status:      models.ModerationOpen,
		},
	}
}

// seedLessonPlans returns the static lesson plans keyed by lesson id.
func seedLessonPlans() map[string]models.LessonPlan {
	return map[string]models.LessonPlan{
		"loop-fundamentals": {
			Topic: "Python Loop Fundamentals",
			Microlessons: []models.Microlesson{
				{
					ID:              "loop-fundamentals",
					Title:           "Loop Foundations",
					Objectives:      []string{"Understand iteration primitives", "Identify loop components"},
					BloomLevel:      "Understand",
					TimeEstimate:    12,
					Prerequisites:   []string{},
					RecommendedQuiz: true,
					Resources:       []string{"https://docs.python.org/3/tutorial/controlflow.html#for-statements"},
				},
				{
					ID:              "loop-patterns",
					Title:           "Loop Patterns and Variations",
					Objectives:      []string{"Apply loops to collections", "Use enumerate and range effectively"},
					BloomLevel:      "Apply",
					TimeEstimate:    9,
					Prerequisites:   []string{"loop-fundamentals"},
					RecommendedQuiz: true,
					Resources:       []string{"https://realpython.com/python-for-loop/"},
				},
				{
					ID:              "nested-loops",
					Title:           "Nested Loops and Complexity",
					Objectives:      []string{"Trace nested iterations", "Estimate complexity cost"},
					BloomLevel:      "Analyze",
					TimeEstimate:    11,
					Prerequisites:   []string{"loop-fundamentals", "loop-patterns"},
					RecommendedQuiz: true,
					Resources:       []string{"https://realpython.com/nested-loops-python/"},
				},
			},
		},
		"recursion-visual": {
			Topic: "Visual Recursion Patterns",
			Microlessons: []models.Microlesson{
				{
					ID:              "recursion-basics",
					Title:           "Recursion Mindset",
					Objectives:      []string{"Detect base case", "Describe recursive progression"},
					BloomLevel:      "Understand",
					TimeEstimate:    10,
					Prerequisites:   []string{"loop-fundamentals"},
					RecommendedQuiz: true,
					Resources:       []string{"https://realpython.com/python-recursion/"},
				},
				{
					ID:              "call-stack-visuals",
					Title:           "Call Stack Visualisations",
					Objectives:      []string{"Trace stack frames", "Explain unwinding"},
					BloomLevel:      "Analyze",
					TimeEstimate:    12,
					Prerequisites:   []string{"recursion-basics"},
					RecommendedQuiz: true,
					Resources:       []string{"https://visualgo.net/en/recursion"},
				},
			},
		},
		"data-structures": {
			Topic: "Interactive Data Structures",
			Microlessons: []models.Microlesson{
				{
					ID:              "arrays-overview",
					Title:           "Array Mechanics",
					Objectives:      []string{"Index elements", "Evaluate complexity"},
					BloomLevel:      "Understand",
					TimeEstimate:    8,
					Prerequisites:   []string{"loop-fundamentals"},
					RecommendedQuiz: true,
					Resources:       []string{"https://realpython.com/python-lists-tuples/"},
				},
				{
					ID:              "queues-stacks",
					Title:           "Queues and Stacks",
					Objectives:      []string{"Compare structures", "Select use cases"},
					BloomLevel:      "Apply",
					TimeEstimate:    9,
					Prerequisites:   []string{"arrays-overview"},
					RecommendedQuiz: true,
					Resources:       []string{"https://realpython.com/queue-in-python/"},
				},
			},
		},
	}
}

// seedLessonContent returns the static lesson bodies keyed by lesson id.
func seedLessonContent() map[string]models.LessonContent {
	return map[string]models.LessonContent{
		"loop-fundamentals": {
			ID:    "loop-fundamentals",
			Title: "Loop Foundations",
			Body: `<h2>Why loops?</h2>
<p>Loops let you repeat logic without copying code. In Python we primarily rely on <strong>for</strong> and <strong>while</strong> loops. A <em>for</em> loop iterates through each element of an iterable.</p>
<pre><code class="language-python">names = ["Avery", "Kai", "Mira"]
for name in names:
    print(f"Hello {name}")</code></pre>
<p>The lesson planner also tracks your comprehension. After each interaction the quiz agent adjusts difficulty while the emotion agent monitors typing cadence to detect frustration.</p>`,
			CodeExample: "numbers = [1, 2, 3]\ntotal = 0\nfor n in numbers:\n    total += n\nprint(total)",
			FollowUps:   []string{"Try converting the for loop into a while loop.", "How could you handle empty lists gracefully?"},
			Hints:       []string{"Remember that range(3) yields 0, 1, 2.", "You can use enumerate to access both index and value."},
		},
		"loop-patterns": {
			ID:    "loop-patterns",
			Title: "Loop Patterns and Variations",
			Body: `<h2>Structured loop patterns</h2>
<p>Classic loop patterns such as filter-map-reduce accelerate problem solving. Try refactoring repetitive code into comprehension patterns.</p>`,
			FollowUps: []string{"Rewrite imperative loops into list comprehensions.", "Introduce guard clauses inside loops."},
			Hints:     []string{"Comprehensions still allow conditional expressions."},
		},
		"nested-loops": {
			ID:    "nested-loops",
			Title: "Nested Loops and Complexity",
			Body: `<h2>Nested iteration</h2>
<p>Nested loops multiply the work performed. Visualise them as grids and remember to annotate invariants.</p>`,
			FollowUps: []string{"Sketch the iteration order before coding.", "Consider breaking early when possible."},
			Hints:     []string{"Use zip to combine iterables instead of manual nested loops where possible."},
		},
		"recursion-basics": {
			ID:    "recursion-basics",
			Title: "Recursion Mindset",
			Body: `<h2>Think recursively</h2>
<p>Every recursive routine needs a base case and a smaller subproblem. Draw the tree to visualise the breakdown.</p>`,
			FollowUps: []string{"State the base case out loud before coding.", "Model the recursion for three levels to ensure it converges."},
			Hints:     []string{"Make the problem smaller at each call.", "Return immediately when hitting the base case."},
		},
		"call-stack-visuals": {
			ID:    "call-stack-visuals",
			Title: "Call Stack Visualisations",
			Body: `<h2>Follow the call stack</h2>
<p>Track frame creation and unwinding to explain how results bubble up. Use diagrams to anchor intuition.</p>`,
			FollowUps: []string{"Record variable values at each level.", "Explain why unwinding stops at the base case."},
			Hints:     []string{"Keep a stack diagram nearby while coding."},
		},
		"arrays-overview": {
			ID:    "arrays-overview",
			Title: "Array Mechanics",
			Body: `<h2>Array review</h2>
<p>Arrays offer O(1) access but require contiguous memory. Practice translating between zero-based indices and human counting.</p>`,
			FollowUps: []string{"Benchmark appends versus inserts.", "Map array operations to time complexity."},
			Hints:     []string{"Remember that slicing copies in Python lists."},
		},
		"queues-stacks": {
			ID:    "queues-stacks",
			Title: "Queues and Stacks",
			Body: `<h2>Queue vs stack</h2>
<p>Both manage ordered collections but with different removal policies. Explore where breadth-first and depth-first traversals rely on them.</p>`,
			FollowUps: []string{"Simulate BFS and DFS on a simple graph.", "Replace recursion with a manual stack to understand control flow."},
			Hints:     []string{"Deque from collections works for both patterns."},
		},
	}
}

// seedAnswerKeys returns the static per-lesson quiz answer keys used for
// grading and as the generation fallback.
func seedAnswerKeys() map[string][]models.QuizItem {
	return map[string][]models.QuizItem{
		"loop-fundamentals": {
			{
				ID:         "loop-q1",
				Prompt:     "What does the following code output? <code>for i in range(3): print(i)</code>",
				Type:       models.MultipleChoice,
				Difficulty: models.DifficultyEasy,
				Options:    []string{"0 1 2", "1 2 3", "0 1 2 3", "It throws an error"},
				Answer:     "0 1 2",
				Feedback:   "range(3) yields 0, 1, 2 before stopping.",
			},
			{
				ID:         "loop-q2",
				Prompt:     "Convert a while loop that counts down from 5 into a for loop using range.",
				Type:       models.ShortAnswer,
				Difficulty: models.DifficultyMedium,
				Answer:     "for n in range(5, 0, -1): ...",
				Feedback:   "Use range with start, stop, step to count down.",
			},
			{
				ID:         "loop-q3",
				Prompt:     "Write code that iterates through a matrix and collects diagonal values.",
				Type:       models.Code,
				Difficulty: models.DifficultyMedium,
				Answer:     "diagonal = [matrix[i][i] for i in range(len(matrix))]",
				Feedback:   "Use enumerate or range paired with indexes to access diagonal elements.",
			},
		},
	}
}

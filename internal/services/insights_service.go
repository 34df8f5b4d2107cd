package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/learnmate/coordinator/internal/clients/knowledge"
	"github.com/learnmate/coordinator/internal/models"
	"github.com/learnmate/coordinator/internal/repositories"
	"github.com/learnmate/coordinator/internal/utils"
)

// InsightsService enriches catalog entries with an external overview and
// curated career guidance keyed by course title.
type InsightsService struct {
	catalog   repositories.CatalogRepository
	describer knowledge.Describer
	logger    utils.Logger
}

func NewInsightsService(catalog repositories.CatalogRepository, describer knowledge.Describer, logger utils.Logger) *InsightsService {
	return &InsightsService{catalog: catalog, describer: describer, logger: logger}
}

// CourseInsights builds the insights payload for a course. The overview
// lookup is best effort; a failed lookup falls back to a generated
// summary rather than failing the request.
func (s *InsightsService) CourseInsights(ctx context.Context, courseID string) (*models.CourseInsights, error) {
	course, err := s.catalog.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	overview, err := s.describer.Describe(ctx, course.Title)
	if err != nil {
		if !errors.Is(err, knowledge.ErrNoDescription) {
			s.logger.LogError(err, "Knowledge lookup failed", "course_id", courseID)
		}
		overview = fmt.Sprintf("Comprehensive course on %s covering fundamental and advanced concepts.", course.Title)
	}

	return &models.CourseInsights{
		Overview:              overview,
		Benefits:              courseBenefits(course.Title),
		Importance:            courseImportance(course.Title),
		RealWorldApplications: courseApplications(course.Title),
		IndustryDemand:        courseIndustryDemand(course.Title),
		LearningTips:          courseLearningTips(course.Title),
	}, nil
}

var benefitsByTitle = map[string][]string{
	"Data Structures & Algorithms": {
		"Master technical interview preparation for top tech companies",
		"Develop strong problem-solving and analytical skills",
		"Learn to write optimized, efficient code",
		"Understand computational complexity and performance optimization",
		"Build foundation for advanced system design",
	},
	"Object-Oriented Programming": {
		"Design scalable and maintainable software architectures",
		"Collaborate effectively on large codebases",
		"Implement industry-standard design patterns",
		"Build professional-grade applications",
		"Transition from procedural to object-oriented thinking",
	},
	"Database Management Systems": {
		"Design efficient and secure data storage systems",
		"Master SQL for data manipulation and analysis",
		"Optimize database performance and scalability",
		"Implement data integrity and security measures",
		"Work with modern NoSQL and big data technologies",
	},
	"Full-Stack Web Development": {
		"Build complete web applications from frontend to backend",
		"Deploy production-ready applications",
		"Master modern frameworks and tools used in industry",
		"Develop responsive, user-friendly interfaces",
		"Launch startups and freelance projects",
	},
	"System Design & Architecture": {
		"Design systems serving millions of users",
		"Understand distributed computing and scalability",
		"Make critical architectural decisions",
		"Ace system design interviews at major tech companies",
		"Lead technical projects and mentor teams",
	},
}

func courseBenefits(title string) []string {
	if benefits, ok := benefitsByTitle[title]; ok {
		return benefits
	}
	return []string{
		"Gain practical skills applicable to real-world projects",
		"Enhance career prospects and earning potential",
		"Build foundational knowledge for specialization",
		"Develop problem-solving and critical thinking abilities",
	}
}

var importanceByTitle = map[string]string{
	"Data Structures & Algorithms": "Essential foundation for all software engineering roles. Every technical interview at FAANG companies requires strong DSA knowledge. Critical for writing efficient code that performs well under load. Directly impacts application performance, scalability, and user experience.",
	"Object-Oriented Programming":  "Fundamental paradigm used in 90% of production software systems. Essential for collaboration on enterprise projects. Enables writing clean, maintainable code that can be extended and modified easily. Core requirement for senior engineering positions.",
	"Database Management Systems":  "Every application requires data storage and retrieval. Critical for data integrity, security, and performance. Database design decisions impact application scalability and user experience. High demand in industry for database optimization specialists.",
	"Full-Stack Web Development":   "Web is the primary platform for modern applications. Essential skill for building complete solutions independently. High market demand with competitive salaries. Enables rapid prototyping and building products that directly reach users.",
	"System Design & Architecture": "Required for senior engineer, architect, and leadership roles. Directly impacts millions of users and company revenue. Poor system design leads to scalability issues, downtime, and lost revenue. Critical differentiator in technical interviews.",
}

func courseImportance(title string) string {
	if importance, ok := importanceByTitle[title]; ok {
		return importance
	}
	return "This skill is important for career advancement and building professional-grade applications."
}

var applicationsByTitle = map[string][]string{
	"Data Structures & Algorithms": {
		"Google Search: Algorithms for indexing and ranking billions of web pages",
		"Facebook Timeline: Optimized algorithms for feed generation and ranking",
		"Uber Navigation: Complex graph algorithms for route optimization",
		"Netflix Recommendations: Algorithms for personalized content suggestion",
		"Trading Platforms: High-frequency trading algorithms requiring optimal performance",
	},
	"Object-Oriented Programming": {
		"Enterprise Banking Systems: Secure, scalable financial applications",
		"E-commerce Platforms: Complex product, order, and payment management",
		"Game Development: Character systems, entity management, game mechanics",
		"Mobile Applications: Well-architected apps with clean code",
		"Healthcare Systems: HIPAA-compliant systems managing patient data",
	},
	"Database Management Systems": {
		"Instagram: Managing billions of photos and relationships",
		"Amazon DynamoDB: NoSQL database supporting millions of transactions",
		"LinkedIn: Storing and querying professional profiles and connections",
		"Analytics Platforms: Processing petabytes of data for insights",
		"Real-time Gaming: Database optimization for millisecond response times",
	},
	"Full-Stack Web Development": {
		"Airbnb: Full-stack platform connecting hosts and guests globally",
		"Stripe: Secure payment processing system with web interface",
		"Slack: Real-time messaging and collaboration platform",
		"Spotify: Streaming service with complex frontend and backend",
		"Twitter: High-traffic social media platform handling billions of tweets",
	},
	"System Design & Architecture": {
		"WhatsApp: System designed to handle 100 billion messages daily",
		"YouTube: Serving billions of videos to billions of users",
		"Amazon: E-commerce system managing trillions in transactions",
		"Discord: Real-time communication system for millions of concurrent users",
		"Netflix: Distributed streaming system with adaptive quality based on network",
	},
}

func courseApplications(title string) []string {
	if applications, ok := applicationsByTitle[title]; ok {
		return applications
	}
	return []string{
		"Practical implementation in modern applications",
		"Solving real-world problems in production systems",
	}
}

var industryDemandByTitle = map[string]string{
	"Data Structures & Algorithms": "Extremely High - 95% of tech companies require DSA knowledge for technical interviews. Average salary premium: $20,000-$40,000 for strong DSA skills.",
	"Object-Oriented Programming":  "Critical - Required for most software development positions. Used across industries from startups to Fortune 500 companies. Competitive advantage in job market.",
	"Database Management Systems":  "High Demand - Database engineers earn 15-20% more than average developers. Skills in optimization are highly sought after.",
	"Full-Stack Web Development":   "Very High - Web development is among the most in-demand skills. Independent deployment capabilities make you valuable to startups.",
	"System Design & Architecture": "Extreme Demand - Senior engineers designing systems command premium salaries ($200k-$500k+). Shortage of experienced architects globally.",
}

func courseIndustryDemand(title string) string {
	if demand, ok := industryDemandByTitle[title]; ok {
		return demand
	}
	return "In high demand across technology industry with competitive compensation."
}

var learningTipsByTitle = map[string][]string{
	"Data Structures & Algorithms": {
		"Code along with video tutorials to build muscle memory",
		"Practice on platforms like LeetCode and CodeSignal daily",
		"Focus on understanding complexity analysis, not just implementation",
		"Solve problems in multiple ways to understand different approaches",
		"Join competitive programming communities for peer learning",
	},
	"Object-Oriented Programming": {
		"Study real-world code from popular open-source projects",
		"Practice refactoring procedural code into OOP patterns",
		"Read \"Clean Code\" and \"Design Patterns\" alongside courses",
		"Build small projects using different OOP principles",
		"Review code from senior developers and understand their patterns",
	},
	"Database Management Systems": {
		"Set up local database instances and practice SQL daily",
		"Learn database design by normalizing real-world data",
		"Analyze query execution plans to understand optimization",
		"Experiment with both SQL and NoSQL databases",
		"Study real database architectures of popular platforms",
	},
	"Full-Stack Web Development": {
		"Build real projects, not just tutorials",
		"Deploy applications to production to learn DevOps",
		"Contribute to open-source web projects",
		"Learn browser DevTools and debugging techniques",
		"Stay updated with rapidly evolving web technologies",
	},
	"System Design & Architecture": {
		"Study architecture blogs from tech companies (Twitter, Netflix, LinkedIn)",
		"Practice designing systems for famous apps (Instagram, Uber, etc.)",
		"Understand trade-offs between different architectural choices",
		"Read academic papers on distributed systems",
		"Mock interview with senior engineers for feedback",
	},
}

func courseLearningTips(title string) []string {
	if tips, ok := learningTipsByTitle[title]; ok {
		return tips
	}
	return []string{
		"Practice consistently and build real projects",
		"Learn from others and review their code",
		"Stay updated with industry best practices",
	}
}

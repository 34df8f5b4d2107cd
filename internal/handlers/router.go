package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/learnmate/coordinator/internal/config"
	"github.com/learnmate/coordinator/internal/utils"
)

type HandlerManager struct {
	quizHandler       *QuizHandler
	catalogHandler    *CatalogHandler
	lessonHandler     *LessonHandler
	sessionHandler    *SessionHandler
	videoHandler      *VideoHandler
	moderationHandler *ModerationHandler
	messageHandler    *MessageHandler
}

func NewHandlerManager(
	quizHandler *QuizHandler,
	catalogHandler *CatalogHandler,
	lessonHandler *LessonHandler,
	sessionHandler *SessionHandler,
	videoHandler *VideoHandler,
	moderationHandler *ModerationHandler,
	messageHandler *MessageHandler,
) *HandlerManager {
	return &HandlerManager{
		quizHandler:       quizHandler,
		catalogHandler:    catalogHandler,
		lessonHandler:     lessonHandler,
		sessionHandler:    sessionHandler,
		videoHandler:      videoHandler,
		moderationHandler: moderationHandler,
		messageHandler:    messageHandler,
	}
}

// SetupRouter builds the gin engine with CORS, request logging, the
// health endpoint and all API routes.
func (hm *HandlerManager) SetupRouter(cfg *config.Config, logger utils.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "coordinator",
		})
	})

	api := router.Group("/api")
	{
		api.GET("/quiz/:lessonId", hm.quizHandler.GetQuiz)
		api.GET("/quiz/:lessonId/export", hm.quizHandler.ExportQuiz)
		api.POST("/quiz/grade", hm.quizHandler.GradeQuiz)

		api.GET("/catalog", hm.catalogHandler.ListCatalog)
		api.GET("/catalog/:courseId", hm.catalogHandler.GetCourse)
		api.GET("/catalog/:courseId/insights", hm.catalogHandler.GetCourseInsights)

		api.GET("/lesson/:lessonId", hm.lessonHandler.GetLesson)
		api.GET("/lesson/:lessonId/plan", hm.lessonHandler.GetLessonPlan)
		api.POST("/lesson/:lessonId/complete", hm.lessonHandler.CompleteLesson)

		api.POST("/session", hm.sessionHandler.CreateSession)
		api.GET("/session/:sessionId", hm.sessionHandler.GetSession)

		api.GET("/videos", hm.videoHandler.ListVideos)
		api.POST("/videos", hm.videoHandler.UploadVideo)
		api.POST("/videos/:videoId/like", hm.videoHandler.LikeVideo)

		api.GET("/moderation", hm.moderationHandler.ListModeration)
		api.POST("/moderation/:itemId", hm.moderationHandler.UpdateModeration)

		api.POST("/message", hm.messageHandler.PostMessage)
	}

	return router
}

package main

import (
	"net/http"

	"github.com/arjunm/skillsprint/internal/config"
	"github.com/arjunm/skillsprint/internal/database"
	"github.com/arjunm/skillsprint/internal/handlers"
	"github.com/arjunm/skillsprint/internal/logger"
	"github.com/arjunm/skillsprint/internal/metrics"
	"github.com/arjunm/skillsprint/internal/middleware"
	"github.com/arjunm/skillsprint/internal/repository"
	"github.com/arjunm/skillsprint/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.Init(cfg.GinMode, cfg.LogFile)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	router := setupRouter(cfg, log)

	log.Info("starting server", zap.String("addr", ":8080"), zap.String("mode", cfg.GinMode))
	if err := router.Run(":8080"); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func setupRouter(cfg *config.Config, log *zap.Logger) *gin.Engine {
	db := database.GetDB()

	userRepo := repository.NewUserRepository(db)
	roadmapRepo := repository.NewRoadmapRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	resumeRepo := repository.NewResumeRepository(db)

	var llm *services.LLMService
	if cfg.LLMAPIKey != "" {
		llm = services.NewLLMService(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel, cfg.LLMTimeout)
	} else {
		log.Warn("LLM_API_KEY not set; roadmap, quiz and resume generation disabled")
	}

	authService := services.NewAuthService(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL)
	progressService := services.NewProgressService(progressRepo)
	roadmapService := services.NewRoadmapService(roadmapRepo, progressService, llm)
	quizService := services.NewQuizService(progressRepo, progressService, llm)
	resumeService := services.NewResumeService(resumeRepo, llm)
	jobService := services.NewJobService(cfg.SerperAPIKey)

	authHandler := handlers.NewAuthHandler(authService)
	roadmapHandler := handlers.NewRoadmapHandler(roadmapService)
	quizHandler := handlers.NewQuizHandler(quizService)
	progressHandler := handlers.NewProgressHandler(progressService)
	resumeHandler := handlers.NewResumeHandler(resumeService)
	jobHandler := handlers.NewJobHandler(jobService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(metrics.Middleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireAuth([]byte(cfg.JWTSecret)))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)

		roadmap := protected.Group("/roadmap")
		{
			roadmap.POST("/generate", roadmapHandler.Generate)
			roadmap.GET("/dashboard", roadmapHandler.Dashboard)
			roadmap.POST("/complete/:task_id", roadmapHandler.Complete)
			roadmap.POST("/reschedule/:roadmap_id", roadmapHandler.Reschedule)
			roadmap.POST("/finish_early/:roadmap_id", roadmapHandler.FinishEarly)
			roadmap.POST("/toggle_pause/:roadmap_id", roadmapHandler.TogglePause)
			roadmap.POST("/archive", roadmapHandler.Archive)
		}

		quiz := protected.Group("/quiz")
		{
			quiz.POST("/generate", quizHandler.Generate)
			quiz.POST("/submit", quizHandler.Submit)
		}

		progress := protected.Group("/progress")
		{
			progress.GET("", progressHandler.Overview)
			progress.GET("/streak", progressHandler.Streak)
		}
		protected.GET("/leaderboard", progressHandler.Leaderboard)

		resume := protected.Group("/resume")
		{
			resume.POST("/analyze", resumeHandler.Analyze)
			resume.GET("/latest", resumeHandler.Latest)
			resume.POST("/skill-gaps", resumeHandler.SkillGaps)
		}

		protected.GET("/jobs/search", jobHandler.Search)
	}

	return router
}

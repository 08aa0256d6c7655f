package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ntloc/EduPulse/config"
	"github.com/ntloc/EduPulse/database"
	_ "github.com/ntloc/EduPulse/docs" // Swagger docs - auto-generated
	feedbackctrl "github.com/ntloc/EduPulse/internal/controller/feedback"
	statsctrl "github.com/ntloc/EduPulse/internal/controller/stats"
	"github.com/ntloc/EduPulse/internal/logger"
	"github.com/ntloc/EduPulse/internal/model"
	"github.com/ntloc/EduPulse/internal/repository"
	"github.com/ntloc/EduPulse/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Campus Feedback Insights API
// @version 1.0
// @description Structured student feedback collection with sentiment classification, learning-pace tagging, aggregate statistics, and AI-synthesized insights.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewFeedbackRepository,
			repository.NewUserRepository,
		),

		// Services layer
		fx.Provide(
			service.NewSentimentService,
			service.NewLearnerPaceService,
			service.NewStatsService,
			service.NewInsightService,
			service.NewFeedbackService,
		),

		// API controllers layer
		fx.Provide(
			feedbackctrl.NewFeedbackController,
			statsctrl.NewStatsController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	feedbackCtrl *feedbackctrl.FeedbackController,
	statsCtrl *statsctrl.StatsController,
) {
	apiGroup := router.Group("/api/v1")
	{
		feedbackGroup := apiGroup.Group("/feedback")
		feedbackGroup.POST("", feedbackCtrl.SubmitFeedback)
		feedbackGroup.GET("/my", feedbackCtrl.GetMyFeedback)

		apiGroup.GET("/teachers/:teacher_id/stats", statsCtrl.GetTeacherStats)
		apiGroup.GET("/stats/overview", statsCtrl.GetOverview)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Campus Feedback Insights API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Feedback{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

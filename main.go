package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"listening-service/internal/config"
	"listening-service/internal/db"
	"listening-service/internal/event"
	"listening-service/internal/handlers"
	"listening-service/internal/middleware"
	"listening-service/internal/repository"
	"listening-service/internal/service"
	"listening-service/pkg/discovery"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.ServiceConfig
	db.InitMongo(cfg.MongoDB.URI)
	defer db.DisconnectMongo()

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	// Redis for recommendation rate limiting
	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	} else {
		log.Println("Redis not configured, recommendation rate limiting disabled")
	}

	// Consul service discovery
	if cfg.Consul.Address != "" {
		registry, err := discovery.NewServiceRegistry(cfg)
		if err != nil {
			log.Printf("Warning: Failed to create service registry: %v", err)
		} else if err := registry.Register(); err != nil {
			log.Printf("Warning: Failed to register with Consul: %v", err)
		} else {
			defer func() {
				if err := registry.Deregister(); err != nil {
					log.Printf("Error deregistering from Consul: %v", err)
				}
			}()
		}
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "Listening Service is healthy")
	})

	database := db.Client.Database(cfg.MongoDB.Database)

	// Repositories
	questionRepo := repository.NewQuestionRepository(database)
	logRepo := repository.NewLearningLogRepository(database)

	// Services
	questionService := service.NewQuestionService(questionRepo, logRepo)
	answerService := service.NewAnswerService(questionRepo, logRepo)
	recommendationService := service.NewRecommendationService(logRepo, questionRepo)
	statsService := service.NewStatsService(logRepo)
	reviewService := service.NewReviewService(logRepo, questionRepo)

	// Handlers
	questionHandler := handlers.NewQuestionHandler(questionService)
	answerHandler := handlers.NewAnswerHandler(answerService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
	statsHandler := handlers.NewStatsHandler(statsService, reviewService)

	// Public routes - questions
	publicQuestion := r.Group("/public/listening/question")
	{
		publicQuestion.GET("/", func(c *gin.Context) {
			questionHandler.ListPublicQuestions(c)
			if publisher != nil {
				publisher.Publish("listening.question.list", nil)
			}
		})
		publicQuestion.GET("/random", func(c *gin.Context) {
			questionHandler.GetRandomQuestion(c)
			if publisher != nil {
				publisher.Publish("listening.question.random", nil)
			}
		})
		publicQuestion.GET("/:id", func(c *gin.Context) {
			questionHandler.GetQuestion(c)
			if publisher != nil {
				publisher.Publish("listening.question.get", gin.H{"id": c.Param("id")})
			}
		})
	}

	// Protected routes - question management
	protectedQuestion := r.Group("/protected/listening/question")
	protectedQuestion.Use(middleware.RequireUser())
	{
		protectedQuestion.POST("/", questionHandler.CreateQuestion)
		protectedQuestion.PUT("/:id", questionHandler.UpdateQuestion)
		protectedQuestion.DELETE("/:id", questionHandler.DeleteQuestion)
		protectedQuestion.POST("/bulk", questionHandler.BulkCreateQuestions)
	}

	setupLearningRoutes(r, answerHandler, recommendationHandler, statsHandler, publisher, redisClient)

	srv := &http.Server{
		Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}
	log.Println("Server shutdown complete")
}

func setupLearningRoutes(
	r *gin.Engine,
	answerHandler *handlers.AnswerHandler,
	recommendationHandler *handlers.RecommendationHandler,
	statsHandler *handlers.StatsHandler,
	publisher *event.EventPublisher,
	redisClient *redis.Client,
) {
	protected := r.Group("/protected/listening")
	protected.Use(middleware.RequireUser())
	{
		// === ANSWERING AND LOGGING ===

		protected.POST("/answer", func(c *gin.Context) {
			answerHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("listening.answer.submitted", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		protected.POST("/learning-log", func(c *gin.Context) {
			answerHandler.LogLearning(c)
			if publisher != nil {
				publisher.Publish("listening.log.recorded", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		// === RECOMMENDATIONS ===

		recommendations := protected.Group("/recommendations")
		if redisClient != nil {
			recommendations.Use(middleware.RateLimit(redisClient, 30, time.Minute))
		}
		recommendations.GET("/", func(c *gin.Context) {
			recommendationHandler.GetRecommendations(c)
			if publisher != nil {
				publisher.Publish("listening.recommendations.served", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		recommendations.GET("/profile", func(c *gin.Context) {
			recommendationHandler.GetProfile(c)
			if publisher != nil {
				publisher.Publish("listening.profile.analyzed", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		// === STATS AND REVIEW ===

		protected.GET("/stats", statsHandler.GetUserStats)
		protected.GET("/history", statsHandler.GetLearningHistory)
		protected.GET("/review/wrong-questions", statsHandler.GetWrongQuestions)
		protected.GET("/review/answer-history", statsHandler.GetAnswerHistory)

		protected.POST("/review/start", func(c *gin.Context) {
			statsHandler.StartReview(c)
			if publisher != nil {
				publisher.Publish("listening.review.started", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protected.POST("/review/save-result", func(c *gin.Context) {
			statsHandler.SaveReviewResult(c)
			if publisher != nil {
				publisher.Publish("listening.review.saved", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/api"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/config"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/notify"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/repository/mongo"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/service"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Smart Coaching Training Planner...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureTrainingPlanIndexes(ctx, appDB.Collection("training_plans"))
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		mongo.EnsurePerformanceIndexes(ctx, appDB.Collection("performances"))
		mongo.EnsureFeedbackIndexes(ctx, appDB.Collection("feedbacks"))
		mongo.EnsureInjuryIndexes(ctx, appDB.Collection("injuries"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage & Notifier ---
	log.Println("Initializing report storage...")
	reportStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}
	notifier := notify.NewMailer(cfg.Mail)

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	planRepo := mongo.NewMongoTrainingPlanRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	perfRepo := mongo.NewMongoPerformanceRepository(appDB)
	feedbackRepo := mongo.NewMongoFeedbackRepository(appDB)
	injuryRepo := mongo.NewMongoInjuryRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	adminService := service.NewAdminService(userRepo, planRepo, workoutRepo)
	coachService := service.NewCoachService(userRepo, planRepo, workoutRepo, perfRepo, feedbackRepo, injuryRepo, reportStorage, notifier)
	athleteService := service.NewAthleteService(userRepo, planRepo, workoutRepo, perfRepo, feedbackRepo, injuryRepo)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.FrontendOrigin}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, userRepo, authService, adminService, coachService, athleteService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// In-flight requests get five seconds to finish.
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

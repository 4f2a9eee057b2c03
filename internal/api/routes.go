package api

import (
	"net/http"
	"time"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every endpoint onto the router. Route groups follow
// roles: /api/auth is public, /api/admin, /api/coach and /api/athlete each
// sit behind the auth middleware plus a role guard.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	userLoader UserLoader,
	authService service.AuthService,
	adminService service.AdminService,
	coachService service.CoachService,
	athleteService service.AthleteService,
) {
	authHandler := NewAuthHandler(authService)
	adminHandler := NewAdminHandler(adminService)
	coachHandler := NewCoachHandler(coachService)
	athleteHandler := NewAthleteHandler(athleteService)

	authMiddleware := AuthMiddleware(jwtSecret, userLoader)

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Service is healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", authMiddleware, authHandler.Me)
	}

	adminGroup := router.Group("/api/admin")
	adminGroup.Use(authMiddleware, RoleMiddleware(domain.RoleAdmin))
	{
		adminGroup.GET("/users", adminHandler.ListUsers)
		adminGroup.GET("/users/role/:role", adminHandler.ListUsersByRole)
		adminGroup.PUT("/users/:id", adminHandler.UpdateUser)
		adminGroup.DELETE("/users/:id", adminHandler.DeleteUser)
		adminGroup.GET("/stats", adminHandler.SystemStats)
	}

	coachGroup := router.Group("/api/coach")
	coachGroup.Use(authMiddleware, RoleMiddleware(domain.RoleCoach))
	{
		coachGroup.POST("/plans", coachHandler.CreatePlan)
		coachGroup.GET("/plans", coachHandler.ListPlans)
		coachGroup.GET("/plans/:id", coachHandler.GetPlan)
		coachGroup.PUT("/plans/:id", coachHandler.UpdatePlan)
		coachGroup.DELETE("/plans/:id", coachHandler.DeletePlan)
		coachGroup.GET("/plans/:id/download", coachHandler.DownloadPlanReport)

		coachGroup.GET("/athletes", coachHandler.ListAthletes)
		coachGroup.GET("/athletes/:athleteId/progress", coachHandler.AthleteProgress)
		coachGroup.GET("/athletes/:athleteId/injuries", coachHandler.ListAthleteInjuries)

		coachGroup.PUT("/feedback/:id/respond", coachHandler.RespondToFeedback)
	}

	athleteGroup := router.Group("/api/athlete")
	athleteGroup.Use(authMiddleware, RoleMiddleware(domain.RoleAthlete))
	{
		athleteGroup.GET("/plans", athleteHandler.ListPlans)

		athleteGroup.POST("/workouts", athleteHandler.LogWorkout)
		athleteGroup.GET("/workouts", athleteHandler.ListWorkouts)
		athleteGroup.PUT("/workouts/:id", athleteHandler.UpdateWorkout)

		athleteGroup.POST("/performance", athleteHandler.LogPerformance)
		athleteGroup.GET("/performance", athleteHandler.ListPerformance)

		athleteGroup.POST("/feedback", athleteHandler.SubmitFeedback)
		athleteGroup.GET("/feedback", athleteHandler.ListFeedback)

		athleteGroup.POST("/injuries", athleteHandler.ReportInjury)
		athleteGroup.GET("/injuries", athleteHandler.ListInjuries)
		athleteGroup.PUT("/injuries/:id", athleteHandler.UpdateInjury)
	}
}

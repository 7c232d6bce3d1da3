// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Init swagger doc
	_ "github.com/RazanRezq/jadara-sub002/docs"

	"github.com/RazanRezq/jadara-sub002/internal/audit"
	"github.com/RazanRezq/jadara-sub002/internal/auth"
	"github.com/RazanRezq/jadara-sub002/internal/comment"
	commentctl "github.com/RazanRezq/jadara-sub002/internal/controller/comment"
	reviewctl "github.com/RazanRezq/jadara-sub002/internal/controller/review"
	staffctl "github.com/RazanRezq/jadara-sub002/internal/controller/staff"
	"github.com/RazanRezq/jadara-sub002/internal/middleware"
	"github.com/RazanRezq/jadara-sub002/internal/model"
	"github.com/RazanRezq/jadara-sub002/internal/notification"
	"github.com/RazanRezq/jadara-sub002/internal/repository"
	"github.com/RazanRezq/jadara-sub002/internal/review"
)

const maxBodyBytes = 1 << 20

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	users := repository.NewUserRepository(s.DB)
	applicants := repository.NewApplicantRepository(s.DB)
	recorder := audit.NewRecorder(repository.NewAuditRepository(s.DB))

	opts := []notification.Option{notification.WithBaseURL(s.Config.AppBaseURL)}
	if s.Publisher != nil {
		opts = append(opts, notification.WithPublisher(s.Publisher))
	}
	broadcaster := notification.NewBroadcaster(users, repository.NewNotificationRepository(s.DB), s.Log, opts...)

	lAuth := auth.NewLocalAuthHandler(s.DB)
	reviews := reviewctl.NewController(review.NewService(
		repository.NewReviewRepository(s.DB), applicants, broadcaster, recorder, s.Log,
	))
	comments := commentctl.NewController(comment.NewService(
		repository.NewCommentRepository(s.DB), applicants, broadcaster, recorder, s.Log,
	))
	staff := staffctl.NewController(users, recorder, s.Log)

	corsConfig := cors.Config{
		AllowOrigins:     s.Config.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		// cors panics on an empty origin list
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(corsConfig))

	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.SafeHeader(), middleware.SizeLimit(maxBodyBytes))

		authRoute := v1.Group("/auth")
		{
			authRoute.Use(middleware.RateLimiterMiddleware(s.Config.RateLimitPerSecond, s.Redis))
			authRoute.POST("login", lAuth.LocalLoginHandler)
		}

		needAuth := v1.Group("")
		{
			needAuth.Use(
				middleware.RequireAuth(s.DB),
				middleware.CheckRole(model.StaffRoles()...),
				middleware.RateLimiterMiddleware(s.Config.RateLimitPerSecond, s.Redis),
			)

			reviewRoute := needAuth.Group("/reviews")
			{
				reviewRoute.POST("", reviews.Submit)
				reviewRoute.GET("applicant/:applicantId", reviews.ByApplicant)
				reviewRoute.GET("mine/:applicantId", reviews.Mine)
				reviewRoute.GET("average/:applicantId", reviews.Average)
				reviewRoute.POST("batch-badges", reviews.BatchBadges)
				reviewRoute.GET("rating-distribution", reviews.RatingDistribution)
			}

			needAuth.POST("applicants/:applicantId/comments", comments.Create)
			needAuth.GET("applicants/:applicantId/comments", comments.List)
			needAuth.DELETE("comments/:id", comments.Delete)

			staffRoute := needAuth.Group("/staff")
			{
				staffRoute.DELETE(":id", middleware.CheckRole(model.RoleSuperadmin), staff.Delete)
				staffRoute.Use(middleware.CheckRole(model.RoleAdmin, model.RoleSuperadmin))
				staffRoute.GET("", staff.List)
				staffRoute.POST("", staff.Create)
				staffRoute.PATCH(":id/active", staff.SetActive)
			}
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// healthHandler reports database statistics
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *MyServer) healthHandler(c *gin.Context) {
	stats := s.DB.Health()
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, stats)
}

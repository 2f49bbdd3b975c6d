package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikPaudel/nwcs-inventory/internal/config"
	"github.com/PratikPaudel/nwcs-inventory/internal/delivery/http/handler"
	"github.com/PratikPaudel/nwcs-inventory/internal/infrastructure/database/postgres"
	"github.com/PratikPaudel/nwcs-inventory/internal/logger"
	"github.com/PratikPaudel/nwcs-inventory/internal/middleware"
	"github.com/PratikPaudel/nwcs-inventory/internal/usecase/assignment"
	"github.com/PratikPaudel/nwcs-inventory/internal/usecase/dashboard"
	"github.com/PratikPaudel/nwcs-inventory/internal/usecase/deviceuser"
	"github.com/PratikPaudel/nwcs-inventory/internal/usecase/equipment"
	"github.com/PratikPaudel/nwcs-inventory/internal/usecase/location"
	"github.com/PratikPaudel/nwcs-inventory/internal/usecase/user"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: request ID, logging, security headers, CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db)
	equipmentRepository := postgres.NewEquipmentRepository(db)
	assignmentRepository := postgres.NewAssignmentRepository(db)
	historyRepository := postgres.NewHistoryRepository(db)
	deviceUserRepository := postgres.NewDeviceUserRepository(db)
	locationRepository := postgres.NewLocationRepository(db)

	userService := user.NewService(userRepository, cfg.JWT)
	equipmentService := equipment.NewService(equipmentRepository, historyRepository)
	assignmentService := assignment.NewService(assignmentRepository, equipmentRepository, deviceUserRepository)
	deviceUserService := deviceuser.NewService(deviceUserRepository)
	locationService := location.NewService(locationRepository)
	dashboardService := dashboard.NewService(equipmentRepository, locationRepository)

	userHandler := handler.NewUserHandler(userService)
	equipmentHandler := handler.NewEquipmentHandler(equipmentService)
	assignmentHandler := handler.NewAssignmentHandler(assignmentService)
	deviceUserHandler := handler.NewDeviceUserHandler(deviceUserService)
	locationHandler := handler.NewLocationHandler(locationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	v1 := router.Group("/api/v1")
	{
		userHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			userHandler.RegisterProfileRoutes(protected)

			equipmentHandler.RegisterRoutes(protected)
			assignmentHandler.RegisterRoutes(protected)
			deviceUserHandler.RegisterRoutes(protected)
			locationHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)

			admin := protected.Group("")
			admin.Use(middleware.AdminOnly())
			{
				equipmentHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}

package routes

import (
	"time"

	"shift-planner-backend/internal/api/handlers"
	"shift-planner-backend/internal/api/middleware"
	"shift-planner-backend/internal/auth"
	"shift-planner-backend/internal/config"
	"shift-planner-backend/internal/repository"
	"shift-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	// Repositories
	roleRepo := repository.NewRoleRepository(db)
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseTypeRepository(db)
	rateRepo := repository.NewPayRateRepository(db)
	templateRepo := repository.NewTemplateShiftRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	weekRepo := repository.NewPublishedWeekRepository(db)
	requestRepo := repository.NewReplacementRequestRepository(db)

	// Services
	roleService := service.NewRoleService(roleRepo, validate)
	userService := service.NewUserService(userRepo, roleRepo, validate)
	courseService := service.NewCourseTypeService(courseRepo, validate)
	rateService := service.NewPayRateService(rateRepo, roleRepo, shiftRepo, userRepo, validate)
	templateService := service.NewTemplateShiftService(templateRepo, roleRepo, userRepo, courseRepo, validate)
	publisherService := service.NewPublisherService(db, roleRepo, templateRepo, shiftRepo, weekRepo, cfg.Overlap(), validate)
	replacementService := service.NewReplacementService(db, shiftRepo, requestRepo, templateRepo, userRepo, validate)
	shiftService := service.NewShiftService(shiftRepo, requestRepo, roleRepo, weekRepo, userRepo, courseRepo, validate)

	authService := auth.NewAuthService(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour, userRepo)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	roleHandler := handlers.NewRoleHandler(roleService)
	userHandler := handlers.NewUserHandler(userService)
	courseHandler := handlers.NewCourseTypeHandler(courseService)
	rateHandler := handlers.NewPayRateHandler(rateService)
	templateHandler := handlers.NewTemplateShiftHandler(templateService)
	shiftHandler := handlers.NewShiftHandler(shiftService, publisherService)
	replacementHandler := handlers.NewReplacementHandler(replacementService)

	router.GET("/health", healthHandler.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.POST("/auth/login", authHandler.Login)

	protected := v1.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		staff := protected.Group("")
		staff.Use(authMiddleware.RequireStaff())
		{
			staff.POST("/roles", roleHandler.CreateRole)
			staff.PUT("/roles/:id", roleHandler.UpdateRole)
			staff.DELETE("/roles/:id", roleHandler.DeleteRole)

			staff.POST("/users", userHandler.CreateUser)
			staff.PATCH("/users/:id", userHandler.UpdateUser)
			staff.DELETE("/users/:id", userHandler.DeleteUser)

			staff.POST("/course-types", courseHandler.CreateCourseType)
			staff.PUT("/course-types/:id", courseHandler.UpdateCourseType)
			staff.DELETE("/course-types/:id", courseHandler.DeleteCourseType)

			staff.PUT("/pay-rates", rateHandler.SetPayRate)
			staff.DELETE("/pay-rates/:id", rateHandler.DeletePayRate)
			staff.GET("/users/:id/accounting", rateHandler.MonthlyAccounting)

			staff.POST("/template-shifts", templateHandler.CreateTemplateShift)
			staff.PUT("/template-shifts/:id", templateHandler.UpdateTemplateShift)
			staff.DELETE("/template-shifts/:id", templateHandler.DeleteTemplateShift)

			staff.POST("/shifts", shiftHandler.CreateShift)
			staff.PATCH("/shifts/:id", shiftHandler.UpdateShift)
			staff.DELETE("/shifts/:id", shiftHandler.DeleteShift)
			staff.POST("/shifts/publish", shiftHandler.PublishWeeks)
			staff.POST("/shifts/generate-month", shiftHandler.GenerateMonth)
		}

		protected.GET("/roles", roleHandler.ListRoles)
		protected.GET("/roles/:id", roleHandler.GetRole)
		protected.GET("/users", userHandler.ListUsers)
		protected.GET("/users/:id", userHandler.GetUser)
		protected.GET("/users/:id/pay-rates", rateHandler.GetUserRates)
		protected.GET("/course-types", courseHandler.ListCourseTypes)
		protected.GET("/course-types/:id", courseHandler.GetCourseType)
		protected.GET("/template-shifts", templateHandler.ListTemplateShifts)
		protected.GET("/template-shifts/:id", templateHandler.GetTemplateShift)

		protected.GET("/shifts/week", shiftHandler.GetWeekShifts)
		protected.GET("/shifts/month", shiftHandler.GetMonthShifts)
		protected.GET("/shifts/published-weeks", shiftHandler.GetPublishedWeeks)
		protected.GET("/shifts/:id", shiftHandler.GetShift)
		protected.GET("/shifts/:id/collaborators", shiftHandler.AvailableCollaborators)

		protected.POST("/shifts/:id/replacements", replacementHandler.CreateRequests)
		protected.POST("/replacements/:id/respond", replacementHandler.Respond)
		protected.GET("/replacements/sent", replacementHandler.ListSent)
		protected.GET("/replacements/received", replacementHandler.ListReceived)
		protected.POST("/replacements/:id/propagate", replacementHandler.PropagateToTemplate)
	}

	return router
}

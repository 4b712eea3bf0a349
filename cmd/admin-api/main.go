package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/toppers-edu/admin-console-api/api/swagger"
	"github.com/toppers-edu/admin-console-api/internal/handler"
	"github.com/toppers-edu/admin-console-api/internal/middleware"
	"github.com/toppers-edu/admin-console-api/internal/models"
	"github.com/toppers-edu/admin-console-api/internal/repository"
	"github.com/toppers-edu/admin-console-api/internal/service"
	"github.com/toppers-edu/admin-console-api/pkg/cache"
	"github.com/toppers-edu/admin-console-api/pkg/config"
	"github.com/toppers-edu/admin-console-api/pkg/database"
	"github.com/toppers-edu/admin-console-api/pkg/logger"
	corsmiddleware "github.com/toppers-edu/admin-console-api/pkg/middleware/cors"
	reqidmiddleware "github.com/toppers-edu/admin-console-api/pkg/middleware/requestid"
)

// @title Toppers Admin Console API
// @version 1.0.0
// @description Operator console for the Toppers learning platform
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to redis", "error", err)
	}
	defer redisClient.Close()

	validate := validator.New()

	subjectRepo := repository.NewSubjectRepository(db)
	folderRepo := repository.NewFolderRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	operatorRepo := repository.NewOperatorRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	sessionRepo := repository.NewSessionRepository(redisClient, cfg.Session.KeyPrefix)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, true)

	authSvc := service.NewAuthService(operatorRepo, sessionRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
	})
	contentSvc := service.NewContentService(subjectRepo, folderRepo, materialRepo, validate, logr)
	operatorSvc := service.NewOperatorService(operatorRepo, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, logr)
	dashboardSvc := service.NewDashboardService(statsRepo, cacheSvc, logr, service.DashboardServiceConfig{
		CacheTTL:           cfg.Dashboard.CacheTTL,
		RecentResultsLimit: cfg.Dashboard.RecentResultsLimit,
		AccuracySampleSize: cfg.Dashboard.AccuracySampleSize,
	})
	settingsSvc := service.NewSettingsService(settingsRepo, validate, logr)

	authHandler := handler.NewAuthHandler(authSvc, dashboardSvc)
	subjectHandler := handler.NewSubjectHandler(contentSvc)
	folderHandler := handler.NewFolderHandler(contentSvc)
	materialHandler := handler.NewMaterialHandler(contentSvc)
	operatorHandler := handler.NewOperatorHandler(operatorSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	settingsHandler := handler.NewSettingsHandler(settingsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	api := r.Group(cfg.APIPrefix)

	api.GET("/status", settingsHandler.Status)
	api.POST("/auth/login", authHandler.Login)

	authorized := api.Group("")
	authorized.Use(middleware.JWT(authSvc))
	authorized.Use(middleware.RequireRoles(models.RoleFounder, models.RoleCEO, models.RoleOwner))

	auth := authorized.Group("/auth")
	{
		auth.GET("/session", authHandler.Session)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/preferences/theme", authHandler.GetTheme)
		auth.PUT("/preferences/theme", authHandler.SetTheme)
	}

	content := authorized.Group("/content")
	{
		content.GET("/subjects", subjectHandler.List)
		content.POST("/subjects", subjectHandler.Create)
		content.PUT("/subjects/:id", subjectHandler.Update)
		content.DELETE("/subjects/:id", subjectHandler.Delete)
		content.POST("/subjects/:id/reorder", subjectHandler.Reorder)
		content.GET("/subjects/:id/children", subjectHandler.Children)

		content.POST("/folders", folderHandler.Create)
		content.PUT("/folders/:id", folderHandler.Rename)
		content.POST("/folders/:id/move", folderHandler.Move)
		content.DELETE("/folders/:id", folderHandler.Delete)
		content.POST("/folders/:id/reorder", folderHandler.Reorder)

		content.POST("/materials", materialHandler.Create)
		content.PUT("/materials/:id", materialHandler.Update)
		content.DELETE("/materials/:id", materialHandler.Delete)
		content.POST("/materials/:id/reorder", materialHandler.Reorder)
		content.GET("/materials/:id/download", materialHandler.Download)
	}

	operators := authorized.Group("/operators")
	{
		operators.GET("", operatorHandler.List)
		operators.POST("", operatorHandler.Create)
		operators.DELETE("/:id", operatorHandler.Delete)
	}

	students := authorized.Group("/students")
	{
		students.GET("", studentHandler.List)
		students.GET("/export", studentHandler.Export)
	}

	authorized.GET("/dashboard/stats", dashboardHandler.Stats)

	settings := authorized.Group("/settings")
	{
		settings.GET("/maintenance", settingsHandler.Get)
		settings.PUT("/maintenance", settingsHandler.Update)
		settings.POST("/maintenance/toggle", settingsHandler.Toggle)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

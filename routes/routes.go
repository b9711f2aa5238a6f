package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fixmycity/api-go/config"
	"github.com/fixmycity/api-go/controllers"
	"github.com/fixmycity/api-go/middleware"
	"github.com/fixmycity/api-go/services"
	"github.com/fixmycity/api-go/storage"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, service *services.ReportService, store storage.BlobStore) {
	// Initialize controllers
	authController := controllers.NewAuthController(cfg)
	reportController := controllers.NewReportController(service)
	officeController := controllers.NewOfficeController(service)
	fileController := controllers.NewFileController(store)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/login", authController.Login)
		public.POST("/office/login", authController.OfficeLogin)
	}

	// Stored images are served without a session, by unguessable key
	r.GET("/uploads/:key", fileController.GetUpload)

	// Session routes
	protected := r.Group("/api")
	protected.Use(middleware.SessionMiddleware(cfg.SessionSecret))
	{
		SetupReportRoutes(protected, reportController)
		SetupOfficeRoutes(protected, officeController)
	}
}

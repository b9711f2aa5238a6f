package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fixmycity/api-go/controllers"
	"github.com/fixmycity/api-go/middleware"
)

func SetupOfficeRoutes(protected *gin.RouterGroup, officeController *controllers.OfficeController) {
	office := protected.Group("/office")
	office.Use(middleware.OfficeOnly())
	{
		office.GET("/reports", officeController.ListReports)
		office.PUT("/reports/:id", officeController.UpdateReport)
	}
}

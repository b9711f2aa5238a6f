package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fixmycity/api-go/controllers"
)

func SetupReportRoutes(protected *gin.RouterGroup, reportController *controllers.ReportController) {
	reports := protected.Group("/reports")
	{
		reports.POST("", reportController.SubmitReport)
		reports.GET("", reportController.ListMyReports)
	}
}

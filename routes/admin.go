package routes

import (
	"marketplace-backend/handlers/admin"
	"marketplace-backend/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	adminRoutes := r.Group("/admin")
	adminRoutes.Use(middleware.JWTAuth())
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.POST("/items/bulk", admin.BulkItemAction)
		adminRoutes.POST("/users/bulk", admin.BulkUserAction)
		adminRoutes.GET("/reports", admin.GetAllReports)
		adminRoutes.PUT("/reports/:id", admin.UpdateReportStatus)
		adminRoutes.GET("/actions", admin.GetAdminActions)
	}
}

package routes

import (
	"marketplace-backend/handlers/reviews"
	"marketplace-backend/handlers/users"
	"marketplace-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	// Routes publiques
	r.GET("/users/:id", users.GetPublicProfile)
	r.GET("/users/:id/reviews", reviews.GetUserReviews)

	// Routes protégées
	profileRoutes := r.Group("/profile")
	profileRoutes.Use(middleware.JWTAuth())
	{
		profileRoutes.GET("", users.GetProfile)
		profileRoutes.PUT("", users.UpdateProfile)
		profileRoutes.PUT("/picture", users.UpdateProfilePicture)
		profileRoutes.PUT("/settings", users.UpdateSettings)
	}

	reviewRoutes := r.Group("/users/:id/reviews")
	reviewRoutes.Use(middleware.JWTAuth())
	reviewRoutes.POST("", reviews.CreateReview)
}

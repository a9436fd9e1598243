package routes

import (
	"marketplace-backend/handlers/items"
	"marketplace-backend/handlers/items/favorites"
	"marketplace-backend/handlers/items/report"
	"marketplace-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ItemsRoutes(r *gin.Engine) {
	// Routes publiques : l'identité est prise en compte si un jeton valide
	// est présent (suivi des vues), mais jamais exigée
	itemsPublicRoutes := r.Group("/items")
	itemsPublicRoutes.Use(middleware.OptionalJWTAuth())
	{
		itemsPublicRoutes.GET("", items.GetAllItems)
		itemsPublicRoutes.GET("/featured", items.GetFeaturedItems)
		itemsPublicRoutes.GET("/:id", items.GetItemByID)
	}

	// Routes protégées
	itemsRoutes := r.Group("/items")
	itemsRoutes.Use(middleware.JWTAuth())
	{
		itemsRoutes.POST("", items.CreateItem)
		itemsRoutes.PUT("/:id", items.UpdateItem)
		itemsRoutes.DELETE("/:id", items.DeleteItem)

		// Routes des interactions
		itemsRoutes.POST("/:id/favorite", favorites.ToggleFavorite)
		itemsRoutes.POST("/:id/report", report.ReportItem)
	}

	favoritesRoutes := r.Group("/favorites")
	favoritesRoutes.Use(middleware.JWTAuth())
	favoritesRoutes.GET("", favorites.GetMyFavorites)
}

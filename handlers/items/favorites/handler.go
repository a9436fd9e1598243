package favorites

import (
	"errors"
	"net/http"

	"marketplace-backend/db"
	"marketplace-backend/models"
	"marketplace-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// @Summary Toggle favorite on an item
// @Description Add or remove the caller's favorite on an item and adjust its counter
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "favorited, favoritesCount"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Item not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /items/{id}/favorite [post]
func ToggleFavorite(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	itemID := c.Param("id")

	var item models.Item
	if err := db.DB.First(&item, "id = ?", itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	favorited := false
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var favorite models.ItemFavorite
		err := tx.Where("item_id = ? AND user_id = ?", itemID, userID).First(&favorite).Error

		if err == nil {
			// Le favori existe, on le retire. Décrément relatif borné à zéro.
			result := tx.Delete(&favorite)
			if result.Error != nil {
				return result.Error
			}
			// Un retrait concurrent a déjà supprimé la ligne et décrémenté :
			// ne pas décrémenter une deuxième fois.
			if result.RowsAffected == 0 {
				return nil
			}
			return tx.Model(&models.Item{}).Where("id = ?", itemID).
				UpdateColumn("favorites", gorm.Expr("GREATEST(favorites - 1, 0)")).Error
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		favorite = models.ItemFavorite{
			ItemID: itemID,
			UserID: userID.(string),
		}

		// L'index unique (item, user) absorbe les toggles concurrents du même
		// utilisateur : un seul créateur incrémente le compteur.
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&favorite)
		if result.Error != nil {
			return result.Error
		}

		favorited = true
		if result.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.Item{}).Where("id = ?", itemID).
			UpdateColumn("favorites", gorm.Expr("favorites + 1")).Error
	})
	if err != nil {
		utils.LogError(err, "Error toggling favorite in ToggleFavorite")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error toggling favorite: " + err.Error()})
		return
	}

	// Relire le compteur après l'ajustement pour refléter l'état réel.
	var count uint
	if err := db.DB.Model(&models.Item{}).Where("id = ?", itemID).
		Pluck("favorites", &count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading favorite count: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"favorited":      favorited,
		"favoritesCount": count,
	})
}

// @Summary Get the caller's favorite items
// @Description Retrieve all items the authenticated user has favorited
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Item
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /favorites [get]
func GetMyFavorites(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var items []models.Item
	err := db.DB.Preload("Category").
		Joins("JOIN item_favorites ON item_favorites.item_id = items.id").
		Where("item_favorites.user_id = ?", userID).
		Order("item_favorites.created_at DESC").
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving favorites: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

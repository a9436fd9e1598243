package reviews

import (
	"errors"
	"net/http"

	"marketplace-backend/db"
	"marketplace-backend/models"
	"marketplace-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RecomputeUserRating recalcule la note moyenne et le nombre d'avis d'un
// utilisateur à partir des avis stockés, et les reporte sur son profil.
// Appelé dans la transaction de création d'un avis.
func RecomputeUserRating(tx *gorm.DB, userID string) error {
	var stats struct {
		Total int64
		Avg   float64
	}
	err := tx.Model(&models.UserReview{}).
		Where("reviewed_user_id = ?", userID).
		Select("COUNT(*) AS total, COALESCE(AVG(rating), 0) AS avg").
		Scan(&stats).Error
	if err != nil {
		return err
	}

	return tx.Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"rating":        stats.Avg,
			"total_reviews": stats.Total,
		}).Error
}

// @Summary Review a user
// @Description Leave a 1-5 rating for a user in the context of an item transaction
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Reviewed user ID"
// @Param review body models.ReviewCreate true "Rating, item and comment"
// @Security BearerAuth
// @Success 201 {object} models.UserReview
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User or item not found"
// @Failure 409 {object} map[string]string "error: Already reviewed"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /users/{id}/reviews [post]
func CreateReview(c *gin.Context) {
	reviewerID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	reviewedUserID := c.Param("id")
	if reviewedUserID == reviewerID.(string) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot review yourself"})
		return
	}

	var reviewCreate models.ReviewCreate
	if err := c.ShouldBindJSON(&reviewCreate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if reviewCreate.Rating < 1 || reviewCreate.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	var reviewedUser models.User
	if err := db.DB.First(&reviewedUser, "id = ?", reviewedUserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var item models.Item
	if err := db.DB.First(&item, "id = ?", reviewCreate.ItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	// Un seul avis par (reviewer, reviewed, item)
	var existingReview models.UserReview
	err := db.DB.Where("reviewer_id = ? AND reviewed_user_id = ? AND item_id = ?",
		reviewerID, reviewedUserID, reviewCreate.ItemID).First(&existingReview).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed this user for this item"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking existing review: " + err.Error()})
		return
	}

	review := models.UserReview{
		ReviewerID:     reviewerID.(string),
		ReviewedUserID: reviewedUserID,
		ItemID:         reviewCreate.ItemID,
		Rating:         reviewCreate.Rating,
		Comment:        reviewCreate.Comment,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return RecomputeUserRating(tx, reviewedUserID)
	})
	if err != nil {
		// Une création concurrente du même avis échoue sur l'index unique
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed this user for this item"})
			return
		}
		utils.LogError(err, "Error creating review in CreateReview")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating review: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(reviewerID, "Review successfully created in CreateReview")
	c.JSON(http.StatusCreated, review)
}

// @Summary Get a user's reviews
// @Description Retrieve the reviews received by a user
// @Tags reviews
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} models.UserReview
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /users/{id}/reviews [get]
func GetUserReviews(c *gin.Context) {
	var reviews []models.UserReview

	err := db.DB.Where("reviewed_user_id = ?", c.Param("id")).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving reviews: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

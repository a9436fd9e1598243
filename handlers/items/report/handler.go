package report

import (
	"net/http"
	"slices"

	"marketplace-backend/db"
	"marketplace-backend/models"
	"marketplace-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Report an item
// @Description Report an item (and transitively its owner) for abuse
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param report body models.ReportCreate true "Report type and description"
// @Security BearerAuth
// @Success 201 {object} models.Report
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Item not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /items/{id}/report [post]
func ReportItem(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.LogError(nil, "User not found in token in ReportItem")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	itemID := c.Param("id")

	var item models.Item
	if err := db.DB.First(&item, "id = ?", itemID).Error; err != nil {
		utils.LogError(err, "Item not found in ReportItem")
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	var reportCreate models.ReportCreate
	if err := c.ShouldBindJSON(&reportCreate); err != nil {
		utils.LogError(err, "Invalid input in ReportItem")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !slices.Contains(models.ValidReportTypes(), reportCreate.ReportType) {
		utils.LogError(nil, "Invalid report type in ReportItem")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report type"})
		return
	}

	newReport := models.Report{
		ReporterID:     userID.(string),
		ReportedItemID: &item.ID,
		ReportedUserID: &item.CreatedBy,
		ReportType:     reportCreate.ReportType,
		Description:    reportCreate.Description,
		Status:         models.ReportPending,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newReport).Error; err != nil {
			return err
		}
		// Marque l'annonce comme signalée. Le drapeau n'est jamais remis à
		// faux par la résolution du signalement.
		return tx.Model(&models.Item{}).Where("id = ?", item.ID).
			UpdateColumn("is_reported", true).Error
	})
	if err != nil {
		utils.LogError(err, "Error creating report in ReportItem")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating report: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Report successfully created in ReportItem")
	c.JSON(http.StatusCreated, newReport)
}

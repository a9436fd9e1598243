package categories

import (
	"net/http"

	"marketplace-backend/db"
	"marketplace-backend/models"

	"github.com/gin-gonic/gin"
)

// @Summary Get active categories
// @Description Retrieve all active categories ordered by name
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /categories [get]
func GetAllCategories(c *gin.Context) {
	var categories []models.Category

	result := db.DB.Where("is_active = ?", true).Order("name ASC").Find(&categories)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary Create a new category (Admin only)
// @Description Create a new category with a unique slug
// @Tags admin
// @Accept json
// @Produce json
// @Param category body models.CategoryCreate true "Category information"
// @Security BearerAuth
// @Success 201 {object} models.Category
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 409 {object} map[string]string "error: Slug already exists"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /categories [post]
func CreateCategory(c *gin.Context) {
	var categoryCreate models.CategoryCreate
	if err := c.ShouldBindJSON(&categoryCreate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// Le slug est unique sur l'ensemble des catégories
	var existingCategory models.Category
	if err := db.DB.First(&existingCategory, "slug = ?", categoryCreate.Slug).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A category with this slug already exists"})
		return
	}

	if categoryCreate.ParentID != nil {
		var parent models.Category
		if err := db.DB.First(&parent, "id = ?", *categoryCreate.ParentID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category not found"})
			return
		}
	}

	categoryType := categoryCreate.CategoryType
	if categoryType == "" {
		categoryType = models.CatOther
	}

	icon := categoryCreate.Icon
	if icon == "" {
		icon = "fas fa-tag"
	}

	category := models.Category{
		Name:         categoryCreate.Name,
		Slug:         categoryCreate.Slug,
		CategoryType: categoryType,
		Icon:         icon,
		Description:  categoryCreate.Description,
		IsActive:     true,
		ParentID:     categoryCreate.ParentID,
	}

	if err := db.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating category: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// @Summary Update a category (Admin only)
// @Description Update a category, including its active flag
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body models.CategoryUpdate true "Updated fields"
// @Security BearerAuth
// @Success 200 {object} models.Category
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Category not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	categoryID := c.Param("id")

	var category models.Category
	if err := db.DB.First(&category, "id = ?", categoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var categoryUpdate models.CategoryUpdate
	if err := c.ShouldBindJSON(&categoryUpdate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if categoryUpdate.Name != "" {
		category.Name = categoryUpdate.Name
	}
	if categoryUpdate.Icon != "" {
		category.Icon = categoryUpdate.Icon
	}
	if categoryUpdate.Description != "" {
		category.Description = categoryUpdate.Description
	}
	if categoryUpdate.IsActive != nil {
		category.IsActive = *categoryUpdate.IsActive
	}
	if categoryUpdate.ParentID != nil {
		var parent models.Category
		if err := db.DB.First(&parent, "id = ?", *categoryUpdate.ParentID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category not found"})
			return
		}
		category.ParentID = categoryUpdate.ParentID
	}

	if err := db.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating category: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

// @Summary Delete a category (Admin only)
// @Description Delete a category. Refused while items or subcategories still reference it; deactivate it instead.
// @Tags admin
// @Produce json
// @Param id path string true "Category ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Category deleted successfully"
// @Failure 404 {object} map[string]string "error: Category not found"
// @Failure 409 {object} map[string]string "error: Category still in use"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	categoryID := c.Param("id")

	var category models.Category
	if err := db.DB.First(&category, "id = ?", categoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	// Pas de suppression en cascade : une catégorie encore référencée par des
	// annonces ou des sous-catégories doit d'abord être vidée ou désactivée.
	var itemCount int64
	if err := db.DB.Model(&models.Item{}).Where("category_id = ?", categoryID).Count(&itemCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking category usage: " + err.Error()})
		return
	}
	if itemCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Category still has items; deactivate it instead"})
		return
	}

	var childCount int64
	if err := db.DB.Model(&models.Category{}).Where("parent_id = ?", categoryID).Count(&childCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking subcategories: " + err.Error()})
		return
	}
	if childCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Category still has subcategories; deactivate it instead"})
		return
	}

	if err := db.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting category: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

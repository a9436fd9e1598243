package items

import (
	"errors"
	"net/http"
	"slices"
	"strconv"

	"marketplace-backend/db"
	"marketplace-backend/models"
	"marketplace-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Noms des champs de formulaire des 5 emplacements d'images, dans l'ordre.
var imageFormFields = [5]string{"image", "image_2", "image_3", "image_4", "image_5"}

// @Summary Search items
// @Description Search, filter and paginate active approved items
// @Tags items
// @Produce json
// @Param query query string false "Free text search on name, description and location"
// @Param category query string false "Category ID"
// @Param condition query []string false "Condition values (repeatable)"
// @Param min_price query number false "Minimum price (inclusive)"
// @Param max_price query number false "Maximum price (inclusive)"
// @Param location query string false "Location substring"
// @Param delivery_available query boolean false "Only items with delivery"
// @Param pickup_available query boolean false "Only items with pickup"
// @Param is_negotiable query boolean false "Only negotiable items"
// @Param sort_by query string false "newest|oldest|price_low|price_high|most_viewed|most_favorited"
// @Param page query integer false "Page number (12 items per page)"
// @Success 200 {object} map[string]interface{} "items, total, page, totalPages, filters, categories, warnings"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /items [get]
func GetAllItems(c *gin.Context) {
	filter, warnings := ParseItemFilter(c)

	// Prédicat de base, non négociable : seules les annonces actives et
	// approuvées sont visibles publiquement.
	query := db.DB.Model(&models.Item{}).
		Where("status = ? AND admin_approved = ?", models.StatusActive, true)
	query = filter.Apply(query)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError(err, "Error counting items in GetAllItems")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving items: " + err.Error()})
		return
	}

	page := utils.ParsePage(c.Query("page"))
	page, totalPages := utils.ClampPage(page, total, utils.ItemsPerPage)

	var items []models.Item
	err := query.Preload("Category").
		Order(filter.OrderClause()).
		Limit(utils.ItemsPerPage).
		Offset((page - 1) * utils.ItemsPerPage).
		Find(&items).Error
	if err != nil {
		utils.LogError(err, "Error retrieving items in GetAllItems")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving items: " + err.Error()})
		return
	}

	// La liste des catégories actives est indépendante des filtres, pour la
	// navigation côté client.
	var categories []models.Category
	if err := db.DB.Where("is_active = ?", true).Order("name ASC").Find(&categories).Error; err != nil {
		utils.LogError(err, "Error retrieving categories in GetAllItems")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving categories: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"total":      total,
		"page":       page,
		"totalPages": totalPages,
		"filters":    filter,
		"categories": categories,
		"warnings":   warnings,
	})
}

// @Summary Get featured items
// @Description Retrieve featured active approved items
// @Tags items
// @Produce json
// @Success 200 {array} models.Item
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /items/featured [get]
func GetFeaturedItems(c *gin.Context) {
	var items []models.Item
	err := db.DB.Preload("Category").
		Where("status = ? AND admin_approved = ? AND is_featured = ?", models.StatusActive, true, true).
		Order("created_at DESC, id DESC").
		Limit(utils.ItemsPerPage).
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving featured items: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Get an item by ID
// @Description Retrieve an item detail, record a view and return related items
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} map[string]interface{} "item, images, relatedItems, isFavorited"
// @Failure 404 {object} map[string]string "error: Item not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /items/{id} [get]
func GetItemByID(c *gin.Context) {
	itemID := c.Param("id")

	var item models.Item
	err := db.DB.Preload("Category").
		First(&item, "id = ? AND status = ? AND admin_approved = ?", itemID, models.StatusActive, true).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	recordView(c, &item)

	var relatedItems []models.Item
	db.DB.Where("category_id = ? AND status = ? AND admin_approved = ? AND id <> ?",
		item.CategoryID, models.StatusActive, true, item.ID).
		Order("created_at DESC, id DESC").
		Limit(3).
		Find(&relatedItems)

	isFavorited := false
	if userID, exists := c.Get("user_id"); exists {
		var fav models.ItemFavorite
		if err := db.DB.First(&fav, "item_id = ? AND user_id = ?", item.ID, userID).Error; err == nil {
			isFavorited = true
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"item":         item,
		"images":       item.AllImages(),
		"relatedItems": relatedItems,
		"isFavorited":  isFavorited,
	})
}

// recordView enregistre une identité de consultation (user optionnel + IP) et
// n'incrémente le compteur que lors de la toute première insertion pour cette
// identité. L'index unique absorbe les créations concurrentes : un seul
// gagnant, les autres ne comptent pas.
func recordView(c *gin.Context, item *models.Item) {
	view := models.ItemView{
		ItemID:    item.ID,
		IPAddress: c.ClientIP(),
	}
	if userID, exists := c.Get("user_id"); exists {
		id := userID.(string)
		view.UserID = &id
	}

	// Deux NULL ne se heurtent jamais dans un index unique : pour le visiteur
	// anonyme le conflit ne se déclenche pas à l'insertion. On cherche donc
	// d'abord l'identité, l'index ne servant qu'à départager les insertions
	// concurrentes de la même identité.
	query := db.DB.Where("item_id = ? AND ip_address = ?", item.ID, view.IPAddress)
	if view.UserID != nil {
		query = query.Where("user_id = ?", *view.UserID)
	} else {
		query = query.Where("user_id IS NULL")
	}
	var existing models.ItemView
	err := query.First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError(err, "Error looking up view identity in GetItemByID")
		return
	}

	result := db.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&view)
	if result.Error != nil {
		utils.LogError(result.Error, "Error recording view in GetItemByID")
		return
	}

	if result.RowsAffected > 0 {
		// Ajustement relatif, jamais de read-modify-write.
		err := db.DB.Model(&models.Item{}).Where("id = ?", item.ID).
			UpdateColumn("views", gorm.Expr("views + 1")).Error
		if err != nil {
			utils.LogError(err, "Error incrementing view counter in GetItemByID")
			return
		}
		item.Views++
	}
}

// @Summary Create a new item
// @Description Create a new item listing with up to 5 images
// @Tags items
// @Accept multipart/form-data
// @Produce json
// @Param categoryId formData string true "Category ID"
// @Param name formData string true "Item name"
// @Param description formData string false "Description"
// @Param price formData number false "Price"
// @Param condition formData string false "Condition (new|like_new|excellent|good|fair|poor)"
// @Param location formData string false "Location"
// @Param image formData file false "Image slot 1"
// @Security BearerAuth
// @Success 201 {object} models.Item
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /items [post]
func CreateItem(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	name := c.Request.FormValue("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	categoryID := c.Request.FormValue("categoryId")
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category is required"})
		return
	}

	var category models.Category
	if err := db.DB.First(&category, "id = ? AND is_active = ?", categoryID, true).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found or inactive"})
		return
	}

	price := 0.0
	if priceStr := c.Request.FormValue("price"); priceStr != "" {
		parsed, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		price = parsed
	}

	condition := models.ConditionGood
	if condStr := c.Request.FormValue("condition"); condStr != "" {
		cond := models.ItemCondition(condStr)
		if !slices.Contains(models.ValidConditions(), cond) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid condition"})
			return
		}
		condition = cond
	}

	item := models.Item{
		CategoryID:        categoryID,
		Name:              name,
		Description:       c.Request.FormValue("description"),
		Price:             price,
		Condition:         condition,
		Status:            models.StatusActive,
		Location:          c.Request.FormValue("location"),
		DeliveryAvailable: c.Request.FormValue("deliveryAvailable") == "true",
		PickupAvailable:   c.Request.FormValue("pickupAvailable") != "false",
		IsNegotiable:      c.Request.FormValue("isNegotiable") != "false",
		IsUrgent:          c.Request.FormValue("isUrgent") == "true",
		AdminApproved:     true,
		CreatedBy:         userID.(string),
		MetaTitle:         c.Request.FormValue("metaTitle"),
		MetaDescription:   c.Request.FormValue("metaDescription"),
	}

	for slot, field := range imageFormFields {
		file, err := c.FormFile(field)
		if err != nil || file == nil {
			continue
		}
		imageURL, err := utils.UploadImage(file, "item_images", "item")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading image: " + err.Error()})
			return
		}
		item.SetImage(slot, imageURL)
	}

	if err := db.DB.Create(&item).Error; err != nil {
		utils.LogError(err, "Error creating item in CreateItem")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating item: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Item successfully created in CreateItem")
	c.JSON(http.StatusCreated, item)
}

// @Summary Update an item
// @Description Update an item owned by the caller (or by an admin)
// @Tags items
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Item ID"
// @Security BearerAuth
// @Success 200 {object} models.Item
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Item not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /items/{id} [put]
func UpdateItem(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var item models.Item
	itemID := c.Param("id")

	if err := db.DB.First(&item, "id = ?", itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	// Seul le propriétaire ou un admin peut modifier l'annonce
	userRole, _ := c.Get("user_role")
	if item.CreatedBy != userID.(string) && userRole != string(models.AdminRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this item"})
		return
	}

	if name := c.Request.FormValue("name"); name != "" {
		item.Name = name
	}

	if description := c.Request.FormValue("description"); description != "" {
		item.Description = description
	}

	if priceStr := c.Request.FormValue("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		item.Price = price
	}

	if condStr := c.Request.FormValue("condition"); condStr != "" {
		cond := models.ItemCondition(condStr)
		if !slices.Contains(models.ValidConditions(), cond) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid condition"})
			return
		}
		item.Condition = cond
	}

	if statusStr := c.Request.FormValue("status"); statusStr != "" {
		status := models.ItemStatus(statusStr)
		if !slices.Contains(models.ValidStatuses(), status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		item.Status = status
	}

	if categoryID := c.Request.FormValue("categoryId"); categoryID != "" {
		var category models.Category
		if err := db.DB.First(&category, "id = ? AND is_active = ?", categoryID, true).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found or inactive"})
			return
		}
		item.CategoryID = categoryID
	}

	if location := c.Request.FormValue("location"); location != "" {
		item.Location = location
	}

	if v := c.Request.FormValue("deliveryAvailable"); v != "" {
		item.DeliveryAvailable = v == "true"
	}
	if v := c.Request.FormValue("pickupAvailable"); v != "" {
		item.PickupAvailable = v == "true"
	}
	if v := c.Request.FormValue("isNegotiable"); v != "" {
		item.IsNegotiable = v == "true"
	}
	if v := c.Request.FormValue("isUrgent"); v != "" {
		item.IsUrgent = v == "true"
	}

	for slot, field := range imageFormFields {
		file, err := c.FormFile(field)
		if err != nil || file == nil {
			continue
		}
		// Seul le blob de cet emplacement précis est remplacé
		if old := item.ImageAt(slot); old != "" {
			_ = utils.DeleteImage(old)
		}
		imageURL, err := utils.UploadImage(file, "item_images", "item")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading image: " + err.Error()})
			return
		}
		item.SetImage(slot, imageURL)
	}

	if err := db.DB.Save(&item).Error; err != nil {
		utils.LogError(err, "Error updating item in UpdateItem")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating item: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// @Summary Delete an item
// @Description Delete an item owned by the caller (or by an admin), with its engagement records
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Item deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Item not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /items/{id} [delete]
func DeleteItem(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var item models.Item
	itemID := c.Param("id")

	if err := db.DB.First(&item, "id = ?", itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	userRole, _ := c.Get("user_role")
	if item.CreatedBy != userID.(string) && userRole != string(models.AdminRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this item"})
		return
	}

	for _, imageURL := range item.AllImages() {
		_ = utils.DeleteImage(imageURL)
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", item.ID).Delete(&models.ItemView{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", item.ID).Delete(&models.ItemFavorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		utils.LogError(err, "Error deleting item in DeleteItem")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting item: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Item successfully deleted in DeleteItem")
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

package users

import (
	"errors"
	"net/http"

	"marketplace-backend/db"
	"marketplace-backend/models"
	"marketplace-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetOrCreateProfile retourne le profil d'un utilisateur, en le créant avec
// les valeurs par défaut s'il n'existe pas encore. C'est l'unique point de
// création implicite de profil ; l'index unique sur user_id absorbe les
// créations concurrentes.
func GetOrCreateProfile(userID string) (models.UserProfile, error) {
	var profile models.UserProfile
	err := db.DB.Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return profile, err
	}

	profile = models.UserProfile{
		UserID:             userID,
		AccountType:        models.AccountIndividual,
		VerificationStatus: models.VerificationPending,
		EmailNotifications: true,
		ThemePreference:    models.ThemeLight,
	}
	if err := db.DB.Create(&profile).Error; err != nil {
		// Course perdue sur l'index unique : relire le profil gagnant
		var existing models.UserProfile
		if retryErr := db.DB.Where("user_id = ?", userID).First(&existing).Error; retryErr == nil {
			return existing, nil
		}
		return profile, err
	}
	return profile, nil
}

// @Summary Get the caller's profile
// @Description Retrieve the authenticated user's profile, creating it on first access
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserProfile
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /profile [get]
func GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	profile, err := GetOrCreateProfile(userID.(string))
	if err != nil {
		utils.LogError(err, "Error retrieving profile in GetProfile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving profile: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// @Summary Update the caller's profile
// @Description Update the authenticated user's profile fields
// @Tags users
// @Accept json
// @Produce json
// @Param profile body models.ProfileUpdate true "Profile fields"
// @Security BearerAuth
// @Success 200 {object} models.UserProfile
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /profile [put]
func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	profile, err := GetOrCreateProfile(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving profile: " + err.Error()})
		return
	}

	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if update.PhoneNumber != nil {
		profile.PhoneNumber = *update.PhoneNumber
	}
	if update.Bio != nil {
		profile.Bio = *update.Bio
	}
	if update.Location != nil {
		profile.Location = *update.Location
	}
	if update.Country != nil {
		profile.Country = *update.Country
	}
	if update.AccountType != nil {
		if *update.AccountType != models.AccountIndividual && *update.AccountType != models.AccountBusiness {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account type"})
			return
		}
		profile.AccountType = *update.AccountType
	}
	if update.BusinessName != nil {
		profile.BusinessName = *update.BusinessName
	}
	if update.BusinessRegistration != nil {
		profile.BusinessRegistration = *update.BusinessRegistration
	}
	if update.TaxID != nil {
		profile.TaxID = *update.TaxID
	}
	if update.EmailNotifications != nil {
		profile.EmailNotifications = *update.EmailNotifications
	}
	if update.SMSNotifications != nil {
		profile.SMSNotifications = *update.SMSNotifications
	}
	if update.MarketingEmails != nil {
		profile.MarketingEmails = *update.MarketingEmails
	}

	if err := db.DB.Save(&profile).Error; err != nil {
		utils.LogError(err, "Error updating profile in UpdateProfile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// @Summary Update the caller's profile picture
// @Description Upload a new profile picture for the authenticated user
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param picture formData file true "Profile picture"
// @Security BearerAuth
// @Success 200 {object} models.UserProfile
// @Failure 400 {object} map[string]string "error: Picture is required"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /profile/picture [put]
func UpdateProfilePicture(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	file, err := c.FormFile("picture")
	if err != nil || file == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Picture is required"})
		return
	}

	profile, err := GetOrCreateProfile(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving profile: " + err.Error()})
		return
	}

	if profile.ProfilePicture != "" {
		_ = utils.DeleteImage(profile.ProfilePicture)
	}

	imageURL, err := utils.UploadImage(file, "profile_pictures", "profile")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading picture: " + err.Error()})
		return
	}

	profile.ProfilePicture = imageURL
	if err := db.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// @Summary Update the caller's settings
// @Description Update the authenticated user's theme preference
// @Tags users
// @Accept json
// @Produce json
// @Param settings body models.SettingsUpdate true "Settings"
// @Security BearerAuth
// @Success 200 {object} models.UserProfile
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /profile/settings [put]
func UpdateSettings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var settings models.SettingsUpdate
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if settings.Theme != models.ThemeLight && settings.Theme != models.ThemeDark {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid theme preference"})
		return
	}

	profile, err := GetOrCreateProfile(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving profile: " + err.Error()})
		return
	}

	profile.ThemePreference = settings.Theme
	if err := db.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating settings: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// @Summary Get a public user profile
// @Description Retrieve a user's public profile with their active items
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{} "username, profile, items"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/{id} [get]
func GetPublicProfile(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var profile models.UserProfile
	db.DB.Where("user_id = ?", userID).First(&profile)

	var items []models.Item
	db.DB.Where("created_by = ? AND status = ? AND admin_approved = ?", userID, models.StatusActive, true).
		Order("created_at DESC, id DESC").
		Limit(utils.ItemsPerPage).
		Find(&items)

	c.JSON(http.StatusOK, gin.H{
		"username": user.UserName,
		"profile":  profile,
		"items":    items,
	})
}

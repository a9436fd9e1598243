package db

import (
	"errors"

	"marketplace-backend/models"
	"marketplace-backend/utils"

	"gorm.io/gorm"
)

var defaultCategories = []models.Category{
	{Name: "Electronics & Appliances", Slug: "electronics-appliances", CategoryType: models.CatElectronics, Icon: "fas fa-laptop"},
	{Name: "Fashion & Beauty", Slug: "fashion-beauty", CategoryType: models.CatBeauty, Icon: "fas fa-tshirt"},
	{Name: "Home & Furniture", Slug: "home-furniture", CategoryType: models.CatFurniture, Icon: "fas fa-couch"},
	{Name: "Vehicles & Auto Parts", Slug: "vehicles-auto-parts", CategoryType: models.CatCars, Icon: "fas fa-car"},
	{Name: "Property & Real Estate", Slug: "property-real-estate", CategoryType: models.CatHousesSale, Icon: "fas fa-home"},
	{Name: "Jobs & Services", Slug: "jobs-services", CategoryType: models.CatProfessionalServices, Icon: "fas fa-briefcase"},
	{Name: "Agriculture & Food", Slug: "agriculture-food", CategoryType: models.CatAgriProducts, Icon: "fas fa-seedling"},
	{Name: "Health & Wellness", Slug: "health-wellness", CategoryType: models.CatHealthWellness, Icon: "fas fa-heartbeat"},
	{Name: "Kids & Baby", Slug: "kids-baby", CategoryType: models.CatBabyItems, Icon: "fas fa-baby"},
	{Name: "Education & Training", Slug: "education-training", CategoryType: models.CatTutoring, Icon: "fas fa-graduation-cap"},
	{Name: "Events & Entertainment", Slug: "events-entertainment", CategoryType: models.CatEventServices, Icon: "fas fa-music"},
	{Name: "Others", Slug: "others", CategoryType: models.CatOther, Icon: "fas fa-ellipsis-h"},
}

// SeedCategories crée les catégories par défaut si elles n'existent pas encore.
// Idempotent : le slug sert de clé de rapprochement.
func SeedCategories() error {
	created := 0
	for _, cat := range defaultCategories {
		var existing models.Category
		err := DB.Where("slug = ?", cat.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogError(err, "Error checking category "+cat.Slug)
			return err
		}
		cat.IsActive = true
		if err := DB.Create(&cat).Error; err != nil {
			utils.LogError(err, "Error creating category "+cat.Slug)
			return err
		}
		created++
	}
	if created > 0 {
		utils.LogSuccess("Seeded default categories")
	}
	return nil
}

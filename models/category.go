package models

import (
	"time"
)

type CategoryType string

// Taxonomie fixe des catégories. Ajouter une valeur est rétrocompatible,
// renommer ou supprimer ne l'est pas.
const (
	// Electronics & Technology
	CatElectronics   CategoryType = "electronics"
	CatPhonesTablets CategoryType = "phones_tablets"
	CatComputers     CategoryType = "computers_laptops"
	CatCameras       CategoryType = "cameras_photo"
	CatAudio         CategoryType = "audio_headphones"
	CatGaming        CategoryType = "gaming_consoles"
	CatSmartHome     CategoryType = "smart_home"
	CatWearables     CategoryType = "wearable_tech"

	// Vehicles & Transportation
	CatCars        CategoryType = "cars"
	CatMotorcycles CategoryType = "motorcycles"
	CatBicycles    CategoryType = "bicycles"
	CatTrucks      CategoryType = "trucks_commercial"
	CatAutoParts   CategoryType = "auto_parts"
	CatBoats       CategoryType = "boats_marine"

	// Real Estate & Property
	CatHousesSale      CategoryType = "houses_sale"
	CatApartmentsRent  CategoryType = "apartments_rent"
	CatCommercialProp  CategoryType = "commercial_property"
	CatLandPlots       CategoryType = "land_plots"
	CatVacationRentals CategoryType = "vacation_rentals"

	// Fashion & Beauty
	CatMensClothing   CategoryType = "mens_clothing"
	CatWomensClothing CategoryType = "womens_clothing"
	CatShoes          CategoryType = "shoes_footwear"
	CatBags           CategoryType = "bags_accessories"
	CatJewelry        CategoryType = "jewelry_watches"
	CatBeauty         CategoryType = "beauty_cosmetics"

	// Home & Garden
	CatFurniture  CategoryType = "furniture"
	CatHomeDecor  CategoryType = "home_decor"
	CatKitchen    CategoryType = "kitchen_dining"
	CatGarden     CategoryType = "garden_outdoor"
	CatTools      CategoryType = "tools_hardware"
	CatAppliances CategoryType = "appliances"

	// Sports & Recreation
	CatSportsEquipment CategoryType = "sports_equipment"
	CatFitness         CategoryType = "fitness_gym"
	CatOutdoorCamping  CategoryType = "outdoor_camping"
	CatSportsBicycles  CategoryType = "bicycles_sports"
	CatWaterSports     CategoryType = "water_sports"

	// Services
	CatProfessionalServices CategoryType = "professional_services"
	CatHomeServices         CategoryType = "home_services"
	CatTutoring             CategoryType = "tutoring_education"
	CatHealthWellness       CategoryType = "health_wellness"
	CatEventServices        CategoryType = "event_services"
	CatBusinessServices     CategoryType = "business_services"
	CatLegalServices        CategoryType = "legal_services"
	CatFinancialServices    CategoryType = "financial_services"

	// Jobs & Employment
	CatFullTimeJobs CategoryType = "full_time_jobs"
	CatPartTimeJobs CategoryType = "part_time_jobs"
	CatFreelance    CategoryType = "freelance_gigs"
	CatInternships  CategoryType = "internships"
	CatRemoteWork   CategoryType = "remote_work"

	// Baby & Kids
	CatBabyItems       CategoryType = "baby_items"
	CatKidsClothing    CategoryType = "kids_clothing"
	CatToysGames       CategoryType = "toys_games"
	CatBabyGear        CategoryType = "baby_gear"
	CatEducationalToys CategoryType = "educational_toys"

	// Books & Media
	CatBooks                CategoryType = "books"
	CatMoviesMusic          CategoryType = "movies_music"
	CatMagazines            CategoryType = "magazines"
	CatEducationalMaterials CategoryType = "educational_materials"

	// Pets & Animals
	CatPetsSale    CategoryType = "pets_sale"
	CatPetSupplies CategoryType = "pet_supplies"
	CatPetServices CategoryType = "pet_services"
	CatLivestock   CategoryType = "livestock"

	// Food & Agriculture
	CatFreshProduce  CategoryType = "fresh_produce"
	CatPackagedFoods CategoryType = "packaged_foods"
	CatAgriProducts  CategoryType = "agricultural_products"
	CatFarmEquipment CategoryType = "farming_equipment"

	// Art & Collectibles
	CatArtwork      CategoryType = "artwork"
	CatAntiques     CategoryType = "antiques"
	CatCollectibles CategoryType = "collectibles"
	CatCrafts       CategoryType = "crafts_handmade"

	// Business & Industrial
	CatOfficeSupplies      CategoryType = "office_supplies"
	CatIndustrialEquipment CategoryType = "industrial_equipment"
	CatBusinessEquipment   CategoryType = "business_equipment"
	CatWholesale           CategoryType = "wholesale_bulk"

	// Other
	CatOther CategoryType = "other"
)

type Category struct {
	ID           string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name         string       `json:"name" binding:"required"`
	Slug         string       `json:"slug" gorm:"uniqueIndex"`
	CategoryType CategoryType `json:"categoryType" gorm:"column:category_type;default:'other'"`
	Icon         string       `json:"icon" gorm:"default:'fas fa-tag'"`
	Description  string       `json:"description"`
	IsActive     bool         `json:"isActive" gorm:"column:is_active;default:true"`
	ParentID     *string      `json:"parentId,omitempty" gorm:"column:parent_id;type:uuid"`
	CreatedAt    time.Time    `json:"createdAt"`
}

type CategoryCreate struct {
	Name         string       `json:"name" binding:"required"`
	Slug         string       `json:"slug" binding:"required"`
	CategoryType CategoryType `json:"categoryType"`
	Icon         string       `json:"icon"`
	Description  string       `json:"description"`
	ParentID     *string      `json:"parentId"`
}

type CategoryUpdate struct {
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	IsActive    *bool   `json:"isActive"`
	ParentID    *string `json:"parentId"`
}

func (Category) TableName() string {
	return "categories"
}

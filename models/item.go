package models

import (
	"time"
)

type ItemCondition string

const (
	ConditionNew       ItemCondition = "new"
	ConditionLikeNew   ItemCondition = "like_new"
	ConditionExcellent ItemCondition = "excellent"
	ConditionGood      ItemCondition = "good"
	ConditionFair      ItemCondition = "fair"
	ConditionPoor      ItemCondition = "poor"
)

type ItemStatus string

const (
	StatusActive  ItemStatus = "active"
	StatusSold    ItemStatus = "sold"
	StatusPending ItemStatus = "pending"
	StatusRemoved ItemStatus = "removed"
	StatusExpired ItemStatus = "expired"
)

func ValidConditions() []ItemCondition {
	return []ItemCondition{
		ConditionNew, ConditionLikeNew, ConditionExcellent,
		ConditionGood, ConditionFair, ConditionPoor,
	}
}

func ValidStatuses() []ItemStatus {
	return []ItemStatus{
		StatusActive, StatusSold, StatusPending, StatusRemoved, StatusExpired,
	}
}

type Item struct {
	ID          string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CategoryID  string        `json:"categoryId" gorm:"column:category_id;type:uuid;not null;index:idx_items_category_status"`
	Category    *Category     `json:"category,omitempty"`
	Name        string        `json:"name" binding:"required"`
	Description string        `json:"description"`
	Price       float64       `json:"price" gorm:"type:decimal(10,2)"`
	Condition   ItemCondition `json:"condition" gorm:"default:'good'"`
	Status      ItemStatus    `json:"status" gorm:"default:'active';index:idx_items_status_approved;index:idx_items_category_status"`

	// Images Cloudinary, 5 emplacements maximum
	ImageURL  string `json:"imageUrl" gorm:"column:image_url"`
	ImageURL2 string `json:"imageUrl2" gorm:"column:image_url_2"`
	ImageURL3 string `json:"imageUrl3" gorm:"column:image_url_3"`
	ImageURL4 string `json:"imageUrl4" gorm:"column:image_url_4"`
	ImageURL5 string `json:"imageUrl5" gorm:"column:image_url_5"`

	Location          string `json:"location"`
	DeliveryAvailable bool   `json:"deliveryAvailable" gorm:"column:delivery_available;default:false"`
	PickupAvailable   bool   `json:"pickupAvailable" gorm:"column:pickup_available;default:true"`

	Views     uint `json:"views" gorm:"default:0"`
	Favorites uint `json:"favorites" gorm:"default:0"`

	IsFeatured    bool   `json:"isFeatured" gorm:"column:is_featured;default:false"`
	IsUrgent      bool   `json:"isUrgent" gorm:"column:is_urgent;default:false"`
	IsNegotiable  bool   `json:"isNegotiable" gorm:"column:is_negotiable;default:true"`
	IsReported    bool   `json:"isReported" gorm:"column:is_reported;default:false"`
	AdminApproved bool   `json:"adminApproved" gorm:"column:admin_approved;default:true;index:idx_items_status_approved"`
	RemovalReason string `json:"removalReason,omitempty" gorm:"column:removal_reason"`

	CreatedBy string     `json:"createdBy" gorm:"column:created_by;type:uuid;not null"`
	CreatedAt time.Time  `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time  `json:"updatedAt"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty" gorm:"column:expires_at"`

	MetaTitle       string `json:"metaTitle,omitempty" gorm:"column:meta_title;size:60"`
	MetaDescription string `json:"metaDescription,omitempty" gorm:"column:meta_description;size:160"`
}

func (Item) TableName() string {
	return "items"
}

func (i *Item) IsSold() bool {
	return i.Status == StatusSold
}

// IsPubliclyVisible indique si l'annonce apparaît dans les résultats publics.
func (i *Item) IsPubliclyVisible() bool {
	return i.Status == StatusActive && i.AdminApproved
}

// AllImages retourne les URLs d'images renseignées, dans l'ordre des emplacements.
func (i *Item) AllImages() []string {
	slots := [5]string{i.ImageURL, i.ImageURL2, i.ImageURL3, i.ImageURL4, i.ImageURL5}
	images := make([]string, 0, 5)
	for _, url := range slots {
		if url != "" {
			images = append(images, url)
		}
	}
	return images
}

// SetImage remplit un emplacement d'image (index 0 à 4).
// ImageAt retourne l'URL de l'emplacement demandé, vide si l'emplacement
// est libre. Contrairement à AllImages, les emplacements vides comptent.
func (i *Item) ImageAt(slot int) string {
	switch slot {
	case 0:
		return i.ImageURL
	case 1:
		return i.ImageURL2
	case 2:
		return i.ImageURL3
	case 3:
		return i.ImageURL4
	case 4:
		return i.ImageURL5
	}
	return ""
}

func (i *Item) SetImage(slot int, url string) {
	switch slot {
	case 0:
		i.ImageURL = url
	case 1:
		i.ImageURL2 = url
	case 2:
		i.ImageURL3 = url
	case 3:
		i.ImageURL4 = url
	case 4:
		i.ImageURL5 = url
	}
}

package models

import (
	"time"
)

// ItemView enregistre une identité de consultation distincte (item, user, ip).
// Table append-only, jamais mise à jour.
type ItemView struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ItemID    string    `json:"itemId" gorm:"column:item_id;type:uuid;not null;uniqueIndex:idx_item_views_identity"`
	UserID    *string   `json:"userId,omitempty" gorm:"column:user_id;type:uuid;uniqueIndex:idx_item_views_identity"`
	IPAddress string    `json:"ipAddress" gorm:"column:ip_address;uniqueIndex:idx_item_views_identity"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ItemView) TableName() string {
	return "item_views"
}

package models

import (
	"time"
)

// ItemFavorite matérialise le favori d'un utilisateur sur une annonce.
// L'existence de la ligne est l'état, il n'y a pas de booléen séparé.
type ItemFavorite struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ItemID    string    `json:"itemId" gorm:"column:item_id;type:uuid;not null;uniqueIndex:idx_item_favorites_item_user"`
	UserID    string    `json:"userId" gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_item_favorites_item_user"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ItemFavorite) TableName() string {
	return "item_favorites"
}

package models

import (
	"time"
)

// UserReview est la note laissée par un acheteur à un vendeur (ou inversement)
// dans le contexte d'une annonce. Une seule note par (reviewer, reviewed, item).
type UserReview struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ReviewerID     string    `json:"reviewerId" gorm:"column:reviewer_id;type:uuid;not null;uniqueIndex:idx_user_reviews_unique"`
	ReviewedUserID string    `json:"reviewedUserId" gorm:"column:reviewed_user_id;type:uuid;not null;uniqueIndex:idx_user_reviews_unique"`
	ItemID         string    `json:"itemId" gorm:"column:item_id;type:uuid;not null;uniqueIndex:idx_user_reviews_unique"`
	Rating         int       `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ReviewCreate struct {
	ItemID  string `json:"itemId" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (UserReview) TableName() string {
	return "user_reviews"
}

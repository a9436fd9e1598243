package models

import (
	"time"
)

type AdminActionType string

const (
	ActionSuspendUser        AdminActionType = "suspend_user"
	ActionUnsuspendUser      AdminActionType = "unsuspend_user"
	ActionRemoveListing      AdminActionType = "remove_listing"
	ActionVerifyUser         AdminActionType = "verify_user"
	ActionRejectVerification AdminActionType = "reject_verification"
	ActionWarning            AdminActionType = "warning"
	ActionBanUser            AdminActionType = "ban_user"
	ActionFeatureListing     AdminActionType = "feature_listing"
	ActionUnfeatureListing   AdminActionType = "unfeature_listing"
	ActionApproveListing     AdminActionType = "approve_listing"
)

// AdminAction est le journal d'audit de la modération. Append-only : jamais
// modifié ni supprimé en fonctionnement normal.
type AdminAction struct {
	ID           string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AdminID      string          `json:"adminId" gorm:"column:admin_id;type:uuid;not null"`
	TargetUserID *string         `json:"targetUserId,omitempty" gorm:"column:target_user_id;type:uuid"`
	TargetItemID *string         `json:"targetItemId,omitempty" gorm:"column:target_item_id;type:uuid"`
	ActionType   AdminActionType `json:"actionType" gorm:"column:action_type;not null"`
	Reason       string          `json:"reason"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func (AdminAction) TableName() string {
	return "admin_actions"
}

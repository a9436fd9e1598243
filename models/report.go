package models

import (
	"time"
)

type ReportType string

const (
	ReportInappropriate  ReportType = "inappropriate_content"
	ReportSpam           ReportType = "spam"
	ReportFraud          ReportType = "fraud"
	ReportFakeListing    ReportType = "fake_listing"
	ReportHarassment     ReportType = "harassment"
	ReportCounterfeit    ReportType = "counterfeit"
	ReportProhibited     ReportType = "prohibited_items"
	ReportMisleadingInfo ReportType = "misleading_info"
	ReportOther          ReportType = "other"
)

func ValidReportTypes() []ReportType {
	return []ReportType{
		ReportInappropriate, ReportSpam, ReportFraud, ReportFakeListing,
		ReportHarassment, ReportCounterfeit, ReportProhibited,
		ReportMisleadingInfo, ReportOther,
	}
}

type ReportStatus string

const (
	ReportPending       ReportStatus = "pending"
	ReportInvestigating ReportStatus = "investigating"
	ReportResolved      ReportStatus = "resolved"
	ReportDismissed     ReportStatus = "dismissed"
)

type Report struct {
	ID             string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ReporterID     string       `json:"reporterId" gorm:"column:reporter_id;type:uuid;not null"`
	ReportedUserID *string      `json:"reportedUserId,omitempty" gorm:"column:reported_user_id;type:uuid"`
	ReportedItemID *string      `json:"reportedItemId,omitempty" gorm:"column:reported_item_id;type:uuid"`
	ReportType     ReportType   `json:"reportType" gorm:"column:report_type;not null"`
	Description    string       `json:"description"`
	Status         ReportStatus `json:"status" gorm:"default:'pending'"`
	CreatedAt      time.Time    `json:"createdAt"`
	ResolvedAt     *time.Time   `json:"resolvedAt,omitempty" gorm:"column:resolved_at"`
	ResolvedBy     *string      `json:"resolvedBy,omitempty" gorm:"column:resolved_by;type:uuid"`
}

type ReportCreate struct {
	ReportType  ReportType `json:"reportType" binding:"required"`
	Description string     `json:"description"`
}

type ReportStatusUpdate struct {
	Status ReportStatus `json:"status" binding:"required"`
}

func (Report) TableName() string {
	return "reports"
}

// CanTransitionTo applique le cycle de vie des signalements : uniquement vers
// l'avant, resolved et dismissed sont terminaux.
func (r *Report) CanTransitionTo(next ReportStatus) bool {
	switch r.Status {
	case ReportPending:
		return next == ReportInvestigating || next == ReportResolved || next == ReportDismissed
	case ReportInvestigating:
		return next == ReportResolved || next == ReportDismissed
	default:
		return false
	}
}

package admin

import (
	"net/http"
	"time"

	"marketplace-backend/db"
	"marketplace-backend/models"
	"marketplace-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BulkItemRequest struct {
	Action  string   `json:"action" binding:"required"`
	ItemIDs []string `json:"itemIds" binding:"required"`
	Reason  string   `json:"reason"`
}

type BulkUserRequest struct {
	Action  string   `json:"action" binding:"required"`
	UserIDs []string `json:"userIds" binding:"required"`
	Reason  string   `json:"reason"`
}

// itemActionSpec décrit une action de modération sur les annonces : champs à
// appliquer et type d'entrée d'audit. La composition remplace l'héritage de
// classes d'admin de l'ancien monde.
type itemActionSpec struct {
	actionType models.AdminActionType
	updates    func(reason string) map[string]interface{}
}

var itemActions = map[string]itemActionSpec{
	"approve": {
		actionType: models.ActionApproveListing,
		updates: func(string) map[string]interface{} {
			return map[string]interface{}{"admin_approved": true, "status": models.StatusActive}
		},
	},
	"remove": {
		actionType: models.ActionRemoveListing,
		updates: func(reason string) map[string]interface{} {
			return map[string]interface{}{"admin_approved": false, "status": models.StatusRemoved, "removal_reason": reason}
		},
	},
	"feature": {
		actionType: models.ActionFeatureListing,
		updates: func(string) map[string]interface{} {
			return map[string]interface{}{"is_featured": true}
		},
	},
	"unfeature": {
		actionType: models.ActionUnfeatureListing,
		updates: func(string) map[string]interface{} {
			return map[string]interface{}{"is_featured": false}
		},
	},
}

// @Summary Bulk moderate items (Admin only)
// @Description Apply approve, remove, feature or unfeature to a set of items. One audit entry per item.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body BulkItemRequest true "Action, item IDs and reason"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "updated, actions"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /admin/items/bulk [post]
func BulkItemAction(c *gin.Context) {
	adminID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var request BulkItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	spec, ok := itemActions[request.Action]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action: " + request.Action})
		return
	}

	if len(request.ItemIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No item IDs provided"})
		return
	}

	var items []models.Item
	if err := db.DB.Where("id IN ?", request.ItemIDs).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving items: " + err.Error()})
		return
	}

	actionsCreated := 0
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if err := tx.Model(&models.Item{}).Where("id = ?", item.ID).
				Updates(spec.updates(request.Reason)).Error; err != nil {
				return err
			}

			// Une entrée d'audit par annonce, même si rien n'a changé
			itemID := item.ID
			ownerID := item.CreatedBy
			action := models.AdminAction{
				AdminID:      adminID.(string),
				TargetItemID: &itemID,
				TargetUserID: &ownerID,
				ActionType:   spec.actionType,
				Reason:       request.Reason,
			}
			if err := tx.Create(&action).Error; err != nil {
				return err
			}
			actionsCreated++
		}
		return nil
	})
	if err != nil {
		utils.LogErrorWithUser(adminID, err, "Error applying bulk item action in BulkItemAction")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error applying action: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(adminID, "Bulk item action applied in BulkItemAction")
	c.JSON(http.StatusOK, gin.H{
		"updated": len(items),
		"actions": actionsCreated,
	})
}

// userActionSpec décrit une action de modération sur les comptes. apply peut
// être nil pour les actions qui ne font que journaliser (warning).
type userActionSpec struct {
	actionType models.AdminActionType
	apply      func(reason string) map[string]interface{}
}

var userActions = map[string]userActionSpec{
	"suspend": {
		actionType: models.ActionSuspendUser,
		apply: func(reason string) map[string]interface{} {
			return map[string]interface{}{"is_suspended": true, "suspension_reason": reason}
		},
	},
	"unsuspend": {
		actionType: models.ActionUnsuspendUser,
		apply: func(string) map[string]interface{} {
			return map[string]interface{}{"is_suspended": false, "suspension_reason": ""}
		},
	},
	"verify": {
		actionType: models.ActionVerifyUser,
		apply: func(string) map[string]interface{} {
			return map[string]interface{}{"is_verified": true, "verification_status": models.VerificationVerified}
		},
	},
	"reject_verification": {
		actionType: models.ActionRejectVerification,
		apply: func(string) map[string]interface{} {
			return map[string]interface{}{"is_verified": false, "verification_status": models.VerificationRejected}
		},
	},
	"warning": {
		actionType: models.ActionWarning,
		apply:      nil,
	},
	"ban": {
		actionType: models.ActionBanUser,
		apply: func(reason string) map[string]interface{} {
			return map[string]interface{}{"is_suspended": true, "suspension_reason": reason}
		},
	},
}

// @Summary Bulk moderate users (Admin only)
// @Description Apply suspend, unsuspend, verify, reject_verification, warning or ban to a set of users. Users without a profile are skipped.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body BulkUserRequest true "Action, user IDs and reason"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "updated, skipped, actions"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /admin/users/bulk [post]
func BulkUserAction(c *gin.Context) {
	adminID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var request BulkUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	spec, ok := userActions[request.Action]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action: " + request.Action})
		return
	}

	if len(request.UserIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No user IDs provided"})
		return
	}

	updated := 0
	skipped := 0
	actionsCreated := 0
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		for _, userID := range request.UserIDs {
			// Précondition : le profil doit exister
			var profile models.UserProfile
			if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
				skipped++
				continue
			}

			if spec.apply != nil {
				if err := tx.Model(&models.UserProfile{}).Where("user_id = ?", userID).
					Updates(spec.apply(request.Reason)).Error; err != nil {
					return err
				}
				updated++
			}

			targetID := userID
			action := models.AdminAction{
				AdminID:      adminID.(string),
				TargetUserID: &targetID,
				ActionType:   spec.actionType,
				Reason:       request.Reason,
			}
			if err := tx.Create(&action).Error; err != nil {
				return err
			}
			actionsCreated++
		}
		return nil
	})
	if err != nil {
		utils.LogErrorWithUser(adminID, err, "Error applying bulk user action in BulkUserAction")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error applying action: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(adminID, "Bulk user action applied in BulkUserAction")
	c.JSON(http.StatusOK, gin.H{
		"updated": updated,
		"skipped": skipped,
		"actions": actionsCreated,
	})
}

// @Summary Update a report status (Admin only)
// @Description Move a report forward in its lifecycle. Resolved and dismissed are terminal.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param status body models.ReportStatusUpdate true "New status"
// @Security BearerAuth
// @Success 200 {object} models.Report
// @Failure 400 {object} map[string]string "error: Invalid transition"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Report not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /admin/reports/{id} [put]
func UpdateReportStatus(c *gin.Context) {
	adminID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var update models.ReportStatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	switch update.Status {
	case models.ReportInvestigating, models.ReportResolved, models.ReportDismissed:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report status: " + string(update.Status)})
		return
	}

	var report models.Report
	if err := db.DB.First(&report, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	if !report.CanTransitionTo(update.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot transition report from " + string(report.Status) + " to " + string(update.Status)})
		return
	}

	report.Status = update.Status
	if update.Status == models.ReportResolved || update.Status == models.ReportDismissed {
		id := adminID.(string)
		now := time.Now()
		report.ResolvedBy = &id
		report.ResolvedAt = &now
	}

	if err := db.DB.Save(&report).Error; err != nil {
		utils.LogErrorWithUser(adminID, err, "Error updating report in UpdateReportStatus")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating report: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(adminID, "Report status updated in UpdateReportStatus")
	c.JSON(http.StatusOK, report)
}

// @Summary Get all reports (Admin only)
// @Description Retrieve all reports, optionally filtered by status
// @Tags admin
// @Produce json
// @Param status query string false "Filter by status"
// @Security BearerAuth
// @Success 200 {array} models.Report
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /admin/reports [get]
func GetAllReports(c *gin.Context) {
	query := db.DB.Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var reports []models.Report
	if err := query.Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving reports: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// @Summary Get the moderation audit log (Admin only)
// @Description Retrieve admin actions, most recent first
// @Tags admin
// @Produce json
// @Param action_type query string false "Filter by action type"
// @Security BearerAuth
// @Success 200 {array} models.AdminAction
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /admin/actions [get]
func GetAdminActions(c *gin.Context) {
	query := db.DB.Order("created_at DESC")

	if actionType := c.Query("action_type"); actionType != "" {
		query = query.Where("action_type = ?", actionType)
	}

	var actions []models.AdminAction
	if err := query.Find(&actions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving admin actions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, actions)
}

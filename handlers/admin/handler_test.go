package admin

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"marketplace-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func adminRouter(route string, adminID string, handler gin.HandlerFunc) *gin.Engine {
	r := testutils.SetupTestRouter()
	r.Handle(http.MethodPost, route, func(c *gin.Context) {
		// Simuler l'authentification admin
		c.Set("user_id", adminID)
		c.Set("user_role", "ADMIN")
		handler(c)
	})
	return r
}

// Test pour l'approbation en masse : une entrée d'audit par annonce
func TestBulkItemAction_Approve(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	adminID := uuid.New().String()
	itemIDs := []string{uuid.New().String(), uuid.New().String(), uuid.New().String()}
	ownerID := uuid.New().String()

	rows := sqlmock.NewRows([]string{"id", "created_by", "status", "admin_approved"})
	for _, id := range itemIDs {
		rows.AddRow(id, ownerID, "pending", false)
	}

	// Mock pour charger les annonces ciblées
	mock.ExpectQuery(`SELECT (.+) FROM "items" WHERE id IN`).
		WillReturnRows(rows)

	mock.ExpectBegin()
	for range itemIDs {
		// Mock pour appliquer l'approbation
		mock.ExpectExec(`UPDATE "items" SET (.+) WHERE id = \$`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		// Mock pour l'entrée d'audit
		mock.ExpectQuery(`INSERT INTO "admin_actions" (.+) RETURNING "id"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	}
	mock.ExpectCommit()

	body, _ := json.Marshal(map[string]interface{}{
		"action":  "approve",
		"itemIds": itemIDs,
		"reason":  "Looks legitimate",
	})

	r := adminRouter("/admin/items/bulk", adminID, BulkItemAction)

	req, _ := http.NewRequest(http.MethodPost, "/admin/items/bulk", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, float64(3), respBody["updated"])
	assert.Equal(t, float64(3), respBody["actions"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Test pour une action inconnue (cas d'échec)
func TestBulkItemAction_UnknownAction(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	body, _ := json.Marshal(map[string]interface{}{
		"action":  "promote",
		"itemIds": []string{uuid.New().String()},
	})

	r := adminRouter("/admin/items/bulk", uuid.New().String(), BulkItemAction)

	req, _ := http.NewRequest(http.MethodPost, "/admin/items/bulk", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Unknown action")
}

// Test pour la suspension en masse : les comptes sans profil sont ignorés
func TestBulkUserAction_SuspendSkipsMissingProfiles(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	adminID := uuid.New().String()
	withProfile := uuid.New().String()
	withoutProfile := uuid.New().String()

	mock.ExpectBegin()

	// Premier utilisateur : profil présent, suspension appliquée
	mock.ExpectQuery(`SELECT (.+) FROM "user_profiles" WHERE user_id = \$1 (.+)LIMIT`).
		WithArgs(withProfile, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "is_suspended"}).
			AddRow(uuid.New().String(), withProfile, false))
	mock.ExpectExec(`UPDATE "user_profiles" SET (.+) WHERE user_id = \$`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "admin_actions" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))

	// Second utilisateur : pas de profil, ignoré sans entrée d'audit
	mock.ExpectQuery(`SELECT (.+) FROM "user_profiles" WHERE user_id = \$1 (.+)LIMIT`).
		WithArgs(withoutProfile, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectCommit()

	body, _ := json.Marshal(map[string]interface{}{
		"action":  "suspend",
		"userIds": []string{withProfile, withoutProfile},
		"reason":  "Spam listings",
	})

	r := adminRouter("/admin/users/bulk", adminID, BulkUserAction)

	req, _ := http.NewRequest(http.MethodPost, "/admin/users/bulk", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, float64(1), respBody["updated"])
	assert.Equal(t, float64(1), respBody["skipped"])
	assert.Equal(t, float64(1), respBody["actions"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Test pour un avertissement : journalisé sans toucher le profil
func TestBulkUserAction_WarningOnlyLogs(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	adminID := uuid.New().String()
	userID := uuid.New().String()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "user_profiles" WHERE user_id = \$1 (.+)LIMIT`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
			AddRow(uuid.New().String(), userID))
	mock.ExpectQuery(`INSERT INTO "admin_actions" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	body, _ := json.Marshal(map[string]interface{}{
		"action":  "warning",
		"userIds": []string{userID},
		"reason":  "Misleading description",
	})

	r := adminRouter("/admin/users/bulk", adminID, BulkUserAction)

	req, _ := http.NewRequest(http.MethodPost, "/admin/users/bulk", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, float64(0), respBody["updated"])
	assert.Equal(t, float64(1), respBody["actions"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Test pour la résolution d'un signalement : horodatage et résolveur posés
func TestUpdateReportStatus_Resolve(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	adminID := uuid.New().String()
	reportID := uuid.New().String()

	mock.ExpectQuery(`SELECT (.+) FROM "reports" WHERE id = \$1 (.+)LIMIT`).
		WithArgs(reportID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "reporter_id"}).
			AddRow(reportID, "pending", uuid.New().String()))

	// Seule la table reports est touchée : la résolution ne remet jamais
	// is_reported à faux sur l'annonce signalée
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "reports" SET (.+) WHERE "id" = \$`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body, _ := json.Marshal(map[string]string{"status": "resolved"})

	r := testutils.SetupTestRouter()
	r.PUT("/admin/reports/:id", func(c *gin.Context) {
		c.Set("user_id", adminID)
		c.Set("user_role", "ADMIN")
		UpdateReportStatus(c)
	})

	req, _ := http.NewRequest(http.MethodPut, "/admin/reports/"+reportID, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "resolved", respBody["status"])
	assert.Equal(t, adminID, respBody["resolvedBy"])
	assert.NotNil(t, respBody["resolvedAt"])
	// Aucune mise à jour d'items attendue ni exécutée
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Test pour une transition arrière interdite (cas d'échec)
func TestUpdateReportStatus_BackwardTransitionRejected(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	reportID := uuid.New().String()

	mock.ExpectQuery(`SELECT (.+) FROM "reports" WHERE id = \$1 (.+)LIMIT`).
		WithArgs(reportID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow(reportID, "resolved"))

	body, _ := json.Marshal(map[string]string{"status": "investigating"})

	r := testutils.SetupTestRouter()
	r.PUT("/admin/reports/:id", func(c *gin.Context) {
		c.Set("user_id", uuid.New().String())
		c.Set("user_role", "ADMIN")
		UpdateReportStatus(c)
	})

	req, _ := http.NewRequest(http.MethodPut, "/admin/reports/"+reportID, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Cannot transition report")
}

// Test pour un statut hors vocabulaire (cas d'échec)
func TestUpdateReportStatus_InvalidStatus(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	body, _ := json.Marshal(map[string]string{"status": "archived"})

	r := testutils.SetupTestRouter()
	r.PUT("/admin/reports/:id", func(c *gin.Context) {
		c.Set("user_id", uuid.New().String())
		c.Set("user_role", "ADMIN")
		UpdateReportStatus(c)
	})

	req, _ := http.NewRequest(http.MethodPut, "/admin/reports/"+uuid.New().String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

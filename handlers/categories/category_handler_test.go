package categories

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

// Test pour lister les catégories actives (cas de succès)
func TestGetAllCategories_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "categories" WHERE is_active = \$1 ORDER BY name ASC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(uuid.New().String(), "Electronics", "electronics").
			AddRow(uuid.New().String(), "Furniture", "furniture"))

	r := testutils.SetupTestRouter()
	r.GET("/categories", GetAllCategories)

	req, _ := http.NewRequest(http.MethodGet, "/categories", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Len(t, respBody, 2)
	assert.Equal(t, "Electronics", respBody[0]["name"])
}

// Test pour créer une catégorie (cas de succès)
func TestCreateCategory_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// Mock pour vérifier l'unicité du slug
	mock.ExpectQuery(`SELECT (.+) FROM "categories" WHERE slug = \$1 (.+)LIMIT`).
		WithArgs("bicycles", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "categories" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	body, _ := json.Marshal(map[string]string{
		"name": "Bicycles",
		"slug": "bicycles",
	})

	r := testutils.SetupTestRouter()
	r.POST("/categories", CreateCategory)

	req, _ := http.NewRequest(http.MethodPost, "/categories", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Bicycles", respBody["name"])
	// Valeurs par défaut appliquées
	assert.Equal(t, "other", respBody["categoryType"])
	assert.Equal(t, true, respBody["isActive"])
}

// Test pour un slug déjà pris (cas d'échec)
func TestCreateCategory_SlugConflict(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "categories" WHERE slug = \$1 (.+)LIMIT`).
		WithArgs("electronics", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug"}).
			AddRow(uuid.New().String(), "electronics"))

	body, _ := json.Marshal(map[string]string{
		"name": "Electronics bis",
		"slug": "electronics",
	})

	r := testutils.SetupTestRouter()
	r.POST("/categories", CreateCategory)

	req, _ := http.NewRequest(http.MethodPost, "/categories", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "slug already exists")
}

// Test pour supprimer une catégorie encore référencée (cas d'échec)
func TestDeleteCategory_StillHasItems(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	categoryID := uuid.New().String()

	mock.ExpectQuery(`SELECT (.+) FROM "categories" WHERE id = \$1 (.+)LIMIT`).
		WithArgs(categoryID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(categoryID, "Furniture"))

	// Des annonces référencent encore la catégorie
	mock.ExpectQuery(`SELECT count\(\*\) FROM "items" WHERE category_id = \$1`).
		WithArgs(categoryID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	r := testutils.SetupTestRouter()
	r.DELETE("/categories/:id", DeleteCategory)

	req, _ := http.NewRequest(http.MethodDelete, "/categories/"+categoryID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "still has items")
}

// Test pour supprimer une catégorie vide (cas de succès)
func TestDeleteCategory_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	categoryID := uuid.New().String()

	mock.ExpectQuery(`SELECT (.+) FROM "categories" WHERE id = \$1 (.+)LIMIT`).
		WithArgs(categoryID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(categoryID, "Empty"))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "items" WHERE category_id = \$1`).
		WithArgs(categoryID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories" WHERE parent_id = \$1`).
		WithArgs(categoryID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "categories" WHERE "categories"."id" = \$1`).
		WithArgs(categoryID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/categories/:id", DeleteCategory)

	req, _ := http.NewRequest(http.MethodDelete, "/categories/"+categoryID, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Category deleted successfully", respBody["message"])
}

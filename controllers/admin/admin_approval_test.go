package adminController

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jsnacademy/trb-prep-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Profile{}, &models.Cart{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func newTestContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/admin/verifications/approve", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func seedProfile(t *testing.T, db *gorm.DB, id string, status models.VerificationStatus) {
	t.Helper()
	require.NoError(t, db.Create(&models.Profile{
		ID:                 id,
		FullName:           "Test User " + id,
		Email:              id + "@example.com",
		PasswordHash:       "x",
		VerificationStatus: status,
	}).Error)
}

func TestApproveVerification(t *testing.T) {
	db := setupTestDB(t)
	seedProfile(t, db, "u1", models.VerificationPending)

	c, w := newTestContext(t, `{"user_id":"u1"}`)
	ApproveVerification(db)(c)
	require.Equal(t, http.StatusOK, w.Code)

	var profile models.Profile
	require.NoError(t, db.First(&profile, "id = ?", "u1").Error)
	assert.Equal(t, models.VerificationApproved, profile.VerificationStatus)
}

func TestRejectVerification(t *testing.T) {
	db := setupTestDB(t)
	seedProfile(t, db, "u1", models.VerificationPending)

	c, w := newTestContext(t, `{"user_id":"u1"}`)
	RejectVerification(db)(c)
	require.Equal(t, http.StatusOK, w.Code)

	var profile models.Profile
	require.NoError(t, db.First(&profile, "id = ?", "u1").Error)
	assert.Equal(t, models.VerificationRejected, profile.VerificationStatus)
}

func TestApproveVerificationUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	c, w := newTestContext(t, `{"user_id":"missing"}`)
	ApproveVerification(db)(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPendingVerifications(t *testing.T) {
	db := setupTestDB(t)
	seedProfile(t, db, "u1", models.VerificationPending)
	seedProfile(t, db, "u2", models.VerificationApproved)
	seedProfile(t, db, "u3", models.VerificationPending)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/admin/verifications/pending", nil)
	ListPendingVerifications(db)(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1@example.com")
	assert.Contains(t, w.Body.String(), "u3@example.com")
	assert.NotContains(t, w.Body.String(), "u2@example.com")
}

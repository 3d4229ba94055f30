package auth

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
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

func doRegister(t *testing.T, db *gorm.DB, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/auth/register", strings.NewReader(body))
	RegisterHandler(w, r, db)
	return w
}

func TestRegisterCreatesProfileWithCart(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)

	w := doRegister(t, db, `{"full_name":"Priya","email":"Priya@Example.com","phone":"9876543210","password":"supersecret"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var profile models.Profile
	require.NoError(t, db.Preload("Cart").Where("email = ?", "priya@example.com").First(&profile).Error)
	assert.Equal(t, models.VerificationPending, profile.VerificationStatus)
	assert.Equal(t, models.RoleUser, profile.Role)
	assert.NotZero(t, profile.Cart.CartID)
	assert.NotEqual(t, "supersecret", profile.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)

	w := doRegister(t, db, `{"email":"dup@example.com","password":"supersecret"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRegister(t, db, `{"email":"dup@example.com","password":"supersecret"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	db := setupTestDB(t)
	w := doRegister(t, db, `{"email":"a@example.com","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	doRegister(t, db, `{"full_name":"Priya","email":"priya@example.com","password":"supersecret"}`)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"priya@example.com","password":"supersecret"}`))
	LoginHandler(w, r, db)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	doRegister(t, db, `{"email":"priya@example.com","password":"supersecret"}`)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"priya@example.com","password":"wrongpass"}`))
	LoginHandler(w, r, db)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIssueJWTClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenStr := issueJWT("priya@example.com", "user", "u1", "Priya")
	require.NotEmpty(t, tokenStr)

	token, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, "priya@example.com", claims["email"])
	assert.Equal(t, "user", claims["role"])
}

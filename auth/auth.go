package auth

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jsnacademy/trb-prep-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ---------------------------------------------
// REGISTER
// ---------------------------------------------
func RegisterHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB) {
	var req struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || len(req.Password) < 8 {
		http.Error(w, "Email and a password of at least 8 characters are required", http.StatusBadRequest)
		return
	}

	var existing models.Profile
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		http.Error(w, "An account with this email already exists", http.StatusConflict)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Failed to create account", http.StatusInternalServerError)
		return
	}

	userID := uuid.NewString()
	profile := models.Profile{
		ID:                 userID,
		FullName:           req.FullName,
		Email:              req.Email,
		Phone:              req.Phone,
		PasswordHash:       string(hash),
		VerificationStatus: models.VerificationPending,
		Role:               models.RoleUser,
		Cart:               models.Cart{UserID: userID},
	}

	if err := db.Create(&profile).Error; err != nil {
		http.Error(w, "Failed to create account", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"message": "Registration successful",
		"user":    profile,
		"token":   issueJWT(profile.Email, string(profile.Role), profile.ID, profile.FullName),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// ---------------------------------------------
// LOGIN
// ---------------------------------------------
func LoginHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	var profile models.Profile
	err := db.Preload("Cart.Items").
		Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&profile).Error
	if err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)) != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	resp := map[string]interface{}{
		"message": "Login successful",
		"user":    profile,
		"token":   issueJWT(profile.Email, string(profile.Role), profile.ID, profile.FullName),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// issueJWT generates a JWT token for a user
func issueJWT(email, role, userID, name string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"name":    name,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}

	return signedToken
}

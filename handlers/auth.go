package handlers

import (
	"errors"
	"net/http"

	"food-marketplace-api/auth"
	"food-marketplace-api/config"
	"food-marketplace-api/middleware"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AuthCookieName, token, int(auth.TokenLifetime.Seconds()), "/", "", false, true)
}

func clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
}

func userSummary(user *models.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"role":          user.Role,
		"restaurant_id": user.RestaurantID,
	}
}

// Register creates a new customer account. Staff accounts are created
// by the administrator, never through self-registration.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	var existing models.User
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		failConflict(c, "Email already registered")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		failInternal(c, "Failed to hash password")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleCustomer,
		Phone:        req.Phone,
		Active:       true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		// The email pre-check races with concurrent registrations;
		// the unique index is the real arbiter
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			failConflict(c, "Email already registered")
			return
		}
		failInternal(c, "Failed to create user")
		return
	}

	token, err := auth.Issue(&user, config.JWTSecret)
	if err != nil {
		failInternal(c, "Failed to generate token")
		return
	}
	setAuthCookie(c, token)

	respondOK(c, http.StatusCreated, gin.H{"token": token, "user": userSummary(&user)}, "Account created successfully")
}

// Login is the staff channel: RESTAURATOR and ADMIN accounts only.
// Customer accounts are rejected before the password is even checked.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		failAuth(c, "Invalid email or password")
		return
	}

	if user.Role == models.RoleCustomer {
		failPermission(c, "Customer accounts cannot use the staff login")
		return
	}
	if !user.Active {
		failPermission(c, "Account is deactivated")
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		failAuth(c, "Invalid email or password")
		return
	}

	token, err := auth.Issue(&user, config.JWTSecret)
	if err != nil {
		failInternal(c, "Failed to generate token")
		return
	}
	setAuthCookie(c, token)

	respondOK(c, http.StatusOK, gin.H{"token": token, "user": userSummary(&user)}, "Login successful")
}

// CustomerLogin authenticates customer accounts
func CustomerLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		failAuth(c, "Invalid email or password")
		return
	}

	if user.Role != models.RoleCustomer {
		failPermission(c, "Staff accounts must use the staff login")
		return
	}
	if !user.Active {
		failPermission(c, "Account is deactivated")
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		failAuth(c, "Invalid email or password")
		return
	}

	token, err := auth.Issue(&user, config.JWTSecret)
	if err != nil {
		failInternal(c, "Failed to generate token")
		return
	}
	setAuthCookie(c, token)

	respondOK(c, http.StatusOK, gin.H{"token": token, "user": userSummary(&user)}, "Login successful")
}

// Logout clears the session cookie. Tokens are stateless so there is
// nothing to revoke server-side.
func Logout(c *gin.Context) {
	clearAuthCookie(c)
	respondOK(c, http.StatusOK, gin.H{}, "Logged out")
}

// GetProfile returns the authenticated user's profile
func GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		failNotFound(c, "User not found")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"user": user}, "")
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpdateProfile changes display name and phone
func UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		failNotFound(c, "User not found")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	update := map[string]interface{}{}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.Phone != "" {
		update["phone"] = req.Phone
	}
	if len(update) > 0 {
		if err := config.DB.Model(&user).Updates(update).Error; err != nil {
			failInternal(c, "Failed to update profile")
			return
		}
	}
	respondOK(c, http.StatusOK, gin.H{"user": user}, "Profile updated")
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// ChangePassword verifies the current password before setting a new one
func ChangePassword(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		failNotFound(c, "User not found")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.CurrentPassword); err != nil {
		failAuth(c, "Current password is incorrect")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		failInternal(c, "Failed to hash password")
		return
	}
	if err := config.DB.Model(&user).Update("password_hash", hash).Error; err != nil {
		failInternal(c, "Failed to update password")
		return
	}
	respondOK(c, http.StatusOK, gin.H{}, "Password changed")
}

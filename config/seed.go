package config

import (
	"errors"

	"food-marketplace-api/auth"
	"food-marketplace-api/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EnsureAdminUser creates the platform administrator account on first
// boot. Skipped when ADMIN_PASSWORD is unset or an account already exists.
func EnsureAdminUser(db *gorm.DB) error {
	if C.AdminEmail == "" || C.AdminPassword == "" {
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", C.AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(C.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         C.AdminName,
		Email:        C.AdminEmail,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Active:       true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info().Str("email", admin.Email).Msg("admin account seeded")
	return nil
}

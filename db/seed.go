package db

import (
	"errors"
	"strings"

	"github.com/meinhoongagan/skillverify/config"
	"github.com/meinhoongagan/skillverify/models"
	"github.com/meinhoongagan/skillverify/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the ADMIN account named in the config unless it exists.
func SeedAdmin(gdb *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		utils.Logger.Debug("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))

	var existing models.User
	err := gdb.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), cfg.BcryptCost)
	if err != nil {
		return err
	}

	admin := models.User{
		FullName: cfg.AdminFullName,
		Email:    email,
		Phone:    utils.NormalizePhone(cfg.AdminPhone),
		Password: string(hash),
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := gdb.Create(&admin).Error; err != nil {
		return err
	}

	utils.Logger.WithField("email", admin.Email).Info("Admin user seeded")
	return nil
}

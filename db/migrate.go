package db

import (
	"fmt"

	"github.com/meinhoongagan/skillverify/models"
	"gorm.io/gorm"
)

func Migrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&models.User{},
		&models.WorkerProfile{},
		&models.Booking{},
		&models.Review{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

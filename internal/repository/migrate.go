package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table this package
// owns. Used by cmd/seed and by handler tests running against sqlite.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&teamModel{},
		&eventTypeModel{},
		&bookingModel{},
		&avatarModel{},
	)
}

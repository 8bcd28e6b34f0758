package models

import "gorm.io/gorm"

// Migrate registers the wishlist schema with the storage engine and ensures
// both tables exist. Called once by the application bootstrap, never at
// request time.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Wishlist{}, &Item{})
}

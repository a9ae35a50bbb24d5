package config

import (
	"github.com/quicktick/quicktick-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Migrate runs the schema migrations for every model in the system
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Category{},
		&models.SubscriptionPlan{},
		&models.Vendor{},
		&models.VendorProduct{},
		&models.VendorEnquiry{},
		&models.Business{},
		&models.Enquiry{},
		&models.TravelRequest{},
		&models.Payment{},
		&models.HelpPayment{},
		&models.PodcastVideo{},
		&models.InfluencerVideo{},
		&models.DigitalBanner{},
		&models.BrandingVideo{},
		&models.Certificate{},
		&models.HelpEarnCategory{},
	)
}

// InitTestDB swaps the global connection for an in-memory sqlite
// database. Used by the test suites only.
func InitTestDB() error {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}
	if err := Migrate(db); err != nil {
		return err
	}
	DB = db
	return nil
}

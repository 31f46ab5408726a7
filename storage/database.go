package storage

import (
	"os"

	"tour-agency-server/models"
	"tour-agency-server/utils"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func connectToDB() *gorm.DB {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			utils.Logger().Warn("could not load .env file (normal in production)")
		}
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		utils.Logger().Fatal("DB_CONNECTION_STRING environment variable is required")
	}

	db, dbError := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if dbError != nil {
		utils.Logger().Fatal("error connecting to db", zap.Error(dbError))
	}

	DB = db
	return db
}

func performMigrations(db *gorm.DB) {
	db.AutoMigrate(
		&models.User{},
		&models.ClientProfile{},
		&models.EmployeeProfile{},
		&models.Country{},
		&models.SeasonClimate{},
		&models.Hotel{},
		&models.TourPackage{},
		&models.Order{},
		&models.PromoCode{},
		&models.Article{},
		&models.FAQ{},
		&models.Vacancy{},
		&models.Review{},
		&models.AboutPageContent{},
		&models.CompanyVideo{},
		&models.CompanyLogo{},
		&models.CompanyHistoryItem{},
		&models.CompanyRequisite{},
	)
}

func InitializeDB() *gorm.DB {
	db := connectToDB()
	performMigrations(db)
	return db
}

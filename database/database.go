package database

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hashly/models"
)

var DB *gorm.DB

// Connect opens the sqlite database at the given path and stores the handle
// in the package-level DB. The pool is capped at a single connection: sqlite
// serializes writes anyway, and a single connection also keeps ":memory:"
// databases usable in tests.
func Connect(path string) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)

	DB = db
	log.Println("Connected to database:", path)
	return nil
}

func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	)
}

func Disconnect() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return err
	}

	log.Println("Disconnected from database")
	return nil
}

package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kubeterra/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Farm{},
		&entities.Herd{},
		&entities.Animal{},
		&entities.PastureZone{},
		&entities.Park{},
		&entities.WildlifePopulation{},
		&entities.WildlifeSighting{},
		&entities.Patrol{},
		&entities.Incident{},
		&entities.LandZone{},
		&entities.LandSurvey{},
		&entities.LandChange{},
		&entities.Alert{},
		&entities.Report{},
		&entities.Activity{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

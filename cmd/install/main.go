// Command install performs the one-time schema installation: it drops
// and recreates every table, then seeds the fixed course and drink
// menus. Run it once before the first server start, never against a
// live database you want to keep.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/hjortab/hjort-api/config"
	"github.com/hjortab/hjort-api/models"
	"github.com/hjortab/hjort-api/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	tables := []interface{}{
		&models.Drink{},
		&models.DrinkMenu{},
		&models.Course{},
		&models.CourseMenu{},
		&models.Reservation{},
		&models.AdminUser{},
	}

	// Children first so FK constraints never block the drop.
	for _, table := range tables {
		if err := db.Migrator().DropTable(table); err != nil {
			utils.ErrorLogger.Fatalf("Failed to drop table: %v", err)
		}
	}

	err = db.AutoMigrate(
		&models.AdminUser{},
		&models.Reservation{},
		&models.CourseMenu{},
		&models.Course{},
		&models.DrinkMenu{},
		&models.Drink{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to create tables: %v", err)
	}

	courseMenu := models.CourseMenu{Title: "Avsmakningsmeny", PriceTot: 3500}
	if err := db.Create(&courseMenu).Error; err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed course menu: %v", err)
	}

	drinkMenu := models.DrinkMenu{
		Title:    "Vinlista",
		Subtitle: "Alkoholfritt dryckespaket",
		PriceTot: 1050,
	}
	if err := db.Create(&drinkMenu).Error; err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed drink menu: %v", err)
	}

	utils.InfoLogger.Println("Schema installed and menus seeded.")
}

package main

import (
	"log"
	"strconv"

	"github.com/Masood-zone/CMS--full/app/config"
	"github.com/Masood-zone/CMS--full/app/database"
	"github.com/Masood-zone/CMS--full/app/models"
)

func main() {
	log.Println("Starting canteen migration...")

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	// Seed the standing daily fee if it was never configured.
	value, err := database.GetSettingValue(db, models.SettingAmount)
	if err != nil {
		log.Fatal("Failed to read settings:", err)
	}
	if value == "" {
		if _, err := database.UpsertSetting(db, models.SettingAmount, strconv.Itoa(0)); err != nil {
			log.Fatal("Failed to seed settings amount:", err)
		}
		log.Println("Seeded default canteen amount: 0")
	}

	log.Println("Migration completed successfully!")
}

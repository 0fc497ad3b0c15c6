package main

import (
	"log"

	"employee-records/app/config"
	"employee-records/app/database"
)

func main() {
	log.Println("Starting manual migration...")

	config.Load()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	log.Println("Manual migration completed successfully!")
}

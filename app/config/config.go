package config

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB          *sql.DB
	Port        string
	ContentRoot string
}

var AppConfig *Config

// Load reads environment configuration (a .env file is honored if present)
// and opens the database connection pool.
func Load() {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	contentRoot := os.Getenv("CONTENT_ROOT")
	if contentRoot == "" {
		contentRoot = "./static"
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = "host=localhost port=5432 user=postgres dbname=employees sslmode=disable"
		log.Println("DATABASE_URL not set, using local PostgreSQL defaults")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig = &Config{
		DB:          db,
		Port:        port,
		ContentRoot: contentRoot,
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

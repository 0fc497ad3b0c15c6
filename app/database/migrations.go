package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createEmployeesTable(db); err != nil {
		return err
	}
	if err := addEmailIndex(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createEmployeesTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS employees (
			id SERIAL PRIMARY KEY,
			profile_picture TEXT,
			first_name VARCHAR(50) NOT NULL,
			middle_name VARCHAR(50),
			last_name VARCHAR(50) NOT NULL,
			father_name VARCHAR(100) NOT NULL,
			gender VARCHAR(10) NOT NULL,
			date_of_birth DATE NOT NULL,
			date_of_joining DATE NOT NULL,
			date_of_exit DATE,
			email VARCHAR(254) NOT NULL,
			salary NUMERIC(18,2) NOT NULL,
			country_code VARCHAR(10) NOT NULL,
			phone_number VARCHAR(20) NOT NULL,
			description VARCHAR(250),
			document1 TEXT,
			document2 TEXT,
			document3 TEXT,
			document4 TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create employees table: %v", err)
		return err
	}
	return nil
}

// addEmailIndex backs the uniqueness lookup. The email column is deliberately
// not UNIQUE: uniqueness is checked at validation time against the store.
func addEmailIndex(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM pg_indexes
				WHERE tablename = 'employees'
				AND indexname = 'idx_employees_email'
			) THEN
				CREATE INDEX idx_employees_email ON employees (email);
				RAISE NOTICE 'Added email index to employees';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for email index: %v", err)
		return err
	}
	return nil
}

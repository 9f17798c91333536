package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the test database. It expects a MySQL server on
// localhost:3306 with a database named 'retreat_test' and skips otherwise.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/retreat_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties every table and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"BookingItems", "Bookings", "AddOnItems", "AddOnCategories", "RoomAddOns", "Rooms", "Packages"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the catalog and booking tables.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createPackagesTable := `
	CREATE TABLE IF NOT EXISTS Packages (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		basePrice DECIMAL(10,2) NOT NULL,
		type VARCHAR(50) NOT NULL,
		image VARCHAR(255),
		includesStandardRoom TINYINT(1) NOT NULL DEFAULT 0,
		position INT NOT NULL DEFAULT 0,
		isActive TINYINT(1) NOT NULL DEFAULT 1
	)`

	createRoomsTable := `
	CREATE TABLE IF NOT EXISTS Rooms (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		type VARCHAR(20) NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		image VARCHAR(255) NOT NULL DEFAULT '',
		isStandard TINYINT(1) NOT NULL DEFAULT 0,
		position INT NOT NULL DEFAULT 0,
		isActive TINYINT(1) NOT NULL DEFAULT 1
	)`

	createAddOnCategoriesTable := `
	CREATE TABLE IF NOT EXISTS AddOnCategories (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		position INT NOT NULL DEFAULT 0
	)`

	createAddOnItemsTable := `
	CREATE TABLE IF NOT EXISTS AddOnItems (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		categoryId VARCHAR(64) NOT NULL,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		price DECIMAL(10,2) NOT NULL,
		defaultQuantity INT NOT NULL DEFAULT 1,
		position INT NOT NULL DEFAULT 0,
		isActive TINYINT(1) NOT NULL DEFAULT 1,
		FOREIGN KEY (categoryId) REFERENCES AddOnCategories(id) ON DELETE CASCADE
	)`

	createRoomAddOnsTable := `
	CREATE TABLE IF NOT EXISTS RoomAddOns (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		icon VARCHAR(64) NOT NULL DEFAULT '',
		position INT NOT NULL DEFAULT 0,
		isActive TINYINT(1) NOT NULL DEFAULT 1
	)`

	createBookingsTable := `
	CREATE TABLE IF NOT EXISTS Bookings (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		reference VARCHAR(32) NOT NULL UNIQUE,
		bookingType VARCHAR(20) NOT NULL,
		packageId VARCHAR(64),
		roomId VARCHAR(64),
		eventSpace VARCHAR(64),
		startDate DATE,
		endDate DATE,
		duration VARCHAR(4) NOT NULL,
		firstName VARCHAR(100) NOT NULL,
		lastName VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL,
		phone VARCHAR(30),
		status VARCHAR(50) NOT NULL DEFAULT 'CONFIRMED',
		totalPrice DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createBookingItemsTable := `
	CREATE TABLE IF NOT EXISTS BookingItems (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		bookingId INT UNSIGNED NOT NULL,
		kind VARCHAR(32) NOT NULL,
		refId VARCHAR(64) NOT NULL DEFAULT '',
		description VARCHAR(255) NOT NULL,
		quantity DECIMAL(10,2) NOT NULL DEFAULT 1,
		unitPrice DECIMAL(10,2) NOT NULL,
		amount DECIMAL(10,2) NOT NULL,
		FOREIGN KEY (bookingId) REFERENCES Bookings(id) ON DELETE CASCADE,
		INDEX idx_booking (bookingId)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Packages", createPackagesTable},
		{"Rooms", createRoomsTable},
		{"AddOnCategories", createAddOnCategoriesTable},
		{"AddOnItems", createAddOnItemsTable},
		{"RoomAddOns", createRoomAddOnsTable},
		{"Bookings", createBookingsTable},
		{"BookingItems", createBookingItemsTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}

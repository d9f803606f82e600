package database

import (
	"log"
	"strings"

	"hotelback/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the hotel schema. The reporting engine itself never
// writes; migration exists for the CRUD layer, the seeder and tests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.RoomType{},
		&domain.Room{},
		&domain.Guest{},
		&domain.Booking{},
		&domain.Stay{},
		&domain.StayGuest{},
		&domain.Service{},
		&domain.ServiceSale{},
	)
}

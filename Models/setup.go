package Models

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the database named by DB_DIALECT/DB_DSN (sqlite on
// database.db when unset), migrates every collection and seeds the
// configuration tables on first run.
func Connect() {
	dialect := os.Getenv("DB_DIALECT")
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "database.db"
	}

	var dialector gorm.Dialector
	switch dialect {
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	connection, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	DB = connection

	if err := Migrate(DB); err != nil {
		log.Println(err)
	}
	if err := SeedDefaults(DB); err != nil {
		log.Printf("seeding defaults: %v", err)
	}
}

// Migrate runs AutoMigrate for every collection. Grouped so base records
// exist before the tables that reference them by id.
func Migrate(db *gorm.DB) error {
	// 1. Base records with no references
	if err := db.AutoMigrate(
		&User{},
		&Driver{},
		&Vehicle{},
		&GasStation{},
		&FuelPrice{},
		&ExpenseCategory{},
		&PaymentRecipient{},
		&PayOnBehalfReason{},
		&Announcement{},
	); err != nil {
		return err
	}

	// 2. Records referencing drivers and vehicles
	if err := db.AutoMigrate(
		&Assignment{},
		&FuelRequest{},
		&MoneyAdvance{},
		&DriverExpense{},
		&DailyOdometer{},
		&TireReplacement{},
		&DriverSalary{},
		&ReadReceipt{},
	); err != nil {
		return err
	}

	// 3. Pay-on-behalf ledger and its derived tables
	return db.AutoMigrate(
		&PayOnBehalf{},
		&PayOnBehalfSlip{},
		&RefundEntry{},
	)
}

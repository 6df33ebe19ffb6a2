package Models

import (
	"log"
	"os"

	"github.com/yosuke-furukawa/json5/encoding/json5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedFile overrides the built-in defaults when present in the working
// directory. JSON5 so the file can carry comments.
const SeedFile = "seeds.json5"

type SeedUser struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Permission int    `json:"permission"`
	DriverID   uint   `json:"driver_id"`
}

type SeedData struct {
	Drivers    []Driver            `json:"drivers"`
	Vehicles   []Vehicle           `json:"vehicles"`
	Users      []SeedUser          `json:"users"`
	Recipients []PaymentRecipient  `json:"recipients"`
	Reasons    []PayOnBehalfReason `json:"reasons"`
	Categories []ExpenseCategory   `json:"categories"`
	Stations   []GasStation        `json:"stations"`
	Prices     []FuelPrice         `json:"prices"`
}

func defaultSeedData() SeedData {
	return SeedData{
		Drivers: []Driver{
			{Name: "Nguyễn Văn A", Phone: "0901234567", LicenseNumber: "79A12345", LicenseExpiry: "2025-12-31", Status: DriverOfficial},
			{Name: "Trần Văn B", Phone: "0909876543", LicenseNumber: "79A67890", LicenseExpiry: "2024-06-30", Status: DriverOfficial},
		},
		Vehicles: []Vehicle{
			{PlateNumber: "59C-123.45", Type: "Xe tải 8 tấn", Category: CategoryTruck, Status: "active", InitialOdometer: 120000, RegistrationExpiry: "2024-12-31"},
			{PlateNumber: "51D-987.65", Type: "Đầu kéo Mỹ", Category: CategoryTractor, Status: "active", InitialOdometer: 350000, RegistrationExpiry: "2024-10-15"},
			{PlateNumber: "51R-111.22", Type: "Rơ-moóc xương", Category: CategoryTrailer, Status: "active", RegistrationExpiry: "2025-01-20"},
		},
		Users: []SeedUser{
			{Username: "admin", Password: "123", Name: "Quản trị viên", Permission: PermissionAdmin},
			{Username: "tx01", Password: "123", Name: "Nguyễn Văn A", Permission: PermissionDriver, DriverID: 1},
		},
		Recipients: []PaymentRecipient{
			{Name: "Cảng Cát Lái", Type: RecipientDepot},
			{Name: "Cảng VICT", Type: RecipientDepot},
		},
		Reasons: []PayOnBehalfReason{
			{Name: "Cược Sửa Chữa (Cược vỏ)"},
			{Name: "Vé Cổng"},
			{Name: "Phí Nâng Hạ"},
			{Name: "Phí Vệ Sinh"},
		},
		Categories: []ExpenseCategory{
			{Name: "Ăn uống", Usage: UsageBoth, Description: "Chi phí ăn uống dọc đường"},
			{Name: "Vá vỏ", Usage: UsageExpense, Description: "Sửa chữa lốp xe"},
			{Name: "Luật đường bộ", Usage: UsageExpense, Description: "Chi phí không chứng từ"},
			{Name: "Tạm ứng lương", Usage: UsageAdvance, Description: "Ứng lương kỳ này"},
		},
		Stations: []GasStation{
			{Name: "Petrolimex 01", Address: "Xa lộ Hà Nội, TP.HCM", Status: "active", IsDefault: true},
		},
		Prices: []FuelPrice{
			{Price: 21500, EffectiveDate: "2023-01-01T00:00:00.000Z", Notes: "Giá đầu năm"},
		},
	}
}

func loadSeedData() SeedData {
	seed := defaultSeedData()
	raw, err := os.ReadFile(SeedFile)
	if err != nil {
		return seed
	}
	var override SeedData
	if err := json5.Unmarshal(raw, &override); err != nil {
		log.Printf("ignoring malformed %s: %v", SeedFile, err)
		return seed
	}
	if len(override.Drivers) > 0 {
		seed.Drivers = override.Drivers
	}
	if len(override.Vehicles) > 0 {
		seed.Vehicles = override.Vehicles
	}
	if len(override.Users) > 0 {
		seed.Users = override.Users
	}
	if len(override.Recipients) > 0 {
		seed.Recipients = override.Recipients
	}
	if len(override.Reasons) > 0 {
		seed.Reasons = override.Reasons
	}
	if len(override.Categories) > 0 {
		seed.Categories = override.Categories
	}
	if len(override.Stations) > 0 {
		seed.Stations = override.Stations
	}
	if len(override.Prices) > 0 {
		seed.Prices = override.Prices
	}
	return seed
}

func seedTable[T any](db *gorm.DB, records []T) error {
	if len(records) == 0 {
		return nil
	}
	var count int64
	if err := db.Model(new(T)).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&records).Error
}

// SeedDefaults populates the known configuration collections when they are
// empty so a fresh install is usable immediately. Collections that already
// hold rows are left alone.
func SeedDefaults(db *gorm.DB) error {
	seed := loadSeedData()

	if err := seedTable(db, seed.Drivers); err != nil {
		return err
	}
	if err := seedTable(db, seed.Vehicles); err != nil {
		return err
	}
	if err := seedTable(db, seed.Recipients); err != nil {
		return err
	}
	if err := seedTable(db, seed.Reasons); err != nil {
		return err
	}
	if err := seedTable(db, seed.Categories); err != nil {
		return err
	}
	if err := seedTable(db, seed.Stations); err != nil {
		return err
	}
	if err := seedTable(db, seed.Prices); err != nil {
		return err
	}

	var userCount int64
	if err := db.Model(&User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}
	for _, su := range seed.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := User{
			Username:   su.Username,
			Password:   hash,
			Name:       su.Name,
			Permission: su.Permission,
			DriverID:   su.DriverID,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}
	return nil
}

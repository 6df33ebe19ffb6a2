package Apis

import (
	"log"

	"FleetOffice/Importer"
	"FleetOffice/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Reference-data endpoints: gas stations, fuel prices, expense categories,
// payment recipients and pay-on-behalf reasons.

func GetGasStations(c *fiber.Ctx) error {
	var stations []Models.GasStation
	if err := Models.DB.Order("name").Find(&stations).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stations)
}

func CreateGasStation(c *fiber.Ctx) error {
	var station Models.GasStation
	if err := c.BodyParser(&station); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if station.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Station name is required"})
	}
	if err := Models.DB.Create(&station).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(station)
}

// SetDefaultGasStation flips the default flag to one station atomically.
func SetDefaultGasStation(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	var station Models.GasStation
	if err := Models.DB.First(&station, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Station not found"})
	}
	err = Models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Models.GasStation{}).Where("is_default = ?", true).Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&station).Update("is_default", true).Error
	})
	if err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(station)
}

func DeleteGasStation(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	result := Models.DB.Delete(&Models.GasStation{}, id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Station not found"})
	}
	return c.JSON(fiber.Map{"message": "Station deleted"})
}

func GetFuelPrices(c *fiber.Ctx) error {
	var prices []Models.FuelPrice
	if err := Models.DB.Order("effective_date desc").Find(&prices).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(prices)
}

func CreateFuelPrice(c *fiber.Ctx) error {
	var price Models.FuelPrice
	if err := c.BodyParser(&price); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if price.EffectiveDate == "" || price.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Effective date and a positive price are required"})
	}
	if err := Models.DB.Create(&price).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(price)
}

func DeleteFuelPrice(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	result := Models.DB.Delete(&Models.FuelPrice{}, id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fuel price not found"})
	}
	return c.JSON(fiber.Map{"message": "Fuel price deleted"})
}

func GetExpenseCategories(c *fiber.Ctx) error {
	var categories []Models.ExpenseCategory
	if err := Models.DB.Order("name").Find(&categories).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(categories)
}

func CreateExpenseCategory(c *fiber.Ctx) error {
	var category Models.ExpenseCategory
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if category.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Category name is required"})
	}
	if err := Models.DB.Create(&category).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(category)
}

func DeleteExpenseCategory(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	result := Models.DB.Delete(&Models.ExpenseCategory{}, id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

func GetPaymentRecipients(c *fiber.Ctx) error {
	var recipients []Models.PaymentRecipient
	if err := Models.DB.Order("name").Find(&recipients).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(recipients)
}

func CreatePaymentRecipient(c *fiber.Ctx) error {
	var recipient Models.PaymentRecipient
	if err := c.BodyParser(&recipient); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if recipient.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Recipient name is required"})
	}
	if recipient.Type == "" {
		recipient.Type = Models.RecipientDepot
	}
	if err := Models.DB.Create(&recipient).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(recipient)
}

// ImportPaymentRecipients loads recipients from pasted lines, skipping
// names that already exist.
func ImportPaymentRecipients(c *fiber.Ctx) error {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	parsed := Importer.ParseRecipientLines(input.Text)
	imported := 0
	for _, recipient := range parsed {
		var count int64
		Models.DB.Model(&Models.PaymentRecipient{}).Where("name = ?", recipient.Name).Count(&count)
		if count > 0 {
			continue
		}
		if err := Models.DB.Create(&recipient).Error; err != nil {
			log.Println(err)
			continue
		}
		imported++
	}
	return c.JSON(fiber.Map{"message": "Recipients imported", "imported": imported, "parsed": len(parsed)})
}

func DeletePaymentRecipient(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	result := Models.DB.Delete(&Models.PaymentRecipient{}, id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recipient not found"})
	}
	return c.JSON(fiber.Map{"message": "Recipient deleted"})
}

func GetPayOnBehalfReasons(c *fiber.Ctx) error {
	var reasons []Models.PayOnBehalfReason
	if err := Models.DB.Order("name").Find(&reasons).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(reasons)
}

func CreatePayOnBehalfReason(c *fiber.Ctx) error {
	var reason Models.PayOnBehalfReason
	if err := c.BodyParser(&reason); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if reason.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Reason name is required"})
	}
	if err := Models.DB.Create(&reason).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(reason)
}

func DeletePayOnBehalfReason(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	result := Models.DB.Delete(&Models.PayOnBehalfReason{}, id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reason not found"})
	}
	return c.JSON(fiber.Map{"message": "Reason deleted"})
}

package Apis

import (
	"encoding/json"
	"log"

	"FleetOffice/Models"

	"github.com/gofiber/fiber/v2"
)

func GetTireReplacements(c *fiber.Ctx) error {
	query := Models.DB.Model(&Models.TireReplacement{})
	if vehicle := c.Query("vehicle_id"); vehicle != "" {
		query = query.Where("vehicle_id = ?", vehicle)
	}
	var replacements []Models.TireReplacement
	if err := query.Order("date desc").Find(&replacements).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(replacements)
}

func CreateTireReplacement(c *fiber.Ctx) error {
	var replacement Models.TireReplacement
	if err := c.BodyParser(&replacement); err != nil {
		log.Println(err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if replacement.VehicleID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Vehicle is required"})
	}
	var positions []int
	if len(replacement.Positions) > 0 {
		if err := json.Unmarshal(replacement.Positions, &positions); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tire positions"})
		}
	}
	if len(positions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "At least one tire position is required"})
	}
	if err := Models.DB.Create(&replacement).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(replacement)
}

func DeleteTireReplacement(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	result := Models.DB.Delete(&Models.TireReplacement{}, id)
	if result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tire replacement not found"})
	}
	return c.JSON(fiber.Map{"message": "Tire replacement deleted"})
}

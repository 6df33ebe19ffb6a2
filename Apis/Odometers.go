package Apis

import (
	"log"

	"FleetOffice/Models"

	"github.com/gofiber/fiber/v2"
)

func GetOdometers(c *fiber.Ctx) error {
	query := Models.DB.Model(&Models.DailyOdometer{})
	if vehicle := c.Query("vehicle_id"); vehicle != "" {
		query = query.Where("vehicle_id = ?", vehicle)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("date <= ?", to)
	}
	var readings []Models.DailyOdometer
	if err := query.Order("date desc").Find(&readings).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(readings)
}

func CreateOdometer(c *fiber.Ctx) error {
	var reading Models.DailyOdometer
	if err := c.BodyParser(&reading); err != nil {
		log.Println(err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if reading.VehicleID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Vehicle is required"})
	}
	if reading.Distance < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Distance cannot be negative"})
	}
	if err := Models.DB.Create(&reading).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(reading)
}

func UpdateOdometer(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	var reading Models.DailyOdometer
	if err := Models.DB.First(&reading, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Odometer reading not found"})
	}
	var input Models.DailyOdometer
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	input.ID = reading.ID
	if err := Models.DB.Model(&reading).Updates(input).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(reading)
}

func DeleteOdometer(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	result := Models.DB.Delete(&Models.DailyOdometer{}, id)
	if result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Odometer reading not found"})
	}
	return c.JSON(fiber.Map{"message": "Odometer reading deleted"})
}

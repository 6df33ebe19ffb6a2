package Apis

import (
	"log"

	"FleetOffice/Models"

	"github.com/gofiber/fiber/v2"
)

func GetVehicles(c *fiber.Ctx) error {
	query := Models.DB.Model(&Models.Vehicle{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	var vehicles []Models.Vehicle
	if err := query.Order("plate_number").Find(&vehicles).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(vehicles)
}

func GetVehicle(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	var vehicle Models.Vehicle
	if err := Models.DB.First(&vehicle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}
	return c.JSON(fiber.Map{
		"vehicle":          vehicle,
		"current_odometer": Models.VehicleOdometer(Models.DB, vehicle.ID),
	})
}

func CreateVehicle(c *fiber.Ctx) error {
	var vehicle Models.Vehicle
	if err := c.BodyParser(&vehicle); err != nil {
		log.Println(err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if vehicle.PlateNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Plate number is required"})
	}
	if err := Models.DB.Create(&vehicle).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(vehicle)
}

func UpdateVehicle(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	var vehicle Models.Vehicle
	if err := Models.DB.First(&vehicle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}
	var input Models.Vehicle
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	input.ID = vehicle.ID
	if err := Models.DB.Model(&vehicle).Updates(input).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(vehicle)
}

func DeleteVehicle(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	result := Models.DB.Delete(&Models.Vehicle{}, id)
	if result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}
	return c.JSON(fiber.Map{"message": "Vehicle deleted"})
}

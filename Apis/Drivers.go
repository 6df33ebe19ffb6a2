package Apis

import (
	"log"
	"strconv"

	"FleetOffice/Models"

	"github.com/gofiber/fiber/v2"
)

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

func GetDrivers(c *fiber.Ctx) error {
	query := Models.DB.Model(&Models.Driver{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	var drivers []Models.Driver
	if err := query.Order("name").Find(&drivers).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(drivers)
}

func GetDriver(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	var driver Models.Driver
	if err := Models.DB.First(&driver, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Driver not found"})
	}
	return c.JSON(driver)
}

func CreateDriver(c *fiber.Ctx) error {
	var driver Models.Driver
	if err := c.BodyParser(&driver); err != nil {
		log.Println(err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if driver.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Driver name is required"})
	}
	if driver.Status == "" {
		driver.Status = Models.DriverOfficial
	}
	if err := Models.DB.Create(&driver).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(driver)
}

func UpdateDriver(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	var driver Models.Driver
	if err := Models.DB.First(&driver, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Driver not found"})
	}
	var input Models.Driver
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	input.ID = driver.ID
	if err := Models.DB.Model(&driver).Updates(input).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(driver)
}

// DeleteDriver removes the driver row only. Assignments, expenses and
// requests that reference the id are intentionally left in place.
func DeleteDriver(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	result := Models.DB.Delete(&Models.Driver{}, id)
	if result.Error != nil {
		log.Println(result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Driver not found"})
	}
	return c.JSON(fiber.Map{"message": "Driver deleted"})
}

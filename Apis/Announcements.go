package Apis

import (
	"log"
	"time"

	"FleetOffice/Models"

	"github.com/gofiber/fiber/v2"
)

func currentUser(c *fiber.Ctx) *Models.User {
	user, ok := c.Locals("user").(Models.User)
	if !ok {
		return nil
	}
	return &user
}

func GetAnnouncements(c *fiber.Ctx) error {
	query := Models.DB.Model(&Models.Announcement{})
	if c.Query("active") == "true" {
		today := time.Now().Format("2006-01-02")
		query = query.Where("valid_until = '' OR valid_until >= ?", today)
	}
	var announcements []Models.Announcement
	if err := query.Order("created_at desc").Find(&announcements).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	user := currentUser(c)
	readIDs := make(map[uint]bool)
	if user != nil {
		var receipts []Models.ReadReceipt
		Models.DB.Where("user_id = ?", user.ID).Find(&receipts)
		for _, receipt := range receipts {
			readIDs[receipt.AnnouncementID] = true
		}
	}

	type announcementView struct {
		Models.Announcement
		IsRead bool `json:"is_read"`
	}
	views := make([]announcementView, 0, len(announcements))
	for _, a := range announcements {
		views = append(views, announcementView{Announcement: a, IsRead: readIDs[a.ID]})
	}
	return c.JSON(views)
}

func CreateAnnouncement(c *fiber.Ctx) error {
	var announcement Models.Announcement
	if err := c.BodyParser(&announcement); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if announcement.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}
	if announcement.Priority == "" {
		announcement.Priority = "normal"
	}
	if err := Models.DB.Create(&announcement).Error; err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(announcement)
}

func MarkAnnouncementRead(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	user := currentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthenticated"})
	}
	var announcement Models.Announcement
	if err := Models.DB.First(&announcement, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Announcement not found"})
	}
	readAt := time.Now().Format("2006-01-02 15:04:05")
	if err := Models.MarkAnnouncementRead(Models.DB, announcement.ID, user.ID, readAt); err != nil {
		log.Println(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Marked as read"})
}

func DeleteAnnouncement(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	result := Models.DB.Delete(&Models.Announcement{}, id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Announcement not found"})
	}
	return c.JSON(fiber.Map{"message": "Announcement deleted"})
}

package Models

import (
	"gorm.io/gorm"
)

// Permission levels. Drivers see their own records, managers run the daily
// workflows, admins additionally manage users and configuration.
const (
	PermissionDriver  = 1
	PermissionManager = 3
	PermissionAdmin   = 4
)

type User struct {
	gorm.Model
	Username   string `json:"username" gorm:"uniqueIndex" validate:"required"`
	Password   []byte `json:"-"`
	Name       string `json:"name"`
	Permission int    `json:"permission" gorm:"default:1"`
	DriverID   uint   `json:"driver_id"` // 0 unless the account belongs to a driver
	IsBlocked  bool   `json:"is_blocked"`
}

type Announcement struct {
	gorm.Model
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content"`
	ValidUntil string `json:"valid_until"`
	Priority   string `json:"priority" gorm:"default:normal"` // normal or high
}

type ReadReceipt struct {
	gorm.Model
	AnnouncementID uint   `json:"announcement_id" gorm:"index"`
	UserID         uint   `json:"user_id" gorm:"index"`
	ReadAt         string `json:"read_at"`
}

// MarkAnnouncementRead records that a user has seen an announcement. Calling
// it twice for the same pair is a no-op.
func MarkAnnouncementRead(db *gorm.DB, announcementID, userID uint, readAt string) error {
	var count int64
	db.Model(&ReadReceipt{}).
		Where("announcement_id = ? AND user_id = ?", announcementID, userID).
		Count(&count)
	if count > 0 {
		return nil
	}
	return db.Create(&ReadReceipt{
		AnnouncementID: announcementID,
		UserID:         userID,
		ReadAt:         readAt,
	}).Error
}

package CronJobs

import (
	"fmt"
	"log"
	"time"

	"FleetOffice/Models"

	"github.com/robfig/cron/v3"
)

// ExpiryChecker scans driver licenses and vehicle registrations every
// night and posts a high-priority announcement for anything expiring
// within the warning window.
type ExpiryChecker struct {
	cronScheduler  *cron.Cron
	warningDays    int
	runImmediately bool
	jobID          cron.EntryID
}

func NewExpiryChecker(warningDays int, runImmediately bool) *ExpiryChecker {
	return &ExpiryChecker{
		cronScheduler:  cron.New(cron.WithSeconds()),
		warningDays:    warningDays,
		runImmediately: runImmediately,
	}
}

// Start schedules the nightly expiry check at 1:00 AM.
func (e *ExpiryChecker) Start() error {
	var err error
	e.jobID, err = e.cronScheduler.AddFunc("0 0 1 * * *", func() {
		log.Println("Running scheduled expiry check")
		e.runExpiryCheck()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	e.cronScheduler.Start()
	log.Println("Expiry check scheduler started - will run daily at 1:00 AM")

	if e.runImmediately {
		log.Println("Running initial expiry check")
		e.runExpiryCheck()
	}
	return nil
}

// Stop terminates the scheduler.
func (e *ExpiryChecker) Stop() {
	if e.cronScheduler != nil {
		e.cronScheduler.Stop()
	}
}

func (e *ExpiryChecker) runExpiryCheck() {
	today := time.Now().Format("2006-01-02")
	cutoff := time.Now().AddDate(0, 0, e.warningDays).Format("2006-01-02")

	var drivers []Models.Driver
	Models.DB.Where("license_expiry != '' AND license_expiry >= ? AND license_expiry <= ? AND status != ?",
		today, cutoff, Models.DriverQuit).Find(&drivers)
	for _, driver := range drivers {
		e.announce(
			fmt.Sprintf("Bằng lái sắp hết hạn: %s", driver.Name),
			fmt.Sprintf("Bằng lái của tài xế %s hết hạn ngày %s", driver.Name, driver.LicenseExpiry),
			driver.LicenseExpiry,
		)
	}

	var vehicles []Models.Vehicle
	Models.DB.Where("registration_expiry != '' AND registration_expiry >= ? AND registration_expiry <= ?",
		today, cutoff).Find(&vehicles)
	for _, vehicle := range vehicles {
		e.announce(
			fmt.Sprintf("Đăng kiểm sắp hết hạn: %s", vehicle.PlateNumber),
			fmt.Sprintf("Đăng kiểm xe %s hết hạn ngày %s", vehicle.PlateNumber, vehicle.RegistrationExpiry),
			vehicle.RegistrationExpiry,
		)
	}

	log.Printf("Expiry check done: %d licenses, %d registrations within %d days",
		len(drivers), len(vehicles), e.warningDays)
}

// announce creates the warning once per title; re-running the check must
// not flood the feed with duplicates.
func (e *ExpiryChecker) announce(title, content, validUntil string) {
	var count int64
	Models.DB.Model(&Models.Announcement{}).Where("title = ?", title).Count(&count)
	if count > 0 {
		return
	}
	announcement := Models.Announcement{
		Title:      title,
		Content:    content,
		ValidUntil: validUntil,
		Priority:   "high",
	}
	if err := Models.DB.Create(&announcement).Error; err != nil {
		log.Println("Failed to create expiry announcement:", err)
	}
}

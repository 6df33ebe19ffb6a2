package Models

import (
	"gorm.io/gorm"
)

// PayOnBehalf is one imported ledger row describing a container movement
// eligible for reimbursable disbursement.
type PayOnBehalf struct {
	gorm.Model
	VehiclePlate           string `json:"vehicle_plate"`
	Date                   string `json:"date"`
	Operation              string `json:"operation"`
	Warehouse              string `json:"warehouse"`
	Depot                  string `json:"depot"`
	Location               string `json:"location"`
	DropReturn             string `json:"drop_return"`
	Count20                int    `json:"count_20"`
	Count40                int    `json:"count_40"`
	ContainerNo            string `json:"container_no" gorm:"index"`
	BookingDo              string `json:"booking_do"`
	CustomerReconciliation string `json:"customer_reconciliation"`
	HasSlipGenerated       bool   `json:"has_slip_generated"`
}

// PayOnBehalfSlip is an actual disbursement derived from one PayOnBehalf
// original. ContainerNo and VehiclePlate are snapshotted at creation and
// never edited afterwards, so a slip keeps grouping correctly even when its
// original is later changed or deleted.
type PayOnBehalfSlip struct {
	gorm.Model
	RefID        uint    `json:"ref_id" gorm:"index"`
	Date         string  `json:"date"`
	Amount       float64 `json:"amount"`
	Recipient    string  `json:"recipient"`
	Reason       string  `json:"reason"`
	ContainerNo  string  `json:"container_no" gorm:"index"`
	VehiclePlate string  `json:"vehicle_plate"`
}

// RefundEntry is keyed by container number, one row per container. Saving
// again for the same container updates the row in place.
type RefundEntry struct {
	gorm.Model
	ContainerNo  string  `json:"container_no" gorm:"uniqueIndex"`
	RefundDate   string  `json:"refund_date"`
	RefundAmount float64 `json:"refund_amount"`
}

// SaveRefundEntry upserts the refund for a container number.
func SaveRefundEntry(db *gorm.DB, entry RefundEntry) error {
	var existing RefundEntry
	err := db.Where("container_no = ?", entry.ContainerNo).First(&existing).Error
	if err == nil {
		existing.RefundDate = entry.RefundDate
		existing.RefundAmount = entry.RefundAmount
		return db.Save(&existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return db.Create(&entry).Error
}

// Recipient types
const (
	RecipientDepot  = "DEPOT"
	RecipientDriver = "DRIVER"
	RecipientOther  = "OTHER"
)

type PaymentRecipient struct {
	gorm.Model
	Name string `json:"name" validate:"required"`
	Type string `json:"type" gorm:"default:DEPOT"`
}

type PayOnBehalfReason struct {
	gorm.Model
	Name string `json:"name" validate:"required"`
}

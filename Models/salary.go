package Models

import (
	"gorm.io/gorm"
)

// DriverSalary is one imported trip-salary row. Rows come in via bulk paste
// only, keyed by the driver's display name as the external ledger spells it.
type DriverSalary struct {
	gorm.Model
	Date              string  `json:"date"`
	DriverName        string  `json:"driver_name" gorm:"index"`
	CargoType         string  `json:"cargo_type"`
	Warehouse         string  `json:"warehouse"`
	WarehouseLocation string  `json:"warehouse_location"`
	Depot             string  `json:"depot"`
	DropReturn        string  `json:"drop_return"`
	ContainerNo       string  `json:"container_no"`
	Quantity          string  `json:"quantity"`
	Count20           int     `json:"count_20"`
	Count40           int     `json:"count_40"`
	TripSalary        float64 `json:"trip_salary"`
	HandlingFee       float64 `json:"handling_fee"`
}

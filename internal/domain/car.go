package domain

import "time"

type CarStatus string

const (
	CarStatusAvailable   CarStatus = "AVAILABLE"
	CarStatusRented      CarStatus = "RENTED"
	CarStatusMaintenance CarStatus = "MAINTENANCE"
)

type Car struct {
	ID                 int32     `json:"id"`
	RegistrationNumber string    `json:"registration_number"`
	Model              string    `json:"model"`
	Seats              int32     `json:"seats"`
	PricePerHourCents  int64     `json:"price_per_hour_cents"`
	Status             CarStatus `json:"status"`
	CreatedOn          time.Time `json:"created_on"`
	UpdatedOn          time.Time `json:"updated_on"`
}

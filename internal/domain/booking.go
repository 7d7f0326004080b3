package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusActive    BookingStatus = "ACTIVE"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

// Booking is a car rental. TotalPriceCents is set at creation from the
// car's hourly price and only ever grows through extension. PaymentStatus
// moves pending -> Paid exactly once; there is no refund transition.
type Booking struct {
	ID               int32         `json:"id"`
	Reference        string        `json:"reference"`
	UserID           int32         `json:"user_id"`
	CarID            int32         `json:"car_id"`
	RentalStart      time.Time     `json:"rental_start"`
	RentalEnd        time.Time     `json:"rental_end"`
	TotalPriceCents  int64         `json:"total_price_cents"`
	Status           BookingStatus `json:"status"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	OverdueNotified  *time.Time    `json:"overdue_notified,omitempty"`
	CreatedOn        time.Time     `json:"created_on"`
	UpdatedOn        time.Time     `json:"updated_on"`
}

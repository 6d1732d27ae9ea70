package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// IsActive reports whether the status counts toward vehicle
// unavailability.
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

type Booking struct {
	ID                int32  `json:"id"`
	UserID            int32  `json:"user_id"`
	VehicleID         int32  `json:"vehicle_id"`
	PickupLocationID  *int32 `json:"pickup_location_id,omitempty"`
	DropoffLocationID *int32 `json:"dropoff_location_id,omitempty"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"` // inclusive
	// TotalPriceCents is computed at creation time from the vehicle's
	// daily rate and never recomputed on status changes.
	TotalPriceCents int32         `json:"total_price_cents"`
	Status          BookingStatus `json:"status"`
	CreatedOn       time.Time     `json:"created_on"`

	// Denormalized vehicle display fields for the read side.
	VehicleName    string `json:"vehicle_name,omitempty"`
	VehicleImage   string `json:"vehicle_image,omitempty"`
	DailyRateCents int32  `json:"daily_rate_cents,omitempty"`
}

package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "Available"
	VehicleStatusBooked    VehicleStatus = "Booked"
)

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

type FuelType string

const (
	FuelTypePetrol FuelType = "Petrol"
	FuelTypeDiesel FuelType = "Diesel"
)

type Vehicle struct {
	ID           int32        `json:"id"`
	Name         string       `json:"name"`
	Model        string       `json:"model"`
	CarType      string       `json:"car_type"`
	Description  string       `json:"description"`
	Seats        int32        `json:"seats"`
	Transmission Transmission `json:"transmission"`
	FuelType     FuelType     `json:"fuel_type"`
	// Daily rate in cents. All price arithmetic is integer cents so
	// currency amounts never pass through floating point.
	DailyRateCents int32 `json:"daily_rate_cents"`
	// MinDays is the minimum rental period. Nil means no explicit
	// minimum and is treated as 1 day.
	MinDays *int32 `json:"min_days,omitempty"`
	// Status is a cached projection of the active booking set. It must
	// always be recomputable from the bookings referencing this vehicle.
	Status       VehicleStatus `json:"status"`
	Features     string        `json:"features"`
	Engine       string        `json:"engine,omitempty"`
	EngineTorque string        `json:"engine_torque,omitempty"`
	ImageURL     string        `json:"image_url"`
	CreatedOn    time.Time     `json:"created_on"`

	Images []VehicleImage `json:"images,omitempty"` // populated on detail fetch
}

// MinRentalDays returns the effective minimum rental period.
func (v *Vehicle) MinRentalDays() int32 {
	if v.MinDays == nil || *v.MinDays < 1 {
		return 1
	}
	return *v.MinDays
}

type VehicleImage struct {
	ID         int32     `json:"id"`
	VehicleID  int32     `json:"vehicle_id"`
	ImageURL   string    `json:"image_url"`
	UploadedOn time.Time `json:"uploaded_on"`
}

// VehicleFilter narrows the public catalog listing. Zero values mean
// "no constraint".
type VehicleFilter struct {
	Name         string
	Model        string
	CarType      string
	Transmission string
	FuelType     string
	Status       string
	MinRateCents int32
	MaxRateCents int32
	MinSeats     int32
	MaxSeats     int32
}

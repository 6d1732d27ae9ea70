package repository

import (
	"context"

	"jobunyacar-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByVerificationToken(ctx context.Context, token string) (*domain.User, error)
	GetByResetToken(ctx context.Context, token string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, filter domain.VehicleFilter, page, pageSize int32) ([]domain.Vehicle, int32, error)
	ListIDs(ctx context.Context) ([]int32, error)

	AddImage(ctx context.Context, image *domain.VehicleImage) error
	GetImages(ctx context.Context, vehicleID int32) ([]domain.VehicleImage, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error
	ListByUser(ctx context.Context, userID int32) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	// CountActiveByVehicle counts bookings for the vehicle whose status
	// is pending or confirmed, excluding excludeID (0 excludes nothing).
	CountActiveByVehicle(ctx context.Context, vehicleID, excludeID int32) (int32, error)
	// CountConfirmedByVehicle counts bookings for the vehicle in status
	// confirmed. Used by the availability reconciliation rule.
	CountConfirmedByVehicle(ctx context.Context, vehicleID int32) (int32, error)
}

type DamageReportRepository interface {
	Create(ctx context.Context, report *domain.DamageReport) error
	GetByID(ctx context.Context, id int32) (*domain.DamageReport, error)
	GetByBookingID(ctx context.Context, bookingID int32) (*domain.DamageReport, error)
	UpdateStatus(ctx context.Context, id int32, status domain.DamageReportStatus) error
	ListByUser(ctx context.Context, userID int32) ([]domain.DamageReport, error)
	ListAll(ctx context.Context) ([]domain.DamageReport, error)
}

type LocationRepository interface {
	Create(ctx context.Context, location *domain.Location) error
	GetByID(ctx context.Context, id int32) (*domain.Location, error)
	Update(ctx context.Context, location *domain.Location) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Location, error)
}

// Store aggregates all repositories and scopes them to one database
// handle. WithinTx yields a Store whose repositories share a single
// transaction, so a status write and the availability recompute it
// triggers commit or roll back together.
type Store interface {
	Users() UserRepository
	Vehicles() VehicleRepository
	Bookings() BookingRepository
	DamageReports() DamageReportRepository
	Locations() LocationRepository

	WithinTx(ctx context.Context, fn func(Store) error) error
}

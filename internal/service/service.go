package service

import (
	"context"

	"jobunyacar-backend/internal/domain"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Email           string
	Password        string
	PasswordConfirm string
	FullName        string
	PhoneNumber     string
	LicenseNumber   *string
	AgreeTerms      bool
}

// CreateBookingInput carries the caller-supplied booking fields. The
// owner and status are never taken from the client.
type CreateBookingInput struct {
	VehicleID         int32
	StartDate         string // yyyy-mm-dd
	EndDate           string // yyyy-mm-dd, inclusive
	PickupLocationID  *int32
	DropoffLocationID *int32
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	VerifyEmail(ctx context.Context, token string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (access, refresh string, err error)
	RefreshToken(ctx context.Context, refresh string) (access, newRefresh string, err error)
	Logout(ctx context.Context, refresh string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
	ChangePassword(ctx context.Context, principal *domain.User, oldPassword, newPassword string) error
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	ListUsers(ctx context.Context, principal *domain.User) ([]domain.User, error)
}

type VehicleService interface {
	CreateVehicle(ctx context.Context, principal *domain.User, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, principal *domain.User, vehicle *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, principal *domain.User, id int32) error
	ListVehicles(ctx context.Context, filter domain.VehicleFilter, page, pageSize int32) ([]domain.Vehicle, int32, error)
	AddVehicleImage(ctx context.Context, principal *domain.User, image *domain.VehicleImage) error
}

type BookingService interface {
	CreateBooking(ctx context.Context, principal *domain.User, input CreateBookingInput) (*domain.Booking, error)
	ListMyBookings(ctx context.Context, principal *domain.User) ([]domain.Booking, error)
	ListAllBookings(ctx context.Context, principal *domain.User) ([]domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, principal *domain.User, bookingID int32, status domain.BookingStatus) (*domain.Booking, error)
	ReconcileVehicleAvailability(ctx context.Context) error
}

type DamageReportService interface {
	CreateReport(ctx context.Context, principal *domain.User, bookingID int32, description string) (*domain.DamageReport, error)
	ListMyReports(ctx context.Context, principal *domain.User) ([]domain.DamageReport, error)
	ListAllReports(ctx context.Context, principal *domain.User) ([]domain.DamageReport, error)
	GetReport(ctx context.Context, principal *domain.User, id int32) (*domain.DamageReport, error)
	UpdateReportStatus(ctx context.Context, principal *domain.User, id int32, status domain.DamageReportStatus) (*domain.DamageReport, error)
}

type LocationService interface {
	CreateLocation(ctx context.Context, principal *domain.User, location *domain.Location) error
	UpdateLocation(ctx context.Context, principal *domain.User, location *domain.Location) error
	DeleteLocation(ctx context.Context, principal *domain.User, id int32) error
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

type EmailService interface {
	SendVerificationEmail(ctx context.Context, email, name, token string) error
	SendPasswordResetEmail(ctx context.Context, email, name, token string) error
	SendBookingStatusNotification(ctx context.Context, email, name, vehicleName string, status domain.BookingStatus, totalPriceCents int32) error
}

// requireAdmin is the role gate shared by every admin-only operation.
func requireAdmin(principal *domain.User) error {
	if principal == nil || !principal.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// requireAuthenticated gates operations open to any logged-in user.
func requireAuthenticated(principal *domain.User) error {
	if principal == nil {
		return domain.ErrUnauthenticated
	}
	return nil
}

package service

import (
	"context"
	"fmt"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/logger"
	"jobunyacar-backend/internal/repository"
	"jobunyacar-backend/internal/utils"
)

// allowedStatusTargets are the statuses an admin may set on a booking.
// Pending is create-only and never a transition target.
var allowedStatusTargets = map[domain.BookingStatus]bool{
	domain.BookingStatusConfirmed: true,
	domain.BookingStatusCancelled: true,
	domain.BookingStatusCompleted: true,
}

type bookingService struct {
	store             repository.Store
	emailSvc          EmailService
	allowAdminBooking bool
}

func NewBookingService(store repository.Store, emailSvc EmailService, allowAdminBooking bool) BookingService {
	return &bookingService{
		store:             store,
		emailSvc:          emailSvc,
		allowAdminBooking: allowAdminBooking,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, principal *domain.User, input CreateBookingInput) (*domain.Booking, error) {
	if err := requireAuthenticated(principal); err != nil {
		return nil, err
	}
	if principal.Role != domain.RoleCustomer && !s.allowAdminBooking {
		return nil, domain.ErrForbidden
	}

	start, err := utils.ParseDate(input.StartDate)
	if err != nil {
		return nil, domain.NewValidationError("start_date", err.Error())
	}
	end, err := utils.ParseDate(input.EndDate)
	if err != nil {
		return nil, domain.NewValidationError("end_date", err.Error())
	}
	if end.Before(start) {
		return nil, domain.NewValidationError("end_date", "end date cannot be before start date")
	}

	vehicle, err := s.store.Vehicles().GetByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}

	days, err := utils.RentalDays(start, end)
	if err != nil {
		return nil, domain.NewValidationError("end_date", err.Error())
	}
	if minDays := vehicle.MinRentalDays(); days < minDays {
		return nil, domain.NewValidationError("end_date",
			fmt.Sprintf("rental period must be at least %d days", minDays))
	}

	if input.PickupLocationID != nil {
		if _, err := s.store.Locations().GetByID(ctx, *input.PickupLocationID); err != nil {
			return nil, err
		}
	}
	if input.DropoffLocationID != nil {
		if _, err := s.store.Locations().GetByID(ctx, *input.DropoffLocationID); err != nil {
			return nil, err
		}
	}

	booking := &domain.Booking{
		// Owner is always the authenticated principal; a client-supplied
		// owner is ignored, and the status is forced to pending.
		UserID:            principal.ID,
		VehicleID:         vehicle.ID,
		PickupLocationID:  input.PickupLocationID,
		DropoffLocationID: input.DropoffLocationID,
		StartDate:         start,
		EndDate:           end,
		TotalPriceCents:   utils.TotalPriceCents(vehicle.DailyRateCents, days),
		Status:            domain.BookingStatusPending,
	}

	err = s.store.WithinTx(ctx, func(tx repository.Store) error {
		if err := tx.Bookings().Create(ctx, booking); err != nil {
			return err
		}
		return propagateAvailability(ctx, tx, booking)
	})
	if err != nil {
		return nil, err
	}

	booking.VehicleName = vehicle.Name
	booking.VehicleImage = vehicle.ImageURL
	booking.DailyRateCents = vehicle.DailyRateCents

	logger.Info("booking created", "booking_id", booking.ID, "vehicle_id", vehicle.ID,
		"user_id", principal.ID, "days", days, "total_price", utils.FormatCents(booking.TotalPriceCents))
	return booking, nil
}

func (s *bookingService) ListMyBookings(ctx context.Context, principal *domain.User) ([]domain.Booking, error) {
	if err := requireAuthenticated(principal); err != nil {
		return nil, err
	}
	return s.store.Bookings().ListByUser(ctx, principal.ID)
}

func (s *bookingService) ListAllBookings(ctx context.Context, principal *domain.User) ([]domain.Booking, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	return s.store.Bookings().ListAll(ctx)
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, principal *domain.User, bookingID int32, status domain.BookingStatus) (*domain.Booking, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if !allowedStatusTargets[status] {
		return nil, domain.NewValidationError("status", "invalid status value")
	}

	var booking *domain.Booking
	// The status write and the availability recompute it triggers must
	// share one transaction, or two concurrent updates on the same
	// vehicle could compute stale availability.
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		b, err := tx.Bookings().GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, bookingID, status); err != nil {
			return err
		}
		b.Status = status
		if err := propagateAvailability(ctx, tx, b); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatusChange(ctx, booking)

	logger.Info("booking status updated", "booking_id", booking.ID, "status", status, "admin_id", principal.ID)
	return booking, nil
}

// notifyStatusChange emails the booking owner. Delivery failures are
// logged and never affect the committed status change.
func (s *bookingService) notifyStatusChange(ctx context.Context, booking *domain.Booking) {
	owner, err := s.store.Users().GetByID(ctx, booking.UserID)
	if err != nil {
		logger.Warn("booking owner lookup failed, skipping notification", "booking_id", booking.ID, "error", err)
		return
	}
	err = s.emailSvc.SendBookingStatusNotification(ctx, owner.Email, owner.FullName,
		booking.VehicleName, booking.Status, booking.TotalPriceCents)
	if err != nil {
		logger.Warn("booking status notification failed", "booking_id", booking.ID, "error", err)
	}
}

// propagateAvailability reapplies the availability rule for the
// booking's vehicle after a status write:
//   - confirmed marks the vehicle Booked;
//   - any other status frees the vehicle only when no other pending or
//     confirmed booking references it.
//
// The rule is idempotent; re-running it over the same booking set never
// changes the result twice.
func propagateAvailability(ctx context.Context, store repository.Store, booking *domain.Booking) error {
	if booking.Status == domain.BookingStatusConfirmed {
		return store.Vehicles().UpdateStatus(ctx, booking.VehicleID, domain.VehicleStatusBooked)
	}

	active, err := store.Bookings().CountActiveByVehicle(ctx, booking.VehicleID, booking.ID)
	if err != nil {
		return err
	}
	if active == 0 {
		return store.Vehicles().UpdateStatus(ctx, booking.VehicleID, domain.VehicleStatusAvailable)
	}
	return nil
}

// ReconcileVehicleAvailability recomputes every vehicle's cached status
// from scratch out of the full booking set: Booked iff at least one
// confirmed booking references the vehicle. Safe to run at any time.
func (s *bookingService) ReconcileVehicleAvailability(ctx context.Context) error {
	ids, err := s.store.Vehicles().ListIDs(ctx)
	if err != nil {
		return err
	}

	var repaired int
	for _, id := range ids {
		err := s.store.WithinTx(ctx, func(tx repository.Store) error {
			confirmed, err := tx.Bookings().CountConfirmedByVehicle(ctx, id)
			if err != nil {
				return err
			}
			status := domain.VehicleStatusAvailable
			if confirmed > 0 {
				status = domain.VehicleStatusBooked
			}
			return tx.Vehicles().UpdateStatus(ctx, id, status)
		})
		if err != nil {
			return fmt.Errorf("reconcile vehicle %d: %w", id, err)
		}
		repaired++
	}

	logger.Info("vehicle availability reconciled", "vehicles", repaired)
	return nil
}

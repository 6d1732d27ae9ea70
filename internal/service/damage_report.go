package service

import (
	"context"
	"strings"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/logger"
	"jobunyacar-backend/internal/repository"
)

type damageReportService struct {
	store repository.Store
}

func NewDamageReportService(store repository.Store) DamageReportService {
	return &damageReportService{store: store}
}

// CreateReport files a damage report against one of the caller's own
// bookings. A booking carries at most one report; the unique constraint
// on booking_id backs that up at the database level.
func (s *damageReportService) CreateReport(ctx context.Context, principal *domain.User, bookingID int32, description string) (*domain.DamageReport, error) {
	if err := requireAuthenticated(principal); err != nil {
		return nil, err
	}
	if strings.TrimSpace(description) == "" {
		return nil, domain.NewValidationError("description", "description is required")
	}

	booking, err := s.store.Bookings().GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != principal.ID && !principal.IsAdmin() {
		// Report the booking as absent rather than confirming it exists.
		return nil, domain.ErrNotFound
	}

	report := &domain.DamageReport{
		BookingID:   bookingID,
		Description: strings.TrimSpace(description),
		Status:      domain.DamageReportStatusUnresolved,
	}
	if err := s.store.DamageReports().Create(ctx, report); err != nil {
		return nil, err
	}

	logger.Info("damage report filed", "report_id", report.ID, "booking_id", bookingID, "user_id", principal.ID)
	return report, nil
}

func (s *damageReportService) ListMyReports(ctx context.Context, principal *domain.User) ([]domain.DamageReport, error) {
	if err := requireAuthenticated(principal); err != nil {
		return nil, err
	}
	return s.store.DamageReports().ListByUser(ctx, principal.ID)
}

func (s *damageReportService) ListAllReports(ctx context.Context, principal *domain.User) ([]domain.DamageReport, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	return s.store.DamageReports().ListAll(ctx)
}

func (s *damageReportService) GetReport(ctx context.Context, principal *domain.User, id int32) (*domain.DamageReport, error) {
	if err := requireAuthenticated(principal); err != nil {
		return nil, err
	}

	report, err := s.store.DamageReports().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() {
		booking, err := s.store.Bookings().GetByID(ctx, report.BookingID)
		if err != nil {
			return nil, err
		}
		if booking.UserID != principal.ID {
			return nil, domain.ErrNotFound
		}
	}
	return report, nil
}

// UpdateReportStatus lets an admin flip a report between unresolved and
// resolved. Description and booking are immutable after filing.
func (s *damageReportService) UpdateReportStatus(ctx context.Context, principal *domain.User, id int32, status domain.DamageReportStatus) (*domain.DamageReport, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if status != domain.DamageReportStatusUnresolved && status != domain.DamageReportStatusResolved {
		return nil, domain.NewValidationError("status", "invalid status value")
	}

	report, err := s.store.DamageReports().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.store.DamageReports().UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	report.Status = status

	logger.Info("damage report status updated", "report_id", id, "status", status, "admin_id", principal.ID)
	return report, nil
}

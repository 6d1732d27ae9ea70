package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobunyacar-backend/internal/domain"
)

func TestCreateReport(t *testing.T) {
	ctx := context.Background()

	ownBooking := &domain.Booking{ID: 10, UserID: 7, VehicleID: 3}

	t.Run("files unresolved report against own booking", func(t *testing.T) {
		store := newMockStore()
		svc := NewDamageReportService(store)

		store.bookings.On("GetByID", ctx, int32(10)).Return(ownBooking, nil)
		store.reports.On("Create", ctx, mock.MatchedBy(func(r *domain.DamageReport) bool {
			return r.BookingID == 10 && r.Status == domain.DamageReportStatusUnresolved
		})).Return(nil)

		report, err := svc.CreateReport(ctx, testCustomer(), 10, "scratched rear bumper")
		require.NoError(t, err)
		assert.Equal(t, domain.DamageReportStatusUnresolved, report.Status)
	})

	t.Run("someone else's booking looks absent", func(t *testing.T) {
		store := newMockStore()
		svc := NewDamageReportService(store)

		other := &domain.Booking{ID: 11, UserID: 99, VehicleID: 3}
		store.bookings.On("GetByID", ctx, int32(11)).Return(other, nil)

		_, err := svc.CreateReport(ctx, testCustomer(), 11, "scratched rear bumper")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		store.reports.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("blank description rejected", func(t *testing.T) {
		svc := NewDamageReportService(newMockStore())

		_, err := svc.CreateReport(ctx, testCustomer(), 10, "   ")
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("duplicate report surfaces repository validation error", func(t *testing.T) {
		store := newMockStore()
		svc := NewDamageReportService(store)

		store.bookings.On("GetByID", ctx, int32(10)).Return(ownBooking, nil)
		store.reports.On("Create", ctx, mock.Anything).
			Return(domain.NewValidationError("booking", "a damage report already exists for this booking"))

		_, err := svc.CreateReport(ctx, testCustomer(), 10, "dent on the hood")
		assert.True(t, domain.IsValidation(err))
	})
}

func TestGetReport(t *testing.T) {
	ctx := context.Background()

	report := &domain.DamageReport{ID: 5, BookingID: 10, Status: domain.DamageReportStatusUnresolved}

	t.Run("owner can read", func(t *testing.T) {
		store := newMockStore()
		svc := NewDamageReportService(store)

		store.reports.On("GetByID", ctx, int32(5)).Return(report, nil)
		store.bookings.On("GetByID", ctx, int32(10)).Return(&domain.Booking{ID: 10, UserID: 7}, nil)

		got, err := svc.GetReport(ctx, testCustomer(), 5)
		require.NoError(t, err)
		assert.Equal(t, int32(5), got.ID)
	})

	t.Run("stranger sees not found", func(t *testing.T) {
		store := newMockStore()
		svc := NewDamageReportService(store)

		store.reports.On("GetByID", ctx, int32(5)).Return(report, nil)
		store.bookings.On("GetByID", ctx, int32(10)).Return(&domain.Booking{ID: 10, UserID: 99}, nil)

		_, err := svc.GetReport(ctx, testCustomer(), 5)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("admin skips the ownership check", func(t *testing.T) {
		store := newMockStore()
		svc := NewDamageReportService(store)

		store.reports.On("GetByID", ctx, int32(5)).Return(report, nil)

		_, err := svc.GetReport(ctx, testAdmin(), 5)
		assert.NoError(t, err)
		store.bookings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestUpdateReportStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("admin resolves a report", func(t *testing.T) {
		store := newMockStore()
		svc := NewDamageReportService(store)

		report := &domain.DamageReport{ID: 5, BookingID: 10, Status: domain.DamageReportStatusUnresolved}
		store.reports.On("GetByID", ctx, int32(5)).Return(report, nil)
		store.reports.On("UpdateStatus", ctx, int32(5), domain.DamageReportStatusResolved).Return(nil)

		got, err := svc.UpdateReportStatus(ctx, testAdmin(), 5, domain.DamageReportStatusResolved)
		require.NoError(t, err)
		assert.Equal(t, domain.DamageReportStatusResolved, got.Status)
	})

	t.Run("customer cannot resolve", func(t *testing.T) {
		svc := NewDamageReportService(newMockStore())

		_, err := svc.UpdateReportStatus(ctx, testCustomer(), 5, domain.DamageReportStatusResolved)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc := NewDamageReportService(newMockStore())

		_, err := svc.UpdateReportStatus(ctx, testAdmin(), 5, domain.DamageReportStatus("archived"))
		assert.True(t, domain.IsValidation(err))
	})
}

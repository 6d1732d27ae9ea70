package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"jobunyacar-backend/internal/domain"
)

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		start, _ := time.Parse("2006-01-02", "2024-01-01")
		end, _ := time.Parse("2006-01-02", "2024-01-03")
		booking := &domain.Booking{
			UserID:          7,
			VehicleID:       3,
			StartDate:       start,
			EndDate:         end,
			TotalPriceCents: 15000,
			Status:          domain.BookingStatusPending,
		}

		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(booking.UserID, booking.VehicleID, nil, nil, booking.StartDate, booking.EndDate, booking.TotalPriceCents, booking.Status, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on"}).AddRow(1, time.Now()))

		err := repo.Create(ctx, booking)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), booking.ID)
	})
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "vehicle_id", "pickup_location_id", "dropoff_location_id", "start_date", "end_date", "total_price_cents", "status", "created_on", "name", "image_url", "daily_rate_cents"}).
			AddRow(1, 7, 3, nil, nil, time.Now(), time.Now(), 15000, "pending", time.Now(), "Toyota RAV4", "", 5000)

		mock.ExpectQuery("SELECT (.+) FROM bookings b JOIN vehicles v").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		booking, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, booking)
		assert.Equal(t, "Toyota RAV4", booking.VehicleName)
		assert.Equal(t, int32(15000), booking.TotalPriceCents)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings b JOIN vehicles v").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET status").
			WithArgs(domain.BookingStatusConfirmed, int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, 1, domain.BookingStatusConfirmed)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET status").
			WithArgs(domain.BookingStatusConfirmed, int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, 99, domain.BookingStatusConfirmed)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingRepository_CountActiveByVehicle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("ExcludesGivenBooking", func(t *testing.T) {
		mock.ExpectQuery("SELECT count").
			WithArgs(int32(3), int32(10), domain.BookingStatusPending, domain.BookingStatusConfirmed).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		count, err := repo.CountActiveByVehicle(ctx, 3, 10)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), count)
	})
}

func TestBookingRepository_CountConfirmedByVehicle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT count").
			WithArgs(int32(3), domain.BookingStatusConfirmed).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		count, err := repo.CountConfirmedByVehicle(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), count)
	})
}

func TestBookingRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "vehicle_id", "pickup_location_id", "dropoff_location_id", "start_date", "end_date", "total_price_cents", "status", "created_on", "name", "image_url", "daily_rate_cents"}).
			AddRow(1, 7, 3, nil, nil, time.Now(), time.Now(), 15000, "pending", time.Now(), "Toyota RAV4", "", 5000).
			AddRow(2, 7, 4, nil, nil, time.Now(), time.Now(), 20000, "confirmed", time.Now(), "Honda CR-V", "", 4000)

		mock.ExpectQuery("SELECT (.+) FROM bookings b JOIN vehicles v (.+) WHERE b.user_id").
			WithArgs(int32(7)).
			WillReturnRows(rows)

		bookings, err := repo.ListByUser(ctx, 7)
		assert.NoError(t, err)
		assert.Len(t, bookings, 2)
	})
}

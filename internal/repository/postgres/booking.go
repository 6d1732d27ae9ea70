package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/repository"
)

type bookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// Booking reads join the vehicle row so every booking carries the
// read-only vehicle display fields.
const bookingSelect = `SELECT b.id, b.user_id, b.vehicle_id, b.pickup_location_id, b.dropoff_location_id, b.start_date, b.end_date, b.total_price_cents, b.status, b.created_on, v.name, COALESCE(v.image_url, ''), v.daily_rate_cents
	FROM bookings b JOIN vehicles v ON v.id = b.vehicle_id`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (user_id, vehicle_id, pickup_location_id, dropoff_location_id, start_date, end_date, total_price_cents, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query,
		b.UserID, b.VehicleID, b.PickupLocationID, b.DropoffLocationID,
		b.StartDate, b.EndDate, b.TotalPriceCents, b.Status, time.Now(),
	).Scan(&b.ID, &b.CreatedOn)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := r.db.QueryRowContext(ctx, bookingSelect+` WHERE b.id = $1`, id).Scan(
		&b.ID, &b.UserID, &b.VehicleID, &b.PickupLocationID, &b.DropoffLocationID,
		&b.StartDate, &b.EndDate, &b.TotalPriceCents, &b.Status, &b.CreatedOn,
		&b.VehicleName, &b.VehicleImage, &b.DailyRateCents,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// UpdateStatus writes only the status column. The price and date
// columns are immutable after creation.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Booking, error) {
	return r.list(ctx, bookingSelect+` WHERE b.user_id = $1 ORDER BY b.id`, userID)
}

func (r *bookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return r.list(ctx, bookingSelect+` ORDER BY b.created_on DESC`)
}

func (r *bookingRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.VehicleID, &b.PickupLocationID, &b.DropoffLocationID,
			&b.StartDate, &b.EndDate, &b.TotalPriceCents, &b.Status, &b.CreatedOn,
			&b.VehicleName, &b.VehicleImage, &b.DailyRateCents,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) CountActiveByVehicle(ctx context.Context, vehicleID, excludeID int32) (int32, error) {
	query := `SELECT count(*) FROM bookings WHERE vehicle_id = $1 AND id <> $2 AND status IN ($3, $4)`
	var count int32
	err := r.db.QueryRowContext(ctx, query, vehicleID, excludeID,
		domain.BookingStatusPending, domain.BookingStatusConfirmed).Scan(&count)
	return count, err
}

func (r *bookingRepository) CountConfirmedByVehicle(ctx context.Context, vehicleID int32) (int32, error) {
	query := `SELECT count(*) FROM bookings WHERE vehicle_id = $1 AND status = $2`
	var count int32
	err := r.db.QueryRowContext(ctx, query, vehicleID, domain.BookingStatusConfirmed).Scan(&count)
	return count, err
}

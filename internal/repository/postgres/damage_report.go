package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/repository"

	"github.com/lib/pq"
)

type damageReportRepository struct {
	db DBTX
}

func NewDamageReportRepository(db DBTX) repository.DamageReportRepository {
	return &damageReportRepository{db: db}
}

const damageReportColumns = `id, booking_id, description, status, created_on`

func (r *damageReportRepository) Create(ctx context.Context, d *domain.DamageReport) error {
	query := `INSERT INTO damage_reports (booking_id, description, status, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, d.BookingID, d.Description, d.Status, time.Now()).
		Scan(&d.ID, &d.CreatedOn)
	if err != nil {
		// Unique constraint on booking_id backs the one-report-per-booking rule.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.NewValidationError("booking", "a damage report already exists for this booking")
		}
		return err
	}
	return nil
}

func (r *damageReportRepository) GetByID(ctx context.Context, id int32) (*domain.DamageReport, error) {
	return r.getBy(ctx, `SELECT `+damageReportColumns+` FROM damage_reports WHERE id = $1`, id)
}

func (r *damageReportRepository) GetByBookingID(ctx context.Context, bookingID int32) (*domain.DamageReport, error) {
	return r.getBy(ctx, `SELECT `+damageReportColumns+` FROM damage_reports WHERE booking_id = $1`, bookingID)
}

func (r *damageReportRepository) getBy(ctx context.Context, query string, arg interface{}) (*domain.DamageReport, error) {
	d := &domain.DamageReport{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&d.ID, &d.BookingID, &d.Description, &d.Status, &d.CreatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// UpdateStatus is the only write path after creation; booking and
// description are read-only once set.
func (r *damageReportRepository) UpdateStatus(ctx context.Context, id int32, status domain.DamageReportStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE damage_reports SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *damageReportRepository) ListByUser(ctx context.Context, userID int32) ([]domain.DamageReport, error) {
	query := `SELECT d.id, d.booking_id, d.description, d.status, d.created_on
	          FROM damage_reports d JOIN bookings b ON b.id = d.booking_id
	          WHERE b.user_id = $1 ORDER BY d.id`
	return r.list(ctx, query, userID)
}

func (r *damageReportRepository) ListAll(ctx context.Context) ([]domain.DamageReport, error) {
	return r.list(ctx, `SELECT `+damageReportColumns+` FROM damage_reports ORDER BY id`)
}

func (r *damageReportRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.DamageReport, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.DamageReport
	for rows.Next() {
		var d domain.DamageReport
		if err := rows.Scan(&d.ID, &d.BookingID, &d.Description, &d.Status, &d.CreatedOn); err != nil {
			return nil, err
		}
		reports = append(reports, d)
	}
	return reports, rows.Err()
}

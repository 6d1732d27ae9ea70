package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/repository"
)

type vehicleRepository struct {
	db DBTX
}

func NewVehicleRepository(db DBTX) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, name, model, car_type, COALESCE(description, ''), seats, transmission, fuel_type, daily_rate_cents, min_days, status, COALESCE(features, ''), COALESCE(engine, ''), COALESCE(engine_torque, ''), COALESCE(image_url, ''), created_on`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (name, model, car_type, description, seats, transmission, fuel_type, daily_rate_cents, min_days, status, features, engine, engine_torque, image_url, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		v.Name, v.Model, v.CarType, v.Description, v.Seats, v.Transmission, v.FuelType,
		v.DailyRateCents, v.MinDays, v.Status, v.Features, v.Engine, v.EngineTorque,
		v.ImageURL, time.Now(),
	).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Model, &v.CarType, &v.Description, &v.Seats, &v.Transmission,
		&v.FuelType, &v.DailyRateCents, &v.MinDays, &v.Status, &v.Features, &v.Engine,
		&v.EngineTorque, &v.ImageURL, &v.CreatedOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET name=$1, model=$2, car_type=$3, description=$4, seats=$5, transmission=$6, fuel_type=$7, daily_rate_cents=$8, min_days=$9, status=$10, features=$11, engine=$12, engine_torque=$13, image_url=$14 WHERE id=$15`
	res, err := r.db.ExecContext(ctx, query,
		v.Name, v.Model, v.CarType, v.Description, v.Seats, v.Transmission, v.FuelType,
		v.DailyRateCents, v.MinDays, v.Status, v.Features, v.Engine, v.EngineTorque,
		v.ImageURL, v.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE vehicles SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes the vehicle. Bookings referencing it are removed by
// the ON DELETE CASCADE constraint, never silently orphaned.
func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *vehicleRepository) List(ctx context.Context, f domain.VehicleFilter, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	like := func(col, val string) {
		query += fmt.Sprintf(" AND %s ILIKE $%d", col, argIdx)
		args = append(args, "%"+val+"%")
		argIdx++
	}
	if f.Name != "" {
		like("name", f.Name)
	}
	if f.Model != "" {
		like("model", f.Model)
	}
	if f.CarType != "" {
		like("car_type", f.CarType)
	}
	if f.Transmission != "" {
		like("transmission", f.Transmission)
	}
	if f.FuelType != "" {
		like("fuel_type", f.FuelType)
	}
	if f.Status != "" {
		like("status", f.Status)
	}
	if f.MinRateCents > 0 {
		query += fmt.Sprintf(" AND daily_rate_cents >= $%d", argIdx)
		args = append(args, f.MinRateCents)
		argIdx++
	}
	if f.MaxRateCents > 0 {
		query += fmt.Sprintf(" AND daily_rate_cents <= $%d", argIdx)
		args = append(args, f.MaxRateCents)
		argIdx++
	}
	if f.MinSeats > 0 {
		query += fmt.Sprintf(" AND seats >= $%d", argIdx)
		args = append(args, f.MinSeats)
		argIdx++
	}
	if f.MaxSeats > 0 {
		query += fmt.Sprintf(" AND seats <= $%d", argIdx)
		args = append(args, f.MaxSeats)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Model, &v.CarType, &v.Description, &v.Seats, &v.Transmission,
			&v.FuelType, &v.DailyRateCents, &v.MinDays, &v.Status, &v.Features, &v.Engine,
			&v.EngineTorque, &v.ImageURL, &v.CreatedOn,
		); err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, count, rows.Err()
}

func (r *vehicleRepository) ListIDs(ctx context.Context) ([]int32, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM vehicles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *vehicleRepository) AddImage(ctx context.Context, img *domain.VehicleImage) error {
	query := `INSERT INTO vehicle_images (vehicle_id, image_url, uploaded_on) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, img.VehicleID, img.ImageURL, time.Now()).Scan(&img.ID)
}

func (r *vehicleRepository) GetImages(ctx context.Context, vehicleID int32) ([]domain.VehicleImage, error) {
	query := `SELECT id, vehicle_id, image_url, uploaded_on FROM vehicle_images WHERE vehicle_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []domain.VehicleImage
	for rows.Next() {
		var img domain.VehicleImage
		if err := rows.Scan(&img.ID, &img.VehicleID, &img.ImageURL, &img.UploadedOn); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// requireRow converts a zero-rows-affected update or delete into
// domain.ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"jobunyacar-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx,
// letting every repository run either standalone or inside a
// transaction-scoped Store.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Store struct {
	db       *sql.DB
	users    repository.UserRepository
	vehicles repository.VehicleRepository
	bookings repository.BookingRepository
	reports  repository.DamageReportRepository
	locs     repository.LocationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:       db,
		users:    NewUserRepository(db),
		vehicles: NewVehicleRepository(db),
		bookings: NewBookingRepository(db),
		reports:  NewDamageReportRepository(db),
		locs:     NewLocationRepository(db),
	}
}

func (s *Store) Users() repository.UserRepository                 { return s.users }
func (s *Store) Vehicles() repository.VehicleRepository           { return s.vehicles }
func (s *Store) Bookings() repository.BookingRepository           { return s.bookings }
func (s *Store) DamageReports() repository.DamageReportRepository { return s.reports }
func (s *Store) Locations() repository.LocationRepository         { return s.locs }

// WithinTx runs fn against a Store whose repositories are bound to a
// single transaction. The transaction commits when fn returns nil and
// rolls back otherwise.
func (s *Store) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	txStore := &Store{
		db:       s.db,
		users:    NewUserRepository(tx),
		vehicles: NewVehicleRepository(tx),
		bookings: NewBookingRepository(tx),
		reports:  NewDamageReportRepository(tx),
		locs:     NewLocationRepository(tx),
	}

	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}
	return tx.Commit()
}

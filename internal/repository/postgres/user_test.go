package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/repository"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "password_hash", "full_name", "phone_number", "license_number", "role", "agree_terms", "active", "verification_token", "reset_token", "reset_token_expires", "created_on", "updated_on"})
}

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("LowercasesEmail", func(t *testing.T) {
		user := &domain.User{
			Email:        "Anna@Example.com",
			PasswordHash: "hash",
			FullName:     "Anna Okello",
			Role:         domain.RoleCustomer,
			AgreeTerms:   true,
			Active:       true,
		}

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("anna@example.com", "hash", "Anna Okello", "", nil, domain.RoleCustomer, true, true, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on"}).AddRow(7, time.Now()))

		err := repo.Create(ctx, user)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), user.ID)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, &domain.User{Email: "anna@example.com"})
		assert.True(t, domain.IsValidation(err))
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := userRows().
			AddRow(7, "anna@example.com", "hash", "Anna Okello", "", nil, "customer", true, true, nil, nil, nil, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("anna@example.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(ctx, "Anna@Example.com")
		assert.NoError(t, err)
		assert.Equal(t, int32(7), user.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("ghost@example.com").
			WillReturnRows(userRows())

		_, err := repo.GetByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserRepository_GetByVerificationToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		token := "verify-token"
		rows := userRows().
			AddRow(7, "anna@example.com", "hash", "Anna Okello", "", nil, "customer", true, false, token, nil, nil, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE verification_token").
			WithArgs(token).
			WillReturnRows(rows)

		user, err := repo.GetByVerificationToken(ctx, token)
		assert.NoError(t, err)
		assert.False(t, user.Active)
	})
}

func TestStore_WithinTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	store := NewStore(db)
	ctx := context.Background()

	t.Run("CommitsOnSuccess", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE bookings SET status").
			WithArgs(domain.BookingStatusConfirmed, int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE vehicles SET status").
			WithArgs(domain.VehicleStatusBooked, int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := store.WithinTx(ctx, func(tx repository.Store) error {
			if err := tx.Bookings().UpdateStatus(ctx, 1, domain.BookingStatusConfirmed); err != nil {
				return err
			}
			return tx.Vehicles().UpdateStatus(ctx, 3, domain.VehicleStatusBooked)
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackOnError", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE bookings SET status").
			WithArgs(domain.BookingStatusConfirmed, int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := store.WithinTx(ctx, func(tx repository.Store) error {
			return tx.Bookings().UpdateStatus(ctx, 99, domain.BookingStatusConfirmed)
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

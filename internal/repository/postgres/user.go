package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/repository"

	"github.com/lib/pq"
)

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, password_hash, full_name, phone_number, license_number, role, agree_terms, active, verification_token, reset_token, reset_token_expires, created_on, updated_on`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, password_hash, full_name, phone_number, license_number, role, agree_terms, active, verification_token, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query,
		strings.ToLower(u.Email), u.PasswordHash, u.FullName, u.PhoneNumber, u.LicenseNumber,
		u.Role, u.AgreeTerms, u.Active, u.VerificationToken, time.Now(), time.Now(),
	).Scan(&u.ID, &u.CreatedOn)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.NewValidationError("email", "an account with this email already exists")
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(email))
}

func (r *userRepository) GetByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE verification_token = $1`, token)
}

func (r *userRepository) GetByResetToken(ctx context.Context, token string) (*domain.User, error) {
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE reset_token = $1`, token)
}

func (r *userRepository) getBy(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	u := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.PhoneNumber, &u.LicenseNumber,
		&u.Role, &u.AgreeTerms, &u.Active, &u.VerificationToken, &u.ResetToken,
		&u.ResetTokenExpires, &u.CreatedOn, &u.UpdatedOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email=$1, password_hash=$2, full_name=$3, phone_number=$4, license_number=$5, role=$6, active=$7, verification_token=$8, reset_token=$9, reset_token_expires=$10, updated_on=$11 WHERE id=$12`
	_, err := r.db.ExecContext(ctx, query,
		strings.ToLower(u.Email), u.PasswordHash, u.FullName, u.PhoneNumber, u.LicenseNumber,
		u.Role, u.Active, u.VerificationToken, u.ResetToken, u.ResetTokenExpires, time.Now(), u.ID)
	return err
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.PhoneNumber, &u.LicenseNumber,
			&u.Role, &u.AgreeTerms, &u.Active, &u.VerificationToken, &u.ResetToken,
			&u.ResetTokenExpires, &u.CreatedOn, &u.UpdatedOn,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

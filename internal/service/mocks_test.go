package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/repository"
	"jobunyacar-backend/internal/security"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByResetToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockVehicleRepo struct{ mock.Mock }

func (m *mockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *mockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *mockVehicleRepo) UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockVehicleRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockVehicleRepo) List(ctx context.Context, filter domain.VehicleFilter, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if v := args.Get(0); v != nil {
		return v.([]domain.Vehicle), args.Get(1).(int32), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *mockVehicleRepo) ListIDs(ctx context.Context) ([]int32, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]int32), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVehicleRepo) AddImage(ctx context.Context, image *domain.VehicleImage) error {
	return m.Called(ctx, image).Error(0)
}

func (m *mockVehicleRepo) GetImages(ctx context.Context, vehicleID int32) ([]domain.VehicleImage, error) {
	args := m.Called(ctx, vehicleID)
	if v := args.Get(0); v != nil {
		return v.([]domain.VehicleImage), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	if args.Error(0) == nil && booking.ID == 0 {
		booking.ID = 1
	}
	return args.Error(0)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if b := args.Get(0); b != nil {
		return b.([]domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) ListAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if b := args.Get(0); b != nil {
		return b.([]domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) CountActiveByVehicle(ctx context.Context, vehicleID, excludeID int32) (int32, error) {
	args := m.Called(ctx, vehicleID, excludeID)
	return args.Get(0).(int32), args.Error(1)
}

func (m *mockBookingRepo) CountConfirmedByVehicle(ctx context.Context, vehicleID int32) (int32, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).(int32), args.Error(1)
}

type mockDamageReportRepo struct{ mock.Mock }

func (m *mockDamageReportRepo) Create(ctx context.Context, report *domain.DamageReport) error {
	args := m.Called(ctx, report)
	if args.Error(0) == nil && report.ID == 0 {
		report.ID = 1
	}
	return args.Error(0)
}

func (m *mockDamageReportRepo) GetByID(ctx context.Context, id int32) (*domain.DamageReport, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.DamageReport), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDamageReportRepo) GetByBookingID(ctx context.Context, bookingID int32) (*domain.DamageReport, error) {
	args := m.Called(ctx, bookingID)
	if r := args.Get(0); r != nil {
		return r.(*domain.DamageReport), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDamageReportRepo) UpdateStatus(ctx context.Context, id int32, status domain.DamageReportStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockDamageReportRepo) ListByUser(ctx context.Context, userID int32) ([]domain.DamageReport, error) {
	args := m.Called(ctx, userID)
	if r := args.Get(0); r != nil {
		return r.([]domain.DamageReport), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDamageReportRepo) ListAll(ctx context.Context) ([]domain.DamageReport, error) {
	args := m.Called(ctx)
	if r := args.Get(0); r != nil {
		return r.([]domain.DamageReport), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockLocationRepo struct{ mock.Mock }

func (m *mockLocationRepo) Create(ctx context.Context, location *domain.Location) error {
	return m.Called(ctx, location).Error(0)
}

func (m *mockLocationRepo) GetByID(ctx context.Context, id int32) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if l := args.Get(0); l != nil {
		return l.(*domain.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLocationRepo) Update(ctx context.Context, location *domain.Location) error {
	return m.Called(ctx, location).Error(0)
}

func (m *mockLocationRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockLocationRepo) List(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]domain.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

// mockStore hands out the mock repositories and runs transactional
// callbacks against itself, so tests see the same call flow as the
// real store without a database.
type mockStore struct {
	users    *mockUserRepo
	vehicles *mockVehicleRepo
	bookings *mockBookingRepo
	reports  *mockDamageReportRepo
	locs     *mockLocationRepo
}

func newMockStore() *mockStore {
	return &mockStore{
		users:    &mockUserRepo{},
		vehicles: &mockVehicleRepo{},
		bookings: &mockBookingRepo{},
		reports:  &mockDamageReportRepo{},
		locs:     &mockLocationRepo{},
	}
}

func (s *mockStore) Users() repository.UserRepository             { return s.users }
func (s *mockStore) Vehicles() repository.VehicleRepository       { return s.vehicles }
func (s *mockStore) Bookings() repository.BookingRepository       { return s.bookings }
func (s *mockStore) DamageReports() repository.DamageReportRepository { return s.reports }
func (s *mockStore) Locations() repository.LocationRepository     { return s.locs }

func (s *mockStore) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

type mockEmailService struct{ mock.Mock }

func (m *mockEmailService) SendVerificationEmail(ctx context.Context, email, name, token string) error {
	return m.Called(ctx, email, name, token).Error(0)
}

func (m *mockEmailService) SendPasswordResetEmail(ctx context.Context, email, name, token string) error {
	return m.Called(ctx, email, name, token).Error(0)
}

func (m *mockEmailService) SendBookingStatusNotification(ctx context.Context, email, name, vehicleName string, status domain.BookingStatus, totalPriceCents int32) error {
	return m.Called(ctx, email, name, vehicleName, status, totalPriceCents).Error(0)
}

type mockTokenManager struct{ mock.Mock }

func (m *mockTokenManager) GenerateAccessToken(userID int32, email string, role domain.Role) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}

func (m *mockTokenManager) GenerateRefreshToken(userID int32, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func (m *mockTokenManager) ValidateToken(token string) (*security.UserClaims, error) {
	args := m.Called(token)
	if c := args.Get(0); c != nil {
		return c.(*security.UserClaims), args.Error(1)
	}
	return nil, args.Error(1)
}

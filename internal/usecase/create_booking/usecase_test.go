package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	bookingRepo "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/infra/storage/booking"
	gameRepo "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/infra/storage/game"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/integrations/userservice"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/txmanager"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	existing  []*domain.Booking
	created   *domain.Booking
	createErr error
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	booking.ID = 1
	r.created = booking
	return booking, nil
}

func (r *fakeBookingRepo) GetActiveByGameAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return r.existing, nil
}

type fakeGameRepo struct {
	game *domain.Game
}

func (r *fakeGameRepo) GetByID(_ context.Context, id int64) (*domain.Game, error) {
	if r.game == nil || r.game.ID != id {
		return nil, gameRepo.ErrGameNotFound
	}
	return r.game, nil
}

type fakeSettingsRepo struct {
	settings *domain.SystemSettings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*domain.SystemSettings, error) {
	return r.settings, nil
}

type fakeUserClient struct {
	profile *userservice.UserProfile
	err     error
}

func (c *fakeUserClient) GetUserWithGracefulDegradation(_ context.Context, _ int64) (*userservice.UserProfile, error) {
	return c.profile, c.err
}

type fakeTxManager struct {
	err error
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type fakeMetrics struct {
	created   int
	conflicts int
}

func (m *fakeMetrics) IncBookingCreated(string) { m.created++ }
func (m *fakeMetrics) IncBookingConflict()      { m.conflicts++ }

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *Usecase
	bookings *fakeBookingRepo
	settings *domain.SystemSettings
	user     *fakeUserClient
	tx       *fakeTxManager
	metrics  *fakeMetrics
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &fakeBookingRepo{},
		settings: domain.DefaultSettings(),
		user: &fakeUserClient{profile: &userservice.UserProfile{
			ID: 42, Name: "Sai Deepak", Phone: "+91 98765 43210",
		}},
		tx:      &fakeTxManager{},
		metrics: &fakeMetrics{},
	}
	f.uc = NewUsecase(
		f.bookings,
		&fakeGameRepo{game: &domain.Game{ID: 1, Name: "Cricket Net", PricePerHour: 500}},
		&fakeSettingsRepo{settings: f.settings},
		f.user,
		f.tx,
		&fixedTimeProvider{now: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)},
		f.metrics,
		nopLogger{},
	)
	return f
}

func validRequest() Request {
	return Request{
		UserID:    42,
		GameID:    1,
		Date:      time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime: "14:00",
		EndTime:   "15:30",
	}
}

func TestExecuteCreatesPendingBooking(t *testing.T) {
	f := newFixture()

	booking, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, booking.Status, "approval is required by default")
	assert.Equal(t, int64(750), booking.TotalCost, "90 minutes at 500/hour")
	assert.Equal(t, "Cricket Net", booking.GameName)
	assert.Equal(t, 500.0, booking.PricePerHour)
	require.NotNil(t, booking.ContactName)
	assert.Equal(t, "Sai Deepak", *booking.ContactName)
	assert.Equal(t, 1, f.metrics.created)
}

func TestExecuteConfirmedWhenApprovalOff(t *testing.T) {
	f := newFixture()
	f.settings.RequireApproval = false

	booking, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, booking.Status)
}

func TestExecuteRejectsOverlap(t *testing.T) {
	f := newFixture()
	f.bookings.existing = []*domain.Booking{{
		ID:        7,
		GameID:    1,
		StartTime: "15:00",
		EndTime:   "16:00",
		Status:    domain.StatusPending,
	}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, f.bookings.created, "no insert after a failed pre-check")
	assert.Equal(t, 1, f.metrics.conflicts)
}

func TestExecuteBoundaryTouchAllowed(t *testing.T) {
	f := newFixture()
	f.bookings.existing = []*domain.Booking{{
		ID:        7,
		GameID:    1,
		StartTime: "15:30",
		EndTime:   "16:30",
		Status:    domain.StatusConfirmed,
	}}

	booking, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("15:30"), booking.EndTime)
}

func TestExecuteLosesRaceAtInsert(t *testing.T) {
	// Pre-check passes but the database constraint fires: a concurrent
	// transaction inserted an overlapping row first.
	f := newFixture()
	f.bookings.createErr = bookingRepo.ErrSlotConflict

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, 1, f.metrics.conflicts)
}

func TestExecuteSerializationFailureReadsAsConflict(t *testing.T) {
	f := newFixture()
	f.tx.err = txmanager.ErrSerialization

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecuteValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			"start off the slot grid",
			func(r *Request) { r.StartTime = "14:10" },
			ErrValidation,
		},
		{
			"end off the slot grid",
			func(r *Request) { r.EndTime = "15:40" },
			ErrValidation,
		},
		{
			"below minimum duration",
			func(r *Request) { r.EndTime = "14:30" },
			ErrValidation,
		},
		{
			"above maximum duration",
			func(r *Request) { r.EndTime = "18:30" },
			ErrValidation,
		},
		{
			"before opening",
			func(r *Request) { r.StartTime = "05:00"; r.EndTime = "06:30" },
			ErrValidation,
		},
		{
			"past closing",
			func(r *Request) { r.StartTime = "21:00"; r.EndTime = "23:00" },
			ErrValidation,
		},
		{
			"overnight without 24x7",
			func(r *Request) { r.StartTime = "23:00"; r.EndTime = "01:00" },
			ErrValidation,
		},
		{
			"date in the past",
			func(r *Request) { r.Date = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC) },
			ErrDateInPast,
		},
		{
			"date beyond the horizon",
			func(r *Request) { r.Date = time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC) },
			ErrDateTooFar,
		},
		{
			"malformed start time",
			func(r *Request) { r.StartTime = "25:00" },
			ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.mutate(&req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, f.bookings.created)
		})
	}
}

func TestExecuteOvernightUnder24x7(t *testing.T) {
	f := newFixture()
	f.settings.Is24x7 = true

	req := validRequest()
	req.StartTime = "23:00"
	req.EndTime = "01:00"

	booking, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), booking.TotalCost, "two hours across midnight at 500/hour")
}

func TestExecuteUserNotFound(t *testing.T) {
	f := newFixture()
	f.user.profile = nil
	f.user.err = userservice.ErrUserNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecuteDegradedUserService(t *testing.T) {
	f := newFixture()
	f.user.profile = nil
	f.user.err = userservice.ErrServiceDegraded

	booking, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Nil(t, booking.ContactName, "booking proceeds without contact details")
	assert.Nil(t, booking.ContactPhone)
}

func TestExecuteGameNotFound(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.GameID = 404

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrGameNotFound)
}

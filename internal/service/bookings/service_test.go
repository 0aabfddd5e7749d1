package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	bookingRepo "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/infra/storage/booking"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	cancelCalls       int
	updateStatusCalls int
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if filter.UserID != nil && b.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	r.updateStatusCalls++
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	r.cancelCalls++
	b.Status = domain.StatusCanceled
	b.CancellationReason = &reason
	now := time.Now()
	b.CancelledAt = &now
	return nil
}

type fakeSettingsRepo struct {
	settings *domain.SystemSettings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*domain.SystemSettings, error) {
	return r.settings, nil
}

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

func mustTimeString(t *testing.T, value string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(value)
	require.NoError(t, err)
	return ts
}

func testBooking(t *testing.T, id, userID int64, status domain.BookingStatus, date time.Time, start string) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:          id,
		UserID:      userID,
		GameID:      1,
		BookingDate: date,
		StartTime:   mustTimeString(t, start),
		EndTime:     mustTimeString(t, "23:00"),
		Status:      status,
	}
}

func newTestService(repo *fakeBookingRepo, now time.Time, cancellationHours int) *Service {
	settings := domain.DefaultSettings()
	settings.CancellationHours = cancellationHours
	return NewService(
		repo,
		&fakeSettingsRepo{settings: settings},
		&fixedTimeProvider{now: now},
		nopLogger{},
	)
}

func TestGetByIDOwnerAndAdminAccess(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(testBooking(t, 1, 42, domain.StatusPending, now, "18:00"))
	svc := newTestService(repo, now, 2)

	booking, err := svc.GetByID(context.Background(), 1, 42, domain.ActorUser)
	require.NoError(t, err)
	assert.Equal(t, int64(1), booking.ID)

	_, err = svc.GetByID(context.Background(), 1, 99, domain.ActorUser)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 1, 99, domain.ActorAdmin)
	assert.NoError(t, err)
}

func TestGetByIDNotFound(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeBookingRepo(), now, 2)

	_, err := svc.GetByID(context.Background(), 404, 42, domain.ActorUser)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookingsOwnershipCheck(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(
		testBooking(t, 1, 42, domain.StatusPending, now, "18:00"),
		testBooking(t, 2, 42, domain.StatusCanceled, now, "19:00"),
		testBooking(t, 3, 7, domain.StatusConfirmed, now, "18:00"),
	)
	svc := newTestService(repo, now, 2)

	bookings, err := svc.GetUserBookings(context.Background(), 42, 42, domain.ActorUser, nil)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)

	_, err = svc.GetUserBookings(context.Background(), 42, 7, domain.ActorUser, nil)
	assert.ErrorIs(t, err, ErrAccessDenied)

	pending := domain.StatusPending
	bookings, err = svc.GetUserBookings(context.Background(), 42, 1, domain.ActorAdmin, &pending)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestListAdminOnly(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(testBooking(t, 1, 42, domain.StatusPending, now, "18:00"))
	svc := newTestService(repo, now, 2)

	_, err := svc.List(context.Background(), domain.ActorUser, domain.BookingsFilter{})
	assert.ErrorIs(t, err, ErrAccessDenied)

	bookings, err := svc.List(context.Background(), domain.ActorAdmin, domain.BookingsFilter{})
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestCancelPendingByOwner(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(testBooking(t, 1, 42, domain.StatusPending, now, "11:00"))
	svc := newTestService(repo, now, 2)

	// Pending bookings can be canceled at any time, even right before start.
	booking, err := svc.Cancel(context.Background(), 1, 42, domain.ActorUser, "change of plans")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCanceled, booking.Status)
	require.NotNil(t, booking.CancellationReason)
	assert.Equal(t, "change of plans", *booking.CancellationReason)
}

func TestCancelConfirmedBeforeDeadline(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	// Starts at 14:00, deadline is 2h: cancellation allowed until 12:00.
	repo := newFakeBookingRepo(testBooking(t, 1, 42, domain.StatusConfirmed, date, "14:00"))
	svc := newTestService(repo, now, 2)

	booking, err := svc.Cancel(context.Background(), 1, 42, domain.ActorUser, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCanceled, booking.Status)
}

func TestCancelConfirmedPastDeadline(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(testBooking(t, 1, 42, domain.StatusConfirmed, date, "14:00"))
	svc := newTestService(repo, now, 2)

	_, err := svc.Cancel(context.Background(), 1, 42, domain.ActorUser, "")
	assert.ErrorIs(t, err, ErrCancellationDeadline)
	assert.Zero(t, repo.cancelCalls, "booking must remain untouched")
}

func TestCancelConfirmedExactlyAtDeadline(t *testing.T) {
	// start - now == deadline is NOT strictly greater, so it is rejected.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(testBooking(t, 1, 42, domain.StatusConfirmed, date, "14:00"))
	svc := newTestService(repo, now, 2)

	_, err := svc.Cancel(context.Background(), 1, 42, domain.ActorUser, "")
	assert.ErrorIs(t, err, ErrCancellationDeadline)
}

func TestAdminCancelIgnoresDeadline(t *testing.T) {
	now := time.Date(2026, 3, 10, 13, 59, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(testBooking(t, 1, 42, domain.StatusConfirmed, date, "14:00"))
	svc := newTestService(repo, now, 2)

	booking, err := svc.Cancel(context.Background(), 1, 99, domain.ActorAdmin, "court maintenance")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCanceled, booking.Status)
}

func TestCancelTerminalStatusesRejected(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	for _, status := range []domain.BookingStatus{domain.StatusCanceled, domain.StatusCompleted, domain.StatusNoShow} {
		t.Run(string(status), func(t *testing.T) {
			repo := newFakeBookingRepo(testBooking(t, 1, 42, status, now, "18:00"))
			svc := newTestService(repo, now, 2)

			_, err := svc.Cancel(context.Background(), 1, 42, domain.ActorUser, "")
			assert.ErrorIs(t, err, ErrInvalidTransition)

			_, err = svc.Cancel(context.Background(), 1, 1, domain.ActorAdmin, "")
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestUpdateStatusAdminApproval(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(testBooking(t, 1, 42, domain.StatusPending, now, "18:00"))
	svc := newTestService(repo, now, 2)

	booking, err := svc.UpdateStatus(context.Background(), 1, domain.ActorAdmin, domain.StatusConfirmed, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
}

func TestUpdateStatusRejectionRecordsReason(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(testBooking(t, 1, 42, domain.StatusPending, now, "18:00"))
	svc := newTestService(repo, now, 2)

	reason := "double booked offline"
	booking, err := svc.UpdateStatus(context.Background(), 1, domain.ActorAdmin, domain.StatusCanceled, &reason)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCanceled, booking.Status)
	require.NotNil(t, booking.CancellationReason)
	assert.Equal(t, reason, *booking.CancellationReason)
	assert.Equal(t, 1, repo.cancelCalls)
	assert.Zero(t, repo.updateStatusCalls)
}

func TestUpdateStatusDeniedForUser(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(testBooking(t, 1, 42, domain.StatusPending, now, "18:00"))
	svc := newTestService(repo, now, 2)

	_, err := svc.UpdateStatus(context.Background(), 1, domain.ActorUser, domain.StatusConfirmed, nil)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatusInvalidTransitions(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		from domain.BookingStatus
		to   domain.BookingStatus
	}{
		{"pending cannot complete directly", domain.StatusPending, domain.StatusCompleted},
		{"pending cannot no-show", domain.StatusPending, domain.StatusNoShow},
		{"completed cannot revert to confirmed", domain.StatusCompleted, domain.StatusConfirmed},
		{"canceled is terminal", domain.StatusCanceled, domain.StatusConfirmed},
		{"no-show is terminal", domain.StatusNoShow, domain.StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBookingRepo(testBooking(t, 1, 42, tt.from, now, "18:00"))
			svc := newTestService(repo, now, 2)

			_, err := svc.UpdateStatus(context.Background(), 1, domain.ActorAdmin, tt.to, nil)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Zero(t, repo.updateStatusCalls)
			assert.Zero(t, repo.cancelCalls)
		})
	}
}

func TestUpdateStatusCompletedAndNoShow(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	for _, target := range []domain.BookingStatus{domain.StatusCompleted, domain.StatusNoShow} {
		t.Run(string(target), func(t *testing.T) {
			repo := newFakeBookingRepo(testBooking(t, 1, 42, domain.StatusConfirmed, now, "18:00"))
			svc := newTestService(repo, now, 2)

			booking, err := svc.UpdateStatus(context.Background(), 1, domain.ActorAdmin, target, nil)
			require.NoError(t, err)
			assert.Equal(t, target, booking.Status)
		})
	}
}

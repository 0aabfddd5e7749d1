package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/psqlbuilder"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/txmanager"
)

// settingsRowID pins the singleton row; the schema CHECKs id = 1.
const settingsRowID = 1

var settingsColumns = []string{
	"id",
	"opening_time",
	"closing_time",
	"is_24_7",
	"advance_booking_days",
	"booking_slot_duration",
	"min_booking_duration",
	"max_booking_duration",
	"cancellation_deadline",
	"require_admin_approval",
	"created_at",
	"updated_at",
}

// Repository reads and writes the single system settings row.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a settings repository on top of db.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Get fetches the settings row.
func (r *Repository) Get(ctx context.Context) (*domain.SystemSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("system_settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.SystemSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.OpeningTime,
		&s.ClosingTime,
		&s.Is24x7,
		&s.AdvanceBookingDays,
		&s.SlotDurationMinutes,
		&s.MinBookingHours,
		&s.MaxBookingHours,
		&s.CancellationHours,
		&s.RequireApproval,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Update replaces the whole settings row with the merged result of the
// current settings plus the patch. Writing every column in one statement
// keeps the row internally consistent: a concurrent reader observes either
// the old row or the new one, never a mix of fields.
func (r *Repository) Update(ctx context.Context, s *domain.SystemSettings) (*domain.SystemSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("system_settings").
		Set("opening_time", s.OpeningTime).
		Set("closing_time", s.ClosingTime).
		Set("is_24_7", s.Is24x7).
		Set("advance_booking_days", s.AdvanceBookingDays).
		Set("booking_slot_duration", s.SlotDurationMinutes).
		Set("min_booking_duration", s.MinBookingHours).
		Set("max_booking_duration", s.MaxBookingHours).
		Set("cancellation_deadline", s.CancellationHours).
		Set("require_admin_approval", s.RequireApproval).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": settingsRowID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	s.ID = settingsRowID
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

package game

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/psqlbuilder"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/txmanager"
)

var gameColumns = []string{
	"id",
	"name",
	"description",
	"price_per_hour",
	"max_players",
	"created_at",
	"updated_at",
}

// Repository persists the game catalog in Postgres.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a game repository on top of db.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new game.
func (r *Repository) Create(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("games").
		Columns("name", "description", "price_per_hour", "max_players").
		Values(game.Name, game.Description, game.PricePerHour, game.MaxPlayers).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&game.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	game.CreatedAt = createdAt.Time
	game.UpdatedAt = updatedAt.Time

	return game, nil
}

// GetByID fetches one game.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Game, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(gameColumns...).
		From("games").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	game, err := scanGame(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan game: %v", ErrScanRow, err)
	}

	return game, nil
}

// List returns the whole catalog ordered by name.
func (r *Repository) List(ctx context.Context) ([]*domain.Game, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(gameColumns...).
		From("games").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	games := make([]*domain.Game, 0)
	for rows.Next() {
		game, err := scanGame(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		games = append(games, game)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return games, nil
}

// Update writes the full game row.
func (r *Repository) Update(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("games").
		Set("name", game.Name).
		Set("description", game.Description).
		Set("price_per_hour", game.PricePerHour).
		Set("max_players", game.MaxPlayers).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": game.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	game.UpdatedAt = updatedAt.Time

	return game, nil
}

// Delete removes a game from the catalog. Existing bookings keep their
// snapshot columns and are not touched.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("games").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrGameNotFound
	}

	return nil
}

func scanGame(scan func(dest ...interface{}) error) (*domain.Game, error) {
	var game domain.Game
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&game.ID,
		&game.Name,
		&game.Description,
		&game.PricePerHour,
		&game.MaxPlayers,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	game.CreatedAt = createdAt.Time
	game.UpdatedAt = updatedAt.Time

	return &game, nil
}

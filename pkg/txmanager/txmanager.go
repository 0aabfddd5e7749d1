package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrSerialization is returned when a serializable transaction loses a
	// concurrency race (SQLSTATE 40001). The caller decides whether to retry
	// or surface it; the manager never retries on its own.
	ErrSerialization = errors.New("txmanager: serialization failure")

	// ErrTransaction is returned for begin/commit/rollback failures.
	ErrTransaction = errors.New("txmanager: transaction error")
)

type ctxKey struct{}

type txValue struct {
	tx       *sql.Tx
	readOnly bool
}

// Executor is the query surface shared by *sql.DB and *sql.Tx. Repositories
// are written against it so the same code runs inside and outside
// transactions.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TransactionManager runs functions inside database transactions, carrying
// the active *sql.Tx through the context so repositories pick it up via
// GetExecutor.
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a TransactionManager on top of db.
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable runs fn inside a SERIALIZABLE transaction. Used for the
// conflict-recheck-and-insert booking path, where two concurrent writers for
// the same game and date must not both succeed.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly runs fn inside a read-only transaction, guaranteeing a
// consistent snapshot across multiple reads (e.g. settings + bookings).
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	txCtx := context.WithValue(ctx, ctxKey{}, txValue{tx: tx, readOnly: opts.ReadOnly})

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("%w: rollback after %v: %v", ErrTransaction, err, rbErr)
		}
		return mapSerialization(err)
	}

	// The serialization check runs on the raw commit error: wrapping first
	// would sever the pq.Error chain and hide SQLSTATE 40001. Under SSI the
	// losing transaction often fails exactly here, at commit.
	if err := tx.Commit(); err != nil {
		if IsSerializationFailure(err) {
			return fmt.Errorf("%w: commit: %v", ErrSerialization, err)
		}
		return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
	}

	return nil
}

// GetExecutor returns the transaction stored in ctx, or fallback when the
// call is running outside any transaction.
func GetExecutor(ctx context.Context, fallback Executor) Executor {
	if v, ok := ctx.Value(ctxKey{}).(txValue); ok {
		return v.tx
	}
	return fallback
}

// IsInTransaction reports whether ctx carries an active transaction.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(txValue)
	return ok
}

// IsInWriteTransaction reports whether ctx carries an active transaction that
// can take row locks. FOR UPDATE is rejected by Postgres inside READ ONLY
// transactions, so locking reads must key off this, not IsInTransaction.
func IsInWriteTransaction(ctx context.Context) bool {
	v, ok := ctx.Value(ctxKey{}).(txValue)
	return ok && !v.readOnly
}

// IsSerializationFailure reports whether err is a lost serialization race:
// either a raw SQLSTATE 40001 from the driver or an error already tagged
// with ErrSerialization.
func IsSerializationFailure(err error) bool {
	if errors.Is(err, ErrSerialization) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "40001"
}

// mapSerialization tags SQLSTATE 40001 so callers can treat a lost
// serialization race the same way as an explicit slot conflict.
func mapSerialization(err error) error {
	if IsSerializationFailure(err) && !errors.Is(err, ErrSerialization) {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return err
}

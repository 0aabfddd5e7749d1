package booking

import "github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/txmanager"

// DBExecutor is the query surface the repository needs. Satisfied by *sql.DB
// and *sql.Tx; the active transaction, when present, is picked out of the
// context via txmanager.GetExecutor.
type DBExecutor = txmanager.Executor

package pgsql

import (
	"time"

	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every repository to the pool. storeTimeout
// bounds each transaction; zero disables the bound.
func NewRepositoryProvider(dbPool *pgxpool.Pool, storeTimeout time.Duration) portsrepo.RepositoryProvider {
	repos := newRepositorySet(dbPool)
	repos.TxRunner = &txRunner{pool: dbPool, timeout: storeTimeout}
	return repos
}

func newRepositorySet(db dbtx) portsrepo.RepositoryProvider {
	base := BaseRepository{db: db}
	return portsrepo.RepositoryProvider{
		OrderRepo:       &PgxOrderRepository{BaseRepository: base},
		ClientRepo:      &PgxClientRepository{BaseRepository: base},
		WorkerRepo:      &PgxWorkerRepository{BaseRepository: base},
		CashRepo:        &PgxCashRepository{BaseRepository: base},
		CommissionRepo:  &PgxCommissionRepository{BaseRepository: base},
		SystemLogRepo:   &PgxSystemLogRepository{BaseRepository: base},
		FixedCostRepo:   &PgxFixedCostRepository{BaseRepository: base},
		MonthConfigRepo: &PgxMonthConfigRepository{BaseRepository: base},
	}
}

package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// A provider obtained inside RunInTx is bound to that transaction.
type RepositoryProvider struct {
	OrderRepo       OrderRepositoryFacade
	ClientRepo      ClientRepositoryFacade
	WorkerRepo      WorkerRepositoryFacade
	CashRepo        CashRepositoryFacade
	CommissionRepo  CommissionRepositoryFacade
	SystemLogRepo   SystemLogRepositoryFacade
	FixedCostRepo   FixedCostRepositoryFacade
	MonthConfigRepo MonthConfigRepositoryFacade
	TxRunner        TransactionRunner
}

package services_test

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/repair_shop_app/internal/apperrors"
	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	"github.com/SscSPs/repair_shop_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// memState is the data held by memStore. It is copied wholesale to give
// transactions rollback.
type memState struct {
	nextID  int64
	orders  map[int64]domain.Order
	clients map[int64]domain.Client
	workers map[int64]domain.Worker
	cash    []domain.CashTransaction
	salary  []domain.SalaryLog
	logs    []domain.SystemLog
	fixed   map[int64]domain.FixedCost
	months  map[[2]int]domain.MonthConfig
}

func (s memState) clone() memState {
	c := s
	c.orders = make(map[int64]domain.Order, len(s.orders))
	for k, v := range s.orders {
		c.orders[k] = v
	}
	c.clients = make(map[int64]domain.Client, len(s.clients))
	for k, v := range s.clients {
		c.clients[k] = v
	}
	c.workers = make(map[int64]domain.Worker, len(s.workers))
	for k, v := range s.workers {
		c.workers[k] = v
	}
	c.fixed = make(map[int64]domain.FixedCost, len(s.fixed))
	for k, v := range s.fixed {
		c.fixed[k] = v
	}
	c.months = make(map[[2]int]domain.MonthConfig, len(s.months))
	for k, v := range s.months {
		c.months[k] = v
	}
	c.cash = append([]domain.CashTransaction(nil), s.cash...)
	c.salary = append([]domain.SalaryLog(nil), s.salary...)
	c.logs = append([]domain.SystemLog(nil), s.logs...)
	return c
}

// memStore is an in-memory stand-in for the PostgreSQL repositories. A
// transaction holds the store mutex from begin to commit, which gives the
// same serialization the row and advisory locks give in the database.
type memStore struct {
	mu    sync.Mutex
	state memState

	// conflictsOnSaveOrder makes the next N SaveOrder calls fail like a lost
	// unique-constraint race.
	conflictsOnSaveOrder int
	// saveOrderErr, when set, is returned by every SaveOrder call.
	saveOrderErr error
	// saveOrderCalls counts SaveOrder attempts.
	saveOrderCalls int
	// failSystemLog makes SaveSystemLog fail.
	failSystemLog bool
	// failMethod makes SaveCashTransaction fail for entries of that method.
	failMethod domain.PaymentMethod
}

func newMemStore() *memStore {
	return &memStore{state: memState{
		orders:  map[int64]domain.Order{},
		clients: map[int64]domain.Client{},
		workers: map[int64]domain.Worker{},
		fixed:   map[int64]domain.FixedCost{},
		months:  map[[2]int]domain.MonthConfig{},
	}}
}

func (m *memStore) provider() portsrepo.RepositoryProvider {
	return (&memRepo{store: m}).provider()
}

// memRepo implements every repository facade over a memStore.
type memRepo struct {
	store *memStore
	inTx  bool
}

func (r *memRepo) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OrderRepo:       r,
		ClientRepo:      r,
		WorkerRepo:      r,
		CashRepo:        r,
		CommissionRepo:  r,
		SystemLogRepo:   r,
		FixedCostRepo:   r,
		MonthConfigRepo: r,
		TxRunner:        r,
	}
}

var (
	_ portsrepo.OrderRepositoryFacade       = (*memRepo)(nil)
	_ portsrepo.ClientRepositoryFacade      = (*memRepo)(nil)
	_ portsrepo.WorkerRepositoryFacade      = (*memRepo)(nil)
	_ portsrepo.CashRepositoryFacade        = (*memRepo)(nil)
	_ portsrepo.CommissionRepositoryFacade  = (*memRepo)(nil)
	_ portsrepo.SystemLogRepositoryFacade   = (*memRepo)(nil)
	_ portsrepo.FixedCostRepositoryFacade   = (*memRepo)(nil)
	_ portsrepo.MonthConfigRepositoryFacade = (*memRepo)(nil)
	_ portsrepo.TransactionRunner           = (*memRepo)(nil)
)

func (r *memRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *memRepo) st() *memState { return &r.store.state }

func (r *memRepo) id() int64 {
	r.st().nextID++
	return r.st().nextID
}

// RunInTx serializes the whole unit of work and restores the snapshot on error.
func (r *memRepo) RunInTx(ctx context.Context, fn portsrepo.TxFunc) error {
	if r.inTx {
		return fn(ctx, r.provider())
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snapshot := r.store.state.clone()
	txRepo := &memRepo{store: r.store, inTx: true}
	if err := fn(ctx, txRepo.provider()); err != nil {
		r.store.state = snapshot
		return err
	}
	return nil
}

// --- orders ---

func (r *memRepo) FindOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	defer r.lock()()
	o, ok := r.st().orders[orderID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	r.enrich(&o)
	return &o, nil
}

func (r *memRepo) enrich(o *domain.Order) {
	if o.ClientID == nil {
		return
	}
	if c, ok := r.st().clients[*o.ClientID]; ok {
		o.EnrichFromClient(&c)
	}
}

func (r *memRepo) sortedOrders(keep func(domain.Order) bool) []domain.Order {
	var out []domain.Order
	for _, o := range r.st().orders {
		r.enrich(&o)
		if keep(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID > out[j].OrderID })
	return out
}

func (r *memRepo) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	defer r.lock()()
	return r.sortedOrders(func(o domain.Order) bool {
		return filter.View.Matches(o.Status) && o.MatchesSearch(filter.Search)
	}), nil
}

func (r *memRepo) ListOrdersByClientID(ctx context.Context, clientID int64) ([]domain.Order, error) {
	defer r.lock()()
	return r.sortedOrders(func(o domain.Order) bool {
		return o.ClientID != nil && *o.ClientID == clientID
	}), nil
}

func (r *memRepo) ListOrderNumbers(ctx context.Context) ([]string, error) {
	defer r.lock()()
	var out []string
	for _, o := range r.st().orders {
		out = append(out, o.OrderNumber)
	}
	return out, nil
}

func (r *memRepo) SaveOrder(ctx context.Context, order *domain.Order) error {
	defer r.lock()()
	r.store.saveOrderCalls++
	if r.store.saveOrderErr != nil {
		return r.store.saveOrderErr
	}
	if r.store.conflictsOnSaveOrder > 0 {
		r.store.conflictsOnSaveOrder--
		return apperrors.ErrOrderNumberTaken
	}
	for _, o := range r.st().orders {
		if o.OrderNumber == order.OrderNumber {
			return apperrors.ErrOrderNumberTaken
		}
	}
	order.OrderID = r.id()
	order.CreatedAt = time.Now().UTC()
	r.st().orders[order.OrderID] = *order
	return nil
}

func (r *memRepo) UpdateOrder(ctx context.Context, order domain.Order) error {
	defer r.lock()()
	cur, ok := r.st().orders[order.OrderID]
	if !ok {
		return apperrors.ErrNotFound
	}
	cur.Status = order.Status
	cur.PaymentFullCash = order.PaymentFullCash
	cur.PaymentFullTerminal = order.PaymentFullTerminal
	cur.ReadyAt = order.ReadyAt
	cur.CompletedAt = order.CompletedAt
	cur.PaymentDate = order.PaymentDate
	r.st().orders[order.OrderID] = cur
	return nil
}

func (r *memRepo) UpdateOrderWithEditLock(ctx context.Context, order domain.Order) error {
	defer r.lock()()
	cur, ok := r.st().orders[order.OrderID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if cur.EditCount != 0 {
		return apperrors.ErrEditLimitExceeded
	}
	order.EditCount = 1
	order.Status = cur.Status
	order.PrepaymentCash = cur.PrepaymentCash
	order.PrepaymentTerminal = cur.PrepaymentTerminal
	order.PaymentFullCash = cur.PaymentFullCash
	order.PaymentFullTerminal = cur.PaymentFullTerminal
	r.st().orders[order.OrderID] = order
	return nil
}

func (r *memRepo) DeleteOrder(ctx context.Context, orderID int64) error {
	defer r.lock()()
	if _, ok := r.st().orders[orderID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.st().orders, orderID)
	return nil
}

func (r *memRepo) FindOrderByIDForUpdate(ctx context.Context, orderID int64) (*domain.Order, error) {
	return r.FindOrderByID(ctx, orderID)
}

func (r *memRepo) LockOrderNumbers(ctx context.Context) error { return nil }

// --- clients ---

func (r *memRepo) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	defer r.lock()()
	c, ok := r.st().clients[clientID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (r *memRepo) ListClients(ctx context.Context, search string) ([]domain.Client, error) {
	defer r.lock()()
	var out []domain.Client
	q := strings.ToLower(search)
	for _, c := range r.st().clients {
		if q == "" || strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(c.Phone, q) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memRepo) FindOrCreateClientByPhone(ctx context.Context, name, phone string) (*domain.Client, error) {
	defer r.lock()()
	for id, c := range r.st().clients {
		if c.Phone == phone {
			c.Name = name
			r.st().clients[id] = c
			return &c, nil
		}
	}
	c := domain.Client{ClientID: r.id(), Name: name, Phone: phone, CreatedAt: time.Now().UTC()}
	r.st().clients[c.ClientID] = c
	return &c, nil
}

// --- workers ---

func (r *memRepo) FindWorkerByID(ctx context.Context, workerID int64) (*domain.Worker, error) {
	defer r.lock()()
	w, ok := r.st().workers[workerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &w, nil
}

func (r *memRepo) ListWorkers(ctx context.Context, includeInactive bool) ([]domain.Worker, error) {
	defer r.lock()()
	var out []domain.Worker
	for _, w := range r.st().workers {
		if w.Active || includeInactive {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memRepo) SaveWorker(ctx context.Context, worker *domain.Worker) error {
	defer r.lock()()
	worker.WorkerID = r.id()
	worker.CreatedAt = time.Now().UTC()
	r.st().workers[worker.WorkerID] = *worker
	return nil
}

func (r *memRepo) UpdateWorker(ctx context.Context, worker domain.Worker) error {
	defer r.lock()()
	if _, ok := r.st().workers[worker.WorkerID]; !ok {
		return apperrors.ErrNotFound
	}
	r.st().workers[worker.WorkerID] = worker
	return nil
}

func (r *memRepo) DeactivateWorker(ctx context.Context, workerID int64) error {
	defer r.lock()()
	w, ok := r.st().workers[workerID]
	if !ok {
		return apperrors.ErrNotFound
	}
	w.Active = false
	r.st().workers[workerID] = w
	return nil
}

// --- cash ---

func (r *memRepo) GetBalances(ctx context.Context) (domain.Balances, error) {
	defer r.lock()()
	return domain.ComputeBalances(r.st().cash), nil
}

func (r *memRepo) ListRecentTransactions(ctx context.Context, limit int) ([]domain.CashTransaction, error) {
	defer r.lock()()
	out := append([]domain.CashTransaction(nil), r.st().cash...)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].TransactionID > out[j].TransactionID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memRepo) SumByCategory(ctx context.Context, from, to time.Time) ([]domain.CategoryTotal, error) {
	defer r.lock()()
	type key struct {
		t domain.TransactionType
		c string
	}
	sums := map[key]decimal.Decimal{}
	for _, t := range r.st().cash {
		if t.Date.Before(from) || !t.Date.Before(to) {
			continue
		}
		k := key{t.Type, t.Category}
		sums[k] = sums[k].Add(t.Amount)
	}
	var out []domain.CategoryTotal
	for k, v := range sums {
		out = append(out, domain.CategoryTotal{Type: k.t, Category: k.c, Total: v})
	}
	return out, nil
}

func (r *memRepo) SaveCashTransaction(ctx context.Context, txn *domain.CashTransaction) error {
	defer r.lock()()
	if r.store.failMethod != "" && txn.Method == r.store.failMethod {
		return apperrors.NewAppError(500, "injected ledger failure", nil)
	}
	if err := txn.Validate(); err != nil {
		return err
	}
	txn.TransactionID = r.id()
	r.st().cash = append(r.st().cash, *txn)
	return nil
}

func (r *memRepo) LockLedger(ctx context.Context) error { return nil }

// --- commissions ---

func (r *memRepo) CountCommissionsByOrderID(ctx context.Context, orderID int64) (int, error) {
	defer r.lock()()
	n := 0
	for _, l := range r.st().salary {
		if l.OrderID == orderID {
			n++
		}
	}
	return n, nil
}

func (r *memRepo) ListSalaryLogs(ctx context.Context, filter domain.SalaryLogFilter) ([]domain.SalaryLog, error) {
	defer r.lock()()
	var out []domain.SalaryLog
	for _, l := range r.st().salary {
		if filter.WorkerID != nil && l.WorkerID != *filter.WorkerID {
			continue
		}
		if filter.UnpaidOnly && l.IsPaid {
			continue
		}
		if o, ok := r.st().orders[l.OrderID]; ok {
			l.OrderNumber = o.OrderNumber
		}
		if w, ok := r.st().workers[l.WorkerID]; ok {
			l.WorkerName = w.Name
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LogID > out[j].LogID })
	return out, nil
}

func (r *memRepo) SumCommissionsInRange(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	defer r.lock()()
	total := decimal.Zero
	for _, l := range r.st().salary {
		if !l.Date.Before(from) && l.Date.Before(to) {
			total = total.Add(l.Amount)
		}
	}
	return total, nil
}

func (r *memRepo) SaveSalaryLogs(ctx context.Context, logs []domain.SalaryLog) ([]domain.SalaryLog, error) {
	defer r.lock()()
	var saved []domain.SalaryLog
	for _, l := range logs {
		dup := false
		for _, e := range r.st().salary {
			if e.OrderID == l.OrderID && e.WorkerID == l.WorkerID {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		l.LogID = r.id()
		r.st().salary = append(r.st().salary, l)
		saved = append(saved, l)
	}
	return saved, nil
}

func (r *memRepo) MarkCommissionsPaid(ctx context.Context, workerID int64, logIDs []int64, paidAt time.Time) ([]domain.SalaryLog, error) {
	defer r.lock()()
	wanted := map[int64]bool{}
	for _, id := range logIDs {
		wanted[id] = true
	}
	var paid []domain.SalaryLog
	for i, l := range r.st().salary {
		if l.WorkerID != workerID || l.IsPaid {
			continue
		}
		if len(wanted) > 0 && !wanted[l.LogID] {
			continue
		}
		at := paidAt
		l.IsPaid = true
		l.PaidAt = &at
		r.st().salary[i] = l
		paid = append(paid, l)
	}
	return paid, nil
}

// --- system log ---

func (r *memRepo) SaveSystemLog(ctx context.Context, entry *domain.SystemLog) error {
	defer r.lock()()
	if r.store.failSystemLog {
		return apperrors.NewAppError(500, "injected audit failure", nil)
	}
	entry.LogID = r.id()
	r.st().logs = append(r.st().logs, *entry)
	return nil
}

func (r *memRepo) ListSystemLogs(ctx context.Context, filter domain.SystemLogFilter, limit int, nextToken *string) ([]domain.SystemLog, *string, error) {
	defer r.lock()()
	var out []domain.SystemLog
	for i := len(r.st().logs) - 1; i >= 0; i-- {
		l := r.st().logs[i]
		if filter.Type != "" && l.Type != filter.Type {
			continue
		}
		if filter.TargetID != "" && l.TargetID != filter.TargetID {
			continue
		}
		if nextToken != nil {
			_, lastID, err := pagination.DecodeCursor(*nextToken)
			if err != nil {
				return nil, nil, err
			}
			if l.LogID >= lastID {
				continue
			}
		}
		out = append(out, l)
	}
	if len(out) > limit {
		out = out[:limit]
		last := out[len(out)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.LogID)
		return out, &token, nil
	}
	return out, nil, nil
}

// --- fixed costs and month config ---

func (r *memRepo) FindFixedCostByID(ctx context.Context, id int64) (*domain.FixedCost, error) {
	defer r.lock()()
	c, ok := r.st().fixed[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (r *memRepo) ListFixedCosts(ctx context.Context) ([]domain.FixedCost, error) {
	defer r.lock()()
	var out []domain.FixedCost
	for _, c := range r.st().fixed {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FixedCostID < out[j].FixedCostID })
	return out, nil
}

func (r *memRepo) SaveFixedCost(ctx context.Context, cost *domain.FixedCost) error {
	defer r.lock()()
	cost.FixedCostID = r.id()
	cost.CreatedAt = time.Now().UTC()
	r.st().fixed[cost.FixedCostID] = *cost
	return nil
}

func (r *memRepo) DeleteFixedCost(ctx context.Context, id int64) error {
	defer r.lock()()
	delete(r.st().fixed, id)
	return nil
}

func (r *memRepo) FindMonthConfig(ctx context.Context, year, month int) (*domain.MonthConfig, error) {
	defer r.lock()()
	c, ok := r.st().months[[2]int{year, month}]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (r *memRepo) UpsertMonthConfig(ctx context.Context, cfg domain.MonthConfig) error {
	defer r.lock()()
	r.st().months[[2]int{cfg.Year, cfg.Month}] = cfg
	return nil
}

// --- helpers for tests ---

func (m *memStore) addWorker(name string, pct int64, active bool) domain.Worker {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.nextID++
	w := domain.Worker{WorkerID: m.state.nextID, Name: name, Percentage: decimal.NewFromInt(pct), Active: active, CreatedAt: time.Now().UTC()}
	m.state.workers[w.WorkerID] = w
	return w
}

func (m *memStore) addOrderNumber(number string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.nextID++
	m.state.orders[m.state.nextID] = domain.Order{OrderID: m.state.nextID, OrderNumber: number, Status: domain.StatusAccepted}
}

// unlinkClient drops the client relation of an order, as legacy rows have.
func (m *memStore) unlinkClient(orderID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := m.state.orders[orderID]
	o.ClientID = nil
	m.state.orders[orderID] = o
}

func (m *memStore) snapshot() memState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

func (m *memStore) logsOf(logType domain.LogType, action domain.LogAction) []domain.SystemLog {
	var out []domain.SystemLog
	for _, l := range m.snapshot().logs {
		if l.Type == logType && l.Action == action {
			out = append(out, l)
		}
	}
	return out
}

func idStr(id int64) string { return strconv.FormatInt(id, 10) }

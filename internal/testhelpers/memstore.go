package testhelpers

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/repositories"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

// MemStore is an in-memory repositories.Store. WithTx snapshots the whole
// state and restores it when the callback fails, so rollback behaviour can
// be asserted without PostgreSQL.
type MemStore struct {
	mu     sync.Mutex
	txMu   sync.Mutex
	state  *memState
	calls  []string
	faults map[string]error
	repos  *repositories.Repos

	// Now stamps created_at / paid_at columns.
	Now func() time.Time
}

var _ repositories.Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	s := &MemStore{
		state:  newMemState(),
		faults: make(map[string]error),
		Now:    time.Now,
	}
	s.repos = &repositories.Repos{
		Admins:            &memAdmins{s},
		TenantAccounts:    &memTenantAccounts{s},
		Properties:        &memProperties{s},
		Units:             &memUnits{s},
		Tenants:           &memTenants{s},
		Leases:            &memLeases{s},
		Payments:          &memPayments{s},
		Maintenance:       &memMaintenance{s},
		BookingRequests:   &memBookingRequests{s},
		EmergencyContacts: &memEmergencyContacts{s},
	}
	return s
}

func (s *MemStore) Repos() *repositories.Repos { return s.repos }

func (s *MemStore) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hit("Store.Ping")
}

func (s *MemStore) WithTx(ctx context.Context, fn func(tx *repositories.Repos) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	if err := s.hit("Store.Begin"); err != nil {
		s.mu.Unlock()
		return err
	}
	snapshot := s.state.clone()
	s.mu.Unlock()

	if err := fn(s.repos); err != nil {
		s.mu.Lock()
		s.state = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// FailOn makes the next call to op (e.g. "Leases.Create") return err.
func (s *MemStore) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[op] = err
}

// Calls returns every repository operation issued so far, in order.
func (s *MemStore) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *MemStore) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

// hit records op and consumes an armed fault. Callers hold s.mu.
func (s *MemStore) hit(op string) error {
	s.calls = append(s.calls, op)
	if err, ok := s.faults[op]; ok {
		delete(s.faults, op)
		return err
	}
	return nil
}

/* ───────────── state ───────────── */

type table[T any] struct {
	rows map[int64]T
	next int64
}

func newTable[T any]() table[T] {
	return table[T]{rows: make(map[int64]T)}
}

func (t *table[T]) insert(v T) int64 {
	t.next++
	t.rows[t.next] = v
	return t.next
}

func (t *table[T]) get(id int64) *T {
	v, ok := t.rows[id]
	if !ok {
		return nil
	}
	return &v
}

func (t *table[T]) replace(id int64, v T) error {
	if _, ok := t.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	t.rows[id] = v
	return nil
}

func (t *table[T]) remove(id int64) error {
	if _, ok := t.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(t.rows, id)
	return nil
}

// sorted returns copies of the rows matching keep, ordered by less (id asc when nil).
func (t *table[T]) sorted(keep func(T) bool, less func(a, b T) bool, id func(T) int64) []*T {
	var out []*T
	for _, v := range t.rows {
		if keep != nil && !keep(v) {
			continue
		}
		c := v
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if less != nil {
			return less(*out[i], *out[j])
		}
		return id(*out[i]) < id(*out[j])
	})
	return out
}

func (t table[T]) clone() table[T] {
	c := table[T]{rows: make(map[int64]T, len(t.rows)), next: t.next}
	for k, v := range t.rows {
		c.rows[k] = v
	}
	return c
}

type memState struct {
	admins            table[models.Admin]
	tenantAccounts    table[models.TenantAccount]
	properties        table[models.Property]
	units             table[models.Unit]
	tenants           table[models.Tenant]
	leases            table[models.Lease]
	payments          table[models.Payment]
	maintenance       table[models.MaintenanceRequest]
	bookingRequests   table[models.BookingRequest]
	emergencyContacts table[models.EmergencyContact]
}

func newMemState() *memState {
	return &memState{
		admins:            newTable[models.Admin](),
		tenantAccounts:    newTable[models.TenantAccount](),
		properties:        newTable[models.Property](),
		units:             newTable[models.Unit](),
		tenants:           newTable[models.Tenant](),
		leases:            newTable[models.Lease](),
		payments:          newTable[models.Payment](),
		maintenance:       newTable[models.MaintenanceRequest](),
		bookingRequests:   newTable[models.BookingRequest](),
		emergencyContacts: newTable[models.EmergencyContact](),
	}
}

func (m *memState) clone() *memState {
	return &memState{
		admins:            m.admins.clone(),
		tenantAccounts:    m.tenantAccounts.clone(),
		properties:        m.properties.clone(),
		units:             m.units.clone(),
		tenants:           m.tenants.clone(),
		leases:            m.leases.clone(),
		payments:          m.payments.clone(),
		maintenance:       m.maintenance.clone(),
		bookingRequests:   m.bookingRequests.clone(),
		emergencyContacts: m.emergencyContacts.clone(),
	}
}

/* ───────────── accounts ───────────── */

type memAdmins struct{ s *MemStore }

func (r *memAdmins) Create(ctx context.Context, a *models.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Admins.Create"); err != nil {
		return err
	}
	for _, existing := range r.s.state.admins.rows {
		if existing.Username == a.Username {
			return utils.ErrUsernameTaken
		}
	}
	a.CreatedAt = r.s.Now()
	a.ID = r.s.state.admins.insert(*a)
	r.s.state.admins.rows[a.ID] = *a
	return nil
}

func (r *memAdmins) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Admins.GetByID"); err != nil {
		return nil, err
	}
	return r.s.state.admins.get(id), nil
}

func (r *memAdmins) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Admins.GetByUsername"); err != nil {
		return nil, err
	}
	for _, a := range r.s.state.admins.rows {
		if a.Username == username {
			c := a
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memAdmins) UpdatePassword(ctx context.Context, id int64, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Admins.UpdatePassword"); err != nil {
		return err
	}
	a := r.s.state.admins.get(id)
	if a == nil {
		return pgx.ErrNoRows
	}
	a.PasswordHash = hash
	return r.s.state.admins.replace(id, *a)
}

type memTenantAccounts struct{ s *MemStore }

func (r *memTenantAccounts) Create(ctx context.Context, t *models.TenantAccount) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("TenantAccounts.Create"); err != nil {
		return err
	}
	for _, existing := range r.s.state.tenantAccounts.rows {
		if existing.Username == t.Username {
			return utils.ErrUsernameTaken
		}
		if existing.Email == t.Email {
			return utils.ErrEmailTaken
		}
	}
	t.CreatedAt = r.s.Now()
	t.ID = r.s.state.tenantAccounts.insert(*t)
	r.s.state.tenantAccounts.rows[t.ID] = *t
	return nil
}

func (r *memTenantAccounts) GetByID(ctx context.Context, id int64) (*models.TenantAccount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("TenantAccounts.GetByID"); err != nil {
		return nil, err
	}
	return r.s.state.tenantAccounts.get(id), nil
}

func (r *memTenantAccounts) GetByUsername(ctx context.Context, username string) (*models.TenantAccount, error) {
	return r.find("TenantAccounts.GetByUsername", func(t models.TenantAccount) bool { return t.Username == username })
}

func (r *memTenantAccounts) GetByEmail(ctx context.Context, email string) (*models.TenantAccount, error) {
	return r.find("TenantAccounts.GetByEmail", func(t models.TenantAccount) bool { return t.Email == email })
}

func (r *memTenantAccounts) UpdatePassword(ctx context.Context, id int64, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("TenantAccounts.UpdatePassword"); err != nil {
		return err
	}
	t := r.s.state.tenantAccounts.get(id)
	if t == nil {
		return pgx.ErrNoRows
	}
	t.PasswordHash = hash
	return r.s.state.tenantAccounts.replace(id, *t)
}

func (r *memTenantAccounts) find(op string, match func(models.TenantAccount) bool) (*models.TenantAccount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(op); err != nil {
		return nil, err
	}
	for _, t := range r.s.state.tenantAccounts.rows {
		if match(t) {
			c := t
			return &c, nil
		}
	}
	return nil, nil
}

/* ───────────── properties & units ───────────── */

type memProperties struct{ s *MemStore }

func (r *memProperties) Create(ctx context.Context, p *models.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Properties.Create"); err != nil {
		return err
	}
	p.ID = r.s.state.properties.insert(*p)
	r.s.state.properties.rows[p.ID] = *p
	return nil
}

func (r *memProperties) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Properties.GetByID"); err != nil {
		return nil, err
	}
	return r.s.state.properties.get(id), nil
}

func (r *memProperties) List(ctx context.Context) ([]*models.Property, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Properties.List"); err != nil {
		return nil, err
	}
	return r.s.state.properties.sorted(nil, nil, func(p models.Property) int64 { return p.ID }), nil
}

func (r *memProperties) Update(ctx context.Context, p *models.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Properties.Update"); err != nil {
		return err
	}
	return r.s.state.properties.replace(p.ID, *p)
}

func (r *memProperties) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Properties.Delete"); err != nil {
		return err
	}
	return r.s.state.properties.remove(id)
}

type memUnits struct{ s *MemStore }

func (r *memUnits) Create(ctx context.Context, u *models.Unit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Units.Create"); err != nil {
		return err
	}
	if u.Status == "" {
		u.Status = models.UnitVacant
	}
	u.ID = r.s.state.units.insert(*u)
	r.s.state.units.rows[u.ID] = *u
	return nil
}

func (r *memUnits) GetByID(ctx context.Context, id int64) (*models.Unit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Units.GetByID"); err != nil {
		return nil, err
	}
	return r.s.state.units.get(id), nil
}

func (r *memUnits) List(ctx context.Context) ([]*models.Unit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Units.List"); err != nil {
		return nil, err
	}
	return r.s.state.units.sorted(nil, nil, unitID), nil
}

func (r *memUnits) ListByPropertyID(ctx context.Context, propertyID int64) ([]*models.Unit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Units.ListByPropertyID"); err != nil {
		return nil, err
	}
	return r.s.state.units.sorted(func(u models.Unit) bool { return u.PropertyID == propertyID }, nil, unitID), nil
}

func (r *memUnits) Update(ctx context.Context, u *models.Unit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Units.Update"); err != nil {
		return err
	}
	return r.s.state.units.replace(u.ID, *u)
}

func (r *memUnits) UpdateStatus(ctx context.Context, id int64, status models.UnitStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Units.UpdateStatus"); err != nil {
		return err
	}
	u := r.s.state.units.get(id)
	if u == nil {
		return pgx.ErrNoRows
	}
	u.Status = status
	return r.s.state.units.replace(id, *u)
}

func (r *memUnits) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Units.Delete"); err != nil {
		return err
	}
	if err := r.s.state.units.remove(id); err != nil {
		return err
	}
	for bid, b := range r.s.state.bookingRequests.rows {
		if b.UnitID == id {
			delete(r.s.state.bookingRequests.rows, bid)
		}
	}
	return nil
}

func unitID(u models.Unit) int64 { return u.ID }

/* ───────────── tenants, leases, payments ───────────── */

type memTenants struct{ s *MemStore }

func (r *memTenants) Create(ctx context.Context, t *models.Tenant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Tenants.Create"); err != nil {
		return err
	}
	t.ID = r.s.state.tenants.insert(*t)
	r.s.state.tenants.rows[t.ID] = *t
	return nil
}

func (r *memTenants) GetByID(ctx context.Context, id int64) (*models.Tenant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Tenants.GetByID"); err != nil {
		return nil, err
	}
	return r.s.state.tenants.get(id), nil
}

func (r *memTenants) GetByEmail(ctx context.Context, email string) (*models.Tenant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Tenants.GetByEmail"); err != nil {
		return nil, err
	}
	matches := r.s.state.tenants.sorted(
		func(t models.Tenant) bool { return t.Email != nil && *t.Email == email },
		nil, func(t models.Tenant) int64 { return t.ID },
	)
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (r *memTenants) List(ctx context.Context) ([]*models.Tenant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Tenants.List"); err != nil {
		return nil, err
	}
	return r.s.state.tenants.sorted(nil, nil, func(t models.Tenant) int64 { return t.ID }), nil
}

func (r *memTenants) Update(ctx context.Context, t *models.Tenant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Tenants.Update"); err != nil {
		return err
	}
	return r.s.state.tenants.replace(t.ID, *t)
}

func (r *memTenants) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Tenants.Delete"); err != nil {
		return err
	}
	return r.s.state.tenants.remove(id)
}

type memLeases struct{ s *MemStore }

func (r *memLeases) Create(ctx context.Context, l *models.Lease) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Leases.Create"); err != nil {
		return err
	}
	l.ID = r.s.state.leases.insert(*l)
	r.s.state.leases.rows[l.ID] = *l
	return nil
}

func (r *memLeases) GetByID(ctx context.Context, id int64) (*models.Lease, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Leases.GetByID"); err != nil {
		return nil, err
	}
	return r.s.state.leases.get(id), nil
}

func (r *memLeases) List(ctx context.Context) ([]*models.Lease, error) {
	return r.filter("Leases.List", nil)
}

func (r *memLeases) ListByUnitID(ctx context.Context, unitID int64) ([]*models.Lease, error) {
	return r.filter("Leases.ListByUnitID", func(l models.Lease) bool { return l.UnitID == unitID })
}

func (r *memLeases) ListByTenantID(ctx context.Context, tenantID int64) ([]*models.Lease, error) {
	return r.filter("Leases.ListByTenantID", func(l models.Lease) bool { return l.TenantID == tenantID })
}

func (r *memLeases) LatestByUnitID(ctx context.Context, unitID int64) (*models.Lease, error) {
	list, err := r.filter("Leases.LatestByUnitID", func(l models.Lease) bool { return l.UnitID == unitID })
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[len(list)-1], nil
}

func (r *memLeases) Update(ctx context.Context, l *models.Lease) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Leases.Update"); err != nil {
		return err
	}
	return r.s.state.leases.replace(l.ID, *l)
}

func (r *memLeases) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Leases.Delete"); err != nil {
		return err
	}
	if err := r.s.state.leases.remove(id); err != nil {
		return err
	}
	for pid, p := range r.s.state.payments.rows {
		if p.LeaseID == id {
			delete(r.s.state.payments.rows, pid)
		}
	}
	return nil
}

func (r *memLeases) filter(op string, keep func(models.Lease) bool) ([]*models.Lease, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(op); err != nil {
		return nil, err
	}
	return r.s.state.leases.sorted(keep, nil, func(l models.Lease) int64 { return l.ID }), nil
}

type memPayments struct{ s *MemStore }

func (r *memPayments) Create(ctx context.Context, p *models.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Payments.Create"); err != nil {
		return err
	}
	if p.PaidAt.IsZero() {
		p.PaidAt = r.s.Now()
	}
	p.ID = r.s.state.payments.insert(*p)
	r.s.state.payments.rows[p.ID] = *p
	return nil
}

func (r *memPayments) List(ctx context.Context) ([]*models.Payment, error) {
	return r.filter("Payments.List", nil)
}

func (r *memPayments) ListByLeaseID(ctx context.Context, leaseID int64) ([]*models.Payment, error) {
	return r.filter("Payments.ListByLeaseID", func(p models.Payment) bool { return p.LeaseID == leaseID })
}

func (r *memPayments) TotalsByLease(ctx context.Context) (map[int64]float64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Payments.TotalsByLease"); err != nil {
		return nil, err
	}
	totals := make(map[int64]float64)
	for _, p := range r.s.state.payments.rows {
		totals[p.LeaseID] += p.Amount
	}
	return totals, nil
}

func (r *memPayments) filter(op string, keep func(models.Payment) bool) ([]*models.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(op); err != nil {
		return nil, err
	}
	return r.s.state.payments.sorted(keep, func(a, b models.Payment) bool {
		if !a.PaidAt.Equal(b.PaidAt) {
			return a.PaidAt.After(b.PaidAt)
		}
		return a.ID > b.ID
	}, nil), nil
}

/* ───────────── maintenance, bookings, contacts ───────────── */

type memMaintenance struct{ s *MemStore }

func (r *memMaintenance) Create(ctx context.Context, m *models.MaintenanceRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Maintenance.Create"); err != nil {
		return err
	}
	if m.Status == "" {
		m.Status = models.MaintenanceOpen
	}
	m.CreatedAt = r.s.Now()
	m.ID = r.s.state.maintenance.insert(*m)
	r.s.state.maintenance.rows[m.ID] = *m
	return nil
}

func (r *memMaintenance) GetByID(ctx context.Context, id int64) (*models.MaintenanceRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Maintenance.GetByID"); err != nil {
		return nil, err
	}
	return r.s.state.maintenance.get(id), nil
}

func (r *memMaintenance) List(ctx context.Context) ([]*models.MaintenanceRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Maintenance.List"); err != nil {
		return nil, err
	}
	return r.s.state.maintenance.sorted(nil, func(a, b models.MaintenanceRequest) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	}, nil), nil
}

func (r *memMaintenance) Update(ctx context.Context, m *models.MaintenanceRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Maintenance.Update"); err != nil {
		return err
	}
	return r.s.state.maintenance.replace(m.ID, *m)
}

func (r *memMaintenance) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("Maintenance.Delete"); err != nil {
		return err
	}
	return r.s.state.maintenance.remove(id)
}

type memBookingRequests struct{ s *MemStore }

func (r *memBookingRequests) Create(ctx context.Context, b *models.BookingRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("BookingRequests.Create"); err != nil {
		return err
	}
	if b.Status == "" {
		b.Status = models.BookingPending
	}
	b.CreatedAt = r.s.Now()
	b.ID = r.s.state.bookingRequests.insert(*b)
	r.s.state.bookingRequests.rows[b.ID] = *b
	return nil
}

func (r *memBookingRequests) GetByID(ctx context.Context, id int64) (*models.BookingRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("BookingRequests.GetByID"); err != nil {
		return nil, err
	}
	return r.s.state.bookingRequests.get(id), nil
}

func (r *memBookingRequests) ListExcludingStatus(ctx context.Context, status models.BookingStatus) ([]*models.BookingRequest, error) {
	return r.filter("BookingRequests.ListExcludingStatus", func(b models.BookingRequest) bool { return b.Status != status })
}

func (r *memBookingRequests) ListByTenantAccountID(ctx context.Context, accountID int64) ([]*models.BookingRequest, error) {
	return r.filter("BookingRequests.ListByTenantAccountID", func(b models.BookingRequest) bool {
		return b.TenantAccountID == accountID
	})
}

func (r *memBookingRequests) UpdateStatus(ctx context.Context, id int64, status models.BookingStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("BookingRequests.UpdateStatus"); err != nil {
		return err
	}
	b := r.s.state.bookingRequests.get(id)
	if b == nil {
		return pgx.ErrNoRows
	}
	b.Status = status
	return r.s.state.bookingRequests.replace(id, *b)
}

func (r *memBookingRequests) DeleteByStatus(ctx context.Context, status models.BookingStatus) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("BookingRequests.DeleteByStatus"); err != nil {
		return 0, err
	}
	var n int64
	for id, b := range r.s.state.bookingRequests.rows {
		if b.Status == status {
			delete(r.s.state.bookingRequests.rows, id)
			n++
		}
	}
	return n, nil
}

func (r *memBookingRequests) filter(op string, keep func(models.BookingRequest) bool) ([]*models.BookingRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(op); err != nil {
		return nil, err
	}
	return r.s.state.bookingRequests.sorted(keep, func(a, b models.BookingRequest) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	}, nil), nil
}

type memEmergencyContacts struct{ s *MemStore }

func (r *memEmergencyContacts) Create(ctx context.Context, c *models.EmergencyContact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("EmergencyContacts.Create"); err != nil {
		return err
	}
	c.ID = r.s.state.emergencyContacts.insert(*c)
	r.s.state.emergencyContacts.rows[c.ID] = *c
	return nil
}

func (r *memEmergencyContacts) GetByID(ctx context.Context, id int64) (*models.EmergencyContact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("EmergencyContacts.GetByID"); err != nil {
		return nil, err
	}
	return r.s.state.emergencyContacts.get(id), nil
}

func (r *memEmergencyContacts) List(ctx context.Context) ([]*models.EmergencyContact, error) {
	return r.filter("EmergencyContacts.List", nil)
}

func (r *memEmergencyContacts) Search(ctx context.Context, q string) ([]*models.EmergencyContact, error) {
	return r.filter("EmergencyContacts.Search", func(c models.EmergencyContact) bool {
		return strings.Contains(c.UnitIdentifier, q) ||
			strings.Contains(c.Name, q) ||
			strings.Contains(c.Phone, q)
	})
}

func (r *memEmergencyContacts) Update(ctx context.Context, c *models.EmergencyContact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("EmergencyContacts.Update"); err != nil {
		return err
	}
	return r.s.state.emergencyContacts.replace(c.ID, *c)
}

func (r *memEmergencyContacts) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit("EmergencyContacts.Delete"); err != nil {
		return err
	}
	return r.s.state.emergencyContacts.remove(id)
}

func (r *memEmergencyContacts) filter(op string, keep func(models.EmergencyContact) bool) ([]*models.EmergencyContact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.hit(op); err != nil {
		return nil, err
	}
	return r.s.state.emergencyContacts.sorted(keep, nil, func(c models.EmergencyContact) int64 { return c.ID }), nil
}

package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// MemoryStore keeps every collection in process memory, in insertion order.
// It backs DB_DRIVER=memory and the use-case tests.
type MemoryStore struct {
	mu           sync.RWMutex
	appointments []models.Appointment
	barbers      []models.Barber
	services     []models.Service
	auditLogs    []models.AuditLog
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (m *MemoryStore) Insert(ctx context.Context, ap *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = time.Now().UTC()
	}
	m.appointments = append(m.appointments, cloneAppointment(*ap))
	return nil
}

func (m *MemoryStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.appointments {
		if m.appointments[i].ID == id {
			ap := cloneAppointment(m.appointments[i])
			return &ap, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (m *MemoryStore) Find(ctx context.Context, filter domain.ByBarberAndStatus) ([]models.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range m.appointments {
		if filter.BarberID != uuid.Nil && ap.BarberID != filter.BarberID {
			continue
		}
		if filter.ExcludeStatus != "" && domain.Status(ap.Status) == filter.ExcludeStatus {
			continue
		}
		if filter.Window != nil &&
			!domain.Overlaps(domain.Interval{Start: ap.StartTime, End: ap.EndTime}, *filter.Window) {
			continue
		}
		out = append(out, cloneAppointment(ap))
	}
	return out, nil
}

func (m *MemoryStore) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	from domain.Status,
	to domain.Status,
	at time.Time,
) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.appointments {
		ap := &m.appointments[i]
		if ap.ID != id || domain.Status(ap.Status) != from {
			continue
		}
		ts := at.UTC()
		ap.Status = string(to)
		ap.UpdatedAt = &ts
		return 1, nil
	}
	return 0, nil
}

func cloneAppointment(ap models.Appointment) models.Appointment {
	if ap.Notes != nil {
		n := *ap.Notes
		ap.Notes = &n
	}
	if ap.UpdatedAt != nil {
		u := *ap.UpdatedAt
		ap.UpdatedAt = &u
	}
	return ap
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (m *MemoryStore) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]models.Barber{}, m.barbers...), nil
}

func (m *MemoryStore) CreateBarber(ctx context.Context, b *models.Barber) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	m.barbers = append(m.barbers, *b)
	return nil
}

func (m *MemoryStore) GetBarber(ctx context.Context, id uuid.UUID) (*models.Barber, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, b := range m.barbers {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, catalog.ErrRecordNotFound
}

func (m *MemoryStore) CountBarbersByName(ctx context.Context, name string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, b := range m.barbers {
		if b.Name == name {
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) ListServices(ctx context.Context) ([]models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]models.Service{}, m.services...), nil
}

func (m *MemoryStore) CreateService(ctx context.Context, s *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	m.services = append(m.services, *s)
	return nil
}

func (m *MemoryStore) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.services {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, catalog.ErrRecordNotFound
}

func (m *MemoryStore) FindServiceByName(ctx context.Context, name string) (*models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.services {
		if s.Name == name {
			return &s, nil
		}
	}
	return nil, catalog.ErrRecordNotFound
}

func (m *MemoryStore) UpdateServicePricing(ctx context.Context, id uuid.UUID, price float64, durationMin int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.services {
		if m.services[i].ID == id {
			m.services[i].Price = price
			m.services[i].DurationMin = durationMin
		}
	}
	return nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (m *MemoryStore) SaveAuditLog(ctx context.Context, l *models.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	l.ID = uint(len(m.auditLogs) + 1)
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	m.auditLogs = append(m.auditLogs, *l)
	return nil
}

// AuditLogs returns a snapshot of the stored audit trail.
func (m *MemoryStore) AuditLogs() []models.AuditLog {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]models.AuditLog{}, m.auditLogs...)
}

var (
	_ domain.Store  = (*MemoryStore)(nil)
	_ catalog.Store = (*MemoryStore)(nil)
	_ audit.Store   = (*MemoryStore)(nil)
)

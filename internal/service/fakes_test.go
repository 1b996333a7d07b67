package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hrms-service/internal/domain"
	"github.com/spec-kit/hrms-service/internal/events"
	"github.com/spec-kit/hrms-service/internal/repository"
)

type fakeEmployeeRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*domain.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{nextID: 1, byID: make(map[int64]*domain.Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, employee *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.byID {
		if e.Email == employee.Email {
			return repository.ErrDuplicateEmail
		}
	}
	employee.ID = r.nextID
	r.nextID++
	now := time.Now()
	employee.CreatedAt = now
	employee.UpdatedAt = now
	clone := *employee
	r.byID[employee.ID] = &clone
	return nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, employee *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[employee.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	employee.PasswordHash = existing.PasswordHash
	clone := *employee
	clone.UpdatedAt = time.Now()
	r.byID[employee.ID] = &clone
	return nil
}

func (r *fakeEmployeeRepo) UpdatePasswordHash(_ context.Context, email, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.byID {
		if e.Email == email {
			e.PasswordHash = hash
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *e
	return &clone, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.byID {
		if e.Email == email {
			clone := *e
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Employee
	for _, e := range r.byID {
		out = append(out, *e)
	}
	return out, nil
}

type fakeAdminRepo struct {
	byEmail map[string]*domain.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byEmail: make(map[string]*domain.Admin)}
}

func (r *fakeAdminRepo) GetByID(_ context.Context, id int64) (*domain.Admin, error) {
	for _, a := range r.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	a, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return a, nil
}

func (r *fakeAdminRepo) UpdatePasswordHash(_ context.Context, email, hash string) error {
	a, ok := r.byEmail[email]
	if !ok {
		return pgx.ErrNoRows
	}
	a.PasswordHash = hash
	return nil
}

type otpEntry struct {
	record    domain.OTPRecord
	expiresAt time.Time
}

// fakeOTPStore mirrors the Redis store's TTL behavior against an
// adjustable clock so expiry is testable without sleeping.
type fakeOTPStore struct {
	mu      sync.Mutex
	entries map[string]otpEntry
	now     func() time.Time
}

func newFakeOTPStore() *fakeOTPStore {
	return &fakeOTPStore{entries: make(map[string]otpEntry), now: time.Now}
}

func (s *fakeOTPStore) Save(_ context.Context, email string, record domain.OTPRecord, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[email] = otpEntry{record: record, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *fakeOTPStore) Get(_ context.Context, email string) (*domain.OTPRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[email]
	if !ok || s.now().After(entry.expiresAt) {
		return nil, repository.ErrOTPNotFound
	}
	record := entry.record
	return &record, nil
}

func (s *fakeOTPStore) MarkVerified(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[email]
	if !ok || s.now().After(entry.expiresAt) {
		return repository.ErrOTPNotFound
	}
	entry.record.Verified = true
	s.entries[email] = entry
	return nil
}

func (s *fakeOTPStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, email)
	return nil
}

type fakeRevocationList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func newFakeRevocationList() *fakeRevocationList {
	return &fakeRevocationList{revoked: make(map[string]time.Time)}
}

func (l *fakeRevocationList) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.revoked[tokenID] = time.Now().Add(ttl)
	return nil
}

func (l *fakeRevocationList) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	until, ok := l.revoked[tokenID]
	return ok && time.Now().Before(until), nil
}

type fakeAttendanceRepo struct {
	mu     sync.Mutex
	nextID int64
	byKey  map[string]domain.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{nextID: 1, byKey: make(map[string]domain.Attendance)}
}

func attendanceKey(employeeID int64, date time.Time) string {
	return fmt.Sprintf("%d|%s", employeeID, date.Format("2006-01-02"))
}

func (r *fakeAttendanceRepo) Mark(_ context.Context, record *domain.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := attendanceKey(record.EmployeeID, record.Date)
	if existing, ok := r.byKey[key]; ok {
		record.ID = existing.ID
	} else {
		record.ID = r.nextID
		r.nextID++
	}
	r.byKey[key] = *record
	return nil
}

func (r *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID int64) ([]domain.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Attendance
	for _, a := range r.byKey {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID int64, date time.Time) (*domain.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byKey[attendanceKey(employeeID, date)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &a, nil
}

type fakePayrollRepo struct {
	mu         sync.Mutex
	nextID     int64
	byEmployee map[int64]domain.Payroll
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{nextID: 1, byEmployee: make(map[int64]domain.Payroll)}
}

func (r *fakePayrollRepo) Save(_ context.Context, payroll *domain.Payroll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byEmployee[payroll.EmployeeID]; ok {
		payroll.ID = existing.ID
	} else {
		payroll.ID = r.nextID
		r.nextID++
	}
	payroll.UpdatedAt = time.Now()
	r.byEmployee[payroll.EmployeeID] = *payroll
	return nil
}

func (r *fakePayrollRepo) GetByEmployee(_ context.Context, employeeID int64) (*domain.Payroll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byEmployee[employeeID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}

type fakeTaskRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{nextID: 1, byID: make(map[int64]domain.Task)}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task.ID = r.nextID
	r.nextID++
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	r.byID[task.ID] = *task
	return nil
}

func (r *fakeTaskRepo) ListByEmployee(_ context.Context, employeeID int64) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Task
	for _, t := range r.byID {
		if t.EmployeeID == employeeID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id int64) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &t, nil
}

func (r *fakeTaskRepo) UpdateStatus(_ context.Context, id int64, status domain.TaskStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	t.Status = status
	t.UpdatedAt = time.Now()
	r.byID[id] = t
	return nil
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) eventsOfType(t events.EventType) []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []events.Event
	for _, e := range d.published {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

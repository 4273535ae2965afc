package store

import (
	"context"
	"errors"
	"log"
	"sync"

	"employee-directory/internal/models"
)

var ErrNotFound = errors.New("employee not found")

// Mirror is the durable copy of the employee list. Save always receives the
// complete list.
type Mirror interface {
	Ensure(ctx context.Context) error
	Load(ctx context.Context) ([]models.Employee, error)
	Save(ctx context.Context, employees []models.Employee) error
}

// Store holds the authoritative in-memory employee list and writes it through
// to its Mirror after every create. Mirror failures are logged and leave the
// store running in memory.
type Store struct {
	mu        sync.RWMutex
	mirror    Mirror
	employees []models.Employee
	lastErr   error
}

// New prepares the mirror and loads whatever it holds. It never fails: an
// unreadable mirror yields an empty, degraded store.
func New(ctx context.Context, mirror Mirror) *Store {
	s := &Store{mirror: mirror, employees: []models.Employee{}}
	if err := mirror.Ensure(ctx); err != nil {
		s.recordErr("prepare storage", err)
	}
	loaded, err := mirror.Load(ctx)
	if err != nil {
		s.recordErr("load employees", err)
		return s
	}
	for _, e := range loaded {
		s.employees = append(s.employees, clone(e))
	}
	log.Printf("store: loaded %d employees", len(s.employees))
	return s
}

// Create assigns the next id, appends e and rewrites the mirror. The second
// return value is false when the write failed; the record is kept in memory
// either way.
func (s *Store) Create(ctx context.Context, e models.Employee) (models.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e = clone(e)
	e.ID = len(s.employees) + 1
	s.employees = append(s.employees, e)

	persisted := true
	if err := s.mirror.Save(ctx, s.employees); err != nil {
		s.recordErr("persist employees", err)
		persisted = false
	} else {
		s.lastErr = nil
	}
	return clone(e), persisted
}

func (s *Store) FindByID(id int) (models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.employees {
		if e.ID == id {
			return clone(e), nil
		}
	}
	return models.Employee{}, ErrNotFound
}

// List returns matching employees in insertion order. The result is never nil.
func (s *Store) List(f Filter) []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if f.Match(e) {
			out = append(out, clone(e))
		}
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.employees)
}

// Degraded reports whether memory may have diverged from the mirror.
func (s *Store) Degraded() bool {
	return s.LastError() != nil
}

func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// recordErr expects s.mu held for writing, or no concurrent access (New).
func (s *Store) recordErr(op string, err error) {
	log.Printf("store: %s: %v", op, err)
	s.lastErr = err
}

func clone(e models.Employee) models.Employee {
	if e.DateOfBirth != nil {
		d := *e.DateOfBirth
		e.DateOfBirth = &d
	}
	if e.Salary != nil {
		v := *e.Salary
		e.Salary = &v
	}
	if e.JoinDate != nil {
		d := *e.JoinDate
		e.JoinDate = &d
	}
	return e
}

package contact

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("contact not found")
)

type Repository interface {
	List() ([]Contact, error)
	GetByID(id string) (Contact, error)
	Create(c Contact) (Contact, error)
	Update(c Contact) (Contact, error)
	Delete(id string) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Contact
}

func NewInMemoryRepository(seed []Contact) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Contact, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() ([]Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Contact, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id string) (Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.storage {
		if c.ID == id {
			return c, nil
		}
	}
	return Contact{}, ErrNotFound
}

func (r *InMemoryRepository) Create(c Contact) (Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = append(r.storage, c)
	return c, nil
}

func (r *InMemoryRepository) Update(c Contact) (Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == c.ID {
			r.storage[i] = c
			return c, nil
		}
	}
	return Contact{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

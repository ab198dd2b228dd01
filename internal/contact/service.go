package contact

import "github.com/google/uuid"

// Service orchestrates contact operations on top of a Repository.

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Contact, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Contact, error) {
	return s.repo.GetByID(id)
}

// Create stores a new contact under a freshly generated id. Any id supplied by
// the caller is overwritten; uniqueness is probabilistic (random 128-bit id),
// never re-checked against the table.
func (s *Service) Create(c Contact) (Contact, error) {
	c.ID = uuid.NewString()
	return s.repo.Create(c)
}

// Update merges the request onto the stored contact and writes the result
// back. Concurrent updates to the same id are last-write-wins.
func (s *Service) Update(id string, req UpdateRequest) (Contact, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Contact{}, err
	}
	return s.repo.Update(req.ApplyTo(existing))
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

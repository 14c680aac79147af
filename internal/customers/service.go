// Package customers manages the loyalty member list.
package customers

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/srburger/backoffice/internal/domain"
	"github.com/srburger/backoffice/internal/store"
	"github.com/srburger/backoffice/pkg/common"
)

type Service struct {
	store *store.Store
}

func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// List returns all customers in stored order.
func (s *Service) List() []domain.Customer {
	return store.Read(s.store, store.CollCustomers, []domain.Customer{})
}

func (s *Service) save(list []domain.Customer) {
	store.Write(s.store, store.CollCustomers, list)
}

// ByID looks up a customer.
func (s *Service) ByID(id int64) (domain.Customer, bool) {
	for _, c := range s.List() {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Customer{}, false
}

// Add registers a new customer. Points start at zero unless provided.
func (s *Service) Add(name, phone, address string, points int) (domain.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Customer{}, errors.New("customer name is required")
	}
	c := domain.Customer{
		ID:      common.NextID(),
		Name:    name,
		Phone:   phone,
		Address: address,
		Points:  points,
	}
	s.save(append(s.List(), c))
	return c, nil
}

// Update replaces the customer with the same id.
func (s *Service) Update(c domain.Customer) error {
	list := s.List()
	for i := range list {
		if list[i].ID == c.ID {
			list[i] = c
			s.save(list)
			return nil
		}
	}
	return errors.Errorf("customer %d not found", c.ID)
}

// Delete removes a customer. Sales keep their embedded customer snapshot.
func (s *Service) Delete(id int64) {
	list := s.List()
	kept := make([]domain.Customer, 0, len(list))
	for _, c := range list {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.save(kept)
}

// Search matches the term against name, phone and address, case-insensitive
// for text fields.
func (s *Service) Search(term string) []domain.Customer {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s.List()
	}
	var matched []domain.Customer
	for _, c := range s.List() {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(c.Phone, term) ||
			strings.Contains(strings.ToLower(c.Address), term) {
			matched = append(matched, c)
		}
	}
	return matched
}

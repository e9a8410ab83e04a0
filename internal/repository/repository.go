package repository

import (
	"fmt"
	"sync"

	"housing-market/internal/marketerrors"
	"housing-market/internal/property"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// Catalog defines the listing storage interface for the market
type Catalog interface {
	AddProperties(props ...*property.Property) error
	GetProperty(propertyID string) (*property.Property, error)
	ListProperties() ([]*property.Property, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of Catalog.
// Listings keep their insertion order and duplicates are not rejected.
type MemoryRepo struct {
	mu       sync.RWMutex
	listings []*property.Property          // advertisement order
	byID     map[string]*property.Property // key: propertyID -> value: property
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID: make(map[string]*property.Property),
	}
}

// AddProperties appends properties to the catalog
func (r *MemoryRepo) AddProperties(props ...*property.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range props {
		if p == nil {
			return fmt.Errorf("add properties: %w - nil property", marketerrors.ErrInvalidArgument)
		}
	}
	for _, p := range props {
		r.listings = append(r.listings, p)
		r.byID[p.ID()] = p
	}
	return nil
}

// GetProperty returns the property with the given ID
func (r *MemoryRepo) GetProperty(propertyID string) (*property.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[propertyID]
	if !ok {
		return nil, fmt.Errorf("get property %s: %w", propertyID, marketerrors.ErrPropertyNotFound)
	}
	return p, nil
}

// ListProperties returns all properties in advertisement order
func (r *MemoryRepo) ListProperties() ([]*property.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*property.Property(nil), r.listings...), nil
}

package service

import (
	"context"

	"github.com/wanderstay/wanderstay/internal/api/domain"
	"github.com/wanderstay/wanderstay/internal/api/store"
)

type PropertyService struct {
	Store store.Store
}

// ListProperties returns the catalogue filtered by an optional location
// substring and minimum guest capacity.
func (s *PropertyService) ListProperties(ctx context.Context, location string, minGuests int) ([]domain.Property, error) {
	return s.Store.Properties().ListProperties(ctx, location, minGuests)
}

// GetPropertyByID fetches a single listing.
func (s *PropertyService) GetPropertyByID(ctx context.Context, id string) (domain.Property, error) {
	return s.Store.Properties().GetPropertyByID(ctx, id)
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wanderstay/wanderstay/internal/api/domain"
	"github.com/wanderstay/wanderstay/internal/api/store"
	"github.com/wanderstay/wanderstay/pkg/cryptox"
	"github.com/wanderstay/wanderstay/pkg/idx"
)

// BootstrapService seeds a fresh development database with a demo account
// and a small property catalogue so the API is usable out of the box.
// Seeding only happens when the users table is empty.
type BootstrapService struct {
	Store  store.Store
	Logger *slog.Logger
}

const (
	demoUsername = "demo"
	demoPassword = "password123"
)

// Seed populates demo data if the database has no users yet. Safe to call
// on every startup.
func (s *BootstrapService) Seed(ctx context.Context) error {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("checking users table: %w", err)
	}
	if !empty {
		return nil
	}

	hash, err := cryptox.HashPassword(demoPassword)
	if err != nil {
		return fmt.Errorf("hashing demo password: %w", err)
	}

	demo := domain.User{
		ID:           idx.New().String(),
		Username:     demoUsername,
		Name:         "Demo User",
		Email:        "demo@wanderstay.dev",
		PasswordHash: hash,
	}
	if err := s.Store.Users().CreateUser(ctx, demo); err != nil {
		return fmt.Errorf("creating demo user: %w", err)
	}

	properties := []domain.Property{
		{
			Title:         "Harbourside Loft",
			Description:   "Bright loft apartment a short walk from the ferry terminal.",
			Location:      "Sydney, Australia",
			PricePerNight: 185,
			BedroomCount:  1,
			BathroomCount: 1,
			MaxGuestCount: 2,
			Rating:        5,
		},
		{
			Title:         "Rainforest Cabin",
			Description:   "Off-grid timber cabin surrounded by tree ferns and birdsong.",
			Location:      "Tamborine Mountain, Australia",
			PricePerNight: 140,
			BedroomCount:  2,
			BathroomCount: 1,
			MaxGuestCount: 4,
			Rating:        4,
		},
		{
			Title:         "Beachfront Villa",
			Description:   "Family villa with a private path straight onto the sand.",
			Location:      "Byron Bay, Australia",
			PricePerNight: 420,
			BedroomCount:  4,
			BathroomCount: 3,
			MaxGuestCount: 8,
			Rating:        5,
		},
	}
	for _, p := range properties {
		p.ID = idx.New().String()
		p.HostID = demo.ID
		if err := s.Store.Properties().CreateProperty(ctx, p); err != nil {
			return fmt.Errorf("creating demo property %q: %w", p.Title, err)
		}
	}

	if s.Logger != nil {
		s.Logger.Info("seeded demo data",
			"username", demoUsername,
			"properties", len(properties),
		)
	}
	return nil
}

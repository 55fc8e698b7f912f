package store

import (
	"context"
	"errors"

	"github.com/wanderstay/wanderstay/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres if we outgrow it) implement this. Sub-repositories keep the
// concerns tidy and let services depend on exactly what they touch.
type Store interface {
	Users() Users
	Properties() Properties

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Users is the user-store collaborator the session lifecycle depends on.
// Lookups are single reads with no side effects.
type Users interface {
	// GetUserByID re-checks existence during token refresh.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during credential verification. Username
	// is unique; case policy is the database collation (byte-exact here).
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// DeleteUser removes an account.
	DeleteUser(ctx context.Context, userID string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Properties interface {
	// GetPropertyByID returns a single listing.
	GetPropertyByID(ctx context.Context, id string) (domain.Property, error)

	// ListProperties returns listings filtered by location substring and
	// minimum guest capacity; zero values mean no filter.
	ListProperties(ctx context.Context, location string, minGuests int) ([]domain.Property, error)

	// CreateProperty inserts a new listing.
	CreateProperty(ctx context.Context, p domain.Property) error
}

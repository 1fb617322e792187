package repository

import (
	"context"

	"menu-kart/internal/model"
)

// CatalogRepository defines the interface for catalog data access operations.
// It satisfies catalog.Provider.
type CatalogRepository interface {
	// ListRestaurants retrieves every restaurant with its full menu.
	ListRestaurants(ctx context.Context) ([]model.Restaurant, error)

	// GetRestaurant retrieves a single restaurant with its menu.
	// Returns nil without error if the restaurant does not exist.
	GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error)

	// Migrate creates the catalog tables if they do not exist.
	Migrate(ctx context.Context) error

	// Seed replaces the stored definition of each given restaurant
	// within a single transaction.
	Seed(ctx context.Context, restaurants []model.Restaurant) error
}

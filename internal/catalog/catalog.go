package catalog

import (
	"context"

	"menu-kart/internal/model"
)

// Provider supplies the read-only restaurant catalog.
type Provider interface {
	// ListRestaurants returns every restaurant, menus included, in catalog order.
	ListRestaurants(ctx context.Context) ([]model.Restaurant, error)

	// GetRestaurant returns a single restaurant by ID.
	// Returns nil without error if the restaurant does not exist.
	GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error)
}

// Loader reads a catalog document.
type Loader interface {
	// Load reads the catalog file at path and returns its restaurants.
	Load(ctx context.Context, path string) ([]model.Restaurant, error)
}

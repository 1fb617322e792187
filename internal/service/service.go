package service

import (
	"context"

	"menu-kart/internal/model"

	"github.com/google/uuid"
)

// CatalogService defines read operations over the restaurant catalog.
type CatalogService interface {
	// List retrieves restaurant summaries with pagination.
	List(ctx context.Context, limit, offset int) ([]model.RestaurantSummary, error)

	// Get retrieves a single restaurant with its menu.
	Get(ctx context.Context, id string) (*model.Restaurant, error)
}

// SessionService defines operations on browsing sessions.
type SessionService interface {
	// Start opens a session on a restaurant's menu.
	Start(ctx context.Context, restaurantID string) (*model.SessionView, error)

	// View returns the session's current menu and cart.
	View(ctx context.Context, id uuid.UUID) (*model.SessionView, error)

	// Increment raises an item's quantity by one.
	Increment(ctx context.Context, id uuid.UUID, sectionID, itemID string) (*model.Menu, error)

	// Decrement lowers an item's quantity by one, stopping at zero.
	Decrement(ctx context.Context, id uuid.UUID, sectionID, itemID string) (*model.Menu, error)

	// AddToCart commits the item's current quantity to the cart.
	AddToCart(ctx context.Context, id uuid.UUID, sectionID, itemID string) (*model.CartLine, error)

	// Cart returns the session's cart lines in the order they were added.
	Cart(ctx context.Context, id uuid.UUID) ([]model.CartLine, error)

	// End discards the session.
	End(ctx context.Context, id uuid.UUID) error
}

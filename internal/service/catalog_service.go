package service

import (
	"context"
	"fmt"

	"menu-kart/internal/catalog"
	"menu-kart/internal/model"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	provider catalog.Provider
	logger   zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(provider catalog.Provider, logger zerolog.Logger) CatalogService {
	return &catalogService{
		provider: provider,
		logger:   logger.With().Str("service", "catalog").Logger(),
	}
}

// List retrieves restaurant summaries with pagination.
func (s *catalogService) List(ctx context.Context, limit, offset int) ([]model.RestaurantSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	restaurants, err := s.provider.ListRestaurants(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list restaurants")
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	summaries := []model.RestaurantSummary{}
	for i := offset; i < len(restaurants) && len(summaries) < limit; i++ {
		summaries = append(summaries, restaurants[i].Summary())
	}

	s.logger.Debug().
		Int("count", len(summaries)).
		Int("limit", limit).
		Int("offset", offset).
		Msg("retrieved restaurants")

	return summaries, nil
}

// Get retrieves a single restaurant with its menu.
func (s *catalogService) Get(ctx context.Context, id string) (*model.Restaurant, error) {
	if id == "" {
		s.logger.Warn().Msg("restaurant ID is empty")
		return nil, model.ErrRestaurantNotFound
	}

	restaurant, err := s.provider.GetRestaurant(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("restaurant_id", id).Msg("failed to get restaurant")
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	if restaurant == nil {
		s.logger.Debug().Str("restaurant_id", id).Msg("restaurant not found")
		return nil, model.ErrRestaurantNotFound
	}

	return restaurant, nil
}

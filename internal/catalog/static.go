package catalog

import (
	"context"
	"fmt"

	"menu-kart/internal/model"
)

// staticProvider serves a fixed, in-memory catalog.
type staticProvider struct {
	restaurants []model.Restaurant
	index       map[string]int
}

// NewStaticProvider validates the given restaurants and serves them.
// The provider keeps its own copy and hands out copies, so neither the
// caller's slice nor any session can alter the catalog afterwards.
func NewStaticProvider(restaurants []model.Restaurant) (Provider, error) {
	p := &staticProvider{
		restaurants: make([]model.Restaurant, 0, len(restaurants)),
		index:       make(map[string]int, len(restaurants)),
	}

	for i := range restaurants {
		r := &restaurants[i]
		if err := model.ValidateRestaurant(r); err != nil {
			return nil, err
		}
		if _, dup := p.index[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate restaurant %q", model.ErrInvalidCatalog, r.ID)
		}
		p.index[r.ID] = len(p.restaurants)
		p.restaurants = append(p.restaurants, r.Clone())
	}

	return p, nil
}

// ListRestaurants returns copies of all restaurants in catalog order.
func (p *staticProvider) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	out := make([]model.Restaurant, len(p.restaurants))
	for i := range p.restaurants {
		out[i] = p.restaurants[i].Clone()
	}
	return out, nil
}

// GetRestaurant returns a copy of the restaurant with the given ID.
func (p *staticProvider) GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error) {
	i, ok := p.index[id]
	if !ok {
		return nil, nil
	}
	r := p.restaurants[i].Clone()
	return &r, nil
}

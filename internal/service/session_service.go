package service

import (
	"context"
	"errors"
	"fmt"

	"menu-kart/internal/catalog"
	"menu-kart/internal/menu"
	"menu-kart/internal/model"
	"menu-kart/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// sessionService implements SessionService.
type sessionService struct {
	provider catalog.Provider
	store    *session.Store
	opts     menu.Options
	logger   zerolog.Logger
}

// NewSessionService creates a new session service. Every session it starts
// gets an engine configured with opts.
func NewSessionService(provider catalog.Provider, store *session.Store, opts menu.Options, logger zerolog.Logger) SessionService {
	return &sessionService{
		provider: provider,
		store:    store,
		opts:     opts,
		logger:   logger.With().Str("service", "session").Logger(),
	}
}

// Start opens a session seeded from the catalog's current definition of
// the restaurant.
func (s *sessionService) Start(ctx context.Context, restaurantID string) (*model.SessionView, error) {
	if restaurantID == "" {
		return nil, model.ErrRestaurantNotFound
	}

	restaurant, err := s.provider.GetRestaurant(ctx, restaurantID)
	if err != nil {
		s.logger.Error().Err(err).Str("restaurant_id", restaurantID).Msg("failed to load restaurant")
		return nil, fmt.Errorf("failed to load restaurant: %w", err)
	}
	if restaurant == nil {
		s.logger.Debug().Str("restaurant_id", restaurantID).Msg("restaurant not found")
		return nil, model.ErrRestaurantNotFound
	}

	engine, err := menu.NewEngine(*restaurant, s.opts, s.logger)
	if err != nil {
		s.logger.Error().Err(err).Str("restaurant_id", restaurantID).Msg("failed to build menu engine")
		return nil, err
	}

	sess := s.store.Create(engine)

	s.logger.Info().
		Str("session_id", sess.ID.String()).
		Str("restaurant_id", restaurantID).
		Msg("session started")

	return s.view(sess)
}

// View returns the session's current menu and cart.
func (s *sessionService) View(ctx context.Context, id uuid.UUID) (*model.SessionView, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return s.view(sess)
}

// Increment raises an item's quantity by one.
func (s *sessionService) Increment(ctx context.Context, id uuid.UUID, sectionID, itemID string) (*model.Menu, error) {
	return s.mutate(id, sectionID, itemID, "increment", (*menu.Engine).IncrementQuantity)
}

// Decrement lowers an item's quantity by one, stopping at zero.
func (s *sessionService) Decrement(ctx context.Context, id uuid.UUID, sectionID, itemID string) (*model.Menu, error) {
	return s.mutate(id, sectionID, itemID, "decrement", (*menu.Engine).DecrementQuantity)
}

// AddToCart commits the item's current quantity to the cart.
func (s *sessionService) AddToCart(ctx context.Context, id uuid.UUID, sectionID, itemID string) (*model.CartLine, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	var line model.CartLine
	err = sess.Do(func(e *menu.Engine) error {
		var err error
		line, err = e.AddToCart(sectionID, itemID)
		return err
	})
	if err != nil {
		s.logRejected(err, id, sectionID, itemID, "add to cart")
		return nil, err
	}

	s.logger.Info().
		Str("session_id", id.String()).
		Str("item_id", itemID).
		Int("quantity", line.Quantity).
		Msg("item added to cart")

	return &line, nil
}

// Cart returns the session's cart lines in the order they were added.
func (s *sessionService) Cart(ctx context.Context, id uuid.UUID) ([]model.CartLine, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	var cart []model.CartLine
	_ = sess.Do(func(e *menu.Engine) error {
		cart = e.Cart()
		return nil
	})

	return cart, nil
}

// End discards the session.
func (s *sessionService) End(ctx context.Context, id uuid.UUID) error {
	if !s.store.Delete(id) {
		return model.ErrSessionNotFound
	}

	s.logger.Info().Str("session_id", id.String()).Msg("session ended")

	return nil
}

func (s *sessionService) get(id uuid.UUID) (*session.Session, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		s.logger.Debug().Str("session_id", id.String()).Msg("session not found")
		return nil, model.ErrSessionNotFound
	}
	return sess, nil
}

func (s *sessionService) view(sess *session.Session) (*model.SessionView, error) {
	v := &model.SessionView{
		ID:           sess.ID,
		RestaurantID: sess.RestaurantID,
	}
	_ = sess.Do(func(e *menu.Engine) error {
		v.Menu = e.Menu()
		v.Cart = e.Cart()
		return nil
	})
	return v, nil
}

func (s *sessionService) mutate(
	id uuid.UUID,
	sectionID, itemID, action string,
	op func(e *menu.Engine, sectionID, itemID string) (model.Menu, error),
) (*model.Menu, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	var m model.Menu
	err = sess.Do(func(e *menu.Engine) error {
		var err error
		m, err = op(e, sectionID, itemID)
		return err
	})
	if err != nil {
		s.logRejected(err, id, sectionID, itemID, action)
		return nil, err
	}

	return &m, nil
}

// logRejected logs domain rejections at debug level and anything else as an error.
func (s *sessionService) logRejected(err error, id uuid.UUID, sectionID, itemID, action string) {
	event := s.logger.Error()
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		event = s.logger.Debug().Str("code", domainErr.Code)
	}

	event.
		Err(err).
		Str("session_id", id.String()).
		Str("section_id", sectionID).
		Str("item_id", itemID).
		Msgf("%s rejected", action)
}

package menu

import (
	"fmt"
	"time"

	"menu-kart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options tunes the quantity and cart rules of an Engine.
type Options struct {
	// MaxQuantity caps an item's quantity. Zero means no cap.
	MaxQuantity int

	// ResetQuantityOnAdd zeroes an item's quantity once it has been added
	// to the cart. The committed cart line keeps the pre-reset quantity.
	ResetQuantityOnAdd bool

	// Clock stamps cart lines. Defaults to time.Now.
	Clock func() time.Time
}

// DefaultOptions returns options matching the app's observed behaviour:
// unbounded quantities and no reset after add-to-cart.
func DefaultOptions() Options {
	return Options{Clock: time.Now}
}

type section struct {
	title string
	order []string
	items map[string]*model.Item
}

// Engine owns the mutable per-session copy of one restaurant's menu and
// the cart built from it.
//
// An Engine is not safe for concurrent use; callers serialise access.
type Engine struct {
	restaurantID string
	order        []string
	sections     map[string]*section
	cart         []model.CartLine
	opts         Options
	logger       zerolog.Logger
}

// NewEngine seeds an engine from a catalog restaurant. The menu is deep
// copied, so mutations never leak back into the catalog.
func NewEngine(r model.Restaurant, opts Options, logger zerolog.Logger) (*Engine, error) {
	if err := model.ValidateRestaurant(&r); err != nil {
		return nil, err
	}
	if opts.MaxQuantity < 0 {
		return nil, fmt.Errorf("max quantity cannot be negative: %d", opts.MaxQuantity)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	e := &Engine{
		restaurantID: r.ID,
		order:        make([]string, 0, len(r.Menu)),
		sections:     make(map[string]*section, len(r.Menu)),
		cart:         []model.CartLine{},
		opts:         opts,
		logger:       logger.With().Str("component", "menu-engine").Str("restaurant_id", r.ID).Logger(),
	}

	for _, s := range r.Menu {
		sec := &section{
			title: s.Title,
			order: make([]string, 0, len(s.Items)),
			items: make(map[string]*model.Item, len(s.Items)),
		}
		for _, it := range s.Items {
			item := it
			sec.order = append(sec.order, it.ID)
			sec.items[it.ID] = &item
		}
		e.order = append(e.order, s.ID)
		e.sections[s.ID] = sec
	}

	return e, nil
}

// RestaurantID returns the id of the restaurant the engine was seeded from.
func (e *Engine) RestaurantID() string {
	return e.restaurantID
}

// IncrementQuantity raises an item's quantity by one.
func (e *Engine) IncrementQuantity(sectionID, itemID string) (model.Menu, error) {
	item, err := e.lookup(sectionID, itemID)
	if err != nil {
		return model.Menu{}, err
	}

	if !item.InStock {
		e.logger.Debug().Str("section_id", sectionID).Str("item_id", itemID).Msg("increment rejected: out of stock")
		return model.Menu{}, model.ErrOutOfStock
	}

	if e.opts.MaxQuantity > 0 && item.Quantity >= e.opts.MaxQuantity {
		e.logger.Debug().
			Str("section_id", sectionID).
			Str("item_id", itemID).
			Int("max_quantity", e.opts.MaxQuantity).
			Msg("increment rejected: quantity limit reached")
		return model.Menu{}, model.ErrQuantityLimit
	}

	item.Quantity++

	return e.Menu(), nil
}

// DecrementQuantity lowers an item's quantity by one. At zero it does
// nothing and still succeeds.
func (e *Engine) DecrementQuantity(sectionID, itemID string) (model.Menu, error) {
	item, err := e.lookup(sectionID, itemID)
	if err != nil {
		return model.Menu{}, err
	}

	if item.Quantity > 0 {
		item.Quantity--
	}

	return e.Menu(), nil
}

// AddToCart appends a snapshot of the item's current quantity to the cart
// and returns the committed line.
func (e *Engine) AddToCart(sectionID, itemID string) (model.CartLine, error) {
	item, err := e.lookup(sectionID, itemID)
	if err != nil {
		return model.CartLine{}, err
	}

	if item.Quantity == 0 {
		return model.CartLine{}, model.ErrInvalidQuantity
	}

	if !item.InStock {
		return model.CartLine{}, model.ErrOutOfStock
	}

	line := model.CartLine{
		ID:        uuid.New(),
		SectionID: sectionID,
		ItemID:    itemID,
		Title:     item.Title,
		Quantity:  item.Quantity,
		AddedAt:   e.opts.Clock().UTC(),
	}
	e.cart = append(e.cart, line)

	if e.opts.ResetQuantityOnAdd {
		item.Quantity = 0
	}

	e.logger.Debug().
		Str("item_id", itemID).
		Int("quantity", line.Quantity).
		Int("cart_lines", len(e.cart)).
		Msg("item added to cart")

	return line, nil
}

// Cart returns a copy of the cart in insertion order.
func (e *Engine) Cart() []model.CartLine {
	out := make([]model.CartLine, len(e.cart))
	copy(out, e.cart)
	return out
}

// Menu returns a deep copy of the current menu state.
func (e *Engine) Menu() model.Menu {
	m := model.Menu{
		RestaurantID: e.restaurantID,
		Sections:     make([]model.Section, 0, len(e.order)),
	}
	for _, sid := range e.order {
		sec := e.sections[sid]
		s := model.Section{
			ID:    sid,
			Title: sec.title,
			Items: make([]model.Item, 0, len(sec.order)),
		}
		for _, iid := range sec.order {
			s.Items = append(s.Items, *sec.items[iid])
		}
		m.Sections = append(m.Sections, s)
	}
	return m
}

// Item returns a copy of a single item.
func (e *Engine) Item(sectionID, itemID string) (model.Item, error) {
	item, err := e.lookup(sectionID, itemID)
	if err != nil {
		return model.Item{}, err
	}
	return *item, nil
}

func (e *Engine) lookup(sectionID, itemID string) (*model.Item, error) {
	sec, ok := e.sections[sectionID]
	if !ok {
		return nil, model.ErrNotFound
	}
	item, ok := sec.items[itemID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return item, nil
}

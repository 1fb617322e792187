package menu

import (
	"testing"
	"time"

	"menu-kart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gelatoRestaurant() model.Restaurant {
	return model.Restaurant{
		ID:   "joes-gelato",
		Name: "Joe's Gelato",
		Menu: []model.Section{
			{
				ID:    "gelato",
				Title: "Gelato",
				Items: []model.Item{
					{ID: "van", Title: "Vanilla", InStock: true},
					{ID: "choc", Title: "Chocolate", InStock: false},
					{ID: "straw", Title: "Strawberry", InStock: true},
					{ID: "mint", Title: "Mint Choc Chip", InStock: true},
				},
			},
			{
				ID:    "milkshake",
				Title: "Milkshake",
				Items: []model.Item{
					// Same item id as in the gelato section.
					{ID: "choc", Title: "Chocolate", InStock: true},
				},
			},
		},
	}
}

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	e, err := NewEngine(gelatoRestaurant(), opts, zerolog.Nop())
	require.NoError(t, err)
	return e
}

func quantityOf(t *testing.T, e *Engine, sectionID, itemID string) int {
	t.Helper()
	item, err := e.Item(sectionID, itemID)
	require.NoError(t, err)
	return item.Quantity
}

func TestEngine_IncrementTwiceThenAddToCart(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	_, err := e.IncrementQuantity("gelato", "van")
	require.NoError(t, err)
	menu, err := e.IncrementQuantity("gelato", "van")
	require.NoError(t, err)

	assert.Equal(t, 2, menu.Sections[0].Items[0].Quantity)

	line, err := e.AddToCart("gelato", "van")
	require.NoError(t, err)
	assert.Equal(t, "van", line.ItemID)
	assert.Equal(t, "Vanilla", line.Title)
	assert.Equal(t, 2, line.Quantity)
	assert.Len(t, e.Cart(), 1)
}

func TestEngine_IncrementOutOfStock(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	_, err := e.IncrementQuantity("gelato", "choc")

	require.ErrorIs(t, err, model.ErrOutOfStock)
	assert.Equal(t, 0, quantityOf(t, e, "gelato", "choc"))
}

func TestEngine_DecrementAtZeroIsNoop(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	menu, err := e.DecrementQuantity("gelato", "straw")

	require.NoError(t, err)
	assert.Equal(t, 0, menu.Sections[0].Items[2].Quantity)
	assert.Equal(t, 0, quantityOf(t, e, "gelato", "straw"))
}

func TestEngine_AddToCartAtZeroQuantity(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	_, err := e.AddToCart("gelato", "mint")

	require.ErrorIs(t, err, model.ErrInvalidQuantity)
	assert.Empty(t, e.Cart())
}

func TestEngine_AddToCartOutOfStockWithSeededQuantity(t *testing.T) {
	r := gelatoRestaurant()
	r.Menu[0].Items[1].Quantity = 3

	e, err := NewEngine(r, DefaultOptions(), zerolog.Nop())
	require.NoError(t, err)

	_, err = e.AddToCart("gelato", "choc")

	require.ErrorIs(t, err, model.ErrOutOfStock)
	assert.Empty(t, e.Cart())
	assert.Equal(t, 3, quantityOf(t, e, "gelato", "choc"))
}

func TestEngine_NotFound(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	tests := []struct {
		name      string
		sectionID string
		itemID    string
	}{
		{name: "Unknown section", sectionID: "sorbet", itemID: "van"},
		{name: "Unknown item", sectionID: "gelato", itemID: "lemon"},
		{name: "Item from another section", sectionID: "milkshake", itemID: "van"},
		{name: "Empty ids", sectionID: "", itemID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.IncrementQuantity(tt.sectionID, tt.itemID)
			assert.ErrorIs(t, err, model.ErrNotFound)

			_, err = e.DecrementQuantity(tt.sectionID, tt.itemID)
			assert.ErrorIs(t, err, model.ErrNotFound)

			_, err = e.AddToCart(tt.sectionID, tt.itemID)
			assert.ErrorIs(t, err, model.ErrNotFound)

			_, err = e.Item(tt.sectionID, tt.itemID)
			assert.ErrorIs(t, err, model.ErrNotFound)
		})
	}

	assert.Empty(t, e.Cart())
}

func TestEngine_SameItemIDInDifferentSections(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	_, err := e.IncrementQuantity("milkshake", "choc")
	require.NoError(t, err)

	assert.Equal(t, 1, quantityOf(t, e, "milkshake", "choc"))
	assert.Equal(t, 0, quantityOf(t, e, "gelato", "choc"))
}

func TestEngine_CartLineIsSnapshot(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	_, err := e.IncrementQuantity("gelato", "van")
	require.NoError(t, err)
	line, err := e.AddToCart("gelato", "van")
	require.NoError(t, err)

	_, err = e.IncrementQuantity("gelato", "van")
	require.NoError(t, err)
	_, err = e.IncrementQuantity("gelato", "van")
	require.NoError(t, err)

	cart := e.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, line, cart[0])
	assert.Equal(t, 3, quantityOf(t, e, "gelato", "van"))
}

func TestEngine_QuantityNotResetByDefault(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	_, err := e.IncrementQuantity("gelato", "van")
	require.NoError(t, err)

	_, err = e.AddToCart("gelato", "van")
	require.NoError(t, err)
	_, err = e.AddToCart("gelato", "van")
	require.NoError(t, err)

	assert.Equal(t, 1, quantityOf(t, e, "gelato", "van"))
	cart := e.Cart()
	require.Len(t, cart, 2)
	assert.NotEqual(t, cart[0].ID, cart[1].ID)
}

func TestEngine_ResetQuantityOnAdd(t *testing.T) {
	opts := DefaultOptions()
	opts.ResetQuantityOnAdd = true
	e := newTestEngine(t, opts)

	_, err := e.IncrementQuantity("gelato", "van")
	require.NoError(t, err)
	_, err = e.IncrementQuantity("gelato", "van")
	require.NoError(t, err)

	line, err := e.AddToCart("gelato", "van")
	require.NoError(t, err)

	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 0, quantityOf(t, e, "gelato", "van"))

	_, err = e.AddToCart("gelato", "van")
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)
	assert.Len(t, e.Cart(), 1)
}

func TestEngine_MaxQuantity(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxQuantity = 2
	e := newTestEngine(t, opts)

	for i := 0; i < 2; i++ {
		_, err := e.IncrementQuantity("gelato", "van")
		require.NoError(t, err)
	}

	_, err := e.IncrementQuantity("gelato", "van")
	require.ErrorIs(t, err, model.ErrQuantityLimit)
	assert.Equal(t, 2, quantityOf(t, e, "gelato", "van"))

	_, err = e.DecrementQuantity("gelato", "van")
	require.NoError(t, err)
	_, err = e.IncrementQuantity("gelato", "van")
	assert.NoError(t, err)
}

func TestEngine_QuantityNeverNegative(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	ops := []string{"+", "-", "-", "-", "+", "+", "-", "+", "-", "-", "-"}
	for _, op := range ops {
		var err error
		if op == "+" {
			_, err = e.IncrementQuantity("gelato", "straw")
		} else {
			_, err = e.DecrementQuantity("gelato", "straw")
		}
		require.NoError(t, err)
		assert.GreaterOrEqual(t, quantityOf(t, e, "gelato", "straw"), 0)
	}

	assert.Equal(t, 0, quantityOf(t, e, "gelato", "straw"))
}

func TestEngine_SeedIsDeepCopied(t *testing.T) {
	r := gelatoRestaurant()

	e, err := NewEngine(r, DefaultOptions(), zerolog.Nop())
	require.NoError(t, err)

	_, err = e.IncrementQuantity("gelato", "van")
	require.NoError(t, err)

	assert.Equal(t, 0, r.Menu[0].Items[0].Quantity)

	// Mutating the seed after construction does not reach the engine.
	r.Menu[0].Items[0].Quantity = 50
	r.Menu[0].Items[0].Title = "Changed"
	item, err := e.Item("gelato", "van")
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, "Vanilla", item.Title)
}

func TestEngine_ReturnedStateIsDetached(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	_, err := e.IncrementQuantity("gelato", "van")
	require.NoError(t, err)
	_, err = e.AddToCart("gelato", "van")
	require.NoError(t, err)

	menu := e.Menu()
	menu.Sections[0].Items[0].Quantity = 99

	cart := e.Cart()
	cart[0].Quantity = 99

	assert.Equal(t, 1, quantityOf(t, e, "gelato", "van"))
	require.Len(t, e.Cart(), 1)
	assert.Equal(t, 1, e.Cart()[0].Quantity)
}

func TestEngine_MenuPreservesOrder(t *testing.T) {
	e := newTestEngine(t, DefaultOptions())

	menu := e.Menu()

	assert.Equal(t, "joes-gelato", menu.RestaurantID)
	require.Len(t, menu.Sections, 2)
	assert.Equal(t, "gelato", menu.Sections[0].ID)
	assert.Equal(t, "milkshake", menu.Sections[1].ID)

	ids := make([]string, 0, len(menu.Sections[0].Items))
	for _, it := range menu.Sections[0].Items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"van", "choc", "straw", "mint"}, ids)
}

func TestEngine_CartLineTimestamp(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	opts := DefaultOptions()
	opts.Clock = func() time.Time { return fixed }
	e := newTestEngine(t, opts)

	_, err := e.IncrementQuantity("gelato", "van")
	require.NoError(t, err)
	line, err := e.AddToCart("gelato", "van")
	require.NoError(t, err)

	assert.Equal(t, fixed, line.AddedAt)
	assert.Equal(t, "gelato", line.SectionID)
}

func TestNewEngine_InvalidCatalog(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *model.Restaurant)
	}{
		{
			name:   "Missing restaurant id",
			mutate: func(r *model.Restaurant) { r.ID = "" },
		},
		{
			name:   "Duplicate section id",
			mutate: func(r *model.Restaurant) { r.Menu[1].ID = "gelato" },
		},
		{
			name:   "Duplicate item id within section",
			mutate: func(r *model.Restaurant) { r.Menu[0].Items[1].ID = "van" },
		},
		{
			name:   "Empty item id",
			mutate: func(r *model.Restaurant) { r.Menu[0].Items[0].ID = "" },
		},
		{
			name:   "Negative quantity",
			mutate: func(r *model.Restaurant) { r.Menu[0].Items[0].Quantity = -1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gelatoRestaurant()
			tt.mutate(&r)

			e, err := NewEngine(r, DefaultOptions(), zerolog.Nop())

			require.ErrorIs(t, err, model.ErrInvalidCatalog)
			assert.Nil(t, e)
		})
	}
}

func TestNewEngine_NegativeMaxQuantity(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxQuantity = -1

	_, err := NewEngine(gelatoRestaurant(), opts, zerolog.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max quantity")
}

func TestNewEngine_NilClockDefaults(t *testing.T) {
	e, err := NewEngine(gelatoRestaurant(), Options{}, zerolog.Nop())
	require.NoError(t, err)

	_, err = e.IncrementQuantity("gelato", "van")
	require.NoError(t, err)
	line, err := e.AddToCart("gelato", "van")
	require.NoError(t, err)

	assert.False(t, line.AddedAt.IsZero())
}

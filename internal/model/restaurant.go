package model

// Restaurant is a catalog entry together with its menu.
type Restaurant struct {
	ID       string    `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Tagline  string    `json:"tagline" db:"tagline"`
	ETA      string    `json:"eta" db:"eta"`
	ImageURL string    `json:"imageUrl,omitempty" db:"image_url"`
	Menu     []Section `json:"menu"`
}

// Section groups menu items under a heading such as "Gelato" or "Sides".
type Section struct {
	ID    string `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
	Items []Item `json:"items"`
}

// Item is a single orderable menu entry.
// A catalog entry that omits inStock is treated as out of stock.
type Item struct {
	ID       string `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	InStock  bool   `json:"inStock" db:"in_stock"`
	Quantity int    `json:"quantity" db:"quantity"`
}

// RestaurantSummary is the list view of a restaurant without its menu.
type RestaurantSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Tagline  string `json:"tagline"`
	ETA      string `json:"eta"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Summary returns the list view of the restaurant.
func (r *Restaurant) Summary() RestaurantSummary {
	return RestaurantSummary{
		ID:       r.ID,
		Name:     r.Name,
		Tagline:  r.Tagline,
		ETA:      r.ETA,
		ImageURL: r.ImageURL,
	}
}

// Clone returns a deep copy of the restaurant so the copy's menu can be
// mutated without touching the original.
func (r *Restaurant) Clone() Restaurant {
	out := *r
	out.Menu = CloneSections(r.Menu)
	return out
}

// CloneSections deep-copies a slice of sections and their items.
func CloneSections(sections []Section) []Section {
	if sections == nil {
		return nil
	}
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = Section{ID: s.ID, Title: s.Title}
		if s.Items != nil {
			out[i].Items = make([]Item, len(s.Items))
			copy(out[i].Items, s.Items)
		}
	}
	return out
}

package model

import "fmt"

// ValidateRestaurant checks the identity rules a menu must satisfy before a
// session can be built from it: every id present, section ids unique within
// the menu, item ids unique within their section and no negative quantity.
// Failures wrap ErrInvalidCatalog.
func ValidateRestaurant(r *Restaurant) error {
	if r.ID == "" {
		return fmt.Errorf("%w: restaurant id is required", ErrInvalidCatalog)
	}

	sectionIDs := make(map[string]struct{}, len(r.Menu))
	for _, s := range r.Menu {
		if s.ID == "" {
			return fmt.Errorf("%w: restaurant %q has a section without id", ErrInvalidCatalog, r.ID)
		}
		if _, dup := sectionIDs[s.ID]; dup {
			return fmt.Errorf("%w: restaurant %q has duplicate section %q", ErrInvalidCatalog, r.ID, s.ID)
		}
		sectionIDs[s.ID] = struct{}{}

		itemIDs := make(map[string]struct{}, len(s.Items))
		for _, it := range s.Items {
			if it.ID == "" {
				return fmt.Errorf("%w: section %q has an item without id", ErrInvalidCatalog, s.ID)
			}
			if _, dup := itemIDs[it.ID]; dup {
				return fmt.Errorf("%w: section %q has duplicate item %q", ErrInvalidCatalog, s.ID, it.ID)
			}
			if it.Quantity < 0 {
				return fmt.Errorf("%w: item %q has negative quantity %d", ErrInvalidCatalog, it.ID, it.Quantity)
			}
			itemIDs[it.ID] = struct{}{}
		}
	}

	return nil
}

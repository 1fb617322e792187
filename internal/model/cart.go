package model

import (
	"time"

	"github.com/google/uuid"
)

// Menu is the observable state of one browsing session's menu.
type Menu struct {
	RestaurantID string    `json:"restaurantId"`
	Sections     []Section `json:"sections"`
}

// CartLine is an immutable record of one confirmed add-to-cart action.
// Quantity is the item quantity at the moment the line was added.
type CartLine struct {
	ID        uuid.UUID `json:"id"`
	SectionID string    `json:"sectionId"`
	ItemID    string    `json:"itemId"`
	Title     string    `json:"title"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// SessionView is everything a client needs to render a browsing session.
type SessionView struct {
	ID           uuid.UUID  `json:"id"`
	RestaurantID string     `json:"restaurantId"`
	Menu         Menu       `json:"menu"`
	Cart         []CartLine `json:"cart"`
}

// StartSessionRequest represents the request payload for opening a session.
type StartSessionRequest struct {
	RestaurantID string `json:"restaurantId"`
}

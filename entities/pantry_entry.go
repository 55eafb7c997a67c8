package entities

import "time"

const DateLayout = "2006-01-02"

// PantryEntry is one purchased unit tracked for expiry.
type PantryEntry struct {
	Item       string
	BuyDate    time.Time
	ExpiryDate time.Time
	Status     string
}

// PantryRecord is the history file encoding of a PantryEntry. Seeded data
// may carry day offsets relative to load time instead of dates.
type PantryRecord struct {
	Item          string `json:"item"`
	BuyDate       string `json:"buy_date,omitempty"`
	ExpiryDate    string `json:"expiry_date,omitempty"`
	Status        string `json:"status"`
	BuyDateOffset *int   `json:"buy_date_offset,omitempty"`
	ExpiryOffset  *int   `json:"expiry_offset,omitempty"`
}

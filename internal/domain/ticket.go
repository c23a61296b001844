package domain

import "time"

// Ticket is a queue ticket handed to a visitor. All business fields are
// free-form strings; the source system never constrained them beyond
// presence, and callers may supply any subset on creation.
type Ticket struct {
	ID        string    `json:"id"`
	NoTicket  string    `json:"no_ticket"`
	NoMeja    string    `json:"no_meja"`
	Status    string    `json:"status"`
	DateTime  string    `json:"date_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

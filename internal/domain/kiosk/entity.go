package kiosk

import "time"

type Location struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// QRToken is a short-lived, single-use token displayed at a kiosk. Clock-in
// consumes it; a consumed or expired token is rejected.
type QRToken struct {
	ID         string    `json:"id"`
	Token      string    `json:"token"`
	LocationID string    `json:"location_id"`
	ExpiresAt  time.Time `json:"expires_at"`
	IsUsed     bool      `json:"is_used"`
	CreatedAt  time.Time `json:"created_at"`
}

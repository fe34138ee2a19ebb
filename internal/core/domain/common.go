package domain

import "time"

// Timestamps holds the server-side audit times carried on most records.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

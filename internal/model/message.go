package model

import "time"

// Message represents a message submitted via the contact form.
// Messages are immutable: they are created once and never updated, and
// removal happens only via store-level purge, not through the API.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

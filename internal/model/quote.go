package model

// QuoteRequest is a customer's ask for pricing on a specific vehicle.
// It is transient: it exists only for the duration of one notification
// dispatch and is never persisted. The referenced vehicle is re-fetched
// and validated on every request.
type QuoteRequest struct {
	VehicleID int64   `json:"vehicle_id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Date      string  `json:"date"`
	Comment   *string `json:"comment,omitempty"`
}

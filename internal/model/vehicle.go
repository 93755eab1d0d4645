package model

// Vehicle is a fleet vehicle offered for transport services.
// PhotoURL is nil when no photo was supplied or the upload failed;
// it serializes as JSON null so the frontend can show a placeholder.
type Vehicle struct {
	ID       int64   `json:"id"`
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Plate    string  `json:"plate"`
	Year     int     `json:"year"`
	Type     string  `json:"type"`
	Capacity string  `json:"capacity"`
	Notes    *string `json:"notes,omitempty"`
	PhotoURL *string `json:"photo_url"`
}

package notify

import (
	"fmt"
	"strings"

	"github.com/luisitotec2025/transportesManoloBack/internal/model"
)

// Placeholders substituted for absent optional fields so the rendered
// notification never has gaps. Copy matches the operator emails.
const (
	NoComment = "Sin comentario"
	NoPhoto   = "Sin foto disponible"
)

// ValidationError reports a required payload field that was missing.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("notify: missing required field %q", e.Field)
}

// Payload is the merge of a quote request with the denormalized fields of
// the vehicle it references. It is built fresh per dispatch, only after the
// vehicle was confirmed to exist, and is never cached or persisted.
// Every field is non-empty: absent comment and photo get placeholders.
type Payload struct {
	VehicleID    int64
	CustomerName string
	Phone        string
	Date         string
	Comment      string

	Brand    string
	Model    string
	Year     int
	Plate    string
	Type     string
	PhotoURL string
	HasPhoto bool
}

// BuildPayload merges a quote request with its resolved vehicle. Pure: no
// I/O, and the only failure mode is a missing required field. A relative
// photo URL (local storage) is made absolute against publicBaseURL.
func BuildPayload(q model.QuoteRequest, v model.Vehicle, publicBaseURL string) (Payload, error) {
	for _, f := range []struct {
		name, value string
	}{
		{"name", q.Name},
		{"phone", q.Phone},
		{"date", q.Date},
		{"brand", v.Brand},
		{"model", v.Model},
		{"plate", v.Plate},
		{"type", v.Type},
	} {
		if strings.TrimSpace(f.value) == "" {
			return Payload{}, &ValidationError{Field: f.name}
		}
	}

	p := Payload{
		VehicleID:    v.ID,
		CustomerName: q.Name,
		Phone:        q.Phone,
		Date:         q.Date,
		Comment:      NoComment,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		Plate:        v.Plate,
		Type:         v.Type,
		PhotoURL:     NoPhoto,
	}

	if q.Comment != nil && strings.TrimSpace(*q.Comment) != "" {
		p.Comment = *q.Comment
	}
	if v.PhotoURL != nil && *v.PhotoURL != "" {
		u := *v.PhotoURL
		if strings.HasPrefix(u, "/") {
			u = strings.TrimRight(publicBaseURL, "/") + u
		}
		p.PhotoURL = u
		p.HasPhoto = true
	}

	return p, nil
}

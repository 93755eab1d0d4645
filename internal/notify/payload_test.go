package notify

import (
	"errors"
	"strings"
	"testing"

	"github.com/luisitotec2025/transportesManoloBack/internal/model"
)

func strPtr(s string) *string { return &s }

func validQuote() model.QuoteRequest {
	return model.QuoteRequest{
		VehicleID: 7,
		Name:      "PRUEBA TEST",
		Phone:     "1234567890",
		Date:      "2025-10-17",
	}
}

func validVehicle() model.Vehicle {
	return model.Vehicle{
		ID:       7,
		Brand:    "Toyota",
		Model:    "Hiace",
		Plate:    "TEST-123",
		Year:     2023,
		Type:     "Van",
		Capacity: "12",
	}
}

func TestBuildPayload_MergesVehicleFields(t *testing.T) {
	p, err := BuildPayload(validQuote(), validVehicle(), "http://127.0.0.1:8000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.VehicleID != 7 {
		t.Errorf("expected vehicle id 7, got %d", p.VehicleID)
	}
	if p.Brand != "Toyota" || p.Model != "Hiace" || p.Plate != "TEST-123" || p.Type != "Van" {
		t.Errorf("vehicle fields not merged: %+v", p)
	}
	if p.Year != 2023 {
		t.Errorf("expected year 2023, got %d", p.Year)
	}
	if p.CustomerName != "PRUEBA TEST" || p.Phone != "1234567890" || p.Date != "2025-10-17" {
		t.Errorf("quote fields not merged: %+v", p)
	}
}

// TestBuildPayload_PlaceholderForAbsentComment verifies an absent comment is
// replaced by a fixed placeholder, never left empty.
func TestBuildPayload_PlaceholderForAbsentComment(t *testing.T) {
	p, err := BuildPayload(validQuote(), validVehicle(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Comment != NoComment {
		t.Errorf("expected comment placeholder %q, got %q", NoComment, p.Comment)
	}

	q := validQuote()
	q.Comment = strPtr("   ")
	p, err = BuildPayload(q, validVehicle(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Comment != NoComment {
		t.Errorf("expected placeholder for blank comment, got %q", p.Comment)
	}
}

func TestBuildPayload_PlaceholderForAbsentPhoto(t *testing.T) {
	p, err := BuildPayload(validQuote(), validVehicle(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.HasPhoto {
		t.Error("expected HasPhoto=false for vehicle without photo")
	}
	if p.PhotoURL != NoPhoto {
		t.Errorf("expected photo placeholder %q, got %q", NoPhoto, p.PhotoURL)
	}
}

// TestBuildPayload_RelativePhotoMadeAbsolute verifies a local storage path is
// resolved against the public base URL.
func TestBuildPayload_RelativePhotoMadeAbsolute(t *testing.T) {
	v := validVehicle()
	v.PhotoURL = strPtr("/vehiclesimg/vehicles/abc.jpg")

	p, err := BuildPayload(validQuote(), v, "http://127.0.0.1:8000/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.HasPhoto {
		t.Error("expected HasPhoto=true")
	}
	if p.PhotoURL != "http://127.0.0.1:8000/vehiclesimg/vehicles/abc.jpg" {
		t.Errorf("unexpected photo url %q", p.PhotoURL)
	}
}

func TestBuildPayload_AbsolutePhotoKeptAsIs(t *testing.T) {
	v := validVehicle()
	v.PhotoURL = strPtr("https://res.cloudinary.com/demo/image/upload/abc.jpg")

	p, err := BuildPayload(validQuote(), v, "http://127.0.0.1:8000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PhotoURL != "https://res.cloudinary.com/demo/image/upload/abc.jpg" {
		t.Errorf("unexpected photo url %q", p.PhotoURL)
	}
}

// TestBuildPayload_MissingFieldNamed verifies a ValidationError names the
// missing field.
func TestBuildPayload_MissingFieldNamed(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*model.QuoteRequest, *model.Vehicle)
	}{
		{"name", func(q *model.QuoteRequest, v *model.Vehicle) { q.Name = "" }},
		{"phone", func(q *model.QuoteRequest, v *model.Vehicle) { q.Phone = " " }},
		{"date", func(q *model.QuoteRequest, v *model.Vehicle) { q.Date = "" }},
		{"brand", func(q *model.QuoteRequest, v *model.Vehicle) { v.Brand = "" }},
		{"model", func(q *model.QuoteRequest, v *model.Vehicle) { v.Model = "" }},
		{"plate", func(q *model.QuoteRequest, v *model.Vehicle) { v.Plate = "" }},
		{"type", func(q *model.QuoteRequest, v *model.Vehicle) { v.Type = "" }},
	}

	for _, tc := range cases {
		q, v := validQuote(), validVehicle()
		tc.mutate(&q, &v)

		_, err := BuildPayload(q, v, "")
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: expected ValidationError, got %v", tc.field, err)
			continue
		}
		if ve.Field != tc.field {
			t.Errorf("expected field %q in error, got %q", tc.field, ve.Field)
		}
	}
}

// TestRender_AllFieldsPresent verifies every payload field appears non-empty
// in the rendered document.
func TestRender_AllFieldsPresent(t *testing.T) {
	q := validQuote()
	q.Comment = strPtr("Necesito transporte para 12 personas")
	p, err := BuildPayload(q, validVehicle(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, err := Render(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"PRUEBA TEST", "1234567890", "2025-10-17",
		"Necesito transporte para 12 personas",
		"Toyota", "Hiace", "2023", "TEST-123", "Van",
	} {
		if !strings.Contains(n.HTML, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
	if !strings.Contains(n.Subject, "PRUEBA TEST") {
		t.Errorf("subject missing customer name: %q", n.Subject)
	}
	if n.VehicleID != 7 {
		t.Errorf("expected vehicle id 7, got %d", n.VehicleID)
	}
}

// TestRender_PlaceholdersShownWhenAbsent verifies the placeholders reach the
// rendering instead of leaving a gap.
func TestRender_PlaceholdersShownWhenAbsent(t *testing.T) {
	p, err := BuildPayload(validQuote(), validVehicle(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, err := Render(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(n.HTML, NoComment) {
		t.Error("rendered HTML missing comment placeholder")
	}
	if !strings.Contains(n.HTML, NoPhoto) {
		t.Error("rendered HTML missing photo placeholder")
	}
	if strings.Contains(n.HTML, "<img") {
		t.Error("expected no img tag without a photo")
	}
}

func TestRender_PhotoRenderedAsImage(t *testing.T) {
	v := validVehicle()
	v.PhotoURL = strPtr("/vehiclesimg/vehicles/abc.jpg")
	p, err := BuildPayload(validQuote(), v, "http://127.0.0.1:8000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, err := Render(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(n.HTML, `<img src="http://127.0.0.1:8000/vehiclesimg/vehicles/abc.jpg"`) {
		t.Errorf("expected img tag with absolute photo url, got: %s", n.HTML)
	}
}

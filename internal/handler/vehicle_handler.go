package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"path"
	"strconv"

	"github.com/google/uuid"
	"github.com/luisitotec2025/transportesManoloBack/internal/model"
	"github.com/luisitotec2025/transportesManoloBack/internal/repository"
	"github.com/luisitotec2025/transportesManoloBack/internal/service"
	"github.com/luisitotec2025/transportesManoloBack/internal/storage"
)

const maxPhotoSize = 5 << 20 // 5 MB

var allowedPhotoTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// VehicleHandler handles fleet vehicle listing, creation and deletion.
type VehicleHandler struct {
	vehicleService service.VehicleService
	storage        storage.Storage
}

// NewVehicleHandler creates a VehicleHandler with the given service and
// photo storage backend.
func NewVehicleHandler(vehicleService service.VehicleService, store storage.Storage) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService, storage: store}
}

// listResponse is the JSON response for GET /vehicles.
type listResponse struct {
	Vehicles []*model.Vehicle `json:"vehicles"`
}

// List handles GET /vehicles.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vehicles, err := h.vehicleService.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if vehicles == nil {
		vehicles = []*model.Vehicle{}
	}

	_ = json.NewEncoder(w).Encode(listResponse{Vehicles: vehicles})
}

// Create handles POST /vehicles (multipart form).
// Required fields: brand, model, plate, year, type, capacity.
// Optional: notes, photo. A failed photo upload does not fail the request;
// the vehicle is created with photo_url null.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_form"})
		return
	}

	v := &model.Vehicle{
		Brand:    r.FormValue("brand"),
		Model:    r.FormValue("model"),
		Plate:    r.FormValue("plate"),
		Type:     r.FormValue("type"),
		Capacity: r.FormValue("capacity"),
	}

	for _, f := range []struct {
		name, value string
	}{
		{"brand", v.Brand},
		{"model", v.Model},
		{"plate", v.Plate},
		{"type", v.Type},
		{"capacity", v.Capacity},
	} {
		if f.value == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": f.name + "_required"})
			return
		}
	}

	year, err := strconv.Atoi(r.FormValue("year"))
	if err != nil || year <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_year"})
		return
	}
	v.Year = year

	if notes := r.FormValue("notes"); notes != "" {
		v.Notes = &notes
	}

	v.PhotoURL = h.uploadPhoto(r)

	if err := h.vehicleService.Create(r.Context(), v); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "create_failed"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message":   "vehicle created",
		"id":        v.ID,
		"photo_url": v.PhotoURL,
	})
}

// uploadPhoto stores the optional photo and returns its public URL, or nil
// when no photo was supplied, the file is not an accepted image, or the
// upload service failed. Upload failure is logged, never surfaced.
func (h *VehicleHandler) uploadPhoto(r *http.Request) *string {
	file, header, err := r.FormFile("photo")
	if err != nil {
		return nil
	}
	defer file.Close()

	if header.Size > maxPhotoSize {
		slog.Warn("vehicle photo rejected: too large", "size", header.Size)
		return nil
	}

	ct := header.Header.Get("Content-Type")
	ext, ok := allowedPhotoTypes[ct]
	if !ok {
		slog.Warn("vehicle photo rejected: unsupported content type", "content_type", ct)
		return nil
	}

	key := path.Join("vehicles", uuid.NewString()+ext)
	url, err := h.storage.Save(r.Context(), key, file, ct)
	if err != nil {
		slog.Error("vehicle photo upload failed", "error", err)
		return nil
	}
	return &url
}

// Delete handles DELETE /vehicles/{id}.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	if err := h.vehicleService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "vehicle_not_found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "delete_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{"message": "vehicle deleted"})
}

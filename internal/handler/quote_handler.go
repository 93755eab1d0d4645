package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/luisitotec2025/transportesManoloBack/internal/model"
	"github.com/luisitotec2025/transportesManoloBack/internal/notify"
	"github.com/luisitotec2025/transportesManoloBack/internal/repository"
	"github.com/luisitotec2025/transportesManoloBack/internal/service"
)

// QuoteHandler handles customer quote requests.
type QuoteHandler struct {
	quoteService service.QuoteService
}

// NewQuoteHandler creates a QuoteHandler with the given service.
func NewQuoteHandler(quoteService service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// quoteRequest is the expected JSON body for POST /quotes.
type quoteRequest struct {
	VehicleID int64   `json:"vehicle_id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Date      string  `json:"date"`
	Comment   *string `json:"comment"`
}

// Create handles POST /quotes. The response reports success as soon as the
// notification is accepted for dispatch; delivery failures are observable
// operationally only and never change this response.
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if req.VehicleID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "vehicle_id_required"})
		return
	}
	if req.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "name_required"})
		return
	}
	if req.Phone == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "phone_required"})
		return
	}
	if req.Date == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "date_required"})
		return
	}

	q := model.QuoteRequest{
		VehicleID: req.VehicleID,
		Name:      req.Name,
		Phone:     req.Phone,
		Date:      req.Date,
		Comment:   req.Comment,
	}

	if err := h.quoteService.Request(r.Context(), q); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "vehicle_not_found"})
			return
		}
		var ve *notify.ValidationError
		if errors.As(err, &ve) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": ve.Field + "_required"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{"message": "success"})
}

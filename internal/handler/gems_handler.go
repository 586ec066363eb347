package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/nivethika-g1/SoundSense/internal/engine"
	"github.com/nivethika-g1/SoundSense/internal/models"
	"github.com/nivethika-g1/SoundSense/internal/service"
)

type GemsHandler struct {
	svc *service.RecommendService
}

func NewGemsHandler(s *service.RecommendService) *GemsHandler {
	return &GemsHandler{svc: s}
}

type gemsResponse struct {
	Count int           `json:"count"`
	Items []models.Book `json:"items"`
}

// @Summary Hidden gems: buen rating, pocas reviews
// @Tags gems
// @Produce json
// @Param max_reviews query int false "máximo de reviews (default: 200)"
// @Param min_rating query number false "rating mínimo (default: 4.5)"
// @Success 200 {object} gemsResponse
// @Failure 409 {string} string "el dataset no trae conteo de reviews"
// @Router /books/hidden-gems [get]
func (h *GemsHandler) GetHiddenGems(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// defaults de los sliders originales; el param de la feature siempre
	// pisa cualquier default global
	maxReviews := 200
	if raw := r.URL.Query().Get("max_reviews"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "max_reviews inválido", http.StatusBadRequest)
			return
		}
		maxReviews = n
	}

	minRating := 4.5
	if raw := r.URL.Query().Get("min_rating"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "min_rating inválido", http.StatusBadRequest)
			return
		}
		minRating = f
	}

	gems, count, err := h.svc.HiddenGems(r.Context(), maxReviews, minRating)
	if err != nil {
		if errors.Is(err, engine.ErrReviewsUnavailable) {
			// deshabilitado estructuralmente para esta sesión, no es un 500
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if gems == nil {
		gems = []models.Book{}
	}
	_ = json.NewEncoder(w).Encode(gemsResponse{Count: count, Items: gems})
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/nivethika-g1/SoundSense/internal/engine"
	"github.com/nivethika-g1/SoundSense/internal/service"

	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
	// filtro de rating por defecto; el slider de cada feature lo pisa
	defaultMinRating float64
}

func NewRecommendHandler(s *service.RecommendService, defaultMinRating float64) *RecommendHandler {
	return &RecommendHandler{svc: s, defaultMinRating: defaultMinRating}
}

// parseRecParams arma el RecRequest desde la query string. Si no viene
// min_rating se usa el default global; si viene, manda el de la feature.
func (h *RecommendHandler) parseRecParams(r *http.Request) (service.RecRequest, error) {
	title := r.URL.Query().Get("title")
	if title == "" {
		return service.RecRequest{}, errors.New("title es requerido")
	}

	minRating := h.defaultMinRating
	if raw := r.URL.Query().Get("min_rating"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return service.RecRequest{}, errors.New("min_rating inválido")
		}
		minRating = f
	}

	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	refresh := r.URL.Query().Get("refresh") == "true"

	return service.RecRequest{
		SeedTitle: title,
		MinRating: minRating,
		K:         k,
		Refresh:   refresh,
	}, nil
}

// @Summary Recomendaciones por similitud de descripción
// @Tags recommend
// @Produce json
// @Param title query string true "título semilla (match exacto, case-insensitive)"
// @Param min_rating query number false "rating mínimo (default: filtro global)"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecItem
// @Failure 404 {string} string "libro no encontrado"
// @Router /books/recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	req, err := h.parseRecParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		if errors.Is(err, engine.ErrBookNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// lista vacía es un resultado válido (ningún candidato pasó el filtro)
	_ = json.NewEncoder(w).Encode(items)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones por WebSocket (frames start/progress/result)
// @Tags recommend
// @Param title query string true "título semilla"
// @Param min_rating query number false "rating mínimo"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Success 200 {object} map[string]interface{}
// @Router /ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	req, err := h.parseRecParams(r)
	if err != nil {
		conn.WriteJSON(map[string]any{"type": "error", "error": err.Error()})
		return
	}

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, buscando vecinos…",
	})

	items, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	conn.WriteJSON(map[string]any{
		"type": "progress",
		"msg":  "Ranking por similitud completado",
	})

	// Mensaje final con recomendaciones
	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"seedTitle":   req.SeedTitle,
		"items":       items,
		"generatedAt": time.Now(),
	})
}

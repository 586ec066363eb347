package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/nivethika-g1/SoundSense/internal/service"

	"github.com/go-chi/chi/v5"
)

type AdminHandler struct {
	catalogSvc *service.CatalogService
	recSvc     *service.RecommendService
}

func NewAdminHandler(c *service.CatalogService, r *service.RecommendService) *AdminHandler {
	return &AdminHandler{catalogSvc: c, recSvc: r}
}

// MountAdminRoutes cuelga las rutas de mantenimiento (ya protegidas
// con JWT + AdminOnly por el caller).
func MountAdminRoutes(r chi.Router, h *AdminHandler) {
	r.Post("/admin/reload", h.Reload)
	r.Get("/admin/rec-queries", h.RecentQueries)
}

// @Summary Reconstruir el snapshot desde los CSV y publicarlo
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.CatalogStats
// @Router /admin/reload [post]
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	stats, err := h.catalogSvc.Reload(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(stats)
}

// @Summary Historial de consultas de recomendación (Mongo)
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} models.RecQuery
// @Router /admin/rec-queries [get]
func (h *AdminHandler) RecentQueries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	queries, err := h.recSvc.RecentQueries(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(queries)
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/nivethika-g1/SoundSense/internal/service"
)

type CatalogHandler struct {
	svc *service.CatalogService
}

func NewCatalogHandler(s *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: s}
}

// @Summary Buscar títulos por substring (autocomplete del front)
// @Tags books
// @Produce json
// @Param q query string false "texto a buscar dentro del título"
// @Param limit query int false "límite (default: 20)"
// @Param offset query int false "offset"
// @Success 200 {array} models.Book
// @Router /books/search [get]
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	q := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	books := h.svc.Search(r.Context(), q, limit, offset)
	_ = json.NewEncoder(w).Encode(books)
}

// @Summary Métricas del catálogo (libros, rating promedio, total reviews)
// @Tags catalog
// @Produce json
// @Success 200 {object} models.CatalogStats
// @Router /catalog/stats [get]
func (h *CatalogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.svc.Stats(r.Context()))
}

// @Summary Obtener un libro por título exacto (case-insensitive)
// @Tags books
// @Produce json
// @Param title query string true "título"
// @Success 200 {object} models.Book
// @Failure 404 {string} string "no encontrado"
// @Router /books [get]
func (h *CatalogHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	title := r.URL.Query().Get("title")
	if title == "" {
		http.Error(w, "title es requerido", http.StatusBadRequest)
		return
	}

	book, ok := h.svc.Lookup(r.Context(), title)
	if !ok {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(book)
}

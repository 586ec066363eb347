package engine

import (
	"errors"
	"sort"
	"strings"

	"github.com/nivethika-g1/SoundSense/internal/models"
)

const (
	DefaultK = 5
	MaxK     = 50 // por seguridad, no deja pedir 1000 ítems
)

// ErrBookNotFound: el título semilla no existe en el índice.
var ErrBookNotFound = errors.New("libro no encontrado")

// ErrReviewsUnavailable: el dataset no trae columna de reviews, así que
// hidden gems está deshabilitado para toda la sesión. Se puede (y debe)
// consultar ReviewsAvailable antes de llamar.
var ErrReviewsUnavailable = errors.New("el dataset no trae conteo de reviews")

// Recommend devuelve los k libros más parecidos al título semilla que
// cumplen rating >= minRating. El filtro se aplica DESPUÉS de ordenar
// por similitud: son los k más parecidos elegibles, no los k mejor
// puntuados de un set fijo. Menos de k resultados (incluso cero) es un
// resultado válido, no un error.
func (s *Snapshot) Recommend(seedTitle string, minRating float64, k int) ([]models.RecItem, error) {
	if k <= 0 {
		k = DefaultK
	} else if k > MaxK {
		k = MaxK
	}

	seed, ok := s.titleIdx[strings.ToLower(seedTitle)]
	if !ok {
		return nil, ErrBookNotFound
	}

	type scored struct {
		idx int
		sim float64
	}

	row := s.Sim[seed]
	cands := make([]scored, 0, len(s.Books)-1)
	for j := range s.Books {
		if j == seed {
			continue // la semilla nunca se recomienda a sí misma
		}
		cands = append(cands, scored{idx: j, sim: row[j]})
	}

	// sort estable: empates de similitud conservan el orden por row id
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].sim > cands[j].sim })

	items := make([]models.RecItem, 0, k)
	for _, c := range cands {
		if s.Books[c.idx].Rating < minRating {
			continue
		}
		items = append(items, models.RecItem{Book: s.Books[c.idx], Score: c.sim})
		if len(items) == k {
			break
		}
	}
	return items, nil
}

// HiddenGems: libros con pocas reviews pero buen rating, ordenados por
// rating descendente (empates por row id). Devuelve el set filtrado
// completo; truncarlo para mostrar es decisión del caller.
func (s *Snapshot) HiddenGems(maxReviews int, minRating float64) ([]models.Book, error) {
	if !s.ReviewsAvailable {
		return nil, ErrReviewsUnavailable
	}

	var gems []models.Book
	for _, b := range s.Books {
		if b.Reviews == nil {
			// sin dato de reviews no puede calificar como gem
			continue
		}
		if *b.Reviews <= maxReviews && b.Rating >= minRating {
			gems = append(gems, b)
		}
	}

	sort.SliceStable(gems, func(i, j int) bool { return gems[i].Rating > gems[j].Rating })
	return gems, nil
}

// SearchTitles es el filtro por substring que usa el buscador de la UI
// antes de llamar a Recommend (el engine en sí solo hace lookup exacto).
func (s *Snapshot) SearchTitles(q string, limit, offset int) []models.Book {
	if limit <= 0 {
		limit = 20
	}
	lq := strings.ToLower(q)

	matches := make([]models.Book, 0, limit)
	skipped := 0
	for _, b := range s.Books {
		if lq != "" && !strings.Contains(strings.ToLower(b.Title), lq) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		matches = append(matches, b)
		if len(matches) == limit {
			break
		}
	}
	return matches
}

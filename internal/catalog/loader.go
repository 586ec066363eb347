package catalog

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/nivethika-g1/SoundSense/internal/models"
)

// ErrNoRatingColumn es un error de configuración: sin columna de rating
// no hay dataset utilizable y el arranque debe abortar.
var ErrNoRatingColumn = errors.New("no se encontró columna tipo rating en el catálogo combinado")

const (
	minRatingValue = 0.0
	maxRatingValue = 5.0
)

// columnMapping es la resolución única y tipada de columnas lógicas a
// columnas físicas del merge. Se valida al borde del load, no durante
// la limpieza.
type columnMapping struct {
	rating  int
	desc    int // -1 = ausente (descripciones vacías)
	reviews int // -1 = ausente (hidden gems deshabilitado)
}

// Load hace el inner join de los dos catálogos por (título, autor),
// resuelve columnas, coerciona tipos y limpia. Devuelve los libros con
// row ids densos 0..N-1 y si existe columna de reviews.
func Load(basic, advanced *Table) ([]models.Book, bool, error) {
	titleA, authorA, err := joinKeyColumns(basic)
	if err != nil {
		return nil, false, fmt.Errorf("catálogo básico: %w", err)
	}
	titleB, authorB, err := joinKeyColumns(advanced)
	if err != nil {
		return nil, false, fmt.Errorf("catálogo avanzado: %w", err)
	}

	// columnas del merge: las del básico completas + las del avanzado
	// sin sus claves de join (mismo orden que un merge de tablas normal)
	advKeep := make([]int, 0, len(advanced.Columns))
	mergedCols := append([]string{}, basic.Columns...)
	for i, c := range advanced.Columns {
		if i == titleB || i == authorB {
			continue
		}
		advKeep = append(advKeep, i)
		mergedCols = append(mergedCols, c)
	}

	mapping, err := resolveColumns(mergedCols)
	if err != nil {
		return nil, false, err
	}

	// índice del catálogo avanzado por (título, autor); si hay claves
	// repetidas se queda la primera
	advByKey := make(map[[2]string][]string, len(advanced.Rows))
	for _, row := range advanced.Rows {
		key := [2]string{advanced.cell(row, titleB), advanced.cell(row, authorB)}
		if key[0] == "" {
			continue
		}
		if _, ok := advByKey[key]; !ok {
			advByKey[key] = row
		}
	}

	// ==================== MERGE + LIMPIEZA ====================
	// Orden: coerción de rating → drop sin rating → drop duplicados
	// (título, autor) → ids densos. El orden importa: una fila duplicada
	// con rating inválido no debe "tapar" a la válida que viene después.
	seen := make(map[[2]string]bool, len(basic.Rows))
	var books []models.Book
	var droppedRating, droppedDup int

	for _, row := range basic.Rows {
		title := basic.cell(row, titleA)
		author := basic.cell(row, authorA)
		if title == "" {
			continue
		}

		key := [2]string{title, author}
		advRow, ok := advByKey[key]
		if !ok {
			// inner join: filas presentes en un solo catálogo se descartan
			continue
		}

		// pad para que las columnas del avanzado siempre caigan en la
		// misma posición aunque la fila básica venga corta
		merged := append(padTo(row, len(basic.Columns)), pick(advanced, advRow, advKeep)...)

		rating, ok := parseRating(cellAt(merged, mapping.rating))
		if !ok {
			droppedRating++
			continue
		}

		if seen[key] {
			droppedDup++
			continue
		}
		seen[key] = true

		desc := ""
		if mapping.desc >= 0 {
			desc = cellAt(merged, mapping.desc)
		}

		var reviews *int
		if mapping.reviews >= 0 {
			if n, ok := parseReviews(cellAt(merged, mapping.reviews)); ok {
				reviews = &n
			}
			// reviews no parseable NO bota la fila, solo apaga la
			// feature para este libro
		}

		books = append(books, models.Book{
			Idx:         len(books),
			Title:       title,
			Author:      author,
			Rating:      rating,
			Description: desc,
			Reviews:     reviews,
		})
	}

	log.Printf("[catalog] %d libros limpios (descartados: %d sin rating, %d duplicados)",
		len(books), droppedRating, droppedDup)

	return books, mapping.reviews >= 0, nil
}

// resolveColumns hace el binding por substring UNA sola vez:
// primera columna cuyo nombre contiene "rating" / "desc" / "review"
// (case-insensitive). Solo rating es obligatoria.
func resolveColumns(cols []string) (columnMapping, error) {
	m := columnMapping{rating: -1, desc: -1, reviews: -1}

	for i, c := range cols {
		lc := strings.ToLower(c)
		if m.rating < 0 && strings.Contains(lc, "rating") {
			m.rating = i
		}
		if m.desc < 0 && strings.Contains(lc, "desc") {
			m.desc = i
		}
		if m.reviews < 0 && strings.Contains(lc, "review") {
			m.reviews = i
		}
	}

	if m.rating < 0 {
		return m, ErrNoRatingColumn
	}
	if m.desc < 0 {
		log.Println("[catalog] sin columna de descripción, vectores vacíos")
	}
	if m.reviews < 0 {
		log.Println("[catalog] sin columna de reviews, hidden gems deshabilitado")
	}
	return m, nil
}

// joinKeyColumns ubica las columnas de título y autor de una tabla.
func joinKeyColumns(t *Table) (titleCol, authorCol int, err error) {
	titleCol, authorCol = -1, -1
	for i, c := range t.Columns {
		lc := strings.ToLower(c)
		if titleCol < 0 && (strings.Contains(lc, "name") || strings.Contains(lc, "title")) {
			titleCol = i
		}
		if authorCol < 0 && strings.Contains(lc, "author") {
			authorCol = i
		}
	}
	if titleCol < 0 || authorCol < 0 {
		return -1, -1, errors.New("faltan columnas de título/autor para el join")
	}
	return titleCol, authorCol, nil
}

// parseRating acepta solo números finitos dentro del rango [0, 5].
// Valores no parseables se tratan como faltantes (la fila se descarta),
// nunca se convierten en cero.
func parseRating(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	if r < minRatingValue || r > maxRatingValue {
		return 0, false
	}
	return r, true
}

// parseReviews tolera celdas con decimales ("1442.0") y separador de miles.
func parseReviews(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return int(f), true
}

func padTo(row []string, n int) []string {
	out := make([]string, n)
	copy(out, row)
	return out
}

func pick(t *Table, row []string, cols []int) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, t.cell(row, c))
	}
	return out
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

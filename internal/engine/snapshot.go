package engine

import (
	"log"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/nivethika-g1/SoundSense/internal/models"
)

// Snapshot es el modelo completo e inmutable de una generación de datos:
// libros limpios + matriz de similitudes + índice de títulos. Una vez
// construido solo se lee, así que cualquier cantidad de consultas
// concurrentes es segura sin locks. Si cambia el dataset se construye
// un Snapshot nuevo y se intercambia completo (nunca mutación parcial).
//
// Costo conocido: O(N²) memoria por la matriz y O(N·V) por los vectores.
// Para los catálogos de Audible (miles de filas) alcanza de sobra; este
// diseño no intenta escalar más allá de eso.
type Snapshot struct {
	Books            []models.Book
	Sim              [][]float64
	ReviewsAvailable bool

	titleIdx map[string]int
	stats    models.CatalogStats
}

// BuildSnapshot vectoriza las descripciones y precalcula la matriz
// N×N de similitud coseno. Determinista dado el mismo record set.
func BuildSnapshot(books []models.Book, reviewsAvailable bool, maxVocab int) *Snapshot {
	start := time.Now()
	n := len(books)

	docs := make([]string, n)
	for i, b := range books {
		docs[i] = b.Description
	}

	vec := fitVectorizer(docs, maxVocab)
	vectors := make([][]float64, n)
	for i, d := range docs {
		vectors[i] = vec.transform(d)
	}

	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
	}

	// triángulo superior repartido en shards; cada goroutine toma filas
	// i = shard, shard+s, shard+2s, … y se espeja a la mitad inferior
	shards := runtime.NumCPU()
	if shards > n {
		shards = n
	}
	var wg sync.WaitGroup
	for shard := 0; shard < shards; shard++ {
		wg.Add(1)
		go func(shard int) {
			defer wg.Done()
			for i := shard; i < n; i += shards {
				for j := i; j < n; j++ {
					s := dot(vectors[i], vectors[j])
					sim[i][j] = s
					sim[j][i] = s
				}
			}
		}(shard)
	}
	wg.Wait()

	// índice título (en minúsculas) -> primera fila; colisiones
	// posteriores quedan sombreadas, igual que el lookup original
	titleIdx := make(map[string]int, n)
	for i, b := range books {
		key := strings.ToLower(b.Title)
		if _, ok := titleIdx[key]; !ok {
			titleIdx[key] = i
		}
	}

	snap := &Snapshot{
		Books:            books,
		Sim:              sim,
		ReviewsAvailable: reviewsAvailable,
		titleIdx:         titleIdx,
		stats:            computeStats(books, reviewsAvailable),
	}

	log.Printf("[engine] snapshot listo: %d libros, vocabulario=%d, matriz %dx%d en %s",
		n, len(vec.idf), n, n, time.Since(start))

	return snap
}

// dot asume vectores normalizados L2: el producto punto ES el coseno.
// Coseno contra un vector cero es 0 por definición.
func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func computeStats(books []models.Book, reviewsAvailable bool) models.CatalogStats {
	st := models.CatalogStats{Books: len(books)}
	if len(books) == 0 {
		return st
	}

	var sum float64
	var totalReviews int64
	for _, b := range books {
		sum += b.Rating
		if b.Reviews != nil {
			totalReviews += int64(*b.Reviews)
		}
	}
	st.AverageRating = sum / float64(len(books))
	if reviewsAvailable {
		st.TotalReviews = &totalReviews
	}
	return st
}

// Stats devuelve las métricas del catálogo (dashboard).
func (s *Snapshot) Stats() models.CatalogStats { return s.stats }

// Lookup busca un libro por título exacto (case-insensitive).
func (s *Snapshot) Lookup(title string) (models.Book, bool) {
	idx, ok := s.titleIdx[strings.ToLower(title)]
	if !ok {
		return models.Book{}, false
	}
	return s.Books[idx], true
}

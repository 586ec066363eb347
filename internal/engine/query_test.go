package engine

import (
	"testing"

	"github.com/nivethika-g1/SoundSense/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendScenario(t *testing.T) {
	snap := BuildSnapshot(specBooks(), true, 0)

	// Beta es el más parecido y pasa el piso de rating; Gamma queda
	// afuera por rating (2.0 < 3.0)
	items, err := snap.Recommend("alpha", 3.0, 5)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Beta", items[0].Book.Title)
	assert.Greater(t, items[0].Score, 0.0)
}

func TestRecommendNotFound(t *testing.T) {
	snap := BuildSnapshot(specBooks(), true, 0)

	items, err := snap.Recommend("unknown title", 0.0, 5)
	assert.ErrorIs(t, err, ErrBookNotFound)
	assert.Nil(t, items) // sin resultado parcial
}

func TestRecommendExcludesSeed(t *testing.T) {
	snap := BuildSnapshot(specBooks(), true, 0)

	items, err := snap.Recommend("Alpha", 0.0, 50)
	require.NoError(t, err)

	for _, it := range items {
		assert.NotEqual(t, "Alpha", it.Book.Title)
	}
	assert.Len(t, items, 2)
}

func TestRecommendFilterAfterSort(t *testing.T) {
	snap := BuildSnapshot(specBooks(), true, 0)

	// sin piso de rating: Beta (similar) antes que Gamma (similitud 0)
	items, err := snap.Recommend("alpha", 0.0, 5)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Beta", items[0].Book.Title)
	assert.Equal(t, "Gamma", items[1].Book.Title)

	// todos los devueltos cumplen el filtro
	items, err = snap.Recommend("alpha", 3.0, 5)
	require.NoError(t, err)
	for _, it := range items {
		assert.GreaterOrEqual(t, it.Book.Rating, 3.0)
	}
}

func TestRecommendZeroResults(t *testing.T) {
	snap := BuildSnapshot(specBooks(), true, 0)

	// piso imposible: cero resultados es un resultado válido, no error
	items, err := snap.Recommend("alpha", 5.0, 5)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRecommendIdempotent(t *testing.T) {
	snap := BuildSnapshot(specBooks(), true, 0)

	a, err := snap.Recommend("alpha", 0.0, 5)
	require.NoError(t, err)
	b, err := snap.Recommend("alpha", 0.0, 5)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRecommendStableTieBreak(t *testing.T) {
	// dos vecinos con descripciones idénticas empatan en similitud:
	// debe ganar el row id más chico
	books := []models.Book{
		{Idx: 0, Title: "Seed", Author: "X", Rating: 4.0, Description: "space opera saga"},
		{Idx: 1, Title: "Twin One", Author: "Y", Rating: 4.0, Description: "space adventure"},
		{Idx: 2, Title: "Twin Two", Author: "Z", Rating: 4.0, Description: "space adventure"},
	}
	snap := BuildSnapshot(books, false, 0)

	items, err := snap.Recommend("seed", 0.0, 5)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, items[0].Score, items[1].Score)
	assert.Equal(t, "Twin One", items[0].Book.Title)
	assert.Equal(t, "Twin Two", items[1].Book.Title)
}

func TestRecommendKDefaultsAndCap(t *testing.T) {
	books := make([]models.Book, 0, 80)
	books = append(books, models.Book{Idx: 0, Title: "Seed", Author: "X", Rating: 4.0, Description: "common theme"})
	for i := 1; i < 80; i++ {
		books = append(books, models.Book{
			Idx: i, Title: titleN(i), Author: "X", Rating: 4.0,
			Description: "common theme variations",
		})
	}
	snap := BuildSnapshot(books, false, 0)

	// k <= 0 usa el default
	items, err := snap.Recommend("seed", 0.0, 0)
	require.NoError(t, err)
	assert.Len(t, items, DefaultK)

	// k gigante se recorta a MaxK
	items, err = snap.Recommend("seed", 0.0, 1000)
	require.NoError(t, err)
	assert.Len(t, items, MaxK)
}

func titleN(i int) string {
	return "Book " + string(rune('A'+i%26)) + string(rune('a'+i/26))
}

// ====== hidden gems ======

func gemsBooks() []models.Book {
	return []models.Book{
		{Idx: 0, Title: "Alpha", Author: "Ana", Rating: 4.6, Description: "x", Reviews: intp(10)},
		{Idx: 1, Title: "Beta", Author: "Beto", Rating: 4.9, Description: "y", Reviews: intp(60)},
		{Idx: 2, Title: "Gamma", Author: "Carla", Rating: 4.7, Description: "z", Reviews: intp(5)},
	}
}

func TestHiddenGemsScenario(t *testing.T) {
	snap := BuildSnapshot(gemsBooks(), true, 0)

	gems, err := snap.HiddenGems(50, 4.5)
	require.NoError(t, err)

	// Beta queda afuera por reviews (60 > 50); orden por rating desc
	require.Len(t, gems, 2)
	assert.Equal(t, "Gamma", gems[0].Title)
	assert.Equal(t, "Alpha", gems[1].Title)
}

func TestHiddenGemsPredicate(t *testing.T) {
	snap := BuildSnapshot(gemsBooks(), true, 0)

	gems, err := snap.HiddenGems(100, 4.8)
	require.NoError(t, err)

	for i, g := range gems {
		require.NotNil(t, g.Reviews)
		assert.LessOrEqual(t, *g.Reviews, 100)
		assert.GreaterOrEqual(t, g.Rating, 4.8)
		if i > 0 {
			// no-creciente por rating
			assert.LessOrEqual(t, g.Rating, gems[i-1].Rating)
		}
	}
}

func TestHiddenGemsStableTieBreak(t *testing.T) {
	books := []models.Book{
		{Idx: 0, Title: "First", Author: "A", Rating: 4.7, Reviews: intp(10)},
		{Idx: 1, Title: "Second", Author: "B", Rating: 4.7, Reviews: intp(20)},
	}
	snap := BuildSnapshot(books, true, 0)

	gems, err := snap.HiddenGems(100, 4.0)
	require.NoError(t, err)
	require.Len(t, gems, 2)
	assert.Equal(t, "First", gems[0].Title)
	assert.Equal(t, "Second", gems[1].Title)
}

func TestHiddenGemsUnavailable(t *testing.T) {
	snap := BuildSnapshot(specBooks(), false, 0)

	_, err := snap.HiddenGems(50, 4.5)
	assert.ErrorIs(t, err, ErrReviewsUnavailable)
}

func TestHiddenGemsSkipsBooksWithoutReviewData(t *testing.T) {
	books := []models.Book{
		{Idx: 0, Title: "Con data", Author: "A", Rating: 4.9, Reviews: intp(5)},
		{Idx: 1, Title: "Sin data", Author: "B", Rating: 5.0, Reviews: nil},
	}
	snap := BuildSnapshot(books, true, 0)

	gems, err := snap.HiddenGems(100, 4.0)
	require.NoError(t, err)
	require.Len(t, gems, 1)
	assert.Equal(t, "Con data", gems[0].Title)
}

func TestHiddenGemsEmptyResult(t *testing.T) {
	snap := BuildSnapshot(gemsBooks(), true, 0)

	gems, err := snap.HiddenGems(1, 5.0)
	require.NoError(t, err)
	assert.Empty(t, gems)
}

// ====== search ======

func TestSearchTitles(t *testing.T) {
	snap := BuildSnapshot(specBooks(), true, 0)

	got := snap.SearchTitles("alp", 20, 0)
	require.Len(t, got, 1)
	assert.Equal(t, "Alpha", got[0].Title)

	// sin query devuelve todo (hasta el límite)
	got = snap.SearchTitles("", 2, 0)
	assert.Len(t, got, 2)

	got = snap.SearchTitles("", 2, 2)
	require.Len(t, got, 1)
	assert.Equal(t, "Gamma", got[0].Title)
}

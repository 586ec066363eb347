package engine

import (
	"testing"

	"github.com/nivethika-g1/SoundSense/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

// corpus del caso de uso típico: dos thrillers parecidos y un libro
// de cocina que no tiene nada que ver
func specBooks() []models.Book {
	return []models.Book{
		{Idx: 0, Title: "Alpha", Author: "Ana", Rating: 4.0, Description: "a spy thriller", Reviews: intp(10)},
		{Idx: 1, Title: "Beta", Author: "Beto", Rating: 4.8, Description: "a spy thriller sequel", Reviews: intp(60)},
		{Idx: 2, Title: "Gamma", Author: "Carla", Rating: 2.0, Description: "a cooking guide", Reviews: intp(5)},
	}
}

func TestSimilarityMatrixSymmetric(t *testing.T) {
	snap := BuildSnapshot(specBooks(), true, 0)

	n := len(snap.Books)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, snap.Sim[i][j], snap.Sim[j][i], "S[%d][%d] != S[%d][%d]", i, j, j, i)
		}
	}
}

func TestSelfSimilarityIsOne(t *testing.T) {
	snap := BuildSnapshot(specBooks(), true, 0)

	for i := range snap.Books {
		assert.InDelta(t, 1.0, snap.Sim[i][i], 1e-9, "S[%d][%d]", i, i)
	}
}

func TestZeroVectorSimilarities(t *testing.T) {
	books := specBooks()
	books = append(books, models.Book{Idx: 3, Title: "Delta", Author: "Dani", Rating: 3.0, Description: ""})

	snap := BuildSnapshot(books, true, 0)

	// descripción vacía => vector cero => similitud 0 contra todo,
	// incluida la diagonal
	for j := range snap.Books {
		assert.Zero(t, snap.Sim[3][j])
		assert.Zero(t, snap.Sim[j][3])
	}
}

func TestSimilarityOrdering(t *testing.T) {
	snap := BuildSnapshot(specBooks(), true, 0)

	// Beta comparte "spy thriller" con Alpha, Gamma no comparte nada
	assert.Greater(t, snap.Sim[0][1], snap.Sim[0][2])
	assert.Zero(t, snap.Sim[0][2])
}

func TestTitleIndexShadowsDuplicates(t *testing.T) {
	books := []models.Book{
		{Idx: 0, Title: "Alpha", Author: "Ana", Rating: 4.0},
		{Idx: 1, Title: "ALPHA", Author: "Beto", Rating: 2.0}, // mismo título, otro autor
	}
	snap := BuildSnapshot(books, false, 0)

	// lookup por título devuelve siempre la primera fila
	got, ok := snap.Lookup("alpha")
	require.True(t, ok)
	assert.Equal(t, 0, got.Idx)
	assert.Equal(t, "Ana", got.Author)
}

func TestLookupCaseInsensitive(t *testing.T) {
	snap := BuildSnapshot(specBooks(), true, 0)

	for _, q := range []string{"alpha", "Alpha", "ALPHA"} {
		got, ok := snap.Lookup(q)
		require.True(t, ok, "query %q", q)
		assert.Equal(t, "Alpha", got.Title)
	}

	_, ok := snap.Lookup("no existe")
	assert.False(t, ok)
}

func TestStats(t *testing.T) {
	snap := BuildSnapshot(specBooks(), true, 0)

	st := snap.Stats()
	assert.Equal(t, 3, st.Books)
	assert.InDelta(t, (4.0+4.8+2.0)/3, st.AverageRating, 1e-9)
	require.NotNil(t, st.TotalReviews)
	assert.Equal(t, int64(75), *st.TotalReviews)
}

func TestStatsWithoutReviews(t *testing.T) {
	books := []models.Book{{Idx: 0, Title: "Alpha", Author: "Ana", Rating: 4.0}}
	snap := BuildSnapshot(books, false, 0)

	assert.Nil(t, snap.Stats().TotalReviews)
}

func TestBuildSnapshotDeterministic(t *testing.T) {
	a := BuildSnapshot(specBooks(), true, 0)
	b := BuildSnapshot(specBooks(), true, 0)

	require.Equal(t, len(a.Sim), len(b.Sim))
	for i := range a.Sim {
		assert.Equal(t, a.Sim[i], b.Sim[i], "fila %d", i)
	}
}

func TestBuildSnapshotEmptyCorpus(t *testing.T) {
	snap := BuildSnapshot(nil, false, 0)

	assert.Empty(t, snap.Books)
	assert.Empty(t, snap.Sim)
	assert.Zero(t, snap.Stats().Books)
}

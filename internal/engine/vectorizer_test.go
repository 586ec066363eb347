package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	toks := tokenize("The SPY, a thriller... about spies!")

	// minúsculas, sin stop words ("the", "a", "about"), sin tokens de 1 char
	assert.Equal(t, []string{"spy", "thriller", "spies"}, toks)
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, tokenize(""))
	assert.Empty(t, tokenize("a I ..."))
}

func TestFitVectorizerVocabCap(t *testing.T) {
	docs := []string{
		"uno uno uno dos dos tres",
		"uno dos cuatro",
	}
	v := fitVectorizer(docs, 2)

	// se quedan los 2 términos más frecuentes del corpus: uno (4) y dos (3)
	require.Len(t, v.vocab, 2)
	assert.Contains(t, v.vocab, "uno")
	assert.Contains(t, v.vocab, "dos")
	assert.NotContains(t, v.vocab, "tres")
}

func TestFitVectorizerFrequencyTieAlphabetical(t *testing.T) {
	docs := []string{"zeta alfa"}
	v := fitVectorizer(docs, 1)

	// empate de frecuencia: gana el orden alfabético (determinismo)
	require.Len(t, v.vocab, 1)
	assert.Contains(t, v.vocab, "alfa")
}

func TestTransformEmptyDocIsZeroVector(t *testing.T) {
	docs := []string{"spy thriller", ""}
	v := fitVectorizer(docs, 0)

	vec := v.transform("")
	for _, x := range vec {
		assert.Zero(t, x)
	}
}

func TestTransformIsL2Normalized(t *testing.T) {
	docs := []string{"spy thriller sequel", "cooking guide", "spy cooking"}
	v := fitVectorizer(docs, 0)

	for _, d := range docs {
		vec := v.transform(d)
		var norm float64
		for _, x := range vec {
			norm += x * x
		}
		assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9, "doc %q", d)
	}
}

func TestTransformOutOfVocabularyIgnored(t *testing.T) {
	v := fitVectorizer([]string{"spy thriller"}, 0)

	vec := v.transform("palabras nunca vistas")
	for _, x := range vec {
		assert.Zero(t, x)
	}
}

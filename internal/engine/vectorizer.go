package engine

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// vectorizer es un TF-IDF clásico: vocabulario acotado por frecuencia
// de corpus, idf suavizado y filas normalizadas L2 (así el coseno entre
// dos filas es un simple producto punto).
type vectorizer struct {
	vocab map[string]int // término -> columna
	idf   []float64
}

// tokenize: minúsculas, corridas de letras/dígitos, tokens de al menos
// 2 caracteres, sin stop words.
func tokenize(s string) []string {
	raw := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	toks := raw[:0]
	for _, t := range raw {
		if len(t) < 2 {
			continue
		}
		if _, skip := stopWords[t]; skip {
			continue
		}
		toks = append(toks, t)
	}
	return toks
}

// fitVectorizer arma el vocabulario sobre el corpus completo: los
// maxVocab términos más frecuentes (empates por orden alfabético, para
// que el build sea determinista).
func fitVectorizer(docs []string, maxVocab int) *vectorizer {
	counts := make(map[string]int)
	docFreq := make(map[string]int)

	for _, d := range docs {
		seen := make(map[string]bool)
		for _, t := range tokenize(d) {
			counts[t]++
			if !seen[t] {
				seen[t] = true
				docFreq[t]++
			}
		}
	}

	terms := make([]string, 0, len(counts))
	for t := range counts {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if maxVocab > 0 && len(terms) > maxVocab {
		terms = terms[:maxVocab]
	}
	sort.Strings(terms) // columnas en orden alfabético

	v := &vectorizer{
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	n := len(docs)
	for col, t := range terms {
		v.vocab[t] = col
		// idf suavizado: ln((1+n)/(1+df)) + 1
		v.idf[col] = math.Log(float64(1+n)/float64(1+docFreq[t])) + 1
	}
	return v
}

// transform devuelve el vector tf·idf normalizado L2 del documento.
// Documento vacío (o todo fuera de vocabulario) => vector cero.
func (v *vectorizer) transform(doc string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, t := range tokenize(doc) {
		if col, ok := v.vocab[t]; ok {
			vec[col] += v.idf[col]
		}
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

package models

// Book es un audiolibro ya limpio (post merge de los dos catálogos).
// Idx es el row id denso que indexa la matriz de similitudes.
type Book struct {
	Idx         int     `json:"idx" bson:"idx"`
	Title       string  `json:"title" bson:"title"`
	Author      string  `json:"author" bson:"author"`
	Rating      float64 `json:"rating" bson:"rating"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	// Reviews es nil si el dataset no trae columna de reviews
	// o si la celda no se pudo parsear.
	Reviews *int `json:"reviews,omitempty" bson:"reviews,omitempty"`
}

// RecItem es un libro recomendado junto con su score de similitud.
type RecItem struct {
	Book  Book    `json:"book" bson:"book"`
	Score float64 `json:"score" bson:"score"`
}

// CatalogStats es la fila de métricas del dashboard.
type CatalogStats struct {
	Books         int     `json:"books"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  *int64  `json:"totalReviews,omitempty"`
}

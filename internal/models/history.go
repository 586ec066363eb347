package models

import "time"

// RecQuery es el historial de consultas de recomendación que se
// guarda en Mongo (best-effort, nunca rompe la respuesta).
type RecQuery struct {
	ID               string    `bson:"_id,omitempty"    json:"id"`
	SeedTitle        string    `bson:"seedTitle"        json:"seedTitle"`
	Algo             string    `bson:"algo"             json:"algo"`
	SimilarityMetric string    `bson:"similarityMetric" json:"similarityMetric"`
	Params           any       `bson:"params"           json:"params"`
	Items            []RecItem `bson:"items"            json:"items"`
	CreatedAt        time.Time `bson:"createdAt"        json:"createdAt"`
}

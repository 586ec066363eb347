package repository

import (
	"context"

	"github.com/nivethika-g1/SoundSense/internal/db"
	"github.com/nivethika-g1/SoundSense/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HistoryRepository guarda el historial de consultas de recomendación.
type HistoryRepository struct {
	col *mongo.Collection
}

// NewHistoryRepository devuelve nil si Mongo no está configurado;
// los servicios chequean nil antes de usarlo.
func NewHistoryRepository() *HistoryRepository {
	if db.DB() == nil {
		return nil
	}
	return &HistoryRepository{col: db.DB().Collection("rec_queries")}
}

func (r *HistoryRepository) Insert(ctx context.Context, q *models.RecQuery) error {
	_, err := r.col.InsertOne(ctx, q)
	return err
}

// Recent devuelve las últimas consultas, más nuevas primero.
func (r *HistoryRepository) Recent(ctx context.Context, limit int) ([]models.RecQuery, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RecQuery
	for cur.Next(ctx) {
		var q models.RecQuery
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, cur.Err()
}

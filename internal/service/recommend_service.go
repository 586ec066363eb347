package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nivethika-g1/SoundSense/internal/cache"
	"github.com/nivethika-g1/SoundSense/internal/engine"
	"github.com/nivethika-g1/SoundSense/internal/models"
	"github.com/nivethika-g1/SoundSense/internal/repository"
)

type RecommendService struct {
	holder  *SnapshotHolder
	history *repository.HistoryRepository // nil si no hay Mongo
}

func NewRecommendService(holder *SnapshotHolder, history *repository.HistoryRepository) *RecommendService {
	return &RecommendService{holder: holder, history: history}
}

// ====== Petición de recomendaciones (solo parámetros que sí cambian en runtime) ======

type RecRequest struct {
	SeedTitle string
	MinRating float64
	K         int
	Refresh   bool
}

func cacheKey(req RecRequest) string {
	// Cachea por semilla + filtros (no incluye refresh, refresh solo decide si usar cache)
	return fmt.Sprintf("rec:book:%s:min:%.2f:k:%d", strings.ToLower(req.SeedTitle), req.MinRating, req.K)
}

// Recommend resuelve la consulta contra el snapshot vigente, con cache
// Redis por delante e historial en Mongo por detrás.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.RecItem, error) {
	// defaults y límites para K (antes del cache, para que la key sea estable)
	if req.K <= 0 {
		req.K = engine.DefaultK
	} else if req.K > engine.MaxK {
		req.K = engine.MaxK
	}

	// 1) Cache Redis (solo si refresh = false)
	var cached []models.RecItem
	if !req.Refresh {
		if ok, err := cache.GetJSON(ctx, cacheKey(req), &cached); err == nil && ok {
			return cached, nil
		}
	}

	// 2) Consulta real contra el snapshot
	snap := s.holder.Get()
	items, err := snap.Recommend(req.SeedTitle, req.MinRating, req.K)
	if err != nil {
		return nil, err
	}

	// 3) Historial en Mongo (no rompemos la respuesta si falla)
	if s.history != nil {
		hist := &models.RecQuery{
			SeedTitle:        req.SeedTitle,
			Algo:             "content-tfidf",
			SimilarityMetric: "cosine",
			Params: map[string]any{
				"k":          req.K,
				"min_rating": req.MinRating,
				"refresh":    req.Refresh,
			},
			Items:     items,
			CreatedAt: time.Now(),
		}
		if err := s.history.Insert(ctx, hist); err != nil {
			log.Printf("error guardando consulta en Mongo: %v", err)
		}
	}

	// 4) Cachear en Redis (1 hora)
	if err := cache.SetJSON(ctx, cacheKey(req), items, 60*60); err != nil {
		log.Printf("error cacheando recomendación en Redis: %v", err)
	}

	return items, nil
}

// HiddenGems devuelve el set completo de gems más su conteo. El caller
// debe chequear ReviewsAvailable() antes; si igual llama sin datos de
// reviews recibe engine.ErrReviewsUnavailable.
func (s *RecommendService) HiddenGems(ctx context.Context, maxReviews int, minRating float64) ([]models.Book, int, error) {
	gems, err := s.holder.Get().HiddenGems(maxReviews, minRating)
	if err != nil {
		return nil, 0, err
	}
	return gems, len(gems), nil
}

// ReviewsAvailable indica si el dataset cargado habilita hidden gems.
func (s *RecommendService) ReviewsAvailable() bool {
	return s.holder.Get().ReviewsAvailable
}

// RecentQueries lista el historial guardado en Mongo.
func (s *RecommendService) RecentQueries(ctx context.Context, limit int) ([]models.RecQuery, error) {
	if s.history == nil {
		return []models.RecQuery{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	return s.history.Recent(ctx, limit)
}

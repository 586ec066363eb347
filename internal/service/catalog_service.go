package service

import (
	"context"
	"log"
	"time"

	"github.com/nivethika-g1/SoundSense/internal/catalog"
	"github.com/nivethika-g1/SoundSense/internal/config"
	"github.com/nivethika-g1/SoundSense/internal/engine"
	"github.com/nivethika-g1/SoundSense/internal/models"
)

// CatalogService expone búsqueda de títulos y métricas sobre el
// snapshot vigente, y el rebuild completo (load → build → swap).
type CatalogService struct {
	cfg    *config.Config
	holder *SnapshotHolder
}

func NewCatalogService(cfg *config.Config, holder *SnapshotHolder) *CatalogService {
	return &CatalogService{cfg: cfg, holder: holder}
}

// BuildFromSources corre el pipeline completo Loader → Builder y
// devuelve el snapshot nuevo (sin publicarlo todavía).
func BuildFromSources(cfg *config.Config) (*engine.Snapshot, error) {
	basic, err := catalog.ReadCSV(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	advanced, err := catalog.ReadCSV(cfg.AdvancedPath)
	if err != nil {
		return nil, err
	}

	books, reviewsOK, err := catalog.Load(basic, advanced)
	if err != nil {
		return nil, err
	}

	return engine.BuildSnapshot(books, reviewsOK, cfg.MaxVocab), nil
}

// Reload reconstruye desde los CSV y publica el snapshot nuevo de un
// solo swap. Las consultas en vuelo terminan contra el viejo.
func (s *CatalogService) Reload(ctx context.Context) (models.CatalogStats, error) {
	start := time.Now()

	snap, err := BuildFromSources(s.cfg)
	if err != nil {
		return models.CatalogStats{}, err
	}

	s.holder.Swap(snap)
	log.Printf("[catalog] reload completo en %s", time.Since(start))
	return snap.Stats(), nil
}

func (s *CatalogService) Search(ctx context.Context, q string, limit, offset int) []models.Book {
	return s.holder.Get().SearchTitles(q, limit, offset)
}

func (s *CatalogService) Stats(ctx context.Context) models.CatalogStats {
	return s.holder.Get().Stats()
}

func (s *CatalogService) Lookup(ctx context.Context, title string) (models.Book, bool) {
	return s.holder.Get().Lookup(title)
}

package main

import (
	"log"
	"net/http"

	_ "github.com/nivethika-g1/SoundSense/docs" // swagger docs

	"github.com/nivethika-g1/SoundSense/internal/cache"
	"github.com/nivethika-g1/SoundSense/internal/config"
	"github.com/nivethika-g1/SoundSense/internal/db"
	"github.com/nivethika-g1/SoundSense/internal/handler"
	"github.com/nivethika-g1/SoundSense/internal/repository"
	"github.com/nivethika-g1/SoundSense/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title SoundSense Audiobook Recommender API
// @version 1.0
// @description Recomendador de audiolibros por similitud de descripciones (TF-IDF + coseno)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis (ambos opcionales)
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// ============================
	// Pipeline: Loader → Builder
	// ============================
	// Sin columna de rating no se expone ningún engine a medias:
	// el arranque aborta acá.
	snap, err := service.BuildFromSources(cfg)
	if err != nil {
		log.Fatalf("[startup] no se pudo construir el snapshot: %v", err)
	}
	holder := service.NewSnapshotHolder(snap)

	// repos
	historyRepo := repository.NewHistoryRepository()

	// services
	authSvc := service.NewAuthService(cfg)
	catalogSvc := service.NewCatalogService(cfg, holder)
	recSvc := service.NewRecommendService(holder, historyRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	recH := handler.NewRecommendHandler(recSvc, cfg.DefaultMinScore)
	gemsH := handler.NewGemsHandler(recSvc)
	adminH := handler.NewAdminHandler(catalogSvc, recSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/login", authH.Login)

	// Catálogo
	r.Get("/books", catalogH.GetByTitle)
	r.Get("/books/search", catalogH.Search)
	r.Get("/catalog/stats", catalogH.Stats)

	// Recomendaciones
	r.Get("/books/recommendations", recH.GetRecommendations)
	r.Get("/books/hidden-gems", gemsH.GetHiddenGems)

	// WebSocket
	r.Get("/ws/recommendations", recH.GetRecommendationsWS)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)
		r.Use(handler.AdminOnly())

		// --- mantenimiento del snapshot / historial ---
		handler.MountAdminRoutes(r, adminH)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}

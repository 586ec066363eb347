package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	CatalogPath     string
	AdvancedPath    string
	MongoURI        string
	MongoDB         string
	RedisAddr       string
	RedisPass       string
	JWTSecret       string
	HTTPPort        string
	AdminEmail      string
	AdminPassword   string
	MaxVocab        int
	DefaultMinScore float64
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		CatalogPath:   getEnv("CATALOG_CSV", "data/Audible_Catlog.csv"),
		AdvancedPath:  getEnv("CATALOG_ADVANCED_CSV", "data/Audible_Catlog_Advanced_Features.csv"),
		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDB:       getEnv("MONGO_DB", "soundsense"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPass:     getEnv("REDIS_PASSWORD", ""),
		JWTSecret:     getEnv("JWT_SECRET", "super-secret"),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@soundsense.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
		MaxVocab:      getEnvInt("TFIDF_MAX_VOCAB", 5000),
		// filtro de rating por defecto; cada feature puede sobreescribirlo
		DefaultMinScore: getEnvFloat("DEFAULT_MIN_RATING", 3.5),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] %s inválido (%q), usando %d\n", key, v, def)
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[config] %s inválido (%q), usando %.1f\n", key, v, def)
		return def
	}
	return f
}

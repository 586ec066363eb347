package db

import (
	"context"
	"log"
	"time"

	"github.com/nivethika-g1/SoundSense/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

// InitMongo conecta a Mongo solo si MONGO_URI está configurado.
// Sin Mongo el backend funciona igual, solo que no guarda historial.
func InitMongo(cfg *config.Config) {
	if cfg.MongoURI == "" {
		log.Println("[mongo] MONGO_URI vacío, historial deshabilitado")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("[mongo] error conectando: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("[mongo] ping falló: %v", err)
	}

	mongoClient = client
	mongoDB = client.Database(cfg.MongoDB)
	log.Printf("[mongo] conectado a %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)
}

// DB devuelve nil si Mongo no fue inicializado.
func DB() *mongo.Database {
	return mongoDB
}

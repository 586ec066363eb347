package service

import (
	"fmt"
	"log"
	"time"

	"github.com/nivethika-g1/SoundSense/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService maneja el login del admin (único usuario, viene de env).
// El password configurado se hashea al arrancar y solo se compara con
// bcrypt, nunca en texto plano.
type AuthService struct {
	adminEmail string
	adminHash  []byte
	jwtSecret  []byte
}

func NewAuthService(cfg *config.Config) *AuthService {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("[auth] no se pudo hashear el password admin: %v", err)
	}
	return &AuthService{
		adminEmail: cfg.AdminEmail,
		adminHash:  hash,
		jwtSecret:  []byte(cfg.JWTSecret),
	}
}

// Login valida credenciales y emite un JWT con role=admin (24h).
func (s *AuthService) Login(email, password string) (string, error) {
	if email != s.adminEmail {
		return "", fmt.Errorf("credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)); err != nil {
		return "", fmt.Errorf("credenciales inválidas")
	}

	claims := jwt.MapClaims{
		"sub":  1,
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

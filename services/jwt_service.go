package services

import (
	"errors"
	"fmt"
	"jobboard-http-service/config"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// JWTService provides token issuing and validation
type JWTService struct {
	secretKey string
	issuer    string
}

// JWTClaims defines the claims carried by an access token
type JWTClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// InterfaceJWTService defines the JWT service interface
type InterfaceJWTService interface {
	GenerateToken(id, email string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "jobboard-http-service",
	}
}

// GenerateToken issues an HS256 token valid for one hour
func (s *JWTService) GenerateToken(id, email string) (string, error) {
	expirationTime := time.Now().Add(1 * time.Hour)

	claims := &JWTClaims{
		ID:    id,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken verifies the token signature and expiry
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims extracts the claims from a token
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		jwtClaims := &JWTClaims{}

		if id, ok := claims["id"].(string); ok {
			jwtClaims.ID = id
		}
		if email, ok := claims["email"].(string); ok {
			jwtClaims.Email = email
		}
		if iss, ok := claims["iss"].(string); ok {
			jwtClaims.Issuer = iss
		}
		if exp, ok := claims["exp"].(float64); ok {
			jwtClaims.ExpiresAt = jwt.NewNumericDate(time.Unix(int64(exp), 0))
		}

		return jwtClaims, nil
	}

	return nil, errors.New("invalid token claims")
}

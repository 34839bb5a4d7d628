package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims carried in every session token.
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService issues and validates HS256 signed session tokens. Access and
// refresh tokens are signed with separate secrets. Tokens are stateless:
// there is no server-side revocation, they stay valid until expiry.
type JWTService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewJWTService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTService {
	return &JWTService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *JWTService) GenerateAccessToken(userID, email string) (string, error) {
	return s.generate(userID, email, s.accessSecret, s.accessTTL)
}

func (s *JWTService) GenerateRefreshToken(userID, email string) (string, error) {
	return s.generate(userID, email, s.refreshSecret, s.refreshTTL)
}

func (s *JWTService) ValidateAccessToken(tokenStr string) (*Claims, error) {
	return s.parse(tokenStr, s.accessSecret)
}

func (s *JWTService) ValidateRefreshToken(tokenStr string) (*Claims, error) {
	return s.parse(tokenStr, s.refreshSecret)
}

func (s *JWTService) generate(userID, email string, secret []byte, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (s *JWTService) parse(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	// Expiry itself is enforced during parsing; tokens minted without an
	// exp claim would slip through, so they are rejected here.
	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("token has no expiry")
	}
	return claims, nil
}

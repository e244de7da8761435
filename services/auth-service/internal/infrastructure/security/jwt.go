package security

import (
	"fmt"
	"time"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/auth-service/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

type JWTService struct {
	secretKey         string
	expirationAccess  time.Duration
	expirationRefresh time.Duration
}

type Claims struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func NewJWTService(secretKey string, expirationAccessH, expirationRefreshH int) *JWTService {
	return &JWTService{
		secretKey:         secretKey,
		expirationAccess:  time.Duration(expirationAccessH) * time.Hour,
		expirationRefresh: time.Duration(expirationRefreshH) * time.Hour,
	}
}

func (j *JWTService) generate(userID, name string, role domain.Role, subject string, expiration time.Duration) (string, time.Time, error) {
	claims := &Claims{
		UserID:   userID,
		UserName: name,
		Role:     string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte(j.secretKey))
	return tokenStr, claims.ExpiresAt.Time, err
}

func (j *JWTService) GenerateAccessToken(userID, name string, role domain.Role) (string, time.Time, error) {
	return j.generate(userID, name, role, "access", j.expirationAccess)
}

func (j *JWTService) GenerateRefreshToken(userID, name string, role domain.Role) (string, time.Time, error) {
	return j.generate(userID, name, role, "refresh", j.expirationRefresh)
}

func (j *JWTService) ValidateToken(tokenStr string) (*domain.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(j.secretKey), nil
		})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return &domain.TokenClaims{
			UserID:    claims.UserID,
			Name:      claims.UserName,
			Role:      domain.Role(claims.Role),
			ExpiresAt: claims.ExpiresAt.Time,
		}, nil
	}
	return nil, domain.ErrInvalidToken
}

func (j *JWTService) RefreshToken(tokenStr string) (string, time.Time, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(token *jwt.Token) (any, error) {
			return []byte(j.secretKey), nil
		})
	if err != nil || !token.Valid {
		return "", time.Time{}, domain.ErrInvalidToken
	}
	if claims.Subject != "refresh" {
		return "", time.Time{}, domain.ErrInvalidToken
	}

	return j.GenerateAccessToken(claims.UserID, claims.UserName, domain.Role(claims.Role))
}

package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/okanck/studentapi/internal/pkg/apperrors"
)

// notBeforeSkew backdates the nbf claim so a freshly issued token is
// immediately usable even when issuer and validator clocks differ slightly.
// Validation itself runs with zero leeway.
const notBeforeSkew = time.Minute

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey      string
	Issuer         string
	Audience       string
	AccessTokenExp time.Duration
}

// JWTService issues and validates signed bearer tokens.
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	if config.AccessTokenExp <= 0 {
		config.AccessTokenExp = time.Hour
	}
	return &JWTService{
		config: config,
	}
}

// Claims defines JWT token content
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed token carrying the username as subject.
// Returns the token string and its absolute expiry time.
func (s *JWTService) GenerateToken(username string) (string, time.Time, error) {
	if s.config.SecretKey == "" {
		return "", time.Time{}, apperrors.ErrSigningKeyMissing
	}

	now := time.Now()
	expiresAt := now.Add(s.config.AccessTokenExp)

	claims := &Claims{
		Name: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ID:        uuid.New().String(),
			Issuer:    s.config.Issuer,
			Audience:  jwt.ClaimStrings{s.config.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-notBeforeSkew)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", time.Time{}, apperrors.NewCustomError(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// ValidateToken verifies the signature, issuer, audience and validity window
// of a token. There is no clock-skew tolerance on expiry or not-before.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if s.config.SecretKey == "" {
		return nil, apperrors.ErrSigningKeyMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(token *jwt.Token) (interface{}, error) {
			// Validate algorithm
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, apperrors.ErrTokenInvalid
			}
			return []byte(s.config.SecretKey), nil
		},
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithAudience(s.config.Audience),
		jwt.WithLeeway(0),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	if claims.Subject == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", apperrors.ErrInvalidFormat
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return "", apperrors.ErrInvalidFormat
	}

	return token, nil
}

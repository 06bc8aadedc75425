package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanck/studentapi/internal/pkg/apperrors"
)

func testConfig() JWTConfig {
	return JWTConfig{
		SecretKey:      "test-signing-key",
		Issuer:         "studentapi",
		Audience:       "studentapi-clients",
		AccessTokenExp: time.Hour,
	}
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	t.Parallel()

	service := NewJWTService(testConfig())

	token, expiresAt, err := service.GenerateToken("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, "studentapi", claims.Issuer)
	assert.NotEmpty(t, claims.ID, "jti should be set")
}

func TestGenerateTokenWithoutSigningKey(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.SecretKey = ""
	service := NewJWTService(cfg)

	_, _, err := service.GenerateToken("alice")
	assert.ErrorIs(t, err, apperrors.ErrSigningKeyMissing)
}

func TestValidateTokenFailures(t *testing.T) {
	t.Parallel()

	service := NewJWTService(testConfig())
	token, _, err := service.GenerateToken("alice")
	require.NoError(t, err)

	tests := []struct {
		name    string
		service *JWTService
		token   string
		wantErr error
	}{
		{
			name:    "tampered signature",
			service: service,
			token:   token[:len(token)-4] + "XXXX",
			wantErr: apperrors.ErrTokenInvalid,
		},
		{
			name:    "garbage token",
			service: service,
			token:   "not-a-jwt",
			wantErr: apperrors.ErrTokenInvalid,
		},
		{
			name: "different signing key",
			service: NewJWTService(JWTConfig{
				SecretKey:      "another-key",
				Issuer:         "studentapi",
				Audience:       "studentapi-clients",
				AccessTokenExp: time.Hour,
			}),
			token:   token,
			wantErr: apperrors.ErrTokenInvalid,
		},
		{
			name: "mismatched audience",
			service: NewJWTService(JWTConfig{
				SecretKey:      "test-signing-key",
				Issuer:         "studentapi",
				Audience:       "other-audience",
				AccessTokenExp: time.Hour,
			}),
			token:   token,
			wantErr: apperrors.ErrTokenInvalid,
		},
		{
			name: "mismatched issuer",
			service: NewJWTService(JWTConfig{
				SecretKey:      "test-signing-key",
				Issuer:         "other-issuer",
				Audience:       "studentapi-clients",
				AccessTokenExp: time.Hour,
			}),
			token:   token,
			wantErr: apperrors.ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.service.ValidateToken(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateExpiredToken(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.AccessTokenExp = -2 * time.Minute
	issuer := &JWTService{config: cfg}

	token, _, err := issuer.GenerateToken("alice")
	require.NoError(t, err)

	validator := NewJWTService(testConfig())
	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing prefix", header: "abc.def.ghi", wantErr: true},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "prefix only", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeneratedTokenShape(t *testing.T) {
	t.Parallel()

	service := NewJWTService(testConfig())
	token, _, err := service.GenerateToken("alice")
	require.NoError(t, err)

	assert.Equal(t, 3, len(strings.Split(token, ".")), "token should have three segments")
}

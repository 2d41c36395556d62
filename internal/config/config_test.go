package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("ADMIN_EMAILS", " Admin@Example.com ,ops@example.com,, ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, []string{"admin@example.com", "ops@example.com"}, cfg.Auth.AdminEmails)
	assert.Equal(t, "email", cfg.Auth.EmailClaim)
	assert.Equal(t, "email_verified", cfg.Auth.EmailVerifiedClaim)
	assert.True(t, cfg.Auth.RequireVerifiedEmail)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "founderhub", cfg.Tracing.ServiceName)
	assert.Equal(t, "grpc", cfg.Tracing.Protocol)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestValidate(t *testing.T) {
	valid := AppConfig{
		Database: DatabaseConfig{Host: "h", User: "u", Name: "n"},
		Auth: AuthConfig{
			Issuer:      "https://tenant.eu.auth0.com/",
			Audience:    "https://api.founderhub.dev",
			AdminEmails: []string{"admin@example.com"},
		},
	}
	assert.NoError(t, valid.Validate())

	noDB := valid
	noDB.Database.Host = ""
	assert.Error(t, noDB.Validate())

	noAdmins := valid
	noAdmins.Auth.AdminEmails = nil
	assert.Error(t, noAdmins.Validate())

	noIssuer := valid
	noIssuer.Auth.Issuer = ""
	assert.Error(t, noIssuer.Validate())
}

func TestKeySetURL(t *testing.T) {
	a := AuthConfig{Issuer: "https://tenant.eu.auth0.com/"}
	assert.Equal(t, "https://tenant.eu.auth0.com/.well-known/jwks.json", a.KeySetURL())

	a.JWKSURL = "https://keys.example.com/jwks"
	assert.Equal(t, "https://keys.example.com/jwks", a.KeySetURL())
}

func TestLocation(t *testing.T) {
	assert.Equal(t, time.UTC, LogConfig{Timezone: "Not/AZone"}.Location())
	assert.Equal(t, "Europe/Berlin", LogConfig{Timezone: "Europe/Berlin"}.Location().String())
}

func TestPresignTTL(t *testing.T) {
	assert.Equal(t, 24*time.Hour, MinIOConfig{}.PresignTTL())
	assert.Equal(t, time.Minute, MinIOConfig{PresignTTLSec: 60}.PresignTTL())
}

// Package auth verifies bearer tokens issued by the external identity provider
// and decides the admin role from a fixed email allow-list.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"founderhub/internal/config"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

const clockSkew = 30 * time.Second

// Identity is the caller as seen by handlers.
type Identity struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Admin   bool   `json:"is_admin"`
}

// TokenVerifier turns a raw bearer token into an Identity.
type TokenVerifier interface {
	Verify(raw string) (*Identity, error)
}

// Verifier validates signature, issuer, audience and expiry of access tokens.
type Verifier struct {
	keyfunc       jwt.Keyfunc
	parser        *jwt.Parser
	emailClaim    string
	verifiedClaim string
	admins        AdminList
}

// NewVerifier builds a verifier around an arbitrary key function.
// methods restricts accepted signing algorithms.
func NewVerifier(kf jwt.Keyfunc, issuer, audience, emailClaim string, admins AdminList, methods ...string) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(methods),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkew),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	if emailClaim == "" {
		emailClaim = "email"
	}
	return &Verifier{
		keyfunc:    kf,
		parser:     jwt.NewParser(opts...),
		emailClaim: emailClaim,
		admins:     admins,
	}
}

// NewJWKSVerifier fetches the provider's key set and keeps it refreshed in the background
// until ctx is cancelled. Only RS256 tokens are accepted.
func NewJWKSVerifier(ctx context.Context, cfg config.AuthConfig) (*Verifier, error) {
	k, err := keyfunc.NewDefaultCtx(ctx, []string{cfg.KeySetURL()})
	if err != nil {
		return nil, fmt.Errorf("load jwks: %w", err)
	}
	v := NewVerifier(k.Keyfunc, cfg.Issuer, cfg.Audience, cfg.EmailClaim, NewAdminList(cfg.AdminEmails), "RS256")
	if cfg.RequireVerifiedEmail {
		v.RequireVerifiedEmail(cfg.EmailVerifiedClaim)
	}
	return v, nil
}

// RequireVerifiedEmail makes Verify drop the email of tokens whose claim is not boolean true.
// Such callers are never admins and own no founder record.
func (v *Verifier) RequireVerifiedEmail(claim string) *Verifier {
	if claim == "" {
		claim = "email_verified"
	}
	v.verifiedClaim = claim
	return v
}

// Verify parses raw and returns the caller identity.
func (v *Verifier) Verify(raw string) (*Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrMissingToken
	}

	claims := jwt.MapClaims{}
	if _, err := v.parser.ParseWithClaims(raw, claims, v.keyfunc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	email, _ := claims[v.emailClaim].(string)
	if v.verifiedClaim != "" {
		if verified, _ := claims[v.verifiedClaim].(bool); !verified {
			email = ""
		}
	}

	return &Identity{
		Subject: sub,
		Email:   email,
		Admin:   v.admins.IsAdmin(email),
	}, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// AdminList is the fixed set of admin email addresses.
type AdminList struct {
	emails map[string]struct{}
}

func NewAdminList(emails []string) AdminList {
	m := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		if e = normalizeEmail(e); e != "" {
			m[e] = struct{}{}
		}
	}
	return AdminList{emails: m}
}

// IsAdmin matches case-insensitively; an empty email is never an admin.
func (a AdminList) IsAdmin(email string) bool {
	email = normalizeEmail(email)
	if email == "" {
		return false
	}
	_, ok := a.emails[email]
	return ok
}

// SameEmail compares two addresses the way the allow-list does.
func SameEmail(a, b string) bool {
	a, b = normalizeEmail(a), normalizeEmail(b)
	return a != "" && a == b
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// Package token implements issuance and verification of the HS256 access
// tokens used as session assertions. The signing secret and token lifetime
// come from configuration; nothing in here is persisted.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// Claims is the verified identity recovered from a token.
type Claims struct {
	AccountID string
	Role      string
	ID        string // jti, handle for the revocation list
	ExpiresAt time.Time
}

// Issuer mints signed access tokens for authenticated accounts.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a compact JWS carrying the account id and role, bounded by
// the configured lifetime.
func (i *Issuer) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"account_id": user.ID,
		"role":       user.Role,
		"jti":        uuid.NewString(),
		"iat":        now.Unix(),
		"exp":        now.Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verifier validates access tokens and recovers their claims.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify checks structure, signature algorithm, signature, and expiry.
// Every failure collapses to domain.ErrInvalidToken so callers cannot be
// used as an oracle for which check tripped.
func (v *Verifier) Verify(raw string) (*Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	accountID, _ := claims["account_id"].(string)
	if accountID == "" {
		return nil, domain.ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	jti, _ := claims["jti"].(string)

	out := &Claims{AccountID: accountID, Role: role, ID: jti}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

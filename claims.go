package calcana

import (
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Role is the access profile carried by a Calcana token.
type Role string

const (
	RoleOperador Role = "OPERADOR"
	RoleGestor   Role = "GESTOR"
)

// Claims is the decoded payload of a Calcana access token.
//
// This is a DTO matching the server's token contract: the registered `sub`
// claim carries the user's e-mail and `exp` the expiry; `name`, `id` and
// `role` are Calcana-specific.
type Claims struct {
	Name   string `json:"name"`
	UserID int64  `json:"id"`
	Role   Role   `json:"role"`

	jwt.RegisteredClaims
}

// Email returns the subject e-mail embedded in the token.
func (c Claims) Email() string { return c.Subject }

// DeriveClaims decodes a credential into its Claims and reports whether they
// are currently valid. It is pure and total: malformed input and expired
// tokens both yield ok == false, never a panic or an error.
//
// Expiry is evaluated against the wall clock at call time, so a result can go
// stale; callers must re-derive rather than cache across a time-sensitive
// boundary.
//
// The signature is deliberately not verified. The client never holds the
// signing secret; the server is the authority and rejects bad tokens with
// 401/403, which the request gateway turns into a forced logout.
func DeriveClaims(credential string) (Claims, bool) {
	var claims Claims
	_, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(credential), &claims)
	if err != nil {
		return Claims{}, false
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.After(time.Now()) {
		return Claims{}, false
	}
	claims.Role = Role(strings.ToUpper(string(claims.Role)))
	return claims, true
}

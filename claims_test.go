package calcana

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

func mintToken(t *testing.T, claims Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func validClaims(expiresIn time.Duration) Claims {
	return Claims{
		Name:   "Maria Silva",
		UserID: 42,
		Role:   RoleGestor,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "maria@calcana.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
}

func TestDeriveClaimsValidToken(t *testing.T) {
	token := mintToken(t, validClaims(time.Hour))

	claims, ok := DeriveClaims(token)
	if !ok {
		t.Fatalf("expected valid claims")
	}
	if claims.Email() != "maria@calcana.com" {
		t.Fatalf("unexpected email: %s", claims.Email())
	}
	if claims.UserID != 42 || claims.Name != "Maria Silva" || claims.Role != RoleGestor {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestDeriveClaimsExpiredToken(t *testing.T) {
	token := mintToken(t, validClaims(-time.Minute))

	if _, ok := DeriveClaims(token); ok {
		t.Fatalf("expired token must not yield claims")
	}
}

func TestDeriveClaimsMalformed(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"not-a-token",
		"a.b",
		"a.b.c",
		"eyJhbGciOiJIUzI1NiJ9.%%%.sig",
	}
	for _, input := range inputs {
		if _, ok := DeriveClaims(input); ok {
			t.Fatalf("malformed input %q must not yield claims", input)
		}
	}
}

func TestDeriveClaimsMissingExpiry(t *testing.T) {
	claims := validClaims(time.Hour)
	claims.ExpiresAt = nil
	token := mintToken(t, claims)

	if _, ok := DeriveClaims(token); ok {
		t.Fatalf("token without exp must not yield claims")
	}
}

func TestDeriveClaimsNormalizesRole(t *testing.T) {
	claims := validClaims(time.Hour)
	claims.Role = Role("gestor")
	token := mintToken(t, claims)

	derived, ok := DeriveClaims(token)
	if !ok {
		t.Fatalf("expected valid claims")
	}
	if derived.Role != RoleGestor {
		t.Fatalf("expected role normalized to GESTOR, got %s", derived.Role)
	}
}

package calcana

import (
	"testing"
	"time"
)

func TestBootstrapWithoutCredential(t *testing.T) {
	ac := NewAccessController(NewMemoryTokenStore())

	session := ac.Bootstrap()
	if session.Authenticated {
		t.Fatalf("expected unauthenticated session")
	}
}

func TestBootstrapValidCredential(t *testing.T) {
	store := NewMemoryTokenStore()
	store.Save(mintToken(t, validClaims(time.Hour)))
	ac := NewAccessController(store)

	session := ac.Bootstrap()
	if !session.Authenticated {
		t.Fatalf("expected authenticated session")
	}
	if session.UserID != 42 || session.Name != "Maria Silva" || session.Email != "maria@calcana.com" || session.Role != RoleGestor {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestBootstrapExpiredCredentialClearsStore(t *testing.T) {
	store := NewMemoryTokenStore()
	store.Save(mintToken(t, validClaims(-time.Hour)))
	ac := NewAccessController(store)

	session := ac.Bootstrap()
	if session.Authenticated {
		t.Fatalf("expected unauthenticated session")
	}
	if _, ok := store.Load(); ok {
		t.Fatalf("invalid leftover credential must be cleared")
	}
	// Bootstrap expiry is silent: no reason is queued.
	if _, ok := store.ConsumeLogoutReason(); ok {
		t.Fatalf("bootstrap must not queue a logout reason")
	}
}

func TestBootstrapMalformedCredentialClearsStore(t *testing.T) {
	store := NewMemoryTokenStore()
	store.Save("garbage")
	ac := NewAccessController(store)

	if session := ac.Bootstrap(); session.Authenticated {
		t.Fatalf("expected unauthenticated session")
	}
	if _, ok := store.Load(); ok {
		t.Fatalf("malformed leftover credential must be cleared")
	}
}

func TestCompleteLoginRoundTrip(t *testing.T) {
	store := NewMemoryTokenStore()
	ac := NewAccessController(store)

	store.Save(mintToken(t, validClaims(time.Hour)))
	session, err := ac.CompleteLogin()
	if err != nil {
		t.Fatalf("complete login: %v", err)
	}
	if !session.Authenticated || session.UserID != 42 || session.Role != RoleGestor {
		t.Fatalf("unexpected session: %+v", session)
	}
	if ac.Current() != session {
		t.Fatalf("Current must reflect the completed login")
	}
}

func TestCompleteLoginWithBadTokenIsDefect(t *testing.T) {
	store := NewMemoryTokenStore()
	store.Save("not-a-jwt")
	ac := NewAccessController(store)

	if _, err := ac.CompleteLogin(); err != ErrFreshTokenInvalid {
		t.Fatalf("expected ErrFreshTokenInvalid, got %v", err)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	store := NewMemoryTokenStore()
	store.Save(mintToken(t, validClaims(time.Hour)))
	ac := NewAccessController(store)
	ac.Bootstrap()

	session := ac.Logout()
	if session.Authenticated {
		t.Fatalf("expected unauthenticated session after logout")
	}
	if _, ok := store.Load(); ok {
		t.Fatalf("logout must clear the credential")
	}
}

func TestForceLogoutIsIdempotent(t *testing.T) {
	store := NewMemoryTokenStore()
	store.Save(mintToken(t, validClaims(time.Hour)))
	ac := NewAccessController(store)
	ac.Bootstrap()

	if !ac.forceLogout(MsgSessionExpired) {
		t.Fatalf("first forced logout must perform the transition")
	}
	// A second concurrent 401 arriving right after must be a no-op.
	if ac.forceLogout(MsgSessionExpired) {
		t.Fatalf("second forced logout must not repeat the transition")
	}

	if _, ok := store.Load(); ok {
		t.Fatalf("credential must be cleared")
	}
	reason, ok := store.ConsumeLogoutReason()
	if !ok || reason != MsgSessionExpired {
		t.Fatalf("expected reason set exactly once to %q, got %q", MsgSessionExpired, reason)
	}
	if ac.Current().Authenticated {
		t.Fatalf("session must be unauthenticated")
	}
}

func TestRouteAllowedMatrix(t *testing.T) {
	operador := Session{Authenticated: true, Role: RoleOperador}
	gestor := Session{Authenticated: true, Role: RoleGestor}
	anon := Session{}

	cases := []struct {
		route   string
		session Session
		want    bool
	}{
		{RouteLogin, anon, true},
		{RouteLogin, operador, true},
		{RouteDashboard, anon, false},
		{RouteDashboard, operador, true},
		{RouteDashboard, gestor, true},
		{RouteAnalises, operador, true},
		{RouteHistorico, gestor, true},
		{RouteOperadores, operador, false},
		{RouteOperadores, gestor, true},
		{RouteOperadores, anon, false},
		{"inexistente", gestor, false},
	}
	for _, tc := range cases {
		if got := RouteAllowed(tc.route, tc.session); got != tc.want {
			t.Errorf("RouteAllowed(%q, auth=%v role=%s) = %v, want %v",
				tc.route, tc.session.Authenticated, tc.session.Role, got, tc.want)
		}
	}
}

func TestFallbackRoute(t *testing.T) {
	if FallbackRoute() != RouteDashboard {
		t.Fatalf("denials must fall back to the dashboard")
	}
}

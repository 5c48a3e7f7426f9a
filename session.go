package calcana

import (
	"errors"
	"sync"
)

// Session is the application-visible authentication state: either
// unauthenticated (the zero value) or authenticated with the identity decoded
// from the credential.
type Session struct {
	Authenticated bool
	UserID        int64
	Name          string
	Email         string
	Role          Role
}

// Route identifiers gated by the access policy. They mirror the sections of
// the Calcana application.
const (
	RouteLogin        = "login"
	RouteDashboard    = "dashboard"
	RouteFornecedores = "fornecedores"
	RoutePropriedades = "propriedades"
	RouteAnalises     = "analises"
	RouteHistorico    = "historico"
	RouteOperadores   = "operadores"
)

// routePolicy is the static role-to-route permission table. A nil role set
// marks a public route; an unknown route is denied for everyone.
var routePolicy = map[string][]Role{
	RouteLogin:        nil,
	RouteDashboard:    {RoleOperador, RoleGestor},
	RouteFornecedores: {RoleOperador, RoleGestor},
	RoutePropriedades: {RoleOperador, RoleGestor},
	RouteAnalises:     {RoleOperador, RoleGestor},
	RouteHistorico:    {RoleOperador, RoleGestor},
	RouteOperadores:   {RoleGestor},
}

// FallbackRoute is where callers redirect after a route denial. Denial is a
// UX fallback, not an error to report.
func FallbackRoute() string { return RouteDashboard }

// RouteAllowed reports whether the session may use the given route.
// Unauthenticated sessions are allowed only public routes.
func RouteAllowed(routeID string, s Session) bool {
	roles, known := routePolicy[routeID]
	if !known {
		return false
	}
	if roles == nil {
		return true
	}
	if !s.Authenticated {
		return false
	}
	for _, r := range roles {
		if r == s.Role {
			return true
		}
	}
	return false
}

// ErrFreshTokenInvalid reports that a credential stored by a successful login
// failed to decode. The server just issued it, so this is a defect (clock
// skew or a contract break), not a normal outcome.
var ErrFreshTokenInvalid = errors.New("calcana: freshly issued credential did not decode as valid")

// AccessController owns the Session. It is the only writer of session state;
// everything else observes it through Current or the transition methods.
type AccessController struct {
	store TokenStore

	mu      sync.Mutex
	session Session
}

// NewAccessController builds a controller over the given store with an
// Unauthenticated session. Call Bootstrap to re-hydrate a previous session.
func NewAccessController(store TokenStore) *AccessController {
	return &AccessController{store: store}
}

// Current returns the session as of now.
func (a *AccessController) Current() Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

// Bootstrap runs at process start: it loads the stored credential and, when
// it decodes as valid, re-enters the Authenticated state. An invalid leftover
// credential (malformed or expired) is cleared silently so it cannot linger.
func (a *AccessController) Bootstrap() Session {
	a.mu.Lock()
	defer a.mu.Unlock()

	credential, ok := a.store.Load()
	if !ok {
		a.session = Session{}
		return a.session
	}
	claims, ok := DeriveClaims(credential)
	if !ok {
		a.store.Clear()
		a.session = Session{}
		return a.session
	}
	a.session = sessionFromClaims(claims)
	return a.session
}

// CompleteLogin re-derives the session right after a successful login call
// populated the store.
func (a *AccessController) CompleteLogin() (Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	credential, ok := a.store.Load()
	if !ok {
		return a.session, ErrFreshTokenInvalid
	}
	claims, ok := DeriveClaims(credential)
	if !ok {
		return a.session, ErrFreshTokenInvalid
	}
	a.session = sessionFromClaims(claims)
	return a.session, nil
}

// Logout clears the credential and returns to Unauthenticated. Used both for
// user-initiated logout and by the request gateway's forced logout.
func (a *AccessController) Logout() Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.store.Clear()
	a.session = Session{}
	return a.session
}

// forceLogout is the gateway's reaction to a 401/403. It reports whether this
// call performed the transition: only the call that still observes a stored
// credential does, so N concurrent failures produce one observable logout.
// Every step is also individually repeat-safe, which keeps redundant runs
// harmless even outside the gate.
func (a *AccessController) forceLogout(reason string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.store.Load(); !ok {
		return false
	}
	a.store.Clear()
	a.store.SetLogoutReason(reason)
	a.session = Session{}
	return true
}

// IsRouteAllowed applies the route policy to the current session.
func (a *AccessController) IsRouteAllowed(routeID string) bool {
	return RouteAllowed(routeID, a.Current())
}

func sessionFromClaims(c Claims) Session {
	return Session{
		Authenticated: true,
		UserID:        c.UserID,
		Name:          c.Name,
		Email:         c.Email(),
		Role:          c.Role,
	}
}

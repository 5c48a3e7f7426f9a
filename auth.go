package calcana

import "net/http"

type authStrategy interface {
	Apply(req *http.Request)
}

// storeAuth attaches the credential currently held by the TokenStore as a
// bearer token. The store is consulted per request, not at client build time,
// so login and logout take effect on the very next call.
type storeAuth struct {
	store TokenStore
}

func (s storeAuth) Apply(req *http.Request) {
	credential, ok := s.store.Load()
	if !ok {
		return
	}
	req.Header.Set("Authorization", "Bearer "+credential)
}

var _ authStrategy = storeAuth{}

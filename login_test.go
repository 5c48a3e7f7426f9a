package calcana

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLoginStoresTokenAndAuthenticates(t *testing.T) {
	token := mintToken(t, validClaims(time.Hour))
	var captured Credentials
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("login request must not carry a credential")
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(loginResponse{Token: token})
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	client := newTestClient(t, server.URL, store, nil)

	session, err := client.Auth.Login(context.Background(), Credentials{Email: "maria@calcana.com", Senha: "segredo"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if captured.Email != "maria@calcana.com" || captured.Senha != "segredo" {
		t.Fatalf("unexpected payload: %+v", captured)
	}
	if !session.Authenticated || session.UserID != 42 || session.Role != RoleGestor {
		t.Fatalf("unexpected session: %+v", session)
	}
	if stored, ok := store.Load(); !ok || stored != token {
		t.Fatalf("expected issued token stored")
	}
}

func TestLoginRejectionStaysUnauthenticated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"credenciais inválidas"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	store := NewMemoryTokenStore()
	client := newTestClient(t, server.URL, store, nil)

	_, err := client.Auth.Login(context.Background(), Credentials{Email: "x@y.com", Senha: "errada"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, ok := store.Load(); ok {
		t.Fatalf("no credential may be stored after a rejected login")
	}
	if client.Access.Current().Authenticated {
		t.Fatalf("session must stay unauthenticated")
	}
}

func TestLoginRequiresEmailAndSenha(t *testing.T) {
	client := newTestClient(t, "http://localhost:8080", NewMemoryTokenStore(), nil)

	for _, creds := range []Credentials{{}, {Email: "a@b.com"}, {Senha: "s"}} {
		if _, err := client.Auth.Login(context.Background(), creds); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("creds %+v: expected ErrInvalidCredentials, got %v", creds, err)
		}
	}
}

func TestLoginWithEmptyTokenResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(loginResponse{})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, NewMemoryTokenStore(), nil)
	if _, err := client.Auth.Login(context.Background(), Credentials{Email: "a@b.com", Senha: "s"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty token, got %v", err)
	}
}

func TestPendingLogoutReason(t *testing.T) {
	store := NewMemoryTokenStore()
	store.SetLogoutReason(MsgSessionExpired)
	client := newTestClient(t, "http://localhost:8080", store, nil)

	reason, ok := client.Auth.PendingLogoutReason()
	if !ok || reason != MsgSessionExpired {
		t.Fatalf("expected pending reason, got %q (ok=%v)", reason, ok)
	}
	if _, ok := client.Auth.PendingLogoutReason(); ok {
		t.Fatalf("reason must be consumed")
	}
}

package calcana

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// MsgInvalidCredentials is the field-level message shown when the login
// endpoint rejects the credentials.
const MsgInvalidCredentials = "E-mail ou senha incorretos."

// ErrInvalidCredentials reports that the login endpoint rejected the e-mail
// and password pair. Present it as MsgInvalidCredentials; the session stays
// Unauthenticated and nothing is stored.
var ErrInvalidCredentials = errors.New("calcana: credenciais inválidas")

// Credentials carries the login form inputs. The field names follow the API
// contract (`senha` is the password).
type Credentials struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// AuthClient handles the login and logout operations.
type AuthClient struct {
	client *Client
}

// Login exchanges the credentials at POST /login, stores the issued token and
// completes the session. Any non-2xx from the endpoint is an authentication
// failure surfaced as ErrInvalidCredentials.
func (a *AuthClient) Login(ctx context.Context, creds Credentials) (Session, error) {
	if strings.TrimSpace(creds.Email) == "" || strings.TrimSpace(creds.Senha) == "" {
		return a.client.Access.Current(), fmt.Errorf("%w: e-mail e senha obrigatórios", ErrInvalidCredentials)
	}
	var resp loginResponse
	if err := a.client.sendAndDecode(ctx, http.MethodPost, "/login", creds, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return a.client.Access.Current(), fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.Message)
		}
		return a.client.Access.Current(), err
	}
	if resp.Token == "" {
		return a.client.Access.Current(), fmt.Errorf("%w: resposta sem token", ErrInvalidCredentials)
	}
	a.client.store.Save(resp.Token)
	return a.client.Access.CompleteLogin()
}

// Logout ends the session and clears the stored credential.
func (a *AuthClient) Logout() Session {
	return a.client.Access.Logout()
}

// PendingLogoutReason consumes the one-shot reason left by a forced logout,
// for the login entry point to display on its next render.
func (a *AuthClient) PendingLogoutReason() (string, bool) {
	return a.client.store.ConsumeLogoutReason()
}

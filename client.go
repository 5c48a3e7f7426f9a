// Package calcana provides the Go client for the Calcana sugar-cane
// analysis API: the token lifecycle, the authenticated request gateway, and
// role-based access control, plus typed clients for the domain endpoints.
package calcana

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultBaseURL = "http://localhost:8080"
const defaultUserAgent = "calcana-go/0.1"

// MsgSessionExpired is the one-shot reason queued for the login entry point
// after a forced logout.
const MsgSessionExpired = "Sua sessão expirou. Por favor, faça login novamente."

// Config wires the base URL, credential storage, and telemetry for the client.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string

	// TokenStore persists the credential. Defaults to a FileTokenStore
	// under the user config directory.
	TokenStore TokenStore

	// NavigateToLogin is invoked once per forced logout so the embedding
	// application can return to its login entry point. Optional.
	NavigateToLogin func()

	Telemetry TelemetryHooks
}

// Client is the gateway every Calcana API call rides through. It attaches the
// stored credential to outbound requests and reacts to authorization failures
// with a forced logout, uniformly for all endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      TokenStore
	navigate   func()
	telemetry  TelemetryHooks
	userAgent  string

	// Access owns the Session derived from the stored credential.
	Access *AccessController

	// Grouped service clients.
	Auth         *AuthClient
	Fornecedores *FornecedoresClient
	Propriedades *PropriedadesClient
	Analises     *AnalisesClient
	Usuarios     *UsuariosClient
	Dashboard    *DashboardClient
}

// NewClient validates the configuration and returns a ready-to-use Client.
// The session starts Unauthenticated; call Access.Bootstrap to re-hydrate a
// stored credential.
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	store := cfg.TokenStore
	if store == nil {
		store = NewFileTokenStore("")
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	client := &Client{
		baseURL:    normalized,
		httpClient: httpClient,
		store:      store,
		navigate:   cfg.NavigateToLogin,
		telemetry:  cfg.Telemetry,
		userAgent:  ua,
		Access:     NewAccessController(store),
	}
	client.Auth = &AuthClient{client: client}
	client.Fornecedores = &FornecedoresClient{client: client}
	client.Propriedades = &PropriedadesClient{client: client}
	client.Analises = &AnalisesClient{client: client}
	client.Usuarios = &UsuariosClient{client: client}
	client.Dashboard = &DashboardClient{client: client}
	return client, nil
}

// TokenStore exposes the credential store backing this client.
func (c *Client) TokenStore() TokenStore { return c.store }

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("calcana: base URL required")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("calcana: invalid base URL: %w", err)
	}
	if u.Scheme == "" {
		return "", errors.New("calcana: base URL missing scheme (http/https)")
	}
	if u.Host == "" {
		return "", errors.New("calcana: base URL missing host")
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return strings.TrimSuffix(u.String(), "/"), nil
}

func (c *Client) newJSONRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	injectTraceparent(ctx, req)
	return req, nil
}

// prepare is the request phase of the gateway: identify the request and
// attach the stored credential, when one exists. Requests without a stored
// credential go through clean, which is what lets the login call itself pass.
func (c *Client) prepare(req *http.Request) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if req.Header.Get("X-Request-Id") == "" {
		req.Header.Set("X-Request-Id", uuid.NewString())
	}
	storeAuth{store: c.store}.Apply(req)
}

// send runs attach-credential → send → observe-response for one request.
// A 401/403 triggers the forced logout transition; every other failure is
// passed through untouched for the caller to present.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	c.prepare(req)
	if c.telemetry.OnHTTPRequest != nil {
		c.telemetry.OnHTTPRequest(req.Context(), req)
	}
	c.telemetry.log(req.Context(), LogLevelInfo, "http_request", map[string]any{
		"method": req.Method,
		"url":    req.URL.String(),
	})
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.telemetry.OnHTTPResponse != nil {
		c.telemetry.OnHTTPResponse(req.Context(), req, resp, err, time.Since(start))
	}
	c.telemetry.metric(req.Context(), "calcana_http_request_latency_ms", float64(time.Since(start).Milliseconds()), map[string]string{
		"path": req.URL.Path,
	})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.forcedLogout(req.Context())
		defer resp.Body.Close()
		return nil, decodeAPIError(resp)
	}
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, decodeAPIError(resp)
	}
	return resp, nil
}

// forcedLogout reacts to an observed authorization failure. The transition is
// gated on a credential still being stored, so when several in-flight
// requests fail together only one of them navigates; a login attempt with
// bad credentials stores nothing and therefore triggers nothing.
func (c *Client) forcedLogout(ctx context.Context) {
	if !c.Access.forceLogout(MsgSessionExpired) {
		return
	}
	c.telemetry.log(ctx, LogLevelInfo, "forced_logout", map[string]any{
		"reason": MsgSessionExpired,
	})
	if c.navigate != nil {
		c.navigate()
	}
}

func (c *Client) sendAndDecode(ctx context.Context, method, path string, payload, out any) error {
	req, err := c.newJSONRequest(ctx, method, path, payload)
	if err != nil {
		return err
	}
	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("calcana: decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) buildURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

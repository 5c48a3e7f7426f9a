package calcana

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Perfil is an access profile users can be assigned to.
type Perfil struct {
	ID        int64  `json:"idPerfil"`
	Descricao string `json:"descricao"`
}

// Usuario is an operator or manager account.
type Usuario struct {
	ID     int64  `json:"idUsuario"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Ativo  bool   `json:"ativo"`
	Perfil Perfil `json:"perfil"`
}

// UsuarioCreateRequest registers a new account.
type UsuarioCreateRequest struct {
	Nome   string    `json:"nome"`
	Email  string    `json:"email"`
	Senha  string    `json:"senha"`
	Perfil PerfilRef `json:"perfil"`
	Ativo  bool      `json:"ativo"`
}

// UsuarioUpdateRequest changes name, e-mail or profile. Passwords change only
// through ResetSenha.
type UsuarioUpdateRequest struct {
	Nome   string    `json:"nome"`
	Email  string    `json:"email"`
	Perfil PerfilRef `json:"perfil"`
}

// PerfilRef references a profile by id in user payloads.
type PerfilRef struct {
	IDPerfil int64 `json:"idPerfil"`
}

// UsuarioListOptions filters the account listing.
type UsuarioListOptions struct {
	// Perfil filters by profile description; empty means all.
	Perfil string
	// Status is "ativos", "inativos" or "todos".
	Status string
}

// UsuariosClient manages accounts. The operadores route backing it is
// restricted to GESTOR, which the server enforces with 403.
type UsuariosClient struct {
	client *Client
}

// List returns the accounts matching the filter.
func (u *UsuariosClient) List(ctx context.Context, opts UsuarioListOptions) ([]Usuario, error) {
	query := url.Values{}
	query.Set("perfil", opts.Perfil)
	status := opts.Status
	if status == "" {
		status = "todos"
	}
	query.Set("status", status)
	var usuarios []Usuario
	if err := u.client.sendAndDecode(ctx, http.MethodGet, "/usuarios?"+query.Encode(), nil, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

// Create registers a new account.
func (u *UsuariosClient) Create(ctx context.Context, req UsuarioCreateRequest) error {
	req.Ativo = true
	return u.client.sendAndDecode(ctx, http.MethodPost, "/usuarios", req, nil)
}

// Update changes an existing account's data.
func (u *UsuariosClient) Update(ctx context.Context, id int64, req UsuarioUpdateRequest) error {
	return u.client.sendAndDecode(ctx, http.MethodPut, fmt.Sprintf("/usuarios/%d", id), req, nil)
}

// Deactivate soft-deletes an account.
func (u *UsuariosClient) Deactivate(ctx context.Context, id int64) error {
	return u.client.sendAndDecode(ctx, http.MethodDelete, fmt.Sprintf("/usuarios/%d", id), nil, nil)
}

// Reactivate restores a deactivated account.
func (u *UsuariosClient) Reactivate(ctx context.Context, id int64) error {
	payload := map[string]bool{"ativo": true}
	return u.client.sendAndDecode(ctx, http.MethodPatch, fmt.Sprintf("/usuarios/%d", id), payload, nil)
}

// ResetSenha replaces an account's password.
func (u *UsuariosClient) ResetSenha(ctx context.Context, id int64, novaSenha string) error {
	payload := map[string]string{"novaSenha": novaSenha}
	return u.client.sendAndDecode(ctx, http.MethodPut, fmt.Sprintf("/usuarios/%d/resetar-senha", id), payload, nil)
}

// Perfis lists the assignable access profiles.
func (u *UsuariosClient) Perfis(ctx context.Context) ([]Perfil, error) {
	var perfis []Perfil
	if err := u.client.sendAndDecode(ctx, http.MethodGet, "/perfis", nil, &perfis); err != nil {
		return nil, err
	}
	return perfis, nil
}

package calcana

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Fornecedor is a sugar-cane supplier.
type Fornecedor struct {
	ID    int64  `json:"idFornecedor"`
	Nome  string `json:"nome"`
	Ativo bool   `json:"ativo"`
}

// FornecedorPage is one page of suppliers, as returned by the paginated
// listing endpoint.
type FornecedorPage struct {
	Content       []Fornecedor `json:"content"`
	TotalElements int64        `json:"totalElements"`
	TotalPages    int          `json:"totalPages"`
}

// FornecedorListOptions filters and paginates the supplier listing.
type FornecedorListOptions struct {
	// Status filters by registration state: "ativos", "inativos" or "todos".
	Status string
	// Size caps the page size; zero uses the server default.
	Size int
	Page int
}

// FornecedoresClient accesses the supplier registry.
type FornecedoresClient struct {
	client *Client
}

// List returns a page of suppliers.
func (f *FornecedoresClient) List(ctx context.Context, opts FornecedorListOptions) (FornecedorPage, error) {
	query := url.Values{}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.Size > 0 {
		query.Set("size", strconv.Itoa(opts.Size))
	}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	path := "/fornecedores"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var page FornecedorPage
	if err := f.client.sendAndDecode(ctx, http.MethodGet, path, nil, &page); err != nil {
		return FornecedorPage{}, err
	}
	return page, nil
}

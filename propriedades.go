package calcana

import (
	"context"
	"fmt"
	"net/http"
)

// Propriedade is a farm property tied to a supplier.
type Propriedade struct {
	ID   int64  `json:"idPropriedade"`
	Nome string `json:"nome"`
}

// PropriedadesClient accesses the property registry.
type PropriedadesClient struct {
	client *Client
}

// ListByFornecedor returns the properties registered under one supplier.
func (p *PropriedadesClient) ListByFornecedor(ctx context.Context, fornecedorID int64) ([]Propriedade, error) {
	path := fmt.Sprintf("/propriedades/por-fornecedor/%d", fornecedorID)
	var propriedades []Propriedade
	if err := p.client.sendAndDecode(ctx, http.MethodGet, path, nil, &propriedades); err != nil {
		return nil, err
	}
	return propriedades, nil
}

package calcana

import (
	"context"
	"net/http"
)

// AnaliseRef references another entity by id in analysis payloads.
type AnaliseRef struct {
	IDPropriedade int64 `json:"idPropriedade,omitempty"`
	IDUsuario     int64 `json:"idUsuario,omitempty"`
}

// AnaliseCreateRequest is the laboratory reading submitted for one sample.
// The server computes the derived coefficients (pol, pureza, fibra, ATR).
type AnaliseCreateRequest struct {
	NumeroAmostra        int        `json:"numeroAmostra"`
	DataAnalise          string     `json:"dataAnalise"`
	PBU                  float64    `json:"pbu"`
	Brix                 float64    `json:"brix"`
	LeituraSacarimetrica float64    `json:"leituraSacarimetrica"`
	Zona                 string     `json:"zona"`
	Talhao               string     `json:"talhao"`
	Corte                int        `json:"corte"`
	Observacoes          string     `json:"observacoes"`
	Propriedade          AnaliseRef `json:"propriedade"`
	UsuarioLancamento    AnaliseRef `json:"usuarioLancamento"`
}

// AnaliseResultado carries the coefficients the server computed for a sample.
type AnaliseResultado struct {
	ID                   int64   `json:"idAnalise"`
	NumeroAmostra        int     `json:"numeroAmostra"`
	DataAnalise          string  `json:"dataAnalise"`
	PBU                  float64 `json:"pbu"`
	Brix                 float64 `json:"brix"`
	LeituraSacarimetrica float64 `json:"leituraSacarimetrica"`
	PolCaldo             float64 `json:"polCaldo"`
	Pureza               float64 `json:"pureza"`
	PolCana              float64 `json:"polCana"`
	Fibra                float64 `json:"fibra"`
	ARCana               float64 `json:"arCana"`
	ARCaldo              float64 `json:"arCaldo"`
	ATR                  float64 `json:"atr"`
}

// AnalisesClient submits laboratory analyses.
type AnalisesClient struct {
	client *Client
}

// Create posts one sample reading and returns the computed results.
func (a *AnalisesClient) Create(ctx context.Context, req AnaliseCreateRequest) (AnaliseResultado, error) {
	var resultado AnaliseResultado
	if err := a.client.sendAndDecode(ctx, http.MethodPost, "/analises", req, &resultado); err != nil {
		return AnaliseResultado{}, err
	}
	return resultado, nil
}

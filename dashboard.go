package calcana

import (
	"context"
	"net/http"
)

// DashboardMetrics summarizes the season at a glance.
type DashboardMetrics struct {
	TotalAnalises      int64   `json:"totalAnalises"`
	AnalisesEsteAno    int64   `json:"analisesEsteAno"`
	FornecedoresAtivos int64   `json:"fornecedoresAtivos"`
	PropriedadesAtivas int64   `json:"propriedadesAtivas"`
	MediaATR           float64 `json:"mediaATR"`
	UltimaAnalise      string  `json:"ultimaAnalise"`
}

// AnaliseMensal is one month of analysis volume and average ATR.
type AnaliseMensal struct {
	Mes      string  `json:"mes"`
	Analises int     `json:"analises"`
	ATR      float64 `json:"atr"`
}

// AtividadeRecente is one entry of the recent-activity feed.
type AtividadeRecente struct {
	ID        string   `json:"id"`
	Tipo      string   `json:"tipo"`
	Descricao string   `json:"descricao"`
	Data      string   `json:"data"`
	ATR       *float64 `json:"atr,omitempty"`
	Usuario   string   `json:"usuario"`
}

// DashboardClient reads the aggregated dashboard views. The dashboard issues
// its three fetches concurrently; each rides the gateway independently.
type DashboardClient struct {
	client *Client
}

// Metrics returns the headline numbers.
func (d *DashboardClient) Metrics(ctx context.Context) (DashboardMetrics, error) {
	var metrics DashboardMetrics
	if err := d.client.sendAndDecode(ctx, http.MethodGet, "/dashboard/metrics", nil, &metrics); err != nil {
		return DashboardMetrics{}, err
	}
	return metrics, nil
}

// AnalisesMensais returns the per-month series for the volume chart.
func (d *DashboardClient) AnalisesMensais(ctx context.Context) ([]AnaliseMensal, error) {
	var meses []AnaliseMensal
	if err := d.client.sendAndDecode(ctx, http.MethodGet, "/dashboard/analises-mensais", nil, &meses); err != nil {
		return nil, err
	}
	return meses, nil
}

// AtividadesRecentes returns the latest activity feed entries.
func (d *DashboardClient) AtividadesRecentes(ctx context.Context) ([]AtividadeRecente, error) {
	var atividades []AtividadeRecente
	if err := d.client.sendAndDecode(ctx, http.MethodGet, "/dashboard/atividades-recentes", nil, &atividades); err != nil {
		return nil, err
	}
	return atividades, nil
}

package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	calcana "github.com/calcana/calcana-go"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the season dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.requireRoute(calcana.RouteDashboard); err != nil {
				return err
			}

			ctx := cmd.Context()

			// The three views load in parallel, like the web dashboard.
			var (
				wg         sync.WaitGroup
				metrics    calcana.DashboardMetrics
				meses      []calcana.AnaliseMensal
				atividades []calcana.AtividadeRecente

				metricsErr, mesesErr, atividadesErr error
			)
			wg.Add(3)
			go func() {
				defer wg.Done()
				metrics, metricsErr = a.client.Dashboard.Metrics(ctx)
			}()
			go func() {
				defer wg.Done()
				meses, mesesErr = a.client.Dashboard.AnalisesMensais(ctx)
			}()
			go func() {
				defer wg.Done()
				atividades, atividadesErr = a.client.Dashboard.AtividadesRecentes(ctx)
			}()
			wg.Wait()

			for _, err := range []error{metricsErr, mesesErr, atividadesErr} {
				if err != nil {
					return err
				}
			}

			fmt.Printf("Análises: %d no total, %d este ano\n", metrics.TotalAnalises, metrics.AnalisesEsteAno)
			fmt.Printf("Fornecedores ativos: %d  Propriedades ativas: %d\n", metrics.FornecedoresAtivos, metrics.PropriedadesAtivas)
			fmt.Printf("ATR médio: %.2f  Última análise: %s\n", metrics.MediaATR, metrics.UltimaAnalise)

			if len(meses) > 0 {
				fmt.Println("\nAnálises por mês:")
				for _, m := range meses {
					fmt.Printf("  %-10s %4d análises  ATR %.2f\n", m.Mes, m.Analises, m.ATR)
				}
			}
			if len(atividades) > 0 {
				fmt.Println("\nAtividades recentes:")
				for _, at := range atividades {
					fmt.Printf("  [%s] %s — %s (%s)\n", at.Data, at.Tipo, at.Descricao, at.Usuario)
				}
			}
			return nil
		},
	}
}

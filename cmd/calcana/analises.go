package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	calcana "github.com/calcana/calcana-go"
)

func analisesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analises",
		Short: "Laboratory analyses",
	}
	cmd.AddCommand(analisesLancarCmd())
	return cmd
}

func analisesLancarCmd() *cobra.Command {
	var (
		propriedadeID int64
		amostra       int
		data          string
		pbu           float64
		brix          float64
		leitura       float64
		zona          string
		talhao        string
		corte         int
		observacoes   string
	)

	cmd := &cobra.Command{
		Use:   "lancar",
		Short: "Submit one sample reading",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.requireRoute(calcana.RouteAnalises); err != nil {
				return err
			}

			if data == "" {
				data = time.Now().Format("2006-01-02")
			}
			resultado, err := a.client.Analises.Create(cmd.Context(), calcana.AnaliseCreateRequest{
				NumeroAmostra:        amostra,
				DataAnalise:          data,
				PBU:                  pbu,
				Brix:                 brix,
				LeituraSacarimetrica: leitura,
				Zona:                 zona,
				Talhao:               talhao,
				Corte:                corte,
				Observacoes:          observacoes,
				Propriedade:          calcana.AnaliseRef{IDPropriedade: propriedadeID},
				UsuarioLancamento:    calcana.AnaliseRef{IDUsuario: a.session.UserID},
			})
			if err != nil {
				return err
			}

			fmt.Printf("Análise %d registrada (amostra %d)\n", resultado.ID, resultado.NumeroAmostra)
			fmt.Printf("  Pol caldo: %.2f  Pureza: %.2f  Pol cana: %.2f\n", resultado.PolCaldo, resultado.Pureza, resultado.PolCana)
			fmt.Printf("  Fibra: %.2f  AR cana: %.2f  AR caldo: %.2f\n", resultado.Fibra, resultado.ARCana, resultado.ARCaldo)
			fmt.Printf("  ATR: %.2f kg/t\n", resultado.ATR)
			return nil
		},
	}

	cmd.Flags().Int64Var(&propriedadeID, "propriedade", 0, "Property id")
	cmd.Flags().IntVar(&amostra, "amostra", 0, "Sample number")
	cmd.Flags().StringVar(&data, "data", "", "Analysis date (YYYY-MM-DD, default today)")
	cmd.Flags().Float64Var(&pbu, "pbu", 0, "Wet sample weight (PBU)")
	cmd.Flags().Float64Var(&brix, "brix", 0, "Brix reading")
	cmd.Flags().Float64Var(&leitura, "leitura", 0, "Saccharimetric reading")
	cmd.Flags().StringVar(&zona, "zona", "", "Zone")
	cmd.Flags().StringVar(&talhao, "talhao", "", "Plot")
	cmd.Flags().IntVar(&corte, "corte", 1, "Cut number")
	cmd.Flags().StringVar(&observacoes, "obs", "", "Notes")
	_ = cmd.MarkFlagRequired("propriedade")
	_ = cmd.MarkFlagRequired("amostra")
	_ = cmd.MarkFlagRequired("pbu")
	_ = cmd.MarkFlagRequired("brix")
	_ = cmd.MarkFlagRequired("leitura")

	return cmd
}

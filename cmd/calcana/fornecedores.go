package main

import (
	"fmt"

	"github.com/spf13/cobra"

	calcana "github.com/calcana/calcana-go"
)

func fornecedoresCmd() *cobra.Command {
	var status string
	var size int

	cmd := &cobra.Command{
		Use:   "fornecedores",
		Short: "List registered suppliers",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.requireRoute(calcana.RouteFornecedores); err != nil {
				return err
			}

			page, err := a.client.Fornecedores.List(cmd.Context(), calcana.FornecedorListOptions{
				Status: status,
				Size:   size,
			})
			if err != nil {
				return err
			}
			for _, f := range page.Content {
				estado := "ativo"
				if !f.Ativo {
					estado = "inativo"
				}
				fmt.Printf("%5d  %-40s %s\n", f.ID, f.Nome, estado)
			}
			fmt.Printf("%d fornecedor(es)\n", page.TotalElements)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "ativos", "Filter: ativos, inativos or todos")
	cmd.Flags().IntVar(&size, "size", 20, "Page size")

	return cmd
}

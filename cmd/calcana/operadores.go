package main

import (
	"fmt"

	"github.com/spf13/cobra"

	calcana "github.com/calcana/calcana-go"
)

func operadoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operadores",
		Short: "Manage operator accounts (GESTOR only)",
	}
	cmd.AddCommand(operadoresListCmd(), operadoresResetSenhaCmd())
	return cmd
}

func operadoresListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.requireRoute(calcana.RouteOperadores); err != nil {
				return err
			}

			usuarios, err := a.client.Usuarios.List(cmd.Context(), calcana.UsuarioListOptions{Status: status})
			if err != nil {
				return err
			}
			for _, u := range usuarios {
				estado := "ativo"
				if !u.Ativo {
					estado = "inativo"
				}
				fmt.Printf("%5d  %-30s %-30s %-8s %s\n", u.ID, u.Nome, u.Email, u.Perfil.Descricao, estado)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "todos", "Filter: ativos, inativos or todos")

	return cmd
}

func operadoresResetSenhaCmd() *cobra.Command {
	var id int64
	var senha string

	cmd := &cobra.Command{
		Use:   "reset-senha",
		Short: "Replace an account's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.requireRoute(calcana.RouteOperadores); err != nil {
				return err
			}

			if err := a.client.Usuarios.ResetSenha(cmd.Context(), id, senha); err != nil {
				return err
			}
			fmt.Println("Senha alterada com sucesso.")
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Account id")
	cmd.Flags().StringVar(&senha, "senha", "", "New password")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("senha")

	return cmd
}

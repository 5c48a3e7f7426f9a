package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	calcana "github.com/calcana/calcana-go"
)

func loginCmd() *cobra.Command {
	var email string
	var senha string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the Calcana API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			// The login entry point consumes any reason queued by a
			// forced logout before rendering.
			if reason, ok := a.client.Auth.PendingLogoutReason(); ok {
				fmt.Fprintln(os.Stderr, reason)
			}

			if a.session.Authenticated {
				fmt.Printf("Já autenticado como %s. Use 'calcana logout' para trocar de conta.\n", a.session.Email)
				return nil
			}

			reader := bufio.NewReader(cmd.InOrStdin())
			if email == "" {
				fmt.Print("E-mail: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				email = strings.TrimSpace(line)
			}
			if senha == "" {
				fmt.Print("Senha: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				senha = strings.TrimSpace(line)
			}

			session, err := a.client.Auth.Login(cmd.Context(), calcana.Credentials{Email: email, Senha: senha})
			if err != nil {
				if errors.Is(err, calcana.ErrInvalidCredentials) {
					return errors.New(calcana.MsgInvalidCredentials)
				}
				return err
			}
			fmt.Printf("Bem-vindo(a), %s (%s).\n", session.Name, session.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "E-mail address")
	cmd.Flags().StringVarP(&senha, "senha", "p", "", "Password (prompted when omitted)")

	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			a.client.Auth.Logout()
			fmt.Println("Sessão encerrada.")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if !a.session.Authenticated {
				fmt.Println("Não autenticado.")
				return nil
			}
			fmt.Printf("%s <%s> — perfil %s (id %d)\n", a.session.Name, a.session.Email, a.session.Role, a.session.UserID)
			return nil
		},
	}
}

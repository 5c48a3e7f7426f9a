// Command calcana is a terminal front-end for the Calcana sugar-cane
// analysis system.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "calcana",
		Short: "Sistema de Análise de Cana-de-açúcar",
		Long: `Calcana is a client for the Calcana laboratory analysis API.

Authenticate with 'calcana login'; the session is kept across runs
until it expires or you log out.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		dashboardCmd(),
		fornecedoresCmd(),
		analisesCmd(),
		operadoresCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("calcana %s (%s)\n", version, commit)
		},
	}
}

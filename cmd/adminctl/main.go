package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd é o comando base do utilitário operacional.
var rootCmd = &cobra.Command{
	Use:   "adminctl",
	Short: "Ferramentas operacionais do back-office.",
	Long: `adminctl reúne as tarefas de provisionamento que não passam pela API:

	setup          imprime as instruções de provisionamento do banco
	bootstrap      cria a conta padrão se não houver nenhum administrador
	hash-password  gera um hash bcrypt para semear contas manualmente`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newSetupCmd(), newBootstrapCmd(), newHashPasswordCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

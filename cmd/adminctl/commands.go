package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"backoffice/config"
	"backoffice/internal/pkg/database"
	"backoffice/internal/pkg/logger"
	"backoffice/internal/pkg/password"
	"backoffice/internal/pkg/token"
	"backoffice/internal/repository/adminrepo"
	"backoffice/internal/service/authservice"
)

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Imprime as instruções de provisionamento (as mesmas de GET /api/setup).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := authservice.SetupInstructions()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, info.Message)
			for _, step := range info.Instructions {
				fmt.Fprintln(out, "  "+step)
			}
			fmt.Fprintf(out, "\nMigrações: %s\n", info.Migrate)
			return nil
		},
	}
}

func newBootstrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Cria admin/admin123 se a tabela de administradores estiver vazia.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.NewLogger(cfg.LogLevel)

			db, err := database.NewPostgresDB(cfg.DatabaseURL, cfg.DBTimeout)
			if err != nil {
				return fmt.Errorf("falha ao conectar ao banco: %w", err)
			}
			defer db.Close()

			svc := authservice.NewService(
				adminrepo.NewAdminRepository(db, cfg.DBTimeout, log),
				password.NewHasher(password.DefaultCost),
				token.NewService(cfg.JWTSecretKey),
				log,
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			created, err := svc.EnsureBootstrapped(ctx)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Conta criada: %s / %s. Troque a senha após o primeiro login.\n",
					authservice.DefaultUsername, authservice.DefaultPassword)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Já existem administradores; nada a fazer.")
			return nil
		},
	}
}

func newHashPasswordCmd() *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:     "hash-password [senha]",
		Short:   "Gera um hash bcrypt para a senha informada.",
		Example: "adminctl hash-password 's3nh@forte'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := password.NewHasher(cost).Hash(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", password.DefaultCost, "custo do bcrypt")
	return cmd
}

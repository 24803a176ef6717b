package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/signoff/internal/auth"
	"github.com/MrJamesThe3rd/signoff/internal/config"
	"github.com/MrJamesThe3rd/signoff/internal/database"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "signoffctl",
		Short:         "Operator tooling for the signoff API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
				slog.Warn("failed to load .env", "error", err)
			}
		},
	}

	cmd.AddCommand(newTokenCmd())
	cmd.AddCommand(newMigrateCmd())

	return cmd
}

func newTokenCmd() *cobra.Command {
	var (
		owner string
		ttl   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an owner bearer token",
		Long:  "Signs a JWT for the given owner id with JWT_SECRET. A random owner id is used when none is given.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ownerID := uuid.New()
			if owner != "" {
				if ownerID, err = uuid.Parse(owner); err != nil {
					return fmt.Errorf("invalid --owner: %w", err)
				}
			}

			token, err := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer).Issue(ownerID, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "owner: %s\n", ownerID)
			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "owner id (UUID) to put in the token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := database.New(cfg.ConnectionString())
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(db); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")

			return nil
		},
	}
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}

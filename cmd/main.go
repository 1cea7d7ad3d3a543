package main

import (
	"encoding/json"
	"os"

	"hospital-registry/cmd/bootstrap"
	"hospital-registry/config"
	"hospital-registry/internal/delivery/dto"
	"hospital-registry/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "registry",
		Short: "Hospital registry API",
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to the env file")

	load := func() (*config.Config, error) {
		return config.LoadConfigFrom(envFile)
	}

	rootCmd.AddCommand(serveCmd(load))
	rootCmd.AddCommand(tokenCmd(load))
	rootCmd.AddCommand(migrateCmd(load))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type configLoader func() (*config.Config, error)

func serveCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the registry API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			// Initialize application with all dependencies
			app, err := bootstrap.New(cfg)
			if err != nil {
				logrus.Errorf("Failed to initialize application: %v", err)
				return err
			}

			app.Run()
			return nil
		},
	}
}

func tokenCmd(load configLoader) *cobra.Command {
	var (
		subject string
		role    string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an operator access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			issued, err := bootstrap.IssueToken(cmd.Context(), cfg, subject, jwt.Role(role))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.TokenResponse{
				AccessToken: issued.Token,
				TokenType:   "Bearer",
				ExpiresIn:   int64(issued.ExpiresIn.Seconds()),
			})
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "Operator the token is issued to")
	cmd.Flags().StringVar(&role, "role", string(jwt.RoleStaff), "Operator role (admin or staff)")
	cmd.MarkFlagRequired("subject")
	return cmd
}

func migrateCmd(load configLoader) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long:  "Apply database migrations. --steps applies that many migrations, negative values roll back.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return bootstrap.RunMigrations(cfg, steps)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 0, "Number of migrations to apply, 0 for all")
	return cmd
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/canonical/company-service/internal/logging"
	"github.com/canonical/company-service/internal/monitoring"
	"github.com/canonical/company-service/internal/tracing"
	"github.com/canonical/company-service/pkg/authentication"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Work with session tokens offline",
}

var issueTokenCmd = &cobra.Command{
	Use:   "issue",
	Short: "Mint a session token with the configured JWT_SECRET",
	Long: `Mint a session token for a company without going through /login.
The token is signed with JWT_SECRET, read from the environment or a .env file,
and is only accepted by servers sharing that secret.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		id, _ := cmd.Flags().GetInt64("id")
		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")

		if id <= 0 {
			return fmt.Errorf("invalid company id %d", id)
		}

		logger := logging.NewNoopLogger()
		tokens, err := authentication.NewTokenService(
			os.Getenv("JWT_SECRET"),
			tracing.NewNoopTracer(),
			monitoring.NewNoopMonitor("company-service", logger),
			logger,
		)
		if err != nil {
			return err
		}

		token, err := tokens.IssueToken(cmd.Context(), &authentication.Identity{CompanyID: id, Email: email, CompanyName: name})
		if err != nil {
			return fmt.Errorf("failed to issue token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(issueTokenCmd)

	issueTokenCmd.Flags().Int64("id", 0, "Company ID")
	issueTokenCmd.Flags().String("email", "", "Company email")
	issueTokenCmd.Flags().String("name", "", "Company name")

	_ = issueTokenCmd.MarkFlagRequired("id")
}

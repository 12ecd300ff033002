// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	httptypes "github.com/canonical/company-service/internal/http/types"
	"github.com/canonical/company-service/pkg/company"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage companies",
}

var registerCompanyCmd = &cobra.Command{
	Use:   "register [name] [email]",
	Short: "Register a new company, the password is read from --password",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")

		var resp httptypes.MessageResponse
		err := getClient().do(cmd.Context(), http.MethodPost, "/companies", nil, company.RegisterCompanyRequest{
			CompanyName: args[0],
			Email:       args[1],
			Password:    password,
		}, &resp)
		if err != nil {
			return fmt.Errorf("failed to register company: %w", err)
		}

		if resp.ID != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Company registered: %s (ID: %d)\n", args[0], *resp.ID)
		}
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in and print a session token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")

		var resp company.LoginResponse
		err := getClient().do(cmd.Context(), http.MethodPost, "/login", nil, company.LoginRequest{
			Email:    args[0],
			Password: password,
		}, &resp)
		if err != nil {
			return fmt.Errorf("failed to log in: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), resp.Token)
		return nil
	},
}

var listCompaniesCmd = &cobra.Command{
	Use:   "list",
	Short: "List every company",
	RunE: func(cmd *cobra.Command, args []string) error {
		var companies []company.Company
		if err := getClient().do(cmd.Context(), http.MethodGet, "/companies", nil, nil, &companies); err != nil {
			return fmt.Errorf("failed to list companies: %w", err)
		}

		rows := make([][]string, 0, len(companies))
		for _, c := range companies {
			rows = append(rows, []string{strconv.FormatInt(c.ID, 10), c.CompanyName, c.Email})
		}

		return render(cmd.OutOrStdout(), companies, []string{"ID", "NAME", "EMAIL"}, rows)
	},
}

var renameCompanyCmd = &cobra.Command{
	Use:   "rename [id] [name]",
	Short: "Change the name of your company",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := getClient().do(cmd.Context(), http.MethodPut, "/companies/"+args[0], nil, company.UpdateCompanyRequest{
			CompanyName: args[1],
		}, nil)
		if err != nil {
			return fmt.Errorf("failed to rename company: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Company %s renamed to %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(companyCmd)

	companyCmd.AddCommand(registerCompanyCmd)
	companyCmd.AddCommand(loginCmd)
	companyCmd.AddCommand(listCompaniesCmd)
	companyCmd.AddCommand(renameCompanyCmd)

	for _, c := range []*cobra.Command{registerCompanyCmd, loginCmd} {
		c.Flags().String("password", "", "Company password")
		_ = c.MarkFlagRequired("password")
	}

	listCompaniesCmd.Flags().StringVarP(&outputFormat, "format", "f", "table", "Output format (table or json)")
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	httptypes "github.com/canonical/company-service/internal/http/types"
	"github.com/canonical/company-service/pkg/product"
)

var productHeaders = []string{"ID", "NAME", "PRICE", "COMPANY"}

func productRows(products []product.Product) [][]string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			strconv.FormatInt(p.CompanyID, 10),
		})
	}
	return rows
}

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage products",
}

var createProductCmd = &cobra.Command{
	Use:   "create [name] [price]",
	Short: "Create a product owned by your company",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", args[1], err)
		}

		var resp httptypes.MessageResponse
		err = getClient().do(cmd.Context(), http.MethodPost, "/products", nil, product.CreateProductRequest{
			Name:  args[0],
			Price: &price,
		}, &resp)
		if err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}

		if resp.ID != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Product created: %s (ID: %d)\n", args[0], *resp.ID)
		}
		return nil
	},
}

var deleteProductCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete one of your products",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().do(cmd.Context(), http.MethodDelete, "/products/"+args[0], nil, nil, nil); err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Product deleted: %s\n", args[0])
		return nil
	},
}

var listProductsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the product catalogue page by page",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt64("page")
		limit, _ := cmd.Flags().GetInt64("limit")

		query := url.Values{}
		query.Set("page", strconv.FormatInt(page, 10))
		query.Set("limit", strconv.FormatInt(limit, 10))

		var resp product.ProductPage
		if err := getClient().do(cmd.Context(), http.MethodGet, "/products", query, nil, &resp); err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}

		if err := render(cmd.OutOrStdout(), resp, productHeaders, productRows(resp.Products)); err != nil {
			return err
		}

		if outputFormat != "json" {
			fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d, %d products\n", resp.Pagination.Page, resp.Pagination.Pages, resp.Pagination.Total)
		}
		return nil
	},
}

var myProductsCmd = &cobra.Command{
	Use:   "mine",
	Short: "List the products of your company",
	RunE: func(cmd *cobra.Command, args []string) error {
		var products []product.Product
		if err := getClient().do(cmd.Context(), http.MethodGet, "/my-products", nil, nil, &products); err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}

		return render(cmd.OutOrStdout(), products, productHeaders, productRows(products))
	},
}

var companyProductsCmd = &cobra.Command{
	Use:   "company [company-id]",
	Short: "List the products of a company, only your own is allowed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var products []product.Product
		if err := getClient().do(cmd.Context(), http.MethodGet, "/companies/"+args[0]+"/products", nil, nil, &products); err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}

		return render(cmd.OutOrStdout(), products, productHeaders, productRows(products))
	},
}

var searchProductsCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search products by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var products []product.Product
		err := getClient().do(cmd.Context(), http.MethodGet, "/products/search", url.Values{"q": {args[0]}}, nil, &products)
		if err != nil {
			return fmt.Errorf("failed to search products: %w", err)
		}

		return render(cmd.OutOrStdout(), products, productHeaders, productRows(products))
	},
}

func init() {
	rootCmd.AddCommand(productCmd)

	productCmd.AddCommand(createProductCmd)
	productCmd.AddCommand(deleteProductCmd)
	productCmd.AddCommand(listProductsCmd)
	productCmd.AddCommand(myProductsCmd)
	productCmd.AddCommand(companyProductsCmd)
	productCmd.AddCommand(searchProductsCmd)

	listProductsCmd.Flags().Int64("page", 1, "Page number")
	listProductsCmd.Flags().Int64("limit", 10, "Page size, at most 100")

	for _, c := range []*cobra.Command{listProductsCmd, myProductsCmd, companyProductsCmd, searchProductsCmd} {
		c.Flags().StringVarP(&outputFormat, "format", "f", "table", "Output format (table or json)")
	}
}

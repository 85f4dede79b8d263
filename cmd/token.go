// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/canonical/workspace-service/pkg/authentication"
)

var (
	clientID     string
	clientSecret string
	tokenURL     string
	issuerURL    string
	scopes       []string
	exportToken  bool
)

// tokenCmd fetches a service token, its output feeds the --access-token flag of the api commands
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an access token using Client Credentials flow",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		endpoint := tokenURL
		if endpoint == "" {
			if issuerURL == "" {
				return fmt.Errorf("either --token-url or --issuer-url must be provided")
			}

			provider, err := authentication.NewProvider(ctx, issuerURL)
			if err != nil {
				return err
			}
			endpoint = provider.Endpoint().TokenURL
		}

		config := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     endpoint,
			Scopes:       scopes,
		}

		token, err := config.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		if exportToken {
			fmt.Fprintf(cmd.OutOrStdout(), "--access-token=%s\n", token.AccessToken)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&clientID, "client-id", "", "Client ID")
	tokenCmd.Flags().StringVar(&clientSecret, "client-secret", "", "Client Secret")
	tokenCmd.Flags().StringVar(&tokenURL, "token-url", "", "Token URL")
	tokenCmd.Flags().StringVar(&issuerURL, "issuer-url", "", "Issuer URL (for OIDC discovery)")
	tokenCmd.Flags().StringSliceVar(&scopes, "scopes", []string{}, "Scopes (comma-separated)")
	tokenCmd.Flags().BoolVar(&exportToken, "export", false, "Print the token as an --access-token flag")

	_ = tokenCmd.MarkFlagRequired("client-id")
	_ = tokenCmd.MarkFlagRequired("client-secret")
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/organizations"
)

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "Manage organizations",
}

var listOrgsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the organizations visible to the user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var orgs []*types.Organization
		if err := getClient().do(cmd.Context(), http.MethodGet, "/organizations", nil, &orgs); err != nil {
			return fmt.Errorf("failed to list organizations: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSLUG\tOWNER")
		for _, o := range orgs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.ID, o.Name, o.Slug, o.PrimaryOwnerUserID)
		}
		w.Flush()
		return nil
	},
}

var createOrgCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create an organization owned by the user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o := new(types.Organization)
		req := organizations.CreateOrganizationRequest{Name: args[0]}
		if err := getClient().do(cmd.Context(), http.MethodPost, "/organizations", req, o); err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}

		fmt.Printf("Organization created: %s (ID: %s, slug: %s)\n", o.Name, o.ID, o.Slug)
		return nil
	},
}

var deleteOrgCmd = &cobra.Command{
	Use:   "delete [org-id]",
	Short: "Delete an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().do(cmd.Context(), http.MethodDelete, "/organizations/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to delete organization: %w", err)
		}

		fmt.Printf("Organization deleted: %s\n", args[0])
		return nil
	},
}

var listMembersCmd = &cobra.Command{
	Use:   "members [org-id]",
	Short: "List the members of an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var members []*types.OrgMembership
		if err := getClient().do(cmd.Context(), http.MethodGet, "/organizations/"+args[0]+"/members", nil, &members); err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_ID\tEMAIL\tJOINED")
		for _, m := range members {
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.UserID, m.Email, m.CreatedAt.Format("2006-01-02"))
		}
		w.Flush()
		return nil
	},
}

func init() {
	orgCmd.AddCommand(listOrgsCmd)
	orgCmd.AddCommand(createOrgCmd)
	orgCmd.AddCommand(deleteOrgCmd)
	orgCmd.AddCommand(listMembersCmd)
	rootCmd.AddCommand(orgCmd)
}

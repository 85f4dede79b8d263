// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/permissions"
	"github.com/canonical/workspace-service/pkg/roles"
)

var (
	roleDisplayName string
	roleDescription string
	roleScope       string
	roleTeamID      string
	permissionsFile string
)

var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "Manage custom roles and their permissions",
}

var listRolesCmd = &cobra.Command{
	Use:   "list [org-id]",
	Short: "List the roles of an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var rs []*types.Role
		if err := getClient().do(cmd.Context(), http.MethodGet, "/organizations/"+args[0]+"/roles", nil, &rs); err != nil {
			return fmt.Errorf("failed to list roles: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSCOPE\tTEAM_ID")
		for _, r := range rs {
			team := ""
			if r.TeamID != nil {
				team = *r.TeamID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Scope, team)
		}
		w.Flush()
		return nil
	},
}

var getRoleCmd = &cobra.Command{
	Use:   "get [role-id]",
	Short: "Show a role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := new(types.Role)
		if err := getClient().do(cmd.Context(), http.MethodGet, "/roles/"+args[0], nil, r); err != nil {
			return fmt.Errorf("failed to get role: %w", err)
		}

		fmt.Printf("ID: %s\n", r.ID)
		fmt.Printf("Name: %s\n", r.Name)
		fmt.Printf("Display Name: %s\n", r.DisplayName)
		fmt.Printf("Scope: %s\n", r.Scope)
		fmt.Printf("Organization: %s\n", r.OrgID)
		if r.TeamID != nil {
			fmt.Printf("Team: %s\n", *r.TeamID)
		}
		return nil
	},
}

var createRoleCmd = &cobra.Command{
	Use:   "create [org-id] [name]",
	Short: "Create a custom role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := roles.CreateRoleRequest{
			Name:        args[1],
			DisplayName: roleDisplayName,
			Description: roleDescription,
			Scope:       types.RoleScope(roleScope),
		}
		if roleTeamID != "" {
			req.TeamID = &roleTeamID
		}

		r := new(types.Role)
		if err := getClient().do(cmd.Context(), http.MethodPost, "/organizations/"+args[0]+"/roles", req, r); err != nil {
			return fmt.Errorf("failed to create role: %w", err)
		}

		fmt.Printf("Role created: %s (ID: %s)\n", r.Name, r.ID)
		return nil
	},
}

var deleteRoleCmd = &cobra.Command{
	Use:   "delete [role-id]",
	Short: "Delete a custom role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().do(cmd.Context(), http.MethodDelete, "/roles/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to delete role: %w", err)
		}

		fmt.Printf("Role deleted: %s\n", args[0])
		return nil
	},
}

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "Inspect and replace the permissions of a role",
}

var getPermissionsCmd = &cobra.Command{
	Use:   "get [role-id]",
	Short: "List the permissions granted to a role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ps []*types.RolePermission
		if err := getClient().do(cmd.Context(), http.MethodGet, "/roles/"+args[0]+"/permissions", nil, &ps); err != nil {
			return fmt.Errorf("failed to get permissions: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "RESOURCE\tACTION\tSCOPE\tCASCADE\tTARGET")
		for _, p := range ps {
			target := ""
			if p.TargetKind != nil {
				target = *p.TargetKind
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", p.Resource, permissions.ActionLabel(p.Action), p.Scope, p.CascadeDown, target)
		}
		w.Flush()
		return nil
	},
}

var setPermissionsCmd = &cobra.Command{
	Use:   "set [role-id]",
	Short: "Replace the permissions of a role with the assignments in a json file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(permissionsFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", permissionsFile, err)
		}

		var assignments []permissions.Assignment
		if err := json.Unmarshal(raw, &assignments); err != nil {
			return fmt.Errorf("failed to parse assignments: %w", err)
		}

		var ps []*types.RolePermission
		req := roles.ReplacePermissionsRequest{Permissions: assignments}
		if err := getClient().do(cmd.Context(), http.MethodPut, "/roles/"+args[0]+"/permissions", req, &ps); err != nil {
			return fmt.Errorf("failed to replace permissions: %w", err)
		}

		fmt.Printf("Permissions replaced: %d granted\n", len(ps))
		return nil
	},
}

func init() {
	createRoleCmd.Flags().StringVar(&roleDisplayName, "display-name", "", "Display name of the role")
	createRoleCmd.Flags().StringVar(&roleDescription, "description", "", "Description of the role")
	createRoleCmd.Flags().StringVar(&roleScope, "scope", string(types.RoleScopeOrganization), "Role scope (organization or team)")
	createRoleCmd.Flags().StringVar(&roleTeamID, "team-id", "", "Team the role is bound to, team scope only")

	setPermissionsCmd.Flags().StringVarP(&permissionsFile, "file", "f", "", "JSON file holding a list of assignments")
	_ = setPermissionsCmd.MarkFlagRequired("file")

	permissionsCmd.AddCommand(getPermissionsCmd)
	permissionsCmd.AddCommand(setPermissionsCmd)

	roleCmd.AddCommand(listRolesCmd)
	roleCmd.AddCommand(getRoleCmd)
	roleCmd.AddCommand(createRoleCmd)
	roleCmd.AddCommand(deleteRoleCmd)
	roleCmd.AddCommand(permissionsCmd)
	rootCmd.AddCommand(roleCmd)
}

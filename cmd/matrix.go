// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/permissions"
)

var matrixScope string

// matrixCmd prints the permission matrix compiled into the binary, no server required
var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Print the permission matrix offered to a role scope",
	RunE: func(cmd *cobra.Command, args []string) error {
		scope := types.RoleScope(matrixScope)
		if scope != types.RoleScopeOrganization && scope != types.RoleScopeTeam {
			return fmt.Errorf("invalid scope %q", matrixScope)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "RESOURCE\tLABEL\tACTIONS")
		for _, r := range permissions.Resources(scope) {
			labels := make([]string, 0, len(r.Actions))
			for _, a := range r.Actions {
				labels = append(labels, permissions.ActionLabel(a))
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Key, r.Label, strings.Join(labels, ", "))
		}
		w.Flush()
		return nil
	},
}

func init() {
	matrixCmd.Flags().StringVar(&matrixScope, "scope", string(types.RoleScopeOrganization), "Role scope (organization or team)")
	rootCmd.AddCommand(matrixCmd)
}

// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/types"
)

// CreateOrgInvite records an invitation through create_org_invite and returns its token
func (s *Storage) CreateOrgInvite(ctx context.Context, invite *types.Invitation) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrgInvite")
	defer span.End()

	teamRoles, err := types.MarshalTeamRoles(invite.TeamMemberRoles)
	if err != nil {
		return "", fmt.Errorf("failed to encode team member roles: %w", err)
	}

	var token string
	err = s.db.Statement(ctx).
		Select().
		Column(
			sq.Expr(
				"create_org_invite(?, ?, ?, ?, ?::jsonb)",
				invite.OrgID,
				invite.Email,
				invite.OrgMemberRole,
				invite.InvitationType,
				teamRoles,
			),
		).
		QueryRowContext(ctx).
		Scan(&token)

	if err != nil {
		return "", classify(err, "failed to create invitation")
	}

	return token, nil
}

func (s *Storage) ListInvitations(ctx context.Context, orgID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitations")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "email", "invitation_type", "invited_by_user_id", "org_id", "org_name", "org_member_role", "team_member_roles", "created_at", "updated_at").
		From("invitations").
		Where(sq.Eq{"org_id": orgID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	invitations := make([]*types.Invitation, 0)
	for rows.Next() {
		var i types.Invitation
		var teamRoles []byte

		if err := rows.Scan(&i.ID, &i.Email, &i.InvitationType, &i.InvitedByUserID, &i.OrgID, &i.OrgName, &i.OrgMemberRole, &teamRoles, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}

		i.TeamMemberRoles = []types.TeamRoleAssignment{}
		if len(teamRoles) > 0 {
			if err := json.Unmarshal(teamRoles, &i.TeamMemberRoles); err != nil {
				return nil, fmt.Errorf("failed to decode team member roles: %w", err)
			}
		}

		invitations = append(invitations, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

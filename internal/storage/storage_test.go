// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

func newMockStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()

	client := db.NewDBClientWithConn(conn, db.Config{}, tracer, monitor, logger)
	return NewStorage(client, tracer, monitor, logger), mock
}

func TestReplaceRolePermissions(t *testing.T) {
	teamID := "team-1"

	t.Run("delete and insert share a committed transaction", func(t *testing.T) {
		s, mock := newMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM role_permissions WHERE role_id = $1")).
			WithArgs("role-1").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO role_permissions (id,role_id,org_id,team_id,resource,action,scope,cascade_down,target_kind) VALUES")).
			WithArgs(
				sqlmock.AnyArg(), "role-1", "org-1", &teamID, "posts", "view", types.PermissionScopeOwn, false, nil,
				sqlmock.AnyArg(), "role-1", "org-1", &teamID, "posts", "edit", types.PermissionScopeOwn, false, nil,
			).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		err := s.ReplaceRolePermissions(context.Background(), "role-1", []*types.RolePermission{
			{OrgID: "org-1", TeamID: &teamID, Resource: "posts", Action: "view", Scope: types.PermissionScopeOwn},
			{OrgID: "org-1", TeamID: &teamID, Resource: "posts", Action: "edit", Scope: types.PermissionScopeOwn},
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty set only deletes", func(t *testing.T) {
		s, mock := newMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM role_permissions WHERE role_id = $1")).
			WithArgs("role-1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		require.NoError(t, s.ReplaceRolePermissions(context.Background(), "role-1", nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back the delete", func(t *testing.T) {
		s, mock := newMockStorage(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM role_permissions WHERE role_id = $1")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO role_permissions")).
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})
		mock.ExpectRollback()

		err := s.ReplaceRolePermissions(context.Background(), "role-1", []*types.RolePermission{
			{OrgID: "org-1", Resource: "members", Action: "delete", Scope: types.PermissionScopeAll},
		})

		assert.ErrorIs(t, err, ErrDuplicateKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListRolePermissions(t *testing.T) {
	s, mock := newMockStorage(t)

	rows := sqlmock.NewRows([]string{"id", "role_id", "org_id", "team_id", "resource", "action", "scope", "cascade_down", "target_kind"}).
		AddRow("p-1", "role-1", "org-1", nil, "members", "view", "all", true, nil).
		AddRow("p-2", "role-1", "org-1", nil, "posts", "edit", "own", false, "article")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, role_id, org_id, team_id, resource, action, scope, cascade_down, target_kind FROM role_permissions WHERE role_id = $1 ORDER BY resource, action")).
		WithArgs("role-1").
		WillReturnRows(rows)

	permissions, err := s.ListRolePermissions(context.Background(), "role-1")

	require.NoError(t, err)
	require.Len(t, permissions, 2)
	assert.True(t, permissions[0].CascadeDown)
	assert.Nil(t, permissions[0].TeamID)
	assert.Equal(t, types.PermissionScopeOwn, permissions[1].Scope)
	require.NotNil(t, permissions[1].TargetKind)
	assert.Equal(t, "article", *permissions[1].TargetKind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRole(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s, mock := newMockStorage(t)

		rows := sqlmock.NewRows(roleColumns).
			AddRow("role-1", "editor", "Editor", nil, "team", "org-1", "team-1", time.Now())
		mock.ExpectQuery(regexp.QuoteMeta("FROM roles WHERE id = $1")).
			WithArgs("role-1").
			WillReturnRows(rows)

		role, err := s.GetRole(context.Background(), "role-1")

		require.NoError(t, err)
		assert.Equal(t, types.RoleScopeTeam, role.Scope)
		assert.Equal(t, "", role.Description)
		require.NotNil(t, role.TeamID)
		assert.Equal(t, "team-1", *role.TeamID)
	})

	t.Run("not found", func(t *testing.T) {
		s, mock := newMockStorage(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM roles WHERE id = $1")).
			WillReturnError(sql.ErrNoRows)

		_, err := s.GetRole(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreateRoleDuplicate(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO roles (id,name,display_name,description,scope,org_id,team_id) VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING")).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "roles_org_id_name_key"})

	_, err := s.CreateRole(context.Background(), &types.Role{Name: "admin", DisplayName: "Admin", Scope: types.RoleScopeOrganization, OrgID: "org-1"})

	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), "roles_org_id_name_key")
}

func TestCreateOrgInvite(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT create_org_invite($1, $2, $3, $4, $5::jsonb)")).
		WithArgs("org-1", "new@example.com", "member", "one-time", `[{"team_id":"team-1","role":"admin"}]`).
		WillReturnRows(sqlmock.NewRows([]string{"create_org_invite"}).AddRow("token-1"))

	token, err := s.CreateOrgInvite(context.Background(), &types.Invitation{
		OrgID:           "org-1",
		Email:           "new@example.com",
		OrgMemberRole:   "member",
		InvitationType:  "one-time",
		TeamMemberRoles: []types.TeamRoleAssignment{{TeamID: "team-1", Role: "admin"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrgInviteEmptyTeamRoles(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT create_org_invite(")).
		WithArgs("org-1", "new@example.com", "admin", "24-hour", "[]").
		WillReturnRows(sqlmock.NewRows([]string{"create_org_invite"}).AddRow("token-2"))

	token, err := s.CreateOrgInvite(context.Background(), &types.Invitation{
		OrgID:          "org-1",
		Email:          "new@example.com",
		OrgMemberRole:  "admin",
		InvitationType: "24-hour",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-2", token)
}

func TestListInvitations(t *testing.T) {
	s, mock := newMockStorage(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "email", "invitation_type", "invited_by_user_id", "org_id", "org_name", "org_member_role", "team_member_roles", "created_at", "updated_at"}).
		AddRow("inv-1", "a@example.com", "one-time", "user-1", "org-1", "Acme", "member", []byte(`[{"team_id":"team-1","role":"member"}]`), now, now).
		AddRow("inv-2", "b@example.com", "24-hour", "user-1", "org-1", "Acme", "admin", nil, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM invitations WHERE org_id = $1 ORDER BY created_at DESC")).
		WithArgs("org-1").
		WillReturnRows(rows)

	invitations, err := s.ListInvitations(context.Background(), "org-1")

	require.NoError(t, err)
	require.Len(t, invitations, 2)
	assert.Equal(t, []types.TeamRoleAssignment{{TeamID: "team-1", Role: "member"}}, invitations[0].TeamMemberRoles)
	assert.Empty(t, invitations[1].TeamMemberRoles)
}

func TestCreateOrganization(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT create_organization_and_add_current_user_as_owner($1, $2)")).
		WithArgs("Acme Inc", "acme-inc").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("org-1"))

	id, err := s.CreateOrganization(context.Background(), "Acme Inc", "acme-inc")

	require.NoError(t, err)
	assert.Equal(t, "org-1", id)
}

func TestHasOrgPermission(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT has_org_permission($1, $2, $3)")).
		WithArgs("org-1", "members", "delete").
		WillReturnRows(sqlmock.NewRows([]string{"has_org_permission"}).AddRow(false))

	allowed, err := s.HasOrgPermission(context.Background(), "org-1", "members", "delete")

	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestDeleteByIDNotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE id = $1")).
		WithArgs("post-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.DeletePost(context.Background(), "post-1")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrgMembersWithoutProfile(t *testing.T) {
	s, mock := newMockStorage(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "org_id", "user_id", "created_at", "pid", "first_name", "last_name", "user_name"}).
		AddRow("m-1", "org-1", "user-1", now, "user-1", "Ada", "Lovelace", "ada").
		AddRow("m-2", "org-1", "user-2", now, nil, nil, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM org_memberships m LEFT JOIN profiles p ON p.id = m.user_id WHERE m.org_id = $1")).
		WithArgs("org-1").
		WillReturnRows(rows)

	members, err := s.ListOrgMembers(context.Background(), "org-1")

	require.NoError(t, err)
	require.Len(t, members, 2)
	require.NotNil(t, members[0].Profile)
	assert.Equal(t, "ada", *members[0].Profile.UserName)
	assert.Nil(t, members[1].Profile)
}

func TestClassify(t *testing.T) {
	assert.Nil(t, classify(nil, "ctx"))
	assert.ErrorIs(t, classify(&pgconn.PgError{Code: "23503"}, "ctx"), ErrForeignKeyViolation)
	assert.ErrorIs(t, classify(&pgconn.PgError{Code: "42501"}, "ctx"), ErrPermissionDenied)
	assert.ErrorIs(t, classify(&pgconn.PgError{Code: "P0002"}, "ctx"), ErrNotFound)

	plain := errors.New("connection reset")
	assert.ErrorIs(t, classify(plain, "ctx"), plain)
	assert.True(t, IsDuplicateKeyError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsForeignKeyViolation(plain))
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package teams

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/cache"
	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package teams -destination ./mock_interfaces.go -source=./interfaces.go

const (
	orgID  = "0190f1a2-0000-7000-8000-000000000001"
	teamID = "0190f1a2-0000-7000-8000-000000000002"
	userID = "0190f1a2-0000-7000-8000-0000000000aa"
)

func userCtx() context.Context {
	return authentication.WithUserID(context.Background(), userID)
}

func newService(s StorageInterface, c cache.CacheInterface) *Service {
	return NewService(s, c, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestCreateTeam(t *testing.T) {
	tests := []struct {
		name           string
		req            *CreateTeamRequest
		setupMocks     func(*MockStorageInterface)
		expectedStatus int
	}{
		{
			name: "created",
			req:  &CreateTeamRequest{Name: "Engineering"},
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().CreateTeam(gomock.Any(), orgID, "Engineering").Return(teamID, nil)
				m.EXPECT().GetTeam(gomock.Any(), teamID).Return(&types.Team{ID: teamID, OrgID: orgID, Name: "Engineering"}, nil)
			},
		},
		{
			name:           "empty name",
			req:            &CreateTeamRequest{},
			setupMocks:     func(*MockStorageInterface) {},
			expectedStatus: 400,
		},
		{
			name: "duplicate name",
			req:  &CreateTeamRequest{Name: "Engineering"},
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().CreateTeam(gomock.Any(), orgID, "Engineering").Return("", storage.ErrDuplicateKey)
			},
			expectedStatus: 409,
		},
		{
			name: "denied by row level security",
			req:  &CreateTeamRequest{Name: "Engineering"},
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().CreateTeam(gomock.Any(), orgID, "Engineering").Return("", storage.ErrPermissionDenied)
			},
			expectedStatus: 403,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tt.setupMocks(mockStorage)

			team, err := newService(mockStorage, cache.NewNoopCache()).CreateTeam(userCtx(), orgID, tt.req)
			if tt.expectedStatus != 0 {
				if err == nil {
					t.Fatal("expected error")
				}
				if status := httptypes.StatusFromError(err); status != tt.expectedStatus {
					t.Errorf("expected status %d, got %d", tt.expectedStatus, status)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if team.ID != teamID {
				t.Errorf("expected team %s, got %s", teamID, team.ID)
			}
		})
	}
}

func TestListTeamsInvalidatedOnRename(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	svc := newService(mockStorage, cache.NewLRUCache(16, time.Minute, tracing.NewNoopTracer(), logging.NewNoopLogger()))

	gomock.InOrder(
		mockStorage.EXPECT().ListTeams(gomock.Any(), orgID).Return([]*types.Team{{ID: teamID, OrgID: orgID, Name: "old"}}, nil),
		mockStorage.EXPECT().UpdateTeamName(gomock.Any(), teamID, "new").Return(&types.Team{ID: teamID, OrgID: orgID, Name: "new"}, nil),
		mockStorage.EXPECT().ListTeams(gomock.Any(), orgID).Return([]*types.Team{{ID: teamID, OrgID: orgID, Name: "new"}}, nil),
	)

	if _, err := svc.ListTeams(userCtx(), orgID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ListTeams(userCtx(), orgID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.RenameTeam(userCtx(), teamID, &RenameTeamRequest{Name: "new"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	teams, err := svc.ListTeams(userCtx(), orgID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if teams[0].Name != "new" {
		t.Errorf("expected renamed team, got %q", teams[0].Name)
	}
}

func TestDeleteTeam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetTeam(gomock.Any(), teamID).Return(&types.Team{ID: teamID, OrgID: orgID}, nil)
	mockStorage.EXPECT().DeleteTeam(gomock.Any(), teamID).Return(errors.New("boom"))

	if err := newService(mockStorage, cache.NewNoopCache()).DeleteTeam(userCtx(), teamID); err == nil {
		t.Fatal("expected error")
	}
}

func TestCheckPermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().HasTeamPermission(gomock.Any(), teamID, "team_members", "view").Return(true, nil)

	svc := newService(mockStorage, cache.NewNoopCache())

	allowed, err := svc.CheckPermission(userCtx(), teamID, "team_members", "view")
	if err != nil || !allowed {
		t.Fatalf("expected allowed, got %v, %v", allowed, err)
	}

	if _, err := svc.CheckPermission(userCtx(), teamID, "team_members", "create"); err == nil {
		t.Fatal("expected error for an action the resource does not support")
	}
}

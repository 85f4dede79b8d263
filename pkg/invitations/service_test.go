// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/cache"
	"github.com/canonical/workspace-service/internal/email"
	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_email.go -source=../../internal/email/interfaces.go

const (
	orgID   = "0190f1a2-0000-7000-8000-000000000001"
	teamA   = "0190f1a2-0000-7000-8000-00000000000a"
	teamB   = "0190f1a2-0000-7000-8000-00000000000b"
	siteURL = "https://app.example.com"
)

func testConfig() Config {
	return Config{SiteURL: siteURL + "/", From: "noreply@mail.alwaysauto.com", Subject: "Always Auto Invitation"}
}

func newTestService(s StorageInterface, p email.ProviderInterface) *Service {
	return NewService(s, p, cache.NewNoopCache(), testConfig(), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func validRequest() *CreateInvitationRequest {
	return &CreateInvitationRequest{
		Email:          "jane@example.com",
		OrgMemberRole:  "member",
		OrgID:          orgID,
		InvitationType: "one-time",
		TeamRoles:      []types.TeamRoleAssignment{},
	}
}

func TestService_CreateInvitation(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*CreateInvitationRequest)
		setupMocks func(*MockStorageInterface, *MockProviderInterface)
		expectErr  bool
		badRequest bool
	}{
		{
			name: "only no_access team roles store an empty list",
			mutate: func(r *CreateInvitationRequest) {
				r.TeamRoles = []types.TeamRoleAssignment{
					{TeamID: teamA, TeamName: "Alpha", Role: "no_access"},
					{TeamID: teamB, TeamName: "Beta", Role: "no_access"},
				}
			},
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface) {
				s.EXPECT().CreateOrgInvite(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, i *types.Invitation) (string, error) {
						if i.TeamMemberRoles == nil || len(i.TeamMemberRoles) != 0 {
							return "", errors.New("expected an empty team role list")
						}
						return "tok-1", nil
					})
				p.EXPECT().Send(gomock.Any(), gomock.Any()).Return(&email.Result{Provider: "noop", MessageID: "m-1"}, nil)
			},
		},
		{
			name: "no_access entries are dropped from mixed roles",
			mutate: func(r *CreateInvitationRequest) {
				r.OrgMemberRole = "admin"
				r.InvitationType = "24-hour"
				r.TeamRoles = []types.TeamRoleAssignment{
					{TeamID: teamA, Role: "admin"},
					{TeamID: teamB, Role: "no_access"},
				}
			},
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface) {
				s.EXPECT().CreateOrgInvite(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, i *types.Invitation) (string, error) {
						if len(i.TeamMemberRoles) != 1 || i.TeamMemberRoles[0].TeamID != teamA {
							return "", errors.New("unexpected team roles")
						}
						if i.OrgMemberRole != "admin" || i.InvitationType != "24-hour" {
							return "", errors.New("unexpected invitation")
						}
						return "tok-2", nil
					})
				p.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *email.Message) (*email.Result, error) {
						expected := `<a href="https://app.example.com/invitation?token=tok-2">Click here to accept the invitation</a>`
						if m.HTML != expected {
							return nil, errors.New("unexpected html: " + m.HTML)
						}
						if m.From != "noreply@mail.alwaysauto.com" || m.Subject != "Always Auto Invitation" || m.To[0] != "jane@example.com" {
							return nil, errors.New("unexpected envelope")
						}
						return &email.Result{Provider: "noop", MessageID: "m-2"}, nil
					})
			},
		},
		{
			name:       "invalid invitation type is rejected before any call",
			mutate:     func(r *CreateInvitationRequest) { r.InvitationType = "forever" },
			setupMocks: func(*MockStorageInterface, *MockProviderInterface) {},
			expectErr:  true,
			badRequest: true,
		},
		{
			name:       "invalid email",
			mutate:     func(r *CreateInvitationRequest) { r.Email = "jane" },
			setupMocks: func(*MockStorageInterface, *MockProviderInterface) {},
			expectErr:  true,
			badRequest: true,
		},
		{
			name:       "invalid org member role",
			mutate:     func(r *CreateInvitationRequest) { r.OrgMemberRole = "owner" },
			setupMocks: func(*MockStorageInterface, *MockProviderInterface) {},
			expectErr:  true,
			badRequest: true,
		},
		{
			name: "invalid team role",
			mutate: func(r *CreateInvitationRequest) {
				r.TeamRoles = []types.TeamRoleAssignment{{TeamID: teamA, Role: "owner"}}
			},
			setupMocks: func(*MockStorageInterface, *MockProviderInterface) {},
			expectErr:  true,
			badRequest: true,
		},
		{
			name: "token failure sends no email",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface) {
				s.EXPECT().CreateOrgInvite(gomock.Any(), gomock.Any()).Return("", errors.New("permission denied for function create_org_invite"))
			},
			expectErr: true,
		},
		{
			name: "email failure is reported",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface) {
				s.EXPECT().CreateOrgInvite(gomock.Any(), gomock.Any()).Return("tok-3", nil)
				p.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, errors.New("MessageRejected: Email address is not verified"))
			},
			expectErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockProvider := NewMockProviderInterface(ctrl)
			test.setupMocks(mockStorage, mockProvider)

			req := validRequest()
			if test.mutate != nil {
				test.mutate(req)
			}

			err := newTestService(mockStorage, mockProvider).CreateInvitation(context.Background(), req)

			if !test.expectErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("expected error but got none")
			}

			if test.badRequest != (httptypes.StatusFromError(err) == 400) {
				t.Errorf("unexpected classification of %v", err)
			}
		})
	}
}

func TestService_ListInvitations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListInvitations(gomock.Any(), orgID).Return([]*types.Invitation{{ID: "inv-1", Email: "jane@example.com"}}, nil)

	invitations, err := newTestService(mockStorage, NewMockProviderInterface(ctrl)).ListInvitations(context.Background(), orgID)
	if err != nil {
		t.Fatal(err)
	}

	if len(invitations) != 1 || !strings.EqualFold(invitations[0].Email, "jane@example.com") {
		t.Errorf("unexpected invitations %v", invitations)
	}
}

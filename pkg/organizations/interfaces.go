// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

type StorageInterface interface {
	CreateOrganization(ctx context.Context, name, slug string) (string, error)
	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizationsByUserID(ctx context.Context, userID string) ([]*types.Organization, error)
	UpdateOrganizationName(ctx context.Context, id, name string) (*types.Organization, error)
	DeleteOrganization(ctx context.Context, id string) error

	CreateTeam(ctx context.Context, orgID, name string) (string, error)
	GetTeam(ctx context.Context, id string) (*types.Team, error)

	HasOrgPermission(ctx context.Context, orgID, resource, action string) (bool, error)
}

// TxRunnerInterface runs fn in one transaction, joining the request transaction when present
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type ServiceInterface interface {
	ListOrganizations(ctx context.Context) ([]*types.Organization, error)
	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	CreateOrganization(ctx context.Context, req *CreateOrganizationRequest) (*types.Organization, error)
	Onboard(ctx context.Context, req *OnboardingRequest) (*Onboarding, error)
	RenameOrganization(ctx context.Context, id string, req *RenameRequest) (*types.Organization, error)
	DeleteOrganization(ctx context.Context, id string) error
	CheckPermission(ctx context.Context, orgID, resource, action string) (bool, error)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"

	"github.com/canonical/workspace-service/internal/cache"
	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
	"github.com/canonical/workspace-service/pkg/permissions"
)

type Service struct {
	storage  StorageInterface
	tx       TxRunnerInterface
	cache    cache.CacheInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	c cache.CacheInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		tx:       tx,
		cache:    c,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) ListOrganizations(ctx context.Context) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ListOrganizations")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		return nil, fmt.Errorf("no user in context")
	}

	return cache.Fetch(ctx, s.cache, s.logger, cache.Key("organizations", userID), []string{cache.UserTag(userID)},
		func(ctx context.Context) ([]*types.Organization, error) {
			return s.storage.ListOrganizationsByUserID(ctx, userID)
		},
	)
}

func (s *Service) GetOrganization(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.GetOrganization")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	return cache.Fetch(ctx, s.cache, s.logger, cache.Key("organization", id, userID), []string{cache.OrgTag(id), cache.UserTag(userID)},
		func(ctx context.Context) (*types.Organization, error) {
			return s.storage.GetOrganization(ctx, id)
		},
	)
}

func (s *Service) create(ctx context.Context, name, orgSlug string) (*types.Organization, error) {
	if orgSlug == "" {
		orgSlug = slug.Make(name)
	}

	if !slug.IsSlug(orgSlug) {
		return nil, httptypes.NewBadRequestError("invalid slug %q", orgSlug)
	}

	id, err := s.storage.CreateOrganization(ctx, name, orgSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return s.storage.GetOrganization(ctx, id)
}

func (s *Service) CreateOrganization(ctx context.Context, req *CreateOrganizationRequest) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.CreateOrganization")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	org, err := s.create(ctx, req.Name, req.Slug)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.UserTag(org.PrimaryOwnerUserID))
	return org, nil
}

// Onboard creates an organization with its first team, both or neither
func (s *Service) Onboard(ctx context.Context, req *OnboardingRequest) (*Onboarding, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.Onboard")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	result := new(Onboarding)

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		org, err := s.create(ctx, req.OrgName, "")
		if err != nil {
			return err
		}

		teamID, err := s.storage.CreateTeam(ctx, org.ID, req.TeamName)
		if err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}

		team, err := s.storage.GetTeam(ctx, teamID)
		if err != nil {
			return fmt.Errorf("failed to get team: %w", err)
		}

		result.Organization = org
		result.Team = team
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.UserTag(result.Organization.PrimaryOwnerUserID))
	return result, nil
}

func (s *Service) RenameOrganization(ctx context.Context, id string, req *RenameRequest) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.RenameOrganization")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	org, err := s.storage.UpdateOrganizationName(ctx, id, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to rename organization: %w", err)
	}

	s.invalidate(ctx, cache.OrgTag(id))
	return org, nil
}

func (s *Service) DeleteOrganization(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.DeleteOrganization")
	defer span.End()

	if err := s.storage.DeleteOrganization(ctx, id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	userID, _ := authentication.GetUserID(ctx)
	s.invalidate(ctx, cache.OrgTag(id), cache.UserTag(userID))
	s.logger.Security().AdminAction(userID, "delete", "organization", id)

	return nil
}

// CheckPermission asks the database whether the current user holds the permission in the organization
func (s *Service) CheckPermission(ctx context.Context, orgID, resource, action string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.CheckPermission")
	defer span.End()

	if !permissions.Allowed(resource, action) {
		return false, httptypes.NewBadRequestError("unknown permission %s:%s", resource, action)
	}

	allowed, err := s.storage.HasOrgPermission(ctx, orgID, resource, action)
	if err != nil {
		return false, fmt.Errorf("failed to check organization permission: %w", err)
	}

	if !allowed {
		userID, _ := authentication.GetUserID(ctx)
		s.logger.Security().AuthzFailure(userID, fmt.Sprintf("organization:%s:%s:%s", orgID, resource, action))
	}

	return allowed, nil
}

func (s *Service) invalidate(ctx context.Context, tags ...string) {
	if err := cache.Invalidate(ctx, s.cache, tags...); err != nil {
		s.logger.Warnf("failed to invalidate cache: %v", err)
	}
}

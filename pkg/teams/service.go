// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package teams

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

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
	cache    cache.CacheInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	c cache.CacheInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		cache:    c,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) ListTeams(ctx context.Context, orgID string) ([]*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "teams.Service.ListTeams")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	return cache.Fetch(ctx, s.cache, s.logger, cache.Key("teams", orgID, userID), []string{cache.OrgTag(orgID)},
		func(ctx context.Context) ([]*types.Team, error) {
			return s.storage.ListTeams(ctx, orgID)
		},
	)
}

func (s *Service) GetTeam(ctx context.Context, id string) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "teams.Service.GetTeam")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	return cache.Fetch(ctx, s.cache, s.logger, cache.Key("team", id, userID), []string{cache.TeamTag(id)},
		func(ctx context.Context) (*types.Team, error) {
			return s.storage.GetTeam(ctx, id)
		},
	)
}

func (s *Service) CreateTeam(ctx context.Context, orgID string, req *CreateTeamRequest) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "teams.Service.CreateTeam")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	id, err := s.storage.CreateTeam(ctx, orgID, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	team, err := s.storage.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	s.invalidate(ctx, cache.OrgTag(orgID))
	return team, nil
}

func (s *Service) RenameTeam(ctx context.Context, id string, req *RenameTeamRequest) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "teams.Service.RenameTeam")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	team, err := s.storage.UpdateTeamName(ctx, id, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to rename team: %w", err)
	}

	s.invalidate(ctx, cache.TeamTag(id), cache.OrgTag(team.OrgID))
	return team, nil
}

func (s *Service) DeleteTeam(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "teams.Service.DeleteTeam")
	defer span.End()

	team, err := s.storage.GetTeam(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.storage.DeleteTeam(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	s.invalidate(ctx, cache.TeamTag(id), cache.OrgTag(team.OrgID))

	userID, _ := authentication.GetUserID(ctx)
	s.logger.Security().AdminAction(userID, "delete", "team", id)

	return nil
}

// CheckPermission asks the database whether the current user holds the permission in the team,
// either through a team role or a cascading organization role
func (s *Service) CheckPermission(ctx context.Context, teamID, resource, action string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "teams.Service.CheckPermission")
	defer span.End()

	if !permissions.Allowed(resource, action) {
		return false, httptypes.NewBadRequestError("unknown permission %s:%s", resource, action)
	}

	allowed, err := s.storage.HasTeamPermission(ctx, teamID, resource, action)
	if err != nil {
		return false, fmt.Errorf("failed to check team permission: %w", err)
	}

	if !allowed {
		userID, _ := authentication.GetUserID(ctx)
		s.logger.Security().AuthzFailure(userID, fmt.Sprintf("team:%s:%s:%s", teamID, resource, action))
	}

	return allowed, nil
}

func (s *Service) invalidate(ctx context.Context, tags ...string) {
	if err := cache.Invalidate(ctx, s.cache, tags...); err != nil {
		s.logger.Warnf("failed to invalidate cache: %v", err)
	}
}

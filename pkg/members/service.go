// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/workspace-service/internal/cache"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
)

const emailLookupWorkers = 8

type Service struct {
	storage    StorageInterface
	identities IdentityInterface
	cache      cache.CacheInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	identities IdentityInterface,
	c cache.CacheInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:    storage,
		identities: identities,
		cache:      c,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// ListOrgMembers returns memberships with profiles, plus the email held by the identity provider.
// A failed email lookup leaves the field empty.
func (s *Service) ListOrgMembers(ctx context.Context, orgID string) ([]*types.OrgMembership, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.ListOrgMembers")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	return cache.Fetch(ctx, s.cache, s.logger, cache.Key("org-members", orgID, userID), []string{cache.OrgTag(orgID)},
		func(ctx context.Context) ([]*types.OrgMembership, error) {
			members, err := s.storage.ListOrgMembers(ctx, orgID)
			if err != nil {
				return nil, fmt.Errorf("failed to list organization members: %w", err)
			}

			s.attachEmails(ctx, members)
			return members, nil
		},
	)
}

func (s *Service) attachEmails(ctx context.Context, members []*types.OrgMembership) {
	if s.identities == nil {
		return
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(emailLookupWorkers)

	for _, m := range members {
		eg.Go(func() error {
			email, err := s.identities.GetIdentityEmail(ctx, m.UserID)
			if err != nil {
				s.logger.Warnf("failed to look up email for user %s: %v", m.UserID, err)
				return nil
			}

			m.Email = email
			return nil
		})
	}

	_ = eg.Wait()
}

func (s *Service) ListTeamMembers(ctx context.Context, teamID string) ([]*types.TeamMembership, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.ListTeamMembers")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	return cache.Fetch(ctx, s.cache, s.logger, cache.Key("team-members", teamID, userID), []string{cache.TeamTag(teamID)},
		func(ctx context.Context) ([]*types.TeamMembership, error) {
			members, err := s.storage.ListTeamMembers(ctx, teamID)
			if err != nil {
				return nil, fmt.Errorf("failed to list team members: %w", err)
			}
			return members, nil
		},
	)
}

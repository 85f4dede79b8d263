// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/workspace-service/internal/cache"
	"github.com/canonical/workspace-service/internal/email"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
)

type Service struct {
	storage  StorageInterface
	email    email.ProviderInterface
	cache    cache.CacheInterface
	config   Config
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	provider email.ProviderInterface,
	c cache.CacheInterface,
	config Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		email:    provider,
		cache:    c,
		config:   config,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// filterTeamRoles drops entries that grant nothing
func filterTeamRoles(roles []types.TeamRoleAssignment) []types.TeamRoleAssignment {
	out := make([]types.TeamRoleAssignment, 0, len(roles))
	for _, r := range roles {
		if r.Role != RoleNoAccess {
			out = append(out, r)
		}
	}
	return out
}

func (s *Service) invitationHTML(token string) string {
	return fmt.Sprintf(
		`<a href="%s/invitation?token=%s">Click here to accept the invitation</a>`,
		strings.TrimRight(s.config.SiteURL, "/"),
		url.QueryEscape(token),
	)
}

// CreateInvitation records the invitation and mails its link.
// The token exists before the email is sent, an email failure is returned so the
// surrounding request transaction drops the invitation.
func (s *Service) CreateInvitation(ctx context.Context, req *CreateInvitationRequest) error {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.CreateInvitation")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		return err
	}

	token, err := s.storage.CreateOrgInvite(ctx, &types.Invitation{
		Email:           req.Email,
		OrgID:           req.OrgID,
		OrgMemberRole:   req.OrgMemberRole,
		InvitationType:  req.InvitationType,
		TeamMemberRoles: filterTeamRoles(req.TeamRoles),
	})
	if err != nil {
		return err
	}

	res, err := s.email.Send(ctx, &email.Message{
		From:    s.config.From,
		To:      []string{req.Email},
		Subject: s.config.Subject,
		HTML:    s.invitationHTML(token),
	})
	if err != nil {
		return err
	}

	s.logger.Debugf("invitation for org %s sent through %s as %s", req.OrgID, res.Provider, res.MessageID)

	if err := cache.Invalidate(ctx, s.cache, cache.OrgTag(req.OrgID)); err != nil {
		s.logger.Warnf("failed to invalidate cache: %v", err)
	}

	return nil
}

func (s *Service) ListInvitations(ctx context.Context, orgID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.ListInvitations")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	return cache.Fetch(ctx, s.cache, s.logger, cache.Key("invitations", orgID, userID), []string{cache.OrgTag(orgID), cache.UserTag(userID)},
		func(ctx context.Context) ([]*types.Invitation, error) {
			return s.storage.ListInvitations(ctx, orgID)
		},
	)
}

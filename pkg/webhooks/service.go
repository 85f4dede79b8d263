// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
)

type Service struct {
	storage StorageInterface
	tx      TxRunnerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tx:      tx,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// HandleRegistration creates the profile row of a newly registered identity
func (s *Service) HandleRegistration(ctx context.Context, identity *KratosIdentity) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identity == nil || identity.ID == "" {
		return fmt.Errorf("identity ID is empty")
	}

	s.logger.Debugf("Handling registration for identity %s", identity.ID)

	profile := &types.Profile{
		ID:        identity.ID,
		FirstName: optional(identity.Traits.Name.First),
		LastName:  optional(identity.Traits.Name.Last),
		UserName:  optional(identity.Traits.Username),
	}

	err := s.tx.WithTx(authentication.WithUserID(ctx, identity.ID), func(ctx context.Context) error {
		_, err := s.storage.UpsertProfile(ctx, profile)
		return err
	})

	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Infof("Successfully created profile for identity %s", identity.ID)
	return nil
}

// HandleTokenHook adds the organizations of the token subject to the ID and access tokens
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	if req == nil || req.Session == nil || req.Session.DefaultSession == nil {
		return nil, fmt.Errorf("token hook request carries no session")
	}

	userID := req.Session.DefaultSession.Subject
	if userID == "" {
		return nil, fmt.Errorf("token hook session has no subject")
	}

	s.logger.Debugf("Handling token hook for subject %s", userID)

	var orgs []*types.Organization
	err := s.tx.WithTx(authentication.WithUserID(ctx, userID), func(ctx context.Context) error {
		var err error
		orgs, err = s.storage.ListOrganizationsByUserID(ctx, userID)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	resp := new(TokenHookResponse)
	resp.Session.IDToken = map[string]interface{}{}
	resp.Session.AccessToken = map[string]interface{}{}

	if len(orgs) > 0 {
		ids := make([]string, 0, len(orgs))
		for _, org := range orgs {
			ids = append(ids, org.ID)
		}

		resp.Session.IDToken[OrganizationsClaim] = ids
		resp.Session.AccessToken[OrganizationsClaim] = ids
	}

	return resp, nil
}

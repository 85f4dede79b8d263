// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/workspace-service/internal/cache"
	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
)

type Service struct {
	storage    StorageInterface
	identities IdentityInterface
	cache      cache.CacheInterface
	validate   *validator.Validate

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
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

func (s *Service) GetProfile(ctx context.Context) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.GetProfile")
	defer span.End()

	userID, err := authentication.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	return cache.Fetch(ctx, s.cache, s.logger, cache.Key("profile", userID), []string{cache.UserTag(userID)},
		func(ctx context.Context) (*types.Profile, error) {
			return s.storage.GetProfile(ctx, userID)
		},
	)
}

func (s *Service) UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.UpdateProfile")
	defer span.End()

	userID, err := authentication.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	profile, err := s.storage.GetProfile(ctx, userID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		profile = &types.Profile{ID: userID}
	case err != nil:
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if req.FirstName != nil {
		profile.FirstName = req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = req.LastName
	}
	if req.UserName != nil {
		profile.UserName = req.UserName
	}

	updated, err := s.storage.UpsertProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if err := cache.Invalidate(ctx, s.cache, cache.UserTag(userID)); err != nil {
		s.logger.Warnf("failed to invalidate cache: %v", err)
	}

	return updated, nil
}

// DeleteAccount removes the profile row and, once that is committed, the identity.
// A failed identity deletion leaves an identity without profile, calling it again finishes the job.
func (s *Service) DeleteAccount(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.DeleteAccount")
	defer span.End()

	userID, err := authentication.RequireUserID(ctx)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteProfile(ctx, userID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	var deferred bool
	var identityErr error

	deferred = db.AfterCommit(ctx, func() {
		identityErr = s.identities.DeleteIdentity(context.WithoutCancel(ctx), userID)
		if identityErr != nil && deferred {
			s.logger.Errorf("failed to delete identity %s after removing its profile: %v", userID, identityErr)
		}
	})

	if identityErr != nil {
		return fmt.Errorf("failed to delete identity: %w", identityErr)
	}

	if err := cache.Invalidate(ctx, s.cache, cache.UserTag(userID)); err != nil {
		s.logger.Warnf("failed to invalidate cache: %v", err)
	}

	s.logger.Security().AdminAction(userID, "delete", "account", userID)
	return nil
}

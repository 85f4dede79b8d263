// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/cache"
	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package account -destination ./mock_interfaces.go -source=./interfaces.go

const userID = "0190f1a2-0000-7000-8000-0000000000aa"

func userCtx() context.Context {
	return authentication.WithUserID(context.Background(), userID)
}

func strPtr(s string) *string {
	return &s
}

func newService(s StorageInterface, i IdentityInterface) *Service {
	return NewService(s, i, cache.NewNoopCache(), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestUpdateProfileMergesFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetProfile(gomock.Any(), userID).Return(&types.Profile{ID: userID, FirstName: strPtr("Ada"), LastName: strPtr("Lovelace")}, nil)
	mockStorage.EXPECT().UpsertProfile(gomock.Any(), &types.Profile{ID: userID, FirstName: strPtr("Ada"), LastName: strPtr("King")}).
		DoAndReturn(func(_ context.Context, p *types.Profile) (*types.Profile, error) { return p, nil })

	profile, err := newService(mockStorage, nil).UpdateProfile(userCtx(), &UpdateProfileRequest{LastName: strPtr("King")})
	require.NoError(t, err)
	assert.Equal(t, "Ada", *profile.FirstName)
	assert.Equal(t, "King", *profile.LastName)
}

func TestUpdateProfileCreatesMissingRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
	mockStorage.EXPECT().UpsertProfile(gomock.Any(), &types.Profile{ID: userID, UserName: strPtr("ada")}).
		Return(&types.Profile{ID: userID, UserName: strPtr("ada")}, nil)

	_, err := newService(mockStorage, nil).UpdateProfile(userCtx(), &UpdateProfileRequest{UserName: strPtr("ada")})
	require.NoError(t, err)
}

func TestDeleteAccount(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockStorageInterface, *MockIdentityInterface)
		expectErr  bool
	}{
		{
			name: "profile then identity",
			setupMocks: func(s *MockStorageInterface, i *MockIdentityInterface) {
				gomock.InOrder(
					s.EXPECT().DeleteProfile(gomock.Any(), userID).Return(nil),
					i.EXPECT().DeleteIdentity(gomock.Any(), userID).Return(nil),
				)
			},
		},
		{
			name: "missing profile still deletes identity",
			setupMocks: func(s *MockStorageInterface, i *MockIdentityInterface) {
				s.EXPECT().DeleteProfile(gomock.Any(), userID).Return(storage.ErrNotFound)
				i.EXPECT().DeleteIdentity(gomock.Any(), userID).Return(nil)
			},
		},
		{
			name: "identity provider failure",
			setupMocks: func(s *MockStorageInterface, i *MockIdentityInterface) {
				s.EXPECT().DeleteProfile(gomock.Any(), userID).Return(nil)
				i.EXPECT().DeleteIdentity(gomock.Any(), userID).Return(errors.New("kratos unavailable"))
			},
			expectErr: true,
		},
		{
			name: "profile failure stops before identity",
			setupMocks: func(s *MockStorageInterface, _ *MockIdentityInterface) {
				s.EXPECT().DeleteProfile(gomock.Any(), userID).Return(errors.New("boom"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockIdentities := NewMockIdentityInterface(ctrl)
			tt.setupMocks(mockStorage, mockIdentities)

			err := newService(mockStorage, mockIdentities).DeleteAccount(userCtx())
			assert.Equal(t, tt.expectErr, err != nil, "error: %v", err)
		})
	}
}

func TestDeleteAccountRemovesIdentityAfterCommit(t *testing.T) {
	tests := []struct {
		name        string
		rollback    bool
		identityErr error
	}{
		{name: "committed"},
		{name: "rolled back", rollback: true},
		{name: "identity provider fails after commit", identityErr: errors.New("kratos unavailable")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			conn, _, err := sqlmock.New()
			require.NoError(t, err)
			defer conn.Close()

			logger := logging.NewNoopLogger()
			client := db.NewDBClientWithConn(conn, db.Config{}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logger)

			inTx := false
			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().DeleteProfile(gomock.Any(), userID).Return(nil)

			mockIdentities := NewMockIdentityInterface(ctrl)
			if !tt.rollback {
				mockIdentities.EXPECT().DeleteIdentity(gomock.Any(), userID).
					DoAndReturn(func(context.Context, string) error {
						assert.False(t, inTx, "identity deleted before the profile deletion committed")
						return tt.identityErr
					})
			}

			svc := newService(mockStorage, mockIdentities)
			err = client.WithTx(userCtx(), func(ctx context.Context) error {
				inTx = true
				defer func() { inTx = false }()

				if err := svc.DeleteAccount(ctx); err != nil {
					return err
				}
				if tt.rollback {
					return errors.New("later failure")
				}
				return nil
			})

			assert.Equal(t, tt.rollback, err != nil, "error: %v", err)
		})
	}
}

func TestDeleteAccountWithoutUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	err := newService(NewMockStorageInterface(ctrl), NewMockIdentityInterface(ctrl)).DeleteAccount(context.Background())
	assert.ErrorIs(t, err, ErrNoUser)
}

// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package account -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package account is a generated GoMock package.
package account

import (
	context "context"
	reflect "reflect"

	types "github.com/canonical/workspace-service/internal/types"
	gomock "go.uber.org/mock/gomock"
)

// MockStorageInterface is a mock of StorageInterface interface.
type MockStorageInterface struct {
	ctrl     *gomock.Controller
	recorder *MockStorageInterfaceMockRecorder
	isgomock struct{}
}

// MockStorageInterfaceMockRecorder is the mock recorder for MockStorageInterface.
type MockStorageInterfaceMockRecorder struct {
	mock *MockStorageInterface
}

// NewMockStorageInterface creates a new mock instance.
func NewMockStorageInterface(ctrl *gomock.Controller) *MockStorageInterface {
	mock := &MockStorageInterface{ctrl: ctrl}
	mock.recorder = &MockStorageInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStorageInterface) EXPECT() *MockStorageInterfaceMockRecorder {
	return m.recorder
}

// DeleteProfile mocks base method.
func (m *MockStorageInterface) DeleteProfile(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteProfile", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteProfile indicates an expected call of DeleteProfile.
func (mr *MockStorageInterfaceMockRecorder) DeleteProfile(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteProfile", reflect.TypeOf((*MockStorageInterface)(nil).DeleteProfile), ctx, id)
}

// GetProfile mocks base method.
func (m *MockStorageInterface) GetProfile(ctx context.Context, id string) (*types.Profile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProfile", ctx, id)
	ret0, _ := ret[0].(*types.Profile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProfile indicates an expected call of GetProfile.
func (mr *MockStorageInterfaceMockRecorder) GetProfile(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProfile", reflect.TypeOf((*MockStorageInterface)(nil).GetProfile), ctx, id)
}

// UpsertProfile mocks base method.
func (m *MockStorageInterface) UpsertProfile(ctx context.Context, profile *types.Profile) (*types.Profile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertProfile", ctx, profile)
	ret0, _ := ret[0].(*types.Profile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpsertProfile indicates an expected call of UpsertProfile.
func (mr *MockStorageInterfaceMockRecorder) UpsertProfile(ctx, profile any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertProfile", reflect.TypeOf((*MockStorageInterface)(nil).UpsertProfile), ctx, profile)
}

// MockIdentityInterface is a mock of IdentityInterface interface.
type MockIdentityInterface struct {
	ctrl     *gomock.Controller
	recorder *MockIdentityInterfaceMockRecorder
	isgomock struct{}
}

// MockIdentityInterfaceMockRecorder is the mock recorder for MockIdentityInterface.
type MockIdentityInterfaceMockRecorder struct {
	mock *MockIdentityInterface
}

// NewMockIdentityInterface creates a new mock instance.
func NewMockIdentityInterface(ctrl *gomock.Controller) *MockIdentityInterface {
	mock := &MockIdentityInterface{ctrl: ctrl}
	mock.recorder = &MockIdentityInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIdentityInterface) EXPECT() *MockIdentityInterfaceMockRecorder {
	return m.recorder
}

// DeleteIdentity mocks base method.
func (m *MockIdentityInterface) DeleteIdentity(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteIdentity", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteIdentity indicates an expected call of DeleteIdentity.
func (mr *MockIdentityInterfaceMockRecorder) DeleteIdentity(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteIdentity", reflect.TypeOf((*MockIdentityInterface)(nil).DeleteIdentity), ctx, id)
}

// MockServiceInterface is a mock of ServiceInterface interface.
type MockServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockServiceInterfaceMockRecorder
	isgomock struct{}
}

// MockServiceInterfaceMockRecorder is the mock recorder for MockServiceInterface.
type MockServiceInterfaceMockRecorder struct {
	mock *MockServiceInterface
}

// NewMockServiceInterface creates a new mock instance.
func NewMockServiceInterface(ctrl *gomock.Controller) *MockServiceInterface {
	mock := &MockServiceInterface{ctrl: ctrl}
	mock.recorder = &MockServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockServiceInterface) EXPECT() *MockServiceInterfaceMockRecorder {
	return m.recorder
}

// DeleteAccount mocks base method.
func (m *MockServiceInterface) DeleteAccount(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteAccount", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteAccount indicates an expected call of DeleteAccount.
func (mr *MockServiceInterfaceMockRecorder) DeleteAccount(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteAccount", reflect.TypeOf((*MockServiceInterface)(nil).DeleteAccount), ctx)
}

// GetProfile mocks base method.
func (m *MockServiceInterface) GetProfile(ctx context.Context) (*types.Profile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProfile", ctx)
	ret0, _ := ret[0].(*types.Profile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProfile indicates an expected call of GetProfile.
func (mr *MockServiceInterfaceMockRecorder) GetProfile(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProfile", reflect.TypeOf((*MockServiceInterface)(nil).GetProfile), ctx)
}

// UpdateProfile mocks base method.
func (m *MockServiceInterface) UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (*types.Profile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateProfile", ctx, req)
	ret0, _ := ret[0].(*types.Profile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateProfile indicates an expected call of UpdateProfile.
func (mr *MockServiceInterfaceMockRecorder) UpdateProfile(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateProfile", reflect.TypeOf((*MockServiceInterface)(nil).UpdateProfile), ctx, req)
}

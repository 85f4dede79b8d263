// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go
//

// Package webhooks is a generated GoMock package.
package webhooks

import (
	context "context"
	reflect "reflect"

	types "github.com/canonical/workspace-service/internal/types"
	oauth2 "github.com/ory/hydra/v2/oauth2"
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

// ListOrganizationsByUserID mocks base method.
func (m *MockStorageInterface) ListOrganizationsByUserID(ctx context.Context, userID string) ([]*types.Organization, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOrganizationsByUserID", ctx, userID)
	ret0, _ := ret[0].([]*types.Organization)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListOrganizationsByUserID indicates an expected call of ListOrganizationsByUserID.
func (mr *MockStorageInterfaceMockRecorder) ListOrganizationsByUserID(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOrganizationsByUserID", reflect.TypeOf((*MockStorageInterface)(nil).ListOrganizationsByUserID), ctx, userID)
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

// MockTxRunnerInterface is a mock of TxRunnerInterface interface.
type MockTxRunnerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTxRunnerInterfaceMockRecorder
	isgomock struct{}
}

// MockTxRunnerInterfaceMockRecorder is the mock recorder for MockTxRunnerInterface.
type MockTxRunnerInterfaceMockRecorder struct {
	mock *MockTxRunnerInterface
}

// NewMockTxRunnerInterface creates a new mock instance.
func NewMockTxRunnerInterface(ctrl *gomock.Controller) *MockTxRunnerInterface {
	mock := &MockTxRunnerInterface{ctrl: ctrl}
	mock.recorder = &MockTxRunnerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxRunnerInterface) EXPECT() *MockTxRunnerInterfaceMockRecorder {
	return m.recorder
}

// WithTx mocks base method.
func (m *MockTxRunnerInterface) WithTx(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithTx", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithTx indicates an expected call of WithTx.
func (mr *MockTxRunnerInterfaceMockRecorder) WithTx(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithTx", reflect.TypeOf((*MockTxRunnerInterface)(nil).WithTx), ctx, fn)
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

// HandleRegistration mocks base method.
func (m *MockServiceInterface) HandleRegistration(ctx context.Context, identity *KratosIdentity) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HandleRegistration", ctx, identity)
	ret0, _ := ret[0].(error)
	return ret0
}

// HandleRegistration indicates an expected call of HandleRegistration.
func (mr *MockServiceInterfaceMockRecorder) HandleRegistration(ctx, identity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HandleRegistration", reflect.TypeOf((*MockServiceInterface)(nil).HandleRegistration), ctx, identity)
}

// HandleTokenHook mocks base method.
func (m *MockServiceInterface) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HandleTokenHook", ctx, req)
	ret0, _ := ret[0].(*TokenHookResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HandleTokenHook indicates an expected call of HandleTokenHook.
func (mr *MockServiceInterfaceMockRecorder) HandleTokenHook(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HandleTokenHook", reflect.TypeOf((*MockServiceInterface)(nil).HandleTokenHook), ctx, req)
}

// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package organizations -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package organizations is a generated GoMock package.
package organizations

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

// CreateOrganization mocks base method.
func (m *MockStorageInterface) CreateOrganization(ctx context.Context, name, slug string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateOrganization", ctx, name, slug)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateOrganization indicates an expected call of CreateOrganization.
func (mr *MockStorageInterfaceMockRecorder) CreateOrganization(ctx, name, slug any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateOrganization", reflect.TypeOf((*MockStorageInterface)(nil).CreateOrganization), ctx, name, slug)
}

// CreateTeam mocks base method.
func (m *MockStorageInterface) CreateTeam(ctx context.Context, orgID, name string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTeam", ctx, orgID, name)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateTeam indicates an expected call of CreateTeam.
func (mr *MockStorageInterfaceMockRecorder) CreateTeam(ctx, orgID, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTeam", reflect.TypeOf((*MockStorageInterface)(nil).CreateTeam), ctx, orgID, name)
}

// DeleteOrganization mocks base method.
func (m *MockStorageInterface) DeleteOrganization(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteOrganization", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteOrganization indicates an expected call of DeleteOrganization.
func (mr *MockStorageInterfaceMockRecorder) DeleteOrganization(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteOrganization", reflect.TypeOf((*MockStorageInterface)(nil).DeleteOrganization), ctx, id)
}

// GetOrganization mocks base method.
func (m *MockStorageInterface) GetOrganization(ctx context.Context, id string) (*types.Organization, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrganization", ctx, id)
	ret0, _ := ret[0].(*types.Organization)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOrganization indicates an expected call of GetOrganization.
func (mr *MockStorageInterfaceMockRecorder) GetOrganization(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrganization", reflect.TypeOf((*MockStorageInterface)(nil).GetOrganization), ctx, id)
}

// GetTeam mocks base method.
func (m *MockStorageInterface) GetTeam(ctx context.Context, id string) (*types.Team, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTeam", ctx, id)
	ret0, _ := ret[0].(*types.Team)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTeam indicates an expected call of GetTeam.
func (mr *MockStorageInterfaceMockRecorder) GetTeam(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTeam", reflect.TypeOf((*MockStorageInterface)(nil).GetTeam), ctx, id)
}

// HasOrgPermission mocks base method.
func (m *MockStorageInterface) HasOrgPermission(ctx context.Context, orgID, resource, action string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasOrgPermission", ctx, orgID, resource, action)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasOrgPermission indicates an expected call of HasOrgPermission.
func (mr *MockStorageInterfaceMockRecorder) HasOrgPermission(ctx, orgID, resource, action any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasOrgPermission", reflect.TypeOf((*MockStorageInterface)(nil).HasOrgPermission), ctx, orgID, resource, action)
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

// UpdateOrganizationName mocks base method.
func (m *MockStorageInterface) UpdateOrganizationName(ctx context.Context, id, name string) (*types.Organization, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateOrganizationName", ctx, id, name)
	ret0, _ := ret[0].(*types.Organization)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateOrganizationName indicates an expected call of UpdateOrganizationName.
func (mr *MockStorageInterfaceMockRecorder) UpdateOrganizationName(ctx, id, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateOrganizationName", reflect.TypeOf((*MockStorageInterface)(nil).UpdateOrganizationName), ctx, id, name)
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

// CheckPermission mocks base method.
func (m *MockServiceInterface) CheckPermission(ctx context.Context, orgID, resource, action string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckPermission", ctx, orgID, resource, action)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CheckPermission indicates an expected call of CheckPermission.
func (mr *MockServiceInterfaceMockRecorder) CheckPermission(ctx, orgID, resource, action any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckPermission", reflect.TypeOf((*MockServiceInterface)(nil).CheckPermission), ctx, orgID, resource, action)
}

// CreateOrganization mocks base method.
func (m *MockServiceInterface) CreateOrganization(ctx context.Context, req *CreateOrganizationRequest) (*types.Organization, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateOrganization", ctx, req)
	ret0, _ := ret[0].(*types.Organization)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateOrganization indicates an expected call of CreateOrganization.
func (mr *MockServiceInterfaceMockRecorder) CreateOrganization(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateOrganization", reflect.TypeOf((*MockServiceInterface)(nil).CreateOrganization), ctx, req)
}

// DeleteOrganization mocks base method.
func (m *MockServiceInterface) DeleteOrganization(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteOrganization", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteOrganization indicates an expected call of DeleteOrganization.
func (mr *MockServiceInterfaceMockRecorder) DeleteOrganization(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteOrganization", reflect.TypeOf((*MockServiceInterface)(nil).DeleteOrganization), ctx, id)
}

// GetOrganization mocks base method.
func (m *MockServiceInterface) GetOrganization(ctx context.Context, id string) (*types.Organization, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrganization", ctx, id)
	ret0, _ := ret[0].(*types.Organization)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOrganization indicates an expected call of GetOrganization.
func (mr *MockServiceInterfaceMockRecorder) GetOrganization(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrganization", reflect.TypeOf((*MockServiceInterface)(nil).GetOrganization), ctx, id)
}

// ListOrganizations mocks base method.
func (m *MockServiceInterface) ListOrganizations(ctx context.Context) ([]*types.Organization, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOrganizations", ctx)
	ret0, _ := ret[0].([]*types.Organization)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListOrganizations indicates an expected call of ListOrganizations.
func (mr *MockServiceInterfaceMockRecorder) ListOrganizations(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOrganizations", reflect.TypeOf((*MockServiceInterface)(nil).ListOrganizations), ctx)
}

// Onboard mocks base method.
func (m *MockServiceInterface) Onboard(ctx context.Context, req *OnboardingRequest) (*Onboarding, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Onboard", ctx, req)
	ret0, _ := ret[0].(*Onboarding)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Onboard indicates an expected call of Onboard.
func (mr *MockServiceInterfaceMockRecorder) Onboard(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Onboard", reflect.TypeOf((*MockServiceInterface)(nil).Onboard), ctx, req)
}

// RenameOrganization mocks base method.
func (m *MockServiceInterface) RenameOrganization(ctx context.Context, id string, req *RenameRequest) (*types.Organization, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RenameOrganization", ctx, id, req)
	ret0, _ := ret[0].(*types.Organization)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RenameOrganization indicates an expected call of RenameOrganization.
func (mr *MockServiceInterfaceMockRecorder) RenameOrganization(ctx, id, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RenameOrganization", reflect.TypeOf((*MockServiceInterface)(nil).RenameOrganization), ctx, id, req)
}

// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package members -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package members is a generated GoMock package.
package members

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

// ListOrgMembers mocks base method.
func (m *MockStorageInterface) ListOrgMembers(ctx context.Context, orgID string) ([]*types.OrgMembership, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOrgMembers", ctx, orgID)
	ret0, _ := ret[0].([]*types.OrgMembership)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListOrgMembers indicates an expected call of ListOrgMembers.
func (mr *MockStorageInterfaceMockRecorder) ListOrgMembers(ctx, orgID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOrgMembers", reflect.TypeOf((*MockStorageInterface)(nil).ListOrgMembers), ctx, orgID)
}

// ListTeamMembers mocks base method.
func (m *MockStorageInterface) ListTeamMembers(ctx context.Context, teamID string) ([]*types.TeamMembership, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTeamMembers", ctx, teamID)
	ret0, _ := ret[0].([]*types.TeamMembership)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListTeamMembers indicates an expected call of ListTeamMembers.
func (mr *MockStorageInterfaceMockRecorder) ListTeamMembers(ctx, teamID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTeamMembers", reflect.TypeOf((*MockStorageInterface)(nil).ListTeamMembers), ctx, teamID)
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

// GetIdentityEmail mocks base method.
func (m *MockIdentityInterface) GetIdentityEmail(ctx context.Context, id string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIdentityEmail", ctx, id)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIdentityEmail indicates an expected call of GetIdentityEmail.
func (mr *MockIdentityInterfaceMockRecorder) GetIdentityEmail(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIdentityEmail", reflect.TypeOf((*MockIdentityInterface)(nil).GetIdentityEmail), ctx, id)
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

// ListOrgMembers mocks base method.
func (m *MockServiceInterface) ListOrgMembers(ctx context.Context, orgID string) ([]*types.OrgMembership, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOrgMembers", ctx, orgID)
	ret0, _ := ret[0].([]*types.OrgMembership)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListOrgMembers indicates an expected call of ListOrgMembers.
func (mr *MockServiceInterfaceMockRecorder) ListOrgMembers(ctx, orgID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOrgMembers", reflect.TypeOf((*MockServiceInterface)(nil).ListOrgMembers), ctx, orgID)
}

// ListTeamMembers mocks base method.
func (m *MockServiceInterface) ListTeamMembers(ctx context.Context, teamID string) ([]*types.TeamMembership, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTeamMembers", ctx, teamID)
	ret0, _ := ret[0].([]*types.TeamMembership)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListTeamMembers indicates an expected call of ListTeamMembers.
func (mr *MockServiceInterfaceMockRecorder) ListTeamMembers(ctx, teamID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTeamMembers", reflect.TypeOf((*MockServiceInterface)(nil).ListTeamMembers), ctx, teamID)
}

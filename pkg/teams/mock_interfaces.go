// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package teams -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package teams is a generated GoMock package.
package teams

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

// DeleteTeam mocks base method.
func (m *MockStorageInterface) DeleteTeam(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTeam", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTeam indicates an expected call of DeleteTeam.
func (mr *MockStorageInterfaceMockRecorder) DeleteTeam(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTeam", reflect.TypeOf((*MockStorageInterface)(nil).DeleteTeam), ctx, id)
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

// HasTeamPermission mocks base method.
func (m *MockStorageInterface) HasTeamPermission(ctx context.Context, teamID, resource, action string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasTeamPermission", ctx, teamID, resource, action)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasTeamPermission indicates an expected call of HasTeamPermission.
func (mr *MockStorageInterfaceMockRecorder) HasTeamPermission(ctx, teamID, resource, action any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasTeamPermission", reflect.TypeOf((*MockStorageInterface)(nil).HasTeamPermission), ctx, teamID, resource, action)
}

// ListTeams mocks base method.
func (m *MockStorageInterface) ListTeams(ctx context.Context, orgID string) ([]*types.Team, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTeams", ctx, orgID)
	ret0, _ := ret[0].([]*types.Team)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListTeams indicates an expected call of ListTeams.
func (mr *MockStorageInterfaceMockRecorder) ListTeams(ctx, orgID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTeams", reflect.TypeOf((*MockStorageInterface)(nil).ListTeams), ctx, orgID)
}

// UpdateTeamName mocks base method.
func (m *MockStorageInterface) UpdateTeamName(ctx context.Context, id, name string) (*types.Team, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateTeamName", ctx, id, name)
	ret0, _ := ret[0].(*types.Team)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateTeamName indicates an expected call of UpdateTeamName.
func (mr *MockStorageInterfaceMockRecorder) UpdateTeamName(ctx, id, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateTeamName", reflect.TypeOf((*MockStorageInterface)(nil).UpdateTeamName), ctx, id, name)
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
func (m *MockServiceInterface) CheckPermission(ctx context.Context, teamID, resource, action string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckPermission", ctx, teamID, resource, action)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CheckPermission indicates an expected call of CheckPermission.
func (mr *MockServiceInterfaceMockRecorder) CheckPermission(ctx, teamID, resource, action any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckPermission", reflect.TypeOf((*MockServiceInterface)(nil).CheckPermission), ctx, teamID, resource, action)
}

// CreateTeam mocks base method.
func (m *MockServiceInterface) CreateTeam(ctx context.Context, orgID string, req *CreateTeamRequest) (*types.Team, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTeam", ctx, orgID, req)
	ret0, _ := ret[0].(*types.Team)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateTeam indicates an expected call of CreateTeam.
func (mr *MockServiceInterfaceMockRecorder) CreateTeam(ctx, orgID, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTeam", reflect.TypeOf((*MockServiceInterface)(nil).CreateTeam), ctx, orgID, req)
}

// DeleteTeam mocks base method.
func (m *MockServiceInterface) DeleteTeam(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTeam", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTeam indicates an expected call of DeleteTeam.
func (mr *MockServiceInterfaceMockRecorder) DeleteTeam(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTeam", reflect.TypeOf((*MockServiceInterface)(nil).DeleteTeam), ctx, id)
}

// GetTeam mocks base method.
func (m *MockServiceInterface) GetTeam(ctx context.Context, id string) (*types.Team, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTeam", ctx, id)
	ret0, _ := ret[0].(*types.Team)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTeam indicates an expected call of GetTeam.
func (mr *MockServiceInterfaceMockRecorder) GetTeam(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTeam", reflect.TypeOf((*MockServiceInterface)(nil).GetTeam), ctx, id)
}

// ListTeams mocks base method.
func (m *MockServiceInterface) ListTeams(ctx context.Context, orgID string) ([]*types.Team, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTeams", ctx, orgID)
	ret0, _ := ret[0].([]*types.Team)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListTeams indicates an expected call of ListTeams.
func (mr *MockServiceInterfaceMockRecorder) ListTeams(ctx, orgID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTeams", reflect.TypeOf((*MockServiceInterface)(nil).ListTeams), ctx, orgID)
}

// RenameTeam mocks base method.
func (m *MockServiceInterface) RenameTeam(ctx context.Context, id string, req *RenameTeamRequest) (*types.Team, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RenameTeam", ctx, id, req)
	ret0, _ := ret[0].(*types.Team)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RenameTeam indicates an expected call of RenameTeam.
func (mr *MockServiceInterfaceMockRecorder) RenameTeam(ctx, id, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RenameTeam", reflect.TypeOf((*MockServiceInterface)(nil).RenameTeam), ctx, id, req)
}

// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package roles -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package roles is a generated GoMock package.
package roles

import (
	context "context"
	reflect "reflect"

	types "github.com/canonical/workspace-service/internal/types"
	permissions "github.com/canonical/workspace-service/pkg/permissions"
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

// CreateRole mocks base method.
func (m *MockStorageInterface) CreateRole(ctx context.Context, role *types.Role) (*types.Role, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateRole", ctx, role)
	ret0, _ := ret[0].(*types.Role)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateRole indicates an expected call of CreateRole.
func (mr *MockStorageInterfaceMockRecorder) CreateRole(ctx, role any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateRole", reflect.TypeOf((*MockStorageInterface)(nil).CreateRole), ctx, role)
}

// DeleteRole mocks base method.
func (m *MockStorageInterface) DeleteRole(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteRole", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteRole indicates an expected call of DeleteRole.
func (mr *MockStorageInterfaceMockRecorder) DeleteRole(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteRole", reflect.TypeOf((*MockStorageInterface)(nil).DeleteRole), ctx, id)
}

// GetRole mocks base method.
func (m *MockStorageInterface) GetRole(ctx context.Context, id string) (*types.Role, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRole", ctx, id)
	ret0, _ := ret[0].(*types.Role)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRole indicates an expected call of GetRole.
func (mr *MockStorageInterfaceMockRecorder) GetRole(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRole", reflect.TypeOf((*MockStorageInterface)(nil).GetRole), ctx, id)
}

// ListRolePermissions mocks base method.
func (m *MockStorageInterface) ListRolePermissions(ctx context.Context, roleID string) ([]*types.RolePermission, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRolePermissions", ctx, roleID)
	ret0, _ := ret[0].([]*types.RolePermission)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRolePermissions indicates an expected call of ListRolePermissions.
func (mr *MockStorageInterfaceMockRecorder) ListRolePermissions(ctx, roleID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRolePermissions", reflect.TypeOf((*MockStorageInterface)(nil).ListRolePermissions), ctx, roleID)
}

// ListRoles mocks base method.
func (m *MockStorageInterface) ListRoles(ctx context.Context, orgID string, scope types.RoleScope) ([]*types.Role, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRoles", ctx, orgID, scope)
	ret0, _ := ret[0].([]*types.Role)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRoles indicates an expected call of ListRoles.
func (mr *MockStorageInterfaceMockRecorder) ListRoles(ctx, orgID, scope any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRoles", reflect.TypeOf((*MockStorageInterface)(nil).ListRoles), ctx, orgID, scope)
}

// ListRolesForTeams mocks base method.
func (m *MockStorageInterface) ListRolesForTeams(ctx context.Context, teamIDs []string) ([]*types.Role, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRolesForTeams", ctx, teamIDs)
	ret0, _ := ret[0].([]*types.Role)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRolesForTeams indicates an expected call of ListRolesForTeams.
func (mr *MockStorageInterfaceMockRecorder) ListRolesForTeams(ctx, teamIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRolesForTeams", reflect.TypeOf((*MockStorageInterface)(nil).ListRolesForTeams), ctx, teamIDs)
}

// ReplaceRolePermissions mocks base method.
func (m *MockStorageInterface) ReplaceRolePermissions(ctx context.Context, roleID string, arg2 []*types.RolePermission) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReplaceRolePermissions", ctx, roleID, arg2)
	ret0, _ := ret[0].(error)
	return ret0
}

// ReplaceRolePermissions indicates an expected call of ReplaceRolePermissions.
func (mr *MockStorageInterfaceMockRecorder) ReplaceRolePermissions(ctx, roleID, arg2 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReplaceRolePermissions", reflect.TypeOf((*MockStorageInterface)(nil).ReplaceRolePermissions), ctx, roleID, arg2)
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

// CreateRole mocks base method.
func (m *MockServiceInterface) CreateRole(ctx context.Context, orgID string, req *CreateRoleRequest) (*types.Role, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateRole", ctx, orgID, req)
	ret0, _ := ret[0].(*types.Role)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateRole indicates an expected call of CreateRole.
func (mr *MockServiceInterfaceMockRecorder) CreateRole(ctx, orgID, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateRole", reflect.TypeOf((*MockServiceInterface)(nil).CreateRole), ctx, orgID, req)
}

// DeleteRole mocks base method.
func (m *MockServiceInterface) DeleteRole(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteRole", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteRole indicates an expected call of DeleteRole.
func (mr *MockServiceInterfaceMockRecorder) DeleteRole(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteRole", reflect.TypeOf((*MockServiceInterface)(nil).DeleteRole), ctx, id)
}

// GetEditor mocks base method.
func (m *MockServiceInterface) GetEditor(ctx context.Context, roleID string) (*EditorView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetEditor", ctx, roleID)
	ret0, _ := ret[0].(*EditorView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetEditor indicates an expected call of GetEditor.
func (mr *MockServiceInterfaceMockRecorder) GetEditor(ctx, roleID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetEditor", reflect.TypeOf((*MockServiceInterface)(nil).GetEditor), ctx, roleID)
}

// GetPermissions mocks base method.
func (m *MockServiceInterface) GetPermissions(ctx context.Context, roleID string) ([]*types.RolePermission, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPermissions", ctx, roleID)
	ret0, _ := ret[0].([]*types.RolePermission)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPermissions indicates an expected call of GetPermissions.
func (mr *MockServiceInterfaceMockRecorder) GetPermissions(ctx, roleID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPermissions", reflect.TypeOf((*MockServiceInterface)(nil).GetPermissions), ctx, roleID)
}

// GetRole mocks base method.
func (m *MockServiceInterface) GetRole(ctx context.Context, id string) (*types.Role, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRole", ctx, id)
	ret0, _ := ret[0].(*types.Role)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRole indicates an expected call of GetRole.
func (mr *MockServiceInterfaceMockRecorder) GetRole(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRole", reflect.TypeOf((*MockServiceInterface)(nil).GetRole), ctx, id)
}

// ListRoles mocks base method.
func (m *MockServiceInterface) ListRoles(ctx context.Context, orgID string, scope types.RoleScope) ([]*types.Role, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRoles", ctx, orgID, scope)
	ret0, _ := ret[0].([]*types.Role)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRoles indicates an expected call of ListRoles.
func (mr *MockServiceInterfaceMockRecorder) ListRoles(ctx, orgID, scope any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRoles", reflect.TypeOf((*MockServiceInterface)(nil).ListRoles), ctx, orgID, scope)
}

// ListRolesForTeams mocks base method.
func (m *MockServiceInterface) ListRolesForTeams(ctx context.Context, teamIDs []string) ([]*types.Role, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRolesForTeams", ctx, teamIDs)
	ret0, _ := ret[0].([]*types.Role)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRolesForTeams indicates an expected call of ListRolesForTeams.
func (mr *MockServiceInterfaceMockRecorder) ListRolesForTeams(ctx, teamIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRolesForTeams", reflect.TypeOf((*MockServiceInterface)(nil).ListRolesForTeams), ctx, teamIDs)
}

// Matrix mocks base method.
func (m *MockServiceInterface) Matrix(scope types.RoleScope) ([]permissions.Resource, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Matrix", scope)
	ret0, _ := ret[0].([]permissions.Resource)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Matrix indicates an expected call of Matrix.
func (mr *MockServiceInterfaceMockRecorder) Matrix(scope any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Matrix", reflect.TypeOf((*MockServiceInterface)(nil).Matrix), scope)
}

// ReplacePermissions mocks base method.
func (m *MockServiceInterface) ReplacePermissions(ctx context.Context, roleID string, assignments []permissions.Assignment) ([]*types.RolePermission, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReplacePermissions", ctx, roleID, assignments)
	ret0, _ := ret[0].([]*types.RolePermission)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReplacePermissions indicates an expected call of ReplacePermissions.
func (mr *MockServiceInterfaceMockRecorder) ReplacePermissions(ctx, roleID, assignments any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReplacePermissions", reflect.TypeOf((*MockServiceInterface)(nil).ReplacePermissions), ctx, roleID, assignments)
}

// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package posts -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package posts is a generated GoMock package.
package posts

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

// CreatePost mocks base method.
func (m *MockStorageInterface) CreatePost(ctx context.Context, post *types.Post) (*types.Post, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePost", ctx, post)
	ret0, _ := ret[0].(*types.Post)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreatePost indicates an expected call of CreatePost.
func (mr *MockStorageInterfaceMockRecorder) CreatePost(ctx, post any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePost", reflect.TypeOf((*MockStorageInterface)(nil).CreatePost), ctx, post)
}

// DeletePost mocks base method.
func (m *MockStorageInterface) DeletePost(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeletePost", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeletePost indicates an expected call of DeletePost.
func (mr *MockStorageInterfaceMockRecorder) DeletePost(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeletePost", reflect.TypeOf((*MockStorageInterface)(nil).DeletePost), ctx, id)
}

// GetPost mocks base method.
func (m *MockStorageInterface) GetPost(ctx context.Context, id string) (*types.Post, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPost", ctx, id)
	ret0, _ := ret[0].(*types.Post)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPost indicates an expected call of GetPost.
func (mr *MockStorageInterfaceMockRecorder) GetPost(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPost", reflect.TypeOf((*MockStorageInterface)(nil).GetPost), ctx, id)
}

// ListPosts mocks base method.
func (m *MockStorageInterface) ListPosts(ctx context.Context, orgID, teamID string) ([]*types.Post, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPosts", ctx, orgID, teamID)
	ret0, _ := ret[0].([]*types.Post)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPosts indicates an expected call of ListPosts.
func (mr *MockStorageInterfaceMockRecorder) ListPosts(ctx, orgID, teamID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPosts", reflect.TypeOf((*MockStorageInterface)(nil).ListPosts), ctx, orgID, teamID)
}

// UpdatePostContent mocks base method.
func (m *MockStorageInterface) UpdatePostContent(ctx context.Context, id, title, content string) (*types.Post, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePostContent", ctx, id, title, content)
	ret0, _ := ret[0].(*types.Post)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdatePostContent indicates an expected call of UpdatePostContent.
func (mr *MockStorageInterfaceMockRecorder) UpdatePostContent(ctx, id, title, content any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePostContent", reflect.TypeOf((*MockStorageInterface)(nil).UpdatePostContent), ctx, id, title, content)
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

// CreatePost mocks base method.
func (m *MockServiceInterface) CreatePost(ctx context.Context, orgID, teamID string, req *CreatePostRequest) (*types.Post, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePost", ctx, orgID, teamID, req)
	ret0, _ := ret[0].(*types.Post)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreatePost indicates an expected call of CreatePost.
func (mr *MockServiceInterfaceMockRecorder) CreatePost(ctx, orgID, teamID, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePost", reflect.TypeOf((*MockServiceInterface)(nil).CreatePost), ctx, orgID, teamID, req)
}

// DeletePost mocks base method.
func (m *MockServiceInterface) DeletePost(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeletePost", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeletePost indicates an expected call of DeletePost.
func (mr *MockServiceInterfaceMockRecorder) DeletePost(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeletePost", reflect.TypeOf((*MockServiceInterface)(nil).DeletePost), ctx, id)
}

// GetPost mocks base method.
func (m *MockServiceInterface) GetPost(ctx context.Context, id string) (*types.Post, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPost", ctx, id)
	ret0, _ := ret[0].(*types.Post)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPost indicates an expected call of GetPost.
func (mr *MockServiceInterfaceMockRecorder) GetPost(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPost", reflect.TypeOf((*MockServiceInterface)(nil).GetPost), ctx, id)
}

// ListPosts mocks base method.
func (m *MockServiceInterface) ListPosts(ctx context.Context, orgID, teamID string) ([]*types.Post, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPosts", ctx, orgID, teamID)
	ret0, _ := ret[0].([]*types.Post)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPosts indicates an expected call of ListPosts.
func (mr *MockServiceInterfaceMockRecorder) ListPosts(ctx, orgID, teamID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPosts", reflect.TypeOf((*MockServiceInterface)(nil).ListPosts), ctx, orgID, teamID)
}

// UpdatePost mocks base method.
func (m *MockServiceInterface) UpdatePost(ctx context.Context, id string, req *UpdatePostRequest) (*types.Post, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePost", ctx, id, req)
	ret0, _ := ret[0].(*types.Post)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdatePost indicates an expected call of UpdatePost.
func (mr *MockServiceInterfaceMockRecorder) UpdatePost(ctx, id, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePost", reflect.TypeOf((*MockServiceInterface)(nil).UpdatePost), ctx, id, req)
}

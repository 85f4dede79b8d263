// Code generated by MockGen. DO NOT EDIT.
// Source: ../../internal/email/interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package invitations -destination ./mock_email.go -source=../../internal/email/interfaces.go
//

// Package invitations is a generated GoMock package.
package invitations

import (
	context "context"
	reflect "reflect"

	email "github.com/canonical/workspace-service/internal/email"
	gomock "go.uber.org/mock/gomock"
)

// MockProviderInterface is a mock of ProviderInterface interface.
type MockProviderInterface struct {
	ctrl     *gomock.Controller
	recorder *MockProviderInterfaceMockRecorder
	isgomock struct{}
}

// MockProviderInterfaceMockRecorder is the mock recorder for MockProviderInterface.
type MockProviderInterfaceMockRecorder struct {
	mock *MockProviderInterface
}

// NewMockProviderInterface creates a new mock instance.
func NewMockProviderInterface(ctrl *gomock.Controller) *MockProviderInterface {
	mock := &MockProviderInterface{ctrl: ctrl}
	mock.recorder = &MockProviderInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProviderInterface) EXPECT() *MockProviderInterfaceMockRecorder {
	return m.recorder
}

// Name mocks base method.
func (m *MockProviderInterface) Name() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	ret0, _ := ret[0].(string)
	return ret0
}

// Name indicates an expected call of Name.
func (mr *MockProviderInterfaceMockRecorder) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*MockProviderInterface)(nil).Name))
}

// Send mocks base method.
func (m *MockProviderInterface) Send(ctx context.Context, msg *email.Message) (*email.Result, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Send", ctx, msg)
	ret0, _ := ret[0].(*email.Result)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Send indicates an expected call of Send.
func (mr *MockProviderInterfaceMockRecorder) Send(ctx, msg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Send", reflect.TypeOf((*MockProviderInterface)(nil).Send), ctx, msg)
}

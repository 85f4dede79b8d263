// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package authentication -destination ./mock_verifier.go -source=./interfaces.go
//

// Package authentication is a generated GoMock package.
package authentication

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockTokenVerifierInterface is a mock of TokenVerifierInterface interface.
type MockTokenVerifierInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTokenVerifierInterfaceMockRecorder
	isgomock struct{}
}

// MockTokenVerifierInterfaceMockRecorder is the mock recorder for MockTokenVerifierInterface.
type MockTokenVerifierInterfaceMockRecorder struct {
	mock *MockTokenVerifierInterface
}

// NewMockTokenVerifierInterface creates a new mock instance.
func NewMockTokenVerifierInterface(ctrl *gomock.Controller) *MockTokenVerifierInterface {
	mock := &MockTokenVerifierInterface{ctrl: ctrl}
	mock.recorder = &MockTokenVerifierInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTokenVerifierInterface) EXPECT() *MockTokenVerifierInterfaceMockRecorder {
	return m.recorder
}

// VerifyToken mocks base method.
func (m *MockTokenVerifierInterface) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyToken", ctx, rawToken)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// VerifyToken indicates an expected call of VerifyToken.
func (mr *MockTokenVerifierInterfaceMockRecorder) VerifyToken(ctx, rawToken any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyToken", reflect.TypeOf((*MockTokenVerifierInterface)(nil).VerifyToken), ctx, rawToken)
}

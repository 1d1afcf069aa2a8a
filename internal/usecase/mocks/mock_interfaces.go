//	mockgen -destination=internal/usecase/mocks/mock_interfaces.go -package=mocks github.com/JoaoSCoelho/my-finances-backend/internal/usecase TokenManager,Mailer
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockTokenManager is a mock of TokenManager interface.
type MockTokenManager struct {
	ctrl     *gomock.Controller
	recorder *MockTokenManagerMockRecorder
	isgomock struct{}
}

// MockTokenManagerMockRecorder is the mock recorder for MockTokenManager.
type MockTokenManagerMockRecorder struct {
	mock *MockTokenManager
}

// NewMockTokenManager creates a new mock instance.
func NewMockTokenManager(ctrl *gomock.Controller) *MockTokenManager {
	mock := &MockTokenManager{ctrl: ctrl}
	mock.recorder = &MockTokenManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTokenManager) EXPECT() *MockTokenManagerMockRecorder {
	return m.recorder
}

// GenerateAccess mocks base method.
func (m *MockTokenManager) GenerateAccess(userID, email string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateAccess", userID, email)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GenerateAccess indicates an expected call of GenerateAccess.
func (mr *MockTokenManagerMockRecorder) GenerateAccess(userID, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateAccess", reflect.TypeOf((*MockTokenManager)(nil).GenerateAccess), userID, email)
}

// GenerateRefresh mocks base method.
func (m *MockTokenManager) GenerateRefresh(userID string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateRefresh", userID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GenerateRefresh indicates an expected call of GenerateRefresh.
func (mr *MockTokenManagerMockRecorder) GenerateRefresh(userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateRefresh", reflect.TypeOf((*MockTokenManager)(nil).GenerateRefresh), userID)
}

// VerifyRefresh mocks base method.
func (m *MockTokenManager) VerifyRefresh(token string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyRefresh", token)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// VerifyRefresh indicates an expected call of VerifyRefresh.
func (mr *MockTokenManagerMockRecorder) VerifyRefresh(token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyRefresh", reflect.TypeOf((*MockTokenManager)(nil).VerifyRefresh), token)
}

// MockMailer is a mock of Mailer interface.
type MockMailer struct {
	ctrl     *gomock.Controller
	recorder *MockMailerMockRecorder
	isgomock struct{}
}

// MockMailerMockRecorder is the mock recorder for MockMailer.
type MockMailerMockRecorder struct {
	mock *MockMailer
}

// NewMockMailer creates a new mock instance.
func NewMockMailer(ctrl *gomock.Controller) *MockMailer {
	mock := &MockMailer{ctrl: ctrl}
	mock.recorder = &MockMailerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMailer) EXPECT() *MockMailerMockRecorder {
	return m.recorder
}

// SendEmailConfirmation mocks base method.
func (m *MockMailer) SendEmailConfirmation(ctx context.Context, email, token string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendEmailConfirmation", ctx, email, token)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendEmailConfirmation indicates an expected call of SendEmailConfirmation.
func (mr *MockMailerMockRecorder) SendEmailConfirmation(ctx, email, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendEmailConfirmation", reflect.TypeOf((*MockMailer)(nil).SendEmailConfirmation), ctx, email, token)
}

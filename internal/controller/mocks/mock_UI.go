// Package mocks provides testify mocks of the controller interfaces.
package mocks

import (
	"github.com/mouse-blink/opcheck/internal/controller"
	m "github.com/mouse-blink/opcheck/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

var _ controller.UI = (*MockUI)(nil)

// NewMockUI creates a MockUI whose expectations are asserted on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mockUI := &MockUI{}
	mockUI.Mock.Test(t)

	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}

// Start provides a mock function. Options are not recorded, they are
// opaque functions.
func (_m *MockUI) Start(_ ...controller.StartOption) error {
	args := _m.Called()
	return args.Error(0)
}

// Close provides a mock function.
func (_m *MockUI) Close() {
	_m.Called()
}

// Wait provides a mock function.
func (_m *MockUI) Wait() {
	_m.Called()
}

// DisplayCases provides a mock function with given fields: cases.
func (_m *MockUI) DisplayCases(cases []m.Case) error {
	args := _m.Called(cases)
	return args.Error(0)
}

// DisplayResult provides a mock function with given fields: result.
func (_m *MockUI) DisplayResult(result m.Result) {
	_m.Called(result)
}

// DisplaySummary provides a mock function with given fields: tally.
func (_m *MockUI) DisplaySummary(tally m.Tally) {
	_m.Called(tally)
}

// DisplayMutationReport provides a mock function with given fields: report.
func (_m *MockUI) DisplayMutationReport(report m.MutationReport) {
	_m.Called(report)
}

// DisplayMutationSummary provides a mock function with given fields: tally.
func (_m *MockUI) DisplayMutationSummary(tally m.MutationTally) {
	_m.Called(tally)
}

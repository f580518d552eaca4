// Package mocks provides testify mocks of the domain interfaces.
package mocks

import (
	"context"

	"github.com/mouse-blink/opcheck/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

var _ domain.Workflow = (*MockWorkflow)(nil)

// NewMockWorkflow creates a MockWorkflow whose expectations are asserted on
// cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mockWorkflow := &MockWorkflow{}
	mockWorkflow.Mock.Test(t)

	t.Cleanup(func() { mockWorkflow.AssertExpectations(t) })

	return mockWorkflow
}

// Run provides a mock function with given fields: ctx, args.
func (_m *MockWorkflow) Run(ctx context.Context, args domain.RunArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// List provides a mock function with given fields: args.
func (_m *MockWorkflow) List(args domain.ListArgs) error {
	ret := _m.Called(args)
	return ret.Error(0)
}

// Mutate provides a mock function with given fields: ctx, args.
func (_m *MockWorkflow) Mutate(ctx context.Context, args domain.MutateArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

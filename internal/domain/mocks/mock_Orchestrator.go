package mocks

import (
	"github.com/mouse-blink/opcheck/internal/domain"
	m "github.com/mouse-blink/opcheck/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockOrchestrator is a mock implementation of domain.Orchestrator.
type MockOrchestrator struct {
	mock.Mock
}

var _ domain.Orchestrator = (*MockOrchestrator)(nil)

// TestMutation provides a mock function with given fields: mutation.
func (_m *MockOrchestrator) TestMutation(mutation m.Mutation) (m.MutationReport, error) {
	ret := _m.Called(mutation)
	return ret.Get(0).(m.MutationReport), ret.Error(1)
}

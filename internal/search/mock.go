package search

import (
	"github.com/cyberarsenal/cyberarsenal/internal/recipe"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of Provider for testing.
type MockProvider struct {
	mock.Mock
}

// Match provides a mock function with given fields: cmd, query.
func (_m *MockProvider) Match(cmd recipe.Command, query string) bool {
	ret := _m.Called(cmd, query)

	if rf, ok := ret.Get(0).(func(recipe.Command, string) bool); ok {
		return rf(cmd, query)
	}
	return ret.Bool(0)
}

// Name provides a mock function with given fields: .
func (_m *MockProvider) Name() string {
	ret := _m.Called()

	if rf, ok := ret.Get(0).(func() string); ok {
		return rf()
	}
	return ret.String(0)
}

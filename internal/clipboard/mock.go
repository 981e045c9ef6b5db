package clipboard

import "github.com/stretchr/testify/mock"

// MockWriter is a mock implementation of Writer for testing.
type MockWriter struct {
	mock.Mock
}

// WriteAll provides a mock function with given fields: text.
func (_m *MockWriter) WriteAll(text string) error {
	ret := _m.Called(text)
	return ret.Error(0)
}

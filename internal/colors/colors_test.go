package colors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Debug(msg string, args ...any) { m.Called(msg) }
func (m *mockLogger) Info(msg string, args ...any)  { m.Called(msg) }
func (m *mockLogger) Warn(msg string, args ...any)  { m.Called(msg) }
func (m *mockLogger) Error(msg string, args ...any) { m.Called(msg) }

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() { SetOutput(nil, nil) })
	return &out, &errOut
}

func TestErrorWritesToStderr(t *testing.T) {
	out, errOut := captureOutput(t)

	Error("something", "went wrong")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error:")
	assert.Contains(t, errOut.String(), "something went wrong")
	assert.Contains(t, errOut.String(), Red)
}

func TestSuccessAndInfoWriteToStdout(t *testing.T) {
	out, _ := captureOutput(t)

	Success("copied")
	Info("hello")

	assert.Contains(t, out.String(), checkmark+Reset+" copied")
	assert.Contains(t, out.String(), Blue+"hello"+Reset)
}

func TestWarningWritesToStderr(t *testing.T) {
	_, errOut := captureOutput(t)

	Warning("careful")

	assert.Contains(t, errOut.String(), "Warning:")
	assert.Contains(t, errOut.String(), Yellow)
}

func TestDebugRespectsFlag(t *testing.T) {
	_, errOut := captureOutput(t)

	SetDebug(false)
	Debug("hidden")
	assert.Empty(t, errOut.String())

	SetDebug(true)
	t.Cleanup(func() { SetDebug(false) })
	Debug("shown")
	assert.Contains(t, errOut.String(), "shown")
}

func TestMessagesAreMirroredToLogger(t *testing.T) {
	captureOutput(t)
	l := new(mockLogger)
	l.On("Error", "boom").Once()
	l.On("Warn", "hmm").Once()
	l.On("Info", "ok").Twice()
	SetLogger(l)
	t.Cleanup(func() { SetLogger(nil) })

	Error("boom")
	Warning("hmm")
	Info("ok")
	Success("ok")

	l.AssertExpectations(t)
}

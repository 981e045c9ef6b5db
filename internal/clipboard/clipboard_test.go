package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubSystem(t *testing.T, isUnsupported bool, write func(string) error) {
	t.Helper()
	origWrite, origUnsupported := writeAll, unsupported
	writeAll = write
	unsupported = func() bool { return isUnsupported }
	t.Cleanup(func() {
		writeAll, unsupported = origWrite, origUnsupported
	})
}

func TestSystemWriteAll(t *testing.T) {
	var got string
	stubSystem(t, false, func(text string) error {
		got = text
		return nil
	})

	require.NoError(t, System{}.WriteAll("ping -v 127.0.0.1 "))
	assert.Equal(t, "ping -v 127.0.0.1 ", got)
}

func TestSystemUnavailable(t *testing.T) {
	stubSystem(t, true, func(string) error {
		t.Fatal("write must not be attempted")
		return nil
	})

	err := System{}.WriteAll("x")

	var clipErr *Error
	require.ErrorAs(t, err, &clipErr)
	assert.Equal(t, "write", clipErr.Op)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, "clipboard write: clipboard unavailable", err.Error())
}

func TestSystemWrapsPlatformError(t *testing.T) {
	cause := errors.New("exec: \"xclip\": executable file not found in $PATH")
	stubSystem(t, false, func(string) error { return cause })

	err := System{}.WriteAll("x")

	var clipErr *Error
	require.ErrorAs(t, err, &clipErr)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestBuffer(t *testing.T) {
	var w Writer = &Buffer{}

	require.NoError(t, w.WriteAll("first"))
	require.NoError(t, w.WriteAll("second"))
	assert.Equal(t, "second", w.(*Buffer).Text)
}

func TestMockWriter(t *testing.T) {
	m := new(MockWriter)
	m.On("WriteAll", "ok").Return(nil)
	m.On("WriteAll", "fail").Return(&Error{Op: "write", Err: ErrUnavailable})

	assert.NoError(t, m.WriteAll("ok"))
	assert.ErrorIs(t, m.WriteAll("fail"), ErrUnavailable)
	m.AssertExpectations(t)
}

package errors

import (
	"bytes"
	stderrors "errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "safearea.Load",
		Kind: KindConfig,
		Err:  &ParseError{Source: "statusBarStyle", DataType: "string", Got: 12},
	}
	assert.Equal(t, "safearea.Load [config]: failed to parse string from statusBarStyle: got 12 (int)", err.Error())
}

func TestErrorWithTarget(t *testing.T) {
	err := &Error{
		Op:     "safearea.HideSystemBars",
		Kind:   KindDispatch,
		Target: "STATUS_BAR",
		Err:    stderrors.New("closed"),
	}
	assert.Contains(t, err.Error(), "target=STATUS_BAR")
}

func TestErrorUnwrap(t *testing.T) {
	sentinel := stderrors.New("looper closed")
	err := &Error{Op: "x", Kind: KindDispatch, Err: sentinel}
	assert.ErrorIs(t, err, sentinel)
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindPlatform, "platform"},
		{KindParsing, "parsing"},
		{KindInit, "init"},
		{KindConfig, "config"},
		{KindDispatch, "dispatch"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String(), "ErrorKind(%d)", tt.kind)
	}
}

func TestPanicErrorString(t *testing.T) {
	assert.Equal(t, "panic: boom", (&PanicError{Value: "boom"}).Error())
	assert.Equal(t, "panic in platform.Looper: boom", (&PanicError{Op: "platform.Looper", Value: "boom"}).Error())
}

func TestReport(t *testing.T) {
	var captured *Error
	handler := &testHandler{onError: func(err *Error) { captured = err }}

	SetHandler(handler)
	t.Cleanup(func() { SetHandler(nil) })

	Report(&Error{Op: "test.op", Kind: KindInit, Err: stderrors.New("x")})

	require.NotNil(t, captured)
	assert.Equal(t, "test.op", captured.Op)
	assert.False(t, captured.Timestamp.IsZero())
}

func TestReportNil(t *testing.T) {
	called := false
	SetHandler(&testHandler{onError: func(*Error) { called = true }})
	t.Cleanup(func() { SetHandler(nil) })

	Report(nil)
	ReportPanic(nil)
	assert.False(t, called)
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	t.Cleanup(func() { SetHandler(nil) })

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	require.NotNil(t, captured)
	assert.Equal(t, "intentional test panic", captured.Value)
	assert.Equal(t, "test.recover", captured.Op)
	assert.NotEmpty(t, captured.StackTrace)
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	_, ok := DefaultHandler.(*LogHandler)
	assert.True(t, ok, "SetHandler(nil) should install LogHandler, got %T", DefaultHandler)
}

func TestLogHandlerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	h := &LogHandler{Logger: &logger, Verbose: true}

	h.HandleError(&Error{
		Op:        "safearea.ConfigurationChanged",
		Kind:      KindDispatch,
		Target:    "NAVIGATION_BAR",
		Err:       stderrors.New("closed"),
		Timestamp: time.Now(),
	})
	out := buf.String()
	assert.Contains(t, out, `"op":"safearea.ConfigurationChanged"`)
	assert.Contains(t, out, `"kind":"dispatch"`)
	assert.Contains(t, out, `"target":"NAVIGATION_BAR"`)
	assert.Contains(t, out, `"error":"closed"`)

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "platform.Looper", Value: "boom", StackTrace: "frame"})
	assert.Contains(t, buf.String(), `"stack":"frame"`)
}

type testHandler struct {
	onError func(*Error)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

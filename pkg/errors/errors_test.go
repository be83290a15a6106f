package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestFlowErrorString(t *testing.T) {
	err := &FlowError{
		Op:   "config.Resolve",
		Kind: KindConfig,
		Err:  stderrors.New("columnSpace must be >= 0"),
	}
	got := err.Error()
	want := "config.Resolve [config]: columnSpace must be >= 0"
	if got != want {
		t.Errorf("FlowError.Error() = %q, want %q", got, want)
	}
}

func TestFlowErrorUnwrap(t *testing.T) {
	sentinel := stderrors.New("not measured")
	err := &FlowError{Op: "flow.Place", Kind: KindPrecondition, Err: sentinel}
	if !stderrors.Is(err, sentinel) {
		t.Error("errors.Is should see the wrapped sentinel")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindPrecondition, "precondition"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{ErrorKind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "cmd.layout",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in cmd.layout: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorUnwrap(t *testing.T) {
	inner := &FlowError{Op: "flow.Place", Kind: KindPrecondition, Err: stderrors.New("x")}
	err := &PanicError{Value: inner}
	var fe *FlowError
	if !stderrors.As(err, &fe) {
		t.Fatal("expected errors.As to find the FlowError panic value")
	}
	if fe.Kind != KindPrecondition {
		t.Errorf("Kind = %v, want precondition", fe.Kind)
	}

	if (&PanicError{Value: "str"}).Unwrap() != nil {
		t.Error("non-error panic value should unwrap to nil")
	}
}

func TestReport(t *testing.T) {
	var capturedErr *FlowError
	handler := &testHandler{
		onError: func(err *FlowError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&FlowError{
		Op:   "test.op",
		Kind: KindConfig,
		Err:  stderrors.New("bad"),
	})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	handler := &testHandler{
		onError: func(*FlowError) { called = true },
		onPanic: func(*PanicError) { called = true },
	}
	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(nil)
	ReportPanic(nil)
	if called {
		t.Error("nil errors should not reach the handler")
	}
}

func TestRecover(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if capturedPanic == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if capturedPanic.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "intentional test panic")
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	oldHandler := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback value = %v, want 42", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if DefaultHandler == nil {
		t.Error("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&FlowError{Op: "config.Load", Kind: KindConfig, Err: stderrors.New("boom")})
	if got := buf.String(); got != "[flow error] config.Load: boom\n" {
		t.Errorf("terse output = %q", got)
	}

	buf.Reset()
	h.Verbose = true
	h.HandlePanic(&PanicError{Op: "cmd.render", Value: "oops", StackTrace: "frame"})
	got := buf.String()
	if !strings.HasPrefix(got, "[flow panic] cmd.render: oops\n") {
		t.Errorf("panic output = %q", got)
	}
	if !strings.Contains(got, "Stack trace:\nframe") {
		t.Errorf("verbose output should include the stack, got %q", got)
	}
}

type testHandler struct {
	onError func(*FlowError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *FlowError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

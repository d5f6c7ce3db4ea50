package errors

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestViewKitErrorString(t *testing.T) {
	err := &ViewKitError{
		Op:   "test.operation",
		Kind: KindPlatform,
		Err:  fmt.Errorf("boom"),
	}
	if got, want := err.Error(), "test.operation [platform]: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestViewKitErrorWithViewType(t *testing.T) {
	err := &ViewKitError{
		Op:       "platform.Registry.Create",
		Kind:     KindPlatform,
		ViewType: "label",
		Err:      fmt.Errorf("no factory"),
	}
	if got := err.Error(); !strings.Contains(got, "view=label") {
		t.Errorf("error string %q should contain view=label", got)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindPlatform, "platform"},
		{KindConfig, "config"},
		{KindLifecycle, "lifecycle"},
		{KindPanic, "panic"},
		{KindBuild, "build"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Op: "core.Render.Pop", Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic in core.Render.Pop: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = ""
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestBuildErrorString(t *testing.T) {
	err := &BuildError{Creator: "title", Strategy: "raw", Recovered: "nil map"}
	if got, want := err.Error(), "panic in title.raw build: nil map"; got != want {
		t.Errorf("BuildError.Error() = %q, want %q", got, want)
	}
	err = &BuildError{Creator: "title", Strategy: "raw"}
	if got, want := err.Error(), "unknown error in title.raw build"; got != want {
		t.Errorf("BuildError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *ViewKitError
	SetHandler(&testHandler{onError: func(err *ViewKitError) { captured = err }})
	defer SetHandler(nil)

	Report(&ViewKitError{Op: "test.op", Kind: KindConfig, Err: fmt.Errorf("bad")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestFatalPanicsWithInvariantError(t *testing.T) {
	var handled *InvariantError
	SetHandler(&testHandler{onInvariant: func(err *InvariantError) { handled = err }})
	defer SetHandler(nil)

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		Fatal("core.Render.Pop", "phase %s not pending", "rendered")
	}()

	inv, ok := recovered.(*InvariantError)
	if !ok {
		t.Fatalf("recovered %T, want *InvariantError", recovered)
	}
	if inv.Message != "phase rendered not pending" {
		t.Errorf("Message = %q", inv.Message)
	}
	if handled != inv {
		t.Error("handler should receive the same error that is panicked")
	}
}

func TestRecoverRepanicsInvariants(t *testing.T) {
	var reported bool
	SetHandler(&testHandler{onPanic: func(*PanicError) { reported = true }})
	defer SetHandler(nil)

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		func() {
			defer Recover("test.recover")
			panic(&InvariantError{Op: "x", Message: "y"})
		}()
	}()
	if _, ok := recovered.(*InvariantError); !ok {
		t.Errorf("invariant should propagate through Recover, got %T", recovered)
	}
	if reported {
		t.Error("invariant should not be reported as a plain panic")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(nil)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandlerInvariantIncludesStack(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleInvariant(&InvariantError{Op: "op", Message: "msg", StackTrace: "frame"})
	out := buf.String()
	if !strings.Contains(out, "[viewkit fatal] invariant violated in op: msg") {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(out, "frame") {
		t.Errorf("stack trace missing from %q", out)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

type testHandler struct {
	onError     func(*ViewKitError)
	onPanic     func(*PanicError)
	onBuild     func(*BuildError)
	onInvariant func(*InvariantError)
}

func (h *testHandler) HandleError(err *ViewKitError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *testHandler) HandleBuildError(err *BuildError) {
	if h.onBuild != nil {
		h.onBuild(err)
	}
}

func (h *testHandler) HandleInvariant(err *InvariantError) {
	if h.onInvariant != nil {
		h.onInvariant(err)
	}
}

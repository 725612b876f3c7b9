package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

type captureHandler struct {
	errs   []*TetherError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *TetherError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError)  { h.panics = append(h.panics, err) }

func TestReport_SetsTimestampAndDelivers(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&TetherError{Op: "bind.Attr.set", Kind: KindValidation, Err: stderrors.New("nope")})
	if len(h.errs) != 1 {
		t.Fatalf("expected one error delivered, got %d", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}

	Report(nil)
	if len(h.errs) != 1 {
		t.Error("expected nil report ignored")
	}
}

func TestRecover_ReportsPanic(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("schedule.StepFrame")
		panic("boom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("expected one recovered panic, got %d", len(h.panics))
	}
	p := h.panics[0]
	if p.Op != "schedule.StepFrame" || p.Value != "boom" {
		t.Errorf("unexpected panic record: %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("expected captured stack")
	}
}

func TestTetherError_MessageAndUnwrap(t *testing.T) {
	underlying := stderrors.New("bad input")
	err := &TetherError{Op: "bind.Attr.set", Kind: KindValidation, Err: underlying, Property: "level"}

	msg := err.Error()
	if !strings.Contains(msg, "bind.Attr.set") || !strings.Contains(msg, "validation") || !strings.Contains(msg, "level") {
		t.Errorf("unexpected message %q", msg)
	}
	if !stderrors.Is(err, underlying) {
		t.Error("expected Unwrap to expose the underlying error")
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Property: "level", Input: "500", Reason: "out of range"}
	msg := err.Error()
	if !strings.Contains(msg, "level") || !strings.Contains(msg, "out of range") || !strings.Contains(msg, "500") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestConfigError_Message(t *testing.T) {
	err := &ConfigError{Tag: "x-gauge", Feature: "Attr", Reason: "attribute needs a name"}
	msg := err.Error()
	if !strings.Contains(msg, "x-gauge") || !strings.Contains(msg, "Attr") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestErrorKind_String(t *testing.T) {
	cases := map[ErrorKind]string{
		KindUnknown:    "unknown",
		KindConfig:     "config",
		KindValidation: "validation",
		KindParse:      "parse",
		KindSchedule:   "schedule",
		KindPanic:      "panic",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("kind %d: expected %q, got %q", kind, want, got)
		}
	}
}

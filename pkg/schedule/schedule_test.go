package schedule

import (
	"testing"
	"time"

	tethertest "github.com/go-drift/tether/pkg/testing"
)

type widget struct {
	value int
	runs  int
}

func TestDebounce_CollapsesBurstsPerInstance(t *testing.T) {
	q := Queue()
	render := Debounce(q, func(w *widget) { w.runs++ })
	w := &widget{}

	render.Call(w)
	render.Call(w)
	render.Call(w)
	if w.runs != 0 {
		t.Fatalf("expected no run before drain, got %d", w.runs)
	}

	q.Drain()
	if w.runs != 1 {
		t.Errorf("expected three rapid calls to collapse into one, got %d", w.runs)
	}

	q.Drain()
	if w.runs != 1 {
		t.Errorf("expected no run without a new call, got %d", w.runs)
	}
}

func TestDebounce_InstancesIndependent(t *testing.T) {
	q := Queue()
	render := Debounce(q, func(w *widget) { w.runs++ })
	a, b := &widget{}, &widget{}

	render.Call(a)
	render.Call(b)
	render.Call(a)
	q.Drain()

	if a.runs != 1 || b.runs != 1 {
		t.Errorf("expected one run each, got a=%d b=%d", a.runs, b.runs)
	}
}

func TestDebounce_LastCallWinsOnInstanceState(t *testing.T) {
	q := Queue()
	var seen int
	render := Debounce(q, func(w *widget) { seen = w.value })
	w := &widget{}

	w.value = 1
	render.Call(w)
	w.value = 2
	render.Call(w)
	q.Drain()

	if seen != 2 {
		t.Errorf("expected firing-time state, got %d", seen)
	}
}

func TestDebounce_Cancel(t *testing.T) {
	q := Queue()
	render := Debounce(q, func(w *widget) { w.runs++ })
	w := &widget{}

	render.Call(w)
	render.Cancel(w)
	q.Drain()
	if w.runs != 0 {
		t.Errorf("expected canceled call not to fire, got %d", w.runs)
	}

	// Cancel with nothing pending is a no-op.
	render.Cancel(w)
}

func TestDebounce_OriginalBypassesWindow(t *testing.T) {
	q := Queue()
	render := Debounce(q, func(w *widget) { w.runs++ })
	w := &widget{}

	render.Original()(w)
	if w.runs != 1 {
		t.Errorf("expected synchronous run, got %d", w.runs)
	}
	if q.Len() != 0 {
		t.Error("expected nothing scheduled")
	}
}

func TestDebounceFunc_TrailingCall(t *testing.T) {
	q := Queue()
	runs := 0
	debounced, cancel := DebounceFunc(q, func() { runs++ })

	debounced()
	debounced()
	q.Drain()
	if runs != 1 {
		t.Fatalf("expected one trailing run, got %d", runs)
	}

	debounced()
	cancel()
	q.Drain()
	if runs != 1 {
		t.Errorf("expected canceled run not to fire, got %d", runs)
	}
}

func TestQueue_OrderAndReentrantScheduling(t *testing.T) {
	q := Queue()
	var order []int
	q.Schedule(func() {
		order = append(order, 1)
		q.Schedule(func() { order = append(order, 3) })
	})
	q.Schedule(func() { order = append(order, 2) })

	q.Drain()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected [1 2] on first drain, got %v", order)
	}
	q.Drain()
	if len(order) != 3 || order[2] != 3 {
		t.Errorf("expected reentrant task on second drain, got %v", order)
	}
}

func TestQueue_CancelIsIdempotent(t *testing.T) {
	q := Queue()
	runs := 0
	cancel := q.Schedule(func() { runs++ })
	cancel()
	cancel()
	if q.Len() != 0 {
		t.Errorf("expected empty queue, got %d", q.Len())
	}
	q.Drain()
	if runs != 0 {
		t.Errorf("expected canceled callback not to run, got %d", runs)
	}
}

func TestFrame_StepRunsPending(t *testing.T) {
	s := Frame()
	runs := 0
	s.Schedule(func() { runs++ })
	if !HasPendingFrameWork() {
		t.Fatal("expected pending frame work")
	}

	StepFrame()
	if runs != 1 {
		t.Errorf("expected callback on frame step, got %d", runs)
	}
	if HasPendingFrameWork() {
		t.Error("expected pending set cleared")
	}
}

func TestFrame_CancelBeforeStep(t *testing.T) {
	s := Frame()
	runs := 0
	cancel := s.Schedule(func() { runs++ })
	cancel()
	StepFrame()
	if runs != 0 {
		t.Errorf("expected canceled callback not to run, got %d", runs)
	}
}

func TestDelayScheduler_FiresOnceDue(t *testing.T) {
	clk := tethertest.NewFakeClock()
	s := DelayedBy(clk, 50*time.Millisecond)
	runs := 0
	s.Schedule(func() { runs++ })

	if fired := s.RunDue(); fired != 0 {
		t.Fatalf("expected nothing due before the delay, got %d", fired)
	}
	clk.Advance(49 * time.Millisecond)
	if fired := s.RunDue(); fired != 0 {
		t.Fatalf("expected nothing due just before the delay, got %d", fired)
	}
	clk.Advance(1 * time.Millisecond)
	if fired := s.RunDue(); fired != 1 || runs != 1 {
		t.Errorf("expected one run at the delay, got fired=%d runs=%d", fired, runs)
	}
	if fired := s.RunDue(); fired != 0 {
		t.Errorf("expected no rerun, got %d", fired)
	}
}

func TestDelayScheduler_CancelBeforeDue(t *testing.T) {
	clk := tethertest.NewFakeClock()
	s := DelayedBy(clk, 10*time.Millisecond)
	runs := 0
	cancel := s.Schedule(func() { runs++ })
	cancel()
	cancel()
	if s.Len() != 0 {
		t.Errorf("expected empty scheduler, got %d", s.Len())
	}

	clk.Advance(time.Second)
	if s.RunDue() != 0 || runs != 0 {
		t.Errorf("expected canceled callback not to run, got %d", runs)
	}
}

func TestDebounce_ClockDriven(t *testing.T) {
	clk := tethertest.NewFakeClock()
	s := DelayedBy(clk, 50*time.Millisecond)
	render := Debounce(s, func(w *widget) { w.runs++ })
	w := &widget{}

	render.Call(w)
	render.Call(w)
	render.Call(w)
	clk.Advance(50 * time.Millisecond)
	s.RunDue()

	if w.runs != 1 {
		t.Errorf("expected one trailing run after the window, got %d", w.runs)
	}
}

// unstoppableScheduler models a timer whose callback is already in flight
// when cancellation is attempted: cancel never removes anything, and Fire
// runs every callback ever scheduled.
type unstoppableScheduler struct {
	fns []func()
}

func (s *unstoppableScheduler) Schedule(fn func()) (cancel func()) {
	s.fns = append(s.fns, fn)
	return func() {}
}

func (s *unstoppableScheduler) Fire() {
	fns := s.fns
	s.fns = nil
	for _, fn := range fns {
		fn()
	}
}

func TestDebounce_SupersededCallbackRunsOnce(t *testing.T) {
	s := &unstoppableScheduler{}
	render := Debounce(s, func(w *widget) { w.runs++ })
	w := &widget{}

	// The second Call cannot stop the first callback; only the current
	// pending call may invoke the method.
	render.Call(w)
	render.Call(w)
	s.Fire()

	if w.runs != 1 {
		t.Errorf("expected the superseded callback to be skipped, got %d runs", w.runs)
	}
}

package testing

import (
	"testing"
	"time"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestManualScheduler_FireRunsPending(t *testing.T) {
	s := NewManualScheduler()
	ran := 0
	s.Schedule(func() { ran++ })
	s.Schedule(func() { ran++ })

	if got := s.PendingCount(); got != 2 {
		t.Fatalf("expected 2 pending, got %d", got)
	}
	if fired := s.Fire(); fired != 2 {
		t.Errorf("expected 2 fired, got %d", fired)
	}
	if ran != 2 {
		t.Errorf("expected both callbacks to run, got %d", ran)
	}
	if s.PendingCount() != 0 {
		t.Error("expected pending to be cleared after Fire")
	}
}

func TestManualScheduler_CancelIsIdempotent(t *testing.T) {
	s := NewManualScheduler()
	ran := false
	cancel := s.Schedule(func() { ran = true })

	cancel()
	cancel()
	if fired := s.Fire(); fired != 0 {
		t.Errorf("expected nothing to fire, got %d", fired)
	}
	if ran {
		t.Error("canceled callback ran")
	}
}

func TestManualScheduler_ReschedulesDuringFireWait(t *testing.T) {
	s := NewManualScheduler()
	second := false
	s.Schedule(func() {
		s.Schedule(func() { second = true })
	})

	s.Fire()
	if second {
		t.Fatal("callback scheduled during Fire ran in the same batch")
	}
	s.Fire()
	if !second {
		t.Error("callback scheduled during Fire never ran")
	}
}

func TestRecorder_CountsBySequence(t *testing.T) {
	var r Recorder
	r.Record("a")
	r.Record("b")
	r.Record("a")

	if got := r.Count("a"); got != 2 {
		t.Errorf("expected 2 a events, got %d", got)
	}
	if got := r.Count(""); got != 3 {
		t.Errorf("expected 3 total events, got %d", got)
	}
	r.Reset()
	if got := r.Count(""); got != 0 {
		t.Errorf("expected empty after Reset, got %d", got)
	}
}

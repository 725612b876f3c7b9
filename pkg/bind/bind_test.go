package bind

import (
	"testing"

	"github.com/go-drift/tether/pkg/errors"
	"github.com/go-drift/tether/pkg/host"
	"github.com/go-drift/tether/pkg/transform"
)

// gauge is the test host used throughout: an attribute-backed element with
// a bounded numeric level, a string label and a presence flag.
type gauge struct {
	host.ElementBase
	Level Slot[float64]
	Label Slot[string]
	Fancy Slot[bool]
}

func newGaugeClass(tag string, extra ...Feature[gauge]) *Class[gauge] {
	features := []Feature[gauge]{
		Attr("level", transform.Number(-100, 100), func(g *gauge) *Slot[float64] { return &g.Level }),
		Attr("label", transform.String(), func(g *gauge) *Slot[string] { return &g.Label },
			AttrOptions[string]{Default: "plain"}),
		Attr("fancy", transform.Bool(), func(g *gauge) *Slot[bool] { return &g.Fancy }),
	}
	return NewClass(tag, func() *gauge { return &gauge{} }, append(features, extra...)...)
}

func TestAttr_ContentDrivesProperty(t *testing.T) {
	cls := newGaugeClass("x-gauge-content")
	g := cls.New()

	g.SetAttribute("level", "42")
	if got := g.Level.Get(); got != 42 {
		t.Errorf("expected 42, got %v", got)
	}

	g.SetAttribute("level", "500")
	if got := g.Level.Get(); got != 100 {
		t.Errorf("expected clamp to 100, got %v", got)
	}

	g.SetAttribute("level", "not a number")
	if got := g.Level.Get(); got != 0 {
		t.Errorf("expected graceful degradation to initial 0, got %v", got)
	}
}

func TestAttr_PropertyDrivesContent(t *testing.T) {
	cls := newGaugeClass("x-gauge-property")
	g := cls.New()

	if err := g.Level.Set(42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw, ok := g.Attribute("level"); !ok || raw != "42" {
		t.Errorf("expected content 42, got %q present=%v", raw, ok)
	}

	err := g.Level.Set(500)
	if err == nil {
		t.Fatal("expected out-of-range set to be rejected")
	}
	ve, ok := err.(*errors.ValidationError)
	if !ok {
		t.Fatalf("expected *errors.ValidationError, got %T", err)
	}
	if ve.Property != "level" {
		t.Errorf("expected error attributed to level, got %q", ve.Property)
	}
	if got := g.Level.Get(); got != 42 {
		t.Errorf("expected value unchanged after rejection, got %v", got)
	}
	if raw, _ := g.Attribute("level"); raw != "42" {
		t.Errorf("expected content unchanged after rejection, got %q", raw)
	}
}

func TestAttr_ExactlyOneEventPerChange(t *testing.T) {
	cls := newGaugeClass("x-gauge-events")
	g := cls.New()

	var events []string
	cls.OnEvent(g, func(h *gauge, ev Event) {
		events = append(events, ev.Property)
	})

	g.Level.Set(7)
	if len(events) != 1 || events[0] != "level" {
		t.Fatalf("expected one level event for a property write, got %v", events)
	}

	g.SetAttribute("level", "9")
	if len(events) != 2 {
		t.Fatalf("expected one more event for a content write, got %v", events)
	}

	// Same raw value again: the runtime notifies, the engine ignores.
	g.SetAttribute("level", "9")
	if len(events) != 2 {
		t.Errorf("expected no event for an unchanged raw value, got %v", events)
	}

	// Equal property value: no-op before any side effect.
	g.Level.Set(9)
	if len(events) != 2 {
		t.Errorf("expected no event for an equal property write, got %v", events)
	}
}

func TestAttr_BoolPresence(t *testing.T) {
	cls := newGaugeClass("x-gauge-bool")
	g := cls.New()

	g.Fancy.MustSet(true)
	if raw, ok := g.Attribute("fancy"); !ok || raw != "" {
		t.Errorf("expected empty-string presence, got %q present=%v", raw, ok)
	}

	g.Fancy.MustSet(false)
	if _, ok := g.Attribute("fancy"); ok {
		t.Error("expected attribute removed for false")
	}

	g.SetAttribute("fancy", "anything")
	if !g.Fancy.Get() {
		t.Error("expected any present content to mean true")
	}
}

func TestAttr_RemovalRestoresInitial(t *testing.T) {
	cls := newGaugeClass("x-gauge-removal")
	g := cls.New()

	g.SetAttribute("label", "loud")
	if got := g.Label.Get(); got != "loud" {
		t.Fatalf("expected loud, got %q", got)
	}

	g.RemoveAttribute("label")
	if got := g.Label.Get(); got != "plain" {
		t.Errorf("expected declared initial restored, got %q", got)
	}
}

func TestAttr_ContentPresentAtConstruction(t *testing.T) {
	cls := NewClass("x-gauge-preexisting", func() *gauge {
		g := &gauge{}
		g.SetAttribute("level", "33")
		return g
	},
		Attr("level", transform.Number(-100, 100), func(g *gauge) *Slot[float64] { return &g.Level }),
	)
	g := cls.New()
	if got := g.Level.Get(); got != 33 {
		t.Errorf("expected construction-time content parsed, got %v", got)
	}
}

func TestSlot_PresetOverridesDefault(t *testing.T) {
	cls := NewClass("x-gauge-preset", func() *gauge {
		return &gauge{Label: NewSlot("from-literal")}
	},
		Attr("label", transform.String(), func(g *gauge) *Slot[string] { return &g.Label },
			AttrOptions[string]{Default: "declared"}),
	)
	g := cls.New()
	if got := g.Label.Get(); got != "from-literal" {
		t.Errorf("expected composite-literal preset to win, got %q", got)
	}
}

func TestSlot_SetBeforeBindFails(t *testing.T) {
	var s Slot[int]
	if err := s.Set(1); err == nil {
		t.Error("expected error for unbound slot")
	}
}

func TestAttr_NonReflective(t *testing.T) {
	cls := NewClass("x-gauge-nonreflective", func() *gauge { return &gauge{} },
		Attr("level", transform.Number(-100, 100), func(g *gauge) *Slot[float64] { return &g.Level },
			AttrOptions[float64]{NonReflective: true}),
	)
	g := cls.New()
	g.Level.MustSet(12)
	if _, ok := g.Attribute("level"); ok {
		t.Error("expected no content write for a non-reflective binding")
	}
}

func TestAttr_AsOverridesContentName(t *testing.T) {
	cls := NewClass("x-gauge-as", func() *gauge { return &gauge{} },
		Attr("level", transform.Number(-100, 100), func(g *gauge) *Slot[float64] { return &g.Level },
			AttrOptions[float64]{As: "data-level"}),
	)
	g := cls.New()
	g.Level.MustSet(5)
	if raw, ok := g.Attribute("data-level"); !ok || raw != "5" {
		t.Errorf("expected data-level=5, got %q present=%v", raw, ok)
	}
	if _, ok := g.Attribute("level"); ok {
		t.Error("expected nothing written under the property name")
	}

	g.SetAttribute("data-level", "8")
	if got := g.Level.Get(); got != 8 {
		t.Errorf("expected content under the As name to drive the property, got %v", got)
	}
}

func TestAttr_FirstRegistrantWins(t *testing.T) {
	type twin struct {
		host.ElementBase
		A Slot[string]
		B Slot[string]
	}
	cls := NewClass("x-twin", func() *twin { return &twin{} },
		Attr("shared", transform.String(), func(h *twin) *Slot[string] { return &h.A }),
		Attr("shared", transform.String(), func(h *twin) *Slot[string] { return &h.B }),
	)
	h := cls.New()
	h.SetAttribute("shared", "content")
	if got := h.A.Get(); got != "content" {
		t.Errorf("expected first binding to receive content, got %q", got)
	}
	if got := h.B.Get(); got != "" {
		t.Errorf("expected second binding untouched by content, got %q", got)
	}
}

func TestProp_NoContentCounterpart(t *testing.T) {
	type counter struct {
		host.ElementBase
		Count Slot[float64]
	}
	cls := NewClass("x-counter", func() *counter { return &counter{} },
		Prop("count", transform.AnyNumber(), func(h *counter) *Slot[float64] { return &h.Count },
			PropOptions[float64]{Default: 1}),
	)
	h := cls.New()
	if got := h.Count.Get(); got != 1 {
		t.Fatalf("expected declared default, got %v", got)
	}
	h.Count.MustSet(5)
	if _, ok := h.Attribute("count"); ok {
		t.Error("expected no content attribute for a Prop binding")
	}
}

func TestProp_ReadTransform(t *testing.T) {
	type counter struct {
		Count Slot[float64]
	}
	cls := NewClass("x-counter-read", func() *counter { return &counter{} },
		Prop("count", transform.AnyNumber(), func(h *counter) *Slot[float64] { return &h.Count },
			PropOptions[float64]{Default: 2, ReadTransform: func(v float64) float64 { return v * 10 }}),
	)
	h := cls.New()
	if got := h.Count.Get(); got != 20 {
		t.Errorf("expected read transform applied, got %v", got)
	}
}

func TestNewClass_ConfigErrors(t *testing.T) {
	assertConfigPanic := func(name string, fn func()) {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Fatal("expected panic")
				} else if _, ok := r.(*errors.ConfigError); !ok {
					t.Fatalf("expected *errors.ConfigError, got %T", r)
				}
			}()
			fn()
		})
	}

	assertConfigPanic("empty tag", func() {
		NewClass("", func() *gauge { return &gauge{} })
	})
	assertConfigPanic("nil constructor", func() {
		NewClass[gauge]("x-nil-construct", nil)
	})
	assertConfigPanic("prop without name", func() {
		NewClass("x-noname", func() *gauge { return &gauge{} },
			Prop("", transform.String(), func(g *gauge) *Slot[string] { return &g.Label }),
		)
	})
	assertConfigPanic("attr without any name", func() {
		NewClass("x-attr-noname", func() *gauge { return &gauge{} },
			Attr("", transform.String(), func(g *gauge) *Slot[string] { return &g.Label }),
		)
	})
}

func TestOnEvent_Unsubscribe(t *testing.T) {
	cls := newGaugeClass("x-gauge-unsub")
	g := cls.New()

	calls := 0
	unsubscribe := cls.OnEvent(g, func(h *gauge, ev Event) { calls++ })

	g.Level.MustSet(1)
	unsubscribe()
	g.Level.MustSet(2)
	if calls != 1 {
		t.Errorf("expected one delivery before unsubscribe, got %d", calls)
	}
}

func TestOnEvent_UnsubscribeDuringDispatch(t *testing.T) {
	cls := newGaugeClass("x-gauge-unsub-dispatch")
	g := cls.New()

	var first, second, third int
	var cancelSecond func()
	cls.OnEvent(g, func(h *gauge, ev Event) {
		first++
		cancelSecond()
	})
	cancelSecond = cls.OnEvent(g, func(h *gauge, ev Event) { second++ })
	cls.OnEvent(g, func(h *gauge, ev Event) { third++ })

	g.Level.MustSet(1)
	if first != 1 || third != 1 {
		t.Errorf("expected remaining subscribers to receive the event, got first=%d third=%d", first, third)
	}
	if second != 1 {
		t.Errorf("expected in-flight delivery to complete for the removed subscriber, got %d", second)
	}

	g.Level.MustSet(2)
	if second != 1 {
		t.Errorf("expected removed subscriber to miss later events, got %d", second)
	}
	if first != 2 || third != 2 {
		t.Errorf("expected remaining subscribers to keep receiving, got first=%d third=%d", first, third)
	}
}

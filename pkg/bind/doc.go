// Package bind keeps the two representations of a host object's properties
// synchronized: the external, always-string content attribute and the
// internal, typed property value. It also dispatches reactive notifications
// after any bound property changes.
//
// # Classes and features
//
// A [Class] describes one host type: its tag, its constructor and the
// features declared on it. Features bind typed properties ([Prop]), typed
// properties with a synchronized content attribute ([Attr]), reactive
// methods ([Reactive]), lifecycle callbacks ([Connected], [Disconnected])
// and external subscriptions ([SubscribeFunc]).
//
//	type Counter struct {
//	    host.ElementBase
//	    Value bind.Slot[float64]
//	}
//
//	var counterClass = bind.NewClass("my-counter",
//	    func() *Counter { return &Counter{} },
//	    bind.Attr("value", transform.Number(0, 100),
//	        func(c *Counter) *bind.Slot[float64] { return &c.Value }),
//	    bind.Reactive((*Counter).render),
//	)
//
// Instances are constructed with [Class.New], which runs every declared
// initializer and then marks the instance eligible for reactive
// notifications.
//
// # Synchronization semantics
//
// A property write validates, runs the transformer's pre-commit hook,
// commits, mirrors to the content attribute (for reflective attributes) and
// publishes a reactive event, in that order. An external content change
// parses, commits and publishes. A property-driven content write arms a
// one-shot suppression for its attribute name so the resulting change
// notification does not re-run the commit logic; each logical change
// produces exactly one reactive event no matter which side initiated it.
//
// # Bookkeeping
//
// Per-class state lives on the Class. Per-instance state (suppressions, the
// reactive bus, the eligibility mark) lives in a weak side table and never
// keeps an otherwise-unreachable instance alive.
package bind

package host

// ElementBase is an embeddable in-memory attribute store implementing
// [Object]. It delivers change notifications (name, old, new) to the
// installed sink, only for names in the sink's observed list, with nil
// meaning "attribute absent".
//
// ElementBase is the reference host runtime used by tests and examples;
// real embeddings back Object with their own storage and notification
// delivery. It is not synchronized: like the rest of the engine it expects
// single-threaded cooperative use.
type ElementBase struct {
	attrs    map[string]string
	sink     NotificationSink
	observed map[string]struct{}
}

// InstallSink installs the notification sink and caches its observed list.
func (e *ElementBase) InstallSink(sink NotificationSink) {
	e.sink = sink
	e.observed = make(map[string]struct{})
	for _, name := range sink.ObservedAttributes() {
		e.observed[name] = struct{}{}
	}
}

// Attribute returns the content value for name and whether it is set.
func (e *ElementBase) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttribute sets the content value for name and notifies the sink if
// the name is observed. Notification fires even when the value is
// unchanged, matching platform attribute semantics; observers are expected
// to ignore no-op changes themselves.
func (e *ElementBase) SetAttribute(name, value string) {
	var oldValue *string
	if old, ok := e.attrs[name]; ok {
		oldValue = &old
	}
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
	e.notify(name, oldValue, &value)
}

// RemoveAttribute removes the content value for name, notifying the sink
// if the name is observed and was set.
func (e *ElementBase) RemoveAttribute(name string) {
	old, ok := e.attrs[name]
	if !ok {
		return
	}
	delete(e.attrs, name)
	e.notify(name, &old, nil)
}

// AttributeNames returns the names of all set attributes.
func (e *ElementBase) AttributeNames() []string {
	names := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		names = append(names, name)
	}
	return names
}

func (e *ElementBase) notify(name string, oldValue, newValue *string) {
	if e.sink == nil {
		return
	}
	if _, ok := e.observed[name]; !ok {
		return
	}
	e.sink.AttributeChanged(name, oldValue, newValue)
}

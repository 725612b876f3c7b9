// Package host defines the boundary between the binding engine and the
// hosting runtime that owns host objects: the string-keyed attribute
// surface, the lifecycle notifications and the type registry. It also
// provides ElementBase, an embeddable in-memory implementation used by
// tests and simple embeddings.
package host

// Object is the string-keyed attribute surface every attribute-bound host
// type must provide. Content values are always strings; absence is
// distinct from the empty string.
type Object interface {
	// Attribute returns the content value for name and whether it is set.
	Attribute(name string) (string, bool)
	// SetAttribute sets the content value for name.
	SetAttribute(name, value string)
	// RemoveAttribute removes the content value for name, if set.
	RemoveAttribute(name string)
}

// AttributeObserver is implemented by host types that declare their own
// statically observed attribute names, independent of bound properties.
type AttributeObserver interface {
	ObservedAttributes() []string
}

// AttributeChangedNotifier is implemented by host types that want their own
// attribute-change notification. The engine calls it before dispatching to
// bound observers, and only for names the host type itself declared via
// AttributeObserver. A nil old or new value means "attribute absent".
type AttributeChangedNotifier interface {
	AttributeChanged(name string, oldValue, newValue *string)
}

// ConnectNotifier is implemented by host types that want their own attach
// notification. The engine calls it before running declared connect
// callbacks.
type ConnectNotifier interface {
	Connected()
}

// DisconnectNotifier is implemented by host types that want their own
// detach notification. The engine calls it before running declared
// disconnect callbacks.
type DisconnectNotifier interface {
	Disconnected()
}

// NotificationSink receives attribute-change notifications from an
// attribute store. The binding engine installs one per instance; the store
// must deliver notifications only for names in ObservedAttributes, with nil
// representing "attribute absent".
type NotificationSink interface {
	ObservedAttributes() []string
	AttributeChanged(name string, oldValue, newValue *string)
}

// SinkInstaller is implemented by attribute stores that accept a
// notification sink. ElementBase implements it; the binding engine calls it
// during construction.
type SinkInstaller interface {
	InstallSink(sink NotificationSink)
}

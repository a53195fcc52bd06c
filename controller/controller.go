package controller

// Listener receives change notifications from a Controller. Listeners are
// registered and removed by interface identity.
type Listener interface {
	ControllerChanged()
}

// Controller is an observable, disposable holder of application state.
// Once disposed it must never be used again and emits no further
// notifications.
type Controller interface {
	AddChangeListener(Listener)
	RemoveChangeListener(Listener)
	Dispose() error
}

// StateReader is the optional capability for controllers that expose a
// readable state snapshot. Snapshots are compared by identity, never by
// value.
type StateReader interface {
	CurrentState() any
}

// ChangeNotifier is an embeddable Controller base that manages the listener
// list. The zero value is ready to use.
type ChangeNotifier struct {
	listeners []Listener
	disposed  bool
}

func (n *ChangeNotifier) AddChangeListener(l Listener) {
	n.mustBeLive("add listener")
	for _, existing := range n.listeners {
		if existing == l {
			return
		}
	}
	n.listeners = append(n.listeners, l)
}

func (n *ChangeNotifier) RemoveChangeListener(l Listener) {
	for i, existing := range n.listeners {
		if existing == l {
			n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
			return
		}
	}
}

// NotifyListeners invokes every registered listener in registration order.
// It iterates a snapshot so a listener may add or remove listeners, or
// notify again, without corrupting the list.
func (n *ChangeNotifier) NotifyListeners() {
	n.mustBeLive("notify")
	snapshot := make([]Listener, len(n.listeners))
	copy(snapshot, n.listeners)
	for _, l := range snapshot {
		l.ControllerChanged()
	}
}

func (n *ChangeNotifier) HasListeners() bool {
	return len(n.listeners) > 0
}

func (n *ChangeNotifier) Dispose() error {
	n.mustBeLive("dispose")
	n.disposed = true
	n.listeners = nil
	return nil
}

func (n *ChangeNotifier) IsDisposed() bool {
	return n.disposed
}

func (n *ChangeNotifier) mustBeLive(op string) {
	if n.disposed {
		panic("controller: " + op + " on disposed notifier")
	}
}

// StateController holds a single state value and notifies on every SetState,
// even when the next value equals the current one. Suppression of redundant
// notifications is the subscriber's concern.
type StateController[T any] struct {
	ChangeNotifier
	state T
}

func NewStateController[T any](initial T) *StateController[T] {
	return &StateController[T]{state: initial}
}

func (c *StateController[T]) State() T {
	return c.state
}

func (c *StateController[T]) SetState(next T) {
	c.state = next
	c.NotifyListeners()
}

// CurrentState implements StateReader.
func (c *StateController[T]) CurrentState() any {
	return c.state
}

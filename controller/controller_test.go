package controller_test

import (
	"testing"

	"github.com/delaneyj/scopeparty/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingListener struct {
	calls int
}

func (l *countingListener) ControllerChanged() {
	l.calls++
}

func TestNotifyOrderAndDedup(t *testing.T) {
	n := &controller.ChangeNotifier{}
	a := &countingListener{}
	b := &countingListener{}

	n.AddChangeListener(a)
	n.AddChangeListener(b)
	// Re-adding the same listener must not double notifications.
	n.AddChangeListener(a)

	n.NotifyListeners()
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)

	n.RemoveChangeListener(a)
	n.NotifyListeners()
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 2, b.calls)
}

func TestRemoveUnknownListenerIsNoop(t *testing.T) {
	n := &controller.ChangeNotifier{}
	n.RemoveChangeListener(&countingListener{})
	assert.False(t, n.HasListeners())
}

type selfRemovingListener struct {
	notifier *controller.ChangeNotifier
	calls    int
}

func (l *selfRemovingListener) ControllerChanged() {
	l.calls++
	l.notifier.RemoveChangeListener(l)
}

// A listener removing itself mid-notification must not skip or corrupt the
// rest of the list.
func TestReentrantRemoveDuringNotify(t *testing.T) {
	n := &controller.ChangeNotifier{}
	a := &selfRemovingListener{notifier: n}
	b := &countingListener{}

	n.AddChangeListener(a)
	n.AddChangeListener(b)

	n.NotifyListeners()
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)

	n.NotifyListeners()
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 2, b.calls)
}

func TestDisposeSemantics(t *testing.T) {
	n := &controller.ChangeNotifier{}
	n.AddChangeListener(&countingListener{})

	require.NoError(t, n.Dispose())
	assert.True(t, n.IsDisposed())
	assert.False(t, n.HasListeners())

	assert.Panics(t, func() { n.NotifyListeners() })
	assert.Panics(t, func() { n.AddChangeListener(&countingListener{}) })
	assert.Panics(t, func() { _ = n.Dispose() })
}

func TestStateControllerNotifiesOnEverySet(t *testing.T) {
	c := controller.NewStateController(1)
	l := &countingListener{}
	c.AddChangeListener(l)

	c.SetState(2)
	assert.Equal(t, 2, c.State())
	assert.Equal(t, 1, l.calls)

	// Equal value still notifies; suppression is the subscriber's job.
	c.SetState(2)
	assert.Equal(t, 2, l.calls)
}

func TestStateControllerCurrentState(t *testing.T) {
	type snapshot struct{ n int }
	s := &snapshot{n: 1}
	c := controller.NewStateController(s)

	var reader controller.StateReader = c
	assert.Same(t, s, reader.CurrentState())
}

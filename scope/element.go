package scope

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/delaneyj/scopeparty/controller"
	"github.com/delaneyj/scopeparty/tree"
)

// scopeElement is the runtime side of a Scope. It owns the controller when
// the descriptor is Create, merely references it when Value, and relays the
// controller's change notifications into a single mark-dirty/rebuild cycle
// per frame.
type scopeElement[C controller.Controller] struct {
	tree.Core
	child tree.Element

	ctrl    C
	hasCtrl bool
	// subscribed latches true once any descendant has ever listened; it
	// never resets while mounted, even if every dependent unregisters.
	subscribed bool
	lastState  any
	dirty      bool
	dependents mapset.Set[tree.Element]
}

func newScopeElement[C controller.Controller](s *Scope[C]) *scopeElement[C] {
	el := &scopeElement[C]{
		dependents: mapset.NewThreadUnsafeSet[tree.Element](),
	}
	el.InitCore(el, s)
	return el
}

func (el *scopeElement[C]) scope() *Scope[C] {
	return el.Widget().(*Scope[C])
}

func (el *scopeElement[C]) Mount(parent tree.Element, owner *tree.BuildOwner) {
	el.MountCore(parent, owner)
	dep := el.scope().Dep
	switch dep.kind {
	case variantValue:
		// Adopted, never lazy, never owned.
		el.ctrl = dep.ctrl
		el.hasCtrl = true
	case variantCreate:
		if !dep.lazy {
			el.construct(dep.factory)
		}
	}
	if cw := el.scope().Child; cw != nil {
		ch := cw.CreateElement()
		ch.Mount(el, owner)
		el.child = ch
	}
}

func (el *scopeElement[C]) construct(factory func() C) {
	if el.hasCtrl {
		panic("scope: controller constructed twice at one tree position")
	}
	el.ctrl = factory()
	el.hasCtrl = true
}

// ensureController constructs a deferred Create controller on first demand.
func (el *scopeElement[C]) ensureController() {
	if el.hasCtrl {
		return
	}
	el.construct(el.scope().Dep.factory)
}

// AddDependent registers a descendant consumer. The first listening
// dependent triggers lazy construction and registers the change handler on
// the controller exactly once.
func (el *scopeElement[C]) AddDependent(dep tree.Element) {
	el.dependents.Add(dep)
	if el.subscribed {
		return
	}
	el.ensureController()
	el.subscribed = true
	el.ctrl.AddChangeListener(el)
}

func (el *scopeElement[C]) RemoveDependent(dep tree.Element) {
	el.dependents.Remove(dep)
}

func (el *scopeElement[C]) NotifyDependents() {
	for _, dep := range el.dependents.ToSlice() {
		dep.MarkNeedsBuild()
	}
}

// ControllerChanged implements controller.Listener. When the controller
// exposes a state snapshot, a notification carrying a snapshot identical to
// the last observed one is dropped; anything else marks the element dirty
// and requests a rebuild. Reentrant notifications land on idempotent flag
// updates.
func (el *scopeElement[C]) ControllerChanged() {
	if reader, ok := controller.Controller(el.ctrl).(controller.StateReader); ok {
		state := reader.CurrentState()
		if state == el.lastState {
			return
		}
		el.lastState = state
	}
	el.dirty = true
	el.MarkNeedsBuild()
}

// Update handles in-place reconfiguration by an ancestor re-render. The
// descriptor variant must not change; within a variant, identity-unequal
// descriptors propagate a tree update to dependents independent of the
// dirty/notification path.
func (el *scopeElement[C]) Update(next tree.Widget) {
	oldDep := el.scope().Dep
	el.SetWidget(next)
	newDep := el.scope().Dep

	if !newDep.equals(oldDep) {
		if newDep.kind != oldDep.kind {
			panic(&InvalidScopeTransitionError{
				From: oldDep.kind.String(),
				To:   newDep.kind.String(),
			})
		}
		switch newDep.kind {
		case variantCreate:
			// A new factory never re-invokes construction for an already
			// built controller; the factory runs at most once per mounted
			// lifetime. A still-deferred controller is built now only when
			// the new descriptor is eager or a listener already exists.
			if !el.hasCtrl && (!newDep.lazy || el.subscribed) {
				el.construct(newDep.factory)
				if el.subscribed {
					el.ctrl.AddChangeListener(el)
				}
			}
		case variantValue:
			if controller.Controller(el.ctrl) != controller.Controller(newDep.ctrl) {
				if el.subscribed {
					el.ctrl.RemoveChangeListener(el)
				}
				// Not owned: the old controller is never disposed here.
				el.ctrl = newDep.ctrl
				el.lastState = nil
				if el.subscribed {
					el.ctrl.AddChangeListener(el)
				}
			}
		}
		el.NotifyDependents()
	}

	el.child = tree.UpdateChild(el, el.child, el.scope().Child)
}

// Rebuild delivers a coalesced change notification: dependents are notified
// once per frame no matter how many distinct controller notifications
// arrived since the last rebuild.
func (el *scopeElement[C]) Rebuild() {
	if !el.Mounted() {
		return
	}
	el.ClearNeedsBuild()
	if el.dirty && el.subscribed {
		el.NotifyDependents()
	}
	el.dirty = false
}

// Unmount tears down the subscription and disposes the controller iff this
// element constructed it. Dispose errors are reported through the owner's
// error hook unmodified.
func (el *scopeElement[C]) Unmount() {
	if el.child != nil {
		el.child.Unmount()
		el.child = nil
	}
	if el.subscribed && el.hasCtrl {
		el.ctrl.RemoveChangeListener(el)
	}
	el.subscribed = false
	owned := el.scope().Dep.kind == variantCreate
	if owned && el.hasCtrl {
		if err := el.ctrl.Dispose(); err != nil {
			el.Owner().HandleError(el, err)
		}
	}
	el.hasCtrl = false
	el.dependents.Clear()
	el.UnmountCore()
}

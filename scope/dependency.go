package scope

import "github.com/delaneyj/scopeparty/controller"

type variant uint8

const (
	variantCreate variant = iota
	variantValue
)

func (v variant) String() string {
	if v == variantCreate {
		return "Create"
	}
	return "Value"
}

// Dependency describes how a Scope obtains its controller: construct one via
// a factory (optionally deferred until first demand), or adopt an
// already-constructed instance. Immutable after construction.
//
// Equality is identity-based on purpose. Two Create descriptors are equal
// only when they are the same descriptor, never by comparing factories, so a
// rebuilt ancestor that allocates a structurally identical descriptor is
// still a reconfiguration. Two Value descriptors are equal iff they hold the
// same controller instance.
type Dependency[C controller.Controller] struct {
	kind    variant
	factory func() C
	lazy    bool
	ctrl    C
}

// Create returns a descriptor that constructs the controller with factory.
// With lazy true, construction waits for the first demand instead of
// happening at mount.
func Create[C controller.Controller](factory func() C, lazy bool) *Dependency[C] {
	if factory == nil {
		panic("scope: Create with nil factory")
	}
	return &Dependency[C]{kind: variantCreate, factory: factory, lazy: lazy}
}

// Value returns a descriptor that adopts ctrl without taking ownership: the
// scope never disposes it.
func Value[C controller.Controller](ctrl C) *Dependency[C] {
	return &Dependency[C]{kind: variantValue, ctrl: ctrl}
}

func (d *Dependency[C]) equals(other *Dependency[C]) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil || d.kind != other.kind {
		return false
	}
	if d.kind == variantValue {
		return controller.Controller(d.ctrl) == controller.Controller(other.ctrl)
	}
	return false
}

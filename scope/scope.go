// Package scope provides tree-scoped controller provision: an ancestor node
// owns or adopts an observable controller and descendants locate it by type,
// optionally subscribing so the controller's change notifications re-render
// exactly the consumers that asked.
package scope

import (
	"fmt"

	"github.com/delaneyj/scopeparty/controller"
	"github.com/delaneyj/scopeparty/tree"
)

// Scope makes a controller available to its descendant subtree. The
// descriptor variant chosen at the first mount is fixed for the lifetime of
// the tree position.
type Scope[C controller.Controller] struct {
	Dep   *Dependency[C]
	Child tree.Widget
}

func (s *Scope[C]) CreateElement() tree.Element {
	return newScopeElement(s)
}

// ShouldPropagateUpdate reports whether replacing old with s at the same
// tree position must propagate a tree update to dependents. True iff the
// descriptors are unequal under identity equality.
func (s *Scope[C]) ShouldPropagateUpdate(old *Scope[C]) bool {
	return !s.Dep.equals(old.Dep)
}

// Lookup walks the ancestry from ctx for the nearest Scope providing a C.
// With listen true the requesting element is registered as a dependent,
// which triggers lazy construction and subscribes the scope to the
// controller's notifications.
func Lookup[C controller.Controller](ctx tree.Element, listen bool) (C, bool) {
	var found *scopeElement[C]
	ctx.VisitAncestors(func(el tree.Element) bool {
		if se, ok := el.(*scopeElement[C]); ok {
			found = se
			return false
		}
		return true
	})
	if found == nil {
		var zero C
		return zero, false
	}
	if listen {
		ctx.DependOn(found)
	} else {
		found.ensureController()
	}
	return found.ctrl, true
}

// Require is Lookup that fails with a *ScopeNotFoundError naming the missing
// controller type.
func Require[C controller.Controller](ctx tree.Element, listen bool) (C, error) {
	c, ok := Lookup[C](ctx, listen)
	if !ok {
		var zero C
		return zero, &ScopeNotFoundError{ControllerType: fmt.Sprintf("%T", zero)}
	}
	return c, nil
}

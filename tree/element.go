package tree

import (
	"reflect"

	mapset "github.com/deckarep/golang-set/v2"
)

// Element is the mutable runtime counterpart of a Widget, pinned to one tree
// position from Mount until Unmount.
type Element interface {
	Mount(parent Element, owner *BuildOwner)
	Update(next Widget)
	Rebuild()
	Unmount()

	Widget() Widget
	Parent() Element
	Depth() int
	Owner() *BuildOwner
	Mounted() bool
	NeedsBuild() bool
	MarkNeedsBuild()
	VisitAncestors(visit func(Element) bool)
	DependOn(provider ProviderElement)
}

// ProviderElement is an element descendants can register on to be rebuilt
// when the provider has something new for them. Registration is collapsed
// per dependent.
type ProviderElement interface {
	Element
	AddDependent(dependent Element)
	RemoveDependent(dependent Element)
	NotifyDependents()
}

// Core carries the element state every concrete element needs. Concrete
// elements embed it and call InitCore from CreateElement, MountCore from
// Mount and UnmountCore from Unmount.
type Core struct {
	self       Element
	widget     Widget
	parent     Element
	owner      *BuildOwner
	depth      int
	mounted    bool
	needsBuild bool
	providers  mapset.Set[ProviderElement]
}

// InitCore wires the embedding element to its widget.
func (c *Core) InitCore(self Element, w Widget) {
	c.self = self
	c.widget = w
	c.providers = mapset.NewThreadUnsafeSet[ProviderElement]()
}

func (c *Core) MountCore(parent Element, owner *BuildOwner) {
	if c.mounted {
		panic("tree: element mounted twice")
	}
	c.parent = parent
	c.owner = owner
	c.depth = 1
	if parent != nil {
		c.depth = parent.Depth() + 1
	}
	c.mounted = true
}

// UnmountCore severs provider links and detaches the element.
func (c *Core) UnmountCore() {
	for _, p := range c.providers.ToSlice() {
		p.RemoveDependent(c.self)
	}
	c.providers.Clear()
	c.mounted = false
	c.parent = nil
}

// SetWidget swaps the element's widget during an in-place update.
func (c *Core) SetWidget(w Widget) { c.widget = w }

func (c *Core) Widget() Widget     { return c.widget }
func (c *Core) Parent() Element    { return c.parent }
func (c *Core) Depth() int         { return c.depth }
func (c *Core) Owner() *BuildOwner { return c.owner }
func (c *Core) Mounted() bool      { return c.mounted }

// MarkNeedsBuild schedules this element for the next frame. Idempotent
// between rebuilds, so repeated marks within one frame coalesce.
func (c *Core) MarkNeedsBuild() {
	if !c.mounted || c.needsBuild {
		return
	}
	c.needsBuild = true
	c.owner.ScheduleBuildFor(c.self)
}

// ClearNeedsBuild resets the pending-build flag at the top of a rebuild.
func (c *Core) ClearNeedsBuild() { c.needsBuild = false }

func (c *Core) NeedsBuild() bool { return c.needsBuild }

// VisitAncestors walks from the parent toward the root until visit returns
// false.
func (c *Core) VisitAncestors(visit func(Element) bool) {
	for el := c.parent; el != nil; el = el.Parent() {
		if !visit(el) {
			return
		}
	}
}

// DependOn links this element to a provider in both directions so the link
// can be severed from either end.
func (c *Core) DependOn(provider ProviderElement) {
	c.providers.Add(provider)
	provider.AddDependent(c.self)
}

// UpdateChild reconciles an existing child element against the next widget.
// A child whose widget has the same concrete type is updated in place;
// anything else unmounts and a fresh element mounts.
func UpdateChild(parent Element, child Element, next Widget) Element {
	if next == nil {
		if child != nil {
			child.Unmount()
		}
		return nil
	}
	if child != nil {
		if child.Widget() == next {
			return child
		}
		if reflect.TypeOf(child.Widget()) == reflect.TypeOf(next) {
			child.Update(next)
			return child
		}
		child.Unmount()
	}
	el := next.CreateElement()
	el.Mount(parent, parent.Owner())
	return el
}

package tree

// Widget is an immutable description of a piece of the tree. Elements are
// its mutable runtime counterparts.
type Widget interface {
	CreateElement() Element
}

// Builder composes subtrees from a closure. The build function runs on mount
// and again on every rebuild of its element, so lookups performed inside it
// are re-established each pass.
type Builder struct {
	Build func(ctx Element) Widget
}

func (b *Builder) CreateElement() Element {
	el := &builderElement{}
	el.InitCore(el, b)
	return el
}

type builderElement struct {
	Core
	child Element
}

func (el *builderElement) Mount(parent Element, owner *BuildOwner) {
	el.MountCore(parent, owner)
	el.Rebuild()
}

func (el *builderElement) Update(next Widget) {
	el.SetWidget(next)
	el.Rebuild()
}

func (el *builderElement) Rebuild() {
	if !el.Mounted() {
		return
	}
	el.ClearNeedsBuild()
	built := el.Widget().(*Builder).Build(el)
	el.child = UpdateChild(el, el.child, built)
}

func (el *builderElement) Unmount() {
	if el.child != nil {
		el.child.Unmount()
		el.child = nil
	}
	el.UnmountCore()
}

// Group holds an ordered list of children. Reconciliation is positional.
type Group struct {
	Children []Widget
}

func (g *Group) CreateElement() Element {
	el := &groupElement{}
	el.InitCore(el, g)
	return el
}

type groupElement struct {
	Core
	children []Element
}

func (el *groupElement) Mount(parent Element, owner *BuildOwner) {
	el.MountCore(parent, owner)
	for _, cw := range el.Widget().(*Group).Children {
		ch := cw.CreateElement()
		ch.Mount(el, owner)
		el.children = append(el.children, ch)
	}
}

func (el *groupElement) Update(next Widget) {
	el.SetWidget(next)
	widgets := next.(*Group).Children
	for len(el.children) > len(widgets) {
		last := len(el.children) - 1
		el.children[last].Unmount()
		el.children = el.children[:last]
	}
	for i, cw := range widgets {
		if i < len(el.children) {
			el.children[i] = UpdateChild(el, el.children[i], cw)
			continue
		}
		ch := cw.CreateElement()
		ch.Mount(el, el.Owner())
		el.children = append(el.children, ch)
	}
}

func (el *groupElement) Rebuild() {
	el.ClearNeedsBuild()
}

func (el *groupElement) Unmount() {
	for _, ch := range el.children {
		ch.Unmount()
	}
	el.children = nil
	el.UnmountCore()
}

// Leaf terminates a subtree.
type Leaf struct{}

func (l *Leaf) CreateElement() Element {
	el := &leafElement{}
	el.InitCore(el, l)
	return el
}

type leafElement struct {
	Core
}

func (el *leafElement) Mount(parent Element, owner *BuildOwner) {
	el.MountCore(parent, owner)
}

func (el *leafElement) Update(next Widget) {
	el.SetWidget(next)
}

func (el *leafElement) Rebuild() {
	el.ClearNeedsBuild()
}

func (el *leafElement) Unmount() {
	el.UnmountCore()
}

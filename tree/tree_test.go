package tree_test

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delaneyj/scopeparty/tree"
)

// providerWidget is a minimal ProviderElement for exercising dependent
// registration without pulling in the scope package.
type providerWidget struct {
	child tree.Widget
}

func (w *providerWidget) CreateElement() tree.Element {
	el := &providerElement{
		dependents: mapset.NewThreadUnsafeSet[tree.Element](),
	}
	el.InitCore(el, w)
	return el
}

type providerElement struct {
	tree.Core
	child      tree.Element
	dependents mapset.Set[tree.Element]
}

func (el *providerElement) Mount(parent tree.Element, owner *tree.BuildOwner) {
	el.MountCore(parent, owner)
	ch := el.Widget().(*providerWidget).child.CreateElement()
	ch.Mount(el, owner)
	el.child = ch
}

func (el *providerElement) Update(next tree.Widget) {
	el.SetWidget(next)
	el.child = tree.UpdateChild(el, el.child, next.(*providerWidget).child)
}

func (el *providerElement) Rebuild() {
	el.ClearNeedsBuild()
}

func (el *providerElement) Unmount() {
	el.child.Unmount()
	el.dependents.Clear()
	el.UnmountCore()
}

func (el *providerElement) AddDependent(d tree.Element)    { el.dependents.Add(d) }
func (el *providerElement) RemoveDependent(d tree.Element) { el.dependents.Remove(d) }

func (el *providerElement) NotifyDependents() {
	for _, d := range el.dependents.ToSlice() {
		d.MarkNeedsBuild()
	}
}

func TestMountBuildsSubtree(t *testing.T) {
	depths := []int{}
	root := &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
		depths = append(depths, ctx.Depth())
		return &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
			depths = append(depths, ctx.Depth())
			return &tree.Leaf{}
		}}
	}}

	_, rootEl := tree.RunApp(root, nil)
	assert.Equal(t, []int{1, 2}, depths)
	assert.True(t, rootEl.Mounted())
}

func TestMarkNeedsBuildCoalesces(t *testing.T) {
	buildCount := 0
	var el tree.Element
	root := &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
		el = ctx
		buildCount++
		return &tree.Leaf{}
	}}

	owner, _ := tree.RunApp(root, nil)
	require.Equal(t, 1, buildCount)

	el.MarkNeedsBuild()
	el.MarkNeedsBuild()
	el.MarkNeedsBuild()
	assert.Equal(t, 1, owner.DirtyCount())

	owner.BuildFrame()
	assert.Equal(t, 2, buildCount)
	assert.Equal(t, 0, owner.DirtyCount())
}

func TestBuildFrameDepthOrder(t *testing.T) {
	order := []string{}
	var parentEl, childEl tree.Element

	child := &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
		childEl = ctx
		order = append(order, "child")
		return &tree.Leaf{}
	}}
	root := &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
		parentEl = ctx
		order = append(order, "parent")
		return child
	}}

	owner, _ := tree.RunApp(root, nil)
	order = order[:0]

	// Queue deepest first; the frame must still run parents before children.
	childEl.MarkNeedsBuild()
	parentEl.MarkNeedsBuild()
	owner.BuildFrame()
	assert.Equal(t, []string{"parent", "child"}, order)
}

func TestIdenticalChildWidgetSkipsSubtree(t *testing.T) {
	childBuilds := 0
	child := &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
		childBuilds++
		return &tree.Leaf{}
	}}
	var rootEl tree.Element
	root := &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
		rootEl = ctx
		return child
	}}

	owner, _ := tree.RunApp(root, nil)
	require.Equal(t, 1, childBuilds)

	rootEl.MarkNeedsBuild()
	owner.BuildFrame()
	assert.Equal(t, 1, childBuilds)
}

func TestChangedWidgetTypeRemounts(t *testing.T) {
	useLeaf := true
	builds := 0
	var rootEl tree.Element
	root := &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
		rootEl = ctx
		if useLeaf {
			return &tree.Leaf{}
		}
		return &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
			builds++
			return &tree.Leaf{}
		}}
	}}

	owner, _ := tree.RunApp(root, nil)
	require.Equal(t, 0, builds)

	useLeaf = false
	rootEl.MarkNeedsBuild()
	owner.BuildFrame()
	assert.Equal(t, 1, builds)
}

func TestUnmountSeversDependentLinks(t *testing.T) {
	keepConsumer := true
	var providerEl *providerElement
	consumer := &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
		ctx.VisitAncestors(func(el tree.Element) bool {
			if p, ok := el.(*providerElement); ok {
				ctx.DependOn(p)
				providerEl = p
				return false
			}
			return true
		})
		return &tree.Leaf{}
	}}
	var gateEl tree.Element
	gate := &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
		gateEl = ctx
		if keepConsumer {
			return consumer
		}
		return &tree.Leaf{}
	}}

	owner, _ := tree.RunApp(&providerWidget{child: gate}, nil)
	require.NotNil(t, providerEl)
	require.Equal(t, 1, providerEl.dependents.Cardinality())

	keepConsumer = false
	gateEl.MarkNeedsBuild()
	owner.BuildFrame()

	assert.Equal(t, 0, providerEl.dependents.Cardinality())
	providerEl.NotifyDependents()
	assert.Equal(t, 0, owner.DirtyCount())
}

func TestGroupPositionalReconciliation(t *testing.T) {
	builds := map[int]int{}
	makeChild := func(i int) tree.Widget {
		return &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
			builds[i]++
			return &tree.Leaf{}
		}}
	}

	count := 3
	var rootEl tree.Element
	root := &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
		rootEl = ctx
		children := make([]tree.Widget, count)
		for i := range children {
			children[i] = makeChild(i)
		}
		return &tree.Group{Children: children}
	}}

	owner, _ := tree.RunApp(root, nil)
	require.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, builds)

	count = 1
	rootEl.MarkNeedsBuild()
	owner.BuildFrame()
	assert.Equal(t, map[int]int{0: 2, 1: 1, 2: 1}, builds)

	count = 2
	rootEl.MarkNeedsBuild()
	owner.BuildFrame()
	assert.Equal(t, map[int]int{0: 3, 1: 2, 2: 1}, builds)
}

func TestBuildFrameDetectsNonSettlingRebuild(t *testing.T) {
	var el tree.Element
	root := &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
		el = ctx
		ctx.MarkNeedsBuild()
		return &tree.Leaf{}
	}}

	owner, _ := tree.RunApp(root, nil)
	_ = el
	assert.Panics(t, func() { owner.BuildFrame() })
}

func TestHandleErrorPanicsWithoutHook(t *testing.T) {
	owner := tree.NewBuildOwner(nil)
	assert.Panics(t, func() { owner.HandleError(nil, assert.AnError) })

	var got error
	owner = tree.NewBuildOwner(func(el tree.Element, err error) { got = err })
	owner.HandleError(nil, assert.AnError)
	assert.Equal(t, assert.AnError, got)
}

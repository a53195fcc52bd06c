package tree

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// maxFramePasses bounds BuildFrame against a rebuild that keeps re-marking
// itself forever.
const maxFramePasses = 1000

// OnErrorFunc receives lifecycle errors that have no synchronous caller to
// return to, such as a controller dispose failure during unmount.
type OnErrorFunc func(el Element, err error)

// BuildOwner coalesces rebuild requests and drains them one frame at a time.
// Single logical thread; no locking.
type BuildOwner struct {
	dirty   mapset.Set[Element]
	onError OnErrorFunc
}

func NewBuildOwner(onError OnErrorFunc) *BuildOwner {
	return &BuildOwner{
		dirty:   mapset.NewThreadUnsafeSet[Element](),
		onError: onError,
	}
}

// HandleError routes err to the owner's error hook, or panics with the
// unmodified error when no hook is installed. Errors are never swallowed.
func (o *BuildOwner) HandleError(el Element, err error) {
	if o.onError != nil {
		o.onError(el, err)
		return
	}
	panic(err)
}

// ScheduleBuildFor queues an element for the next frame. Scheduling the same
// element repeatedly between frames is a single rebuild.
func (o *BuildOwner) ScheduleBuildFor(el Element) {
	o.dirty.Add(el)
}

// DirtyCount reports elements currently queued.
func (o *BuildOwner) DirtyCount() int {
	return o.dirty.Cardinality()
}

// BuildFrame rebuilds every queued element in depth order, parents before
// children. Elements marked while the frame is running are processed within
// the same frame.
func (o *BuildOwner) BuildFrame() {
	for pass := 0; o.dirty.Cardinality() > 0; pass++ {
		if pass == maxFramePasses {
			panic("tree: build frame did not settle")
		}
		batch := o.dirty.ToSlice()
		o.dirty.Clear()
		sort.Slice(batch, func(i, j int) bool {
			return batch[i].Depth() < batch[j].Depth()
		})
		for _, el := range batch {
			if !el.Mounted() || !el.NeedsBuild() {
				continue
			}
			el.Rebuild()
		}
	}
}

// RunApp mounts the root widget under a fresh owner. onError may be nil, in
// which case lifecycle errors panic.
func RunApp(root Widget, onError OnErrorFunc) (*BuildOwner, Element) {
	owner := NewBuildOwner(onError)
	el := root.CreateElement()
	el.Mount(nil, owner)
	return owner, el
}

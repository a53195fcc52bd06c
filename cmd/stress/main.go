package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/delaneyj/scopeparty/controller"
	"github.com/delaneyj/scopeparty/scope"
	"github.com/delaneyj/scopeparty/tree"
)

func main() {
	log.Print("Starting scopeparty stress run, please wait...")
	defer log.Print("Finished scopeparty stress run")

	cfgs := []stressConfig{
		{
			name:                  "wide fanout",
			width:                 1000,
			iterations:            500,
			expectedRebuilds:      1000 * 500,
			expectedConstructions: 1,
			expectedDisposals:     1,
			run:                   runWideFanout,
		},
		{
			name:                  "deep chain",
			depth:                 500,
			iterations:            2000,
			expectedRebuilds:      2000,
			expectedConstructions: 1,
			expectedDisposals:     1,
			run:                   runDeepChain,
		},
		{
			name:                  "value churn",
			iterations:            5000,
			expectedRebuilds:      5000,
			expectedConstructions: 0,
			expectedDisposals:     0,
			run:                   runValueChurn,
		},
		{
			name:                  "lazy awakening",
			width:                 100,
			iterations:            500,
			expectedRebuilds:      100 * 500,
			expectedConstructions: 1,
			expectedDisposals:     1,
			run:                   runLazyAwakening,
		},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"scenario", "iterations", "rebuilds", "constructions", "disposals",
		"time", "digest", "ok",
	})

	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.name)

		var first, second *stressResult
		for repeat := 0; repeat < 2; repeat++ {
			rec := &recorder{}
			start := time.Now()
			cfg.run(cfg, rec)
			res := &stressResult{
				rebuilds:      rec.rebuilds,
				constructions: rec.constructions,
				disposals:     rec.disposals,
				digest:        rec.digest(),
				duration:      time.Since(start),
			}
			if repeat == 0 {
				first = res
			} else {
				second = res
			}
		}

		ok := first.rebuilds == cfg.expectedRebuilds &&
			first.constructions == cfg.expectedConstructions &&
			first.disposals == cfg.expectedDisposals &&
			first.digest == second.digest

		table.Append([]string{
			cfg.name,
			humanize.Comma(int64(cfg.iterations)),
			humanize.Comma(int64(first.rebuilds)),
			fmt.Sprint(first.constructions),
			fmt.Sprint(first.disposals),
			fmt.Sprint(first.duration),
			fmt.Sprintf("%016x", first.digest),
			fmt.Sprint(ok),
		})
	}
	table.Render()
}

type stressConfig struct {
	name                  string
	width                 int
	depth                 int
	iterations            int
	expectedRebuilds      int
	expectedConstructions int
	expectedDisposals     int
	run                   func(cfg stressConfig, rec *recorder)
}

type stressResult struct {
	rebuilds      int
	constructions int
	disposals     int
	digest        uint64
	duration      time.Duration
}

// recorder captures the observable lifecycle events of one scenario run so
// two runs of the same scenario can be compared for determinism.
type recorder struct {
	rebuilds      int
	constructions int
	disposals     int
	events        []string
}

func (r *recorder) construct() {
	r.constructions++
	r.events = append(r.events, "construct")
}

func (r *recorder) dispose() {
	r.disposals++
	r.events = append(r.events, "dispose")
}

func (r *recorder) rebuild(n int) {
	r.rebuilds++
	r.events = append(r.events, fmt.Sprintf("rebuild:%d", n))
}

// resetCounts drops warmup rebuilds recorded during the initial mount,
// keeping any construct events in the log.
func (r *recorder) resetCounts() {
	r.rebuilds = 0
	kept := r.events[:0]
	for _, ev := range r.events {
		if ev == "construct" {
			kept = append(kept, ev)
		}
	}
	r.events = kept
}

func (r *recorder) digest() uint64 {
	return xxhash.Sum64String(strings.Join(r.events, "\n"))
}

type counter struct {
	n int
}

type counterController = controller.StateController[*counter]

// recordedController counts its own construction and disposal.
type recordedController struct {
	*counterController
	rec *recorder
}

func newRecordedController(rec *recorder) *recordedController {
	rec.construct()
	return &recordedController{
		counterController: controller.NewStateController(&counter{}),
		rec:               rec,
	}
}

func (c *recordedController) Dispose() error {
	c.rec.dispose()
	return c.counterController.Dispose()
}

func consumerWidget(rec *recorder) tree.Widget {
	return &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
		c, err := scope.Require[*recordedController](ctx, true)
		if err != nil {
			log.Fatal(err)
		}
		rec.rebuild(c.State().n)
		return &tree.Leaf{}
	}}
}

func runWideFanout(cfg stressConfig, rec *recorder) {
	var ctrl *recordedController
	consumers := make([]tree.Widget, cfg.width)
	for i := range consumers {
		consumers[i] = consumerWidget(rec)
	}
	root := &scope.Scope[*recordedController]{
		Dep: scope.Create(func() *recordedController {
			ctrl = newRecordedController(rec)
			return ctrl
		}, false),
		Child: &tree.Group{Children: consumers},
	}

	owner, rootEl := tree.RunApp(root, nil)
	owner.BuildFrame()
	rec.resetCounts()

	for i := 0; i < cfg.iterations; i++ {
		ctrl.SetState(&counter{n: i})
		owner.BuildFrame()
	}
	rootEl.Unmount()
}

func runDeepChain(cfg stressConfig, rec *recorder) {
	var ctrl *recordedController
	root := consumerWidget(rec)
	for i := 0; i < cfg.depth; i++ {
		inner := root
		root = &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
			return inner
		}}
	}
	scoped := &scope.Scope[*recordedController]{
		Dep: scope.Create(func() *recordedController {
			ctrl = newRecordedController(rec)
			return ctrl
		}, false),
		Child: root,
	}

	owner, rootEl := tree.RunApp(scoped, nil)
	owner.BuildFrame()
	rec.resetCounts()

	for i := 0; i < cfg.iterations; i++ {
		ctrl.SetState(&counter{n: i})
		owner.BuildFrame()
	}
	rootEl.Unmount()
}

// runValueChurn alternates two externally owned controllers through a Value
// scope. The scope must re-subscribe on every swap and never dispose either
// controller.
func runValueChurn(cfg stressConfig, rec *recorder) {
	a := controller.NewStateController(&counter{n: -1})
	b := controller.NewStateController(&counter{n: -2})

	useA := true
	consumer := &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
		c, err := scope.Require[*counterController](ctx, true)
		if err != nil {
			log.Fatal(err)
		}
		rec.rebuild(c.State().n)
		return &tree.Leaf{}
	}}
	root := &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
		current := a
		if !useA {
			current = b
		}
		return &scope.Scope[*counterController]{
			Dep:   scope.Value(current),
			Child: consumer,
		}
	}}

	owner, rootEl := tree.RunApp(root, nil)
	owner.BuildFrame()
	rec.resetCounts()

	for i := 0; i < cfg.iterations; i++ {
		useA = !useA
		rootEl.MarkNeedsBuild()
		owner.BuildFrame()
	}
	rootEl.Unmount()

	// Externally owned; both must still be live after the scope unmounted.
	a.SetState(&counter{})
	b.SetState(&counter{})
}

// runLazyAwakening keeps a lazy scope dormant behind a gate, then opens the
// gate. Construction must happen exactly once, at the first subscription.
func runLazyAwakening(cfg stressConfig, rec *recorder) {
	var ctrl *recordedController
	var gateEl tree.Element
	awake := false

	consumers := make([]tree.Widget, cfg.width)
	for i := range consumers {
		consumers[i] = consumerWidget(rec)
	}
	gate := &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
		gateEl = ctx
		if !awake {
			return &tree.Leaf{}
		}
		return &tree.Group{Children: consumers}
	}}
	root := &scope.Scope[*recordedController]{
		Dep: scope.Create(func() *recordedController {
			ctrl = newRecordedController(rec)
			return ctrl
		}, true),
		Child: gate,
	}

	owner, rootEl := tree.RunApp(root, nil)
	owner.BuildFrame()
	if ctrl != nil {
		log.Fatal("lazy controller constructed before first subscription")
	}

	awake = true
	gateEl.MarkNeedsBuild()
	owner.BuildFrame()
	if ctrl == nil {
		log.Fatal("lazy controller not constructed on first subscription")
	}
	rec.resetCounts()

	for i := 0; i < cfg.iterations; i++ {
		ctrl.SetState(&counter{n: i})
		owner.BuildFrame()
	}
	rootEl.Unmount()
}

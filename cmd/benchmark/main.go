package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/scopeparty/controller"
	"github.com/delaneyj/scopeparty/scope"
	"github.com/delaneyj/scopeparty/tree"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100}
	iters = 100
)

type tick struct {
	n int
}

type tickController = controller.StateController[*tick]

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkPropagation(true)
}

func benchmarkPropagation(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Scope Propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, h := range hh {
		for _, w := range ww {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			var ctrl *tickController
			rebuilds := 0

			consumers := make([]tree.Widget, w)
			for i := range consumers {
				consumers[i] = &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
					if _, err := scope.Require[*tickController](ctx, true); err != nil {
						log.Fatal(err)
					}
					rebuilds++
					return &tree.Leaf{}
				}}
			}

			var root tree.Widget = &tree.Group{Children: consumers}
			for i := 0; i < h; i++ {
				inner := root
				root = &tree.Builder{Build: func(ctx tree.Element) tree.Widget {
					return inner
				}}
			}
			root = &scope.Scope[*tickController]{
				Dep: scope.Create(func() *tickController {
					ctrl = controller.NewStateController(&tick{})
					return ctrl
				}, false),
				Child: root,
			}

			owner, rootEl := tree.RunApp(root, nil)
			owner.BuildFrame()

			for i := 0; i < iters; i++ {
				start := time.Now()
				ctrl.SetState(&tick{n: i})
				owner.BuildFrame()
				tach.AddTime(time.Since(start))
			}
			rootEl.Unmount()

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("notify: %d wide * %d deep (%d rebuilds)", w, h, rebuilds),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

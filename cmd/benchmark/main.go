package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/darkstalker/frappe"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100
)

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
	benchmarkFold(true)
}

func benchmarkPropagation(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Stream Propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			sink := frappe.NewSink[int]()
			received := 0
			tails := make([]*frappe.Stream[int], 0, w)
			for i := 0; i < w; i++ {
				last := sink.Stream()
				for j := 0; j < h; j++ {
					last = frappe.Map(last, func(x int) int {
						return x + 1
					})
				}
				last.Inspect(func(int) {
					received++
				})
				tails = append(tails, last)
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				sink.Send(i)
				tach.AddTime(time.Since(start))
			}
			if received != iters*w {
				log.Panicf("expected %d deliveries, got %d", iters*w, received)
			}
			for _, tail := range tails {
				tail.Drop()
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
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

func benchmarkFold(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Fold + Snapshot")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, h := range hh {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		sink := frappe.NewSink[int]()
		last := sink.Stream()
		for j := 0; j < h; j++ {
			last = frappe.Map(last, func(x int) int {
				return x + 1
			})
		}
		sum := frappe.Fold(last, 0, func(acc, x int) int {
			return acc + x
		})

		trigger := frappe.NewSink[struct{}]()
		snap := frappe.Snapshot(sum, trigger.Stream(), func(acc int, _ struct{}) int {
			return acc
		})
		got := 0
		snap.Inspect(func(v int) {
			got = v
		})

		for i := 0; i < iters; i++ {
			start := time.Now()
			sink.Send(i)
			trigger.Send(struct{}{})
			tach.AddTime(time.Since(start))
		}
		if got != sum.Sample() {
			log.Panicf("snapshot drifted from fold: %d != %d", got, sum.Sample())
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("fold: depth %d", h),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

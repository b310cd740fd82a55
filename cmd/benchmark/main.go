package main

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/gluekit/glue"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const (
	itersKey   = "iters"
	profileKey = "profile"
	maxSizeKey = "max-size"
)

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure propagation through glue observables",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Number of writes per scenario",
				Value: 100,
			},
			&cli.UintFlag{
				Name:  maxSizeKey,
				Usage: "Largest width and height of the propagation grid",
				Value: 1_000,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
				Value: "default.pgo",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(log, cmd)
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal("benchmark failed", zap.Error(err))
	}
}

func run(log *zap.Logger, cmd *cli.Command) error {
	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Uint(itersKey))
	var sizes []int
	for s := 1; s <= int(cmd.Uint(maxSizeKey)); s *= 10 {
		sizes = append(sizes, s)
	}

	log.Info("warming up")
	benchmarkPropagate(sizes, iters, false)

	log.Info("running", zap.Int("iters", iters), zap.Ints("sizes", sizes))
	benchmarkPropagate(sizes, iters, true)
	benchmarkComposite(sizes, iters)
	benchmarkBuffered(sizes, iters)
	return nil
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendTiming(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRow(table.Row{
		name,
		calc.Time.Avg,
		calc.Time.Min,
		calc.Time.P75,
		calc.Time.P99,
		calc.Time.Max,
	})
}

func addOne(v int) int {
	return v + 1
}

// benchmarkPropagate builds w independent chains of h Maps on one variable
// and times a write that has to reach every chain's end.
func benchmarkPropagate(sizes []int, iters int, shouldRender bool) {
	tbl := newTable("glue: propagate")

	for _, w := range sizes {
		for _, h := range sizes {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := glue.NewVariable(1)
			var conns glue.ConnectionBag
			for i := 0; i < w; i++ {
				var last glue.ObservableValue[int] = src
				for j := 0; j < h; j++ {
					last = glue.Map(last, addOne)
				}
				conns.Add(glue.ValueChanges(last).Connect(func(glue.ValueChange[int]) {}))
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.SetValue(src.Value() + 1)
				tach.AddTime(time.Since(start))
			}
			conns.DisconnectAll()

			appendTiming(tbl, fmt.Sprintf("propagate: %d * %d", w, h), tach)
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkComposite fans n variables into a balanced tree of Combine2 sums.
func benchmarkComposite(sizes []int, iters int) {
	tbl := newTable("glue: composite fan-in")

	for _, n := range sizes {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		vars := make([]*glue.Variable[int], n)
		level := make([]glue.ObservableValue[int], n)
		for i := range vars {
			vars[i] = glue.NewVariable(i)
			level[i] = vars[i]
		}
		for len(level) > 1 {
			var next []glue.ObservableValue[int]
			for i := 0; i+1 < len(level); i += 2 {
				next = append(next, glue.Add(level[i], level[i+1]))
			}
			if len(level)%2 == 1 {
				next = append(next, level[len(level)-1])
			}
			level = next
		}
		root := level[0]
		conn := root.Updates().Connect(func(glue.Update[glue.ValueChange[int]]) {})

		for i := 0; i < iters; i++ {
			v := vars[i%n]
			start := time.Now()
			v.SetValue(v.Value() + 1)
			tach.AddTime(time.Since(start))
		}
		conn.Disconnect()

		appendTiming(tbl, fmt.Sprintf("fan-in: %d sources", n), tach)
	}

	tbl.Render()
}

// benchmarkBuffered times transactions of n inserts seen through a buffered
// filter, which delivers one merged change per transaction.
func benchmarkBuffered(sizes []int, iters int) {
	tbl := newTable("glue: buffered bursts")

	for _, n := range sizes {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		arr := glue.NewArrayVariable[int]()
		view := glue.Buffered(glue.FilterFunc[int](arr, func(v int) bool { return v%3 != 0 }))
		changes := 0
		conn := glue.ArrayChanges(view).Connect(func(glue.ArrayChange[int]) { changes++ })

		for i := 0; i < iters; i++ {
			start := time.Now()
			arr.WithTransaction(func() {
				for k := 0; k < n; k++ {
					arr.Insert(k, arr.Count())
				}
			})
			tach.AddTime(time.Since(start))
			arr.SetValue(nil)
		}
		conn.Disconnect()

		appendTiming(tbl, fmt.Sprintf("burst: %d inserts (%d changes)", n, changes), tach)
	}

	tbl.Render()
}

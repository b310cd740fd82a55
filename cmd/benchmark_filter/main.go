package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/gluekit/glue"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const (
	repeatsKey = "repeats"
	seedKey    = "seed"
)

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cmd := &cli.Command{
		Name:  "benchmark_filter",
		Usage: "Measure incremental filtering under churn and predicate flips",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  repeatsKey,
				Usage: "Runs per config; the fastest one is reported",
				Value: 5,
			},
			&cli.UintFlag{
				Name:  seedKey,
				Usage: "Seed for element visibility and operation order",
				Value: 0,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(log, int(cmd.Uint(repeatsKey)), uint64(cmd.Uint(seedKey)))
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal("benchmark failed", zap.Error(err))
	}
}

type filterTestConfig struct {
	name          string  // unique name of the scenario
	size          int     // initial number of elements in the parent array
	flipFraction  float64 // fraction of operations that flip a predicate
	batch         int     // operations per transaction
	iterations    int     // number of transactions
	readEveryStep bool    // read the whole filtered view after every transaction
}

func run(log *zap.Logger, repeats int, seed uint64) error {
	log.Info("starting filter benchmark, please wait...")
	defer log.Info("finished filter benchmark")

	cfgs := []filterTestConfig{
		{name: "flips only", size: 10_000, flipFraction: 1, batch: 1, iterations: 100_000},
		{name: "churn only", size: 10_000, flipFraction: 0, batch: 1, iterations: 20_000},
		{name: "mixed", size: 10_000, flipFraction: 0.5, batch: 1, iterations: 50_000},
		{name: "mixed batches", size: 10_000, flipFraction: 0.5, batch: 32, iterations: 2_000},
		{name: "large flips", size: 1_000_000, flipFraction: 1, batch: 1, iterations: 100_000},
		{name: "small reads", size: 100, flipFraction: 0.5, batch: 4, iterations: 20_000, readEveryStep: true},
	}

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"test", "size", "flip%", "batch", "nTimes", "time", "opRate", "visible", "changes"})

	for _, cfg := range cfgs {
		log.Info("running config", zap.String("name", cfg.name))
		var best result
		best.duration = time.Hour
		for i := 0; i < repeats; i++ {
			r, err := runOnce(cfg, seed)
			if err != nil {
				return fmt.Errorf("%s: %w", cfg.name, err)
			}
			log.Debug("run finished",
				zap.String("name", cfg.name),
				zap.Int("run", i+1),
				zap.Duration("duration", r.duration))
			if r.duration < best.duration {
				best = r
			}
		}

		ops := int64(cfg.iterations * cfg.batch)
		opRate := float64(ops) / (float64(best.duration) / float64(time.Millisecond))
		tbl.Append([]string{
			cfg.name,
			humanize.Comma(int64(cfg.size)),
			fmt.Sprint(100 * cfg.flipFraction),
			fmt.Sprint(cfg.batch),
			humanize.Comma(int64(cfg.iterations)),
			fmt.Sprint(best.duration),
			humanize.Comma(int64(opRate)) + "/ms",
			humanize.Comma(int64(best.visible)),
			humanize.Comma(int64(best.changes)),
		})
	}
	tbl.Render()
	return nil
}

type result struct {
	duration time.Duration
	visible  int
	changes  int
}

type element struct {
	id      uint64
	visible *glue.Variable[bool]
}

// visibleAt decides the starting visibility of an element from its id, so
// every run of a config starts from the same state.
func visibleAt(seed, id uint64) bool {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], seed)
	binary.LittleEndian.PutUint64(buf[8:], id)
	return xxhash.Sum64(buf[:])&1 == 0
}

func runOnce(cfg filterTestConfig, seed uint64) (result, error) {
	rng := rand.New(rand.NewSource(int64(seed)))
	nextID := uint64(0)
	fresh := func() *element {
		nextID++
		return &element{id: nextID, visible: glue.NewVariable(visibleAt(seed, nextID))}
	}

	elems := make([]*element, cfg.size)
	for i := range elems {
		elems[i] = fresh()
	}
	arr := glue.NewArrayVariable(elems...)
	view := glue.Filter(glue.ObservableArray[*element](arr), func(e *element) glue.ObservableValue[bool] {
		return e.visible
	})

	var res result
	mirror := view.Value()
	conn := glue.ArrayChanges(view).Connect(func(c glue.ArrayChange[*element]) {
		res.changes++
		mirror = c.Apply(mirror)
	})
	defer conn.Disconnect()

	step := func() {
		n := arr.Count()
		if n > 0 && rng.Float64() < cfg.flipFraction {
			arr.At(rng.Intn(n)).visible.Update(func(v bool) bool { return !v })
			return
		}
		if n > 0 && rng.Intn(2) == 0 {
			arr.RemoveAt(rng.Intn(n))
			return
		}
		arr.Insert(fresh(), rng.Intn(n+1))
	}

	start := time.Now()
	for i := 0; i < cfg.iterations; i++ {
		if cfg.batch == 1 {
			step()
		} else {
			arr.WithTransaction(func() {
				for k := 0; k < cfg.batch; k++ {
					step()
				}
			})
		}
		if cfg.readEveryStep {
			_ = view.Value()
		}
	}
	res.duration = time.Since(start)

	res.visible = view.Count()
	if len(mirror) != res.visible {
		return res, fmt.Errorf("change stream drifted: mirror has %d elements, view has %d", len(mirror), res.visible)
	}
	return res, nil
}

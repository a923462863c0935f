package workload

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Checker is a concurrency-safe Store that can verify its own invariants,
// such as cache.Locked or cache.Sharded.
type Checker interface {
	Store
	Check() error
}

// StressConfig controls a Stress run. It can be loaded from the environment.
type StressConfig struct {
	Workers      int    `env:"STRESS_WORKERS" envDefault:"8"`
	OpsPerWorker int    `env:"STRESS_OPS" envDefault:"10000"`
	Keys         int    `env:"STRESS_KEYS" envDefault:"1024"`
	MaxValueSize int    `env:"STRESS_MAX_VALUE" envDefault:"64"`
	Seed         uint64 `env:"STRESS_SEED" envDefault:"1"`
}

// StressReport counts accepted and rejected calls per operation kind.
// Workers holds the same totals per worker, indexed by worker number.
type StressReport struct {
	Accepted map[Kind]int
	Rejected map[Kind]int
	Workers  []WorkerReport
}

// WorkerReport counts the calls issued by one worker.
type WorkerReport struct {
	Accepted int
	Rejected int
}

// Total returns the number of operations issued.
func (r StressReport) Total() int {
	var n int
	for _, k := range Kinds {
		n += r.Accepted[k] + r.Rejected[k]
	}
	return n
}

func (r StressReport) merge(o StressReport) {
	for k, n := range o.Accepted {
		r.Accepted[k] += n
	}
	for k, n := range o.Rejected {
		r.Rejected[k] += n
	}
}

func newStressReport() StressReport {
	return StressReport{Accepted: make(map[Kind]int), Rejected: make(map[Kind]int)}
}

// Stress hammers store from cfg.Workers goroutines with random operations
// over a fixed set of random keys, then verifies the store with Check.
// Each worker draws from its own generator seeded from cfg.Seed, so the
// per-worker sequence is reproducible even though the interleaving is not.
func Stress(ctx context.Context, store Checker, cfg StressConfig) (StressReport, error) {
	report := newStressReport()
	if cfg.Workers <= 0 || cfg.OpsPerWorker <= 0 || cfg.Keys <= 0 || cfg.MaxValueSize < 0 {
		return report, ErrInvalidStressConfig
	}

	keys := make([][]byte, cfg.Keys)
	for i := range keys {
		keys[i] = []byte(uuid.NewString())
	}

	report.Workers = make([]WorkerReport, cfg.Workers)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for w := range cfg.Workers {
		g.Go(func() error {
			local := newStressReport()
			defer func() {
				mu.Lock()
				report.merge(local)
				mu.Unlock()
			}()

			rng := rand.New(rand.NewPCG(cfg.Seed, uint64(w)))
			value := make([]byte, cfg.MaxValueSize)
			for range cfg.OpsPerWorker {
				if err := ctx.Err(); err != nil {
					return err
				}
				op := Op{
					Kind:  Kinds[rng.IntN(len(Kinds))],
					Key:   string(keys[rng.IntN(len(keys))]),
					Value: string(value[:rng.IntN(cfg.MaxValueSize+1)]),
				}
				if res := Apply(store, op); res.OK {
					local.Accepted[op.Kind]++
					report.Workers[w].Accepted++
				} else {
					local.Rejected[op.Kind]++
					report.Workers[w].Rejected++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}

	return report, store.Check()
}

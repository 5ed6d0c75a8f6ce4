package renderer

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-pathtracer/pkg/core"
)

// maxWorkerScale bounds a worker's coarseness: scale_i = min(2^i, 16).
const maxWorkerScale = 16

// Worker repeatedly renders a full coarse-tiled pass into a local
// accumulator and attempts to merge it into the shared one. Each worker
// has its own coarseness scale and its own RNG, so workers never contend
// on randomness.
type worker struct {
	id    int
	scale int
	rng   *rand.Rand

	local      []core.Vec3
	localW     int
	localH     int
	generation uint32
}

func newWorker(id int) *worker {
	scale := 1 << uint(id)
	if scale > maxWorkerScale {
		scale = maxWorkerScale
	}
	return &worker{
		id:    id,
		scale: scale,
		rng:   rand.New(rand.NewSource(int64(id) + 1)),
	}
}

// runPass executes one worker iteration: merge-or-discard the previous
// local sum, resize if needed, then render a fresh full pass.
func (w *worker) runPass(ctx *Context) {
	generation, frameW, frameH := ctx.snapshotForMerge()

	if w.local != nil && w.generation == generation && w.localW == frameW && w.localH == frameH {
		ctx.merge(w.generation, w.local, 1.0/float64(w.scale*w.scale))
	}
	// Clearing and the dimension/generation bookkeeping happen regardless
	// of whether the merge above fired: a stale local sum is discarded,
	// not retried.
	w.generation = generation

	if w.localW != frameW || w.localH != frameH {
		w.localW, w.localH = frameW, frameH
		w.local = make([]core.Vec3, frameW*frameH)
	} else {
		for i := range w.local {
			w.local[i] = core.Vec3{}
		}
	}

	if frameW == 0 || frameH == 0 {
		return
	}

	cam := ctx.Camera.Snapshot()
	renderCoarsePass(ctx, cam, frameW, frameH, w.scale, w.rng, w.local)
}

// WorkerPool runs NumWorkers goroutines, each looping runPass until the
// pool's context is cancelled, at which point every worker finishes its
// current pass and returns cleanly via context cancellation and an
// errgroup.
type WorkerPool struct {
	workers []*worker
}

// NewWorkerPool creates a pool of numWorkers workers (0 = use GOMAXPROCS).
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	wp := &WorkerPool{workers: make([]*worker, numWorkers)}
	for i := range wp.workers {
		wp.workers[i] = newWorker(i)
	}
	return wp
}

// NumWorkers returns the number of workers in the pool.
func (wp *WorkerPool) NumWorkers() int {
	return len(wp.workers)
}

// Run starts every worker and blocks until ctx is cancelled, at which
// point all workers finish their current pass and return. Run does not
// return before ctx is cancelled, and the returned error is always
// ctx.Err(), since a worker pass itself has no failure mode beyond
// allocation, which panics rather than returning an error.
func (wp *WorkerPool) Run(ctx context.Context, rc *Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, w := range wp.workers {
		w := w
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				w.runPass(rc)
			}
		})
	}
	return g.Wait()
}

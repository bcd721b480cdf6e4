// Package dispatch implements the two-lane scheduling model of §4.9 and §5:
// a single-threaded controller loop, and a worker pool that runs CPU-bound
// jobs (hash computation) and posts results back to the controller. All
// asset/index state mutation happens on the controller; workers touch only
// their job's captured immutable input.
//
// Grounded on the teacher's use of github.com/tejzpr/ordered-concurrently/v3
// for epoch-processing worker pools (see cmd-x-index-sig-to-epoch.go),
// generalized here from one-shot batch processing to a long-lived pool fed
// continuously by the controller.
package dispatch

import (
	"context"
	"sync"

	concurrently "github.com/tejzpr/ordered-concurrently/v3"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("dispatch")

// Job is a unit of CPU-bound work submitted to the worker pool. Run must not
// touch any state shared with the controller or other jobs.
type Job interface {
	Run(ctx context.Context) any
}

type jobAdapter struct {
	job Job
	ctx context.Context
}

func (a jobAdapter) Run(ctx context.Context) any {
	return a.job.Run(a.ctx)
}

// Dispatcher owns a worker pool and a single controller goroutine. Submit
// posts a job to the pool; when it completes, its result is delivered to
// handler on the controller goroutine, never concurrently with another
// handler call.
type Dispatcher struct {
	ctx    context.Context
	cancel context.CancelFunc

	input  chan concurrently.WorkFunction
	output <-chan concurrently.OrderedOutput

	controller chan func()

	mu       sync.Mutex
	handlers map[uint64]func(any)
	nextID   uint64

	wg sync.WaitGroup
}

// New starts a Dispatcher with the given worker pool size.
func New(ctx context.Context, poolSize int) *Dispatcher {
	ctx, cancel := context.WithCancel(ctx)
	d := &Dispatcher{
		ctx:        ctx,
		cancel:     cancel,
		input:      make(chan concurrently.WorkFunction, poolSize),
		controller: make(chan func(), poolSize*4),
		handlers:   make(map[uint64]func(any)),
	}
	d.output = concurrently.Process(ctx, d.input, &concurrently.Options{
		PoolSize:         poolSize,
		OutChannelBuffer: poolSize,
	})

	d.wg.Add(2)
	go d.drainWorkerOutput()
	go d.runController()
	return d
}

// Submit enqueues job to the worker pool; handler runs on the controller
// goroutine once the job completes.
func (d *Dispatcher) Submit(job Job, handler func(result any)) {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.handlers[id] = handler
	d.mu.Unlock()

	select {
	case d.input <- taggedJob{id: id, inner: jobAdapter{job: job, ctx: d.ctx}}:
	case <-d.ctx.Done():
	}
}

// Post schedules fn to run on the controller goroutine, in order relative to
// other posted work. Used by components that need to serialize a mutation
// without routing it through the worker pool (e.g. a timer firing).
func (d *Dispatcher) Post(fn func()) {
	select {
	case d.controller <- fn:
	case <-d.ctx.Done():
	}
}

type taggedJob struct {
	id    uint64
	inner concurrently.WorkFunction
}

func (t taggedJob) Run(ctx context.Context) any {
	return taggedResult{id: t.id, value: t.inner.Run(ctx)}
}

type taggedResult struct {
	id    uint64
	value any
}

func (d *Dispatcher) drainWorkerOutput() {
	defer d.wg.Done()
	for out := range d.output {
		res, ok := out.Value.(taggedResult)
		if !ok {
			log.Errorw("dispatch: unexpected worker result type", "type", out.Value)
			continue
		}
		d.mu.Lock()
		handler, exists := d.handlers[res.id]
		delete(d.handlers, res.id)
		d.mu.Unlock()
		if !exists {
			continue
		}
		result := res.value
		d.Post(func() { handler(result) })
	}
}

func (d *Dispatcher) runController() {
	defer d.wg.Done()
	for {
		select {
		case fn := <-d.controller:
			fn()
		case <-d.ctx.Done():
			return
		}
	}
}

// Close stops accepting new work, cancels the dispatcher's context and waits
// for the output-drain and controller goroutines to exit. It does not wait
// for in-flight jobs: handlers of jobs still running when Close is called
// are not run.
func (d *Dispatcher) Close() {
	close(d.input)
	d.cancel()
	d.wg.Wait()
}

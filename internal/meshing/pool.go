package meshing

import (
	"context"
	"sync"

	"voxquad/internal/face"
	"voxquad/internal/world"
)

// Job asks the pool to mesh one chunk. The neighbourhood snapshot is taken
// by the submitter; workers never touch live world state.
type Job struct {
	Coord   [3]int32
	Hood    *world.Neighborhood
	Offsets [face.NormalCount]uint32
}

// Result is the outcome of one job. Skipped is set when the chunk content
// hash matched the previously meshed state and no work was done.
type Result struct {
	Coord   [3]int32
	Mesh    *ChunkMesh
	Hash    uint64
	Skipped bool
	Err     error
}

// Pool meshes chunks on a fixed set of worker goroutines. Meshing is pure
// per-chunk work, so workers share nothing but the job and result channels
// and the content-hash cache.
type Pool struct {
	jobs    chan Job
	results chan Result
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	mu     sync.Mutex
	hashes map[[3]int32]uint64
}

// NewPool starts workers goroutines with the given job queue depth.
func NewPool(workers, queue int) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		jobs:    make(chan Job, queue),
		results: make(chan Result, queue),
		ctx:     ctx,
		cancel:  cancel,
		hashes:  make(map[[3]int32]uint64),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// Submit queues a job. Returns false when the queue is full; the caller
// retries next frame.
func (p *Pool) Submit(job Job) bool {
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Results exposes the completion channel. Drained by the consumer each
// frame; results arrive in completion order, not submission order.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Forget drops the cached content hash for a chunk, forcing the next job
// for it to mesh even if the voxels are unchanged.
func (p *Pool) Forget(coord [3]int32) {
	p.mu.Lock()
	delete(p.hashes, coord)
	p.mu.Unlock()
}

// Shutdown cancels workers and waits for them to exit.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobs:
			p.run(job)
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Pool) run(job Job) {
	hash := job.Hood.Center().ContentHash()

	p.mu.Lock()
	prev, ok := p.hashes[job.Coord]
	p.mu.Unlock()
	if ok && prev == hash {
		p.deliver(Result{Coord: job.Coord, Hash: hash, Skipped: true})
		return
	}

	mesh, err := MeshChunk(job.Hood, job.Offsets)
	if err == nil {
		p.mu.Lock()
		p.hashes[job.Coord] = hash
		p.mu.Unlock()
	}
	p.deliver(Result{Coord: job.Coord, Mesh: mesh, Hash: hash, Err: err})
}

func (p *Pool) deliver(r Result) {
	select {
	case p.results <- r:
	case <-p.ctx.Done():
	}
}

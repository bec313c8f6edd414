package concurrency

import (
	"context"
	"sync"
	"time"

	"crackTimeBackend/internal/core/domain"
)

// AnalyzeFunc is the unit of work a pool worker runs for one password.
type AnalyzeFunc func(ctx context.Context, password string) (*domain.AnalysisResponse, error)

type Task struct {
	Index    int
	Password string
}

type Result struct {
	Index    int
	Response *domain.AnalysisResponse
	Err      error
	Duration time.Duration
	WorkerID int
}

// WorkerPool fans a batch of passwords across a fixed set of workers. The
// analyze function is pure, so workers need no coordination beyond the
// task and result channels.
type WorkerPool struct {
	analyze    AnalyzeFunc
	tasks      chan Task
	results    chan Result
	numWorkers int
	wg         sync.WaitGroup

	mu        sync.RWMutex
	completed int64
	failed    int64
	elapsed   time.Duration
}

func NewWorkerPool(numWorkers, queueSize int, analyze AnalyzeFunc) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool{
		analyze:    analyze,
		tasks:      make(chan Task, queueSize),
		results:    make(chan Result, queueSize),
		numWorkers: numWorkers,
	}
}

func (p *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

func (p *WorkerPool) Submit(task Task) {
	p.tasks <- task
}

func (p *WorkerPool) Results() <-chan Result {
	return p.results
}

// Shutdown closes the task queue, waits for the workers to drain it, then
// closes the result channel. Call after the last Submit.
func (p *WorkerPool) Shutdown() {
	close(p.tasks)
	p.wg.Wait()
	close(p.results)
}

// Throughput reports completed and failed task counts plus total work time.
func (p *WorkerPool) Throughput() (completed, failed int64, elapsed time.Duration) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.completed, p.failed, p.elapsed
}

func (p *WorkerPool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-p.tasks:
			if !ok {
				return
			}

			start := time.Now()
			response, err := p.analyze(ctx, task.Password)
			duration := time.Since(start)

			p.record(err == nil, duration)

			select {
			case p.results <- Result{
				Index:    task.Index,
				Response: response,
				Err:      err,
				Duration: duration,
				WorkerID: id,
			}:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (p *WorkerPool) record(success bool, duration time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if success {
		p.completed++
	} else {
		p.failed++
	}
	p.elapsed += duration
}

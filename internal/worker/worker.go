package worker

import (
	"sync"

	"github.com/rs/zerolog"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool creates a pool with n workers and room for 4n queued tasks. n<=0 defaults to 1.
// A panicking task is logged and does not take its worker down.
func NewPool(n int, log zerolog.Logger) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n*4), log: log.With().Str("component", "worker").Logger()}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					p.run(job)
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs    chan Task
	wg      sync.WaitGroup
	mu      sync.RWMutex
	stopped bool
	log     zerolog.Logger
}

func (p *pool) run(t Task) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Msg("task panicked")
		}
	}()
	t()
}

// Submit queues t without blocking. Tasks submitted after Stop or while the
// queue is full are dropped.
func (p *pool) Submit(t Task) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		p.log.Warn().Msg("task submitted after stop, dropped")
		return
	}
	select {
	case p.jobs <- t:
	default:
		p.log.Debug().Int("queued", len(p.jobs)).Msg("queue full, task dropped")
	}
}

// Stop drains queued tasks and waits for the workers. It is safe to call twice.
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/GiveawayBot_Go/internal/logger"
	"github.com/osse101/GiveawayBot_Go/internal/worker"
)

// Scheduler enqueues jobs onto a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. Non-positive intervals disable the job.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	if interval <= 0 {
		logger.Info("Scheduled job disabled", "job", name)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// Blocks while the pool queue is full, so ticks are skipped rather than piling up
				if !s.workerPool.Enqueue(job) {
					return
				}
			case <-s.quit:
				return
			}
		}
	}()
	logger.Info("Scheduled job registered", "job", name, "interval", interval)
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}

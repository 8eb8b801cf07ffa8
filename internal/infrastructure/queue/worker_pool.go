package queue

import (
	"context"
	"sync"
)

// WorkerPool runs transcoding jobs on a fixed set of workers with a
// bounded queue. Submit blocks when the queue is full; the pool is sized
// generously relative to expected concurrent uploads.
type WorkerPool struct {
	jobChan chan TranscodeJob
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewWorkerPool(workerCount, queueSize int, orchestrator Orchestrator) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		jobChan: make(chan TranscodeJob, queueSize),
		ctx:     ctx,
		cancel:  cancel,
	}
	for i := 0; i < workerCount; i++ {
		worker := &Worker{
			ID:           i,
			JobChan:      pool.jobChan,
			Wg:           &pool.wg,
			Orchestrator: orchestrator,
		}
		pool.wg.Add(1)
		worker.Start(pool.ctx)
	}
	return pool
}

func (p *WorkerPool) Submit(job TranscodeJob) {
	p.jobChan <- job
}

func (p *WorkerPool) Shutdown() {
	p.cancel()
	close(p.jobChan)
	p.wg.Wait()
}

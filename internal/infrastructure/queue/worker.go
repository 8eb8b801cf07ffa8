package queue

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Orchestrator is the work a job resolves to. Errors escaping a run are
// only observable here; the upload caller has long since been answered.
type Orchestrator interface {
	Process(ctx context.Context, originalPath string, videoID uuid.UUID) error
}

type Worker struct {
	ID           int
	JobChan      <-chan TranscodeJob
	Wg           *sync.WaitGroup
	Orchestrator Orchestrator
}

func (w *Worker) Start(ctx context.Context) {
	go func() {
		defer w.Wg.Done()
		for {
			select {
			case job, ok := <-w.JobChan:
				if !ok {
					log.Printf("Worker %d: job channel closed", w.ID)
					return
				}
				select {
				case <-ctx.Done():
					log.Printf("Worker %d: job for video %s cancelled", w.ID, job.VideoID)
					continue
				default:
					w.processJob(job)
				}
			case <-ctx.Done():
				log.Printf("Worker %d: stopping due to context cancellation", w.ID)
				return
			}
		}
	}()
}

func (w *Worker) processJob(job TranscodeJob) {
	log.Printf("Worker %d: processing video %s", w.ID, job.VideoID)

	if err := w.Orchestrator.Process(context.Background(), job.OriginalPath, job.VideoID); err != nil {
		log.Printf("Worker %d: processing video %s failed: %v", w.ID, job.VideoID, err)
		return
	}

	log.Printf("Worker %d: processing video %s finished", w.ID, job.VideoID)
}

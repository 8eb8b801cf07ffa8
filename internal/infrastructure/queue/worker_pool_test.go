package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type recordingOrchestrator struct {
	mu   sync.Mutex
	jobs []uuid.UUID
	done chan struct{}
}

func (o *recordingOrchestrator) Process(ctx context.Context, originalPath string, videoID uuid.UUID) error {
	o.mu.Lock()
	o.jobs = append(o.jobs, videoID)
	o.mu.Unlock()
	o.done <- struct{}{}
	return nil
}

func TestWorkerPoolExecutesSubmittedJobs(t *testing.T) {
	orch := &recordingOrchestrator{done: make(chan struct{}, 10)}
	pool := NewWorkerPool(2, 10, orch)
	defer pool.Shutdown()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		pool.Submit(TranscodeJob{VideoID: id, OriginalPath: "/tmp/" + id.String()})
	}

	for range ids {
		select {
		case <-orch.done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for jobs to execute")
		}
	}

	orch.mu.Lock()
	defer orch.mu.Unlock()
	if len(orch.jobs) != len(ids) {
		t.Errorf("expected %d executed jobs, got %d", len(ids), len(orch.jobs))
	}
	seen := make(map[uuid.UUID]bool)
	for _, id := range orch.jobs {
		seen[id] = true
	}
	for _, id := range ids {
		if !seen[id] {
			t.Errorf("job %s was never executed", id)
		}
	}
}

func TestWorkerPoolShutdownStopsWorkers(t *testing.T) {
	orch := &recordingOrchestrator{done: make(chan struct{}, 1)}
	pool := NewWorkerPool(1, 1, orch)

	pool.Submit(TranscodeJob{VideoID: uuid.New()})
	select {
	case <-orch.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for job")
	}

	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not complete")
	}
}

package usecases

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/KUD2IP/StreamFlow/internal/domain/entities"
	"github.com/KUD2IP/StreamFlow/internal/infrastructure/queue"
	"github.com/KUD2IP/StreamFlow/internal/infrastructure/tempfiles"
	errs "github.com/KUD2IP/StreamFlow/pkg/errors"
)

type stubVideoRepo struct {
	video        *entities.Video
	statuses     []entities.Status
	previewURL   string
	createErr    error
	statusErr    error
	statusErrOn  entities.Status
	created      []*entities.Video
}

func (r *stubVideoRepo) CreateVideo(video *entities.Video) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, video)
	return nil
}

func (r *stubVideoRepo) GetVideoByID(id uuid.UUID) (*entities.Video, error) {
	if r.video == nil {
		return nil, errs.ErrVideoNotFound(id.String())
	}
	return r.video, nil
}

func (r *stubVideoRepo) ExistsByID(id uuid.UUID) (bool, error) {
	return r.video != nil, nil
}

func (r *stubVideoRepo) UpdateStatus(id uuid.UUID, status entities.Status) error {
	if r.statusErr != nil && (r.statusErrOn == "" || r.statusErrOn == status) {
		return r.statusErr
	}
	r.statuses = append(r.statuses, status)
	return nil
}

func (r *stubVideoRepo) UpdatePreviewURL(id uuid.UUID, url string) error {
	r.previewURL = url
	return nil
}

func (r *stubVideoRepo) lastStatus() entities.Status {
	if len(r.statuses) == 0 {
		return ""
	}
	return r.statuses[len(r.statuses)-1]
}

type stubQualityProcessor struct {
	failing map[entities.Quality]error
	calls   []entities.Quality
}

func (p *stubQualityProcessor) ProcessQuality(ctx context.Context, originalPath string, videoID uuid.UUID, quality entities.Quality, outputPath string) (*QualityResult, error) {
	p.calls = append(p.calls, quality)
	if err, ok := p.failing[quality]; ok {
		return nil, err
	}
	return &QualityResult{StoragePath: "videos/" + string(quality) + ".mp4", LocalPath: outputPath}, nil
}

type stubThumbnailer struct {
	calls int
	err   error
}

func (s *stubThumbnailer) GenerateThumbnail(ctx context.Context, inputPath, outputPath, timePosition string, width int) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	return os.WriteFile(outputPath, []byte("jpeg"), 0644)
}

type stubStatusCache struct {
	values map[uuid.UUID]entities.Status
}

func newStubStatusCache() *stubStatusCache {
	return &stubStatusCache{values: make(map[uuid.UUID]entities.Status)}
}

func (c *stubStatusCache) Get(ctx context.Context, videoID uuid.UUID) (entities.Status, bool) {
	status, ok := c.values[videoID]
	return status, ok
}

func (c *stubStatusCache) Set(ctx context.Context, videoID uuid.UUID, status entities.Status) {
	c.values[videoID] = status
}

type stubStorage struct {
	uploads []string
	err     error
}

func (s *stubStorage) UploadFile(localPath, bucket string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.uploads = append(s.uploads, bucket+"/"+filepath.Base(localPath))
	return bucket + "/" + filepath.Base(localPath), nil
}

func (s *stubStorage) DeleteFile(bucket, key string) error { return nil }

type stubQueue struct {
	jobs []queue.TranscodeJob
}

func (q *stubQueue) Submit(job queue.TranscodeJob) {
	q.jobs = append(q.jobs, job)
}

type transcodeFixture struct {
	service  TranscodeService
	repo     *stubVideoRepo
	proc     *stubQualityProcessor
	thumb    *stubThumbnailer
	cache    *stubStatusCache
	store    *stubStorage
	tempman  *tempfiles.Manager
	videoID  uuid.UUID
	original string
}

func newTranscodeFixture(t *testing.T, cfg TranscodeConfig) *transcodeFixture {
	t.Helper()

	videoID := uuid.New()
	tempman := tempfiles.NewManager(t.TempDir())

	original := tempman.OriginalPath(videoID, "mp4")
	if err := os.MkdirAll(filepath.Dir(original), 0755); err != nil {
		t.Fatalf("failed to create workspace: %v", err)
	}
	if err := os.WriteFile(original, []byte("video"), 0644); err != nil {
		t.Fatalf("failed to write original: %v", err)
	}

	repo := &stubVideoRepo{video: &entities.Video{VideoID: videoID}}
	proc := &stubQualityProcessor{failing: make(map[entities.Quality]error)}
	thumb := &stubThumbnailer{}
	cache := newStubStatusCache()
	store := &stubStorage{}

	return &transcodeFixture{
		service:  NewTranscodeService(repo, store, proc, tempman, thumb, cache, cfg),
		repo:     repo,
		proc:     proc,
		thumb:    thumb,
		cache:    cache,
		store:    store,
		tempman:  tempman,
		videoID:  videoID,
		original: original,
	}
}

func TestProcessAllQualitiesSucceed(t *testing.T) {
	f := newTranscodeFixture(t, TranscodeConfig{ThumbnailBucket: "thumbs", ThumbnailWidth: 640})

	if err := f.service.Process(context.Background(), f.original, f.videoID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := f.repo.lastStatus(); got != entities.StatusReady {
		t.Errorf("expected terminal status READY, got %s", got)
	}
	if f.repo.statuses[0] != entities.StatusProcessing {
		t.Errorf("expected first status PROCESSING, got %s", f.repo.statuses[0])
	}
	if len(f.proc.calls) != len(entities.Qualities()) {
		t.Errorf("expected %d quality runs, got %d", len(entities.Qualities()), len(f.proc.calls))
	}
	if f.proc.calls[0] != entities.Quality1080 {
		t.Errorf("expected highest quality first, got %s", f.proc.calls[0])
	}
	if cached, ok := f.cache.Get(context.Background(), f.videoID); !ok || cached != entities.StatusReady {
		t.Errorf("expected READY in status cache, got %s (present: %v)", cached, ok)
	}
	if _, err := os.Stat(f.tempman.WorkspaceDir(f.videoID)); !os.IsNotExist(err) {
		t.Error("expected temp workspace to be deleted")
	}
}

func TestProcessSingleQualityFailureContinues(t *testing.T) {
	f := newTranscodeFixture(t, TranscodeConfig{ThumbnailBucket: "thumbs", ThumbnailWidth: 640})
	f.proc.failing[entities.Quality480] = errs.ErrQualityProcessing("P480", os.ErrInvalid)

	if err := f.service.Process(context.Background(), f.original, f.videoID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := f.repo.lastStatus(); got != entities.StatusReady {
		t.Errorf("expected READY despite one failed quality, got %s", got)
	}
	if len(f.proc.calls) != len(entities.Qualities()) {
		t.Errorf("expected all qualities attempted, got %d", len(f.proc.calls))
	}
}

func TestProcessMissingOriginalFails(t *testing.T) {
	f := newTranscodeFixture(t, TranscodeConfig{})

	missing := filepath.Join(filepath.Dir(f.original), "nope.mp4")
	err := f.service.Process(context.Background(), missing, f.videoID)
	if err == nil {
		t.Fatal("expected error for missing original")
	}
	if !errs.HasCode(err, "orchestration_failed") {
		t.Errorf("expected orchestration_failed, got %v", err)
	}
	if !errs.HasCode(err, "source_not_found") {
		t.Errorf("expected source_not_found cause, got %v", err)
	}
	if got := f.repo.lastStatus(); got != entities.StatusFailed {
		t.Errorf("expected terminal status FAILED, got %s", got)
	}
	if len(f.proc.calls) != 0 {
		t.Errorf("expected no quality runs, got %d", len(f.proc.calls))
	}
	if _, err := os.Stat(f.tempman.WorkspaceDir(f.videoID)); !os.IsNotExist(err) {
		t.Error("expected temp workspace to be deleted on failure")
	}
}

func TestProcessMinQualitiesEnforced(t *testing.T) {
	f := newTranscodeFixture(t, TranscodeConfig{MinQualities: 1})
	for _, q := range entities.Qualities() {
		f.proc.failing[q] = errs.ErrQualityProcessing(string(q), os.ErrInvalid)
	}

	err := f.service.Process(context.Background(), f.original, f.videoID)
	if err == nil {
		t.Fatal("expected error when no rendition succeeds")
	}
	if got := f.repo.lastStatus(); got != entities.StatusFailed {
		t.Errorf("expected FAILED, got %s", got)
	}
}

func TestProcessAllQualitiesFailStillReadyByDefault(t *testing.T) {
	f := newTranscodeFixture(t, TranscodeConfig{})
	for _, q := range entities.Qualities() {
		f.proc.failing[q] = errs.ErrQualityProcessing(string(q), os.ErrInvalid)
	}

	if err := f.service.Process(context.Background(), f.original, f.videoID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := f.repo.lastStatus(); got != entities.StatusReady {
		t.Errorf("expected READY with MinQualities unset, got %s", got)
	}
}

func TestProcessStatusUpdateFailureAborts(t *testing.T) {
	f := newTranscodeFixture(t, TranscodeConfig{})
	f.repo.statusErr = os.ErrClosed
	f.repo.statusErrOn = entities.StatusProcessing

	err := f.service.Process(context.Background(), f.original, f.videoID)
	if err == nil {
		t.Fatal("expected error when status update fails")
	}
	if !errs.HasCode(err, "orchestration_failed") {
		t.Errorf("expected orchestration_failed, got %v", err)
	}
	if got := f.repo.lastStatus(); got != entities.StatusFailed {
		t.Errorf("expected FAILED, got %s", got)
	}
	if len(f.proc.calls) != 0 {
		t.Errorf("expected no quality runs after aborted status update, got %d", len(f.proc.calls))
	}
}

func TestProcessGeneratesPreview(t *testing.T) {
	f := newTranscodeFixture(t, TranscodeConfig{ThumbnailBucket: "thumbs", ThumbnailWidth: 640})

	if err := f.service.Process(context.Background(), f.original, f.videoID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.thumb.calls != 1 {
		t.Errorf("expected one thumbnail run, got %d", f.thumb.calls)
	}
	if f.repo.previewURL == "" {
		t.Error("expected preview URL to be set")
	}
}

func TestProcessSkipsPreviewWhenAlreadySet(t *testing.T) {
	f := newTranscodeFixture(t, TranscodeConfig{ThumbnailBucket: "thumbs", ThumbnailWidth: 640})
	f.repo.video.PreviewURL = "thumbs/manual.jpg"

	if err := f.service.Process(context.Background(), f.original, f.videoID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.thumb.calls != 0 {
		t.Errorf("expected no thumbnail run, got %d", f.thumb.calls)
	}
}

func TestProcessThumbnailFailureDoesNotFailRun(t *testing.T) {
	f := newTranscodeFixture(t, TranscodeConfig{ThumbnailBucket: "thumbs", ThumbnailWidth: 640})
	f.thumb.err = os.ErrPermission

	if err := f.service.Process(context.Background(), f.original, f.videoID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := f.repo.lastStatus(); got != entities.StatusReady {
		t.Errorf("expected READY despite thumbnail failure, got %s", got)
	}
}

package usecases

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/KUD2IP/StreamFlow/internal/domain/entities"
	"github.com/KUD2IP/StreamFlow/internal/domain/repositories"
	errs "github.com/KUD2IP/StreamFlow/pkg/errors"
)

const thumbnailTimePosition = "00:00:01"

// TranscodeService drives one video through the full processing run:
// PROCESSING, every configured quality level in order, then a terminal
// READY or FAILED. Per-quality failures are logged and skipped; failures
// outside the quality loop abort the run. The temp workspace is deleted
// on every path.
type TranscodeService interface {
	Process(ctx context.Context, originalPath string, videoID uuid.UUID) error
}

type TranscodeConfig struct {
	ThumbnailBucket string
	ThumbnailWidth  int
	// MinQualities is the number of renditions that must succeed before
	// the run may reach READY. Zero keeps the historical best-effort
	// behavior where even a fully failed run ends READY.
	MinQualities int
}

type transcodeService struct {
	videoRepo   repositories.VideoRepository
	storage     repositories.StorageStrategy
	processor   QualityProcessor
	tempman     TempManager
	thumbnailer Thumbnailer
	statusCache StatusCache
	cfg         TranscodeConfig
}

func NewTranscodeService(
	videoRepo repositories.VideoRepository,
	storage repositories.StorageStrategy,
	processor QualityProcessor,
	tempman TempManager,
	thumbnailer Thumbnailer,
	statusCache StatusCache,
	cfg TranscodeConfig,
) TranscodeService {
	return &transcodeService{
		videoRepo:   videoRepo,
		storage:     storage,
		processor:   processor,
		tempman:     tempman,
		thumbnailer: thumbnailer,
		statusCache: statusCache,
		cfg:         cfg,
	}
}

func (s *transcodeService) Process(ctx context.Context, originalPath string, videoID uuid.UUID) error {
	log.Printf("Starting video processing: %s", videoID)

	defer s.tempman.DeleteWorkspace(videoID)

	if err := s.setStatus(ctx, videoID, entities.StatusProcessing); err != nil {
		return s.fail(ctx, videoID, err)
	}

	if _, err := os.Stat(originalPath); err != nil {
		return s.fail(ctx, videoID, errs.ErrSourceNotFound(originalPath))
	}

	succeeded := 0
	for _, quality := range entities.Qualities() {
		outputPath := s.tempman.PathFor(videoID, quality)
		if _, err := s.processor.ProcessQuality(ctx, originalPath, videoID, quality, outputPath); err != nil {
			log.Printf("Quality %s failed for video %s, continuing: %v", quality, videoID, err)
			continue
		}
		succeeded++
	}

	if s.cfg.MinQualities > 0 && succeeded < s.cfg.MinQualities {
		return s.fail(ctx, videoID, fmt.Errorf("only %d renditions succeeded, %d required", succeeded, s.cfg.MinQualities))
	}

	s.generatePreview(ctx, videoID, originalPath)

	if err := s.setStatus(ctx, videoID, entities.StatusReady); err != nil {
		return s.fail(ctx, videoID, err)
	}

	log.Printf("Video processing completed: %s (%d/%d renditions)", videoID, succeeded, len(entities.Qualities()))
	return nil
}

func (s *transcodeService) setStatus(ctx context.Context, videoID uuid.UUID, status entities.Status) error {
	if err := s.videoRepo.UpdateStatus(videoID, status); err != nil {
		return err
	}
	s.statusCache.Set(ctx, videoID, status)
	log.Printf("Video %s status updated to %s", videoID, status)
	return nil
}

// fail forces the terminal FAILED status and wraps the cause. A failing
// status write at this point can only be logged.
func (s *transcodeService) fail(ctx context.Context, videoID uuid.UUID, cause error) error {
	if err := s.setStatus(ctx, videoID, entities.StatusFailed); err != nil {
		log.Printf("Failed to mark video %s as FAILED: %v", videoID, err)
	}
	return errs.ErrOrchestration(cause)
}

// generatePreview creates a thumbnail from the original when none was
// uploaded manually. Best-effort: errors never fail the run.
func (s *transcodeService) generatePreview(ctx context.Context, videoID uuid.UUID, originalPath string) {
	video, err := s.videoRepo.GetVideoByID(videoID)
	if err != nil {
		log.Printf("Preview generation skipped for %s: %v", videoID, err)
		return
	}
	if video.PreviewURL != "" {
		return
	}

	thumbPath := filepath.Join(s.tempman.WorkspaceDir(videoID), "preview.jpg")
	if err := s.thumbnailer.GenerateThumbnail(ctx, originalPath, thumbPath, thumbnailTimePosition, s.cfg.ThumbnailWidth); err != nil {
		log.Printf("Thumbnail generation failed for %s: %v", videoID, err)
		return
	}

	storagePath, err := s.storage.UploadFile(thumbPath, s.cfg.ThumbnailBucket)
	if err != nil {
		log.Printf("Thumbnail upload failed for %s: %v", videoID, err)
		return
	}

	if err := s.videoRepo.UpdatePreviewURL(videoID, storagePath); err != nil {
		log.Printf("Preview URL update failed for %s: %v", videoID, err)
	}
}

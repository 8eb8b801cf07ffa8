package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/KUD2IP/StreamFlow/internal/domain/dto"
	"github.com/KUD2IP/StreamFlow/internal/domain/entities"
	"github.com/KUD2IP/StreamFlow/internal/infrastructure/queue"
)

// Converter is the media tool boundary: probe a file, transcode a file.
type Converter interface {
	Probe(ctx context.Context, path string) (*dto.VideoInfo, error)
	Convert(ctx context.Context, inputPath, outputPath string, quality entities.Quality) (string, error)
}

// Thumbnailer extracts and downscales a preview frame from a video.
type Thumbnailer interface {
	GenerateThumbnail(ctx context.Context, inputPath, outputPath, timePosition string, width int) error
}

// TempManager owns per-video temporary workspaces.
type TempManager interface {
	WorkspaceDir(videoID uuid.UUID) string
	PathFor(videoID uuid.UUID, quality entities.Quality) string
	OriginalPath(videoID uuid.UUID, ext string) string
	DeleteWorkspace(videoID uuid.UUID)
}

// StatusCache is the fast read path for video status polling.
type StatusCache interface {
	Get(ctx context.Context, videoID uuid.UUID) (entities.Status, bool)
	Set(ctx context.Context, videoID uuid.UUID, status entities.Status)
}

// JobQueue accepts transcoding jobs for asynchronous execution.
type JobQueue interface {
	Submit(job queue.TranscodeJob)
}

package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/KUD2IP/StreamFlow/internal/domain/dto"
	"github.com/KUD2IP/StreamFlow/internal/domain/repositories"
	errs "github.com/KUD2IP/StreamFlow/pkg/errors"
)

// VideoService is the read path: status polling and rendition listing.
// A READY video with fewer renditions than configured quality levels is
// how partial failure surfaces, so the quality listing matters to clients.
type VideoService interface {
	GetStatus(ctx context.Context, videoID uuid.UUID) (*dto.VideoStatusResponse, error)
	GetQualities(ctx context.Context, videoID uuid.UUID) ([]dto.VideoQualityResponse, error)
}

type videoService struct {
	videoRepo   repositories.VideoRepository
	qualityRepo repositories.VideoQualityRepository
	statusCache StatusCache
}

func NewVideoService(videoRepo repositories.VideoRepository, qualityRepo repositories.VideoQualityRepository, statusCache StatusCache) VideoService {
	return &videoService{
		videoRepo:   videoRepo,
		qualityRepo: qualityRepo,
		statusCache: statusCache,
	}
}

func (s *videoService) GetStatus(ctx context.Context, videoID uuid.UUID) (*dto.VideoStatusResponse, error) {
	if status, ok := s.statusCache.Get(ctx, videoID); ok {
		return &dto.VideoStatusResponse{VideoID: videoID.String(), Status: string(status)}, nil
	}

	video, err := s.videoRepo.GetVideoByID(videoID)
	if err != nil {
		return nil, err
	}

	s.statusCache.Set(ctx, videoID, video.Status)
	return &dto.VideoStatusResponse{VideoID: videoID.String(), Status: string(video.Status)}, nil
}

func (s *videoService) GetQualities(ctx context.Context, videoID uuid.UUID) ([]dto.VideoQualityResponse, error) {
	exists, err := s.videoRepo.ExistsByID(videoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrVideoNotFound(videoID.String())
	}

	qualities, err := s.qualityRepo.ListByVideoID(videoID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.VideoQualityResponse, 0, len(qualities))
	for _, q := range qualities {
		responses = append(responses, dto.VideoQualityResponse{
			Quality:      string(q.Quality),
			StoragePath:  q.StoragePath,
			FileSize:     q.FileSize,
			Duration:     q.Duration,
			BitrateVideo: q.BitrateVideo,
			BitrateAudio: q.BitrateAudio,
			Resolution:   q.Resolution,
			CreatedAt:    q.CreatedAt,
		})
	}
	return responses, nil
}

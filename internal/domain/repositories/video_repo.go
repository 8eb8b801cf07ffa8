package repositories

import (
	"github.com/google/uuid"

	"github.com/KUD2IP/StreamFlow/internal/domain/entities"
)

type VideoRepository interface {
	CreateVideo(video *entities.Video) error
	GetVideoByID(id uuid.UUID) (*entities.Video, error)
	ExistsByID(id uuid.UUID) (bool, error)
	UpdateStatus(id uuid.UUID, status entities.Status) error
	UpdatePreviewURL(id uuid.UUID, url string) error
}

type VideoQualityRepository interface {
	CreateQuality(quality *entities.VideoQuality) error
	ListByVideoID(videoID uuid.UUID) ([]entities.VideoQuality, error)
	CountByVideoID(videoID uuid.UUID) (int64, error)
}

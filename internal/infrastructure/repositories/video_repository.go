package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KUD2IP/StreamFlow/internal/domain/entities"
	domain "github.com/KUD2IP/StreamFlow/internal/domain/repositories"
	errs "github.com/KUD2IP/StreamFlow/pkg/errors"
)

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) domain.VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) CreateVideo(video *entities.Video) error {
	if video.VideoID == uuid.Nil {
		video.VideoID = uuid.New()
	}
	video.CreatedAt = time.Now()
	video.UpdatedAt = time.Now()
	return r.db.Create(video).Error
}

func (r *videoRepository) GetVideoByID(id uuid.UUID) (*entities.Video, error) {
	var video entities.Video
	if err := r.db.First(&video, "video_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrVideoNotFound(id.String())
		}
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) ExistsByID(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&entities.Video{}).Where("video_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *videoRepository) UpdateStatus(id uuid.UUID, status entities.Status) error {
	result := r.db.Model(&entities.Video{}).
		Where("video_id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrVideoNotFound(id.String())
	}
	return nil
}

func (r *videoRepository) UpdatePreviewURL(id uuid.UUID, url string) error {
	return r.db.Model(&entities.Video{}).
		Where("video_id = ?", id).
		Updates(map[string]interface{}{"preview_url": url, "updated_at": time.Now()}).Error
}

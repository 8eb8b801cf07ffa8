package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KUD2IP/StreamFlow/internal/domain/entities"
	domain "github.com/KUD2IP/StreamFlow/internal/domain/repositories"
)

type videoQualityRepository struct {
	db *gorm.DB
}

func NewVideoQualityRepository(db *gorm.DB) domain.VideoQualityRepository {
	return &videoQualityRepository{db: db}
}

func (r *videoQualityRepository) CreateQuality(quality *entities.VideoQuality) error {
	if quality.QualityID == uuid.Nil {
		quality.QualityID = uuid.New()
	}
	quality.CreatedAt = time.Now()
	return r.db.Create(quality).Error
}

func (r *videoQualityRepository) ListByVideoID(videoID uuid.UUID) ([]entities.VideoQuality, error) {
	var qualities []entities.VideoQuality
	if err := r.db.Where("video_id = ?", videoID).Order("quality").Find(&qualities).Error; err != nil {
		return nil, err
	}
	return qualities, nil
}

func (r *videoQualityRepository) CountByVideoID(videoID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&entities.VideoQuality{}).Where("video_id = ?", videoID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

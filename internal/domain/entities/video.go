package entities

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusUploading  Status = "UPLOADING"
	StatusProcessing Status = "PROCESSING"
	StatusReady      Status = "READY"
	StatusFailed     Status = "FAILED"
)

type Video struct {
	VideoID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(500);not null"`
	Description string    `gorm:"type:text"`
	Filename    string    `gorm:"type:varchar(500)"`
	UserID      string    `gorm:"type:varchar(255);not null;index"`
	Status      Status    `gorm:"type:varchar(20);not null"`
	VideoURL    string    `gorm:"type:varchar(1000)"`
	PreviewURL  string    `gorm:"type:varchar(1000)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type VideoQuality struct {
	QualityID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	VideoID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Quality      Quality   `gorm:"type:varchar(10);not null"`
	StoragePath  string    `gorm:"type:varchar(1000);not null"`
	FileSize     int64     `gorm:"not null"`
	Duration     int       `gorm:"not null"` // seconds
	BitrateVideo int       // kbps
	BitrateAudio int       // kbps
	Resolution   string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
}

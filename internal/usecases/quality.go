package usecases

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/KUD2IP/StreamFlow/internal/domain/dto"
	"github.com/KUD2IP/StreamFlow/internal/domain/entities"
	"github.com/KUD2IP/StreamFlow/internal/domain/repositories"
	errs "github.com/KUD2IP/StreamFlow/pkg/errors"
)

// QualityResult is the outcome of one successful rendition.
type QualityResult struct {
	StoragePath string
	Metadata    *dto.VideoInfo
	LocalPath   string
}

// QualityProcessor produces one rendition for one (video, quality) pair:
// convert, probe the converted file, upload it, persist its metadata.
// Each step hard-depends on the previous one; video status is never
// touched here.
type QualityProcessor interface {
	ProcessQuality(ctx context.Context, originalPath string, videoID uuid.UUID, quality entities.Quality, outputPath string) (*QualityResult, error)
}

type qualityProcessor struct {
	converter   Converter
	storage     repositories.StorageStrategy
	videoRepo   repositories.VideoRepository
	qualityRepo repositories.VideoQualityRepository
	videoBucket string
}

func NewQualityProcessor(
	converter Converter,
	storage repositories.StorageStrategy,
	videoRepo repositories.VideoRepository,
	qualityRepo repositories.VideoQualityRepository,
	videoBucket string,
) QualityProcessor {
	return &qualityProcessor{
		converter:   converter,
		storage:     storage,
		videoRepo:   videoRepo,
		qualityRepo: qualityRepo,
		videoBucket: videoBucket,
	}
}

func (p *qualityProcessor) ProcessQuality(ctx context.Context, originalPath string, videoID uuid.UUID, quality entities.Quality, outputPath string) (*QualityResult, error) {
	log.Printf("Processing quality %s for video %s", quality, videoID)

	localPath, err := p.converter.Convert(ctx, originalPath, outputPath, quality)
	if err != nil {
		return nil, errs.ErrQualityProcessing(string(quality), err)
	}

	metadata, err := p.converter.Probe(ctx, localPath)
	if err != nil {
		return nil, errs.ErrQualityProcessing(string(quality), err)
	}

	storagePath, err := p.storage.UploadFile(localPath, p.videoBucket)
	if err != nil {
		return nil, errs.ErrQualityProcessing(string(quality), errs.ErrStorageUpload(err))
	}

	if err := p.saveMetadata(metadata, storagePath, videoID, quality); err != nil {
		return nil, errs.ErrQualityProcessing(string(quality), err)
	}

	log.Printf("Quality %s processed successfully for video %s", quality, videoID)

	return &QualityResult{
		StoragePath: storagePath,
		Metadata:    metadata,
		LocalPath:   localPath,
	}, nil
}

func (p *qualityProcessor) saveMetadata(metadata *dto.VideoInfo, storagePath string, videoID uuid.UUID, quality entities.Quality) error {
	exists, err := p.videoRepo.ExistsByID(videoID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.ErrVideoNotFound(videoID.String())
	}

	return p.qualityRepo.CreateQuality(&entities.VideoQuality{
		VideoID:      videoID,
		Quality:      quality,
		StoragePath:  storagePath,
		FileSize:     metadata.FileSize,
		Duration:     metadata.Duration,
		BitrateVideo: metadata.BitrateVideo,
		BitrateAudio: metadata.BitrateAudio,
		Resolution:   metadata.Resolution,
	})
}

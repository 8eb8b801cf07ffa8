package usecases

import (
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/KUD2IP/StreamFlow/internal/domain/dto"
	"github.com/KUD2IP/StreamFlow/internal/domain/entities"
	"github.com/KUD2IP/StreamFlow/internal/domain/repositories"
	"github.com/KUD2IP/StreamFlow/internal/infrastructure/queue"
	"github.com/KUD2IP/StreamFlow/pkg/config"
	"github.com/KUD2IP/StreamFlow/pkg/constants"
	errs "github.com/KUD2IP/StreamFlow/pkg/errors"
	pkgfile "github.com/KUD2IP/StreamFlow/pkg/file"
)

// UploadService accepts an uploaded original, registers the video record
// and dispatches the transcoding run. The caller is answered immediately
// with status UPLOADING; everything after dispatch is observable only via
// the status read path.
type UploadService interface {
	UploadVideo(fileHeader *multipart.FileHeader, userID string) (*dto.VideoUploadResponse, error)
}

type uploadService struct {
	videoRepo repositories.VideoRepository
	tempman   TempManager
	pool      JobQueue
	cfg       config.UploadConfig
}

func NewUploadService(videoRepo repositories.VideoRepository, tempman TempManager, pool JobQueue, cfg config.UploadConfig) UploadService {
	return &uploadService{
		videoRepo: videoRepo,
		tempman:   tempman,
		pool:      pool,
		cfg:       cfg,
	}
}

func (s *uploadService) UploadVideo(fileHeader *multipart.FileHeader, userID string) (*dto.VideoUploadResponse, error) {
	log.Printf("Starting video upload, user: %s", userID)

	// Validation happens before any record or file write: a rejected
	// upload leaves no partial state behind.
	if err := s.validateVideoFile(fileHeader); err != nil {
		return nil, err
	}

	video := &entities.Video{
		VideoID:  uuid.New(),
		Title:    fileHeader.Filename,
		Filename: fileHeader.Filename,
		UserID:   userID,
		Status:   entities.StatusUploading,
	}
	if err := s.videoRepo.CreateVideo(video); err != nil {
		return nil, errs.ErrInternal(err)
	}

	originalPath, err := s.saveOriginal(fileHeader, video.VideoID)
	if err != nil {
		s.tempman.DeleteWorkspace(video.VideoID)
		return nil, errs.ErrInternal(err)
	}

	s.pool.Submit(queue.TranscodeJob{
		VideoID:      video.VideoID,
		OriginalPath: originalPath,
	})

	return &dto.VideoUploadResponse{
		VideoID: video.VideoID.String(),
		Status:  string(entities.StatusUploading),
		Message: constants.MsgUploadInitiated,
	}, nil
}

func (s *uploadService) validateVideoFile(fileHeader *multipart.FileHeader) error {
	if fileHeader == nil || fileHeader.Size == 0 {
		return errs.ErrEmptyFile()
	}

	if fileHeader.Size > s.cfg.MaxFileSize {
		return errs.ErrFileTooLarge(fileHeader.Size/(1024*1024), s.cfg.MaxFileSize/(1024*1024))
	}

	ext := pkgfile.Extension(fileHeader.Filename)
	for _, allowed := range s.cfg.AllowedTypes {
		if ext == allowed {
			return nil
		}
	}
	return errs.ErrInvalidFileType(ext)
}

func (s *uploadService) saveOriginal(fileHeader *multipart.FileHeader, videoID uuid.UUID) (string, error) {
	ext := pkgfile.Extension(fileHeader.Filename)
	originalPath := s.tempman.OriginalPath(videoID, ext)

	if err := os.MkdirAll(filepath.Dir(originalPath), 0755); err != nil {
		return "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(originalPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	log.Printf("Original video saved to: %s", originalPath)
	return originalPath, nil
}

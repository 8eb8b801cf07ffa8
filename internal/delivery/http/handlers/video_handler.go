package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/KUD2IP/StreamFlow/internal/domain/dto"
	"github.com/KUD2IP/StreamFlow/internal/usecases"
	"github.com/KUD2IP/StreamFlow/pkg/constants"
	errs "github.com/KUD2IP/StreamFlow/pkg/errors"
)

type VideoHandler struct {
	uploadService usecases.UploadService
	videoService  usecases.VideoService
}

func NewVideoHandler(uploadService usecases.UploadService, videoService usecases.VideoService) *VideoHandler {
	return &VideoHandler{
		uploadService: uploadService,
		videoService:  videoService,
	}
}

// UploadVideo
//
// @Summary      Upload Video
// @Description  Accepts a video file, stores the original and schedules transcoding
// @Tags         Videos
// @Accept       multipart/form-data
// @Produce      json
// @Param        X-User-Id  header    string true "Acting user id"
// @Param        file       formData  file   true "Video file"
// @Success      202        {object}  dto.VideoUploadResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /videos/upload [post]
func (h *VideoHandler) UploadVideo(c *fiber.Ctx) error {
	userID := c.Get(constants.HeaderUserID)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error:   "missing_user",
			Message: "X-User-Id header is required",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errs.HandleError(c, errs.ErrEmptyFile())
	}

	log.Printf("Uploading video file for user %s, size: %d bytes", userID, fileHeader.Size)

	response, err := h.uploadService.UploadVideo(fileHeader, userID)
	if err != nil {
		return errs.HandleError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(response)
}

// VideoStatus
//
// @Summary      Get Video Status
// @Description  Returns the current processing status of a video
// @Tags         Videos
// @Produce      json
// @Param        id   path      string true "Video ID"
// @Success      200  {object}  dto.VideoStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /videos/{id}/status [get]
func (h *VideoHandler) VideoStatus(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Video id must be a UUID",
		})
	}

	response, err := h.videoService.GetStatus(c.Context(), videoID)
	if err != nil {
		return errs.HandleError(c, err)
	}

	return c.JSON(response)
}

// VideoQualities
//
// @Summary      List Video Qualities
// @Description  Returns the rendition records produced for a video
// @Tags         Videos
// @Produce      json
// @Param        id   path      string true "Video ID"
// @Success      200  {array}   dto.VideoQualityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /videos/{id}/qualities [get]
func (h *VideoHandler) VideoQualities(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "invalid_id",
			Message: "Video id must be a UUID",
		})
	}

	response, err := h.videoService.GetQualities(c.Context(), videoID)
	if err != nil {
		return errs.HandleError(c, err)
	}

	return c.JSON(response)
}

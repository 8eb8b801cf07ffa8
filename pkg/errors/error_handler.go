package errors

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if pe, ok := err.(*ProcessingError); ok {
		if pe.Err != nil {
			log.Printf("Request error [%s]: %v", pe.Code, pe.Err)
		}

		var status int
		switch pe.Code {
		case "video_not_found", "source_not_found":
			status = fiber.StatusNotFound
		case "empty_file", "invalid_file_type":
			status = fiber.StatusBadRequest
		case "file_too_large":
			status = fiber.StatusRequestEntityTooLarge
		default:
			status = fiber.StatusInternalServerError
		}

		return c.Status(status).JSON(fiber.Map{
			"error":   pe.Code,
			"message": pe.Message,
		})
	}

	log.Printf("Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_error",
		"message": "Internal server error",
	})
}

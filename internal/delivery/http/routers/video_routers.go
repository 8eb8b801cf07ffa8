package routers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KUD2IP/StreamFlow/internal/delivery/http/handlers"
)

func SetupVideoRoutes(app *fiber.App, videoHandler *handlers.VideoHandler) {
	api := app.Group("/api/v1")
	api.Post("/videos/upload", videoHandler.UploadVideo)
	api.Get("/videos/:id/status", videoHandler.VideoStatus)
	api.Get("/videos/:id/qualities", videoHandler.VideoQualities)
}

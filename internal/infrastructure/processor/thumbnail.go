package processor

import (
	"context"
	"fmt"
	"os"

	"github.com/disintegration/imaging"

	errs "github.com/KUD2IP/StreamFlow/pkg/errors"
)

// GenerateThumbnail extracts a frame from the video at the given time
// position and downscales it to the target width, preserving aspect ratio.
func (f *FFmpeg) GenerateThumbnail(ctx context.Context, inputPath, outputPath, timePosition string, width int) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return errs.ErrSourceNotFound(inputPath)
	}

	args := []string{
		"-ss", timePosition,
		"-i", inputPath,
		"-vframes", "1",
		"-y",
		outputPath,
	}

	if _, err := f.run(ctx, f.cfg.ProbeTimeout, f.cfg.FFmpegPath, args...); err != nil {
		return err
	}

	if _, err := os.Stat(outputPath); os.IsNotExist(err) {
		return errs.ErrOutputMissing(outputPath)
	}

	img, err := imaging.Open(outputPath)
	if err != nil {
		return fmt.Errorf("failed to open extracted frame: %w", err)
	}

	if width > 0 && img.Bounds().Dx() > width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	if err := imaging.Save(img, outputPath); err != nil {
		return fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return nil
}

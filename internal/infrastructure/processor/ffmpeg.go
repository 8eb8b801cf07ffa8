package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/KUD2IP/StreamFlow/internal/domain/dto"
	"github.com/KUD2IP/StreamFlow/internal/domain/entities"
	"github.com/KUD2IP/StreamFlow/pkg/config"
	errs "github.com/KUD2IP/StreamFlow/pkg/errors"
)

const defaultAudioBitrateKbps = 128

// FFmpeg wraps ffmpeg/ffprobe subprocess calls.
type FFmpeg struct {
	cfg config.FFmpegConfig
}

func NewFFmpeg(cfg config.FFmpegConfig) *FFmpeg {
	return &FFmpeg{cfg: cfg}
}

// Probe extracts technical metadata from a media file using ffprobe.
func (f *FFmpeg) Probe(ctx context.Context, path string) (*dto.VideoInfo, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errs.ErrSourceNotFound(path)
	}

	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	}

	output, err := f.run(ctx, f.cfg.ProbeTimeout, f.cfg.FFprobePath, args...)
	if err != nil {
		return nil, err
	}

	info, err := parseProbeOutput(output, path)
	if err != nil {
		return nil, err
	}

	log.Printf("Metadata extracted: duration=%ds, resolution=%s, bitrate=%dkbps",
		info.Duration, info.Resolution, info.BitrateVideo)

	return info, nil
}

// Convert transcodes a video into the given quality profile, overwriting
// any existing output file.
func (f *FFmpeg) Convert(ctx context.Context, inputPath, outputPath string, quality entities.Quality) (string, error) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return "", errs.ErrSourceNotFound(inputPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", errs.ErrToolExecution(fmt.Errorf("failed to create output directory: %w", err))
	}

	params := quality.Params()
	args := []string{
		"-i", inputPath,
		"-f", "mp4",
		"-vf", fmt.Sprintf("scale=%d:%d", params.Width, params.Height),
		"-b:v", fmt.Sprintf("%dk", params.VideoBitrate),
		"-c:v", "libx264",
		"-preset", f.cfg.Preset,
		"-crf", strconv.Itoa(f.cfg.CRF),
		"-c:a", "aac",
		"-b:a", fmt.Sprintf("%dk", f.cfg.AudioBitrate),
		"-y",
		outputPath,
	}

	log.Printf("Converting video: %s -> %s (quality %s)", inputPath, outputPath, quality)

	if _, err := f.run(ctx, f.cfg.ConvertTimeout, f.cfg.FFmpegPath, args...); err != nil {
		return "", err
	}

	if _, err := os.Stat(outputPath); os.IsNotExist(err) {
		return "", errs.ErrOutputMissing(outputPath)
	}

	return outputPath, nil
}

// run executes one subprocess under a timeout, draining both output
// streams fully before inspecting the exit code.
func (f *FFmpeg) run(ctx context.Context, timeout time.Duration, name string, args ...string) ([]byte, error) {
	runCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return nil, errs.ErrToolExecution(fmt.Errorf("%s timed out after %s", name, timeout))
		}
		return nil, errs.ErrToolExecution(fmt.Errorf("%s failed: %w: %s", name, err, strings.TrimSpace(stderr.String())))
	}

	return stdout.Bytes(), nil
}

type probeFormat struct {
	Duration string `json:"duration"`
	Size     string `json:"size"`
	BitRate  string `json:"bit_rate"`
}

type probeStream struct {
	CodecType string `json:"codec_type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	BitRate   string `json:"bit_rate"`
}

type probeOutput struct {
	Format  probeFormat   `json:"format"`
	Streams []probeStream `json:"streams"`
}

// parseProbeOutput extracts metadata from ffprobe JSON. The first video
// stream is authoritative; a missing audio stream is tolerated with a
// default bitrate. Stream bitrate falls back to the container bitrate,
// container size falls back to the filesystem size.
func parseProbeOutput(data []byte, path string) (*dto.VideoInfo, error) {
	var probed probeOutput
	if err := json.Unmarshal(data, &probed); err != nil {
		return nil, errs.ErrToolExecution(fmt.Errorf("failed to parse ffprobe output: %w", err))
	}

	var videoStream, audioStream *probeStream
	for i := range probed.Streams {
		stream := &probed.Streams[i]
		switch stream.CodecType {
		case "video":
			if videoStream == nil {
				videoStream = stream
			}
		case "audio":
			if audioStream == nil {
				audioStream = stream
			}
		}
	}

	if videoStream == nil {
		return nil, errs.ErrNoVideoStream(path)
	}

	resolution := "unknown"
	if videoStream.Width > 0 && videoStream.Height > 0 {
		resolution = fmt.Sprintf("%dx%d", videoStream.Width, videoStream.Height)
	}

	durationSeconds, _ := strconv.ParseFloat(probed.Format.Duration, 64)
	duration := int(math.Round(durationSeconds))

	containerBitrate := parseBitrate(probed.Format.BitRate)
	videoBitrate := parseBitrate(videoStream.BitRate)
	if videoBitrate == 0 {
		videoBitrate = containerBitrate
	}

	audioBitrate := defaultAudioBitrateKbps
	if audioStream != nil {
		if parsed := parseBitrate(audioStream.BitRate); parsed > 0 {
			audioBitrate = parsed
		}
	}

	fileSize, _ := strconv.ParseInt(probed.Format.Size, 10, 64)
	if fileSize == 0 {
		if info, err := os.Stat(path); err == nil {
			fileSize = info.Size()
		} else {
			log.Printf("Failed to get file size from filesystem: %v", err)
		}
	}

	return &dto.VideoInfo{
		Duration:     duration,
		FileSize:     fileSize,
		BitrateVideo: videoBitrate,
		BitrateAudio: audioBitrate,
		Resolution:   resolution,
	}, nil
}

// parseBitrate converts a bit/s string from ffprobe into kbps.
func parseBitrate(value string) int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed / 1000
}

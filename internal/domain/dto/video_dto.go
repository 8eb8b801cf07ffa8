package dto

import "time"

type VideoUploadResponse struct {
	VideoID string `json:"video_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type VideoStatusResponse struct {
	VideoID string `json:"video_id"`
	Status  string `json:"status"`
}

type VideoQualityResponse struct {
	Quality      string    `json:"quality"`
	StoragePath  string    `json:"storage_path"`
	FileSize     int64     `json:"file_size"`
	Duration     int       `json:"duration"`
	BitrateVideo int       `json:"bitrate_video"`
	BitrateAudio int       `json:"bitrate_audio"`
	Resolution   string    `json:"resolution"`
	CreatedAt    time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// VideoInfo carries technical metadata extracted from a media file.
type VideoInfo struct {
	Duration     int    `json:"duration"` // seconds, rounded
	FileSize     int64  `json:"file_size"`
	BitrateVideo int    `json:"bitrate_video"` // kbps
	BitrateAudio int    `json:"bitrate_audio"` // kbps
	Resolution   string `json:"resolution"`    // "WxH"
}

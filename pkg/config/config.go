package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Upload     UploadConfig
	Storage    StorageConfig
	FFmpeg     FFmpegConfig
	Processing ProcessingConfig
}

type ServerConfig struct {
	Host string
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host      string
	Port      string
	StatusTTL time.Duration
}

type UploadConfig struct {
	TempDir      string
	MaxFileSize  int64 // bytes
	AllowedTypes []string
	TempMaxAge   time.Duration
}

type StorageConfig struct {
	Driver          string // "s3" or "local"
	Endpoint        string // custom endpoint for MinIO-compatible storage
	Region          string
	VideoBucket     string
	ThumbnailBucket string
	LocalDir        string
}

type FFmpegConfig struct {
	FFmpegPath     string
	FFprobePath    string
	Preset         string
	CRF            int
	AudioBitrate   int // kbps
	ConvertTimeout time.Duration
	ProbeTimeout   time.Duration
}

type ProcessingConfig struct {
	Workers        int
	QueueSize      int
	MinQualities   int // renditions required before a run may reach READY
	ThumbnailWidth int
}

func LoadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8082"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "streamflow"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:      getEnv("REDIS_HOST", "localhost"),
			Port:      getEnv("REDIS_PORT", "6379"),
			StatusTTL: getEnvAsDuration("REDIS_STATUS_TTL", 30*time.Second),
		},
		Upload: UploadConfig{
			TempDir:      getEnv("VIDEO_TEMP_DIR", "temp_videos"),
			MaxFileSize:  getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 10*1024*1024*1024), // 10GB
			AllowedTypes: strings.Split(getEnv("UPLOAD_ALLOWED_VIDEO_TYPES", "mp4,avi,mov,mkv,webm"), ","),
			TempMaxAge:   getEnvAsDuration("VIDEO_TEMP_MAX_AGE", 24*time.Hour),
		},
		Storage: StorageConfig{
			Driver:          getEnv("STORAGE_DRIVER", "s3"),
			Endpoint:        getEnv("STORAGE_ENDPOINT", ""),
			Region:          getEnv("STORAGE_REGION", "us-east-1"),
			VideoBucket:     getEnv("STORAGE_VIDEO_BUCKET", "streamflow-videos"),
			ThumbnailBucket: getEnv("STORAGE_THUMBNAIL_BUCKET", "streamflow-thumbnails"),
			LocalDir:        getEnv("STORAGE_LOCAL_DIR", "storage"),
		},
		FFmpeg: FFmpegConfig{
			FFmpegPath:     getEnv("FFMPEG_PATH", "ffmpeg"),
			FFprobePath:    getEnv("FFPROBE_PATH", "ffprobe"),
			Preset:         getEnv("FFMPEG_PRESET", "medium"),
			CRF:            getEnvAsInt("FFMPEG_CRF", 23),
			AudioBitrate:   getEnvAsInt("FFMPEG_AUDIO_BITRATE", 128),
			ConvertTimeout: getEnvAsDuration("FFMPEG_CONVERT_TIMEOUT", 30*time.Minute),
			ProbeTimeout:   getEnvAsDuration("FFMPEG_PROBE_TIMEOUT", time.Minute),
		},
		Processing: ProcessingConfig{
			Workers:        getEnvAsInt("PROCESSING_WORKERS", 5),
			QueueSize:      getEnvAsInt("PROCESSING_QUEUE_SIZE", 100),
			MinQualities:   getEnvAsInt("PROCESSING_MIN_QUALITIES", 0),
			ThumbnailWidth: getEnvAsInt("PROCESSING_THUMBNAIL_WIDTH", 640),
		},
	}

	if err := os.MkdirAll(config.Upload.TempDir, 0755); err != nil {
		panic(err)
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

package file

import (
	"path/filepath"
	"strings"
)

// Extension returns the lowercased file extension without the leading dot.
func Extension(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

func IsVideoFile(filename string) bool {
	switch Extension(filename) {
	case "mp4", "avi", "mov", "mkv", "webm":
		return true
	}
	return false
}

func ContentType(filename string) string {
	switch Extension(filename) {
	case "mp4":
		return "video/mp4"
	case "avi":
		return "video/x-msvideo"
	case "mov":
		return "video/quicktime"
	case "mkv":
		return "video/x-matroska"
	case "webm":
		return "video/webm"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

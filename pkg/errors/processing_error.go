package errors

import (
	"errors"
	"fmt"
)

type ProcessingError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProcessingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

var (
	ErrSourceNotFound = func(path string) *ProcessingError {
		return &ProcessingError{Code: "source_not_found", Message: "Source file not found: " + path}
	}
	ErrNoVideoStream = func(path string) *ProcessingError {
		return &ProcessingError{Code: "no_video_stream", Message: "No video stream found in file: " + path}
	}
	ErrToolExecution = func(err error) *ProcessingError {
		return &ProcessingError{Code: "tool_execution", Message: "Media tool execution failed", Err: err}
	}
	ErrOutputMissing = func(path string) *ProcessingError {
		return &ProcessingError{Code: "output_missing", Message: "Output file was not created: " + path}
	}
	ErrQualityProcessing = func(quality string, err error) *ProcessingError {
		return &ProcessingError{Code: "quality_processing", Message: "Failed to process quality " + quality, Err: err}
	}
	ErrOrchestration = func(err error) *ProcessingError {
		return &ProcessingError{Code: "orchestration_failed", Message: "Video processing run failed", Err: err}
	}
	ErrEmptyFile = func() *ProcessingError {
		return &ProcessingError{Code: "empty_file", Message: "Video file is required"}
	}
	ErrFileTooLarge = func(sizeMB, maxMB int64) *ProcessingError {
		return &ProcessingError{Code: "file_too_large", Message: fmt.Sprintf("File size %d MB exceeds maximum allowed size %d MB", sizeMB, maxMB)}
	}
	ErrInvalidFileType = func(ext string) *ProcessingError {
		return &ProcessingError{Code: "invalid_file_type", Message: "File type is not allowed: " + ext}
	}
	ErrVideoNotFound = func(id string) *ProcessingError {
		return &ProcessingError{Code: "video_not_found", Message: "Video not found: " + id}
	}
	ErrStorageUpload = func(err error) *ProcessingError {
		return &ProcessingError{Code: "storage_upload", Message: "Failed to upload file to storage", Err: err}
	}
	ErrInternal = func(err error) *ProcessingError {
		return &ProcessingError{Code: "internal_error", Message: "Internal server error", Err: err}
	}
)

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code string) bool {
	var pe *ProcessingError
	for errors.As(err, &pe) {
		if pe.Code == code {
			return true
		}
		err = pe.Err
		if err == nil {
			return false
		}
	}
	return false
}

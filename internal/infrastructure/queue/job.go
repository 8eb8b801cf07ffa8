package queue

import "github.com/google/uuid"

// TranscodeJob is one unit of asynchronous work: drive a single uploaded
// video through the full transcoding run.
type TranscodeJob struct {
	VideoID      uuid.UUID
	OriginalPath string
}

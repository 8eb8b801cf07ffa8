package repositories

// StorageStrategy abstracts the durable object storage backend.
type StorageStrategy interface {
	// UploadFile stores a local file under the given bucket and returns
	// the resulting storage path ("bucket/key").
	UploadFile(localPath, bucket string) (string, error)
	DeleteFile(bucket, key string) error
}

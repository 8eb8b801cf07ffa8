package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage keeps files on the local filesystem, mirroring the
// bucket/key layout. Used for development and tests.
type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir}
}

func (s *LocalStorage) UploadFile(localPath, bucket string) (string, error) {
	key := objectKey(localPath)
	dst := filepath.Join(s.baseDir, bucket, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}

	in, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", localPath, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return "", err
	}
	if err := out.Sync(); err != nil {
		return "", err
	}

	return bucket + "/" + key, nil
}

func (s *LocalStorage) DeleteFile(bucket, key string) error {
	return os.Remove(filepath.Join(s.baseDir, bucket, filepath.FromSlash(key)))
}

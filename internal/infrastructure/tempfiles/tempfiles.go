package tempfiles

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/KUD2IP/StreamFlow/internal/domain/entities"
)

// Manager owns the temporary workspace directories used during one
// processing run. Each video gets its own directory keyed by video id.
type Manager struct {
	root string
}

func NewManager(root string) *Manager {
	return &Manager{root: root}
}

// WorkspaceDir returns the workspace directory for a video.
func (m *Manager) WorkspaceDir(videoID uuid.UUID) string {
	return filepath.Join(m.root, videoID.String())
}

// PathFor returns the output path for one quality level. Pure function,
// no filesystem access.
func (m *Manager) PathFor(videoID uuid.UUID, quality entities.Quality) string {
	return filepath.Join(m.root, videoID.String(), quality.Lower()+".mp4")
}

// OriginalPath returns the path the uploaded original is stored under.
func (m *Manager) OriginalPath(videoID uuid.UUID, ext string) string {
	return filepath.Join(m.root, videoID.String(), "original."+ext)
}

// DeleteWorkspace removes a video's workspace with everything in it.
// A missing directory is not an error; removal failures are logged and
// swallowed so they never abort the surrounding run.
func (m *Manager) DeleteWorkspace(videoID uuid.UUID) {
	dir := m.WorkspaceDir(videoID)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		log.Printf("Temp workspace does not exist: %s", dir)
		return
	}

	if err := os.RemoveAll(dir); err != nil {
		log.Printf("Failed to delete temp workspace %s: %v", dir, err)
		return
	}

	log.Printf("Temp workspace deleted: %s", dir)
}

// SweepOlderThan removes workspaces untouched for longer than maxAge.
// Covers runs that crashed between dispatch and cleanup.
func (m *Manager) SweepOlderThan(maxAge time.Duration) error {
	entries, err := os.ReadDir(m.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	now := time.Now()
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dirPath := filepath.Join(m.root, entry.Name())
		info, err := os.Stat(dirPath)
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > maxAge {
			if err := os.RemoveAll(dirPath); err != nil {
				log.Printf("Failed to remove stale workspace %s: %v", dirPath, err)
				continue
			}
			log.Printf("Removed stale workspace: %s", dirPath)
		}
	}
	return nil
}

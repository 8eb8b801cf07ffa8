package usecases

import "time"

// CleanupService sweeps workspaces left behind by crashed runs.
type CleanupService interface {
	CleanupOldWorkspaces(maxAge time.Duration) error
}

type Sweeper interface {
	SweepOlderThan(maxAge time.Duration) error
}

type cleanupService struct {
	sweeper Sweeper
}

func NewCleanupService(sweeper Sweeper) CleanupService {
	return &cleanupService{sweeper: sweeper}
}

func (s *cleanupService) CleanupOldWorkspaces(maxAge time.Duration) error {
	return s.sweeper.SweepOlderThan(maxAge)
}

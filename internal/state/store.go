package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/objspace/pkg/objspace"
)

// Snapshot represents the latest load result available to the viewer.
type Snapshot struct {
	Path                string
	Config              objspace.ObjectSpaceConfig
	HasConfig           bool
	LastLoaded          time.Time // Time of the last successful load
	LastAttempt         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive failed loads
}

// IsStale reports whether the config shown is older than the file on disk,
// i.e. the most recent load failed but an earlier one succeeded.
func (s Snapshot) IsStale() bool {
	return s.HasConfig && s.LastError != nil
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records the outcome of loading path. When err is non-nil the
// previously loaded config is kept but the error is recorded for visibility.
func (s *Store) Update(path string, cfg objspace.ObjectSpaceConfig, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.snapshot.Path = path
	s.snapshot.LastAttempt = now

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Config = cloneConfig(cfg)
	s.snapshot.HasConfig = true
	s.snapshot.LastLoaded = now
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Config = cloneConfig(s.snapshot.Config)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// cloneConfig copies the variance slices so callers cannot mutate the store.
func cloneConfig(cfg objspace.ObjectSpaceConfig) objspace.ObjectSpaceConfig {
	switch d := cfg.Camera.Detector.(type) {
	case objspace.Checkerboard:
		d.Variances = append([]float64(nil), d.Variances...)
		cfg.Camera.Detector = d
	case objspace.Charuco:
		d.Variances = append([]float64(nil), d.Variances...)
		cfg.Camera.Detector = d
	}
	return cfg
}

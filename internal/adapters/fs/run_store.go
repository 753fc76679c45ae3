package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/givables-xyz/givables-deploy/internal/domain"
	"github.com/givables-xyz/givables-deploy/internal/domain/config"
	"github.com/givables-xyz/givables-deploy/internal/usecase"
	"github.com/samber/lo"
)

// RunsFile holds every recorded run inside the data directory
const RunsFile = "runs.json"

// RunStoreAdapter records run reports in a JSON file under .givables
type RunStoreAdapter struct {
	dataDir string
	mu      sync.Mutex
}

// NewRunStoreAdapter creates a store rooted at the configured data directory
func NewRunStoreAdapter(cfg *config.RuntimeConfig) *RunStoreAdapter {
	return &RunStoreAdapter{dataDir: cfg.DataDir}
}

// SaveRun appends a report, replacing any earlier report with the same id
func (s *RunStoreAdapter) SaveRun(ctx context.Context, report *domain.RunReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs, err := s.load()
	if err != nil {
		return err
	}

	runs = lo.Reject(runs, func(r *domain.RunReport, _ int) bool { return r.ID == report.ID })
	runs = append(runs, report)

	return s.save(runs)
}

// ListRuns returns the recorded runs matching the filter
func (s *RunStoreAdapter) ListRuns(ctx context.Context, filter domain.RunFilter) ([]*domain.RunReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs, err := s.load()
	if err != nil {
		return nil, err
	}

	return lo.Filter(runs, func(r *domain.RunReport, _ int) bool {
		if filter.Network != "" && r.Network != filter.Network {
			return false
		}
		if filter.Plan != "" && r.Plan != filter.Plan {
			return false
		}
		return true
	}), nil
}

func (s *RunStoreAdapter) path() string {
	return filepath.Join(s.dataDir, RunsFile)
}

// load reads the runs file; a missing file is an empty history
func (s *RunStoreAdapter) load() ([]*domain.RunReport, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", RunsFile, err)
	}

	var runs []*domain.RunReport
	if err := json.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", RunsFile, err)
	}
	return runs, nil
}

// save writes the runs file through a temp file and rename
func (s *RunStoreAdapter) save(runs []*domain.RunReport) error {
	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.dataDir, err)
	}

	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := s.path() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.path())
}

// Ensure the adapter implements the interface
var _ usecase.RunStore = (*RunStoreAdapter)(nil)

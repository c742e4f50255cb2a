package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	m "heurun.dev/pkg/heurun/internal/model"
)

// summaryFileName is the file a run's summary is persisted under.
const summaryFileName = "last_run.yaml"

// ReportStore persists run summaries so a finished run can be reviewed later.
type ReportStore interface {
	Save(dir string, summary m.RunSummary) error
	Load(dir string) (m.RunSummary, error)
}

// YAMLReportStore implements ReportStore with one YAML file per store
// directory, overwritten on every run.
type YAMLReportStore struct{}

// NewYAMLReportStore constructs a YAMLReportStore.
func NewYAMLReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// Save writes the summary to <dir>/last_run.yaml, creating dir as needed.
func (s *YAMLReportStore) Save(dir string, summary m.RunSummary) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report store %s: %w", dir, err)
	}

	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal run summary: %w", err)
	}

	path := filepath.Join(dir, summaryFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write run summary %s: %w", path, err)
	}

	return nil
}

// Load reads the summary persisted by the previous run.
func (s *YAMLReportStore) Load(dir string) (m.RunSummary, error) {
	path := filepath.Join(dir, summaryFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return m.RunSummary{}, fmt.Errorf("read run summary %s: %w", path, err)
	}

	var summary m.RunSummary
	if err := yaml.Unmarshal(data, &summary); err != nil {
		return m.RunSummary{}, fmt.Errorf("unmarshal run summary %s: %w", path, err)
	}

	return summary, nil
}

package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	m "heurun.dev/pkg/heurun/internal/model"
)

// CaseFS abstracts the case file layout on disk: input files read from the
// input directory, output files written to the output directory, both named
// <case:04d>.txt.
type CaseFS interface {
	// DetectCases returns the maximal contiguous range of case IDs, starting
	// at 0, for which an input file exists under inDir. No files (or no
	// directory) is an empty result, not an error.
	DetectCases(inDir string) ([]m.CaseID, error)
	InputPath(inDir string, id m.CaseID) string
	OutputPath(outDir string, id m.CaseID) string
	// WriteOutput writes a case's output artifact, creating parent
	// directories as needed.
	WriteOutput(path string, data string) error
}

// LocalCaseFS implements CaseFS on the local filesystem.
type LocalCaseFS struct{}

// NewLocalCaseFS constructs a LocalCaseFS.
func NewLocalCaseFS() *LocalCaseFS {
	return &LocalCaseFS{}
}

// DetectCases probes <inDir>/0000.txt, 0001.txt, … until the first gap.
func (fs *LocalCaseFS) DetectCases(inDir string) ([]m.CaseID, error) {
	var cases []m.CaseID

	for id := m.CaseID(0); ; id++ {
		_, err := os.Stat(fs.InputPath(inDir, id))
		if err != nil {
			if os.IsNotExist(err) {
				return cases, nil
			}

			return nil, fmt.Errorf("detect cases in %s: %w", inDir, err)
		}

		cases = append(cases, id)
	}
}

// InputPath returns the input file path of a case.
func (fs *LocalCaseFS) InputPath(inDir string, id m.CaseID) string {
	return filepath.Join(inDir, id.FileName())
}

// OutputPath returns the output file path of a case.
func (fs *LocalCaseFS) OutputPath(outDir string, id m.CaseID) string {
	return filepath.Join(outDir, id.FileName())
}

// WriteOutput writes data to path, creating parent directories as needed.
func (fs *LocalCaseFS) WriteOutput(path string, data string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir for %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}

	return nil
}

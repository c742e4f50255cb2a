package domain

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"heurun.dev/pkg/heurun/internal/adapter"
	m "heurun.dev/pkg/heurun/internal/model"
)

// Selector expands case-specification tokens into the ordered set of case
// IDs to run.
type Selector interface {
	// Select returns the ascending, duplicate-free union of the given
	// tokens. With no tokens it falls back to auto-detection from the input
	// directory; an empty detection result is not an error.
	Select(tokens []string) ([]m.CaseID, error)
}

type selector struct {
	fs    adapter.CaseFS
	inDir string
}

// NewSelector constructs a Selector that auto-detects cases under inDir when
// no tokens are supplied.
func NewSelector(fs adapter.CaseFS, inDir string) Selector {
	return &selector{fs: fs, inDir: inDir}
}

func (s *selector) Select(tokens []string) ([]m.CaseID, error) {
	if len(tokens) == 0 {
		cases, err := s.fs.DetectCases(s.inDir)
		if err != nil {
			return nil, err
		}

		slog.Debug("Auto-detected cases", "inDir", s.inDir, "count", len(cases))

		return cases, nil
	}

	return ParseCaseTokens(tokens)
}

// ParseCaseTokens expands tokens into the ascending, duplicate-free union of
// the case IDs they describe. Each token is a single non-negative integer or
// an inclusive range "lo-hi" with lo <= hi. A malformed token fails the whole
// parse with ErrInvalidCaseSpec; no partial result is returned.
func ParseCaseTokens(tokens []string) ([]m.CaseID, error) {
	seen := make(map[m.CaseID]struct{})

	for _, token := range tokens {
		lo, hi, err := parseCaseToken(token)
		if err != nil {
			return nil, err
		}

		for id := lo; id <= hi; id++ {
			seen[id] = struct{}{}
		}
	}

	cases := make([]m.CaseID, 0, len(seen))
	for id := range seen {
		cases = append(cases, id)
	}

	sort.Slice(cases, func(i, j int) bool { return cases[i] < cases[j] })

	return cases, nil
}

func parseCaseToken(token string) (m.CaseID, m.CaseID, error) {
	lo, hi, isRange := strings.Cut(token, "-")

	loID, err := parseCaseID(lo)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: token %q: %v", ErrInvalidCaseSpec, token, err)
	}

	if !isRange {
		return loID, loID, nil
	}

	hiID, err := parseCaseID(hi)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: token %q: %v", ErrInvalidCaseSpec, token, err)
	}

	if loID > hiID {
		return 0, 0, fmt.Errorf("%w: token %q: range start exceeds end", ErrInvalidCaseSpec, token)
	}

	return loID, hiID, nil
}

func parseCaseID(s string) (m.CaseID, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}

	return m.CaseID(n), nil
}

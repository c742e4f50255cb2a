package model

import "time"

// RunSummary is the persisted form of a run's Report, written after every
// run so it can be reviewed later with the view command.
type RunSummary struct {
	StartedAt time.Time     `yaml:"started_at"`
	Threads   int           `yaml:"threads"`
	Total     uint64        `yaml:"total"`
	Cases     []CaseSummary `yaml:"cases"`
}

// CaseSummary is one case's line in a persisted run summary.
type CaseSummary struct {
	Case       uint32  `yaml:"case"`
	Score      *uint64 `yaml:"score,omitempty"`
	ElapsedSec float64 `yaml:"elapsed_sec"`
	Evaluated  bool    `yaml:"evaluated"`
	Failure    string  `yaml:"failure,omitempty"`
	Detail     string  `yaml:"detail,omitempty"`
	Comments   string  `yaml:"comments,omitempty"`
}

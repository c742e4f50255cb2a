package model

// RunConfig holds the fully resolved execution parameters of one run. It is
// created once by the configuration layer and shared read-only by all
// concurrent case executions.
type RunConfig struct {
	Build  BuildConfig
	Test   TestConfig
	Report ReportConfig
}

// BuildConfig controls the run-once build step that precedes the worker pool.
type BuildConfig struct {
	Enable  bool
	Command Command
}

// TestConfig controls per-case execution.
type TestConfig struct {
	// Bin is the solver command. The case's input file is attached to its
	// standard input and its standard output becomes the case's output file.
	Bin Command
	// Threads is the worker pool size, minimum 1.
	Threads int
	// NoEvaluate skips the scoring step entirely; cases carry no score.
	NoEvaluate bool
	// UseTester replaces the solve and evaluate steps with a single combined
	// tester invocation.
	UseTester bool
	// InDir holds input files named <case:04d>.txt.
	InDir string
	// OutDir receives output files named <case:04d>.txt.
	OutDir string
	// Vis is the visualizer command; the input and output file paths are
	// appended as its final two arguments.
	Vis Command
	// Tester is the combined tester command; the solver command is appended
	// to its arguments.
	Tester Command
	// ScoreRegex extracts the numeric score from the scoring text. Exactly
	// one capture group, parsed as an unsigned integer.
	ScoreRegex string
	// CommentRegex extracts comment text from each line of the solver's
	// standard error. Exactly one capture group.
	CommentRegex string
}

// ReportConfig controls report handling around the core run.
type ReportConfig struct {
	// MaxOutput truncates a case's retained raw output to this many bytes.
	// Zero disables truncation.
	MaxOutput int
	// StoreDir is the directory run summaries are persisted under.
	StoreDir string
}

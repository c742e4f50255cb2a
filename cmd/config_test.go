package cmd

import (
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setKey overrides a viper key for one test. Overrides cannot be removed
// individually, so cleanup rebuilds the whole configuration.
func setKey(t *testing.T, key string, value any) {
	t.Helper()

	viper.Set(key, value)
	t.Cleanup(func() {
		viper.Reset()
		initViperConfig()
	})
}

func TestResolveRunConfig_Defaults(t *testing.T) {
	cfg, err := resolveRunConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Build.Enable)
	assert.False(t, cfg.Build.Command.IsZero())
	assert.Equal(t, "./bin/solver", cfg.Test.Bin.Program)
	assert.Equal(t, "./tools/in", cfg.Test.InDir)
	assert.Equal(t, "./tools/out", cfg.Test.OutDir)
	assert.Equal(t, `Score = (\d+)`, cfg.Test.ScoreRegex)
	assert.Equal(t, 1<<20, cfg.Report.MaxOutput)
	assert.Equal(t, ".heurun", cfg.Report.StoreDir)

	// Default mode scores with the visualizer.
	assert.False(t, cfg.Test.Vis.IsZero())
	assert.True(t, cfg.Test.Tester.IsZero())
}

func TestResolveRunConfig_TesterMode(t *testing.T) {
	setKey(t, testUseTesterKey, true)
	setKey(t, testTesterKey, "cargo run -r --bin tester")

	cfg, err := resolveRunConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Test.UseTester)
	assert.Equal(t, "cargo", cfg.Test.Tester.Program)
	assert.Equal(t, []string{"run", "-r", "--bin", "tester"}, cfg.Test.Tester.Args)
	assert.True(t, cfg.Test.Vis.IsZero())
}

func TestResolveRunConfig_NoEvaluateNeedsNoScorer(t *testing.T) {
	setKey(t, testNoEvaluateKey, true)
	// Unparseable scorer commands must not matter when scoring is off.
	setKey(t, testVisKey, `"unterminated`)
	setKey(t, testTesterKey, `"unterminated`)

	cfg, err := resolveRunConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Test.NoEvaluate)
	assert.True(t, cfg.Test.Vis.IsZero())
	assert.True(t, cfg.Test.Tester.IsZero())
}

func TestResolveRunConfig_BuildDisabledSkipsBuildCommand(t *testing.T) {
	setKey(t, buildEnableKey, false)
	setKey(t, buildCommandKey, "")

	cfg, err := resolveRunConfig()
	require.NoError(t, err)

	assert.False(t, cfg.Build.Enable)
	assert.True(t, cfg.Build.Command.IsZero())
}

func TestResolveRunConfig_EmptyBinFails(t *testing.T) {
	setKey(t, testBinKey, "")

	_, err := resolveRunConfig()
	require.Error(t, err)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"8", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo), "value %q", tt.value)
	}
}

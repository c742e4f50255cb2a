package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()

	extractor, err := NewExtractor(`Score = (\d+)`, `^# (.*)$`)
	require.NoError(t, err)

	return extractor
}

func TestNewExtractor_Validation(t *testing.T) {
	tests := []struct {
		name    string
		score   string
		comment string
	}{
		{"invalid score regex", `(`, `^# (.*)$`},
		{"invalid comment regex", `Score = (\d+)`, `(`},
		{"score without capture group", `Score = \d+`, `^# (.*)$`},
		{"comment with two capture groups", `Score = (\d+)`, `^(#) (.*)$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExtractor(tt.score, tt.comment)
			require.Error(t, err)
		})
	}
}

func TestExtractor_Score(t *testing.T) {
	extractor := newTestExtractor(t)

	score, err := extractor.Score("Score = 42")
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, uint64(42), *score)
}

func TestExtractor_ScoreMultiline(t *testing.T) {
	extractor := newTestExtractor(t)

	score, err := extractor.Score("some info\nScore = 67890\nother info")
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, uint64(67890), *score)
}

func TestExtractor_ScoreFirstMatchWins(t *testing.T) {
	extractor := newTestExtractor(t)

	score, err := extractor.Score("Score = 1\nScore = 2")
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, uint64(1), *score)
}

func TestExtractor_ScoreNoMatchIsNotAnError(t *testing.T) {
	extractor := newTestExtractor(t)

	score, err := extractor.Score("no score here")
	require.NoError(t, err)
	assert.Nil(t, score)
}

func TestExtractor_ScoreZeroIsPresent(t *testing.T) {
	extractor := newTestExtractor(t)

	score, err := extractor.Score("Score = 0")
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, uint64(0), *score)
}

func TestExtractor_ScoreParseError(t *testing.T) {
	extractor := newTestExtractor(t)

	// 21 digits: matches \d+ but overflows uint64.
	score, err := extractor.Score("Score = 999999999999999999999")
	require.Error(t, err)
	assert.Nil(t, score)

	var parseErr *ScoreParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "999999999999999999999", parseErr.Capture)
}

func TestExtractor_ScoreCustomRegex(t *testing.T) {
	extractor, err := NewExtractor(`TotalScore: (\d+)`, `^# (.*)$`)
	require.NoError(t, err)

	score, err := extractor.Score("TotalScore: 42")
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, uint64(42), *score)
}

func TestExtractor_Comments(t *testing.T) {
	extractor := newTestExtractor(t)

	comments := extractor.Comments("# ok\nnoise\n# done\n")
	assert.Equal(t, []string{"ok", "done"}, comments)
}

func TestExtractor_CommentsNone(t *testing.T) {
	extractor := newTestExtractor(t)

	assert.Empty(t, extractor.Comments("no comments here\n"))
	assert.Empty(t, extractor.Comments(""))
}

func TestExtractor_CommentsCustomRegex(t *testing.T) {
	extractor, err := NewExtractor(`Score = (\d+)`, `^\[cmt\] (.*)$`)
	require.NoError(t, err)

	comments := extractor.Comments("[cmt] hello\n[cmt] world\n")
	assert.Equal(t, []string{"hello", "world"}, comments)
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseID_Formatting(t *testing.T) {
	assert.Equal(t, "0000", CaseID(0).String())
	assert.Equal(t, "0042", CaseID(42).String())
	assert.Equal(t, "12345", CaseID(12345).String())

	assert.Equal(t, "0007.txt", CaseID(7).FileName())
}

func TestCaseResult_Failed(t *testing.T) {
	assert.False(t, CaseResult{}.Failed())
	assert.True(t, CaseResult{Failure: FailureSolver}.Failed())
	assert.True(t, CaseResult{Failure: FailureEvaluation}.Failed())
}

func TestFailureReason_String(t *testing.T) {
	assert.Equal(t, "none", FailureNone.String())
	assert.Equal(t, "solver", FailureSolver.String())
	assert.Equal(t, "evaluation", FailureEvaluation.String())
}

package demo

import (
	"context"
	"testing"

	"github.com/abdul-hamid-achik/should/packages/core/runner"
	"github.com/abdul-hamid-achik/should/packages/judge"
	"github.com/abdul-hamid-achik/should/packages/should"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateDiscount(t *testing.T) {
	tests := []struct {
		name     string
		age      int
		student  bool
		expected float64
	}{
		{"minor", 16, false, 0.2},
		{"student", 20, true, 0.1},
		{"minor beats student", 16, true, 0.2},
		{"neither", 30, false, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateDiscount(tt.age, tt.student))
		})
	}
}

func TestPriceQuote(t *testing.T) {
	q := PriceQuote(100, 0.2)

	assert.Equal(t, 100.0, q.Original)
	assert.InDelta(t, 80.0, q.Final, 1e-9)
	assert.InDelta(t, 20.0, q.Saved, 1e-9)
}

func TestUserLevel(t *testing.T) {
	assert.Equal(t, "excellent", UserLevel(95))
	assert.Equal(t, "good", UserLevel(80))
	assert.Equal(t, "pass", UserLevel(60))
	assert.Equal(t, "fail", UserLevel(40))
}

func TestSuite_RunsAgainstAStub(t *testing.T) {
	stub := &judge.StubClient{Response: "PASS"}
	checks := Suite(should.WithClient(stub))
	require.Len(t, checks, 9)

	summary := runner.Run(context.Background(), checks)

	assert.Equal(t, len(checks), summary.Passed)
	assert.Zero(t, summary.Failed)
	assert.Zero(t, summary.Errored)
	assert.Equal(t, len(checks), stub.Calls())
}

func TestSuite_FailingJudge(t *testing.T) {
	stub := &judge.StubClient{Response: "FAIL: the evidence does not satisfy the condition"}
	checks := Suite(should.WithClient(stub))

	summary := runner.Run(context.Background(), checks)

	assert.Zero(t, summary.Passed)
	assert.Equal(t, len(checks), summary.Failed)
	for _, res := range summary.Results {
		assert.Contains(t, res.Reason, "does not satisfy")
	}
}

func TestSuite_EvidenceFlowsToTheJudge(t *testing.T) {
	stub := &judge.StubClient{Response: "PASS"}
	checks := Suite(should.WithClient(stub))

	// register_minor is first; its printed evidence must reach the judge.
	_, err := checks[0].Run(context.Background())
	require.NoError(t, err)

	sent := stub.LastPrompt()
	assert.Contains(t, sent, "minor registration attempt")
	assert.Contains(t, sent, "registration succeeded")
}

package eamvu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisitStatusTransitions(t *testing.T) {
	vs := VisitPending
	assert.Equal(t, "Pending", vs.String())

	vs = vs.Start()
	assert.Equal(t, VisitInProgress, vs)

	vs = vs.MarkVisited()
	assert.Equal(t, VisitCompleted, vs)
}

func TestVisitStatusCompletedIsTerminal(t *testing.T) {
	vs := VisitCompleted
	assert.Equal(t, VisitCompleted, vs.Start())
	assert.Equal(t, VisitCompleted, vs.MarkVisited())
}

func TestVisitStatusMarkVisitedOnlyFromInProgress(t *testing.T) {
	assert.Equal(t, VisitPending, VisitPending.MarkVisited())
	assert.Equal(t, VisitInProgress, VisitInProgress.Start())
}

func TestVisitStatusColor(t *testing.T) {
	assert.Equal(t, "#f59e0b", VisitPending.Color())
	assert.Equal(t, "#3b82f6", VisitInProgress.Color())
	assert.Equal(t, "#10b981", VisitCompleted.Color())
	assert.Equal(t, FallbackColor, VisitStatusColor("no-such-state"))
}

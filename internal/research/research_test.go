package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartProject(t *testing.T) {
	r := New(100)

	assert.True(t, r.StartProject("Basic Equipment"))
	assert.Equal(t, "Basic Equipment", r.Current)

	// Only one project may be active.
	assert.False(t, r.StartProject("Advanced Sensors"))
}

func TestStartCompletedProjectFails(t *testing.T) {
	r := New(100)
	r.StartProject("Basic Equipment")
	r.AdvanceProject(100)

	assert.False(t, r.StartProject("Basic Equipment"))
	assert.True(t, r.StartProject("Advanced Sensors"))
}

func TestAdvanceWithNoActiveProjectFails(t *testing.T) {
	r := New(100)

	completed, ok := r.AdvanceProject(10)

	assert.False(t, ok)
	assert.False(t, completed)
	assert.Zero(t, r.Progress)
}

func TestAdvanceExactlyToCostCompletes(t *testing.T) {
	r := New(100)
	r.StartProject("Ghost Containment")

	completed, ok := r.AdvanceProject(90)
	assert.True(t, ok)
	assert.False(t, completed)
	assert.Equal(t, 90, r.Progress)

	completed, ok = r.AdvanceProject(10)
	assert.True(t, ok)
	assert.True(t, completed)

	assert.Empty(t, r.Current)
	assert.Zero(t, r.Progress)
	assert.Equal(t, []string{"Ghost Containment"}, r.Completed)
	assert.True(t, r.IsCompleted("Ghost Containment"))
}

func TestCompletionIsIdempotent(t *testing.T) {
	r := New(100)
	r.StartProject("Psychic Training")
	r.AdvanceProject(250) // overshoot still completes once

	assert.Equal(t, []string{"Psychic Training"}, r.Completed)

	// It can never be completed a second time.
	assert.False(t, r.StartProject("Psychic Training"))
	assert.Equal(t, []string{"Psychic Training"}, r.Completed)
}

func TestAvailableFiltersCompleted(t *testing.T) {
	r := New(100)
	projects := []string{"A", "B", "C"}

	r.StartProject("B")
	r.AdvanceProject(100)

	assert.Equal(t, []string{"A", "C"}, r.Available(projects))
}

func TestFraction(t *testing.T) {
	r := New(100)

	assert.Zero(t, r.Fraction())

	r.StartProject("A")
	r.AdvanceProject(25)
	assert.InDelta(t, 0.25, r.Fraction(), 1e-9)
}

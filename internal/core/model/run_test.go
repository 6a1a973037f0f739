package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultRun(t *testing.T) {
	run := NewDefaultRun()
	assert.Equal(t, DefaultGame, run.Game)
	assert.Equal(t, DefaultCategory, run.Category)
	assert.Equal(t, []string{"Split 1", "Split 2", "Split 3"}, run.Segments)
}

func TestNormalizeFillsEmptyFields(t *testing.T) {
	run := &Run{}
	run.Normalize()
	assert.Equal(t, DefaultGame, run.Game)
	assert.Equal(t, DefaultCategory, run.Category)
	assert.Equal(t, []string{DefaultSegment}, run.Segments)
	assert.Equal(t, 1, run.SegmentCount())
}

func TestCloneIsIndependent(t *testing.T) {
	run := NewDefaultRun()
	cloned := run.Clone()
	cloned.Segments[0] = "changed"
	assert.Equal(t, "Split 1", run.Segments[0])
}

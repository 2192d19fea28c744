package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeedsRebuild(t *testing.T) {
	base := Inputs{Spec: "1:a,2:b", Host: "a"}

	assert.False(t, NeedsRebuild(base, base))
	assert.True(t, NeedsRebuild(base, Inputs{Spec: "1:a", Host: "a"}))
	assert.True(t, NeedsRebuild(base, Inputs{Spec: "1:a,2:b", Host: "b"}))
}

func TestDetector(t *testing.T) {
	var d Detector

	next := Inputs{Spec: "1:a", Host: "a"}
	assert.True(t, d.NeedsRebuild(next), "first cycle must rebuild")

	_, ok := d.Last()
	assert.False(t, ok)

	d.Commit(next)
	assert.False(t, d.NeedsRebuild(next))
	assert.False(t, d.NeedsRebuild(Inputs{Spec: "1:a", Host: "a"}))

	last, ok := d.Last()
	assert.True(t, ok)
	assert.Equal(t, next, last)

	assert.True(t, d.NeedsRebuild(Inputs{Spec: "1:a", Host: "b"}))
	assert.True(t, d.NeedsRebuild(Inputs{Spec: "2:a", Host: "a"}))
}

func TestDetector_EmptyInputsStillRebuildOnce(t *testing.T) {
	var d Detector

	assert.True(t, d.NeedsRebuild(Inputs{}))
	d.Commit(Inputs{})
	assert.False(t, d.NeedsRebuild(Inputs{}))
}

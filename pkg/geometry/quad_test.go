package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
)

func TestQuadHitsCenterStraightOn(t *testing.T) {
	mat := material.NewDiffuse(core.NewV3(0.5, 0.5, 0.5))
	q := NewQuad(core.NewV3(-1, -1, 0), core.NewV3(2, 0, 0), core.NewV3(0, 2, 0), mat)

	ray := core.NewRay(core.NewV3(0, 0, 5), core.NewV3(0, 0, -1))
	hit, ok := q.Hit(ray, TMin, 1e9)

	assert.True(t, ok)
	assert.InDelta(t, 5.0, hit.T, 1e-9)
	assert.Equal(t, core.NewV3(0, 0, 0), hit.Point)
}

func TestQuadMissesOutsideEdges(t *testing.T) {
	mat := material.NewDiffuse(core.NewV3(0.5, 0.5, 0.5))
	q := NewQuad(core.NewV3(-1, -1, 0), core.NewV3(2, 0, 0), core.NewV3(0, 2, 0), mat)

	ray := core.NewRay(core.NewV3(5, 5, 5), core.NewV3(0, 0, -1))
	_, ok := q.Hit(ray, TMin, 1e9)

	assert.False(t, ok)
}

func TestQuadMissesParallelRay(t *testing.T) {
	mat := material.NewDiffuse(core.NewV3(0.5, 0.5, 0.5))
	q := NewQuad(core.NewV3(-1, -1, 0), core.NewV3(2, 0, 0), core.NewV3(0, 2, 0), mat)

	ray := core.NewRay(core.NewV3(0, 0, 5), core.NewV3(1, 0, 0))
	_, ok := q.Hit(ray, TMin, 1e9)

	assert.False(t, ok)
}

func TestQuadBoundingBoxContainsAllCorners(t *testing.T) {
	mat := material.NewDiffuse(core.NewV3(0.5, 0.5, 0.5))
	q := NewQuad(core.NewV3(-1, -1, 0), core.NewV3(2, 0, 0), core.NewV3(0, 2, 0), mat)

	box := q.BoundingBox()

	assert.Equal(t, core.NewV3(-1, -1, 0), box.Min)
	assert.Equal(t, core.NewV3(1, 1, 0), box.Max)
}

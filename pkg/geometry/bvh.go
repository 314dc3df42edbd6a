package geometry

import (
	"math/rand"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
)

// bvhNode is an internal BVH node: either a leaf holding exactly one
// TimeShape, or an internal node with two children. box is the node's
// time-swept AABB over the BVH's [startTime, endTime] interval.
type bvhNode struct {
	box         AABB
	left, right *bvhNode
	shape       TimeShape
	splitAxis   int
}

func (n *bvhNode) isLeaf() bool {
	return n.shape != nil
}

// BVH accelerates ray/scene intersection over a static set of shapes
// (a shape's identity and extent are fixed; only its position at
// intersection time may vary, per TimeShape). It never stores Plane;
// planes are tested separately with a linear scan, since an infinite
// plane has no useful bounding box.
type BVH struct {
	root               *bvhNode
	startTime, endTime float64
}

// NewBVH builds a BVH over shapes, whose leaf AABBs are each shape's
// swept bounding box across [startTime, endTime]. Construction picks a
// uniformly random split axis at every internal node rather than the
// longest axis: this keeps the tree shape unbiased by scene layout and
// the construction code trivial, at the cost of some traversal
// efficiency on pathological scenes.
func NewBVH(shapes []TimeShape, startTime, endTime float64, rng *rand.Rand) *BVH {
	if len(shapes) == 0 {
		return &BVH{root: nil, startTime: startTime, endTime: endTime}
	}

	shapesCopy := make([]TimeShape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{
		root:      buildNode(shapesCopy, startTime, endTime, rng),
		startTime: startTime,
		endTime:   endTime,
	}
}

func buildNode(shapes []TimeShape, startTime, endTime float64, rng *rand.Rand) *bvhNode {
	box := shapes[0].SweptBoundingBox(startTime, endTime)
	for _, s := range shapes[1:] {
		box = box.Union(s.SweptBoundingBox(startTime, endTime))
	}

	if len(shapes) == 1 {
		return &bvhNode{box: box, shape: shapes[0]}
	}

	axis := rng.Intn(3)
	left, right := partitionByAxisMedian(shapes, startTime, endTime, axis)

	// A degenerate partition (every shape landed on one side, e.g. because
	// all centers coincide on this axis) still makes progress by falling
	// back to a simple positional split.
	if len(left) == 0 || len(right) == 0 {
		mid := len(shapes) / 2
		left, right = shapes[:mid], shapes[mid:]
	}

	return &bvhNode{
		box:       box,
		left:      buildNode(left, startTime, endTime, rng),
		right:     buildNode(right, startTime, endTime, rng),
		splitAxis: axis,
	}
}

// partitionByAxisMedian splits shapes into two halves by their swept
// bounding-box center along axis, using the median as the split point.
func partitionByAxisMedian(shapes []TimeShape, startTime, endTime float64, axis int) (left, right []TimeShape) {
	centers := make([]float64, len(shapes))
	for i, s := range shapes {
		centers[i] = s.SweptBoundingBox(startTime, endTime).AxisCenter(axis)
	}
	sorted := append([]float64(nil), centers...)
	sortFloat64s(sorted)
	median := sorted[len(sorted)/2]

	for i, s := range shapes {
		if centers[i] < median {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	return left, right
}

func sortFloat64s(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// Hit traverses the BVH front-to-back: at each internal node it visits
// whichever child's AABB the ray enters first, pruning the far child once
// a closer hit is already known. A tie in entry distance favors the left
// child, matching buildNode's deterministic ordering. time selects the
// point in the shutter interval at which moving shapes are evaluated.
func (b *BVH) Hit(ray core.Ray, tMin, tMax, time float64) (*material.HitRecord, bool) {
	if b.root == nil {
		return nil, false
	}
	return hitNode(b.root, ray, tMin, tMax, time)
}

func hitNode(node *bvhNode, ray core.Ray, tMin, tMax, time float64) (*material.HitRecord, bool) {
	if !node.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.isLeaf() {
		return node.shape.HitAt(ray, tMin, tMax, time)
	}

	first, second := node.left, node.right
	if childEntryDistance(node.right, ray) < childEntryDistance(node.left, ray) {
		first, second = node.right, node.left
	}

	closest := tMax
	var best *material.HitRecord

	if hit, ok := hitNode(first, ray, tMin, closest, time); ok {
		best = hit
		closest = hit.T
	}
	if hit, ok := hitNode(second, ray, tMin, closest, time); ok {
		best = hit
	}

	return best, best != nil
}

// childEntryDistance estimates how soon the ray reaches a child's box,
// used only to order traversal front-to-back; it is not itself an
// intersection test.
func childEntryDistance(node *bvhNode, ray core.Ray) float64 {
	return node.box.Center().Subtract(ray.Origin).Dot(ray.Direction)
}

// BoundingBox returns the AABB enclosing the whole BVH, or a zero-value box
// for an empty tree.
func (b *BVH) BoundingBox() AABB {
	if b.root == nil {
		return AABB{}
	}
	return b.root.box
}

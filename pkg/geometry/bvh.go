package geometry

import (
	"sort"

	"github.com/golang/glog"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy. Both children
// are always set; a node over a single shape holds it as both children.
type BVHNode struct {
	Left        Shape
	Right       Shape
	boundingBox core.AABB
}

// NewBVH builds a hierarchy over the shapes of a list. The list itself is
// left untouched.
func NewBVH(list *HittableList) *BVHNode {
	root := NewBVHNode(list.Shapes)
	if glog.V(1) {
		stats := root.stats()
		glog.Infof("Built BVH over %d shapes: %d nodes, max depth %d", len(list.Shapes), stats.totalNodes, stats.maxDepth)
	}
	return root
}

// NewBVHNode constructs a BVH from a slice of shapes.
// An empty slice yields a node that is never hit.
func NewBVHNode(shapes []Shape) *BVHNode {
	if len(shapes) == 0 {
		return &BVHNode{boundingBox: core.EmptyAABB}
	}

	// Sorting happens in place; work on a copy so callers keep their order
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return buildBVH(shapesCopy)
}

// buildBVH recursively splits shapes at the median along the longest axis
func buildBVH(shapes []Shape) *BVHNode {
	// The node box encloses exactly these shapes, computed before splitting
	boundingBox := core.EmptyAABB
	for _, shape := range shapes {
		boundingBox = boundingBox.Union(shape.BoundingBox())
	}

	node := &BVHNode{boundingBox: boundingBox}

	switch len(shapes) {
	case 1:
		node.Left = shapes[0]
		node.Right = shapes[0]
	case 2:
		node.Left = shapes[0]
		node.Right = shapes[1]
	default:
		sortShapesByAxis(shapes, boundingBox.LongestAxis())
		mid := len(shapes) / 2
		node.Left = buildBVH(shapes[:mid])
		node.Right = buildBVH(shapes[mid:])
	}

	return node
}

// sortShapesByAxis orders shapes by the minimum of their bounding box along
// axis. Equal keys compare as unordered and the stable sort keeps their
// original relative order.
func sortShapesByAxis(shapes []Shape, axis int) {
	sort.SliceStable(shapes, func(i, j int) bool {
		return shapes[i].BoundingBox().AxisInterval(axis).Min <
			shapes[j].BoundingBox().AxisInterval(axis).Min
	})
}

// Hit tests if a ray intersects any shape in the BVH
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if n.Left == nil || !n.boundingBox.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT)

	// The right subtree only needs to beat the left hit
	rightT := rayT
	if hitLeft {
		rightT.Max = leftHit.T
	}
	rightHit, hitRight := n.Right.Hit(ray, rightT)

	// Ties go to the left subtree
	if hitRight && !(hitLeft && rightHit.T >= leftHit.T) {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox implements the Shape interface
func (n *BVHNode) BoundingBox() core.AABB {
	return n.boundingBox
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes int
	leafShapes int
	maxDepth   int
}

// stats walks the tree and collects node counts
func (n *BVHNode) stats() bvhStats {
	var stats bvhStats
	n.collectStats(0, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *bvhStats) {
	stats.totalNodes++
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	for _, child := range []Shape{n.Left, n.Right} {
		if child == nil {
			continue
		}
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.leafShapes++
		}
	}
}

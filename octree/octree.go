// Package octree implements the Barnes-Hut spatial mass aggregator used to
// approximate gravitational acceleration in O(N log N) once body counts grow
// past the direct-sum backend's budget.
package octree

import (
	"math"

	"github.com/saagar210/OrbitForge/vector3"
)

// maxDepth caps recursion so that coincident or near-coincident positions
// cannot recurse forever; beyond this depth, bodies are merged into the
// node's mass-weighted aggregate instead of being given their own leaf.
const maxDepth = 20

// Node is one cell of the octree: either an empty leaf, a single-body leaf,
// or an internal node with up to eight lazily-created children.
type Node struct {
	center   vector3.Vector3
	halfSize float64

	totalMass float64
	com       vector3.Vector3

	bodyIndex    int
	hasBodyIndex bool

	children [8]*Node
}

// NewNode returns an empty node covering the cube centered at center with
// the given half-size.
func NewNode(center vector3.Vector3, halfSize float64) *Node {
	return &Node{center: center, halfSize: halfSize}
}

func (n *Node) octant(pos vector3.Vector3) int {
	idx := 0
	if pos.X >= n.center.X {
		idx |= 1
	}
	if pos.Y >= n.center.Y {
		idx |= 2
	}
	if pos.Z >= n.center.Z {
		idx |= 4
	}
	return idx
}

func (n *Node) childCenter(octant int) vector3.Vector3 {
	q := n.halfSize * 0.5
	sx, sy, sz := -q, -q, -q
	if octant&1 != 0 {
		sx = q
	}
	if octant&2 != 0 {
		sy = q
	}
	if octant&4 != 0 {
		sz = q
	}
	return vector3.New(n.center.X+sx, n.center.Y+sy, n.center.Z+sz)
}

func (n *Node) accumulate(pos vector3.Vector3, mass float64) {
	newMass := n.totalMass + mass
	if newMass > 0 {
		n.com = vector3.New(
			(n.com.X*n.totalMass+pos.X*mass)/newMass,
			(n.com.Y*n.totalMass+pos.Y*mass)/newMass,
			(n.com.Z*n.totalMass+pos.Z*mass)/newMass,
		)
	}
	n.totalMass = newMass
}

// Insert adds the body at index idx with the given position and mass into
// the subtree rooted at n, recursing at depth+1 into children as needed.
func (n *Node) Insert(idx int, pos vector3.Vector3, mass float64, depth int) {
	if depth >= maxDepth {
		n.accumulate(pos, mass)
		return
	}

	if n.totalMass == 0 && !n.hasBodyIndex {
		n.bodyIndex = idx
		n.hasBodyIndex = true
		n.totalMass = mass
		n.com = pos
		return
	}

	if n.hasBodyIndex {
		existingIdx, existingPos, existingMass := n.bodyIndex, n.com, n.totalMass
		n.hasBodyIndex = false
		n.totalMass = 0
		n.com = vector3.Zero
		n.insertIntoChild(existingIdx, existingPos, existingMass, depth)
		n.accumulate(existingPos, existingMass)
	}

	n.insertIntoChild(idx, pos, mass, depth)
	n.accumulate(pos, mass)
}

func (n *Node) insertIntoChild(idx int, pos vector3.Vector3, mass float64, depth int) {
	oct := n.octant(pos)
	child := n.children[oct]
	if child == nil {
		child = NewNode(n.childCenter(oct), n.halfSize*0.5)
		n.children[oct] = child
	}
	child.Insert(idx, pos, mass, depth+1)
}

// ComputeAcceleration evaluates the softened gravitational acceleration on
// the body at bodyIndex located at pos, opening nodes per the Barnes-Hut
// criterion s^2 < theta^2 * d^2.
func (n *Node) ComputeAcceleration(pos vector3.Vector3, bodyIndex int, g, softeningSq, theta float64) vector3.Vector3 {
	if n.totalMass == 0 {
		return vector3.Zero
	}

	if n.hasBodyIndex {
		if n.bodyIndex == bodyIndex {
			return vector3.Zero
		}
		return directAccel(pos, n.com, n.totalMass, g, softeningSq)
	}

	diff := n.com.Sub(pos)
	distSq := diff.MagnitudeSquared() + softeningSq
	s := n.halfSize * 2
	if s*s < theta*theta*distSq {
		return directAccel(pos, n.com, n.totalMass, g, softeningSq)
	}

	accel := vector3.Zero
	for _, c := range n.children {
		if c != nil {
			accel.AddMut(c.ComputeAcceleration(pos, bodyIndex, g, softeningSq, theta))
		}
	}
	return accel
}

func directAccel(pos, otherPos vector3.Vector3, otherMass, g, softeningSq float64) vector3.Vector3 {
	diff := otherPos.Sub(pos)
	distSq := diff.MagnitudeSquared() + softeningSq
	dist := math.Sqrt(distSq)
	forceMag := g * otherMass / distSq
	return diff.Scale(forceMag / dist)
}

// Build computes the bounding cube of positions (padded by +1.0 per axis to
// avoid boundary ambiguity) and inserts every body into a fresh root node.
func Build(positions []vector3.Vector3, masses []float64) *Node {
	minX, minY, minZ := math.MaxFloat64, math.MaxFloat64, math.MaxFloat64
	maxX, maxY, maxZ := -math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64

	for _, p := range positions {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		minZ, maxZ = math.Min(minZ, p.Z), math.Max(maxZ, p.Z)
	}

	center := vector3.New((minX+maxX)*0.5, (minY+maxY)*0.5, (minZ+maxZ)*0.5)
	halfSize := math.Max(maxX-minX, math.Max(maxY-minY, maxZ-minZ))*0.5 + 1.0

	root := NewNode(center, halfSize)
	for i, p := range positions {
		root.Insert(i, p, masses[i], 0)
	}
	return root
}

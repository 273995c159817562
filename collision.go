package kine

import (
	"fmt"
	"math"

	"github.com/setanarut/vec"
)

// Contact describes the overlap of two shapes.
type Contact struct {
	// Normal is a unit vector pointing from the second shape toward the first,
	// the direction the first shape has to move to separate.
	Normal vec.Vec2
	// Depth is the penetration depth along Normal. Always > 0 for a reported contact.
	Depth float64
	// Point is the contact point in world space.
	Point vec.Vec2
}

// Flip returns the contact as seen from the other shape.
func (c Contact) Flip() Contact {
	c.Normal = c.Normal.Neg()
	return c
}

type collisionFunc func(a, b Shape) (Contact, bool)

type intersectFunc func(a, b Shape) bool

// Indexed by a.order()*shapeTypeNum + b.order(). Only the upper triangle is used;
// Collide and Intersects swap the arguments so that a.order() <= b.order().
var builtinCollisionFuncs = [shapeTypeNum * shapeTypeNum]collisionFunc{
	circleToCircle, circleToRect, noContact,
	collisionError, rectToRect, noContact,
	collisionError, collisionError, noContact,
}

var builtinIntersectFuncs = [shapeTypeNum * shapeTypeNum]intersectFunc{
	overlaps, overlaps, circleIntersectsLine,
	intersectError, overlaps, rectIntersectsLine,
	intersectError, intersectError, lineIntersectsLine,
}

// Collide runs the exact test for a pair of world-placed shapes.
//
// It reports false when the shapes do not overlap and for any pair involving a Line,
// which has no contact generation. Collide(a, b) and Collide(b, a) report the same depth
// and opposite normals.
func Collide(a, b Shape) (Contact, bool) {
	checkShape(a)
	checkShape(b)
	if a.order() > b.order() {
		c, ok := builtinCollisionFuncs[b.order()*shapeTypeNum+a.order()](b, a)
		return c.Flip(), ok
	}
	return builtinCollisionFuncs[a.order()*shapeTypeNum+b.order()](a, b)
}

// Intersects returns true if the two world-placed shapes overlap. Unlike Collide it
// supports lines.
func Intersects(a, b Shape) bool {
	checkShape(a)
	checkShape(b)
	if a.order() > b.order() {
		a, b = b, a
	}
	return builtinIntersectFuncs[a.order()*shapeTypeNum+b.order()](a, b)
}

func checkShape(s Shape) {
	switch s.(type) {
	case Circle, Rect, Line:
	default:
		panic(fmt.Sprintf("Unknown shape type %T", s))
	}
}

func collisionError(_, _ Shape) (Contact, bool) {
	panic("Shape types are not sorted")
}

func intersectError(_, _ Shape) bool {
	panic("Shape types are not sorted")
}

// TODO: segment manifolds (closest-feature normal and depth) for line pairs.
func noContact(_, _ Shape) (Contact, bool) {
	return Contact{}, false
}

func overlaps(a, b Shape) bool {
	_, ok := Collide(a, b)
	return ok
}

func circleToCircle(a, b Shape) (Contact, bool) {
	c1 := a.(Circle)
	c2 := b.(Circle)

	mindist := c1.Radius + c2.Radius
	delta := c1.Center.Sub(c2.Center)
	distsq := magSq(delta)
	if distsq >= mindist*mindist {
		return Contact{}, false
	}

	dist := math.Sqrt(distsq)
	n := vec.Vec2{X: 1, Y: 0}
	if dist != 0 {
		n = delta.Scale(1.0 / dist)
	}
	depth := mindist - dist
	return Contact{
		Normal: n,
		Depth:  depth,
		Point:  c2.Center.Add(n.Scale(c2.Radius - depth*0.5)),
	}, true
}

func circleToRect(a, b Shape) (Contact, bool) {
	circle := a.(Circle)
	bb := b.(Rect).BB()
	center := circle.Center

	closest := bb.ClampVect(center)
	delta := center.Sub(closest)
	distsq := magSq(delta)

	if distsq == 0 {
		// Center inside the rectangle: leave through the nearest edge.
		exits := [4]struct {
			d float64
			n vec.Vec2
			p vec.Vec2
		}{
			{center.X - bb.L, vec.Vec2{X: -1}, vec.Vec2{X: bb.L, Y: center.Y}},
			{bb.R - center.X, vec.Vec2{X: 1}, vec.Vec2{X: bb.R, Y: center.Y}},
			{center.Y - bb.B, vec.Vec2{Y: -1}, vec.Vec2{X: center.X, Y: bb.B}},
			{bb.T - center.Y, vec.Vec2{Y: 1}, vec.Vec2{X: center.X, Y: bb.T}},
		}
		best := 0
		for i := 1; i < len(exits); i++ {
			if exits[i].d < exits[best].d {
				best = i
			}
		}
		return Contact{
			Normal: exits[best].n,
			Depth:  circle.Radius + exits[best].d,
			Point:  exits[best].p,
		}, true
	}

	r := circle.Radius
	if distsq >= r*r {
		return Contact{}, false
	}
	dist := math.Sqrt(distsq)
	return Contact{
		Normal: delta.Scale(1.0 / dist),
		Depth:  r - dist,
		Point:  closest,
	}, true
}

func rectToRect(a, b Shape) (Contact, bool) {
	r1 := a.(Rect)
	r2 := b.(Rect)
	bb1 := r1.BB()
	bb2 := r2.BB()

	overlapX, overlapY := bb1.Overlap(bb2)
	if overlapX <= 0 || overlapY <= 0 {
		return Contact{}, false
	}

	delta := r1.Center.Sub(r2.Center)
	useX := overlapX < overlapY
	// centers aligned on the chosen axis give no direction there
	if useX && delta.X == 0 && delta.Y != 0 {
		useX = false
	} else if !useX && delta.Y == 0 && delta.X != 0 {
		useX = true
	}
	var c Contact
	if useX {
		c.Depth = overlapX
		c.Normal = vec.Vec2{X: sign(delta.X)}
	} else {
		c.Depth = overlapY
		c.Normal = vec.Vec2{Y: sign(delta.Y)}
	}
	c.Point = BB{
		L: math.Max(bb1.L, bb2.L),
		B: math.Max(bb1.B, bb2.B),
		R: math.Min(bb1.R, bb2.R),
		T: math.Min(bb1.T, bb2.T),
	}.Center()
	return c, true
}

func circleIntersectsLine(a, b Shape) bool {
	circle := a.(Circle)
	line := b.(Line)
	closest := closestPointOnSegment(circle.Center, line.Start, line.End)
	return magSq(circle.Center.Sub(closest)) < circle.Radius*circle.Radius
}

func rectIntersectsLine(a, b Shape) bool {
	line := b.(Line)
	return a.(Rect).BB().IntersectsSegment(line.Start, line.End)
}

func lineIntersectsLine(a, b Shape) bool {
	l1 := a.(Line)
	l2 := b.(Line)

	d1 := l1.End.Sub(l1.Start)
	d2 := l2.End.Sub(l2.Start)
	s := l2.Start.Sub(l1.Start)
	denom := d1.Cross(d2)

	if denom == 0 {
		if s.Cross(d1) != 0 {
			return false // parallel
		}
		// Collinear: compare projections onto the first segment.
		lenSq := magSq(d1)
		if lenSq == 0 {
			return closestPointOnSegment(l1.Start, l2.Start, l2.End) == l1.Start
		}
		t0 := s.Dot(d1) / lenSq
		t1 := l2.End.Sub(l1.Start).Dot(d1) / lenSq
		return math.Max(t0, t1) >= 0 && math.Min(t0, t1) <= 1
	}

	t := s.Cross(d2) / denom
	u := s.Cross(d1) / denom
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

func closestPointOnSegment(p, a, b vec.Vec2) vec.Vec2 {
	delta := b.Sub(a)
	lenSq := magSq(delta)
	if lenSq == 0 {
		return a
	}
	t := clamp01(p.Sub(a).Dot(delta) / lenSq)
	return a.Lerp(b, t)
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

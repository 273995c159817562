package kine

import (
	"fmt"

	"github.com/setanarut/vec"
)

// Shape is one of Circle, Rect or Line.
//
// A shape held by a Collider is in body-local space: its center (or end points) is an
// offset from the body position. Offset places it in world space.
// The set is closed; the collision table in collision.go has an entry for every pair.
type Shape interface {
	// BB returns the axis-aligned bounding box of the shape.
	BB() BB
	// Offset returns a copy of the shape translated by p.
	Offset(p vec.Vec2) Shape
	order() int
}

const shapeTypeNum = 3

// Circle is a filled circle.
type Circle struct {
	Center vec.Vec2
	Radius float64
}

// Rect is an axis-aligned rectangle. It is never rotated by the body rotation.
type Rect struct {
	Center        vec.Vec2
	Width, Height float64
}

// Line is a line segment.
//
// Lines take part in the broad phase and in Intersects but never produce a Contact.
type Line struct {
	Start, End vec.Vec2
}

func (c Circle) BB() BB {
	return NewBBForCircle(c.Center, c.Radius)
}

func (c Circle) Offset(p vec.Vec2) Shape {
	c.Center = c.Center.Add(p)
	return c
}

func (c Circle) order() int { return 0 }

func (c Circle) String() string {
	return fmt.Sprintf("Circle(%v, %v, r=%v)", c.Center.X, c.Center.Y, c.Radius)
}

// HalfExtents returns half the width and half the height.
func (r Rect) HalfExtents() (hw, hh float64) {
	return r.Width / 2, r.Height / 2
}

func (r Rect) BB() BB {
	hw, hh := r.HalfExtents()
	return NewBBForExtents(r.Center, hw, hh)
}

func (r Rect) Offset(p vec.Vec2) Shape {
	r.Center = r.Center.Add(p)
	return r
}

func (r Rect) order() int { return 1 }

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%v, %v, %vx%v)", r.Center.X, r.Center.Y, r.Width, r.Height)
}

func (l Line) BB() BB {
	return NewBBForSegment(l.Start, l.End)
}

func (l Line) Offset(p vec.Vec2) Shape {
	l.Start = l.Start.Add(p)
	l.End = l.End.Add(p)
	return l
}

func (l Line) order() int { return 2 }

func (l Line) String() string {
	return fmt.Sprintf("Line(%v, %v -> %v, %v)", l.Start.X, l.Start.Y, l.End.X, l.End.Y)
}

// Vertices returns the rectangle corners counter-clockwise, starting bottom right.
func (r Rect) Vertices() []vec.Vec2 {
	bb := r.BB()
	return []vec.Vec2{
		{X: bb.R, Y: bb.B},
		{X: bb.R, Y: bb.T},
		{X: bb.L, Y: bb.T},
		{X: bb.L, Y: bb.B},
	}
}

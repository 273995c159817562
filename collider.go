package kine

import "github.com/setanarut/vec"

// Collider attaches a shape and a layer mask to a body.
type Collider struct {
	// Shape in body-local space.
	Shape Shape
	Layer Layer
}

// NewCircleCollider returns a circle collider centered on the body.
func NewCircleCollider(radius float64) *Collider {
	return &Collider{Shape: Circle{Radius: radius}, Layer: DefaultLayer}
}

// NewRectCollider returns a width x height rectangle collider centered on the body.
func NewRectCollider(width, height float64) *Collider {
	return &Collider{Shape: Rect{Width: width, Height: height}, Layer: DefaultLayer}
}

// NewSquareCollider returns a size x size rectangle collider.
func NewSquareCollider(size float64) *Collider {
	return NewRectCollider(size, size)
}

// NewLineCollider returns a segment collider. End points are offsets from the body position.
func NewLineCollider(start, end vec.Vec2) *Collider {
	return &Collider{Shape: Line{Start: start, End: end}, Layer: DefaultLayer}
}

// DefaultCollider returns a circle collider of radius 0.5.
func DefaultCollider() *Collider {
	return NewCircleCollider(0.5)
}

// WithLayers sets the layer mask and returns the collider.
func (c *Collider) WithLayers(layers Layer) *Collider {
	c.Layer = layers
	return c
}

// Place returns the shape in world space for a body at position.
func (c *Collider) Place(position vec.Vec2) Shape {
	return c.Shape.Offset(position)
}

// GlobalBB returns the world-space bounding box for a body at position.
func (c *Collider) GlobalBB(position vec.Vec2) BB {
	return c.Shape.BB().Offset(position)
}

package kine

import (
	"fmt"

	"github.com/setanarut/vec"
)

// Draw flags
const (
	DrawShapes          = 1 << 0
	DrawCollisionPoints = 1 << 1
)

// 16 bytes
type FColor struct {
	R, G, B, A float32
}

// Drawer is implemented by renderers that want to show a World.
type Drawer interface {
	DrawCircle(pos vec.Vec2, angle, radius float64, outline, fill FColor, data any)
	DrawSegment(a, b vec.Vec2, fill FColor, data any)
	DrawPolygon(count int, verts []vec.Vec2, outline, fill FColor, data any)
	DrawDot(size float64, pos vec.Vec2, fill FColor, data any)

	Flags() uint
	OutlineColor() FColor
	ShapeColor(body *Body, data any) FColor
	CollisionPointColor() FColor
	Data() any
}

// DrawShape draws the collider of body with the drawer implementation
func DrawShape(body *Body, drawer Drawer) {
	if body.Collider == nil {
		return
	}
	data := drawer.Data()

	outline := drawer.OutlineColor()
	fill := drawer.ShapeColor(body, data)

	switch shape := body.WorldShape().(type) {
	case Circle:
		drawer.DrawCircle(shape.Center, body.Rotation, shape.Radius, outline, fill, data)
	case Rect:
		verts := shape.Vertices()
		drawer.DrawPolygon(len(verts), verts, outline, fill, data)
	case Line:
		drawer.DrawSegment(shape.Start, shape.End, fill, data)
	default:
		panic(fmt.Sprintf("Unknown shape type %T", shape))
	}
}

// DrawWorld draws all bodies and the manifolds of the last step with the drawer implementation
func DrawWorld(w *World, drawer Drawer) {
	flags := drawer.Flags()

	if flags&DrawShapes != 0 {
		for _, body := range w.bodies {
			DrawShape(body, drawer)
		}
	}

	if flags&DrawCollisionPoints == 0 {
		return
	}

	data := drawer.Data()
	color := drawer.CollisionPointColor()
	w.EachManifold(func(m Manifold) {
		p := m.ContactPoint
		a := p.Add(m.Normal.Scale(m.Penetration * 0.5))
		b := p.Sub(m.Normal.Scale(m.Penetration * 0.5))
		drawer.DrawSegment(a, b, color, data)
		drawer.DrawDot(2, p, color, data)
	})
}

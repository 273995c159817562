package kine

import (
	"fmt"

	"github.com/setanarut/vec"
)

// Handle is the opaque identity of a body.
type Handle uint32

// NoHandle is never assigned to a body.
const NoHandle Handle = 0

var bodyCur Handle = 0

// Body is a rigid body and its optional components.
//
// Position and Rotation are always present. Every pointer component may be nil; the
// pipeline substitutes zero values (zero velocity, static mass, default material) for a
// missing component instead of failing.
type Body struct {
	// UserData is an object that this body is associated with.
	//
	// You can use this get a reference to your game object or controller object.
	UserData any

	handle   Handle
	Position vec.Vec2 // center of mass, world space
	Rotation float64  // radians, normalized to [-π, π) by Integrate
	Velocity *Velocity
	Forces   *Forces
	Mass     *Mass
	Inertia  *Inertia
	Collider *Collider
	Material MaterialHandle
}

// NewBody returns a body at position with a fresh handle and no components.
func NewBody(position vec.Vec2) *Body {
	bodyCur++
	return &Body{
		handle:   bodyCur,
		Position: position,
	}
}

// NewDynamicBody returns a body with velocity, force accumulator, mass and the collider.
// The moment of inertia is estimated from the collider shape.
func NewDynamicBody(position vec.Vec2, mass float64, collider *Collider) *Body {
	body := NewBody(position)
	body.Velocity = NewVelocity(vec.Vec2{})
	body.Forces = &Forces{}
	body.Mass = NewMass(mass)
	body.Collider = collider
	if collider != nil {
		body.Inertia = NewInertia(MomentForShape(mass, collider.Shape))
	}
	return body
}

// NewStaticBody returns an immovable body with the collider.
func NewStaticBody(position vec.Vec2, collider *Collider) *Body {
	body := NewBody(position)
	body.Mass = NewMass(0)
	body.Collider = collider
	return body
}

// MomentForShape estimates the moment of inertia of a shape of mass m about its center.
func MomentForShape(m float64, s Shape) float64 {
	switch s := s.(type) {
	case Circle:
		return MomentForCircle(m, s.Radius)
	case Rect:
		return MomentForBox(m, s.Width, s.Height)
	case Line:
		return MomentForSegment(m, s.Start, s.End)
	default:
		panic("Unknown shape type")
	}
}

// String returns body handle as string
func (b Body) String() string {
	return fmt.Sprint("Body ", b.handle, ", Shape ", b.Shape())
}

// Handle returns the body identity.
func (b *Body) Handle() Handle {
	return b.handle
}

// Shape returns the body-local collider shape, nil without a collider.
func (b *Body) Shape() Shape {
	if b.Collider == nil {
		return nil
	}
	return b.Collider.Shape
}

// IsStatic returns true if the body has no mass component or an inverse mass of 0.
func (b *Body) IsStatic() bool {
	return b.Mass.IsStatic()
}

// LinearVelocity returns the linear velocity, zero without a velocity component.
func (b *Body) LinearVelocity() vec.Vec2 {
	if b.Velocity == nil {
		return vec.Vec2{}
	}
	return b.Velocity.Linear
}

// AngularVelocity returns the angular velocity, zero without a velocity component.
func (b *Body) AngularVelocity() float64 {
	if b.Velocity == nil {
		return 0
	}
	return b.Velocity.Angular
}

// SetVelocity sets the linear velocity, adding a velocity component if needed.
func (b *Body) SetVelocity(x, y float64) {
	if b.Velocity == nil {
		b.Velocity = NewVelocity(vec.Vec2{X: x, Y: y})
		return
	}
	b.Velocity.Linear = vec.Vec2{X: x, Y: y}
}

// ApplyForce accumulates f for the next integration, adding a force accumulator if needed.
func (b *Body) ApplyForce(f vec.Vec2) {
	if b.Forces == nil {
		b.Forces = &Forces{}
	}
	b.Forces.Add(f)
}

// WorldShape returns the collider shape placed at the body position, nil without a collider.
func (b *Body) WorldShape() Shape {
	if b.Collider == nil {
		return nil
	}
	return b.Collider.Place(b.Position)
}

// KineticEnergy returns the linear kinetic energy of the body.
func (b *Body) KineticEnergy() float64 {
	return kineticEnergy(b.Mass.Raw(), b.LinearVelocity())
}

func kineticEnergy(m float64, v vec.Vec2) float64 {
	// Need to do some fudging to avoid NaNs
	vsq := magSq(v)
	if vsq == 0 || m == 0 {
		return 0
	}
	return 0.5 * m * vsq
}

// BodySet is the body storage the pipeline stages read and write.
//
// Iteration order must be stable: stage output order follows it.
type BodySet interface {
	// Len returns the number of bodies.
	Len() int
	// At returns the i-th body in iteration order.
	At(i int) *Body
	// Lookup returns the body with handle h or nil.
	Lookup(h Handle) *Body
}

// BodyList is a BodySet over a plain slice.
type BodyList []*Body

func (l BodyList) Len() int { return len(l) }

func (l BodyList) At(i int) *Body { return l[i] }

func (l BodyList) Lookup(h Handle) *Body {
	for _, b := range l {
		if b.handle == h {
			return b
		}
	}
	return nil
}

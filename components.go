package kine

import (
	"math"

	"github.com/setanarut/vec"
)

// Velocity is the linear and angular velocity of a body.
type Velocity struct {
	Linear  vec.Vec2
	Angular float64 // radians per second
}

// NewVelocity returns a velocity with no angular component.
func NewVelocity(linear vec.Vec2) *Velocity {
	return &Velocity{Linear: linear}
}

// AddLinear adds dv to the linear velocity.
func (v *Velocity) AddLinear(dv vec.Vec2) {
	v.Linear = v.Linear.Add(dv)
}

// Speed returns the magnitude of the linear velocity.
func (v *Velocity) Speed() float64 {
	return v.Linear.Mag()
}

// Forces accumulates impulses applied to a body between two steps.
//
// The accumulated value is added to the velocity as resultant*inverseMass*dt by
// Integrate, which then empties the accumulator.
type Forces struct {
	x, y float64
}

// NewForces returns an accumulator holding f.
func NewForces(f vec.Vec2) *Forces {
	return &Forces{x: f.X, y: f.Y}
}

// Add accumulates f.
func (f *Forces) Add(force vec.Vec2) {
	f.x += force.X
	f.y += force.Y
}

// Resultant returns the accumulated value without draining it.
func (f *Forces) Resultant() vec.Vec2 {
	return vec.Vec2{X: f.x, Y: f.y}
}

// Clear empties the accumulator.
func (f *Forces) Clear() {
	f.x = 0
	f.y = 0
}

// Collect returns the accumulated value and empties the accumulator.
func (f *Forces) Collect() vec.Vec2 {
	r := f.Resultant()
	f.Clear()
	return r
}

// IsZero returns true if nothing is accumulated.
func (f *Forces) IsZero() bool {
	return f.x == 0 && f.y == 0
}

// Mass stores the inverse mass of a body, the value the pipeline works with.
//
// An inverse mass of 0 is an immovable body.
type Mass struct {
	inv float64
}

// NewMass returns the mass component for mass m. A mass that is not positive and finite
// makes the body static.
func NewMass(m float64) *Mass {
	return &Mass{inv: invert(m)}
}

// NewInverseMass returns a mass component from an inverse mass.
func NewInverseMass(inv float64) *Mass {
	if inv < 0 || !isFinite(inv) {
		inv = 0
	}
	return &Mass{inv: inv}
}

// Inv returns the inverse mass.
func (m *Mass) Inv() float64 {
	if m == nil {
		return 0
	}
	return m.inv
}

// Raw returns the mass. A static body has a raw mass of 0.
func (m *Mass) Raw() float64 {
	if m == nil {
		return 0
	}
	return invert(m.inv)
}

// IsStatic returns true for an immovable body.
func (m *Mass) IsStatic() bool {
	return m.Inv() == 0
}

// Inertia is the scalar moment of inertia of a body.
type Inertia struct {
	moment float64
}

// NewInertia returns an inertia component for moment i.
func NewInertia(i float64) *Inertia {
	return &Inertia{moment: i}
}

// Moment returns the moment of inertia.
func (i *Inertia) Moment() float64 {
	if i == nil {
		return 0
	}
	return i.moment
}

// Inv returns the inverse moment of inertia, 0 for a zero or invalid moment.
func (i *Inertia) Inv() float64 {
	return invert(i.Moment())
}

// MomentForCircle calculates the moment of inertia for a solid circle.
func MomentForCircle(m, r float64) float64 {
	return 0.5 * m * r * r
}

// MomentForBox calculates the moment of inertia for a solid box.
func MomentForBox(m, width, height float64) float64 {
	return m * (width*width + height*height) / 12.0
}

// MomentForSegment calculates the moment of inertia for a thin rod through its center.
func MomentForSegment(m float64, a, b vec.Vec2) float64 {
	return m * magSq(b.Sub(a)) / 12.0
}

func invert(f float64) float64 {
	if f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return 1 / f
}

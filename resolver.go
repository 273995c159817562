package kine

import (
	"math"

	"github.com/setanarut/vec"
)

// ImpulseBody is the snapshot of one body handed to a Resolver.
type ImpulseBody struct {
	Mass            float64 // raw mass, 0 for a static body
	InvMass         float64
	Velocity        vec.Vec2
	AngularVelocity float64
	Position        vec.Vec2 // center of mass
	InvInertia      float64
	Restitution     float64
	StaticFriction  float64
	DynamicFriction float64
}

// Result returns the snapshot velocities unchanged.
func (o ImpulseBody) Result() ImpulseResult {
	return ImpulseResult{Velocity: o.Velocity, AngularVelocity: o.AngularVelocity}
}

// KineticEnergy returns the linear kinetic energy of the snapshot.
func (o ImpulseBody) KineticEnergy() float64 {
	return kineticEnergy(o.Mass, o.Velocity)
}

// ImpulseResult is the velocity of a body after resolution.
type ImpulseResult struct {
	Velocity        vec.Vec2
	AngularVelocity float64
}

// Resolver turns manifolds into new body velocities.
//
// Exactly one resolver is active in a World. Custom solvers replace ClassicResolver by
// implementing this interface.
type Resolver interface {
	// Tick is called once per resolution pass, before the first manifold.
	Tick()
	// Resolve returns the velocities of a and b after the collision described by m.
	Resolve(m Manifold, a, b ImpulseBody) (ImpulseResult, ImpulseResult)
}

// Diagnostics is implemented by resolvers that count their work.
type Diagnostics interface {
	// Ticks returns the number of resolution passes.
	Ticks() uint32
	// Collisions returns the number of manifolds that passed the initial force check.
	Collisions() uint32
}

// ResolverStats returns the counters of r, zeros if r does not implement Diagnostics.
func ResolverStats(r Resolver) (ticks, collisions uint32) {
	if d, ok := r.(Diagnostics); ok {
		return d.Ticks(), d.Collisions()
	}
	return 0, 0
}

// ClassicResolver applies a single linear impulse along the contact normal.
//
// Restitution is the smaller of the two coefficients. Angular velocity passes through
// unchanged unless Angular is set, in which case the impulse uses the moment arms from
// each center of mass to the contact point.
type ClassicResolver struct {
	Angular bool

	ticks      uint32
	collisions uint32
}

// NewClassicResolver returns a linear-only classic resolver.
func NewClassicResolver() *ClassicResolver {
	return &ClassicResolver{}
}

// Tick counts a resolution pass. The counter wraps to 0.
func (r *ClassicResolver) Tick() {
	r.ticks++
}

func (r *ClassicResolver) Ticks() uint32 {
	return r.ticks
}

func (r *ClassicResolver) Collisions() uint32 {
	return r.collisions
}

// Resolve implements Resolver.
func (r *ClassicResolver) Resolve(m Manifold, a, b ImpulseBody) (ImpulseResult, ImpulseResult) {
	if m.InitialForce() <= 0 {
		return a.Result(), b.Result()
	}
	r.collisions++

	ra, rb, _ := normalImpulse(m, a, b, r.Angular)
	return clampEnergy(a, b, ra, rb)
}

// FrictionResolver is a ClassicResolver followed by a tangential friction impulse.
//
// Friction coefficients of the pair are combined as sqrt(a² + b²), separately for the
// static and dynamic regime. The tangential impulse is clamped by the static friction
// cone and falls back to the dynamic coefficient outside of it.
type FrictionResolver struct {
	ClassicResolver
}

// NewFrictionResolver returns a linear-only friction resolver.
func NewFrictionResolver() *FrictionResolver {
	return &FrictionResolver{}
}

// Resolve implements Resolver.
func (r *FrictionResolver) Resolve(m Manifold, a, b ImpulseBody) (ImpulseResult, ImpulseResult) {
	if m.InitialForce() <= 0 {
		return a.Result(), b.Result()
	}
	r.collisions++

	ra, rb, j := normalImpulse(m, a, b, r.Angular)
	if j > 0 {
		ra, rb = frictionImpulse(m, a, b, ra, rb, j)
	}
	return clampEnergy(a, b, ra, rb)
}

// normalImpulse returns the velocities after the along-normal impulse and the impulse
// scalar. j is 0 when nothing was applied (separating or both bodies immovable).
func normalImpulse(m Manifold, a, b ImpulseBody, angular bool) (ImpulseResult, ImpulseResult, float64) {
	ra, rb := a.Result(), b.Result()
	n := m.Normal
	e := math.Min(a.Restitution, b.Restitution)

	if !angular {
		vn := a.Velocity.Sub(b.Velocity).Dot(n)
		if vn > 0 {
			return ra, rb, 0
		}
		massSum := a.InvMass + b.InvMass
		if massSum == 0 {
			return ra, rb, 0
		}
		j := -(1 + e) * vn / massSum
		ra.Velocity = a.Velocity.Add(n.Scale(a.InvMass * j))
		rb.Velocity = b.Velocity.Sub(n.Scale(b.InvMass * j))
		return ra, rb, j
	}

	r1 := m.ContactPoint.Sub(a.Position)
	r2 := m.ContactPoint.Sub(b.Position)
	vr := relativeVelocity(a, b, r1, r2)
	vn := vr.Dot(n)
	if vn > 0 {
		return ra, rb, 0
	}

	r1n := r1.Cross(n)
	r2n := r2.Cross(n)
	denom := a.InvMass + b.InvMass + r1n*r1n*a.InvInertia + r2n*r2n*b.InvInertia
	if denom == 0 {
		return ra, rb, 0
	}
	j := -(1 + e) * vn / denom
	ra.Velocity = a.Velocity.Add(n.Scale(a.InvMass * j))
	rb.Velocity = b.Velocity.Sub(n.Scale(b.InvMass * j))
	ra.AngularVelocity = a.AngularVelocity + a.InvInertia*r1n*j
	rb.AngularVelocity = b.AngularVelocity - b.InvInertia*r2n*j
	return ra, rb, j
}

// relativeVelocity returns the velocity of the contact point on a relative to b.
func relativeVelocity(a, b ImpulseBody, r1, r2 vec.Vec2) vec.Vec2 {
	return r1.Perp().Scale(a.AngularVelocity).Add(a.Velocity).Sub(r2.Perp().Scale(b.AngularVelocity).Add(b.Velocity))
}

// frictionImpulse applies the tangential pass on top of the normal impulse j.
//
// The tangential velocity change is split by raw mass: each body takes its own fraction of
// the combined mass, not the inverse-mass fraction of the normal impulse. A static body
// takes none.
func frictionImpulse(m Manifold, a, b ImpulseBody, ra, rb ImpulseResult, j float64) (ImpulseResult, ImpulseResult) {
	n := m.Normal
	vr := ra.Velocity.Sub(rb.Velocity)
	tangent := vr.Sub(n.Scale(vr.Dot(n)))
	if magSq(tangent) < magicEpsilon*magicEpsilon {
		return ra, rb
	}
	tangent = tangent.Unit()

	massSum := a.InvMass + b.InvMass
	if massSum == 0 {
		return ra, rb
	}
	jt := -vr.Dot(tangent) / massSum

	muS := math.Hypot(a.StaticFriction, b.StaticFriction)
	muD := math.Hypot(a.DynamicFriction, b.DynamicFriction)

	var jf float64
	if math.Abs(jt) <= j*muS {
		jf = jt
	} else {
		jf = -j * muD
	}

	shareA, shareB := massShares(a, b)
	dv := tangent.Scale(jf * massSum)
	ra.Velocity = ra.Velocity.Add(dv.Scale(shareA))
	rb.Velocity = rb.Velocity.Sub(dv.Scale(shareB))
	return ra, rb
}

func massShares(a, b ImpulseBody) (float64, float64) {
	ma, mb := a.Mass, b.Mass
	if a.InvMass == 0 {
		ma = 0
	}
	if b.InvMass == 0 {
		mb = 0
	}
	total := ma + mb
	if total == 0 {
		return 0, 0
	}
	return ma / total, mb / total
}

// clampEnergy scales the new linear velocities of the movable bodies down so that the
// linear kinetic energy of the pair does not exceed its value before resolution.
func clampEnergy(a, b ImpulseBody, ra, rb ImpulseResult) (ImpulseResult, ImpulseResult) {
	before := a.KineticEnergy() + b.KineticEnergy()
	after := kineticEnergy(a.Mass, ra.Velocity) + kineticEnergy(b.Mass, rb.Velocity)
	if after <= before || after == 0 {
		return ra, rb
	}
	ratio := math.Sqrt(before / after)
	if a.InvMass != 0 {
		ra.Velocity = ra.Velocity.Scale(ratio)
	}
	if b.InvMass != 0 {
		rb.Velocity = rb.Velocity.Scale(ratio)
	}
	return ra, rb
}

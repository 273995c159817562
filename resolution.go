package kine

// ResolveManifolds runs r over every manifold in order and writes the resulting velocities
// back to the bodies.
//
// r.Tick is called once before the first manifold. Each manifold is handed to r as a copy
// carrying its initial force, mA*|vA| + mB*|vB|. Bodies missing a component are
// resolved with zero velocity, a static mass or DefaultMaterial; results for a body
// without a velocity component are dropped.
func ResolveManifolds(bodies BodySet, manifolds []Manifold, r Resolver, materials MaterialLookup) {
	r.Tick()

	for _, m := range manifolds {
		bodyA := bodies.Lookup(m.A)
		bodyB := bodies.Lookup(m.B)
		if bodyA == nil || bodyB == nil {
			continue
		}

		a := ImpulseBodyOf(bodyA, materials)
		b := ImpulseBodyOf(bodyB, materials)
		f := a.Mass*a.Velocity.Mag() + b.Mass*b.Velocity.Mag()

		resA, resB := r.Resolve(m.WithInitialForce(f), a, b)
		applyResult(bodyA, resA)
		applyResult(bodyB, resB)
	}
}

// ImpulseBodyOf builds the resolver snapshot of a body.
func ImpulseBodyOf(body *Body, materials MaterialLookup) ImpulseBody {
	mat := ResolveMaterial(materials, body.Material)
	o := ImpulseBody{
		Mass:            body.Mass.Raw(),
		InvMass:         body.Mass.Inv(),
		Velocity:        body.LinearVelocity(),
		AngularVelocity: body.AngularVelocity(),
		Position:        body.Position,
		Restitution:     mat.Restitution,
		StaticFriction:  mat.StaticFriction,
		DynamicFriction: mat.DynamicFriction,
	}
	if !body.IsStatic() {
		o.InvInertia = body.Inertia.Inv()
	}
	return o
}

func applyResult(body *Body, res ImpulseResult) {
	if body.Velocity == nil || body.IsStatic() {
		return
	}
	if !isFinite(res.Velocity.X) || !isFinite(res.Velocity.Y) || !isFinite(res.AngularVelocity) {
		return
	}
	body.Velocity.Linear = res.Velocity
	body.Velocity.Angular = res.AngularVelocity
}

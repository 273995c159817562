package kine

// Integrate advances every dynamic body in set order by dt.
//
// Symplectic Euler: the accumulated force updates the velocity first and the new velocity
// then moves the body. Swapping the two changes the energy behaviour.
// Bodies without a velocity component or with an inverse mass of 0 are skipped entirely,
// their accumulators included.
func Integrate(bodies BodySet, dt float64) {
	for i := range bodies.Len() {
		body := bodies.At(i)
		if body.IsStatic() || body.Velocity == nil {
			continue
		}
		IntegrateBody(body, dt)
	}
}

// IntegrateBody is the default per-body integration step. It does not check for static bodies.
func IntegrateBody(body *Body, dt float64) {
	v := body.Velocity
	if body.Forces != nil {
		v.AddLinear(body.Forces.Collect().Scale(body.Mass.Inv() * dt))
	}
	body.Position = body.Position.Add(v.Linear.Scale(dt))
	body.Rotation = NormalizeAngle(body.Rotation + v.Angular*dt)
}

// ClampSpeed limits the linear speed of every dynamic body to maxSpeed. A maxSpeed <= 0
// disables the limit.
func ClampSpeed(bodies BodySet, maxSpeed float64) {
	if maxSpeed <= 0 {
		return
	}
	maxSq := maxSpeed * maxSpeed
	for i := range bodies.Len() {
		body := bodies.At(i)
		v := body.Velocity
		if v == nil || body.IsStatic() {
			continue
		}
		if sq := magSq(v.Linear); sq > maxSq {
			v.Linear = v.Linear.Unit().Scale(maxSpeed)
		}
	}
}

package kine_test

import (
	"math"
	"testing"

	"github.com/setanarut/kine"
	"github.com/setanarut/vec"
)

func TestIntegrateSymplecticEuler(t *testing.T) {
	b := kine.NewDynamicBody(vec.Vec2{}, 2, nil)
	b.ApplyForce(vec.Vec2{X: 4, Y: 0})

	dt := 0.5
	kine.Integrate(kine.BodyList{b}, dt)

	// velocity is updated before position: x = invMass * F * dt²
	if !near(b.Position.X, 0.5*4*dt*dt) {
		t.Errorf("x = %v, want %v", b.Position.X, 0.5*4*dt*dt)
	}
	if !near(b.LinearVelocity().X, 1) {
		t.Errorf("vx = %v, want 1", b.LinearVelocity().X)
	}
	if !b.Forces.IsZero() {
		t.Error("forces were not drained")
	}

	kine.Integrate(kine.BodyList{b}, dt)
	if !near(b.Position.X, 1) || !near(b.LinearVelocity().X, 1) {
		t.Errorf("second step: x = %v, vx = %v", b.Position.X, b.LinearVelocity().X)
	}
}

func TestIntegrateSkipsStatic(t *testing.T) {
	s := kine.NewStaticBody(vec.Vec2{X: 1, Y: 1}, nil)
	s.SetVelocity(5, 5)
	s.ApplyForce(vec.Vec2{X: 10})

	bare := kine.NewBody(vec.Vec2{X: 2})
	bare.Mass = kine.NewMass(1)
	bare.ApplyForce(vec.Vec2{X: 10})

	kine.Integrate(kine.BodyList{s, bare}, 1)

	if s.Position != (vec.Vec2{X: 1, Y: 1}) || s.LinearVelocity() != (vec.Vec2{X: 5, Y: 5}) {
		t.Errorf("static body moved: %v %v", s.Position, s.LinearVelocity())
	}
	if s.Forces.IsZero() {
		t.Error("static body accumulator should be left alone")
	}
	if bare.Position != (vec.Vec2{X: 2}) {
		t.Errorf("body without velocity moved: %v", bare.Position)
	}
}

func TestIntegrateRotation(t *testing.T) {
	b := kine.NewDynamicBody(vec.Vec2{}, 1, nil)
	b.Rotation = 3
	b.Velocity.Angular = 1
	kine.Integrate(kine.BodyList{b}, 1)
	if !near(b.Rotation, 4-2*math.Pi) {
		t.Errorf("rotation = %v, want %v", b.Rotation, 4-2*math.Pi)
	}
}

func TestClampSpeed(t *testing.T) {
	b := kine.NewDynamicBody(vec.Vec2{}, 1, nil)
	b.SetVelocity(30, 40)
	slow := kine.NewDynamicBody(vec.Vec2{}, 1, nil)
	slow.SetVelocity(1, 0)

	kine.ClampSpeed(kine.BodyList{b, slow}, 10)
	if !nearVec(b.LinearVelocity(), vec.Vec2{X: 6, Y: 8}) {
		t.Errorf("v = %v, want (6, 8)", b.LinearVelocity())
	}
	if slow.LinearVelocity() != (vec.Vec2{X: 1}) {
		t.Errorf("slow body changed: %v", slow.LinearVelocity())
	}

	kine.ClampSpeed(kine.BodyList{slow}, 0)
	if slow.LinearVelocity() != (vec.Vec2{X: 1}) {
		t.Error("limit 0 should be disabled")
	}

	wall := kine.NewStaticBody(vec.Vec2{}, nil)
	wall.SetVelocity(30, 40)
	kine.ClampSpeed(kine.BodyList{wall}, 10)
	if wall.LinearVelocity() != (vec.Vec2{X: 30, Y: 40}) {
		t.Errorf("static body clamped: %v", wall.LinearVelocity())
	}
}

func TestBroadPhasePairs(t *testing.T) {
	var bodies kine.BodyList
	for range 4 {
		bodies = append(bodies, kine.NewDynamicBody(vec.Vec2{}, 1, kine.NewCircleCollider(1)))
	}
	bodies = append(bodies, kine.NewBody(vec.Vec2{})) // no collider

	pairs := kine.BroadPhase(bodies, nil)
	if len(pairs) != 6 {
		t.Fatalf("got %d pairs, want 6", len(pairs))
	}

	seen := map[kine.Pair]bool{}
	k := 0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			want := kine.Pair{A: bodies[i].Handle(), B: bodies[j].Handle()}
			if pairs[k] != want {
				t.Errorf("pair %d = %v, want %v", k, pairs[k], want)
			}
			k++
		}
	}
	for _, p := range pairs {
		if p.A == p.B {
			t.Errorf("self pair %v", p)
		}
		if seen[p] || seen[kine.Pair{A: p.B, B: p.A}] {
			t.Errorf("duplicate pair %v", p)
		}
		seen[p] = true
	}
}

func TestBroadPhaseLayersAndBounds(t *testing.T) {
	a := kine.NewDynamicBody(vec.Vec2{}, 1, kine.NewCircleCollider(1))
	b := kine.NewDynamicBody(vec.Vec2{X: 1}, 1, kine.NewCircleCollider(1).WithLayers(0b10))
	c := kine.NewDynamicBody(vec.Vec2{X: 1}, 1, kine.NewCircleCollider(1).WithLayers(kine.AllLayers))
	far := kine.NewDynamicBody(vec.Vec2{X: 10}, 1, kine.NewCircleCollider(1))

	dst := make([]kine.Pair, 0, 8)
	pairs := kine.BroadPhase(kine.BodyList{a, b, c, far}, dst)

	want := []kine.Pair{
		{A: a.Handle(), B: c.Handle()},
		{A: b.Handle(), B: c.Handle()},
	}
	if len(pairs) != len(want) {
		t.Fatalf("pairs = %v, want %v", pairs, want)
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pair %d = %v, want %v", i, pairs[i], want[i])
		}
	}
}

func TestNarrowPhase(t *testing.T) {
	a := kine.NewDynamicBody(vec.Vec2{}, 1, kine.NewCircleCollider(1))
	b := kine.NewDynamicBody(vec.Vec2{X: 1.5}, 1, kine.NewCircleCollider(1))
	// bounding boxes overlap, circles do not
	corner := kine.NewDynamicBody(vec.Vec2{X: -1.9, Y: 1.9}, 1, kine.NewCircleCollider(1))
	line := kine.NewStaticBody(vec.Vec2{}, kine.NewLineCollider(vec.Vec2{X: -5}, vec.Vec2{X: 5}))

	bodies := kine.BodyList{a, b, corner, line}
	pairs := kine.BroadPhase(bodies, nil)
	manifolds := kine.NarrowPhase(bodies, pairs, nil)

	if len(manifolds) != 1 {
		t.Fatalf("got %d manifolds, want 1: %v", len(manifolds), manifolds)
	}
	m := manifolds[0]
	if m.A != a.Handle() || m.B != b.Handle() {
		t.Errorf("manifold bodies %v, %v", m.A, m.B)
	}
	if !nearVec(m.Normal, vec.Vec2{X: -1}) || !near(m.Penetration, 0.5) {
		t.Errorf("manifold = %v", m)
	}
	if m.HasInitialForce() || m.InitialForce() != 0 {
		t.Error("narrow phase should leave the initial force unset")
	}
}

func TestManifoldInitialForce(t *testing.T) {
	m := kine.NewManifold(1, 2, kine.Contact{Normal: vec.Vec2{Y: 2}, Depth: 1})
	if !nearVec(m.Normal, vec.Vec2{Y: 1}) {
		t.Errorf("normal = %v, want unit", m.Normal)
	}
	f := m.WithInitialForce(3)
	if m.HasInitialForce() {
		t.Error("WithInitialForce modified the original")
	}
	if !f.HasInitialForce() || f.InitialForce() != 3 {
		t.Error("initial force")
	}
}

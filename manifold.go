package kine

import (
	"fmt"

	"github.com/setanarut/vec"
)

// Pair is a broad phase candidate. A was enumerated before B.
type Pair struct {
	A, B Handle
}

// Manifold describes one collision between two bodies during a single step.
//
// Manifolds are rebuilt every step and never matched across steps.
type Manifold struct {
	A, B Handle
	// Normal is a unit vector pointing from B toward A.
	Normal       vec.Vec2
	Penetration  float64
	ContactPoint vec.Vec2

	initialForce    float64
	hasInitialForce bool
}

// NewManifold builds a manifold for bodies a and b from a contact.
func NewManifold(a, b Handle, c Contact) Manifold {
	n := c.Normal
	if l := n.Mag(); l != 0 && l != 1 {
		n = n.Unit()
	}
	return Manifold{
		A:            a,
		B:            b,
		Normal:       n,
		Penetration:  c.Depth,
		ContactPoint: c.Point,
	}
}

// WithInitialForce returns a copy of the manifold carrying the initial collision force.
func (m Manifold) WithInitialForce(f float64) Manifold {
	m.initialForce = f
	m.hasInitialForce = true
	return m
}

// InitialForce returns the value set by WithInitialForce, 0 when it was never set.
func (m Manifold) InitialForce() float64 {
	if !m.hasInitialForce {
		return 0
	}
	return m.initialForce
}

// HasInitialForce returns true if WithInitialForce was called on this copy.
func (m Manifold) HasInitialForce() bool {
	return m.hasInitialForce
}

func (m Manifold) String() string {
	return fmt.Sprintf("Manifold(%d, %d) n=(%v, %v) p=%v", m.A, m.B, m.Normal.X, m.Normal.Y, m.Penetration)
}

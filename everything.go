package kine

import (
	"fmt"
	"math"

	"github.com/setanarut/vec"
)

const (
	infinity     float64 = math.MaxFloat64
	magicEpsilon float64 = 1e-5
)

// Layer is an 8-bit collision layer mask.
//
// Two colliders are only tested against each other when their masks share at least one bit.
type Layer uint8

const (
	// NoLayers is a mask that never collides with anything.
	NoLayers Layer = 0
	// DefaultLayer is bit 0, the layer every collider starts on.
	DefaultLayer Layer = 0b0000_0001
	// AllLayers collides with every non-empty mask.
	AllLayers Layer = 0b1111_1111
)

// Collides returns true if the two masks share a bit.
func (l Layer) Collides(other Layer) bool {
	return l&other != 0
}

// NormalizeAngle wraps an angle in radians into [-π, π).
func NormalizeAngle(a float64) float64 {
	if a >= -math.Pi && a < math.Pi {
		return a
	}
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// DebugInfo returns a multi-line summary of the world state after the last step.
func DebugInfo(w *World) string {
	var static, dynamic int
	for _, b := range w.bodies {
		if b.IsStatic() {
			static++
		} else {
			dynamic++
		}
	}
	ticks, collisions := ResolverStats(w.Resolver)
	return fmt.Sprintf(
		"Bodies: %d dynamic, %d static\nPairs: %d\nManifolds: %d\nTicks: %d\nCollisions: %d\nEnergy: %.4f",
		dynamic, static, len(w.pairs), len(w.manifolds), ticks, collisions, w.KineticEnergy())
}

func clamp(f, min, max float64) float64 {
	if f > min {
		return math.Min(f, max)
	}
	return min
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(f, 1))
}

func magSq(v vec.Vec2) float64 {
	return v.Dot(v)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

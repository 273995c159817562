package kine

import "math"

// Material holds the surface properties used when resolving collisions.
type Material struct {
	Density         float64
	Restitution     float64 // 0 = fully inelastic, 1 = fully elastic
	StaticFriction  float64
	DynamicFriction float64
}

// DefaultMaterial is used for bodies whose material reference is missing or invalid.
var DefaultMaterial = Material{
	Density:         1,
	Restitution:     0.5,
	StaticFriction:  0.5,
	DynamicFriction: 0.3,
}

// NewMaterial returns a material with the preset friction coefficients.
func NewMaterial(density, restitution float64) Material {
	return Material{
		Density:         density,
		Restitution:     restitution,
		StaticFriction:  0.1,
		DynamicFriction: 0.2,
	}
}

func BouncyMaterial() Material   { return NewMaterial(0.3, 0.8) }
func HardMaterial() Material     { return NewMaterial(0.6, 0.1) }
func SoftMaterial() Material     { return NewMaterial(0.1, 0.2) }
func StaticMaterial() Material   { return NewMaterial(0.0, 0.4) }
func MetallicMaterial() Material { return NewMaterial(1.2, 0.05) }
func WoodenMaterial() Material   { return NewMaterial(0.3, 0.2) }

// Sanitized clamps restitution into [0, 1] and the friction coefficients to >= 0.
func (m Material) Sanitized() Material {
	m.Restitution = clamp01(m.Restitution)
	m.StaticFriction = math.Max(0, m.StaticFriction)
	m.DynamicFriction = math.Max(0, m.DynamicFriction)
	return m
}

// MaterialHandle references a material shared by any number of bodies.
// The zero value references nothing.
type MaterialHandle uint32

// NoMaterial is the empty material reference.
const NoMaterial MaterialHandle = 0

// MaterialLookup resolves material handles.
type MaterialLookup interface {
	Material(h MaterialHandle) (Material, bool)
}

// ResolveMaterial returns the material behind h, or DefaultMaterial when h is empty,
// the lookup is nil or the handle is unknown.
func ResolveMaterial(l MaterialLookup, h MaterialHandle) Material {
	if l == nil || h == NoMaterial {
		return DefaultMaterial
	}
	if m, ok := l.Material(h); ok {
		return m
	}
	return DefaultMaterial
}

// MaterialStore is an append-only MaterialLookup.
type MaterialStore struct {
	materials []Material
}

// NewMaterialStore returns an empty store.
func NewMaterialStore() *MaterialStore {
	return &MaterialStore{}
}

// Add stores m and returns its handle.
func (s *MaterialStore) Add(m Material) MaterialHandle {
	s.materials = append(s.materials, m.Sanitized())
	return MaterialHandle(len(s.materials))
}

// Set replaces the material behind h. It returns false for an unknown handle.
func (s *MaterialStore) Set(h MaterialHandle, m Material) bool {
	if h == NoMaterial || int(h) > len(s.materials) {
		return false
	}
	s.materials[h-1] = m.Sanitized()
	return true
}

func (s *MaterialStore) Material(h MaterialHandle) (Material, bool) {
	if s == nil || h == NoMaterial || int(h) > len(s.materials) {
		return Material{}, false
	}
	return s.materials[h-1], true
}

// Len returns the number of stored materials.
func (s *MaterialStore) Len() int {
	return len(s.materials)
}

// Package scene loads worlds from YAML scene files.
package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/setanarut/kine"
	"github.com/setanarut/vec"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownMaterial = errors.New("unknown material")
	ErrUnknownResolver = errors.New("unknown resolver")
	ErrInvalidCollider = errors.New("invalid collider")
)

// Vec is a vector written as a two element sequence, [x, y].
type Vec [2]float64

func (v Vec) Vec2() vec.Vec2 {
	return vec.Vec2{X: v[0], Y: v[1]}
}

// Scene is the decoded form of a scene file.
type Scene struct {
	Config    kine.Config             `yaml:"config"`
	Resolver  ResolverSpec            `yaml:"resolver"`
	Materials map[string]MaterialSpec `yaml:"materials"`
	Bodies    []BodySpec              `yaml:"bodies"`
}

// ResolverSpec selects the collision resolver.
type ResolverSpec struct {
	// Kind is "classic" (default) or "friction".
	Kind    string `yaml:"kind"`
	Angular bool   `yaml:"angular"`
}

// MaterialSpec defines a named material. Unset fields come from Preset, or from
// kine.DefaultMaterial without a preset.
type MaterialSpec struct {
	Preset          string   `yaml:"preset"`
	Density         *float64 `yaml:"density"`
	Restitution     *float64 `yaml:"restitution"`
	StaticFriction  *float64 `yaml:"static_friction"`
	DynamicFriction *float64 `yaml:"dynamic_friction"`
}

// BodySpec describes one body. A body without mass is static.
type BodySpec struct {
	Name            string        `yaml:"name"`
	Position        Vec           `yaml:"position"`
	Rotation        float64       `yaml:"rotation"`
	Velocity        Vec           `yaml:"velocity"`
	AngularVelocity float64       `yaml:"angular_velocity"`
	Force           Vec           `yaml:"force"`
	Mass            float64       `yaml:"mass"`
	Inertia         *float64      `yaml:"inertia"`
	Material        string        `yaml:"material"`
	Collider        *ColliderSpec `yaml:"collider"`
}

// ColliderSpec holds exactly one of Circle, Rect or Line.
type ColliderSpec struct {
	Circle *CircleSpec `yaml:"circle"`
	Rect   *RectSpec   `yaml:"rect"`
	Line   *LineSpec   `yaml:"line"`
	// Layer is the collision layer mask, kine.DefaultLayer when omitted.
	Layer *uint8 `yaml:"layer"`
}

type CircleSpec struct {
	Radius float64 `yaml:"radius"`
	Offset Vec     `yaml:"offset"`
}

type RectSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset Vec     `yaml:"offset"`
}

type LineSpec struct {
	Start Vec `yaml:"start"`
	End   Vec `yaml:"end"`
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene. Omitted config values keep their kine.DefaultConfig value.
func Parse(data []byte) (*Scene, error) {
	s := Scene{Config: kine.DefaultConfig()}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return &s, nil
}

// Presets returns the built-in materials by name.
func Presets() map[string]kine.Material {
	return map[string]kine.Material{
		"default":  kine.DefaultMaterial,
		"bouncy":   kine.BouncyMaterial(),
		"hard":     kine.HardMaterial(),
		"soft":     kine.SoftMaterial(),
		"static":   kine.StaticMaterial(),
		"metallic": kine.MetallicMaterial(),
		"wooden":   kine.WoodenMaterial(),
	}
}

// Material resolves ms against the presets.
func (ms MaterialSpec) Material() (kine.Material, error) {
	m := kine.DefaultMaterial
	if ms.Preset != "" {
		p, ok := Presets()[ms.Preset]
		if !ok {
			return m, fmt.Errorf("preset %q: %w", ms.Preset, ErrUnknownMaterial)
		}
		m = p
	}
	if ms.Density != nil {
		m.Density = *ms.Density
	}
	if ms.Restitution != nil {
		m.Restitution = *ms.Restitution
	}
	if ms.StaticFriction != nil {
		m.StaticFriction = *ms.StaticFriction
	}
	if ms.DynamicFriction != nil {
		m.DynamicFriction = *ms.DynamicFriction
	}
	return m, nil
}

// Collider builds the collider described by cs.
func (cs ColliderSpec) Collider() (*kine.Collider, error) {
	var c *kine.Collider
	set := 0
	if cs.Circle != nil {
		set++
		if cs.Circle.Radius <= 0 {
			return nil, fmt.Errorf("circle radius %v: %w", cs.Circle.Radius, ErrInvalidCollider)
		}
		c = &kine.Collider{Shape: kine.Circle{Center: cs.Circle.Offset.Vec2(), Radius: cs.Circle.Radius}}
	}
	if cs.Rect != nil {
		set++
		if cs.Rect.Width <= 0 || cs.Rect.Height <= 0 {
			return nil, fmt.Errorf("rect %vx%v: %w", cs.Rect.Width, cs.Rect.Height, ErrInvalidCollider)
		}
		c = &kine.Collider{Shape: kine.Rect{Center: cs.Rect.Offset.Vec2(), Width: cs.Rect.Width, Height: cs.Rect.Height}}
	}
	if cs.Line != nil {
		set++
		c = &kine.Collider{Shape: kine.Line{Start: cs.Line.Start.Vec2(), End: cs.Line.End.Vec2()}}
	}
	if set != 1 {
		return nil, fmt.Errorf("want exactly one shape, got %d: %w", set, ErrInvalidCollider)
	}
	c.Layer = kine.DefaultLayer
	if cs.Layer != nil {
		c.Layer = kine.Layer(*cs.Layer)
	}
	return c, nil
}

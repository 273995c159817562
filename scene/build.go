package scene

import (
	"fmt"

	"github.com/setanarut/kine"
)

// Build creates a world holding the bodies of the scene.
//
// Body.UserData is set to the body name. Materials are resolved first from the scene's
// own materials, then from Presets; an empty material name leaves the body on
// kine.DefaultMaterial.
func (s *Scene) Build() (*kine.World, error) {
	w := kine.NewWorld()
	w.Config = s.Config

	r, err := s.Resolver.Resolver()
	if err != nil {
		return nil, err
	}
	w.Resolver = r

	store := kine.NewMaterialStore()
	w.Materials = store
	handles := map[string]kine.MaterialHandle{}

	material := func(name string) (kine.MaterialHandle, error) {
		if name == "" {
			return kine.NoMaterial, nil
		}
		if h, ok := handles[name]; ok {
			return h, nil
		}
		var m kine.Material
		if spec, ok := s.Materials[name]; ok {
			var err error
			if m, err = spec.Material(); err != nil {
				return kine.NoMaterial, fmt.Errorf("material %q: %w", name, err)
			}
		} else if p, ok := Presets()[name]; ok {
			m = p
		} else {
			return kine.NoMaterial, fmt.Errorf("material %q: %w", name, ErrUnknownMaterial)
		}
		h := store.Add(m)
		handles[name] = h
		return h, nil
	}

	for i, bs := range s.Bodies {
		body, err := bs.Body()
		if err != nil {
			return nil, fmt.Errorf("body %d %q: %w", i, bs.Name, err)
		}
		if body.Material, err = material(bs.Material); err != nil {
			return nil, fmt.Errorf("body %d %q: %w", i, bs.Name, err)
		}
		w.AddBody(body)
	}
	return w, nil
}

// Resolver returns the resolver named by Kind.
func (rs ResolverSpec) Resolver() (kine.Resolver, error) {
	switch rs.Kind {
	case "", "classic":
		r := kine.NewClassicResolver()
		r.Angular = rs.Angular
		return r, nil
	case "friction":
		r := kine.NewFrictionResolver()
		r.Angular = rs.Angular
		return r, nil
	default:
		return nil, fmt.Errorf("resolver %q: %w", rs.Kind, ErrUnknownResolver)
	}
}

// Body creates the body described by bs. The material is left unset.
func (bs BodySpec) Body() (*kine.Body, error) {
	var collider *kine.Collider
	if bs.Collider != nil {
		c, err := bs.Collider.Collider()
		if err != nil {
			return nil, err
		}
		collider = c
	}

	var body *kine.Body
	if bs.Mass > 0 {
		body = kine.NewDynamicBody(bs.Position.Vec2(), bs.Mass, collider)
		body.Velocity.Linear = bs.Velocity.Vec2()
		body.Velocity.Angular = bs.AngularVelocity
		body.Forces.Add(bs.Force.Vec2())
		if bs.Inertia != nil {
			body.Inertia = kine.NewInertia(*bs.Inertia)
		}
	} else {
		body = kine.NewStaticBody(bs.Position.Vec2(), collider)
	}
	body.Rotation = kine.NormalizeAngle(bs.Rotation)
	body.UserData = bs.Name
	return body, nil
}

// BodyByName returns the first body of w whose UserData is name.
func BodyByName(w *kine.World, name string) *kine.Body {
	for i := 0; i < w.Len(); i++ {
		if b := w.At(i); b.UserData == name {
			return b
		}
	}
	return nil
}

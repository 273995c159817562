package kine

import (
	"log"
	"slices"
)

// Config holds the simulation-wide settings.
type Config struct {
	// Scale is the number of render units per world unit. The pipeline never reads it;
	// it is kept for renderers.
	Scale float64 `yaml:"scale"`

	// MaxSpeed limits the linear speed of every body after each step.
	// The default value of 0 disables the limit.
	MaxSpeed float64 `yaml:"max_speed"`
}

// DefaultConfig returns a config with a scale of 10 and no speed limit.
func DefaultConfig() Config {
	return Config{
		Scale:    10,
		MaxSpeed: 0,
	}
}

// SetSpeedLimit sets MaxSpeed. A limit <= 0 disables it.
func (c *Config) SetSpeedLimit(limit float64) {
	if limit < 0 {
		limit = 0
	}
	c.MaxSpeed = limit
}

// World owns a set of bodies and runs the simulation pipeline over them.
//
// Bodies are kept in insertion order, which is the iteration order of every stage.
type World struct {
	// UserData is an object that this world is associated with.
	UserData any

	Config Config

	// Resolver turns manifolds into velocities. Defaults to a ClassicResolver.
	Resolver Resolver

	// Materials resolves Body.Material. Defaults to an empty MaterialStore.
	Materials MaterialLookup

	bodies    []*Body
	index     map[Handle]int
	pairs     []Pair
	manifolds []Manifold
	stamp     uint
	currDT    float64
	locked    bool
}

// NewWorld allocates and initializes a World.
func NewWorld() *World {
	return &World{
		Config:    DefaultConfig(),
		Resolver:  NewClassicResolver(),
		Materials: NewMaterialStore(),
		bodies:    []*Body{},
		index:     map[Handle]int{},
	}
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// At returns the i-th body in insertion order.
func (w *World) At(i int) *Body {
	return w.bodies[i]
}

// Lookup returns the body with handle h or nil.
func (w *World) Lookup(h Handle) *Body {
	if i, ok := w.index[h]; ok {
		return w.bodies[i]
	}
	return nil
}

// Body returns the body with handle h.
func (w *World) Body(h Handle) (*Body, bool) {
	b := w.Lookup(h)
	return b, b != nil
}

// BodyCount returns the number of bodies in the world.
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// AddBody appends body to the world and returns its handle.
// Adding a body twice is a no-op.
func (w *World) AddBody(body *Body) Handle {
	w.assertUnlocked()
	if _, ok := w.index[body.handle]; ok {
		return body.handle
	}
	w.index[body.handle] = len(w.bodies)
	w.bodies = append(w.bodies, body)
	return body.handle
}

// AddBodies appends every body.
func (w *World) AddBodies(bodies ...*Body) {
	for _, b := range bodies {
		w.AddBody(b)
	}
}

// RemoveBody removes the body with handle h, keeping the order of the others.
func (w *World) RemoveBody(h Handle) bool {
	w.assertUnlocked()
	i, ok := w.index[h]
	if !ok {
		return false
	}
	w.bodies = slices.Delete(w.bodies, i, i+1)
	delete(w.index, h)
	for j := i; j < len(w.bodies); j++ {
		w.index[w.bodies[j].handle] = j
	}
	return true
}

// ContainsBody returns true if the body is in the world.
func (w *World) ContainsBody(body *Body) bool {
	_, ok := w.index[body.handle]
	return ok
}

// Step advances the world by dt.
//
// The stages run in order, each one finishing before the next starts:
// Integrate, BroadPhase, NarrowPhase, ResolveManifolds and the speed limit.
// dt is not validated; 0 or negative values are passed through.
func (w *World) Step(dt float64) {
	w.stamp++
	w.currDT = dt

	w.Lock()
	defer w.Unlock()

	Integrate(w, dt)
	w.pairs = BroadPhase(w, w.pairs)
	w.manifolds = NarrowPhase(w, w.pairs, w.manifolds)
	if w.Resolver != nil {
		ResolveManifolds(w, w.manifolds, w.Resolver, w.Materials)
	}
	ClampSpeed(w, w.Config.MaxSpeed)
}

// Pairs returns the broad phase candidates of the last step.
// The slice is reused by the next step.
func (w *World) Pairs() []Pair {
	return w.pairs
}

// Manifolds returns the collisions found during the last step.
// The slice is reused by the next step.
func (w *World) Manifolds() []Manifold {
	return w.manifolds
}

// Stats returns the diagnostic counters of the resolver.
func (w *World) Stats() (ticks, collisions uint32) {
	return ResolverStats(w.Resolver)
}

// TimeStep returns the dt of the last step.
func (w *World) TimeStep() float64 {
	return w.currDT
}

// Steps returns the number of steps taken.
func (w *World) Steps() uint {
	return w.stamp
}

// KineticEnergy returns the linear kinetic energy of all bodies.
func (w *World) KineticEnergy() float64 {
	var e float64
	for _, b := range w.bodies {
		e += b.KineticEnergy()
	}
	return e
}

// EachBody calls f for each body in insertion order.
//
// Example:
//
//	w.EachBody(func(body *kine.Body) {
//		fmt.Println(body.Position)
//	})
func (w *World) EachBody(f func(b *Body)) {
	w.Lock()
	defer w.Unlock()

	for _, b := range w.bodies {
		f(b)
	}
}

// EachManifold calls f for each manifold of the last step.
func (w *World) EachManifold(f func(m Manifold)) {
	for _, m := range w.manifolds {
		f(m)
	}
}

func (w *World) Lock() {
	w.locked = true
}

// IsLocked returns true inside Step and EachBody, when bodies cannot be added or removed.
func (w *World) IsLocked() bool {
	return w.locked
}

func (w *World) Unlock() {
	w.locked = false
}

func (w *World) assertUnlocked() {
	if w.locked {
		log.Panicln("World is locked")
	}
}

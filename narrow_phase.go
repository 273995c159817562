package kine

// NarrowPhase runs the exact shape test for each candidate pair and appends a manifold to
// dst[:0] for every real collision, in pair order.
//
// The initial force of the manifolds is left unset. Pairs whose bodies are gone, lost
// their collider or involve a line shape produce nothing.
func NarrowPhase(bodies BodySet, pairs []Pair, dst []Manifold) []Manifold {
	manifolds := dst[:0]
	for _, p := range pairs {
		a := bodies.Lookup(p.A)
		b := bodies.Lookup(p.B)
		if a == nil || b == nil || a.Collider == nil || b.Collider == nil {
			continue
		}
		if c, ok := Collide(a.WorldShape(), b.WorldShape()); ok {
			manifolds = append(manifolds, NewManifold(p.A, p.B, c))
		}
	}
	return manifolds
}

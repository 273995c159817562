package kine

// BroadPhase appends to dst[:0] every pair of bodies whose colliders share a layer and whose
// world bounding boxes overlap, and returns the result.
//
// Pairs are enumerated as (i, j) with i < j in set order, so no pair is emitted twice
// and a body is never paired with itself. Bodies without a collider are ignored.
// This is a plain O(n²) sweep.
func BroadPhase(bodies BodySet, dst []Pair) []Pair {
	pairs := dst[:0]
	n := bodies.Len()

	boxes := make([]BB, n)
	for i := range n {
		if b := bodies.At(i); b.Collider != nil {
			boxes[i] = b.Collider.GlobalBB(b.Position)
		}
	}

	for i := 0; i < n; i++ {
		a := bodies.At(i)
		if a.Collider == nil {
			continue
		}
		for j := i + 1; j < n; j++ {
			b := bodies.At(j)
			if b.Collider == nil {
				continue
			}
			if !a.Collider.Layer.Collides(b.Collider.Layer) {
				continue
			}
			if boxes[i].Intersects(boxes[j]) {
				pairs = append(pairs, Pair{a.handle, b.handle})
			}
		}
	}
	return pairs
}

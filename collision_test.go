package kine_test

import (
	"math"
	"testing"

	"github.com/setanarut/kine"
	"github.com/setanarut/vec"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearVec(a, b vec.Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestCollideCircles(t *testing.T) {
	a := kine.Circle{Center: vec.Vec2{X: 0, Y: 0}, Radius: 1}
	b := kine.Circle{Center: vec.Vec2{X: 1.5, Y: 0}, Radius: 1}

	c, ok := kine.Collide(a, b)
	if !ok {
		t.Fatal("expected contact")
	}
	if !nearVec(c.Normal, vec.Vec2{X: -1, Y: 0}) {
		t.Errorf("normal = %v, want (-1, 0)", c.Normal)
	}
	if !near(c.Depth, 0.5) {
		t.Errorf("depth = %v, want 0.5", c.Depth)
	}
	if !nearVec(c.Point, vec.Vec2{X: 0.75, Y: 0}) {
		t.Errorf("point = %v, want (0.75, 0)", c.Point)
	}

	touching := kine.Circle{Center: vec.Vec2{X: 2, Y: 0}, Radius: 1}
	if _, ok := kine.Collide(a, touching); ok {
		t.Error("touching circles should not collide")
	}
}

func TestCollideCoincidentCircles(t *testing.T) {
	a := kine.Circle{Radius: 1}
	c, ok := kine.Collide(a, a)
	if !ok {
		t.Fatal("expected contact")
	}
	if c.Normal != (vec.Vec2{X: 1, Y: 0}) || !near(c.Depth, 2) {
		t.Errorf("contact = %+v", c)
	}
}

func TestCollideCircleRect(t *testing.T) {
	circle := kine.Circle{Center: vec.Vec2{X: 0, Y: 1.8}, Radius: 1}
	rect := kine.Rect{Width: 2, Height: 2}

	c, ok := kine.Collide(circle, rect)
	if !ok {
		t.Fatal("expected contact")
	}
	if !nearVec(c.Normal, vec.Vec2{X: 0, Y: 1}) || !near(c.Depth, 0.2) {
		t.Errorf("contact = %+v", c)
	}
	if !nearVec(c.Point, vec.Vec2{X: 0, Y: 1}) {
		t.Errorf("point = %v, want (0, 1)", c.Point)
	}
}

func TestCollideCircleInsideRect(t *testing.T) {
	circle := kine.Circle{Center: vec.Vec2{X: 0, Y: 0.5}, Radius: 0.25}
	rect := kine.Rect{Width: 2, Height: 2}

	c, ok := kine.Collide(circle, rect)
	if !ok {
		t.Fatal("expected contact")
	}
	if !nearVec(c.Normal, vec.Vec2{X: 0, Y: 1}) || !near(c.Depth, 0.75) {
		t.Errorf("contact = %+v", c)
	}
}

func TestCollideRects(t *testing.T) {
	a := kine.Rect{Width: 2, Height: 2}
	b := kine.Rect{Center: vec.Vec2{X: 1.5, Y: 0.5}, Width: 2, Height: 2}

	c, ok := kine.Collide(a, b)
	if !ok {
		t.Fatal("expected contact")
	}
	if !nearVec(c.Normal, vec.Vec2{X: -1, Y: 0}) || !near(c.Depth, 0.5) {
		t.Errorf("contact = %+v", c)
	}
	if !nearVec(c.Point, vec.Vec2{X: 0.75, Y: 0.25}) {
		t.Errorf("point = %v", c.Point)
	}

	// equal overlap on both axes resolves along y
	d := kine.Rect{Center: vec.Vec2{X: 1, Y: 1}, Width: 2, Height: 2}
	c, _ = kine.Collide(a, d)
	if !nearVec(c.Normal, vec.Vec2{X: 0, Y: -1}) {
		t.Errorf("tie normal = %v, want (0, -1)", c.Normal)
	}

	edge := kine.Rect{Center: vec.Vec2{X: 2, Y: 0}, Width: 2, Height: 2}
	if _, ok := kine.Collide(a, edge); ok {
		t.Error("rects sharing an edge should not collide")
	}
}

func TestCollideAntisymmetric(t *testing.T) {
	shapes := []kine.Shape{
		kine.Circle{Center: vec.Vec2{X: 0, Y: 0}, Radius: 1},
		kine.Circle{Center: vec.Vec2{X: 0.7, Y: 0.9}, Radius: 0.6},
		kine.Circle{Center: vec.Vec2{X: 1.2, Y: -0.3}, Radius: 0.4},
		kine.Rect{Center: vec.Vec2{X: 0.5, Y: -0.5}, Width: 1.5, Height: 1},
		kine.Rect{Center: vec.Vec2{X: -0.4, Y: 0.8}, Width: 1, Height: 3},
		kine.Rect{Center: vec.Vec2{X: 1.1, Y: 0.2}, Width: 0.5, Height: 0.5},
		// centers aligned on one axis
		kine.Rect{Center: vec.Vec2{X: 0, Y: 10}, Width: 4, Height: 1},
		kine.Rect{Center: vec.Vec2{X: 1, Y: 10}, Width: 4, Height: 1},
		kine.Rect{Center: vec.Vec2{X: 10, Y: 0}, Width: 1, Height: 4},
		kine.Rect{Center: vec.Vec2{X: 10, Y: 1}, Width: 1, Height: 4},
	}
	tested := 0
	for i := range shapes {
		for j := range shapes {
			if i == j {
				continue
			}
			ab, okAB := kine.Collide(shapes[i], shapes[j])
			ba, okBA := kine.Collide(shapes[j], shapes[i])
			if okAB != okBA {
				t.Errorf("%v vs %v: ok %v / %v", shapes[i], shapes[j], okAB, okBA)
				continue
			}
			if !okAB {
				continue
			}
			tested++
			if !near(ab.Depth, ba.Depth) {
				t.Errorf("%v vs %v: depth %v / %v", shapes[i], shapes[j], ab.Depth, ba.Depth)
			}
			if !nearVec(ab.Normal, ba.Normal.Neg()) {
				t.Errorf("%v vs %v: normal %v / %v", shapes[i], shapes[j], ab.Normal, ba.Normal)
			}
			if !near(ab.Normal.Mag(), 1) {
				t.Errorf("%v vs %v: normal not unit", shapes[i], shapes[j])
			}
			if ab.Depth <= 0 {
				t.Errorf("%v vs %v: depth %v", shapes[i], shapes[j], ab.Depth)
			}
		}
	}
	if tested == 0 {
		t.Error("no colliding pairs")
	}
}

func TestCollideAlignedRects(t *testing.T) {
	tests := []struct {
		a, b   kine.Rect
		normal vec.Vec2
		depth  float64
	}{
		{
			a:      kine.Rect{Center: vec.Vec2{}, Width: 4, Height: 1},
			b:      kine.Rect{Center: vec.Vec2{X: 1}, Width: 4, Height: 1},
			normal: vec.Vec2{X: -1},
			depth:  3,
		},
		{
			a:      kine.Rect{Center: vec.Vec2{Y: 1}, Width: 1, Height: 4},
			b:      kine.Rect{Center: vec.Vec2{}, Width: 1, Height: 4},
			normal: vec.Vec2{Y: 1},
			depth:  3,
		},
	}
	for _, tt := range tests {
		c, ok := kine.Collide(tt.a, tt.b)
		if !ok {
			t.Fatalf("%v vs %v: no contact", tt.a, tt.b)
		}
		if c.Normal != tt.normal || !near(c.Depth, tt.depth) {
			t.Errorf("%v vs %v: normal %v depth %v, want %v %v", tt.a, tt.b, c.Normal, c.Depth, tt.normal, tt.depth)
		}
		r, _ := kine.Collide(tt.b, tt.a)
		if r.Normal != tt.normal.Neg() {
			t.Errorf("%v vs %v: reversed normal %v", tt.a, tt.b, r.Normal)
		}
	}
}

func TestLinesNeverCollide(t *testing.T) {
	line := kine.Line{Start: vec.Vec2{X: -2, Y: 0}, End: vec.Vec2{X: 2, Y: 0}}
	circle := kine.Circle{Radius: 1}
	rect := kine.Rect{Width: 1, Height: 1}
	cross := kine.Line{Start: vec.Vec2{X: 0, Y: -2}, End: vec.Vec2{X: 0, Y: 2}}

	for _, s := range []kine.Shape{circle, rect, cross} {
		if _, ok := kine.Collide(line, s); ok {
			t.Errorf("Collide(line, %v) reported a contact", s)
		}
		if _, ok := kine.Collide(s, line); ok {
			t.Errorf("Collide(%v, line) reported a contact", s)
		}
		if !kine.Intersects(line, s) || !kine.Intersects(s, line) {
			t.Errorf("line should intersect %v", s)
		}
	}

	far := kine.Line{Start: vec.Vec2{X: -2, Y: 5}, End: vec.Vec2{X: 2, Y: 5}}
	if kine.Intersects(far, circle) || kine.Intersects(far, rect) || kine.Intersects(far, line) {
		t.Error("distant line should not intersect")
	}

	collinear := kine.Line{Start: vec.Vec2{X: 1, Y: 0}, End: vec.Vec2{X: 3, Y: 0}}
	if !kine.Intersects(line, collinear) {
		t.Error("overlapping collinear lines should intersect")
	}
}

type oddShape struct {
	kine.Circle
}

func TestCollideUnknownShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	kine.Collide(oddShape{}, kine.Circle{Radius: 1})
}

func TestBB(t *testing.T) {
	a := kine.NewBB(0, 0, 2, 2)
	b := kine.NewBB(2, 0, 4, 2)
	if !a.Intersects(b) {
		t.Error("touching boxes intersect")
	}
	if x, y := a.Overlap(b); x != 0 || y != 2 {
		t.Errorf("overlap = %v, %v", x, y)
	}
	if !a.ContainsVect(vec.Vec2{X: 1, Y: 1}) || a.ContainsVect(vec.Vec2{X: 3, Y: 1}) {
		t.Error("ContainsVect")
	}
	if m := a.Merge(b); m != kine.NewBB(0, 0, 4, 2) {
		t.Errorf("merge = %v", m)
	}
	if a.Area() != 4 {
		t.Errorf("area = %v, want 4", a.Area())
	}
	if !a.IntersectsSegment(vec.Vec2{X: -1, Y: 1}, vec.Vec2{X: 1, Y: 1}) {
		t.Error("segment through box")
	}
	if a.IntersectsSegment(vec.Vec2{X: -1, Y: 3}, vec.Vec2{X: 3, Y: 3}) {
		t.Error("segment above box")
	}
	if c := kine.NewBBForCircle(vec.Vec2{X: 1, Y: 1}, 1); c != a {
		t.Errorf("circle bb = %v", c)
	}
}

func TestShapeBB(t *testing.T) {
	r := kine.Rect{Center: vec.Vec2{X: 1, Y: 1}, Width: 2, Height: 4}
	if r.BB() != kine.NewBB(0, -1, 2, 3) {
		t.Errorf("rect bb = %v", r.BB())
	}
	l := kine.Line{Start: vec.Vec2{X: 3, Y: -1}, End: vec.Vec2{X: 1, Y: 2}}
	if l.BB() != kine.NewBB(1, -1, 3, 2) {
		t.Errorf("line bb = %v", l.BB())
	}
	moved := l.Offset(vec.Vec2{X: 1, Y: 1}).(kine.Line)
	if moved.Start != (vec.Vec2{X: 4, Y: 0}) {
		t.Errorf("offset line = %v", moved)
	}
	if v := r.Vertices(); len(v) != 4 {
		t.Errorf("got %d vertices", len(v))
	}
}

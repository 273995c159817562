package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/setanarut/kine"
	"github.com/setanarut/vec"
)

// termDrawer renders a world onto terminal cells. World y points up, cells are roughly
// twice as tall as they are wide.
type termDrawer struct {
	screen tcell.Screen
	scale  float64
	flags  uint
}

func newTermDrawer(screen tcell.Screen, scale float64) *termDrawer {
	return &termDrawer{
		screen: screen,
		scale:  scale,
		flags:  kine.DrawShapes | kine.DrawCollisionPoints,
	}
}

func (d *termDrawer) cell(p vec.Vec2) (int, int) {
	w, h := d.screen.Size()
	x := float64(w)/2 + p.X*d.scale
	y := float64(h)/2 - p.Y*d.scale/2
	return int(math.Round(x)), int(math.Round(y))
}

func (d *termDrawer) plot(p vec.Vec2, r rune, c kine.FColor) {
	x, y := d.cell(p)
	d.screen.SetContent(x, y, r, nil, style(c))
}

func (d *termDrawer) line(a, b vec.Vec2, r rune, c kine.FColor) {
	x0, y0 := d.cell(a)
	x1, y1 := d.cell(b)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	st := style(c)
	e := dx + dy
	for {
		d.screen.SetContent(x0, y0, r, nil, st)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (d *termDrawer) DrawCircle(pos vec.Vec2, angle, radius float64, outline, fill kine.FColor, data any) {
	steps := max(12, int(2*math.Pi*radius*d.scale))
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		d.plot(pos.Add(vec.ForAngle(a).Scale(radius)), 'o', fill)
	}
	d.line(pos, pos.Add(vec.ForAngle(angle).Scale(radius)), '.', outline)
}

func (d *termDrawer) DrawSegment(a, b vec.Vec2, fill kine.FColor, data any) {
	d.line(a, b, '#', fill)
}

func (d *termDrawer) DrawPolygon(count int, verts []vec.Vec2, outline, fill kine.FColor, data any) {
	for i := range count {
		d.line(verts[i], verts[(i+1)%count], '#', fill)
	}
}

func (d *termDrawer) DrawDot(size float64, pos vec.Vec2, fill kine.FColor, data any) {
	d.plot(pos, '*', fill)
}

func (d *termDrawer) Flags() uint {
	return d.flags
}

func (d *termDrawer) OutlineColor() kine.FColor {
	return kine.FColor{R: 1, G: 1, B: 1, A: 1}
}

func (d *termDrawer) ShapeColor(body *kine.Body, data any) kine.FColor {
	if body.IsStatic() {
		return kine.FColor{R: 0.5, G: 0.5, B: 0.5, A: 1}
	}
	h := float64(body.Handle()%6) / 6
	return kine.FColor{R: float32(0.5 + 0.5*math.Cos(2*math.Pi*h)), G: float32(0.5 + 0.5*math.Cos(2*math.Pi*(h-1.0/3))), B: float32(0.5 + 0.5*math.Cos(2*math.Pi*(h-2.0/3))), A: 1}
}

func (d *termDrawer) CollisionPointColor() kine.FColor {
	return kine.FColor{R: 1, G: 0.2, B: 0.2, A: 1}
}

func (d *termDrawer) Data() any {
	return nil
}

func style(c kine.FColor) tcell.Style {
	color := tcell.NewRGBColor(int32(c.R*255), int32(c.G*255), int32(c.B*255))
	return tcell.StyleDefault.Foreground(color)
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

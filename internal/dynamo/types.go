package dynamo

import "math"

type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64  { return v.Sub(o).Len() }
func (v Vec2) IsValid() bool        { return isFinite(v.X) && isFinite(v.Y) }

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Body is a circular rigid body. Only Position and Velocity change after
// creation.
type Body struct {
	Position Vec2
	Velocity Vec2
	Radius   float64
	Mass     float64
}

func (b Body) IsValid() bool {
	return b.Position.IsValid() && b.Velocity.IsValid()
}

// Gap is the edge gap between two bodies: center distance minus both radii.
// Negative means they overlap.
func (b Body) Gap(o Body) float64 {
	return b.Position.Dist(o.Position) - b.Radius - o.Radius
}

func (b Body) Overlaps(o Body) bool {
	return b.Gap(o) < 0
}

func (b Body) KineticEnergy() float64 {
	return 0.5 * b.Mass * b.Velocity.Dot(b.Velocity)
}

func (b Body) Momentum() Vec2 {
	return b.Velocity.Scale(b.Mass)
}

// Bounds is the viewport, spanning [0, Width] x [0, Height].
type Bounds struct {
	Width, Height float64
}

// Contains reports whether the body's edge lies inside the bounds.
func (r Bounds) Contains(b Body) bool {
	return b.Position.X-b.Radius >= 0 && b.Position.X+b.Radius <= r.Width &&
		b.Position.Y-b.Radius >= 0 && b.Position.Y+b.Radius <= r.Height
}

// FrameStats summarises one physics frame.
type FrameStats struct {
	WallHits   int
	Contacts   int
	Degenerate int
	// PeakApproach is the largest closing speed among this frame's contacts.
	PeakApproach float64
}

func (s *FrameStats) Merge(o FrameStats) {
	s.WallHits += o.WallHits
	s.Contacts += o.Contacts
	s.Degenerate += o.Degenerate
	s.PeakApproach = math.Max(s.PeakApproach, o.PeakApproach)
}

type Metric interface {
	Name() string
	Observe(bodies []Body, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(bodies []Body, stats FrameStats, t float64)
}

func TotalKineticEnergy(bodies []Body) float64 {
	sum := 0.0
	for _, b := range bodies {
		sum += b.KineticEnergy()
	}
	return sum
}

func TotalMomentum(bodies []Body) Vec2 {
	var p Vec2
	for _, b := range bodies {
		p = p.Add(b.Momentum())
	}
	return p
}

func CloneBodies(bodies []Body) []Body {
	c := make([]Body, len(bodies))
	copy(c, bodies)
	return c
}

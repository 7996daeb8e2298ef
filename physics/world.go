package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

const (
	// Broad-phase resolution: resolv works in integer-sized cells, so world
	// metres are scaled up before they enter the space.
	spaceUnitsPerMetre = 16.0
	spaceCellSize      = 32
)

// Box is an axis-aligned static collider.
type Box struct {
	Min, Max mgl64.Vec3
	Layer    Layer
	Name     string
	Data     any // Owner of the collider, if any
}

// Center returns the midpoint of the box.
func (b *Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Contains reports whether p lies inside or on the box.
func (b *Box) Contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// ClosestPoint returns the point of the box nearest to p.
func (b *Box) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.Clamp(p[0], b.Min[0], b.Max[0]),
		mgl64.Clamp(p[1], b.Min[1], b.Max[1]),
		mgl64.Clamp(p[2], b.Min[2], b.Max[2]),
	}
}

// intersect runs a slab test against the box grown by inflate on every side.
// A ray that starts strictly inside the box does not hit it; one that starts on
// a face does, at distance zero.
func (b *Box) intersect(origin, dir mgl64.Vec3, inflate, maxDist float64) (float64, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	for i := 0; i < 3; i++ {
		lo, hi := b.Min[i]-inflate, b.Max[i]+inflate
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < lo || origin[i] > hi {
				return 0, false
			}
			continue
		}
		t1 := (lo - origin[i]) / dir[i]
		t2 := (hi - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmin < 0 || tmin > maxDist {
		return 0, false
	}
	return tmin, true
}

// World is a static box world with a resolv broad-phase over the XZ plane and
// the bodies it integrates.
type World struct {
	space            *resolv.Space
	originX, originZ float64
	boxes            []*Box
	bodies           []*Body
}

var _ Caster = (*World)(nil)

// NewWorld creates a world whose broad-phase covers [minX,maxX]x[minZ,maxZ].
// Colliders outside that footprint are never returned by casts.
func NewWorld(minX, minZ, maxX, maxZ float64) *World {
	w := cellAligned((maxX - minX) * spaceUnitsPerMetre)
	h := cellAligned((maxZ - minZ) * spaceUnitsPerMetre)
	return &World{
		space:   resolv.NewSpace(w, h, spaceCellSize, spaceCellSize),
		originX: minX,
		originZ: minZ,
	}
}

func cellAligned(units float64) int {
	cells := int(math.Ceil(units/spaceCellSize)) + 1
	if cells < 1 {
		cells = 1
	}
	return cells * spaceCellSize
}

func (w *World) toSpace(x, z float64) (float64, float64) {
	return (x - w.originX) * spaceUnitsPerMetre, (z - w.originZ) * spaceUnitsPerMetre
}

// AddBox registers a static collider.
func (w *World) AddBox(name string, min, max mgl64.Vec3, layer Layer) *Box {
	box := &Box{Min: min, Max: max, Layer: layer, Name: name}
	x, z := w.toSpace(min.X(), min.Z())
	obj := resolv.NewObject(x, z,
		(max.X()-min.X())*spaceUnitsPerMetre,
		(max.Z()-min.Z())*spaceUnitsPerMetre,
		layer.Tags()...)
	obj.Data = box
	w.space.Add(obj)
	w.boxes = append(w.boxes, box)
	return box
}

// Boxes returns every registered collider.
func (w *World) Boxes() []*Box {
	return w.boxes
}

// AddBody registers a body to be integrated by Step.
func (w *World) AddBody(b *Body) {
	w.bodies = append(w.bodies, b)
}

// Step integrates every registered body by dt.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		b.Step(dt)
	}
}

func (w *World) Raycast(origin, dir mgl64.Vec3, maxDist float64, mask Layer) (Hit, bool) {
	return w.cast(origin, dir, 0, maxDist, mask)
}

// SphereCast treats the sphere as a ray against boxes grown by the radius.
// Hit.Point is the box point nearest to the sphere centre at impact.
func (w *World) SphereCast(origin, dir mgl64.Vec3, radius, maxDist float64, mask Layer) (Hit, bool) {
	return w.cast(origin, dir, radius, maxDist, mask)
}

func (w *World) cast(origin, dir mgl64.Vec3, radius, maxDist float64, mask Layer) (Hit, bool) {
	if dir.Len() == 0 || maxDist < 0 || mask == LayerNone {
		return Hit{}, false
	}
	dir = dir.Normalize()
	end := origin.Add(dir.Mul(maxDist))

	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, box := range w.candidates(origin, end, radius, mask) {
		t, ok := box.intersect(origin, dir, radius, maxDist)
		if !ok || t >= best.Distance {
			continue
		}
		center := origin.Add(dir.Mul(t))
		point := center
		if radius > 0 {
			point = box.ClosestPoint(center)
		}
		best = Hit{Point: point, Distance: t, Collider: box}
		found = true
	}
	return best, found
}

// candidates returns boxes whose footprint shares a broad-phase cell with the
// swept segment.
func (w *World) candidates(from, to mgl64.Vec3, radius float64, mask Layer) []*Box {
	minX, maxX := math.Min(from.X(), to.X())-radius, math.Max(from.X(), to.X())+radius
	minZ, maxZ := math.Min(from.Z(), to.Z())-radius, math.Max(from.Z(), to.Z())+radius

	x, z := w.toSpace(minX, minZ)
	// resolv trims one unit off the far edge, pad both sides to compensate
	probe := resolv.NewObject(x-1, z-1,
		(maxX-minX)*spaceUnitsPerMetre+2,
		(maxZ-minZ)*spaceUnitsPerMetre+2)
	w.space.Add(probe)
	collision := probe.Check(0, 0, mask.Tags()...)
	w.space.Remove(probe)

	if collision == nil {
		return nil
	}

	boxes := make([]*Box, 0, len(collision.Objects))
	for _, obj := range collision.Objects {
		box, ok := obj.Data.(*Box)
		if !ok || box.Layer&mask == 0 {
			continue
		}
		boxes = append(boxes, box)
	}
	return boxes
}

// Overlapping returns boxes in mask that overlap the given bounds.
func (w *World) Overlapping(min, max mgl64.Vec3, mask Layer) []*Box {
	var out []*Box
	for _, box := range w.candidates(min, max, 0, mask) {
		if box.Max.X() < min.X() || box.Min.X() > max.X() ||
			box.Max.Y() < min.Y() || box.Min.Y() > max.Y() ||
			box.Max.Z() < min.Z() || box.Min.Z() > max.Z() {
			continue
		}
		out = append(out, box)
	}
	return out
}

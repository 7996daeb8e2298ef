// Package leveldata parses arena maps authored in Tiled. It has no
// dependencies on ebitengine or donburi; it returns plain data in metres.
//
// The map plane is the world XZ plane: Tiled x maps to world X, Tiled y maps
// to world Z, and one tile is one metre. Vertical extents come from the
// object properties "bottom" and "top".
package leveldata

import "github.com/go-gl/mathgl/mgl64"

// Object classes recognised in the map
const (
	ClassGround = "ground"
	ClassLedge  = "ledge"
	ClassDamage = "damage"
	ClassHeal   = "heal"
)

// Arena holds everything parsed from a map file.
type Arena struct {
	Name     string
	Min, Max mgl64.Vec3 // Footprint of the map, Y unused
	Boxes    []BoxDef
	Spawn    SpawnPoint
	Triggers []TriggerDef
}

// BoxDef is a static collider.
type BoxDef struct {
	Name     string
	Class    string // ClassGround or ClassLedge
	Min, Max mgl64.Vec3
}

// SpawnPoint is where the player starts. Position is the point on the floor.
type SpawnPoint struct {
	Position mgl64.Vec3
	Yaw      float64 // Degrees
}

// TriggerDef is a damage or heal volume.
type TriggerDef struct {
	Name     string
	Class    string // ClassDamage or ClassHeal
	Min, Max mgl64.Vec3
	Amount   float64
	OverTime bool
	Ticks    int
}

package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

// Object group names
const (
	groupColliders = "Colliders"
	groupSpawn     = "PlayerSpawn"
	groupTriggers  = "Triggers"
)

// Defaults supplies values for trigger properties the map leaves out.
type Defaults struct {
	TriggerAmount float64
	TriggerTicks  int
	TriggerHeight float64
}

// LoadArena parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string, defaults Defaults) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("TMX %s: tile size must be positive", tmxPath)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	toWorld := func(x, y float64) (float64, float64) {
		return x / tileW, y / tileH
	}

	arena := &Arena{
		Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Max:  mgl64.Vec3{float64(levelMap.Width), 0, float64(levelMap.Height)},
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupColliders:
			for _, o := range og.Objects {
				class := objectClass(o)
				if class != ClassGround && class != ClassLedge {
					return nil, fmt.Errorf("TMX %s: object %d has unknown collider class %q", tmxPath, o.ID, class)
				}
				min, max := objectBounds(o, toWorld, 0)
				if max.Y() <= min.Y() {
					return nil, fmt.Errorf("TMX %s: object %d has top below bottom", tmxPath, o.ID)
				}
				arena.Boxes = append(arena.Boxes, BoxDef{
					Name:  objectName(o, class),
					Class: class,
					Min:   min,
					Max:   max,
				})
			}

		case groupSpawn:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			x, z := toWorld(o.X, o.Y)
			arena.Spawn = SpawnPoint{
				Position: mgl64.Vec3{x, o.Properties.GetFloat("height"), z},
				Yaw:      o.Properties.GetFloat("yaw"),
			}
			spawnFound = true

		case groupTriggers:
			for _, o := range og.Objects {
				class := objectClass(o)
				if class != ClassDamage && class != ClassHeal {
					return nil, fmt.Errorf("TMX %s: object %d has unknown trigger class %q", tmxPath, o.ID, class)
				}
				min, max := objectBounds(o, toWorld, defaults.TriggerHeight)
				t := TriggerDef{
					Name:     objectName(o, class),
					Class:    class,
					Min:      min,
					Max:      max,
					Amount:   defaults.TriggerAmount,
					OverTime: o.Properties.GetBool("overTime"),
				}
				if hasProperty(o.Properties, "amount") {
					t.Amount = o.Properties.GetFloat("amount")
				}
				if t.OverTime {
					t.Ticks = defaults.TriggerTicks
					if hasProperty(o.Properties, "ticks") {
						t.Ticks = o.Properties.GetInt("ticks")
					}
					if t.Ticks <= 0 {
						return nil, fmt.Errorf("TMX %s: over-time trigger %d needs positive ticks", tmxPath, o.ID)
					}
				}
				arena.Triggers = append(arena.Triggers, t)
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("TMX %s: no %s object", tmxPath, groupSpawn)
	}
	return arena, nil
}

func objectClass(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type
}

func objectName(o *tiled.Object, class string) string {
	if o.Name != "" {
		return o.Name
	}
	return fmt.Sprintf("%s-%d", class, o.ID)
}

// objectBounds converts a rectangle object to a box. A missing "top" uses
// bottom+height.
func objectBounds(o *tiled.Object, toWorld func(x, y float64) (float64, float64), height float64) (mgl64.Vec3, mgl64.Vec3) {
	x0, z0 := toWorld(o.X, o.Y)
	x1, z1 := toWorld(o.X+o.Width, o.Y+o.Height)
	bottom := o.Properties.GetFloat("bottom")
	top := bottom + height
	if hasProperty(o.Properties, "top") {
		top = o.Properties.GetFloat("top")
	}
	return mgl64.Vec3{x0, bottom, z0}, mgl64.Vec3{x1, top, z1}
}

func hasProperty(p tiled.Properties, name string) bool {
	return len(p.Get(name)) > 0
}

// Package assets embeds the arena maps and sound effects shipped with the
// game.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/shared/leveldata"
)

//go:embed all:levels
var levelFS embed.FS

// triggerHeight is the vertical extent of a trigger volume without a "top".
const triggerHeight = 2

// LevelNames lists the embedded maps in name order.
func LevelNames() ([]string, error) {
	entries, err := fs.ReadDir(levelFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("read levels: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(path.Ext(entry.Name()), ".tmx") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// LoadArena parses an embedded map, e.g. "arena.tmx". Trigger defaults come
// from the health configuration.
func LoadArena(name string) (*leveldata.Arena, error) {
	return leveldata.LoadArena(levelFS, path.Join("levels", name), leveldata.Defaults{
		TriggerAmount: cfg.Health.TriggerAmount,
		TriggerTicks:  cfg.Health.TriggerTicks,
		TriggerHeight: triggerHeight,
	})
}

package systems

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/quasilyte/gdata"
)

const lookSettingsKey = "look"

// ItemStore is the key/value storage behind settings persistence.
// *gdata.Manager satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var _ ItemStore = (*gdata.Manager)(nil)

// LookSettings are the per-user look preferences stored on disk. Only values
// the player changed in the look menu are set; nil fields defer to the tuning
// file.
type LookSettings struct {
	Sensitivity  *float64 `json:"sensitivity,omitempty"`
	InvertY      *bool    `json:"invertY,omitempty"`
	ToggleWalk   *bool    `json:"toggleWalk,omitempty"`
	ToggleSprint *bool    `json:"toggleSprint,omitempty"`
	ToggleCrouch *bool    `json:"toggleCrouch,omitempty"`
	ToggleZoom   *bool    `json:"toggleZoom,omitempty"`
}

// OpenSettingsStore opens the per-user data directory for appName.
func OpenSettingsStore(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return m, nil
}

// LoadLookSettings reads saved preferences. It returns nil when nothing has
// been saved yet.
func LoadLookSettings(store ItemStore) (*LookSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(lookSettingsKey)
	if err != nil {
		log.Printf("Warning: Could not load look settings: %v", err)
		return nil, fmt.Errorf("load look settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings LookSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved look settings: %v", err)
		return nil, fmt.Errorf("parse look settings: %w", err)
	}
	return &settings, nil
}

// SaveLookSettings writes preferences to the store.
func SaveLookSettings(store ItemStore, s LookSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize look settings: %w", err)
	}
	if err := store.SaveItem(lookSettingsKey, data); err != nil {
		log.Printf("Warning: Could not save look settings: %v", err)
		return fmt.Errorf("save look settings: %w", err)
	}
	return nil
}

// ApplyLookSettings overlays saved preferences on the active configuration.
// Unset fields and a non-positive sensitivity are ignored.
func ApplyLookSettings(s *LookSettings) {
	if s == nil {
		return
	}
	if s.Sensitivity != nil && *s.Sensitivity > 0 {
		cfg.Camera.Sensitivity = *s.Sensitivity
	}
	applyBool(&cfg.Camera.InvertY, s.InvertY)
	applyBool(&cfg.Input.ToggleWalk, s.ToggleWalk)
	applyBool(&cfg.Input.ToggleSprint, s.ToggleSprint)
	applyBool(&cfg.Input.ToggleCrouch, s.ToggleCrouch)
	applyBool(&cfg.Input.ToggleZoom, s.ToggleZoom)
}

func applyBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

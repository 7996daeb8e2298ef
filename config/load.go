package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk tuning overlay. Sections that are omitted keep their
// current values, and so do omitted fields inside a section.
type File struct {
	Sim      *SimConfig     `yaml:"sim"`
	Player   *PlayerConfig  `yaml:"player"`
	Features *FeatureConfig `yaml:"features"`
	Camera   *CameraConfig  `yaml:"camera"`
	Health   *HealthConfig  `yaml:"health"`
	HUD      *HUDConfig     `yaml:"hud"`
	Menu     *MenuConfig    `yaml:"menu"`
	Input    *InputConfig   `yaml:"input"`
	Audio    *AudioConfig   `yaml:"audio"`
}

// Load overlays the YAML file at path onto the global configuration.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	log.Printf("[config] loaded %s", path)
	return nil
}

// Apply overlays YAML data onto the global configuration. Unknown keys are
// rejected and a failed parse leaves the globals untouched.
func Apply(data []byte) error {
	sim, player, features, camera := Sim, Player, Features, Camera
	health, hud, menu, input, audio := Health, HUD, Menu, Input, Audio

	f := File{
		Sim:      &sim,
		Player:   &player,
		Features: &features,
		Camera:   &camera,
		Health:   &health,
		HUD:      &hud,
		Menu:     &menu,
		Input:    &input,
		Audio:    &audio,
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse: %w", err)
	}

	if sim.TickRate <= 0 {
		return fmt.Errorf("sim.tickRate must be positive, got %d", sim.TickRate)
	}
	if player.Mass <= 0 {
		return fmt.Errorf("player.mass must be positive, got %v", player.Mass)
	}
	if menu.MinSensitivity <= 0 || menu.MaxSensitivity < menu.MinSensitivity {
		return fmt.Errorf("menu sensitivity range [%v, %v] is invalid", menu.MinSensitivity, menu.MaxSensitivity)
	}
	if health.Max <= health.Min {
		return fmt.Errorf("health.max (%v) must exceed health.min (%v)", health.Max, health.Min)
	}

	Sim, Player, Features, Camera = sim, player, features, camera
	Health, HUD, Menu, Input, Audio = health, hud, menu, input, audio
	return nil
}

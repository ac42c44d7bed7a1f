package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hexclash/protocol"
)

// Tuning holds the deploy-time knobs loaded from a YAML file.
type Tuning struct {
	Server ServerTuning `yaml:"server"`
	Sim    SimTuning    `yaml:"sim"`
}

// ServerTuning holds listener settings.
type ServerTuning struct {
	Addr   string `yaml:"addr"`
	WebDir string `yaml:"web_dir"`
}

// SimTuning holds simulation rate settings.
type SimTuning struct {
	TickHz      int `yaml:"tick_hz"`
	BroadcastHz int `yaml:"broadcast_hz"`
}

// Defaults returns the tuning used when no file is present.
func Defaults() *Tuning {
	return &Tuning{
		Server: ServerTuning{
			Addr:   ":8080",
			WebDir: "web",
		},
		Sim: SimTuning{
			TickHz:      protocol.SimTickHz,
			BroadcastHz: protocol.BroadcastHz,
		},
	}
}

// LoadTuning reads tuning from a YAML file, backfilling defaults for
// anything unset. A missing file yields pure defaults without error.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}

	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning file: %w", err)
	}

	// Set defaults if not provided
	def := Defaults()
	if t.Server.Addr == "" {
		t.Server.Addr = def.Server.Addr
	}
	if t.Server.WebDir == "" {
		t.Server.WebDir = def.Server.WebDir
	}
	if t.Sim.TickHz <= 0 {
		t.Sim.TickHz = def.Sim.TickHz
	}
	if t.Sim.BroadcastHz <= 0 {
		t.Sim.BroadcastHz = def.Sim.BroadcastHz
	}
	return &t, nil
}

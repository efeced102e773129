package config

import "sort"

var Presets = map[string]*Config{
	"realtime": {
		SecondsPerStep: 1, StepsPerFrame: 60, Frames: 1440, FPS: 30,
		Focus: "Kerbol", Scale: 3.0e-9, LogLevel: "info",
	},
	"kerbin": {
		SecondsPerStep: 1, StepsPerFrame: 120, Frames: 720, FPS: 30,
		Focus: "Kerbin", Scale: 1.0e-6, Highlight: true, LogLevel: "info",
	},
	"jool": {
		SecondsPerStep: 1, StepsPerFrame: 300, Frames: 1152, FPS: 30,
		Focus: "Jool", Scale: 2.5e-7, Highlight: true, LogLevel: "info",
	},
	"coarse": {
		SecondsPerStep: 10, StepsPerFrame: 360, Frames: 2400, FPS: 30,
		Focus: "Kerbol", Scale: 1.0e-9, LogLevel: "warn",
	},
	"year": {
		SecondsPerStep: 30, StepsPerFrame: 480, Frames: 640, FPS: 60,
		Focus: "Kerbol", Scale: 3.0e-10, Highlight: true, LogLevel: "warn",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package config

import "sort"

// Presets are rules worth watching from a single seed.
var Presets = map[string]*Config{
	"chaos":      {Rule: 30, Theme: "plain"},
	"sierpinski": {Rule: 90, Theme: "retro"},
	"complex":    {Rule: 110, Theme: "ocean"},
	"triangles":  {Rule: 126, Theme: "plain"},
	"nested":     {Rule: 146, Theme: "cyberpunk"},
	"xor":        {Rule: 150, Theme: "retro"},
	"lattice":    {Rule: 182, Theme: "ocean"},
}

// SuggestedRules are listed in the usage text.
var SuggestedRules = []int{110, 126, 146, 150, 182}

// GetPreset returns the named preset applied over the defaults, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Rule = p.Rule
	if p.Theme != "" {
		cfg.Theme = p.Theme
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package config

import "sort"

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"sparse": withBalls(BallsConfig{
		Min: 10, Max: 20, MinRadius: 10, MaxRadius: 25, MaxInitialSpeed: 120,
	}),
	"crowded": withBalls(BallsConfig{
		Min: 250, Max: 300, MinRadius: 3, MaxRadius: 12, MaxInitialSpeed: 80,
	}),
	"giants": withBalls(BallsConfig{
		Min: 6, Max: 10, MinRadius: 60, MaxRadius: 90, MaxInitialSpeed: 60,
	}),
}

func withBalls(b BallsConfig) *Config {
	cfg := DefaultConfig()
	b.MassFactor = cfg.Balls.MassFactor
	b.MaxAttempts = cfg.Balls.MaxAttempts
	cfg.Balls = b
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

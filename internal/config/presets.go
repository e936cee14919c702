package config

var presets = map[string]*Config{
	"default": {
		WindowWidth: 1280, WindowHeight: 720, TargetFPS: 60,
		PointSize: 3.0, Theme: "minimal", PlaybackFPS: 30, ColorBySpeed: true,
	},
	"presentation": {
		WindowWidth: 1920, WindowHeight: 1080, TargetFPS: 60,
		PointSize: 5.0, Theme: "minimal", PlaybackFPS: 24, ColorBySpeed: true,
	},
	"inspect": {
		WindowWidth: 1280, WindowHeight: 720, TargetFPS: 60,
		PointSize: 4.0, Theme: "retro", PlaybackFPS: 5, ColorBySpeed: false,
	},
}

// Preset returns a named preset config, nil if unknown.
func Preset(name string) *Config {
	cfg, ok := presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// PresetNames lists the available presets.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}

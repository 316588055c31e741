package config

var Presets = map[string]*Config{
	"draft": {
		OutDir:      "out",
		Width:       160,
		Supersample: 1,
		AbsScaling:  DefaultAbsScaling,
	},
	"readme": {
		OutDir:      "out",
		Width:       400,
		Supersample: 1,
		AbsScaling:  DefaultAbsScaling,
	},
	"poster": {
		OutDir:      "out",
		Width:       1600,
		Supersample: 2,
		AbsScaling:  DefaultAbsScaling,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

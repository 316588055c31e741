package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/zplot/internal/catalog"
	"github.com/san-kum/zplot/internal/funcs"
)

const (
	DefaultOutDir      = "out"
	DefaultWidth       = 400
	DefaultSupersample = 1
	DefaultAbsScaling  = 2.1
)

type Config struct {
	OutDir      string       `yaml:"out_dir"`
	Width       int          `yaml:"width"`
	Supersample int          `yaml:"supersample"`
	Jobs        int          `yaml:"jobs"`
	Contours    bool         `yaml:"contours"`
	AbsScaling  float64      `yaml:"abs_scaling"`
	Figures     []string     `yaml:"figures"`
	Series      SeriesConfig `yaml:"series"`
}

// SeriesConfig sets truncation lengths for the series-defined figures.
// Zero means the built-in default for that series.
type SeriesConfig struct {
	Lambert1Terms    int `yaml:"lambert1_terms"`
	LambertPhiTerms  int `yaml:"lambert_phi_terms"`
	VonMangoldtTerms int `yaml:"von_mangoldt_terms"`
	LiouvilleTerms   int `yaml:"liouville_terms"`
	EulerTerms       int `yaml:"euler_terms"`
}

func DefaultConfig() *Config {
	return &Config{
		OutDir:      DefaultOutDir,
		Width:       DefaultWidth,
		Supersample: DefaultSupersample,
		AbsScaling:  DefaultAbsScaling,
		Series: SeriesConfig{
			Lambert1Terms:    funcs.DefaultLambert1Terms,
			LambertPhiTerms:  funcs.DefaultPhiTerms,
			VonMangoldtTerms: funcs.DefaultVonMangoldtTerms,
			LiouvilleTerms:   funcs.DefaultLiouvilleTerms,
			EulerTerms:       funcs.DefaultEulerTerms,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CatalogParams converts the series settings into catalog build
// parameters.
func (c *Config) CatalogParams() catalog.Params {
	return catalog.Params{
		Lambert1Terms:    c.Series.Lambert1Terms,
		LambertPhiTerms:  c.Series.LambertPhiTerms,
		VonMangoldtTerms: c.Series.VonMangoldtTerms,
		LiouvilleTerms:   c.Series.LiouvilleTerms,
		EulerTerms:       c.Series.EulerTerms,
	}
}

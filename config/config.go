package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/soocke/mosaic-pix-go/domain/mosaic"
)

// Config holds runtime configuration for the mosaic editor. Fields may be
// loaded from a JSON file and are written back when the user changes them.
type Config struct {
	Debug bool `json:"debug"`

	// Radius is the last used mosaic block radius (1-20).
	Radius int `json:"radius"`

	// Display box bounding the scaled image preview.
	PreviewMaxW int `json:"preview_max_w"`
	PreviewMaxH int `json:"preview_max_h"`

	// Last directories used by the open/save dialogs.
	LastOpenDir string `json:"last_open_dir"`
	LastSaveDir string `json:"last_save_dir"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:       false,
		Radius:      5,
		PreviewMaxW: 720,
		PreviewMaxH: 480,
	}
}

// Validate clamps values to safe ranges.
func (c *Config) Validate() error {
	c.Radius = mosaic.ClampRadius(c.Radius)
	if c.PreviewMaxW < 100 {
		c.PreviewMaxW = 720
	}
	if c.PreviewMaxH < 100 {
		c.PreviewMaxH = 480
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns DefaultConfig(). On JSON error it returns
// defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format, creating
// parent directories as needed.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

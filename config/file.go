package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadFile overlays a TOML file onto the defaults. Keys that are absent keep
// their default value.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return Apply(data)
}

// Apply overlays TOML-encoded settings onto the global configuration
func Apply(data []byte) error {
	doc := struct {
		Window   *Config         `toml:"window"`
		Marquee  *MarqueeConfig  `toml:"marquee"`
		Backdrop *BackdropConfig `toml:"backdrop"`
		Caption  *CaptionConfig  `toml:"caption"`
		Gallery  *GalleryConfig  `toml:"gallery"`
		Debug    *DebugConfig    `toml:"debug"`
	}{
		Window:   C,
		Marquee:  &Marquee,
		Backdrop: &Backdrop,
		Caption:  &Caption,
		Gallery:  &Gallery,
		Debug:    &Debug,
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

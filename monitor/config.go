package monitor

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"

	"compvid/emu/log"
)

type Config struct {
	Video VideoConfig `toml:"video"`
	Audio AudioConfig `toml:"audio"`
}

type VideoConfig struct {
	// Scale is the window size multiplier over the native 40x24 grid.
	Scale int `toml:"scale"`
	// CRTShader renders scanlines and vignetting over the picture.
	CRTShader    bool `toml:"crt_shader"`
	DisableVSync bool `toml:"disable_vsync"`
}

type AudioConfig struct {
	// SampleRate of the signal probe output, in Hz.
	SampleRate int `toml:"sample_rate"`
}

func DefaultConfig() Config {
	return Config{
		Video: VideoConfig{Scale: 16, CRTShader: true},
		Audio: AudioConfig{SampleRate: 48000},
	}
}

var ConfigDir string = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("compvid")
	if err := configdir.MakePath(dir); err != nil {
		log.ModMonitor.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})()

const cfgFilename = "config.toml"

// LoadConfigOrDefault loads the configuration from the compvid config
// directory, or provides a default one.
func LoadConfigOrDefault() Config {
	cfg := DefaultConfig()
	_, err := toml.DecodeFile(filepath.Join(ConfigDir, cfgFilename), &cfg)
	if err != nil {
		return DefaultConfig()
	}
	if cfg.Video.Scale <= 0 {
		cfg.Video.Scale = DefaultConfig().Video.Scale
	}
	if cfg.Audio.SampleRate <= 0 {
		cfg.Audio.SampleRate = DefaultConfig().Audio.SampleRate
	}
	return cfg
}

// SaveConfig into the compvid config directory.
func SaveConfig(cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(ConfigDir, cfgFilename), buf, 0644)
}

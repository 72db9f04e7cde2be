package utils

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation and its front ends
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	AliveProbability    float64       `json:"alive_probability"`
	FrameRate           time.Duration `json:"frame_rate"`
	Seed                int64         `json:"seed"` // 0 picks a time-based seed
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"` // 0 runs until interrupted
	Patterns            bool          `json:"patterns"`
	Scale               int           `json:"scale"`
	Addr                string        `json:"addr"`
	Debug               bool          `json:"debug"`
}

// DefaultConfig returns the terminal front end defaults
func DefaultConfig() Config {
	return Config{
		Width:               70,
		Height:              70,
		AliveProbability:    0.1,
		FrameRate:           100 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		Scale:               5,
		Addr:                "localhost:8080",
	}
}

// WindowConfig returns the pixel window defaults: a 1200x800 window of 5px cells
func WindowConfig() Config {
	config := DefaultConfig()
	config.Width = 1200 / 5
	config.Height = 800 / 5
	config.FrameRate = 50 * time.Millisecond
	return config
}

// LoadConfig loads configuration from a JSON file on top of base
func LoadConfig(filename string, base Config) (Config, error) {
	config := base

	data, err := os.ReadFile(filename)
	if err != nil {
		return base, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return base, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ApplyEnv overrides fields from GOL_* environment variables
func (c *Config) ApplyEnv() error {
	ints := map[string]*int{
		"GOL_WIDTH":           &c.Width,
		"GOL_HEIGHT":          &c.Height,
		"GOL_MAX_GENERATIONS": &c.MaxGenerations,
		"GOL_SCALE":           &c.Scale,
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "[ApplyEnv] invalid %s", key)
		}
		*dst = n
	}

	if v, ok := os.LookupEnv("GOL_ALIVE_PROBABILITY"); ok {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrap(err, "[ApplyEnv] invalid GOL_ALIVE_PROBABILITY")
		}
		c.AliveProbability = p
	}
	if v, ok := os.LookupEnv("GOL_FRAME_RATE"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(err, "[ApplyEnv] invalid GOL_FRAME_RATE")
		}
		c.FrameRate = d
	}
	if v, ok := os.LookupEnv("GOL_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, "[ApplyEnv] invalid GOL_SEED")
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv("GOL_ADDR"); ok {
		c.Addr = v
	}
	return nil
}

// Validate rejects configurations the engine cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("[Validate] world must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.AliveProbability < 0 || c.AliveProbability >= 1:
		return errors.Errorf("[Validate] alive probability %v outside [0, 1)", c.AliveProbability)
	case c.FrameRate <= 0:
		return errors.Errorf("[Validate] frame rate must be positive, got %v", c.FrameRate)
	case c.Scale <= 0:
		return errors.Errorf("[Validate] scale must be positive, got %d", c.Scale)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] max generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}

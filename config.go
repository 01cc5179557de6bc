package main

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
)

// Config controls the timing and behaviour of every demo.
// Precedence: defaults < config file < environment < flags.
type Config struct {
	DarkMode        bool    `json:"dark_mode"`        // start in the dark theme
	FPS             int     `json:"fps"`              // animation frame rate
	FlipSeconds     float64 `json:"flip_seconds"`     // flip card animation length
	FadeSeconds     float64 `json:"fade_seconds"`     // theme cross-fade length
	DefaultDistance float64 `json:"default_distance"` // motion lab move distance (cells)
	DefaultSpeed    float64 `json:"default_speed"`    // motion lab speed (cells/second)
	LoaderItems     float64 `json:"loader_items"`     // simulated items to load
	LoaderRate      float64 `json:"loader_rate"`      // items loaded per second
	SpringFrequency float64 `json:"spring_frequency"` // modal drop-in spring
	SpringDamping   float64 `json:"spring_damping"`
}

// DefaultConfig returns the settings the demos ship with.
func DefaultConfig() Config {
	return Config{
		DarkMode:        true,
		FPS:             30,
		FlipSeconds:     0.6,
		FadeSeconds:     0.25,
		DefaultDistance: 10,
		DefaultSpeed:    20,
		LoaderItems:     120,
		LoaderRate:      60,
		SpringFrequency: 6.0,
		SpringDamping:   0.5,
	}
}

func applyEnvOverrides(config Config) Config {
	if val := os.Getenv("FLIPDECK_DARK_MODE"); val != "" {
		config.DarkMode = val == "true"
	}
	if val := os.Getenv("FLIPDECK_FPS"); val != "" {
		if fps, err := strconv.Atoi(val); err == nil && fps > 0 {
			config.FPS = fps
		}
	}
	if val := os.Getenv("FLIPDECK_FLIP_SECONDS"); val != "" {
		if secs, err := strconv.ParseFloat(val, 64); err == nil && secs > 0 {
			config.FlipSeconds = secs
		}
	}
	if val := os.Getenv("FLIPDECK_DISTANCE"); val != "" {
		if d, err := strconv.ParseFloat(val, 64); err == nil {
			config.DefaultDistance = d
		}
	}
	if val := os.Getenv("FLIPDECK_SPEED"); val != "" {
		if s, err := strconv.ParseFloat(val, 64); err == nil {
			config.DefaultSpeed = s
		}
	}

	return config
}

func ParseFlags() Config {
	config := DefaultConfig()

	var configFile string
	flag.StringVar(&configFile, "config", "", "Path to config file")
	flag.BoolVar(&config.DarkMode, "dark", config.DarkMode, "Start in the dark theme")
	flag.IntVar(&config.FPS, "fps", config.FPS, "Animation frame rate")
	flag.Float64Var(&config.FlipSeconds, "flip", config.FlipSeconds, "Flip duration in seconds")
	flag.Float64Var(
		&config.DefaultDistance,
		"distance",
		config.DefaultDistance,
		"Motion lab move distance",
	)
	flag.Float64Var(
		&config.DefaultSpeed,
		"speed",
		config.DefaultSpeed,
		"Motion lab speed in cells/second",
	)

	flag.Parse()

	// If config file specified, load it (overrides flag defaults)
	if configFile != "" {
		if fileConfig, err := loadConfigFromFile(configFile); err == nil {
			config = fileConfig
		}
	}

	return applyEnvOverrides(config)
}

func loadConfigFromFile(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return DefaultConfig(), err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), err
	}
	return config, nil
}

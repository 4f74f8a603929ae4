package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// config is the contents of the config file.
type config struct {
	// Prompt is printed before each line read interactively.
	Prompt string `yaml:"prompt"`
	// ExitMessage is printed when an empty line ends the REPL.
	ExitMessage string `yaml:"exit_message"`
	// Trace logs each statement before it runs.
	Trace bool `yaml:"trace"`
	// TimeFormat is the strftime format of trace timestamps.
	TimeFormat string `yaml:"time_format"`
	// Encoding is the default text encoding of scripts.
	Encoding string `yaml:"encoding"`
}

func defaultConfig() config {
	return config{
		Prompt:      "> ",
		ExitMessage: "Exiting...",
		TimeFormat:  "%H:%M:%S",
	}
}

// configPath finds the config file to use. explicit is true if the path was
// requested by the user rather than being the default location.
func configPath(flagPath string) (path string, explicit bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if p := os.Getenv("LOX_CONFIG"); p != "" {
		return p, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".config", "lox", "config.yaml"), false
}

// loadConfig reads the config file, if there is one, over the defaults. A
// missing file at the default location is not an error.
func loadConfig(flagPath string) (config, error) {
	cfg := defaultConfig()
	path, explicit := configPath(flagPath)
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

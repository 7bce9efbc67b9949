package config

import (
	"encoding/json"
	"os"
)

// Config holds the optional settings read from config.json. Flags override
// any value set here.
type Config struct {
	InputFasta string `json:"input_fasta"`
	LogFile    string `json:"log_file"`
	LogLevel   string `json:"log_level"`
	WrapWidth  int    `json:"wrap_width"`
}

// Load reads a JSON config from the given path. If path is empty, looks for
// ./config.json. A missing file is not an error and yields defaults;
// malformed JSON is.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "config.json"
	}
	f, err := os.Open(path)
	if err != nil {
		// not fatal: return defaults
		return &Config{}, nil
	}
	defer f.Close()
	var c Config
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

package dui

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadStyle reads a TOML theme file and returns the resulting style.
// Keys absent from the file keep their DefaultStyle values; unknown keys
// are an error so typos in theme files fail loudly.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read theme: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return s, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return s, nil
}

// SaveStyle writes a style to a TOML theme file.
func SaveStyle(path string, s Style) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}

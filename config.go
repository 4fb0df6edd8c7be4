package moneyfmt

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type styleConfig struct {
	ID         string            `yaml:"id"`
	Locales    []string          `yaml:"locales"`
	Attributes map[string]string `yaml:"attributes"`
}

// LoadStyles reads named style profiles from YAML:
//
//	invoice:
//	  id: default
//	  locales: [de-DE, en]
//	  attributes:
//	    width: "14"
//
// Unknown keys and profiles without an id are rejected. An empty document
// yields an empty map.
func LoadStyles(r io.Reader) (map[string]*Style, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var raw map[string]styleConfig
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	styles := make(map[string]*Style, len(raw))
	for name, c := range raw {
		if c.ID == "" {
			return nil, fmt.Errorf("%w: profile %q has no id", ErrInvalidConfig, name)
		}
		styles[name] = NewStyle(c.ID, WithLocales(c.Locales...), WithAttributes(c.Attributes))
	}
	return styles, nil
}

// internal/config/load.go
package config

import (
	"bytes"
	_ "embed"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// The wiring is compiled in. It describes the board, not the deployment.
//
//go:embed wiring.yaml
var wiring []byte

// Default returns the compiled-in board wiring, validated and normalized.
func Default() (*Config, error) {
	return Parse(wiring)
}

// Parse decodes, validates and normalizes a wiring document.
// Unknown keys are rejected.
func Parse(b []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "config decode")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	Normalize(&cfg)

	return &cfg, nil
}

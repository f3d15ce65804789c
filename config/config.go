// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads the build configuration of a program.
package config

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/gbasm/gameboy"
)

// Constant is a named compile-time expression.
type Constant struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
	Hex  bool   `yaml:"hex,omitempty"` // If set, rendered in hexadecimal.
}

// Variable is a work RAM variable.
type Variable struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"` // u8, i8, u16, or i16
	Initial int    `yaml:"initial,omitempty"`
	Section string `yaml:"section,omitempty"`
}

// Config is the build configuration.
type Config struct {
	Include   string     `yaml:"include"`
	LCDC      string     `yaml:"lcdc"`
	Palette   uint8      `yaml:"palette"`
	Constants []Constant `yaml:"constants,omitempty"`
	Variables []Variable `yaml:"variables,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Include: gameboy.DEFAULT_INCLUDE,
		LCDC:    gameboy.DEFAULT_LCDC,
		Palette: gameboy.DEFAULT_PALETTE,
	}
}

// Load reads a YAML configuration. Unset fields keep their defaults, and
// unknown fields are rejected.
func Load(r io.Reader) (cfg *Config, err error) {
	cfg = Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err = dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		cfg = nil
		return
	}

	err = cfg.Validate()
	if err != nil {
		cfg = nil
	}

	return
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (cfg *Config, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	cfg, err = Load(inf)
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
	}

	return
}

// Validate checks the fields that need no builder.
func (cfg *Config) Validate() (err error) {
	if cfg.Include == "" {
		return ErrInclude
	}

	for _, constant := range cfg.Constants {
		if constant.Name == "" || constant.Expr == "" {
			return &ErrConfig{Path: "constants." + constant.Name, Err: ErrConstant}
		}
	}

	for _, variable := range cfg.Variables {
		_, err = gameboy.ParseVarType(variable.Type)
		if variable.Name == "" || err != nil {
			return &ErrConfig{Path: "variables." + variable.Name, Err: errors.Join(ErrVariable, err)}
		}
	}

	return
}

// Apply sets up a builder with the configured hardware settings, constants,
// and variables.
func (cfg *Config) Apply(b *gameboy.Builder) (err error) {
	b.Include = cfg.Include
	b.LCDC = cfg.LCDC
	b.Palette = cfg.Palette

	for _, constant := range cfg.Constants {
		if constant.Hex {
			var value int64
			value, err = b.Eval(constant.Expr)
			if err == nil {
				err = b.DefineConstHex(constant.Name, uint16(value))
			}
		} else {
			_, err = b.DefineConst(constant.Name, constant.Expr)
		}
		if err != nil {
			return &ErrConfig{Path: "constants." + constant.Name, Err: err}
		}
	}

	for _, variable := range cfg.Variables {
		var typ gameboy.VarType
		typ, err = gameboy.ParseVarType(variable.Type)
		if err == nil {
			_, err = b.Variable(variable.Name, typ, variable.Initial, variable.Section)
		}
		if err != nil {
			return &ErrConfig{Path: "variables." + variable.Name, Err: err}
		}
	}

	return
}

// Save writes the configuration as YAML.
func (cfg *Config) Save(w io.Writer) (err error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err = enc.Encode(cfg)
	if err != nil {
		return
	}

	return enc.Close()
}

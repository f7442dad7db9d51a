package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/hexer"
)

// Profile is a YAML file of option defaults. Absent keys keep the built-in
// defaults.
//
//	address: d10
//	bytes: h
//	grouping: 4/4
//	group_separator: " "
//	byte_separator: ""
//	little_endian: true
//	show_all: false
//	color: never
//	placeholder: "·"
//	columns:
//	  chars: ["  <", ">"]
type Profile struct {
	Address      *string         `yaml:"address"`
	Bytes        *string         `yaml:"bytes"`
	Grouping     *string         `yaml:"grouping"`
	GroupSep     *string         `yaml:"group_separator"`
	ByteSep      *string         `yaml:"byte_separator"`
	Placeholder  *string         `yaml:"placeholder"`
	LittleEndian *bool           `yaml:"little_endian"`
	ShowAll      *bool           `yaml:"show_all"`
	Color        *string         `yaml:"color"`
	Columns      *ProfileColumns `yaml:"columns"`
}

// ProfileColumns sets column separators as [leading, trailing] pairs.
type ProfileColumns struct {
	Address *SeparatorPair `yaml:"address"`
	Bytes   *SeparatorPair `yaml:"bytes"`
	Chars   *SeparatorPair `yaml:"chars"`
}

// SeparatorPair decodes from a two-element YAML sequence.
type SeparatorPair hexer.Separators

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *SeparatorPair) UnmarshalYAML(n *yaml.Node) error {
	var pair []string
	if err := n.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: separators need [leading, trailing], got %d values", n.Line, len(pair))
	}
	*p = SeparatorPair{Leading: pair[0], Trailing: pair[1]}
	return nil
}

// LoadProfile reads a profile from path.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: %w", err)
	}
	p, err := DecodeProfile(bytes.NewReader(data))
	if err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// DecodeProfile decodes a profile, rejecting unknown keys. An empty
// document is an empty profile.
func DecodeProfile(r io.Reader) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, err
	}
	return p, nil
}

// Apply copies every value set in p onto o.
func (p Profile) Apply(o *Options) {
	setString(&o.Address, p.Address)
	setString(&o.Bytes, p.Bytes)
	setString(&o.Grouping, p.Grouping)
	setString(&o.GroupSep, p.GroupSep)
	setString(&o.ByteSep, p.ByteSep)
	setString(&o.Placeholder, p.Placeholder)
	setString(&o.Color, p.Color)
	if p.LittleEndian != nil {
		o.LittleEndian = *p.LittleEndian
	}
	if p.ShowAll != nil {
		o.ShowAll = *p.ShowAll
	}
	if c := p.Columns; c != nil {
		setSeparators(&o.Columns.Address, c.Address)
		setSeparators(&o.Columns.Bytes, c.Bytes)
		setSeparators(&o.Columns.Chars, c.Chars)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setSeparators(dst *hexer.Separators, v *SeparatorPair) {
	if v != nil {
		*dst = hexer.Separators(*v)
	}
}

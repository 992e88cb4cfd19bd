// Package sheet loads character templates from YAML and builds the ability
// and hit point state they describe.
package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ModifierDef is a modifier declared in a template.
type ModifierDef struct {
	Ability    string `yaml:"ability"`
	Value      int    `yaml:"value"`
	Descriptor string `yaml:"descriptor"` // empty = generated
}

// Def is the static definition of a character sheet, loaded from YAML.
type Def struct {
	ID              string         `yaml:"id"`
	Name            string         `yaml:"name"`
	Abilities       map[string]int `yaml:"abilities"` // keyed by label or prefix
	Modifiers       []ModifierDef  `yaml:"modifiers"`
	ModifiedDisplay bool           `yaml:"modified_display"`
	HitPoints       int            `yaml:"hit_points"`
	HitDice         []string       `yaml:"hit_dice"` // e.g. "Fighter: 3d10"
}

// Registry holds all known Defs keyed by ID.
type Registry struct {
	defs map[string]*Def
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Def)}
}

// Register adds def to the registry, overwriting any existing entry with the same ID.
//
// Precondition: def must not be nil and def.ID must not be empty.
func (r *Registry) Register(def *Def) {
	if def == nil || def.ID == "" {
		panic("sheet: Registry.Register precondition violated: def must be non-nil with a non-empty ID")
	}
	r.defs[def.ID] = def
}

// Get returns the Def for id, or (nil, false) if not found.
func (r *Registry) Get(id string) (*Def, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// All returns every registered Def sorted by ID.
func (r *Registry) All() []*Def {
	out := make([]*Def, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Decode parses a single Def from YAML, rejecting unknown fields.
//
// Postcondition: Returns a Def with a non-empty ID or a non-nil error.
func Decode(data []byte) (*Def, error) {
	var def Def
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, err
	}
	if def.ID == "" {
		return nil, errors.New("sheet id must not be empty")
	}
	return &def, nil
}

// LoadDirectory reads every *.yaml file in dir, parses each as a Def,
// and returns a populated Registry.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns a non-nil Registry, or an error if any file fails to parse.
func LoadDirectory(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading sheet dir %q: %w", dir, err)
	}
	reg := NewRegistry()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		def, err := Decode(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if _, dup := reg.Get(def.ID); dup {
			return nil, fmt.Errorf("parsing %q: duplicate sheet id %q", path, def.ID)
		}
		reg.Register(def)
	}
	return reg, nil
}

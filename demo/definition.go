package demo

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/rhythmix/docanim/config"
)

// Kind selects the scene a demo is played in.
type Kind string

const (
	// StringMovement shows a static center text with inputs sliding towards
	// it and results appearing on its right.
	StringMovement Kind = "string_movement"
	// StateTransition shows an expression split into parts, with the part
	// for the current state highlighted.
	StateTransition Kind = "state_transition"
)

// renderVersion changes whenever the drawing code changes how an unchanged
// definition looks, so cached renders are redone.
const renderVersion = 2

const (
	defaultSpeed         = 1.0
	defaultLineSpacing   = 0.1
	defaultStateColumns  = 3.5
	defaultStringColumns = 2.5
	defaultCenterText    = "Center"
)

// DefaultExpression is used by expression demos that name no parts.
var DefaultExpression = []string{"{==0}", "->", "{==1}"}

// ErrInvalidDefinition is returned for definitions that cannot be played.
var ErrInvalidDefinition = errors.New("invalid demo definition")

// Definition is everything needed to play one demo.
type Definition struct {
	Name   string `yaml:"name" json:"name"`
	Kind   Kind   `yaml:"kind" json:"kind"`
	Output string `yaml:"output,omitempty" json:"output,omitempty"`
	// Center is the static text of a StringMovement demo.
	Center string `yaml:"center,omitempty" json:"center,omitempty"`
	// Expression holds the parts of a StateTransition demo.
	Expression []string `yaml:"expression,omitempty" json:"expression,omitempty"`
	Steps      []Step   `yaml:"steps" json:"steps"`
	// Speed divides every run time: 2 plays twice as fast.
	Speed float64 `yaml:"speed,omitempty" json:"speed,omitempty"`
	// LineSpacing is the gap between wrapped lines of a recording entry.
	LineSpacing float64 `yaml:"line_spacing,omitempty" json:"line_spacing,omitempty"`
	// ColumnSpacing is the width of one recording column.
	ColumnSpacing float64 `yaml:"column_spacing,omitempty" json:"column_spacing,omitempty"`
	Width         int     `yaml:"width,omitempty" json:"width,omitempty"`
	Height        int     `yaml:"height,omitempty" json:"height,omitempty"`
}

// WithDefaults fills every unset optional field.
func (d Definition) WithDefaults() Definition {
	if d.Output == "" {
		d.Output = d.Name
	}
	if d.Speed <= 0 {
		d.Speed = defaultSpeed
	}
	if d.LineSpacing <= 0 {
		d.LineSpacing = defaultLineSpacing
	}
	switch d.Kind {
	case StringMovement:
		if d.Center == "" {
			d.Center = defaultCenterText
		}
		if d.ColumnSpacing <= 0 {
			d.ColumnSpacing = defaultStringColumns
		}
	case StateTransition:
		if len(d.Expression) == 0 {
			d.Expression = append([]string(nil), DefaultExpression...)
		}
		if d.ColumnSpacing <= 0 {
			d.ColumnSpacing = defaultStateColumns
		}
	}
	return d
}

// Validate reports why d cannot be played.
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidDefinition)
	}
	if !safeName(d.Name) {
		return fmt.Errorf("%w: name %q must not contain path elements", ErrInvalidDefinition, d.Name)
	}
	if d.Output != "" && !safeName(d.Output) {
		return fmt.Errorf("%w: %s: output %q must not contain path elements", ErrInvalidDefinition, d.Name, d.Output)
	}
	if d.Kind != StringMovement && d.Kind != StateTransition {
		return fmt.Errorf("%w: %s: unknown kind %q", ErrInvalidDefinition, d.Name, d.Kind)
	}
	if len(d.Steps) == 0 {
		return fmt.Errorf("%w: %s: no steps", ErrInvalidDefinition, d.Name)
	}
	for i, s := range d.Steps {
		if s.State < 0 {
			return fmt.Errorf("%w: %s: step %d has negative state %d", ErrInvalidDefinition, d.Name, i, s.State)
		}
		for _, name := range []string{s.InputColorName, s.ResultColorName} {
			if name == "" {
				continue
			}
			if _, err := (Theme{}).Lookup(name); err != nil {
				return fmt.Errorf("%w: %s: step %d has unknown colour %q", ErrInvalidDefinition, d.Name, i, name)
			}
		}
	}
	if d.Width < 0 || d.Height < 0 {
		return fmt.Errorf("%w: %s: negative size", ErrInvalidDefinition, d.Name)
	}
	return nil
}

// safeName reports whether s can be used as a file name inside the output
// directory.
func safeName(s string) bool {
	return s != "." && !strings.ContainsAny(s, `/\`) && !strings.Contains(s, "..")
}

// Texts returns every string the demo draws.
func (d Definition) Texts() []string {
	texts := []string{d.Center}
	texts = append(texts, d.Expression...)
	for _, s := range d.Steps {
		texts = append(texts, s.Input, s.Result, s.RecordText(), s.Subtitle)
	}
	return texts
}

// HasSubtitles reports whether any step sets a subtitle.
func (d Definition) HasSubtitles() bool {
	for _, s := range d.Steps {
		if s.Subtitle != "" {
			return true
		}
	}
	return false
}

// FileName is the GIF file the demo is written to.
func (d Definition) FileName() string {
	return d.WithDefaults().Output + "." + config.DefaultFormat
}

// Hash identifies the rendered output of d on canvas with colors. Equal
// hashes produce identical GIFs.
func (d Definition) Hash(canvas config.Canvas, colors config.Colors) string {
	payload := struct {
		Version    int           `json:"version"`
		Definition Definition    `json:"definition"`
		Canvas     config.Canvas `json:"canvas"`
		FPS        int           `json:"fps"`
		Colors     config.Colors `json:"colors"`
	}{renderVersion, d.WithDefaults(), canvas, canvas.FPS(), colors}

	// Marshalling plain structs of strings and numbers cannot fail.
	b, _ := json.Marshal(payload)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

type definitionFile struct {
	Demos []Definition `yaml:"demos"`
}

// LoadFile reads custom demos from a YAML file with a top-level demos list.
func LoadFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f definitionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	for _, d := range f.Demos {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return f.Demos, nil
}

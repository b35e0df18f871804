package demo

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultMoveDuration is how long an input takes to slide into place.
const DefaultMoveDuration = 0.3

// Step is one hand-computed evaluation step: the input fed to the
// expression, the result it produced and a note explaining why.
type Step struct {
	Input  string `yaml:"input" json:"input"`
	Result string `yaml:"result" json:"result"`
	Note   string `yaml:"note,omitempty" json:"note,omitempty"`
	// Satisfied is true when the input met the condition being evaluated.
	Satisfied bool `yaml:"satisfied" json:"satisfied"`
	// State is the expression state after this step.
	State int `yaml:"state" json:"state"`
	// Subtitle replaces the line under the expression, if set.
	Subtitle     string  `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	MoveDuration float64 `yaml:"move_duration,omitempty" json:"move_duration,omitempty"`
	// InputColorName and ResultColorName override the label colours with a
	// theme key, a named colour or a hex string.
	InputColorName  string `yaml:"input_color,omitempty" json:"input_color,omitempty"`
	ResultColorName string `yaml:"result_color,omitempty" json:"result_color,omitempty"`
}

// pair builds a step for a center-text demo.
func pair(input, result, note string, satisfied bool) Step {
	return Step{Input: input, Result: result, Note: note, Satisfied: satisfied}
}

// transition builds a step for an expression demo that ends in state.
func transition(input, result, note string, satisfied bool, state int) Step {
	return Step{Input: input, Result: result, Note: note, Satisfied: satisfied, State: state}
}

// WithSubtitle returns a copy of s showing subtitle under the expression.
func (s Step) WithSubtitle(subtitle string) Step {
	s.Subtitle = subtitle
	return s
}

// Indicator is "√" for a satisfied step and "×" otherwise.
func (s Step) Indicator() string {
	if s.Satisfied {
		return "√"
	}
	return "×"
}

// RecordText is the entry added to the recording list.
func (s Step) RecordText() string {
	note := s.Note
	if note == "" {
		note = s.Input
	}
	return note + " " + s.Indicator()
}

// InputColor is the colour of the input label.
func (s Step) InputColor() colorful.Color { return Blue }

// ResultColor is red for a false result and green for anything else.
func (s Step) ResultColor() colorful.Color {
	if strings.EqualFold(strings.TrimSpace(s.Result), "false") {
		return Red
	}
	return Green
}

func (s Step) moveDuration() float64 {
	if s.MoveDuration > 0 {
		return s.MoveDuration
	}
	return DefaultMoveDuration
}

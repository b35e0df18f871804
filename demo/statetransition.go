package demo

import (
	"github.com/rhythmix/docanim/layout"
	"github.com/rhythmix/docanim/scene"
)

const (
	partBuff      = 0.2
	subtitleScale = 0.5
)

// stateColumns lays out the recording of an expression demo. Entries wrap,
// so the gap grows with their height.
func stateColumns(width float64) layout.Columns {
	return layout.Columns{MaxRows: 3, Width: width, TopGap: 0.3, MinGap: 0.4, GapFactor: 0.3}
}

// playStateTransition animates an expression whose part for the current
// state is highlighted green or red as each input is evaluated.
func playStateTransition(d *docScene, def Definition) error {
	e, err := newExpressionScene(d, def)
	if err != nil {
		return err
	}
	for i, step := range def.Steps {
		if err := e.step(step, fadeOutTime(i, len(def.Steps))); err != nil {
			return err
		}
	}
	return d.wait(1)
}

// expressionScene is a state transition demo between steps.
type expressionScene struct {
	d     *docScene
	parts []*scene.Text
	hl    *highlighter
	sub   *subtitleLine
	rec   *recording
	state int
}

// newExpressionScene fades the expression in with its first part
// highlighted and places the recording below it.
func newExpressionScene(d *docScene, def Definition) (*expressionScene, error) {
	e := new(expressionScene)
	e.d = d
	e.parts = make([]*scene.Text, len(def.Expression))
	anims := make([]scene.Animation, len(e.parts))
	for i, p := range def.Expression {
		e.parts[i] = d.title(p, 0.8)
		anims[i] = scene.FadeIn(e.parts[i])
	}
	scene.Arrange(e.parts, partBuff)
	scene.ShiftAll(e.parts, scene.Up.Scale(expressionY))
	if err := d.play(0.5, anims...); err != nil {
		return nil, err
	}

	e.hl = newHighlighter(d, e.parts)
	e.hl.set(0, HighlightRed)

	above := scene.Bounds(e.parts...)
	if def.HasSubtitles() {
		e.sub = newSubtitleLine(d, above)
		above = e.sub.box
	}
	e.rec = newRecording(d, "Evaluation Steps:", above, stateColumns(def.ColumnSpacing), 0.7, def.LineSpacing, true)
	return e, nil
}

// step evaluates one input against the expression.
func (e *expressionScene) step(step Step, fadeOut float64) error {
	d := e.d
	expr := scene.Bounds(e.parts...)
	input, result := d.inputAndResult(step, expr)
	if err := d.play(0.2, scene.FadeIn(input)); err != nil {
		return err
	}
	target := expr.Left().Add(scene.Left.Scale(1.5))
	if err := d.play(step.moveDuration(), scene.Move(input, target)); err != nil {
		return err
	}

	// The highlight shows the state the input was evaluated in.
	e.hl.update(e.state, step.Satisfied)
	if err := d.wait(0.15); err != nil {
		return err
	}

	if err := d.play(0.2, scene.FadeIn(result)); err != nil {
		return err
	}
	if e.sub != nil {
		if err := e.sub.swap(step.Subtitle); err != nil {
			return err
		}
	}
	if err := e.rec.add(step.RecordText(), d.theme.Status(step.Satisfied)); err != nil {
		return err
	}

	e.state = step.State
	return d.play(fadeOut, scene.FadeOut(input), scene.FadeOut(result))
}

// subtitleLine is the optional line under the expression, such as the
// current queue of a chain expression.
type subtitleLine struct {
	d      *docScene
	box    scene.Box
	text   *scene.Text
	shown  string
	center scene.Vec
}

func newSubtitleLine(d *docScene, expression scene.Box) *subtitleLine {
	l := new(subtitleLine)
	l.d = d
	probe := d.subtitle("Queue", subtitleScale)
	scene.NextTo(probe, expression, scene.Down, 0.3)
	l.box = probe.Bounds()
	l.center = l.box.Center()
	return l
}

// swap replaces the line with s when it changed. Steps without a subtitle
// keep the previous one.
func (l *subtitleLine) swap(s string) error {
	if s == "" || s == l.shown {
		return nil
	}
	next := l.d.subtitle(s, subtitleScale)
	next.SetColor(l.d.theme.Subtext)
	scene.MoveTo(next, l.center)

	anims := []scene.Animation{scene.FadeIn(next)}
	if l.text != nil {
		anims = append(anims, scene.FadeOut(l.text))
	}
	l.text = next
	l.shown = s
	return l.d.play(0.2, anims...)
}

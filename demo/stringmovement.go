package demo

import (
	"github.com/rhythmix/docanim/layout"
	"github.com/rhythmix/docanim/scene"
)

// stringColumns lays out the recording of a center-text demo.
func stringColumns(width float64) layout.Columns {
	return layout.Columns{MaxRows: 4, Width: width, TopGap: 0.3, MinGap: 0.2}
}

// playStringMovement animates a static center text with inputs sliding in
// from the left and results appearing on its right.
func playStringMovement(d *docScene, def Definition) error {
	center := d.title(def.Center, 0.8)
	scene.MoveTo(center, scene.Up.Scale(expressionY))
	if err := d.play(0.3, scene.FadeIn(center)); err != nil {
		return err
	}

	box := d.highlightBox(center, d.theme.Accent)
	if err := d.play(0.2, scene.Create(box)); err != nil {
		return err
	}
	if err := d.wait(0.2); err != nil {
		return err
	}

	rec := newRecording(d, "Recording:", center.Bounds(), stringColumns(def.ColumnSpacing), 0.8, def.LineSpacing, false)

	for i, step := range def.Steps {
		input, result := d.inputAndResult(step, center.Bounds())
		if err := d.play(0.2, scene.FadeIn(input)); err != nil {
			return err
		}
		target := center.Bounds().Left().Add(scene.Left.Scale(1.5))
		if err := d.play(step.moveDuration(), scene.Move(input, target)); err != nil {
			return err
		}
		if err := d.play(0.2, scene.FadeIn(result)); err != nil {
			return err
		}
		if err := rec.add(step.RecordText(), d.theme.Status(step.Satisfied)); err != nil {
			return err
		}
		if err := d.play(fadeOutTime(i, len(def.Steps)), scene.FadeOut(input), scene.FadeOut(result)); err != nil {
			return err
		}
	}
	return d.wait(0.5)
}

// fadeOutTime holds the last step a little longer.
func fadeOutTime(i, n int) float64 {
	if i == n-1 {
		return 0.4
	}
	return 0.3
}

package scene

// An Animation changes elements of a Scene over the course of one Play call.
// Interpolate receives eased progress in [0, 1].
type Animation interface {
	Begin(s *Scene)
	Interpolate(alpha float64)
	Finish(s *Scene)
}

type fadeIn struct {
	el Element
}

// FadeIn adds el to the scene and raises its opacity from zero.
func FadeIn(el Element) Animation {
	return &fadeIn{el: el}
}

func (a *fadeIn) Begin(s *Scene) {
	a.el.SetOpacity(0)
	s.Add(a.el)
}

func (a *fadeIn) Interpolate(alpha float64) { a.el.SetOpacity(alpha) }
func (a *fadeIn) Finish(*Scene) { a.el.SetOpacity(1) }

type fadeOut struct {
	el Element
}

// FadeOut lowers the opacity of el to zero and removes it from the scene.
func FadeOut(el Element) Animation {
	return &fadeOut{el: el}
}

func (a *fadeOut) Begin(*Scene) {}
func (a *fadeOut) Interpolate(alpha float64) { a.el.SetOpacity(1 - alpha) }

func (a *fadeOut) Finish(s *Scene) {
	a.el.SetOpacity(0)
	s.Remove(a.el)
}

type moveTo struct {
	el     Element
	start  Vec
	target Vec
}

// Move slides the centre of el to target along a straight line.
func Move(el Element, target Vec) Animation {
	return &moveTo{el: el, target: target}
}

func (a *moveTo) Begin(*Scene) { a.start = a.el.Bounds().Center() }

func (a *moveTo) Interpolate(alpha float64) {
	MoveTo(a.el, a.start.Lerp(a.target, alpha))
}

func (a *moveTo) Finish(*Scene) { MoveTo(a.el, a.target) }

type create struct {
	r *Rect
}

// Create draws the outline of r progressively, then shows its fill.
func Create(r *Rect) Animation {
	return &create{r: r}
}

func (a *create) Begin(s *Scene) {
	a.r.SetProgress(0)
	s.Add(a.r)
}

func (a *create) Interpolate(alpha float64) { a.r.SetProgress(alpha) }
func (a *create) Finish(*Scene) { a.r.SetProgress(1) }

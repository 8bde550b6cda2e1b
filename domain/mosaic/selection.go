package mosaic

// Selection tracks the user-dragged rectangle in display space as the raw
// start/end point pair. The pair is only normalized on read, so the drag
// direction never matters. The zero value is inactive and ready to use.
//
// Inputs are pointer positions already clamped to the interaction area by the
// view layer; no validation happens here.
type Selection struct {
	start, end Point
	active     bool
}

// Begin starts a new drag at p. Any previous selection is replaced.
func (s *Selection) Begin(p Point) {
	s.start = p
	s.end = p
	s.active = true
}

// Update moves the drag end point. No-op while no selection is active.
func (s *Selection) Update(p Point) {
	if !s.active {
		return
	}
	s.end = p
}

// Normalized returns the componentwise min/max corners of the selection.
// min.X <= max.X and min.Y <= max.Y hold by construction.
func (s *Selection) Normalized() (min, max Point) {
	return s.start.Min(s.end), s.start.Max(s.end)
}

// Clear drops the selection.
func (s *Selection) Clear() {
	*s = Selection{}
}

// Active reports whether a selection exists (in progress or finished).
func (s *Selection) Active() bool { return s.active }

package editor

// Zoom is the display zoom percent: pure numeric state with step and clamp.
type Zoom struct {
	value int
	step  int
	min   int
	max   int
}

// NewZoom creates a zoom value starting at 100 percent.
func NewZoom(step, min, max int) Zoom {
	return Zoom{value: 100, step: step, min: min, max: max}
}

// Value returns the current zoom percent.
func (z Zoom) Value() int {
	return z.value
}

// In steps the zoom up, saturating at the maximum.
func (z *Zoom) In() int {
	z.value += z.step
	if z.value > z.max {
		z.value = z.max
	}
	return z.value
}

// Out steps the zoom down, saturating at the minimum.
func (z *Zoom) Out() int {
	z.value -= z.step
	if z.value < z.min {
		z.value = z.min
	}
	return z.value
}

// Reset returns the zoom to 100 percent.
func (z *Zoom) Reset() int {
	z.value = 100
	return z.value
}

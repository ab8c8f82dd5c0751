// Package display maps the fixed-size virtual surface onto a window of any
// size without cropping or distorting it.
package display

import "fmt"

// FitRegion is the centered sub-rectangle of the window the virtual surface
// is stretched into.
type FitRegion struct {
	X, Y int
	W, H int
}

func (r FitRegion) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.W, r.H, r.X, r.Y)
}

// Fit computes the largest centered region of a winW x winH window that keeps
// the virtual aspect ratio. Sizes are floor-rounded.
func Fit(virtW, virtH, winW, winH int) (FitRegion, float64) {
	scale := min(float64(winW)/float64(virtW), float64(winH)/float64(virtH))
	w := int(float64(virtW) * scale)
	h := int(float64(virtH) * scale)
	return FitRegion{
		X: (winW - w) / 2,
		Y: (winH - h) / 2,
		W: w,
		H: h,
	}, scale
}

// Scaler keeps the current fit for a virtual surface of constant size.
// The region only changes through Resize.
type Scaler struct {
	virtW, virtH int
	winW, winH   int
	region       FitRegion
	scale        float64
}

// NewScaler creates a scaler for a virtW x virtH surface shown in a
// winW x winH window.
func NewScaler(virtW, virtH, winW, winH int) *Scaler {
	s := &Scaler{virtW: virtW, virtH: virtH}
	s.Resize(winW, winH)
	return s
}

// Resize recomputes the fit for a new window size. Window dimensions are
// expected to be positive.
func (s *Scaler) Resize(winW, winH int) {
	s.winW, s.winH = winW, winH
	s.region, s.scale = Fit(s.virtW, s.virtH, winW, winH)
}

// Region returns the current fit region.
func (s *Scaler) Region() FitRegion { return s.region }

// Scale returns min(winW/virtW, winH/virtH).
func (s *Scaler) Scale() float64 { return s.scale }

// WindowSize returns the size the fit was last computed for.
func (s *Scaler) WindowSize() (int, int) { return s.winW, s.winH }

// VirtualSize returns the logical surface size.
func (s *Scaler) VirtualSize() (int, int) { return s.virtW, s.virtH }

// Transform returns the per-axis stretch and offset that map virtual pixels
// into the fit region. Both factors equal Scale up to floor rounding of the
// region.
func (s *Scaler) Transform() (sx, sy, tx, ty float64) {
	return Stretch(s.virtW, s.virtH, s.region)
}

// Stretch returns the transform that maps a virtW x virtH surface onto r.
func Stretch(virtW, virtH int, r FitRegion) (sx, sy, tx, ty float64) {
	sx = float64(r.W) / float64(virtW)
	sy = float64(r.H) / float64(virtH)
	return sx, sy, float64(r.X), float64(r.Y)
}

// ToVirtual converts a window pixel to virtual surface coordinates. ok is
// false when the point lies in the border.
func (s *Scaler) ToVirtual(x, y int) (vx, vy int, ok bool) {
	r := s.region
	if r.W == 0 || r.H == 0 || x < r.X || y < r.Y || x >= r.X+r.W || y >= r.Y+r.H {
		return 0, 0, false
	}
	vx = (x - r.X) * s.virtW / r.W
	vy = (y - r.Y) * s.virtH / r.H
	return vx, vy, true
}

package viewport

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Zoom is one of the discrete zoom stops. ZoomFit derives the width from
// the container; every other stop is a fixed percentage of the base width.
type Zoom int

const (
	ZoomFit Zoom = iota
	Zoom50
	Zoom75
	Zoom100
	Zoom150
	Zoom200
)

var zoomPercents = map[Zoom]float64{
	Zoom50:  0.5,
	Zoom75:  0.75,
	Zoom100: 1,
	Zoom150: 1.5,
	Zoom200: 2,
}

// ZoomOptions lists every zoom stop in menu order.
var ZoomOptions = []Zoom{ZoomFit, Zoom50, Zoom75, Zoom100, Zoom150, Zoom200}

// ZoomPercents are the fixed stops in ascending order.
var ZoomPercents = []float64{0.5, 0.75, 1, 1.5, 2}

// Percent returns the fixed scale of z; ok is false for ZoomFit.
func (z Zoom) Percent() (float64, bool) {
	p, ok := zoomPercents[z]
	return p, ok
}

func (z Zoom) String() string {
	if z == ZoomFit {
		return "Fit"
	}
	if p, ok := z.Percent(); ok {
		return strconv.FormatFloat(p*100, 'f', -1, 64) + "%"
	}
	return fmt.Sprintf("Zoom(%d)", int(z))
}

// ParseZoom accepts "fit" or a percentage label such as "150%" or "150".
func ParseZoom(s string) (Zoom, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "fit" {
		return ZoomFit, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return ZoomFit, fmt.Errorf("parse zoom %q: %w", s, err)
	}
	for _, z := range ZoomOptions[1:] {
		if p, _ := z.Percent(); p*100 == v {
			return z, nil
		}
	}
	return ZoomFit, fmt.Errorf("parse zoom %q: not a zoom stop", s)
}

// ClosestZoom returns the fixed stop nearest to percent. Ties go to the
// stop listed first.
func ClosestZoom(percent float64) Zoom {
	closest := Zoom100
	minDelta := math.Inf(1)
	for _, z := range ZoomOptions[1:] {
		p, _ := z.Percent()
		if d := math.Abs(p - percent); d < minDelta {
			minDelta = d
			closest = z
		}
	}
	return closest
}

// nextZoomIn returns the smallest stop wider than width.
func nextZoomIn(width, baseWidth float64) (float64, bool) {
	for _, p := range ZoomPercents {
		if baseWidth*p > width {
			return p, true
		}
	}
	return 0, false
}

// nextZoomOut returns the largest stop narrower than width. Below the
// smallest stop it wraps around to the largest one.
func nextZoomOut(width, baseWidth float64) float64 {
	for i := len(ZoomPercents) - 1; i >= 0; i-- {
		if p := ZoomPercents[i]; baseWidth*p < width {
			return p
		}
	}
	return ZoomPercents[len(ZoomPercents)-1]
}

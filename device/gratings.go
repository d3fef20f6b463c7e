package device

import (
	"github.com/npillmayer/wgmask/grating"
)

// PeriodicGratingParams are the parameters of a grating of rectangle pairs.
type PeriodicGratingParams struct {
	Width1, Height1 float64
	Width2, Height2 float64
	NumPairs        int
}

// DefaultPeriodicGratingParams returns a grating of 20 pairs with a pitch of
// 0.66 µm.
func DefaultPeriodicGratingParams() PeriodicGratingParams {
	return PeriodicGratingParams{
		Width1: 0.33, Height1: 0.45,
		Width2: 0.33, Height2: 0.8,
		NumPairs: 20,
	}
}

// ArcGratingParams are the parameters of an arc grating.
type ArcGratingParams = grating.ArcParams

// FanGratingParams are the parameters of a fan grating.
type FanGratingParams = grating.FanParams

// DefaultArcGratingParams returns the parameters of a 4-element arc grating.
func DefaultArcGratingParams() ArcGratingParams {
	return grating.DefaultArcParams()
}

// DefaultFanGratingParams returns the parameters of a two-arc fan grating.
func DefaultFanGratingParams() FanGratingParams {
	return grating.DefaultFanParams()
}

// PeriodicGrating creates a grating of rectangle pairs.
func PeriodicGrating(p PeriodicGratingParams) (*grating.Grating, error) {
	return grating.NewPeriodic(p.Width1, p.Height1, p.Width2, p.Height2, p.NumPairs)
}

// ArcGrating creates an arc grating.
func ArcGrating(p ArcGratingParams) (*grating.Grating, error) {
	return grating.NewArc(p)
}

// FanGrating creates a fan grating.
func FanGrating(p FanGratingParams) (*grating.Grating, error) {
	return grating.NewFan(p)
}

// MustArcGrating is ArcGrating, but panics on error.
func MustArcGrating(p ArcGratingParams) *grating.Grating {
	g, err := ArcGrating(p)
	if err != nil {
		tracer().Errorf("arc grating: %v", err)
		panic(err)
	}
	return g
}

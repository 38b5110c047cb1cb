package terrain

import (
	"math"
	"math/rand"
)

// Octave is one sine layer of the height profile.
type Octave struct {
	Frequency float64 // multiplier applied to the base frequency
	Weight    float64 // multiplier applied to the amplitude
}

// NoiseParams configures the height profile synthesis.
type NoiseParams struct {
	BaseLevel    float64  // resting ground line as a fraction of field height
	Amplitude    float64  // hill height in pixels
	Frequency    float64  // base angular frequency per pixel
	Octaves      []Octave // sine layers summed together
	JitterChance float64  // probability that a column gets surface jitter
	JitterAmount float64  // jitter is uniform in [-JitterAmount, JitterAmount]
}

// DefaultOctaves are the four layers of rolling hills with fine detail.
var DefaultOctaves = []Octave{
	{Frequency: 1, Weight: 1},
	{Frequency: 2.1, Weight: 0.5},
	{Frequency: 4.3, Weight: 0.25},
	{Frequency: 8.7, Weight: 0.125},
}

// DefaultNoiseParams returns the standard hill profile.
func DefaultNoiseParams() NoiseParams {
	return NoiseParams{
		BaseLevel:    0.65,
		Amplitude:    80,
		Frequency:    0.008,
		Octaves:      DefaultOctaves,
		JitterChance: 0.2,
		JitterAmount: 1,
	}
}

// Sample returns the jitter-free ground height at column x.
func (p NoiseParams) Sample(x int, height int) float64 {
	var sum float64
	for _, o := range p.Octaves {
		sum += math.Sin(float64(x)*p.Frequency*o.Frequency) * o.Weight
	}
	return float64(height)*p.BaseLevel + sum*p.Amplitude
}

// HeightProfile returns the surface y for every column in [0, width).
// The profile is a pure function of x; rng only drives the sub-pixel jitter
// pass and may be nil to disable it.
func HeightProfile(width, height int, p NoiseParams, rng *rand.Rand) []float64 {
	if width <= 0 {
		return nil
	}

	heights := make([]float64, width)
	for x := range heights {
		heights[x] = p.Sample(x, height)
	}

	if rng == nil || p.JitterChance <= 0 {
		return heights
	}
	for x := range heights {
		if rng.Float64() < p.JitterChance {
			heights[x] += (rng.Float64()*2 - 1) * p.JitterAmount
		}
	}
	return heights
}

package worms

import (
	"github.com/vovakirdan/tui-worms/internal/config"
	"github.com/vovakirdan/tui-worms/internal/locomotion"
	"github.com/vovakirdan/tui-worms/internal/terrain"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the preset set via CLI
var difficultyPreset config.Preset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the match preset. Unknown names clear it.
func SetDifficultyPreset(name string) {
	if p, ok := config.ParsePreset(name); ok {
		difficultyPreset = p
		return
	}
	difficultyPreset = ""
}

// loadConfig returns the effective configuration, falling back to the
// defaults when the file cannot be used.
func loadConfig() config.WormsConfig {
	cfg, err := config.LoadWorms(configPath)
	if err != nil {
		cfg = config.DefaultWormsConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg
}

func terrainOptions(cfg config.WormsConfig) []terrain.Option {
	t := cfg.Terrain
	octaves := make([]terrain.Octave, len(t.Octaves))
	for i, o := range t.Octaves {
		octaves[i] = terrain.Octave{Frequency: o.Frequency, Weight: o.Weight}
	}
	return []terrain.Option{
		terrain.WithNoise(terrain.NoiseParams{
			BaseLevel:    t.BaseLevel,
			Amplitude:    t.Amplitude,
			Frequency:    t.Frequency,
			Octaves:      octaves,
			JitterChance: t.JitterChance,
			JitterAmount: t.JitterAmount,
		}),
		terrain.WithSmoothing(terrain.SmoothParams{
			Iterations: t.Smoothing.Iterations,
			Tolerance:  t.Smoothing.Tolerance,
			Keep:       t.Smoothing.Keep,
			FillGaps:   t.Smoothing.FillGaps,
		}),
		terrain.WithMeshBuilder(terrain.MeshBuilder{
			BlockSize: cfg.Collision.BlockSize,
			FillRatio: cfg.Collision.FillRatio,
		}),
	}
}

func locomotionParams(l config.LocomotionConfig) locomotion.Params {
	return locomotion.Params{
		Speed:            l.Speed,
		JumpSpeed:        l.JumpSpeed,
		ClimbImpulse:     l.ClimbImpulse,
		ClimbScan:        l.ClimbScan,
		ClimbMaxStep:     l.ClimbMaxStep,
		ClimbSlowAfter:   l.ClimbSlowAfter,
		ClimbSlowFactor:  l.ClimbSlowFactor,
		ClimbCrawlAfter:  l.ClimbCrawlAfter,
		ClimbCrawlFactor: l.ClimbCrawlFactor,
		SlopeLookahead:   l.SlopeLookahead,
		SlopeMaxDrop:     l.SlopeMaxDrop,
		SlopeBias:        l.SlopeBias,
	}
}

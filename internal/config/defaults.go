package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/worms.yaml
var defaultWormsYAML []byte

// DefaultWormsConfig returns the default worms configuration.
func DefaultWormsConfig() WormsConfig {
	return WormsConfig{
		Terrain: TerrainConfig{
			Width:     1280,
			Height:    720,
			BaseLevel: 0.65,
			Amplitude: 80,
			Frequency: 0.008,
			Octaves: []OctaveConfig{
				{Frequency: 1, Weight: 1},
				{Frequency: 2.1, Weight: 0.5},
				{Frequency: 4.3, Weight: 0.25},
				{Frequency: 8.7, Weight: 0.125},
			},
			JitterChance: 0.2,
			JitterAmount: 1,
			Smoothing: SmoothingConfig{
				Iterations: 5,
				Tolerance:  3,
				Keep:       0.3,
				FillGaps:   true,
			},
		},
		Collision: CollisionConfig{
			BlockSize: 3,
			FillRatio: 0.2,
		},
		Blast: BlastConfig{
			Radius:       40,
			SplashFactor: 1.5,
			MaxDamage:    50,
			Knockback:    200,
			MinLift:      100,
			DebrisTTL:    600 * time.Millisecond,
		},
		Locomotion: LocomotionConfig{
			Speed:            80,
			JumpSpeed:        250,
			ClimbImpulse:     50,
			ClimbScan:        10,
			ClimbMaxStep:     8,
			ClimbSlowAfter:   150 * time.Millisecond,
			ClimbSlowFactor:  0.5,
			ClimbCrawlAfter:  100 * time.Millisecond,
			ClimbCrawlFactor: 0.3,
			SlopeLookahead:   5,
			SlopeMaxDrop:     3,
			SlopeBias:        20,
		},
		Physics: PhysicsConfig{
			Gravity:        400,
			LedgeTolerance: 4,
			MaxFallSpeed:   600,
			WormWidth:      10,
			WormHeight:     14,
		},
		Weapon: WeaponConfig{
			AimMin:       -80,
			AimMax:       80,
			AimStep:      2,
			LaunchSpeed:  400,
			ExtraGravity: 300,
			Fuse:         5 * time.Second,
			EndTurnDelay: 100 * time.Millisecond,
		},
		Match: MatchConfig{
			WormsPerTeam: 3,
			Health:       100,
			TurnTime:     30 * time.Second,
			SpawnMargin:  50,
			SpawnDrop:    20,
		},
	}
}

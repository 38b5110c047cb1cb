// Package config provides YAML-based configuration loading for the worms
// simulation: terrain synthesis, collision, blasts, locomotion and match
// rules.
package config

import "time"

// WormsConfig contains all configuration for a worms match.
type WormsConfig struct {
	Terrain    TerrainConfig    `yaml:"terrain"`
	Collision  CollisionConfig  `yaml:"collision"`
	Blast      BlastConfig      `yaml:"blast"`
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Weapon     WeaponConfig     `yaml:"weapon"`
	Match      MatchConfig      `yaml:"match"`
}

// TerrainConfig defines the field size and the height profile synthesis.
type TerrainConfig struct {
	Width        int             `yaml:"width"`
	Height       int             `yaml:"height"`
	BaseLevel    float64         `yaml:"base_level"` // fraction of height
	Amplitude    float64         `yaml:"amplitude"`
	Frequency    float64         `yaml:"frequency"`
	Octaves      []OctaveConfig  `yaml:"octaves"`
	JitterChance float64         `yaml:"jitter_chance"`
	JitterAmount float64         `yaml:"jitter_amount"`
	Smoothing    SmoothingConfig `yaml:"smoothing"`
}

// OctaveConfig is one sine layer of the height profile.
type OctaveConfig struct {
	Frequency float64 `yaml:"frequency"`
	Weight    float64 `yaml:"weight"`
}

// SmoothingConfig defines the surface relaxation.
type SmoothingConfig struct {
	Iterations int     `yaml:"iterations"`
	Tolerance  float64 `yaml:"tolerance"`
	Keep       float64 `yaml:"keep"`
	FillGaps   bool    `yaml:"fill_gaps"`
}

// CollisionConfig defines the collision mesh tiling.
type CollisionConfig struct {
	BlockSize int     `yaml:"block_size"`
	FillRatio float64 `yaml:"fill_ratio"`
}

// BlastConfig defines explosions and their effect on worms.
type BlastConfig struct {
	Radius       int           `yaml:"radius"`
	SplashFactor float64       `yaml:"splash_factor"` // splash reach as a multiple of radius
	MaxDamage    int           `yaml:"max_damage"`
	Knockback    float64       `yaml:"knockback"`
	MinLift      float64       `yaml:"min_lift"` // upward speed every knocked worm gets at least
	DebrisTTL    time.Duration `yaml:"debris_ttl"`
}

// LocomotionConfig defines worm movement.
type LocomotionConfig struct {
	Speed            float64       `yaml:"speed"`
	JumpSpeed        float64       `yaml:"jump_speed"`
	ClimbImpulse     float64       `yaml:"climb_impulse"`
	ClimbScan        int           `yaml:"climb_scan"`
	ClimbMaxStep     int           `yaml:"climb_max_step"`
	ClimbSlowAfter   time.Duration `yaml:"climb_slow_after"`
	ClimbSlowFactor  float64       `yaml:"climb_slow_factor"`
	ClimbCrawlAfter  time.Duration `yaml:"climb_crawl_after"`
	ClimbCrawlFactor float64       `yaml:"climb_crawl_factor"`
	SlopeLookahead   float64       `yaml:"slope_lookahead"`
	SlopeMaxDrop     int           `yaml:"slope_max_drop"`
	SlopeBias        float64       `yaml:"slope_bias"`
}

// PhysicsConfig defines the body simulation.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	LedgeTolerance float64 `yaml:"ledge_tolerance"` // overlap resolved by stepping up instead of blocking
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	WormWidth      float64 `yaml:"worm_width"`
	WormHeight     float64 `yaml:"worm_height"`
}

// WeaponConfig defines the missile launcher.
type WeaponConfig struct {
	AimMin       float64       `yaml:"aim_min"` // degrees, negative is up
	AimMax       float64       `yaml:"aim_max"`
	AimStep      float64       `yaml:"aim_step"`
	LaunchSpeed  float64       `yaml:"launch_speed"`
	ExtraGravity float64       `yaml:"extra_gravity"`
	Fuse         time.Duration `yaml:"fuse"`
	EndTurnDelay time.Duration `yaml:"end_turn_delay"`
}

// MatchConfig defines teams and turns.
type MatchConfig struct {
	WormsPerTeam int           `yaml:"worms_per_team"`
	Health       int           `yaml:"health"`
	TurnTime     time.Duration `yaml:"turn_time"`
	SpawnMargin  int           `yaml:"spawn_margin"`
	SpawnDrop    int           `yaml:"spawn_drop"` // spawn height above the surface
}

// Preset represents a named match difficulty.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset returns the preset for name. Unknown names map to normal.
func ParsePreset(name string) (Preset, bool) {
	switch Preset(name) {
	case PresetEasy, PresetNormal, PresetHard:
		return Preset(name), true
	default:
		return PresetNormal, false
	}
}

// ApplyPreset adjusts turn time and health for a difficulty preset.
func ApplyPreset(cfg *WormsConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Match.TurnTime = 45 * time.Second
		cfg.Match.Health = 150
	case PresetHard:
		cfg.Match.TurnTime = 20 * time.Second
		cfg.Match.Health = 70
	}
}

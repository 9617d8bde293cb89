package parameter

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Environment overrides, applied after the TOML file
const (
	EnvAudioEnabled = "SNAKE_STRATEGY_AUDIO_ENABLED"
	EnvMasterVolume = "SNAKE_STRATEGY_MASTER_VOLUME" // 0-100
	EnvFrameRate    = "SNAKE_STRATEGY_FRAME_RATE"
)

// PlayfieldConfig describes the toroidal grid the units live on
type PlayfieldConfig struct {
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	BlockSize float64 `toml:"block_size"`
	TickSpeed float64 `toml:"tick_speed"`
	FrameRate int     `toml:"frame_rate"`
}

// UnitStats are fixed per kind at construction
// AttackRange and Cooldown are only read for ranged units
type UnitStats struct {
	Health      float64 `toml:"health"`
	Damage      float64 `toml:"damage"`
	Speed       float64 `toml:"speed"`
	AttackRange float64 `toml:"attack_range"`
	Cooldown    int     `toml:"cooldown"`
}

// ProjectileStats are applied to every projectile at spawn
type ProjectileStats struct {
	Speed  float64 `toml:"speed"`
	Damage float64 `toml:"damage"`
}

// AudioConfig controls the sound cues
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
}

// Config is the complete tunable game configuration
type Config struct {
	Playfield  PlayfieldConfig `toml:"playfield"`
	Melee      UnitStats       `toml:"melee"`
	Ranged     UnitStats       `toml:"ranged"`
	Projectile ProjectileStats `toml:"projectile"`
	Audio      AudioConfig     `toml:"audio"`
}

// DefaultConfig returns the built-in tuning
func DefaultConfig() *Config {
	return &Config{
		Playfield: PlayfieldConfig{
			Width:     FieldWidth,
			Height:    FieldHeight,
			BlockSize: BlockSize,
			TickSpeed: TickSpeed,
			FrameRate: FrameRate,
		},
		Melee: UnitStats{
			Health: MeleeHealth,
			Damage: MeleeDamage,
			Speed:  MeleeSpeed,
		},
		Ranged: UnitStats{
			Health:      RangedHealth,
			Damage:      RangedDamage,
			Speed:       RangedSpeed,
			AttackRange: RangedAttackRange,
			Cooldown:    RangedCooldown,
		},
		Projectile: ProjectileStats{
			Speed:  ProjectileSpeed,
			Damage: ProjectileDamage,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: AudioMasterVolume,
		},
	}
}

// LoadConfig decodes a TOML file over the defaults, applies environment overrides and validates
// An empty path skips the file and yields defaults plus environment
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides audio and frame rate from the environment
func (c *Config) applyEnv() error {
	if raw := os.Getenv(EnvAudioEnabled); raw != "" {
		val, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		c.Audio.Enabled = val
	}

	if raw := os.Getenv(EnvMasterVolume); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMasterVolume, err)
		}
		c.Audio.MasterVolume = math.Min(math.Max(float64(val)/100.0, 0), 1)
	}

	if raw := os.Getenv(EnvFrameRate); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFrameRate, err)
		}
		c.Playfield.FrameRate = val
	}
	return nil
}

// Validate checks every section and returns the first violation wrapped in ErrInvalidConfig
func (c *Config) Validate() error {
	p := c.Playfield
	if p.BlockSize <= 0 {
		return fmt.Errorf("%w: playfield.block_size must be positive, got %v", ErrInvalidConfig, p.BlockSize)
	}
	if p.Width <= 0 || math.Mod(p.Width, p.BlockSize) != 0 {
		return fmt.Errorf("%w: playfield.width %v must be a positive multiple of block_size %v", ErrInvalidConfig, p.Width, p.BlockSize)
	}
	if p.Height <= 0 || math.Mod(p.Height, p.BlockSize) != 0 {
		return fmt.Errorf("%w: playfield.height %v must be a positive multiple of block_size %v", ErrInvalidConfig, p.Height, p.BlockSize)
	}
	if p.TickSpeed <= 0 {
		return fmt.Errorf("%w: playfield.tick_speed must be positive, got %v", ErrInvalidConfig, p.TickSpeed)
	}
	if p.FrameRate <= 0 {
		return fmt.Errorf("%w: playfield.frame_rate must be positive, got %d", ErrInvalidConfig, p.FrameRate)
	}

	if err := c.Melee.validate("melee", p.TickSpeed, false); err != nil {
		return err
	}
	if err := c.Ranged.validate("ranged", p.TickSpeed, true); err != nil {
		return err
	}

	if c.Projectile.Speed <= 0 {
		return fmt.Errorf("%w: projectile.speed must be positive, got %v", ErrInvalidConfig, c.Projectile.Speed)
	}
	if c.Projectile.Damage < 0 {
		return fmt.Errorf("%w: projectile.damage must not be negative, got %v", ErrInvalidConfig, c.Projectile.Damage)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: audio.master_volume must be in [0, 1], got %v", ErrInvalidConfig, c.Audio.MasterVolume)
	}
	return nil
}

func (s UnitStats) validate(section string, tickSpeed float64, ranged bool) error {
	if s.Health <= 0 || s.Health > MaxUnitHealth {
		return fmt.Errorf("%w: %s.health must be in (0, %v], got %v", ErrInvalidConfig, section, MaxUnitHealth, s.Health)
	}
	if s.Damage < 0 {
		return fmt.Errorf("%w: %s.damage must not be negative, got %v", ErrInvalidConfig, section, s.Damage)
	}
	// Faster than the tick speed would need more than one step per tick
	if s.Speed <= 0 || s.Speed > tickSpeed {
		return fmt.Errorf("%w: %s.speed must be in (0, %v], got %v", ErrInvalidConfig, section, tickSpeed, s.Speed)
	}
	if !ranged {
		return nil
	}
	if s.AttackRange <= 0 {
		return fmt.Errorf("%w: %s.attack_range must be positive, got %v", ErrInvalidConfig, section, s.AttackRange)
	}
	if s.Cooldown < 0 {
		return fmt.Errorf("%w: %s.cooldown must not be negative, got %d", ErrInvalidConfig, section, s.Cooldown)
	}
	return nil
}

// Columns returns the number of block columns of the playfield
func (p PlayfieldConfig) Columns() int { return int(p.Width / p.BlockSize) }

// Rows returns the number of block rows of the playfield
func (p PlayfieldConfig) Rows() int { return int(p.Height / p.BlockSize) }

// FrameInterval is the render/tick interval derived from FrameRate
func (p PlayfieldConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(p.FrameRate)
}

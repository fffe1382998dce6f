package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/annel0/voxel-engine/internal/physics"
	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации движка.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Sandbox   SandboxConfig   `yaml:"sandbox"`
}

type WorldConfig struct {
	Size      int     `yaml:"size"`       // L: ребро сетки в блоках
	BlockSize float64 `yaml:"block_size"` // S: ребро блока в мировых единицах
	Generator string  `yaml:"generator"`  // flat | noise
	Seed      int64   `yaml:"seed"`
	TreesMin  int     `yaml:"trees_min"`
	TreesMax  int     `yaml:"trees_max"`
}

type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	GroundAcceleration float64 `yaml:"ground_acceleration"`
	AirAcceleration    float64 `yaml:"air_acceleration"`
	TopSpeed           float64 `yaml:"top_speed"`
	JumpImpulse        float64 `yaml:"jump_impulse"`
	AvatarWidth        float64 `yaml:"avatar_width"`
	AvatarHeight       float64 `yaml:"avatar_height"`
	ProbeEpsilon       float64 `yaml:"probe_epsilon"`
	ProbeRadius        int     `yaml:"probe_radius"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

type TelemetryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Service string `yaml:"service"`
}

type SandboxConfig struct {
	Ticks    int `yaml:"ticks"`
	TickRate int `yaml:"tick_rate"` // тиков в секунду
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults заполняет незаданные поля значениями по умолчанию
func (c *Config) applyDefaults() {
	w := &c.World
	if w.Size == 0 {
		w.Size = 40
	}
	if w.BlockSize == 0 {
		w.BlockSize = 10
	}
	if w.Generator == "" {
		w.Generator = "noise"
	}
	if w.Seed == 0 {
		w.Seed = 1337
	}
	if w.TreesMin == 0 && w.TreesMax == 0 {
		w.TreesMin, w.TreesMax = 10, 19
	}

	// Физика задаётся в единицах блока S, см. physics.DefaultTuning
	p := &c.Physics
	s := w.BlockSize
	setDefault(&p.Gravity, 25*s)
	setDefault(&p.GroundAcceleration, 40*s)
	setDefault(&p.AirAcceleration, 10*s)
	setDefault(&p.TopSpeed, 5*s)
	setDefault(&p.JumpImpulse, 9*s)
	setDefault(&p.AvatarWidth, 0.6*s)
	setDefault(&p.AvatarHeight, 1.8*s)
	setDefault(&p.ProbeEpsilon, 0.001*s)
	if p.ProbeRadius == 0 {
		p.ProbeRadius = physics.MinProbeRadius(p.AvatarHeight, s)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Telemetry.Service == "" {
		c.Telemetry.Service = "voxel-sandbox"
	}
	if c.Sandbox.Ticks == 0 {
		c.Sandbox.Ticks = 600
	}
	if c.Sandbox.TickRate == 0 {
		c.Sandbox.TickRate = 60
	}
}

func setDefault(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.World.Size <= 0 {
		return fmt.Errorf("world.size должен быть положительным, получено %d", c.World.Size)
	}
	if c.World.BlockSize <= 0 {
		return fmt.Errorf("world.block_size должен быть положительным, получено %v", c.World.BlockSize)
	}
	if c.World.Generator != "flat" && c.World.Generator != "noise" {
		return fmt.Errorf("неизвестный world.generator %q", c.World.Generator)
	}
	if c.World.TreesMin < 0 || c.World.TreesMax < c.World.TreesMin {
		return fmt.Errorf("некорректный диапазон деревьев [%d, %d]", c.World.TreesMin, c.World.TreesMax)
	}
	if c.Physics.AvatarWidth >= c.World.BlockSize {
		return fmt.Errorf("physics.avatar_width (%v) должен быть меньше block_size (%v)", c.Physics.AvatarWidth, c.World.BlockSize)
	}
	if c.Physics.AvatarHeight <= 0 {
		return fmt.Errorf("physics.avatar_height должен быть положительным, получено %v", c.Physics.AvatarHeight)
	}
	if need := physics.MinProbeRadius(c.Physics.AvatarHeight, c.World.BlockSize); c.Physics.ProbeRadius < need {
		return fmt.Errorf("physics.probe_radius (%d) мал для avatar_height %v: нужно не меньше %d",
			c.Physics.ProbeRadius, c.Physics.AvatarHeight, need)
	}
	if c.Sandbox.TickRate <= 0 {
		return fmt.Errorf("sandbox.tick_rate должен быть положительным")
	}
	return nil
}

// Tuning переводит секцию physics в константы решателя движения
func (p PhysicsConfig) Tuning() physics.Tuning {
	return physics.Tuning{
		Gravity:            p.Gravity,
		GroundAcceleration: p.GroundAcceleration,
		AirAcceleration:    p.AirAcceleration,
		TopSpeed:           p.TopSpeed,
		JumpImpulse:        p.JumpImpulse,
		Width:              p.AvatarWidth,
		Height:             p.AvatarHeight,
		ProbeEpsilon:       p.ProbeEpsilon,
		ProbeRadius:        p.ProbeRadius,
	}
}

// GetMetricsAddr возвращает адрес метрик с приоритетом: config -> env -> ""
func (m *MetricsConfig) GetMetricsAddr() string {
	if m.Addr != "" {
		return m.Addr
	}
	return os.Getenv("VOXEL_METRICS_ADDR")
}

// GetTicks возвращает число тиков песочницы с поддержкой env fallback
func (s *SandboxConfig) GetTicks() int {
	if envVal := os.Getenv("VOXEL_SANDBOX_TICKS"); envVal != "" {
		if n, err := strconv.Atoi(envVal); err == nil && n > 0 {
			return n
		}
	}
	return s.Ticks
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV VOXEL_CONFIG или возвращает Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("VOXEL_CONFIG")
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение конфигурации %s: %w", path, err)
	}

	return Parse(data)
}

// Parse разбирает YAML и дополняет его значениями по умолчанию
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("разбор конфигурации: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		HorizonSeconds:    10,
		ProducerProcess:   KindPoisson,
		ProducerRate:      1000,
		DispatcherProcess: KindUniform,
		ConsumerProcess:   KindUniform,
		ConsumerRate:      2000,
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultLatencyGoalTicks, cfg.LatencyGoalTicks)
	assert.Equal(t, DefaultGoalFactor, cfg.GoalFactor)
	assert.Equal(t, DefaultCapFactor, cfg.CapFactor)
	assert.Equal(t, DefaultQuantumTicks, cfg.QuantumTicks)
}

func TestConfig_ApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.LatencyGoalTicks = 2000
	cfg.GoalFactor = 2.5
	cfg.ApplyDefaults()

	assert.Equal(t, int64(2000), cfg.LatencyGoalTicks)
	assert.Equal(t, 2.5, cfg.GoalFactor)
}

func TestConfig_ValidateAcceptsDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()
	assert.NoError(t, cfg.Validate())
}

func TestConfig_ValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero horizon", func(c *Config) { c.HorizonSeconds = 0 }},
		{"unknown producer process", func(c *Config) { c.ProducerProcess = "weibull" }},
		{"unknown dispatcher process", func(c *Config) { c.DispatcherProcess = "" }},
		{"unknown consumer process", func(c *Config) { c.ConsumerProcess = "normal" }},
		{"zero producer rate", func(c *Config) { c.ProducerRate = 0 }},
		{"negative consumer rate", func(c *Config) { c.ConsumerRate = -1 }},
		{"negative latency goal", func(c *Config) { c.LatencyGoalTicks = -500 }},
		{"negative goal factor", func(c *Config) { c.GoalFactor = -1.5 }},
		{"cap factor below one", func(c *Config) { c.CapFactor = 0.5 }},
		{"negative quantum", func(c *Config) { c.QuantumTicks = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.ApplyDefaults()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_ValidateWrapsUnknownProcess(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()
	cfg.ProducerProcess = "gamma"
	assert.True(t, errors.Is(cfg.Validate(), ErrUnknownProcess))
}

func TestConfig_HorizonTicks(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, 10*TicksPerSecond, cfg.HorizonTicks())

	cfg.HorizonSeconds = 0.5
	assert.Equal(t, TicksPerSecond/2, cfg.HorizonTicks())
}

// Package config provides Viper-based configuration loading for the castle game and server.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CASTLE_TELNET_PORT.
const EnvPrefix = "CASTLE"

// GameConfig holds the rules every new game starts from.
type GameConfig struct {
	// WorldFile is a YAML world definition. Empty selects the built-in castle.
	WorldFile string `mapstructure:"world_file"`
	// PlayerHealth is the player's starting and maximum health.
	PlayerHealth int `mapstructure:"player_health"`
	// PlayerDamage is the player's unarmed damage.
	PlayerDamage int `mapstructure:"player_damage"`
	// InventorySize is the number of inventory slots.
	InventorySize int `mapstructure:"inventory_size"`
	// ScriptInstructionLimit caps Lua opcodes per item hook. 0 uses the scripting default.
	ScriptInstructionLimit int `mapstructure:"script_instruction_limit"`
}

// TelnetConfig holds Telnet acceptor settings.
type TelnetConfig struct {
	// Host is the bind address for the Telnet listener.
	Host string `mapstructure:"host"`
	// Port is the TCP port for the Telnet listener.
	Port int `mapstructure:"port"`
	// ReadTimeout is how long a connection may sit idle before it is closed. 0 disables it.
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	// WriteTimeout is the per-write timeout for Telnet connections.
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	// MaxSessions caps concurrent games. 0 means unlimited.
	MaxSessions int `mapstructure:"max_sessions"`
}

// Addr returns the "host:port" listen address.
//
// Postcondition: Returns a non-empty string in "host:port" format.
func (t TelnetConfig) Addr() string {
	return fmt.Sprintf("%s:%d", t.Host, t.Port)
}

// MetricsConfig holds the Prometheus/health HTTP endpoint settings.
type MetricsConfig struct {
	// Enabled turns the HTTP endpoint on.
	Enabled bool `mapstructure:"enabled"`
	// Host is the bind address for the HTTP listener.
	Host string `mapstructure:"host"`
	// Port is the TCP port for the HTTP listener.
	Port int `mapstructure:"port"`
}

// Addr returns the "host:port" listen address.
func (m MetricsConfig) Addr() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Telnet  TelnetConfig  `mapstructure:"telnet"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string
	for _, err := range []error{
		validateGame(c.Game),
		validateTelnet(c.Telnet),
		validateMetrics(c.Metrics),
		validateLogging(c.Logging),
	} {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.PlayerHealth < 1 {
		errs = append(errs, fmt.Sprintf("game.player_health must be >= 1, got %d", g.PlayerHealth))
	}
	if g.PlayerDamage < 1 {
		errs = append(errs, fmt.Sprintf("game.player_damage must be >= 1, got %d", g.PlayerDamage))
	}
	if g.InventorySize < 1 {
		errs = append(errs, fmt.Sprintf("game.inventory_size must be >= 1, got %d", g.InventorySize))
	}
	if g.ScriptInstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("game.script_instruction_limit must be >= 0, got %d", g.ScriptInstructionLimit))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateTelnet(t TelnetConfig) error {
	var errs []string
	if t.Port < 1 || t.Port > 65535 {
		errs = append(errs, fmt.Sprintf("telnet.port must be 1-65535, got %d", t.Port))
	}
	if t.ReadTimeout < 0 {
		errs = append(errs, "telnet.read_timeout must not be negative")
	}
	if t.WriteTimeout < 0 {
		errs = append(errs, "telnet.write_timeout must not be negative")
	}
	if t.MaxSessions < 0 {
		errs = append(errs, fmt.Sprintf("telnet.max_sessions must be >= 0, got %d", t.MaxSessions))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateMetrics(m MetricsConfig) error {
	if !m.Enabled {
		return nil
	}
	if m.Port < 1 || m.Port > 65535 {
		return fmt.Errorf("metrics.port must be 1-65535, got %d", m.Port)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies CASTLE_ environment
// variable overrides, and validates the result. An empty path uses defaults and
// the environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.world_file", "")
	v.SetDefault("game.player_health", 12)
	v.SetDefault("game.player_damage", 1)
	v.SetDefault("game.inventory_size", 3)
	v.SetDefault("game.script_instruction_limit", 0)

	v.SetDefault("telnet.host", "0.0.0.0")
	v.SetDefault("telnet.port", 4000)
	v.SetDefault("telnet.read_timeout", "10m")
	v.SetDefault("telnet.write_timeout", "30s")
	v.SetDefault("telnet.max_sessions", 0)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.host", "127.0.0.1")
	v.SetDefault("metrics.port", 9100)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

package types

import (
	"fmt"
	"strings"
)

// Log levels accepted by Config.LogLevel.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarn     = "warn"
	LogLevelError    = "error"
	LogLevelDisabled = "disabled"
)

var knownLogLevels = map[string]bool{
	LogLevelDebug:    true,
	LogLevelInfo:     true,
	LogLevelWarn:     true,
	LogLevelError:    true,
	LogLevelDisabled: true,
}

// Config holds the board settings loaded from config.yaml and the
// environment.
type Config struct {
	LogLevel string      `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	Rules    RulesConfig `json:"rules" yaml:"rules" mapstructure:"rules"`
}

// RulesConfig holds the limits applied to each form field. A zero length
// limit means the limit is not set. People limits are always set.
type RulesConfig struct {
	TitleMinLength       int `json:"title_min_length" yaml:"title_min_length" mapstructure:"title_min_length"`
	TitleMaxLength       int `json:"title_max_length" yaml:"title_max_length" mapstructure:"title_max_length"`
	DescriptionMinLength int `json:"description_min_length" yaml:"description_min_length" mapstructure:"description_min_length"`
	DescriptionMaxLength int `json:"description_max_length" yaml:"description_max_length" mapstructure:"description_max_length"`
	PeopleMin            int `json:"people_min" yaml:"people_min" mapstructure:"people_min"`
	PeopleMax            int `json:"people_max" yaml:"people_max" mapstructure:"people_max"`
}

// Default rule limits.
const (
	DefaultDescriptionMinLength = 5
	DefaultPeopleMin            = 1
	DefaultPeopleMax            = 5
)

// MaxPeople bounds the configurable headcount limits so every accepted
// value fits an int on all platforms.
const MaxPeople = 1<<31 - 1

// DefaultConfig returns the configuration used when no config.yaml exists.
func DefaultConfig() Config {
	return Config{
		LogLevel: LogLevelWarn,
		Rules: RulesConfig{
			DescriptionMinLength: DefaultDescriptionMinLength,
			PeopleMin:            DefaultPeopleMin,
			PeopleMax:            DefaultPeopleMax,
		},
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package, wrapped with the offending key.
func (c Config) Validate() error {
	if c.LogLevel != "" && !knownLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrLogLevelUnknown)
	}
	return c.Rules.Validate()
}

// Validate checks the rule limits.
func (r RulesConfig) Validate() error {
	lengths := []struct {
		key      string
		min, max int
	}{
		{"title", r.TitleMinLength, r.TitleMaxLength},
		{"description", r.DescriptionMinLength, r.DescriptionMaxLength},
	}
	for _, l := range lengths {
		if l.min < 0 || l.max < 0 {
			return fmt.Errorf("rules.%s: %w", l.key, ErrRuleNegative)
		}
		if l.max > 0 && l.min > l.max {
			return fmt.Errorf("rules.%s: %w", l.key, ErrRuleRangeInvalid)
		}
	}
	if r.PeopleMin < -MaxPeople || r.PeopleMax > MaxPeople {
		return fmt.Errorf("rules.people: %w", ErrRuleTooLarge)
	}
	if r.PeopleMin > r.PeopleMax {
		return fmt.Errorf("rules.people: %w", ErrRuleRangeInvalid)
	}
	return nil
}

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/projectboard/internal/paths"
	"github.com/mesh-intelligence/projectboard/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// envPrefix scopes environment overrides, e.g. BOARD_LOG_LEVEL or
	// BOARD_RULES_PEOPLE_MAX.
	envPrefix = "BOARD"

	cfgKeyLogLevel                  = "log_level"
	cfgKeyRulesTitleMinLength       = "rules.title_min_length"
	cfgKeyRulesTitleMaxLength       = "rules.title_max_length"
	cfgKeyRulesDescriptionMinLength = "rules.description_min_length"
	cfgKeyRulesDescriptionMaxLength = "rules.description_max_length"
	cfgKeyRulesPeopleMin            = "rules.people_min"
	cfgKeyRulesPeopleMax            = "rules.people_max"
)

func resolveConfigDir(flag string) (string, error) {
	return paths.ResolveConfigDir(flag)
}

// loadConfig reads config.yaml from configDir using Viper, layered over the
// defaults and under BOARD_* environment variables. A missing config.yaml or
// config directory is not an error.
func loadConfig(configDir string) (types.Config, error) {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyRulesTitleMinLength, def.Rules.TitleMinLength)
	v.SetDefault(cfgKeyRulesTitleMaxLength, def.Rules.TitleMaxLength)
	v.SetDefault(cfgKeyRulesDescriptionMinLength, def.Rules.DescriptionMinLength)
	v.SetDefault(cfgKeyRulesDescriptionMaxLength, def.Rules.DescriptionMaxLength)
	v.SetDefault(cfgKeyRulesPeopleMin, def.Rules.PeopleMin)
	v.SetDefault(cfgKeyRulesPeopleMax, def.Rules.PeopleMax)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns false, nil.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(types.DefaultConfig())
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

const configHeader = `# Project board configuration.
# A length limit of 0 is not enforced. Override any key with BOARD_<KEY>,
# e.g. BOARD_LOG_LEVEL=debug or BOARD_RULES_PEOPLE_MAX=8.
`

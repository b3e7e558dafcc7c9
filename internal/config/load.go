package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "INTAKE"

// Load resolves the configuration from defaults, the config file, the
// environment, and the given flags, in increasing precedence.
//
// If configFile is empty, "intake.yaml" (or any supported extension) is looked
// up in the working directory and silently skipped when absent.
func Load(flags *pflag.FlagSet, configFile string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()

	v.SetDefault("color", string(cfg.ColorMode))
	v.SetDefault("output_prefix", cfg.OutputPrefix)
	v.SetDefault("report_name", cfg.ReportName)
	v.SetDefault("log_name", cfg.LogName)
	v.SetDefault("debug", cfg.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range map[string]string{
			"color":         "color",
			"output_prefix": "output-prefix",
			"debug":         "debug",
		} {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return cfg, fmt.Errorf("binding flag %q: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("intake")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg.ColorMode = ColorMode(strings.ToLower(v.GetString("color")))
	cfg.OutputPrefix = v.GetString("output_prefix")
	cfg.ReportName = v.GetString("report_name")
	cfg.LogName = v.GetString("log_name")
	cfg.Debug = v.GetBool("debug")

	return cfg, cfg.Validate()
}

package utils

import (
	"go/types"

	"github.com/sirupsen/logrus"
	"github.com/stellar/go-stellar-sdk/support/config"
)

// GlobalOptions are shared by every command that talks to ripple-rest.
type GlobalOptions struct {
	RippleRestURL   string
	LogLevel        logrus.Level
	TrackerDSN      string
	Environment     string
	TimeoutSeconds  int
	MetricsTextfile string
}

func GlobalConfigOptions(opts *GlobalOptions) config.ConfigOptions {
	return config.ConfigOptions{
		RippleRestURLOption(&opts.RippleRestURL),
		LogLevelOption(&opts.LogLevel),
		TrackerDSNOption(&opts.TrackerDSN),
		EnvironmentOption(&opts.Environment),
		TimeoutSecondsOption(&opts.TimeoutSeconds),
		MetricsTextfileOption(&opts.MetricsTextfile),
	}
}

func RippleRestURLOption(configKey *string) *config.ConfigOption {
	return &config.ConfigOption{
		Name:           "ripple-rest-url",
		Usage:          "The base URL of the ripple-rest server.",
		OptType:        types.String,
		ConfigKey:      configKey,
		CustomSetValue: SetConfigOptionURL,
		FlagDefault:    "http://localhost:5990",
		Required:       true,
	}
}

func LogLevelOption(configKey *logrus.Level) *config.ConfigOption {
	return &config.ConfigOption{
		Name:           "log-level",
		Usage:          `The log level used in this project. Options: "TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL", or "PANIC".`,
		OptType:        types.String,
		FlagDefault:    "INFO",
		ConfigKey:      configKey,
		CustomSetValue: SetConfigOptionLogLevel,
		Required:       false,
	}
}

func TrackerDSNOption(configKey *string) *config.ConfigOption {
	return &config.ConfigOption{
		Name:      "tracker-dsn",
		Usage:     "The Sentry DSN. Errors are only logged when it is empty.",
		OptType:   types.String,
		ConfigKey: configKey,
		Required:  false,
	}
}

func EnvironmentOption(configKey *string) *config.ConfigOption {
	return &config.ConfigOption{
		Name:        "environment",
		Usage:       "The environment reported to the error tracker.",
		OptType:     types.String,
		ConfigKey:   configKey,
		FlagDefault: "development",
		Required:    false,
	}
}

func TimeoutSecondsOption(configKey *int) *config.ConfigOption {
	return &config.ConfigOption{
		Name:        "timeout-seconds",
		Usage:       "The timeout of each HTTP request to ripple-rest, in seconds.",
		OptType:     types.Int,
		ConfigKey:   configKey,
		FlagDefault: 30,
		Required:    false,
	}
}

func MetricsTextfileOption(configKey *string) *config.ConfigOption {
	return &config.ConfigOption{
		Name:      "metrics-textfile",
		Usage:     "When set, the command's prometheus metrics are written to this file in the textfile collector format.",
		OptType:   types.String,
		ConfigKey: configKey,
		Required:  false,
	}
}

func AddressOption(configKey *string) *config.ConfigOption {
	return &config.ConfigOption{
		Name:           "address",
		Usage:          "The ripple address of the account.",
		OptType:        types.String,
		ConfigKey:      configKey,
		CustomSetValue: SetConfigOptionRippleAddress,
		Required:       true,
	}
}

func SecretOption(configKey *string) *config.ConfigOption {
	return &config.ConfigOption{
		Name:      "secret",
		Usage:     "The secret of the account, needed to submit transactions. It's prompted for when empty.",
		OptType:   types.String,
		ConfigKey: configKey,
		Required:  false,
	}
}

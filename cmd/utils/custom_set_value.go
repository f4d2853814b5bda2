package utils

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stellar/go-stellar-sdk/support/config"

	"github.com/ripplerest/ripplerest-go/internal/validators"
	"github.com/ripplerest/ripplerest-go/pkg/ripplerest/types"
)

func SetConfigOptionLogLevel(co *config.ConfigOption) error {
	logLevelStr := viper.GetString(co.Name)
	logLevel, err := logrus.ParseLevel(logLevelStr)
	if err != nil {
		return fmt.Errorf("couldn't parse log level in %s: %w", co.Name, err)
	}

	key, ok := co.ConfigKey.(*logrus.Level)
	if !ok {
		return fmt.Errorf("%s configKey has an invalid type %T", co.Name, co.ConfigKey)
	}
	*key = logLevel

	return nil
}

func SetConfigOptionRippleAddress(co *config.ConfigOption) error {
	address := viper.GetString(co.Name)
	if !types.AddressPattern.MatchString(address) {
		return fmt.Errorf("validating ripple address in %s: %q should follow the pattern %s", co.Name, address, types.AddressPattern)
	}

	key, ok := co.ConfigKey.(*string)
	if !ok {
		return fmt.Errorf("the expected type for the config key in %s is a string, but a %T was provided instead", co.Name, co.ConfigKey)
	}
	*key = address

	return nil
}

func SetConfigOptionURL(co *config.ConfigOption) error {
	u := viper.GetString(co.Name)
	if err := validators.NewValidator().Var(u, "required,url"); err != nil {
		return fmt.Errorf("validating url in %s: %q is not a valid URL", co.Name, u)
	}

	key, ok := co.ConfigKey.(*string)
	if !ok {
		return fmt.Errorf("the expected type for the config key in %s is a string, but a %T was provided instead", co.Name, co.ConfigKey)
	}
	*key = u

	return nil
}

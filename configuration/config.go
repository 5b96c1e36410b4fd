package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	prefix = "CPUSNAP"

	listenAddress = "LISTEN_ADDRESS"
	logLevel      = "LOG_LEVEL"

	defaultListenAddress = "0.0.0.0:8080"
	defaultLogLevel      = "info"
)

var v *viper.Viper

// InitConfiguration wires environment variables, the optional config file
// and the command's flags into one viper instance.
func InitConfiguration(cmd *cobra.Command, configFile string) error {
	v = viper.New()

	v.SetEnvPrefix(prefix)
	v.AutomaticEnv() // read in environment variables that match

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			zap.S().Errorw("cannot read config file", "error", err, "config file", configFile)
			return fmt.Errorf("fail to read config file %q", configFile)
		}
	}

	// Bind the current command's flags to viper
	bindFlags(cmd, v)

	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// replace - with _ to match yaml format
		flagName := f.Name
		if strings.Contains(f.Name, "-") {
			// Environment variables can't have dashes in them, so bind them to their equivalent
			// keys with underscores.
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			v.BindEnv(f.Name, fmt.Sprintf("%s_%s", prefix, envVarSuffix))
			flagName = strings.ReplaceAll(f.Name, "-", "_")
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		// and the other way around.
		if !f.Changed && v.IsSet(flagName) {
			val := v.Get(flagName)
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
		} else if f.Changed && !v.IsSet(flagName) {
			v.Set(flagName, f.Value)
		}
	})
}

// GetListenAddress returns the address the API server binds to.
func GetListenAddress() string {
	if !v.IsSet(listenAddress) {
		return defaultListenAddress
	}

	return v.GetString(listenAddress)
}

// GetLogLevel returns the configured log level.
func GetLogLevel() string {
	if !v.IsSet(logLevel) {
		return defaultLogLevel
	}

	return v.GetString(logLevel)
}

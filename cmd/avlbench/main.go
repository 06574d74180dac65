package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// The prefix for configuration keys inside environment.
	envPrefix = "AVLBENCH"
)

var log = zlog.Output(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.Stamp,
})

type rootConfiguration struct {
	// Config file location, flags not set explicitly are taken from it.
	CfgFile  string
	LogLevel string
}

func main() {
	cobra.CheckErr(newRootCmd().Execute())
}

func newRootCmd() *cobra.Command {
	config := &rootConfiguration{}
	rootCmd := &cobra.Command{
		Use:           "avlbench",
		Short:         "Benchmark, verify and render the AVL ordered set",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initializeConfig(cmd, config); err != nil {
				return err
			}
			level, err := zerolog.ParseLevel(config.LogLevel)
			if err != nil {
				return errors.Wrap(err, "invalid log level")
			}
			log = log.Level(level)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&config.CfgFile, "config", "", "config file location")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "info", "logging level")

	rootCmd.AddCommand(benchCommand(), checkCommand(), dumpCommand())
	return rootCmd
}

// initializeConfig reads the config file and environment variables if set.
func initializeConfig(cmd *cobra.Command, config *rootConfiguration) error {
	v := viper.New()
	if config.CfgFile != "" {
		v.SetConfigFile(config.CfgFile)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return errors.Wrapf(err, "read config %s", config.CfgFile)
			}
		}
	}

	// Flag --key-kind binds to AVLBENCH_KEY_KIND
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	return bindFlags(cmd, v)
}

// bindFlags applies config values to every flag not set on the command line.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindFlagErr != nil {
			return
		}
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = errors.Wrap(err, "could not bind env to flag")
				return
			}
		}
		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				bindFlagErr = errors.Wrapf(err, "could not set flag %s", f.Name)
			}
		}
	})
	return bindFlagErr
}

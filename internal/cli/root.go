// Package cli implements the command-line interface for permcube.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

// configKeys are the settings read through viper. A command flag with the
// same name overrides the config file and PERMCUBE_* environment.
var configKeys = []string{"log-level", "seed", "trials", "epsilon", "format"}

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "permcube",
	Short: "Permutation model of a 3x3x3 puzzle",
	Long: `permcube models face turns of a 3x3x3 puzzle as permutations of its 48
movable stickers.

Apply move sequences, inspect their cycle structure, generate reproducible
scrambles, check the model's invariants, and pose a tesseract with two
plane rotations.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .permcube.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "shorthand for --log-level debug")

	viper.SetDefault("log-level", "warn")
	viper.SetDefault("seed", 0)
	viper.SetDefault("trials", 200)
	viper.SetDefault("epsilon", 1e-8)
	viper.SetDefault("format", "text")
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".permcube")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("PERMCUBE")
	viper.AutomaticEnv()

	// No config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// setup binds the running command's flags to viper and configures logging.
func setup(cmd *cobra.Command, args []string) error {
	for _, key := range configKeys {
		if f := cmd.Flags().Lookup(key); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind %s: %w", key, err)
			}
		}
	}

	level := viper.GetString("log-level")
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	initLogging(level, cmd.ErrOrStderr())

	if used := viper.ConfigFileUsed(); used != "" {
		slog.Debug("config loaded", "file", used)
	}
	return nil
}

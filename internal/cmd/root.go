// Package cmd wires up the scrollgate command-line interface.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/overlaykit/scrollgate/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "scrollgate",
	Short: "Scroll-suspension coordinator for layered UIs",
	Long: `Scrollgate coordinates scroll suspension across overlapping UI surfaces.
Any number of overlays can independently ask a shared container to stop
scrolling; the container's original style is restored exactly once, when
the last overlay lets go, whatever order they close in.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/scrollgate/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/scrollgate")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SCROLLGATE")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SCROLLGATE_LOGGING_LEVEL for logging.level
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

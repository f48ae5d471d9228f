package cmd

import (
	"os"

	"balebridge/internal/config"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "balebridge",
	Short:         "Bale bot API bridge",
	Long:          "Runs bot API operations over batches of items and turns webhook updates into records.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		config.SetupLogging(c.Bot)
		cfg = c

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

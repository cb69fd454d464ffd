package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hangart/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a round would use, as YAML.

Configuration is looked up in this order:
  1. --config PATH
  2. ~/.hangart/configs/hangman.yaml
  3. ./configs/hangman.yaml
  4. built-in defaults

The output is a valid config file, so it is a good starting point:
  hangart config > ~/.hangart/configs/hangman.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := loadSettings(flagConfig, flagDifficulty, "")
		if err != nil {
			return err
		}
		data, err := config.Marshal(settings.Config)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

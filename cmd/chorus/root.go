package main

import (
	"github.com/spf13/cobra"

	"chorus/internal/config"
	"chorus/internal/pipeline"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "chorus",
		Short:         "Merge transcription words and speaker turns into attributed transcripts",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newAlignCommand(&configFlag))
	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}

func loadConfig(configFlag *string) (*config.Config, error) {
	path := ""
	if configFlag != nil {
		path = *configFlag
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrConfiguration, "config", "load", err)
	}
	return cfg, nil
}

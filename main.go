package main

import (
	"fmt"
	"os"

	"commitchat/internal/config"
	"commitchat/internal/tui"
	"commitchat/internal/utils"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "commitchat",
		Short:         "Write a conventional commit message through a guided chat",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().String("config", "", "path to the config file (default $"+config.EnvConfigPath+" or the user config dir)")
	cmd.Flags().BoolP("copy", "c", false, "copy the commit message to the clipboard when it is generated")
	cmd.Flags().BoolP("commit", "f", false, "run git commit with the generated message")
	cmd.Flags().Bool("plain", false, "ask the questions line by line instead of the chat interface")
	cmd.Flags().String("transcript", "", "write the conversation as YAML to this file on exit")
	cmd.Flags().Bool("debug", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	log.Debug().Interface("config", cfg).Msg("Loaded config")

	return tui.Run(cmd, cfg)
}

// loadConfig reads the config file and applies the flags that were set on
// the command line on top of it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("copy") {
		cfg.CopyOnFinish, _ = flags.GetBool("copy")
	}
	if flags.Changed("commit") {
		cfg.CommitOnFinish, _ = flags.GetBool("commit")
	}
	if flags.Changed("plain") {
		cfg.Plain, _ = flags.GetBool("plain")
	}
	if flags.Changed("transcript") {
		cfg.Transcript, _ = flags.GetString("transcript")
	}
	if debug, _ := flags.GetBool("debug"); debug || utils.IsDebug() {
		cfg.LogLevel = zerolog.DebugLevel.String()
	}
	return cfg, nil
}

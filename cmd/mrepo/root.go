// Command mrepo manages a third-party module repository: it formats the
// declarative config.json, updates tracked modules from their providers,
// and publishes the consolidated modules.json index.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mrepo-go/mrepo"
	"github.com/mrepo-go/mrepo/internal/logging"
)

var (
	configFlag    string
	directoryFlag string
	quietFlag     bool
)

var rootCmd = &cobra.Command{
	Use:           "mrepo",
	Short:         "Manage a third-party module repository",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&directoryFlag, "directory", "D", "", "working directory")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "do not print log messages")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildContext resolves the working directory and loads a Context from it,
// mirroring the CLI's config/directory flag precedence: an explicit
// --config path is loaded relative to the working directory, otherwise the
// conventional <dir>/json/config.json layout is assumed.
func buildContext() (*mrepo.Context, io.Closer, error) {
	workingDir := directoryFlag
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, nil, fmt.Errorf("working directory not found: %w", err)
		}
		workingDir = wd
	}

	var (
		ctx *mrepo.Context
		err error
	)
	if configFlag != "" {
		ctx, err = mrepo.Build(configFlag, workingDir)
	} else {
		ctx, err = mrepo.FromWorkingDir(workingDir)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create context: %w", err)
	}

	logCfg := ctx.Log()
	if quietFlag {
		logCfg.Disabled = true
	}
	closer, err := logging.Init(logCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init logging: %w", err)
	}
	return ctx, closer, nil
}

func closeLogger(closer io.Closer) {
	if err := closer.Close(); err != nil {
		log.Error().Err(err).Msg("mrepo: flush logs")
	}
}

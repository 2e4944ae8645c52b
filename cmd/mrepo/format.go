package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var formatWritePath string

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format configuration",
	RunE:  runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.Flags().StringVarP(&formatWritePath, "write", "w", "", "write formatted config to file")
}

func runFormat(cmd *cobra.Command, args []string) error {
	ctx, closer, err := buildContext()
	if err != nil {
		return err
	}
	defer closeLogger(closer)

	var ok bool
	if formatWritePath != "" {
		ok = ctx.FormatTo(formatWritePath)
	} else {
		ok = ctx.Format()
	}
	if !ok {
		log.Error().Msg("mrepo: format failed")
	}
	return nil
}

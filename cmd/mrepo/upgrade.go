package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	upgradeWritePath string
	upgradePretty    bool
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade index",
	RunE:  runUpgrade,
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
	upgradeCmd.Flags().StringVarP(&upgradeWritePath, "write", "w", "", "write index to file")
	upgradeCmd.Flags().BoolVar(&upgradePretty, "pretty", false, "write as pretty-printed")
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	ctx, closer, err := buildContext()
	if err != nil {
		return err
	}
	defer closeLogger(closer)

	var (
		removed []string
		genErr  error
	)
	if upgradeWritePath != "" {
		removed, genErr = ctx.UpgradeTo(upgradeWritePath, upgradePretty)
	} else {
		removed, genErr = ctx.Upgrade(upgradePretty)
	}
	if genErr != nil {
		log.Error().Err(genErr).Msg("mrepo: upgrade failed")
		return nil
	}

	for _, path := range removed {
		log.Info().Str("path", path).Msg("mrepo: removed unconfigured path")
	}
	return nil
}

package main

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mrepo-go/mrepo"
	"github.com/mrepo-go/mrepo/internal/vcsclone"
)

var sshKeyFlag string

var updateCmd = &cobra.Command{
	Use:   "update [id...]",
	Short: "Update modules",
	Long:  "Update modules. All configured modules are updated when no ids are given.",
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&sshKeyFlag, "ssh-key", "", "SSH private key, or a path to a file containing one")
}

func runUpdate(cmd *cobra.Command, ids []string) error {
	ctx, closer, err := buildContext()
	if err != nil {
		return err
	}
	defer closeLogger(closer)

	setSSHKey(sshKeyFlag)

	results := ctx.Update(context.Background(), ids)
	for _, r := range results {
		if !r.Success {
			log.Warn().Str("id", r.ID).Msg("mrepo: update failed")
		}
	}
	return nil
}

// setSSHKey honors an already-set SSH_PRIVATE_KEY environment variable
// first; otherwise key is treated as an inline PEM-encoded key if it
// contains the OpenSSH private key marker, or as a path to read one from.
func setSSHKey(key string) {
	if _, ok := os.LookupEnv(mrepo.SSHPrivateKeyEnv); ok {
		return
	}
	if key == "" {
		return
	}

	if strings.Contains(key, "BEGIN OPENSSH PRIVATE KEY") {
		vcsclone.SetSSHPrivateKey(key)
		return
	}

	data, err := os.ReadFile(key)
	if err != nil {
		log.Warn().Err(err).Str("path", key).Msg("mrepo: read ssh key file")
		return
	}
	vcsclone.SetSSHPrivateKey(string(data))
}
